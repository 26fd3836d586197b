package feed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"campusconnect/internal/aggregate"
	"campusconnect/internal/common"
	"campusconnect/internal/dbmysql"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

//go:generate mockgen -source=feed_repo.go -destination=mock_repository.go -package=feed

// LikeResult is the state after a toggle.
type LikeResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likesCount"`
}

// --------- POSTS ---------
type PostRepository interface {
	CreatePost(ctx context.Context, post *dbmysql.Post) error
	DeletePost(ctx context.Context, id int64) error
	AddComment(ctx context.Context, comment *dbmysql.Comment) error
	ToggleLike(ctx context.Context, postID int64, authorID string) (*LikeResult, error)
}

// --------- READS ---------
type FeedReader interface {
	ListPosts(ctx context.Context, limit int, postType common.PostType) ([]aggregate.PostView, error)
	GetPost(ctx context.Context, id int64) (*aggregate.PostDetail, error)
	Post(ctx context.Context, id int64) (*dbmysql.Post, error)
}

type FeedRepository struct {
	db       *gorm.DB
	counters *dbmysql.Counters
}

func NewFeedRepository(db *gorm.DB, counters *dbmysql.Counters) *FeedRepository {
	return &FeedRepository{db: db, counters: counters}
}

func (r *FeedRepository) CreatePost(ctx context.Context, post *dbmysql.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// DeletePost removes the post together with its likes and comments.
func (r *FeedRepository) DeletePost(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&dbmysql.Like{}).Error; err != nil {
			return fmt.Errorf("failed to delete likes: %w", err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&dbmysql.Comment{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}
		res := tx.Delete(&dbmysql.Post{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete post: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return common.NewNotFound("post")
		}
		return nil
	})
}

// --------- COMMENTS ---------

func (r *FeedRepository) AddComment(ctx context.Context, comment *dbmysql.Comment) error {
	return r.counters.InsertWithDelta(r.db.WithContext(ctx), comment.PostID, dbmysql.CommentsCounter, comment)
}

// --------- LIKES ---------

// maxToggleAttempts bounds retries of a toggle that InnoDB picked as a
// deadlock victim.
const maxToggleAttempts = 3

// ToggleLike removes the caller's like if present, otherwise adds it. A
// duplicate-key error means a concurrent toggle for the same pair inserted
// first; that transaction is rolled back and the like is reported as held.
// Two first-time toggles can deadlock on the likes gap lock. The victim is
// retried as an insert, since its delete already found nothing to remove.
func (r *FeedRepository) ToggleLike(ctx context.Context, postID int64, authorID string) (*LikeResult, error) {
	insertOnly := false
	for attempt := 1; ; attempt++ {
		result, adding, err := r.toggleLike(ctx, postID, authorID, insertOnly)
		switch {
		case err == nil:
			return result, nil
		case errors.Is(err, gorm.ErrDuplicatedKey):
			log.Printf("Concurrent like on post=%d by %s, keeping existing", postID, authorID)
			count, err := likesCount(r.db.WithContext(ctx), postID)
			if err != nil {
				return nil, err
			}
			return &LikeResult{Liked: true, LikesCount: count}, nil
		case isDeadlock(err) && attempt < maxToggleAttempts:
			log.Printf("Deadlock toggling like on post=%d by %s, retrying (attempt %d)", postID, authorID, attempt)
			insertOnly = adding
		default:
			return nil, err
		}
	}
}

// toggleLike runs one toggle transaction. adding reports whether the
// transaction reached the insert.
func (r *FeedRepository) toggleLike(ctx context.Context, postID int64, authorID string, insertOnly bool) (*LikeResult, bool, error) {
	var result LikeResult
	adding := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !insertOnly {
			removed, err := r.counters.DeleteWithDelta(tx, postID, dbmysql.LikesCounter,
				&dbmysql.Like{}, "post_id = ? AND author_id = ?", postID, authorID)
			if err != nil {
				return err
			}
			if removed > 0 {
				count, err := likesCount(tx, postID)
				result = LikeResult{Liked: false, LikesCount: count}
				return err
			}
		}

		adding = true
		like := &dbmysql.Like{PostID: postID, AuthorID: authorID}
		if err := r.counters.InsertWithDelta(tx, postID, dbmysql.LikesCounter, like); err != nil {
			return err
		}
		count, err := likesCount(tx, postID)
		result = LikeResult{Liked: true, LikesCount: count}
		return err
	})
	if err != nil {
		return nil, adding, err
	}
	return &result, adding, nil
}

func isDeadlock(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1213
}

func likesCount(db *gorm.DB, postID int64) (int64, error) {
	var post dbmysql.Post
	if err := db.Select("likes_count").Where("id = ?", postID).Take(&post).Error; err != nil {
		return 0, fmt.Errorf("failed to read likes_count: %w", err)
	}
	return post.LikesCount, nil
}
