package aggregate

import (
	"context"
	"errors"
	"fmt"

	"campusconnect/internal/common"
	"campusconnect/internal/dbmysql"

	"gorm.io/gorm"
)

const (
	newestFirst      = "created_at DESC, id DESC"
	latestEventFirst = "date DESC, id DESC"
)

var (
	authorJoin         = Join{Relation: "Author"}
	commentsJoin       = Join{Relation: "Comments", OrderBy: newestFirst}
	commentAuthorsJoin = Join{Relation: "Comments.Author"}
)

// Read shapes used by the feed and board. They only ever read the cached
// post counters; nothing here counts likes or comments.
var (
	PostListQuery     = Query{Joins: []Join{authorJoin}, OrderBy: newestFirst}
	PostDetailQuery   = Query{Joins: []Join{authorJoin, commentsJoin, commentAuthorsJoin}}
	ResourceListQuery = Query{Joins: []Join{authorJoin}, OrderBy: newestFirst}
	EventListQuery    = Query{Joins: []Join{authorJoin}, OrderBy: latestEventFirst}
)

// Reader assembles views from explicit join descriptions.
type Reader struct {
	db *gorm.DB
}

func NewReader(db *gorm.DB) *Reader {
	return &Reader{db: db}
}

// Find loads every row matching q into dest, a pointer to a slice of views.
func (r *Reader) Find(ctx context.Context, dest interface{}, q Query) error {
	if err := q.apply(r.db.WithContext(ctx)).Find(dest).Error; err != nil {
		return fmt.Errorf("failed to read: %w", err)
	}
	return nil
}

// First loads a single view; no match is common.ErrNotFound.
func (r *Reader) First(ctx context.Context, dest interface{}, entity string, q Query) error {
	err := q.apply(r.db.WithContext(ctx)).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NewNotFound(entity)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", entity, err)
	}
	return nil
}

func (r *Reader) ListPosts(ctx context.Context, limit int, postType common.PostType) ([]PostView, error) {
	q := PostListQuery
	q.Limit = limit
	if postType != "" {
		q = q.Filter("type = ?", postType.String())
	}

	posts := []PostView{}
	if err := r.Find(ctx, &posts, q); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *Reader) GetPost(ctx context.Context, id int64) (*PostDetail, error) {
	var post PostDetail
	if err := r.First(ctx, &post, "post", PostDetailQuery.Filter("id = ?", id)); err != nil {
		return nil, err
	}
	if post.Comments == nil {
		post.Comments = []CommentView{}
	}
	return &post, nil
}

func (r *Reader) ListResources(ctx context.Context, category string) ([]ResourceView, error) {
	q := ResourceListQuery
	if category != "" {
		q = q.Filter("category = ?", category)
	}

	resources := []ResourceView{}
	if err := r.Find(ctx, &resources, q); err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *Reader) ListEvents(ctx context.Context) ([]EventView, error) {
	events := []EventView{}
	if err := r.Find(ctx, &events, EventListQuery); err != nil {
		return nil, err
	}
	return events, nil
}

// Post is the bare row, used where only ownership matters.
func (r *Reader) Post(ctx context.Context, id int64) (*dbmysql.Post, error) {
	var post dbmysql.Post
	if err := r.First(ctx, &post, "post", Query{}.Filter("id = ?", id)); err != nil {
		return nil, err
	}
	return &post, nil
}
