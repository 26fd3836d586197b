package feed

import (
	"context"
	"strings"

	"campusconnect/internal/aggregate"
	"campusconnect/internal/authz"
	"campusconnect/internal/common"
	"campusconnect/internal/config"
	"campusconnect/internal/dbmysql"
)

type CreatePostInput struct {
	Content   string   `json:"content" validate:"required,max=5000"`
	Type      string   `json:"type" validate:"omitempty,oneof=text image pdf link"`
	MediaURLs []string `json:"mediaUrls" validate:"dive,http_url"`
	Tags      []string `json:"tags" validate:"max=10,dive,required,max=50"`
}

// normalize trims user text and strips a leading '#' from tags.
func (in CreatePostInput) normalize() CreatePostInput {
	out := CreatePostInput{
		Content:   strings.TrimSpace(in.Content),
		Type:      strings.ToLower(strings.TrimSpace(in.Type)),
		MediaURLs: make([]string, 0, len(in.MediaURLs)),
		Tags:      make([]string, 0, len(in.Tags)),
	}
	for _, u := range in.MediaURLs {
		out.MediaURLs = append(out.MediaURLs, strings.TrimSpace(u))
	}
	for _, tag := range in.Tags {
		out.Tags = append(out.Tags, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tag), "#")))
	}
	return out
}

type CommentInput struct {
	Content string `json:"content" validate:"required,max=2000"`
}

//go:generate mockgen -source=feed_service.go -destination=mock_service.go -package=feed

type FeedUsecase interface {
	CreatePost(ctx context.Context, authorID string, in CreatePostInput) (*dbmysql.Post, error)
	ListPosts(ctx context.Context, limit int, postType string) ([]aggregate.PostView, error)
	GetPost(ctx context.Context, id int64) (*aggregate.PostDetail, error)
	DeletePost(ctx context.Context, callerID string, id int64) error
	AddComment(ctx context.Context, postID int64, authorID, content string) (*dbmysql.Comment, error)
	ToggleLike(ctx context.Context, postID int64, authorID string) (*LikeResult, error)
}

type FeedService struct {
	posts        PostRepository
	reader       FeedReader
	guard        *authz.Guard
	defaultLimit int
	maxLimit     int
}

func NewFeedService(posts PostRepository, reader FeedReader, guard *authz.Guard, cfg *config.Config) *FeedService {
	return &FeedService{
		posts:        posts,
		reader:       reader,
		guard:        guard,
		defaultLimit: cfg.Feed.DefaultLimit,
		maxLimit:     cfg.Feed.MaxLimit,
	}
}

// --------- POSTS ---------

func (s *FeedService) CreatePost(ctx context.Context, authorID string, in CreatePostInput) (*dbmysql.Post, error) {
	in = in.normalize()
	if err := common.Validate(in); err != nil {
		return nil, err
	}
	postType, err := common.ParsePostType(in.Type)
	if err != nil {
		return nil, err
	}

	post := &dbmysql.Post{
		AuthorID:  authorID,
		Content:   in.Content,
		Type:      postType.String(),
		MediaURLs: in.MediaURLs,
		Tags:      in.Tags,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns the newest posts; limit <= 0 means the default and is
// capped at the configured maximum.
func (s *FeedService) ListPosts(ctx context.Context, limit int, postType string) ([]aggregate.PostView, error) {
	var filter common.PostType
	if postType != "" {
		pt, err := common.ParsePostType(postType)
		if err != nil {
			return nil, err
		}
		filter = pt
	}

	if limit <= 0 {
		limit = s.defaultLimit
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		limit = s.maxLimit
	}
	return s.reader.ListPosts(ctx, limit, filter)
}

func (s *FeedService) GetPost(ctx context.Context, id int64) (*aggregate.PostDetail, error) {
	return s.reader.GetPost(ctx, id)
}

// DeletePost checks existence before authorization so a missing post is a
// 404 for every caller.
func (s *FeedService) DeletePost(ctx context.Context, callerID string, id int64) error {
	post, err := s.reader.Post(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.AuthorizePostDelete(ctx, callerID, post); err != nil {
		return err
	}
	return s.posts.DeletePost(ctx, id)
}

// --------- COMMENTS ---------

func (s *FeedService) AddComment(ctx context.Context, postID int64, authorID, content string) (*dbmysql.Comment, error) {
	in := CommentInput{Content: strings.TrimSpace(content)}
	if err := common.Validate(in); err != nil {
		return nil, err
	}

	comment := &dbmysql.Comment{PostID: postID, AuthorID: authorID, Content: in.Content}
	if err := s.posts.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// --------- LIKES ---------

func (s *FeedService) ToggleLike(ctx context.Context, postID int64, authorID string) (*LikeResult, error) {
	return s.posts.ToggleLike(ctx, postID, authorID)
}
