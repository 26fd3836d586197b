package dbmysql

import (
	"time"
)

// post.go
type Post struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	AuthorID      string    `gorm:"column:author_id;size:64;not null;index" json:"authorId"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	Type          string    `gorm:"column:type;size:16;not null;default:text;index" json:"type"`
	MediaURLs     []string  `gorm:"column:media_urls;serializer:json;type:text" json:"mediaUrls"`
	Tags          []string  `gorm:"column:tags;serializer:json;type:text" json:"tags"`
	LikesCount    int64     `gorm:"column:likes_count;not null;default:0" json:"likesCount"`
	CommentsCount int64     `gorm:"column:comments_count;not null;default:0" json:"commentsCount"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;index" json:"postId"`
	AuthorID  string    `gorm:"column:author_id;size:64;not null" json:"authorId"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Comment) TableName() string {
	return "comments"
}

// Like is unique per (post_id, author_id); the index is what turns a racing
// second insert into a duplicate-key error.
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:idx_likes_post_author,priority:1" json:"postId"`
	AuthorID  string    `gorm:"column:author_id;size:64;not null;uniqueIndex:idx_likes_post_author,priority:2" json:"authorId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
