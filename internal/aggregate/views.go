package aggregate

import "campusconnect/internal/dbmysql"

// Views are read-only projections over the entity tables. They are never
// migrated; the embedded entity supplies the columns.

// PostView is a post with its author and cached counters.
type PostView struct {
	dbmysql.Post
	Author dbmysql.User `gorm:"foreignKey:AuthorID" json:"author"`
}

func (PostView) TableName() string { return "posts" }

// PostDetail additionally embeds every comment, newest first.
type PostDetail struct {
	dbmysql.Post
	Author   dbmysql.User  `gorm:"foreignKey:AuthorID" json:"author"`
	Comments []CommentView `gorm:"foreignKey:PostID" json:"comments"`
}

func (PostDetail) TableName() string { return "posts" }

type CommentView struct {
	dbmysql.Comment
	Author dbmysql.User `gorm:"foreignKey:AuthorID" json:"author"`
}

func (CommentView) TableName() string { return "comments" }

type ResourceView struct {
	dbmysql.Resource
	Author dbmysql.User `gorm:"foreignKey:AuthorID" json:"author"`
}

func (ResourceView) TableName() string { return "resources" }

type EventView struct {
	dbmysql.Event
	Author dbmysql.User `gorm:"foreignKey:AuthorID" json:"author"`
}

func (EventView) TableName() string { return "events" }
