// Package dbmysqltest provides stores for package tests: a migrated sqlite
// file for behaviour and a sqlmock-backed MySQL dialect for statement shape.
package dbmysqltest

import (
	"path/filepath"
	"testing"
	"time"

	"campusconnect/internal/dbmysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLite returns a migrated database on a temp file. A single connection
// keeps writers serialized, so goroutines in tests queue instead of failing
// with SQLITE_BUSY.
func NewSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "campus.db")
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), dbmysql.GormConfig(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, dbmysql.Migrate(db))
	return db
}

// NewMock returns a MySQL-dialect gorm DB over sqlmock.
func NewMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), dbmysql.GormConfig(logger.Silent))
	require.NoError(t, err)

	return db, mock
}

func SeedUser(t *testing.T, db *gorm.DB, id, firstName, lastName string) *dbmysql.User {
	t.Helper()
	u := &dbmysql.User{ID: id, FirstName: &firstName, LastName: &lastName}
	require.NoError(t, db.Create(u).Error)
	return u
}

func SeedPost(t *testing.T, db *gorm.DB, authorID, content string, createdAt time.Time) *dbmysql.Post {
	t.Helper()
	p := &dbmysql.Post{
		AuthorID:  authorID,
		Content:   content,
		Type:      "text",
		MediaURLs: []string{},
		Tags:      []string{},
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func SetAdmin(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()
	require.NoError(t, db.Create(&dbmysql.Profile{UserID: userID, Role: "admin"}).Error)
}

// LiveCounts returns the true relation cardinalities for a post.
func LiveCounts(t *testing.T, db *gorm.DB, postID int64) (likes, comments int64) {
	t.Helper()
	require.NoError(t, db.Model(&dbmysql.Like{}).Where("post_id = ?", postID).Count(&likes).Error)
	require.NoError(t, db.Model(&dbmysql.Comment{}).Where("post_id = ?", postID).Count(&comments).Error)
	return likes, comments
}

func CachedCounts(t *testing.T, db *gorm.DB, postID int64) (likes, comments int64) {
	t.Helper()
	var p dbmysql.Post
	require.NoError(t, db.First(&p, postID).Error)
	return p.LikesCount, p.CommentsCount
}
