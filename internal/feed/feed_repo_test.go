package feed

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"campusconnect/internal/common"
	"campusconnect/internal/dbmysql"
	"campusconnect/internal/dbmysql/dbmysqltest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestFeedRepository_CreatePost(t *testing.T) {
	db := dbmysqltest.NewSQLite(t)
	repo := NewFeedRepository(db, dbmysql.NewCounters(true))

	post := &dbmysql.Post{AuthorID: "alice", Content: "hi", Type: "text", MediaURLs: []string{}, Tags: []string{"go"}}
	require.NoError(t, repo.CreatePost(context.Background(), post))
	assert.NotZero(t, post.ID)

	var stored dbmysql.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, []string{"go"}, stored.Tags)
	assert.Zero(t, stored.LikesCount)
	assert.Zero(t, stored.CommentsCount)
}

func TestFeedRepository_AddComment(t *testing.T) {
	db := dbmysqltest.NewSQLite(t)
	repo := NewFeedRepository(db, dbmysql.NewCounters(true))
	post := dbmysqltest.SeedPost(t, db, "alice", "hello", time.Now())
	ctx := context.Background()

	t.Run("counts concurrent comments", func(t *testing.T) {
		var g errgroup.Group
		for i := 0; i < 20; i++ {
			i := i
			g.Go(func() error {
				return repo.AddComment(ctx, &dbmysql.Comment{PostID: post.ID, AuthorID: "bob", Content: fmt.Sprintf("c%d", i)})
			})
		}
		require.NoError(t, g.Wait())

		_, cached := dbmysqltest.CachedCounts(t, db, post.ID)
		_, live := dbmysqltest.LiveCounts(t, db, post.ID)
		assert.Equal(t, int64(20), cached)
		assert.Equal(t, live, cached)
	})

	t.Run("orphan comment is rejected", func(t *testing.T) {
		err := repo.AddComment(ctx, &dbmysql.Comment{PostID: 999, AuthorID: "bob", Content: "x"})
		require.ErrorIs(t, err, common.ErrNotFound)

		var orphans int64
		require.NoError(t, db.Model(&dbmysql.Comment{}).Where("post_id = ?", 999).Count(&orphans).Error)
		assert.Zero(t, orphans)
	})
}

func TestFeedRepository_ToggleLike(t *testing.T) {
	db := dbmysqltest.NewSQLite(t)
	repo := NewFeedRepository(db, dbmysql.NewCounters(true))
	post := dbmysqltest.SeedPost(t, db, "alice", "hello", time.Now())
	ctx := context.Background()

	res, err := repo.ToggleLike(ctx, post.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, &LikeResult{Liked: true, LikesCount: 1}, res)

	res, err = repo.ToggleLike(ctx, post.ID, "carol")
	require.NoError(t, err)
	assert.Equal(t, &LikeResult{Liked: true, LikesCount: 2}, res)

	res, err = repo.ToggleLike(ctx, post.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, &LikeResult{Liked: false, LikesCount: 1}, res)

	likes, _ := dbmysqltest.LiveCounts(t, db, post.ID)
	assert.Equal(t, int64(1), likes)

	_, err = repo.ToggleLike(ctx, 999, "bob")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestFeedRepository_ToggleLikeConcurrent(t *testing.T) {
	db := dbmysqltest.NewSQLite(t)
	repo := NewFeedRepository(db, dbmysql.NewCounters(true))
	post := dbmysqltest.SeedPost(t, db, "alice", "hello", time.Now())
	ctx := context.Background()

	t.Run("distinct users", func(t *testing.T) {
		var g errgroup.Group
		for i := 0; i < 15; i++ {
			user := fmt.Sprintf("user-%d", i)
			g.Go(func() error {
				_, err := repo.ToggleLike(ctx, post.ID, user)
				return err
			})
		}
		require.NoError(t, g.Wait())

		cached, _ := dbmysqltest.CachedCounts(t, db, post.ID)
		live, _ := dbmysqltest.LiveCounts(t, db, post.ID)
		assert.Equal(t, int64(15), cached)
		assert.Equal(t, live, cached)
	})

	t.Run("same user", func(t *testing.T) {
		var g errgroup.Group
		for i := 0; i < 7; i++ {
			g.Go(func() error {
				_, err := repo.ToggleLike(ctx, post.ID, "dave")
				return err
			})
		}
		require.NoError(t, g.Wait())

		var mine int64
		require.NoError(t, db.Model(&dbmysql.Like{}).
			Where("post_id = ? AND author_id = ?", post.ID, "dave").Count(&mine).Error)
		assert.LessOrEqual(t, mine, int64(1))

		cached, _ := dbmysqltest.CachedCounts(t, db, post.ID)
		live, _ := dbmysqltest.LiveCounts(t, db, post.ID)
		assert.Equal(t, live, cached)
	})
}

// A racing toggle that loses on the unique index rolls back its increment
// and reports the like that won.
func TestFeedRepository_ToggleLikeDuplicateKey(t *testing.T) {
	db, mock := dbmysqltest.NewMock(t)
	repo := NewFeedRepository(db, dbmysql.NewCounters(true))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `likes` WHERE post_id = ? AND author_id = ?")).
		WithArgs(7, "bob").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `posts` SET `likes_count`=likes_count + ? WHERE id = ?")).
		WithArgs(1, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `likes`")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '7-bob' for key 'idx_likes_post_author'"})
	mock.ExpectRollback()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `likes_count` FROM `posts` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"likes_count"}).AddRow(1))

	res, err := repo.ToggleLike(context.Background(), 7, "bob")
	require.NoError(t, err)
	assert.Equal(t, &LikeResult{Liked: true, LikesCount: 1}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Two first-time toggles that deadlock on the likes index: the victim is
// retried as an insert and never turns into an unlike.
func TestFeedRepository_ToggleLikeDeadlockRetry(t *testing.T) {
	deadlock := &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock; try restarting transaction"}

	expectFirstAttempt := func(mock sqlmock.Sqlmock) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `likes` WHERE post_id = ? AND author_id = ?")).
			WithArgs(7, "bob").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `posts` SET `likes_count`=likes_count + ? WHERE id = ?")).
			WithArgs(1, 7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `likes`")).
			WillReturnError(deadlock)
		mock.ExpectRollback()
	}

	t.Run("retry inserts", func(t *testing.T) {
		db, mock := dbmysqltest.NewMock(t)
		repo := NewFeedRepository(db, dbmysql.NewCounters(true))

		expectFirstAttempt(mock)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `posts` SET `likes_count`=likes_count + ? WHERE id = ?")).
			WithArgs(1, 7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `likes`")).
			WillReturnResult(sqlmock.NewResult(5, 1))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT `likes_count` FROM `posts` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows([]string{"likes_count"}).AddRow(2))
		mock.ExpectCommit()

		res, err := repo.ToggleLike(context.Background(), 7, "bob")
		require.NoError(t, err)
		assert.Equal(t, &LikeResult{Liked: true, LikesCount: 2}, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retry loses to the winning insert", func(t *testing.T) {
		db, mock := dbmysqltest.NewMock(t)
		repo := NewFeedRepository(db, dbmysql.NewCounters(true))

		expectFirstAttempt(mock)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `posts` SET `likes_count`=likes_count + ? WHERE id = ?")).
			WithArgs(1, 7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `likes`")).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '7-bob' for key 'idx_likes_post_author'"})
		mock.ExpectRollback()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT `likes_count` FROM `posts` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows([]string{"likes_count"}).AddRow(1))

		res, err := repo.ToggleLike(context.Background(), 7, "bob")
		require.NoError(t, err)
		assert.Equal(t, &LikeResult{Liked: true, LikesCount: 1}, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gives up after repeated deadlocks", func(t *testing.T) {
		db, mock := dbmysqltest.NewMock(t)
		repo := NewFeedRepository(db, dbmysql.NewCounters(true))

		expectFirstAttempt(mock)
		for i := 1; i < maxToggleAttempts; i++ {
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("UPDATE `posts`")).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `likes`")).
				WillReturnError(deadlock)
			mock.ExpectRollback()
		}

		_, err := repo.ToggleLike(context.Background(), 7, "bob")
		require.ErrorAs(t, err, new(*mysql.MySQLError))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFeedRepository_DeletePost(t *testing.T) {
	db := dbmysqltest.NewSQLite(t)
	repo := NewFeedRepository(db, dbmysql.NewCounters(true))
	post := dbmysqltest.SeedPost(t, db, "alice", "doomed", time.Now())
	keep := dbmysqltest.SeedPost(t, db, "alice", "keep", time.Now())
	ctx := context.Background()

	require.NoError(t, repo.AddComment(ctx, &dbmysql.Comment{PostID: post.ID, AuthorID: "bob", Content: "x"}))
	require.NoError(t, repo.AddComment(ctx, &dbmysql.Comment{PostID: keep.ID, AuthorID: "bob", Content: "y"}))
	_, err := repo.ToggleLike(ctx, post.ID, "bob")
	require.NoError(t, err)

	require.NoError(t, repo.DeletePost(ctx, post.ID))

	likes, comments := dbmysqltest.LiveCounts(t, db, post.ID)
	assert.Zero(t, likes)
	assert.Zero(t, comments)

	_, comments = dbmysqltest.LiveCounts(t, db, keep.ID)
	assert.Equal(t, int64(1), comments)

	err = repo.DeletePost(ctx, post.ID)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestFeedRepository_CountersSurviveReconcile(t *testing.T) {
	db := dbmysqltest.NewSQLite(t)
	counters := dbmysql.NewCounters(true)
	repo := NewFeedRepository(db, counters)
	post := dbmysqltest.SeedPost(t, db, "alice", "hello", time.Now())
	ctx := context.Background()

	require.NoError(t, repo.AddComment(ctx, &dbmysql.Comment{PostID: post.ID, AuthorID: "bob", Content: "x"}))
	_, err := repo.ToggleLike(ctx, post.ID, "bob")
	require.NoError(t, err)

	// writes through the repository never leave drift behind
	repaired, err := counters.Reconcile(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, repaired)
}
