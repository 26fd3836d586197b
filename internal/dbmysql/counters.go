package dbmysql

import (
	"context"
	"errors"
	"fmt"
	"log"

	"campusconnect/internal/common"

	"gorm.io/gorm"
)

// Counter names a denormalized column on posts together with the relation
// it caches the cardinality of.
type Counter string

const (
	LikesCounter    Counter = "likes_count"
	CommentsCounter Counter = "comments_count"
)

var ErrCounterUnderflow = errors.New("counter would drop below zero")

func (c Counter) Column() string {
	return string(c)
}

func (c Counter) source() (string, error) {
	switch c {
	case LikesCounter:
		return "likes", nil
	case CommentsCounter:
		return "comments", nil
	}
	return "", fmt.Errorf("unknown counter %q", string(c))
}

// Counters applies signed deltas to post counters in the same transaction as
// the relation row they track. Counts are never read into memory and written
// back.
type Counters struct {
	strict bool
}

// NewCounters: strict turns a decrement on a zero counter into
// ErrCounterUnderflow instead of clamping it.
func NewCounters(strict bool) *Counters {
	return &Counters{strict: strict}
}

// ApplyDelta runs UPDATE posts SET col = col + delta. A post that does not
// exist yields common.ErrNotFound.
func (c *Counters) ApplyDelta(tx *gorm.DB, postID int64, counter Counter, delta int64) error {
	if _, err := counter.source(); err != nil {
		return err
	}
	if delta == 0 {
		return nil
	}

	col := counter.Column()
	query := tx.Model(&Post{}).Where("id = ?", postID)
	if delta < 0 {
		query = query.Where(col+" >= ?", -delta)
	}
	res := query.UpdateColumn(col, gorm.Expr(col+" + ?", delta))
	if res.Error != nil {
		return fmt.Errorf("failed to update %s: %w", col, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var exists int64
	if err := tx.Model(&Post{}).Where("id = ?", postID).Count(&exists).Error; err != nil {
		return fmt.Errorf("failed to check post: %w", err)
	}
	if exists == 0 {
		return common.NewNotFound("post")
	}
	if c.strict {
		return fmt.Errorf("post %d %s: %w", postID, col, ErrCounterUnderflow)
	}
	log.Printf("Counter underflow clamped: post=%d %s delta=%d", postID, col, delta)
	return nil
}

// InsertWithDelta inserts row and increments the post counter atomically.
// The increment runs first so a missing post aborts before anything is written.
func (c *Counters) InsertWithDelta(db *gorm.DB, postID int64, counter Counter, row interface{}) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := c.ApplyDelta(tx, postID, counter, 1); err != nil {
			return err
		}
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		return nil
	})
}

// DeleteWithDelta deletes the rows matched by query and decrements the post
// counter by the number actually removed.
func (c *Counters) DeleteWithDelta(db *gorm.DB, postID int64, counter Counter, model interface{}, query string, args ...interface{}) (int64, error) {
	var removed int64
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where(query, args...).Delete(model)
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		if removed == 0 {
			return nil
		}
		return c.ApplyDelta(tx, postID, counter, -removed)
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

type driftRow struct {
	PostID int64
}

// Reconcile finds posts whose counters disagree with the source tables and
// resets each from a COUNT(*) subquery in the same UPDATE, so rows written
// between the scan and the repair are still counted. It returns how many
// posts were repaired.
func (c *Counters) Reconcile(ctx context.Context, db *gorm.DB) (int, error) {
	repaired := map[int64]struct{}{}

	for _, counter := range []Counter{LikesCounter, CommentsCounter} {
		table, _ := counter.source()
		col := counter.Column()

		var drifted []driftRow
		err := db.WithContext(ctx).
			Table("posts AS p").
			Select("p.id AS post_id").
			Joins("LEFT JOIN " + table + " AS x ON x.post_id = p.id").
			Group("p.id, p." + col).
			Having("COUNT(x.id) <> p." + col).
			Scan(&drifted).Error
		if err != nil {
			return len(repaired), fmt.Errorf("failed to scan %s drift: %w", col, err)
		}

		live := gorm.Expr("(SELECT COUNT(*) FROM " + table + " WHERE " + table + ".post_id = posts.id)")
		for _, d := range drifted {
			err := db.WithContext(ctx).Model(&Post{}).
				Where("id = ?", d.PostID).
				UpdateColumn(col, live).Error
			if err != nil {
				return len(repaired), fmt.Errorf("failed to repair post %d: %w", d.PostID, err)
			}
			log.Printf("Reconciled post=%d %s", d.PostID, col)
			repaired[d.PostID] = struct{}{}
		}
	}

	return len(repaired), nil
}
