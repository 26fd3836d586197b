package aggregate

import (
	"gorm.io/gorm"
)

// Join embeds one relation of the root rows. Relation uses gorm's dotted
// association path ("Comments.Author"); OrderBy orders the joined rows.
type Join struct {
	Relation string
	OrderBy  string
}

type Condition struct {
	Query string
	Args  []interface{}
}

// Query describes one read: root filters and order plus the relations to
// embed. Each join costs exactly one extra batched SELECT, never one per row.
type Query struct {
	Joins   []Join
	Where   []Condition
	OrderBy string
	Limit   int
}

// Queries is the upper bound on SQL round trips the read issues. Joins
// whose parent rows come back empty are skipped.
func (q Query) Queries() int {
	return 1 + len(q.Joins)
}

func (q Query) Filter(query string, args ...interface{}) Query {
	q.Where = append(append([]Condition(nil), q.Where...), Condition{Query: query, Args: args})
	return q
}

func (q Query) apply(db *gorm.DB) *gorm.DB {
	for _, c := range q.Where {
		db = db.Where(c.Query, c.Args...)
	}
	if q.OrderBy != "" {
		db = db.Order(q.OrderBy)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	for _, j := range q.Joins {
		if j.OrderBy == "" {
			db = db.Preload(j.Relation)
			continue
		}
		order := j.OrderBy
		db = db.Preload(j.Relation, func(tx *gorm.DB) *gorm.DB {
			return tx.Order(order)
		})
	}
	return db
}
