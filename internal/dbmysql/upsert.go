package dbmysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertByUniqueKey inserts row or, when a row with the same key already
// exists, overwrites only updateColumns. With no update columns an existing
// row is left untouched. The conflict is resolved by the database in a
// single statement so concurrent first writes cannot both insert.
func UpsertByUniqueKey(ctx context.Context, db *gorm.DB, row interface{}, key []string, updateColumns []string) error {
	if len(key) == 0 {
		return fmt.Errorf("upsert needs a unique key")
	}

	conflict := clause.OnConflict{}
	for _, k := range key {
		conflict.Columns = append(conflict.Columns, clause.Column{Name: k})
	}
	if len(updateColumns) == 0 {
		conflict.DoNothing = true
	} else {
		conflict.DoUpdates = clause.AssignmentColumns(updateColumns)
	}

	if err := db.WithContext(ctx).Clauses(conflict).Create(row).Error; err != nil {
		return fmt.Errorf("failed to upsert: %w", err)
	}
	return nil
}
