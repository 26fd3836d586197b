package dbmysql

import (
	"testing"

	"campusconnect/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, LogLevel("silent"))
	assert.Equal(t, logger.Error, LogLevel("error"))
	assert.Equal(t, logger.Info, LogLevel("debug"))
	assert.Equal(t, logger.Warn, LogLevel(""))
}

func TestNewDatabase_SQLite(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", Path: t.TempDir() + "/campus.db"},
		Logging:  config.LoggingConfig{Level: "silent"},
	}

	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, Ping(db))

	for _, table := range []string{"users", "profiles", "posts", "comments", "likes", "resources", "events"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(&Like{}, "idx_likes_post_author"))
	assert.True(t, db.Migrator().HasIndex(&Profile{}, "idx_profiles_user_id"))

	sqlDB, _ := db.DB()
	sqlDB.Close()
}

func TestNewDatabase_Rejects(t *testing.T) {
	_, err := NewDatabase(&config.Config{Database: config.DatabaseConfig{Driver: "postgres"}})
	assert.Error(t, err)

	_, err = NewDatabase(&config.Config{Database: config.DatabaseConfig{Driver: "sqlite"}})
	assert.Error(t, err)
}
