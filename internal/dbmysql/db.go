package dbmysql

import (
	"fmt"
	"log"
	"time"

	"campusconnect/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormConfig is shared by production connections and test stores.
// TranslateError surfaces unique-index conflicts as gorm.ErrDuplicatedKey and
// nested Transaction calls join the caller's transaction.
func GormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:                   logger.Default.LogMode(level),
		TranslateError:           true,
		DisableNestedTransaction: true,
	}
}

func LogLevel(name string) logger.LogLevel {
	switch name {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug":
		return logger.Info
	default:
		return logger.Warn
	}
}

// NewDatabase returns a GORM DB instance for the configured driver
func NewDatabase(cnf *config.Config) (*gorm.DB, error) {
	gormCfg := GormConfig(LogLevel(cnf.Logging.Level))

	var dialector gorm.Dialector
	switch cnf.Database.Driver {
	case "sqlite":
		if cnf.Database.Path == "" {
			return nil, fmt.Errorf("DB_PATH is not set")
		}
		dialector = sqlite.Open(cnf.Database.Path + "?_busy_timeout=5000&_foreign_keys=on")
	case "mysql", "":
		dialector = mysql.Open(cnf.DSN())
		gormCfg.PrepareStmt = true
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cnf.Database.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to %s: %w", cnf.Database.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	if cnf.Database.Driver == "sqlite" {
		// sqlite serializes writers anyway
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cnf.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cnf.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	log.Printf("Connected to %s successfully", cnf.Database.Driver)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Profile{},
		&Post{},
		&Comment{},
		&Like{},
		&Resource{},
		&Event{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Ping checks the pooled connection, used by health probes.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
