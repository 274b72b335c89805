package db

import (
	"strings"
	"yatube/config"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var Instance *gorm.DB

// Init opens the database configured through the environment
func Init() error {
	var dialector gorm.Dialector
	switch {
	case config.MYSQL_DSN != "":
		dialector = mysql.Open(config.MYSQL_DSN)
	case config.POSTGRES_DSN != "":
		dialector = postgres.Open(config.POSTGRES_DSN)
	default:
		dialector = SQLite(config.SQLITE_FILE)
	}
	return Open(dialector)
}

// SQLite returns a dialector for the given file (or file: URI) with foreign keys enforced
func SQLite(dsn string) gorm.Dialector {
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=1"
	} else {
		dsn += "?_foreign_keys=1"
	}
	return sqlite.Open(dsn)
}

func Open(dialector gorm.Dialector) error {
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	if dialector.Name() == "sqlite" {
		// SQLite allows a single writer, queue everything on one connection
		sqlDB, err := db.DB()
		if err != nil {
			return errors.Wrap(err, "sqlite pool")
		}
		sqlDB.SetMaxOpenConns(1)
	}
	Instance = db
	return nil
}

func Close() error {
	if Instance == nil {
		return nil
	}
	sqlDB, err := Instance.DB()
	if err != nil {
		return err
	}
	Instance = nil
	return sqlDB.Close()
}
