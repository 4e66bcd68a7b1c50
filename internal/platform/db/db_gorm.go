// Package db opens the gorm database connection for the server process.
package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/neswanths/Blinky/internal/app/config"
	authentity "github.com/neswanths/Blinky/internal/feature/auth/domain/entity"
	bookmarksentity "github.com/neswanths/Blinky/internal/feature/bookmarks/domain/entity"
)

// OpenDB connects to PostgreSQL when cfg.DatabaseDSN is set, otherwise to a
// local SQLite file, and migrates the schema. TranslateError lets adapters
// detect duplicate keys uniformly across both drivers.
func OpenDB(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector
	if cfg.DatabaseDSN != "" {
		dialector = postgres.Open(cfg.DatabaseDSN)
	} else {
		log.Println("USING_SQLITE:", cfg.SQLitePath)
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.DatabaseDSN == "" {
		// SQLite does not enforce foreign keys unless asked, and the
		// user→domain→bookmark cascade deletes depend on them.
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			log.Fatalf("failed to enable foreign keys: %v", err)
		}
	}

	// マイグレーション（User, Domain, Bookmark）
	if err := db.AutoMigrate(
		&authentity.User{},
		&bookmarksentity.Domain{},
		&bookmarksentity.Bookmark{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
