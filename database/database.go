// Package database owns backend selection: the one place that decides
// whether activities live in Postgres or in the local mirror file.
package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"moodlog/internal/config"
	"moodlog/internal/store"
)

// Connect builds the activity store selected by the configured endpoint.
// The choice is made exactly once; callers hold the returned handle for the
// process lifetime and close it on shutdown.
func Connect(cfg *config.Config) (store.ActivityStore, error) {
	if cfg.UseLocalMirror() {
		log.Printf("No database service configured, using local mirror (%s)", cfg.MirrorPath())
		return store.NewMirrorStore(cfg.MirrorPath()), nil
	}
	return connectPostgres(cfg)
}

func connectPostgres(cfg *config.Config) (store.ActivityStore, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Millisecond * 500,
			Colorful:                  true,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormLogger,
		PrepareStmt:    true,
		TranslateError: true, // duplicate keys surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, &store.StoreError{Op: "connect", Err: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &store.StoreError{Op: "connect", Err: err}
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(15 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, &store.StoreError{Op: "connect", Err: err}
	}

	log.Println("Connected to database successfully")
	return store.NewPostgresStore(db), nil
}
