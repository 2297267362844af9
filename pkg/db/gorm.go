package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	// DSN selects the engine: postgres:// URLs open a postgres connection,
	// anything else is treated as a sqlite path (e.g. "file:rdapi.db").
	DSN    string
	LogSQL bool
}

func OpenGorm(cfg Config) (*gorm.DB, error) {
	lvl := logger.Silent
	if cfg.LogSQL {
		lvl = logger.Info
	}
	gcfg := &gorm.Config{
		Logger: logger.New(log.New(log.Writer(), "", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  lvl,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}

	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return gorm.Open(postgres.Open(cfg.DSN), gcfg)
	}
	return gorm.Open(sqlite.Open(strings.TrimPrefix(cfg.DSN, "file:")), gcfg)
}
