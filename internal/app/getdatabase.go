package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mengsruy/webstore/config"
)

func getDatabase(cfg config.DBConfig, workdir string) *gorm.DB {
	level := gormlogger.Silent
	if cfg.Debug {
		level = gormlogger.Info
	}
	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(level)}

	switch strings.ToLower(cfg.Type) {
	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
			cfg.Host, cfg.User, cfg.Passwd, cfg.Name, cfg.Port)
		db, err := gorm.Open(postgres.Open(dsn), gcfg)
		if err != nil {
			zap.S().Panicf("failed to connect postgres: %v", err)
		}
		return db
	default:
		dbpath := filepath.Join(workdir, "data", "store.db")
		db, err := gorm.Open(sqlite.Open(dbpath), gcfg)
		if err != nil {
			zap.S().Panicf("failed to open sqlite database %s: %v", dbpath, err)
		}
		return db
	}
}
