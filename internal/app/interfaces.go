package app

import (
	"context"

	"gorm.io/gorm"

	"github.com/mengsruy/webstore/config"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// WebContext combines the providers the web layer depends on
type WebContext interface {
	DBProvider
	ConfigProvider

	// BootstrapStore ensures schema and seed data; idempotent.
	BootstrapStore(ctx context.Context) error
}
