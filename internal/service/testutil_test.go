package service

import (
	"testing"

	"github.com/a2lab/schreibtrainer/config"
	"github.com/a2lab/schreibtrainer/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so every statement sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Task{},
		&model.Attempt{},
		&model.LexLog{},
		&model.PromptTemplate{},
	))
	return db
}

// offlineConfig has no API key: every pipeline takes the mock path.
func offlineConfig() *config.Config {
	cfg := &config.Config{}
	cfg.OpenRouter.BaseURL = "http://127.0.0.1:1/unreachable"
	return cfg
}

func onlineConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.OpenRouter.APIKey = "test-key"
	cfg.OpenRouter.BaseURL = baseURL
	return cfg
}
