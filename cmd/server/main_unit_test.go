package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"velora.backend/internal/config"
	"velora.backend/internal/infrastructure/storage"
	plog "velora.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origNewImageStore := newImageStore
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		newImageStore = origNewImageStore
		runServer = origRunServer
	})
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: "18080",
			Env:  "development",
		},
		Database: config.DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			DBName:   "velora",
			SSLMode:  "disable",
		},
		Redis: config.RedisConfig{
			URL:      "redis://localhost:6379",
			PASSWORD: "",
		},
		JWT: config.JWTConfig{
			Secret:        "secret",
			SessionExpiry: 7 * 24 * time.Hour,
		},
		Admin: config.AdminConfig{
			Email:        "admin@velora.shop",
			PasswordHash: "$2a$12$invalidhashforunittests000000000000000000000000000000",
		},
		AWS: config.AWSConfig{
			Region: "ap-southeast-1",
			Bucket: "velora-test",
		},
		Metrics: config.MetricsConfig{
			Prefix: "velora",
		},
		Frontend: config.FrontendConfig{
			Origin: "http://localhost:3000",
		},
	}
}

func applyTestHooks() {
	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = func(string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:mainunit?mode=memory&cache=shared"), &gorm.Config{})
	}
	newImageStore = func(ctx context.Context, cfg config.AWSConfig) (storage.ImageStore, error) {
		return storage.NewS3Store(ctx, cfg)
	}
	runServer = func(*gin.Engine, string) error { return nil }
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)
	applyTestHooks()
	openDB = func(string) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected db open error")
	}
}

func TestRunMainProcess_RedisFailureIsNotFatal(t *testing.T) {
	withMainHooks(t)
	applyTestHooks()
	initRedis = func(string, string) error { return errors.New("redis down") }

	if err := runMainProcess(); err != nil {
		t.Fatalf("checkout idempotency is best effort, boot must continue: %v", err)
	}
}

func TestRunMainProcess_ImageStoreError(t *testing.T) {
	withMainHooks(t)
	applyTestHooks()
	newImageStore = func(context.Context, config.AWSConfig) (storage.ImageStore, error) {
		return nil, errors.New("no aws credentials")
	}

	if err := runMainProcess(); err == nil {
		t.Fatal("expected image store error")
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)
	applyTestHooks()
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected server run error")
	}
}

func TestRunMainProcess_SuccessPath(t *testing.T) {
	withMainHooks(t)
	applyTestHooks()

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
