package database

import (
	"fmt"
	"strings"
	"time"

	"holocron-go/internal/config"
	"holocron-go/internal/model"
	"holocron-go/pkg/logger"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open 根据配置打开数据库连接
// 配置了 postgres:// URL 时使用 PostgreSQL，否则回退到本地 SQLite 文件
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, target := dialectorFor(cfg)

	db, err := gorm.Open(dialector, &gorm.Config{
		// 将驱动错误翻译为 gorm.ErrForeignKeyViolated 等通用错误
		TranslateError: true,
		Logger:         NewGormLogger(cfg.SlowThreshold()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connected",
		zap.String("dialect", dialector.Name()),
		zap.String("target", target),
		zap.Int("max_open_conns", cfg.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
	)

	return db, nil
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, string) {
	if cfg.UsesPostgres() {
		dsn := strings.TrimSpace(cfg.URL)
		return postgres.Open(dsn), redactURL(dsn)
	}
	// SQLite 默认不启用外键约束，需要通过 pragma 打开
	dsn := cfg.SQLitePath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	return sqlite.Open(dsn), cfg.SQLitePath
}

// redactURL 去掉连接串中的密码，避免写入日志
func redactURL(url string) string {
	if !strings.Contains(url, "://") {
		return redactKeyValueDSN(url)
	}
	at := strings.LastIndex(url, "@")
	scheme := strings.Index(url, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return url
	}
	creds := url[scheme+3 : at]
	if colon := strings.Index(creds, ":"); colon >= 0 {
		creds = creds[:colon] + ":***"
	}
	return url[:scheme+3] + creds + url[at:]
}

// redactKeyValueDSN 处理 host=... password=... 形式的连接串
func redactKeyValueDSN(dsn string) string {
	fields := strings.Fields(dsn)
	for i, f := range fields {
		if strings.HasPrefix(f, "password=") {
			fields[i] = "password=***"
		}
	}
	return strings.Join(fields, " ")
}

// AutoMigrate 自动迁移全部表结构
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	logger.Info("Database auto migration completed")
	return nil
}

// Close 关闭数据库连接
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	logger.Info("Database connection closed")
	return sqlDB.Close()
}
