// Package dbtest 为测试提供独立的 SQLite 数据库
package dbtest

import (
	"path/filepath"
	"testing"

	"holocron-go/internal/config"
	"holocron-go/internal/infra/database"
	"holocron-go/internal/model"

	"gorm.io/gorm"
)

// New 在临时目录中创建已迁移的 SQLite 数据库，测试结束时自动关闭
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{
		SQLitePath:   filepath.Join(t.TempDir(), "holocron_test.db"),
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// User 插入一个测试用户
func User(t testing.TB, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, Password: "hashed-" + email, IsActive: true}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// People 插入一个测试人物
func People(t testing.TB, db *gorm.DB, name string) *model.People {
	t.Helper()
	p := &model.People{Name: name, URL: "https://swapi.dev/api/people/" + name}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create people: %v", err)
	}
	return p
}

// Planet 插入一个测试星球
func Planet(t testing.TB, db *gorm.DB, name string) *model.Planet {
	t.Helper()
	p := &model.Planet{Name: name, URL: "https://swapi.dev/api/planets/" + name}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create planet: %v", err)
	}
	return p
}
