// Package seed 将初始化数据写入数据库，重复执行不会产生重复记录
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"holocron-go/internal/model"
	"holocron-go/internal/repository"
	"holocron-go/pkg/logger"
	"holocron-go/pkg/utils"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var defaultData []byte

// Data 初始化数据文件结构
type Data struct {
	Users []struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		IsActive bool   `yaml:"is_active"`
	} `yaml:"users"`
	People []struct {
		Name string `yaml:"name"`
		URL  string `yaml:"url"`
	} `yaml:"people"`
	Planets []struct {
		Name string `yaml:"name"`
		URL  string `yaml:"url"`
	} `yaml:"planets"`
}

// Load 读取初始化数据，path 为空时使用内置数据
func Load(path string) (*Data, error) {
	raw := defaultData
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		raw = b
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

// Apply 在单个事务中写入用户、人物和星球，密码以 bcrypt 哈希保存
func Apply(ctx context.Context, db *gorm.DB, data *Data) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		people := repository.NewPeopleRepository(tx)
		planets := repository.NewPlanetRepository(tx)

		for _, u := range data.Users {
			hash, err := utils.HashPassword(u.Password)
			if err != nil {
				return err
			}
			user := &model.User{Email: u.Email, Password: hash, IsActive: u.IsActive}
			if err := users.FirstOrCreateByEmail(ctx, user); err != nil {
				return fmt.Errorf("seed user %s: %w", u.Email, err)
			}
		}

		for _, p := range data.People {
			if err := people.FirstOrCreateByName(ctx, &model.People{Name: p.Name, URL: p.URL}); err != nil {
				return fmt.Errorf("seed people %s: %w", p.Name, err)
			}
		}

		for _, p := range data.Planets {
			if err := planets.FirstOrCreateByName(ctx, &model.Planet{Name: p.Name, URL: p.URL}); err != nil {
				return fmt.Errorf("seed planet %s: %w", p.Name, err)
			}
		}

		logger.Info("Seed data applied",
			zap.Int("users", len(data.Users)),
			zap.Int("people", len(data.People)),
			zap.Int("planets", len(data.Planets)),
		)
		return nil
	})
}
