package repository

import (
	"context"

	"holocron-go/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List 查询全部用户
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

// FirstOrCreateByEmail 按邮箱查找用户，不存在则创建（用于初始化数据）
func (r *UserRepository) FirstOrCreateByEmail(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).
		Where("email = ?", user.Email).
		Attrs(model.User{Password: user.Password, IsActive: user.IsActive}).
		FirstOrCreate(user).Error
}
