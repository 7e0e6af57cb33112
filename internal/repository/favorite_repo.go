package repository

import (
	"context"
	"errors"
	"strings"

	"holocron-go/internal/model"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// CreatePeople 在单个事务中保存一条人物收藏
// 不预先检查用户和人物是否存在，由外键约束保证
func (r *FavoriteRepository) CreatePeople(ctx context.Context, userID, peopleID int64) (*model.FavoritePeople, error) {
	fav := &model.FavoritePeople{UserID: userID, PeopleID: peopleID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("User", "People").Create(fav).Error
	})
	if err != nil {
		return nil, err
	}
	return fav, nil
}

// CreatePlanet 在单个事务中保存一条星球收藏
func (r *FavoriteRepository) CreatePlanet(ctx context.Context, userID, planetID int64) (*model.FavoritePlanet, error) {
	fav := &model.FavoritePlanet{UserID: userID, PlanetID: planetID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("User", "Planet").Create(fav).Error
	})
	if err != nil {
		return nil, err
	}
	return fav, nil
}

// FindPeople 查询 (用户, 人物) 对应的全部收藏记录，顺序由存储引擎决定
func (r *FavoriteRepository) FindPeople(ctx context.Context, userID, peopleID int64) ([]model.FavoritePeople, error) {
	var favs []model.FavoritePeople
	err := r.db.WithContext(ctx).
		Where("id_user = ? AND id_people = ?", userID, peopleID).
		Find(&favs).Error
	return favs, err
}

// FindPlanet 查询 (用户, 星球) 对应的全部收藏记录
func (r *FavoriteRepository) FindPlanet(ctx context.Context, userID, planetID int64) ([]model.FavoritePlanet, error) {
	var favs []model.FavoritePlanet
	err := r.db.WithContext(ctx).
		Where("id_user = ? AND id_planet = ?", userID, planetID).
		Find(&favs).Error
	return favs, err
}

// DeletePeople 在单个事务中删除指定的人物收藏
func (r *FavoriteRepository) DeletePeople(ctx context.Context, fav *model.FavoritePeople) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&model.FavoritePeople{}, fav.ID).Error
	})
}

// DeletePlanet 在单个事务中删除指定的星球收藏
func (r *FavoriteRepository) DeletePlanet(ctx context.Context, fav *model.FavoritePlanet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&model.FavoritePlanet{}, fav.ID).Error
	})
}

// ListPeopleByUser 获取用户收藏的人物记录
func (r *FavoriteRepository) ListPeopleByUser(ctx context.Context, userID int64) ([]model.FavoritePeople, error) {
	var favs []model.FavoritePeople
	err := r.db.WithContext(ctx).Where("id_user = ?", userID).Order("id").Find(&favs).Error
	return favs, err
}

// ListPlanetsByUser 获取用户收藏的星球记录
func (r *FavoriteRepository) ListPlanetsByUser(ctx context.Context, userID int64) ([]model.FavoritePlanet, error) {
	var favs []model.FavoritePlanet
	err := r.db.WithContext(ctx).Where("id_user = ?", userID).Order("id").Find(&favs).Error
	return favs, err
}

// IsForeignKeyViolation 判断错误是否为外键约束失败
// 驱动未翻译错误时，按 PostgreSQL 错误码 23503 和 SQLite 错误信息兜底
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint") || strings.Contains(msg, "23503")
}
