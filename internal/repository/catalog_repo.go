package repository

import (
	"context"

	"holocron-go/internal/model"

	"gorm.io/gorm"
)

type PeopleRepository struct {
	db *gorm.DB
}

func NewPeopleRepository(db *gorm.DB) *PeopleRepository {
	return &PeopleRepository{db: db}
}

// List 查询全部人物
func (r *PeopleRepository) List(ctx context.Context) ([]model.People, error) {
	var people []model.People
	err := r.db.WithContext(ctx).Order("id").Find(&people).Error
	return people, err
}

// FindByID 按 ID 过滤查询，返回零或一条记录；不存在时返回空切片而非错误
func (r *PeopleRepository) FindByID(ctx context.Context, id int64) ([]model.People, error) {
	var people []model.People
	err := r.db.WithContext(ctx).Where("id = ?", id).Find(&people).Error
	return people, err
}

// FirstOrCreateByName 按名称查找人物，不存在则创建
func (r *PeopleRepository) FirstOrCreateByName(ctx context.Context, p *model.People) error {
	return r.db.WithContext(ctx).
		Where("name = ?", p.Name).
		Attrs(model.People{URL: p.URL}).
		FirstOrCreate(p).Error
}

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

// List 查询全部星球
func (r *PlanetRepository) List(ctx context.Context) ([]model.Planet, error) {
	var planets []model.Planet
	err := r.db.WithContext(ctx).Order("id").Find(&planets).Error
	return planets, err
}

// FindByID 按 ID 过滤查询，返回零或一条记录
func (r *PlanetRepository) FindByID(ctx context.Context, id int64) ([]model.Planet, error) {
	var planets []model.Planet
	err := r.db.WithContext(ctx).Where("id = ?", id).Find(&planets).Error
	return planets, err
}

// FirstOrCreateByName 按名称查找星球，不存在则创建
func (r *PlanetRepository) FirstOrCreateByName(ctx context.Context, p *model.Planet) error {
	return r.db.WithContext(ctx).
		Where("name = ?", p.Name).
		Attrs(model.Planet{URL: p.URL}).
		FirstOrCreate(p).Error
}
