package service

import (
	"context"
	"errors"
	"time"

	"holocron-go/internal/api/dto"
	"holocron-go/internal/model"
	"holocron-go/internal/repository"
	"holocron-go/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrPersonNotFound = errors.New("Person not found")
	ErrPlanetNotFound = errors.New("Planet not found")
)

const (
	cacheKeyPeople  = "holocron:people:all"
	cacheKeyPlanets = "holocron:planets:all"
)

// Cache 参考数据的读穿缓存，nil 表示不启用
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type CatalogService struct {
	peopleRepo *repository.PeopleRepository
	planetRepo *repository.PlanetRepository
	cache      Cache
	ttl        time.Duration
}

func NewCatalogService(peopleRepo *repository.PeopleRepository, planetRepo *repository.PlanetRepository, cache Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{peopleRepo: peopleRepo, planetRepo: planetRepo, cache: cache, ttl: ttl}
}

// ListPeople 获取全部人物，无数据时返回空列表
func (s *CatalogService) ListPeople(ctx context.Context) ([]dto.PeopleInfo, error) {
	var cached []dto.PeopleInfo
	if s.readCache(ctx, cacheKeyPeople, &cached) {
		return cached, nil
	}

	people, err := s.peopleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := toPeopleInfos(people)
	s.writeCache(ctx, cacheKeyPeople, items)
	return items, nil
}

// GetPerson 按 ID 查询人物，返回单元素列表
func (s *CatalogService) GetPerson(ctx context.Context, id int64) ([]dto.PeopleInfo, error) {
	people, err := s.peopleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(people) == 0 {
		return nil, ErrPersonNotFound
	}
	return toPeopleInfos(people), nil
}

// ListPlanets 获取全部星球，无数据时返回空列表
func (s *CatalogService) ListPlanets(ctx context.Context) ([]dto.PlanetInfo, error) {
	var cached []dto.PlanetInfo
	if s.readCache(ctx, cacheKeyPlanets, &cached) {
		return cached, nil
	}

	planets, err := s.planetRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := toPlanetInfos(planets)
	s.writeCache(ctx, cacheKeyPlanets, items)
	return items, nil
}

// GetPlanet 按 ID 查询星球，返回单元素列表
func (s *CatalogService) GetPlanet(ctx context.Context, id int64) ([]dto.PlanetInfo, error) {
	planets, err := s.planetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(planets) == 0 {
		return nil, ErrPlanetNotFound
	}
	return toPlanetInfos(planets), nil
}

// InvalidateListings 删除人物和星球列表缓存，写入参考数据后调用
func (s *CatalogService) InvalidateListings(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, cacheKeyPeople, cacheKeyPlanets)
}

// 缓存异常只记录日志，降级到数据库
func (s *CatalogService) readCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		logger.Warn("Catalog cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (s *CatalogService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		logger.Warn("Catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func toPeopleInfos(people []model.People) []dto.PeopleInfo {
	items := make([]dto.PeopleInfo, 0, len(people))
	for _, p := range people {
		items = append(items, dto.PeopleInfo{ID: p.ID, Name: p.Name, URL: p.URL})
	}
	return items
}

func toPlanetInfos(planets []model.Planet) []dto.PlanetInfo {
	items := make([]dto.PlanetInfo, 0, len(planets))
	for _, p := range planets {
		items = append(items, dto.PlanetInfo{ID: p.ID, Name: p.Name, URL: p.URL})
	}
	return items
}
