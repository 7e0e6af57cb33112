package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"holocron-go/internal/model"
	"holocron-go/internal/repository"
	"holocron-go/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrFavoritePeopleNotFound = errors.New("Favorite people not found")
	ErrFavoritePlanetNotFound = errors.New("Favorite planet not found")
	ErrUserOrPeopleNotFound   = errors.New("User or person not found")
	ErrUserOrPlanetNotFound   = errors.New("User or planet not found")
)

// 收藏事件类型
const (
	EventFavoriteAdded   = "favorite.added"
	EventFavoriteRemoved = "favorite.removed"

	KindPeople = "people"
	KindPlanet = "planet"
)

// FavoriteEvent 收藏变更事件
type FavoriteEvent struct {
	Type       string    `json:"type"`
	Kind       string    `json:"kind"`
	UserID     int64     `json:"user_id"`
	EntityID   int64     `json:"entity_id"`
	FavoriteID int64     `json:"favorite_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher 事件发布接口，Kafka 生产者实现该接口
type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, []byte) error { return nil }

// DefaultPublishTimeout 未配置时单条事件的发送上限
const DefaultPublishTimeout = 500 * time.Millisecond

type FavoriteService struct {
	favoriteRepo   *repository.FavoriteRepository
	publisher      EventPublisher
	publishTimeout time.Duration
	now            func() time.Time
}

// NewFavoriteService publisher 为 nil 时不发布事件
func NewFavoriteService(favoriteRepo *repository.FavoriteRepository, publisher EventPublisher) *FavoriteService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &FavoriteService{
		favoriteRepo:   favoriteRepo,
		publisher:      publisher,
		publishTimeout: DefaultPublishTimeout,
		now:            time.Now,
	}
}

// WithPublishTimeout 设置单条事件的发送上限，非正数保持默认值
func (s *FavoriteService) WithPublishTimeout(d time.Duration) *FavoriteService {
	if d > 0 {
		s.publishTimeout = d
	}
	return s
}

// AddPeople 收藏人物，允许重复收藏
func (s *FavoriteService) AddPeople(ctx context.Context, userID, peopleID int64) (*model.FavoritePeople, error) {
	fav, err := s.favoriteRepo.CreatePeople(ctx, userID, peopleID)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrUserOrPeopleNotFound, err)
		}
		return nil, err
	}
	s.publish(ctx, EventFavoriteAdded, KindPeople, userID, peopleID, fav.ID)
	return fav, nil
}

// AddPlanet 收藏星球，允许重复收藏
func (s *FavoriteService) AddPlanet(ctx context.Context, userID, planetID int64) (*model.FavoritePlanet, error) {
	fav, err := s.favoriteRepo.CreatePlanet(ctx, userID, planetID)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrUserOrPlanetNotFound, err)
		}
		return nil, err
	}
	s.publish(ctx, EventFavoriteAdded, KindPlanet, userID, planetID, fav.ID)
	return fav, nil
}

// RemovePeople 取消人物收藏
// 存在多条重复记录时只删除查询返回的第一条
func (s *FavoriteService) RemovePeople(ctx context.Context, userID, peopleID int64) error {
	favs, err := s.favoriteRepo.FindPeople(ctx, userID, peopleID)
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		return ErrFavoritePeopleNotFound
	}

	target := favs[0]
	if err := s.favoriteRepo.DeletePeople(ctx, &target); err != nil {
		return err
	}
	s.publish(ctx, EventFavoriteRemoved, KindPeople, userID, peopleID, target.ID)
	return nil
}

// RemovePlanet 取消星球收藏
// 存在多条重复记录时只删除查询返回的第一条
func (s *FavoriteService) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	favs, err := s.favoriteRepo.FindPlanet(ctx, userID, planetID)
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		return ErrFavoritePlanetNotFound
	}

	target := favs[0]
	if err := s.favoriteRepo.DeletePlanet(ctx, &target); err != nil {
		return err
	}
	s.publish(ctx, EventFavoriteRemoved, KindPlanet, userID, planetID, target.ID)
	return nil
}

// publish 在事务提交后发送事件，失败只记录日志，不影响请求结果
// 发送时间受 publishTimeout 限制，broker 不可达时请求不会被拖住
func (s *FavoriteService) publish(ctx context.Context, eventType, kind string, userID, entityID, favoriteID int64) {
	event := FavoriteEvent{
		Type:       eventType,
		Kind:       kind,
		UserID:     userID,
		EntityID:   entityID,
		FavoriteID: favoriteID,
		OccurredAt: s.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal favorite event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	key := fmt.Sprintf("user-%d", userID)
	if err := s.publisher.Publish(ctx, key, payload); err != nil {
		logger.Warn("Failed to publish favorite event",
			zap.String("type", eventType),
			zap.String("kind", kind),
			zap.Int64("user_id", userID),
			zap.Int64("entity_id", entityID),
			zap.Error(err),
		)
	}
}
