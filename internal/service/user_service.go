package service

import (
	"context"

	"holocron-go/internal/api/dto"
	"holocron-go/internal/model"
	"holocron-go/internal/repository"
)

type UserService struct {
	userRepo     *repository.UserRepository
	favoriteRepo *repository.FavoriteRepository
}

func NewUserService(userRepo *repository.UserRepository, favoriteRepo *repository.FavoriteRepository) *UserService {
	return &UserService{userRepo: userRepo, favoriteRepo: favoriteRepo}
}

// ListUsers 获取全部用户
func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserInfo, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		items = append(items, toUserInfo(&users[i]))
	}
	return items, nil
}

// GetFavorites 获取用户收藏的人物和星球
// 用户不存在时返回两个空列表
func (s *UserService) GetFavorites(ctx context.Context, userID int64) (*dto.UserFavorites, error) {
	people, err := s.favoriteRepo.ListPeopleByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	planets, err := s.favoriteRepo.ListPlanetsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &dto.UserFavorites{
		People:  make([]dto.FavoritePeopleInfo, 0, len(people)),
		Planets: make([]dto.FavoritePlanetInfo, 0, len(planets)),
	}
	for _, f := range people {
		result.People = append(result.People, dto.FavoritePeopleInfo{PeopleID: f.PeopleID})
	}
	for _, f := range planets {
		result.Planets = append(result.Planets, dto.FavoritePlanetInfo{PlanetID: f.PlanetID})
	}
	return result, nil
}

// toUserInfo 只投影 id 和 email，密码不进入任何响应
func toUserInfo(u *model.User) dto.UserInfo {
	return dto.UserInfo{ID: u.ID, Email: u.Email}
}
