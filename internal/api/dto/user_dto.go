package dto

// UserInfo 用户序列化结果，不包含密码
type UserInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// UserListResponse GET /user 响应
type UserListResponse struct {
	Msg   string     `json:"msg" example:"GET /user response"`
	Users []UserInfo `json:"users"`
}

// UserFavorites 用户收藏汇总
type UserFavorites struct {
	People  []FavoritePeopleInfo `json:"people"`
	Planets []FavoritePlanetInfo `json:"planets"`
}

// UserFavoritesResponse GET /user/favorites 响应
type UserFavoritesResponse struct {
	Msg       string        `json:"msg" example:"GET /user/favorites response"`
	Favorites UserFavorites `json:"favorites"`
}
