package dto

// FavoritePeopleInfo 人物收藏序列化结果
type FavoritePeopleInfo struct {
	PeopleID int64 `json:"id_people"`
}

// FavoritePlanetInfo 星球收藏序列化结果
type FavoritePlanetInfo struct {
	PlanetID int64 `json:"id_planet"`
}

// UserIDRequest 收藏相关接口的请求体，仅用于文档
type UserIDRequest struct {
	UserID int64 `json:"user_id" example:"1"`
}

// FavoriteCreatedResponse 添加收藏响应，result 原样回显请求体
type FavoriteCreatedResponse struct {
	Msg    string                 `json:"msg" example:"POST /favorite/planet/<int:planet_id> response"`
	Result map[string]interface{} `json:"result"`
}

// FavoriteDeletedResponse 删除收藏响应
type FavoriteDeletedResponse struct {
	Msg    string `json:"msg" example:"DELETE /favorite/planet/<int:planet_id> response"`
	Status string `json:"status" example:"done"`
}
