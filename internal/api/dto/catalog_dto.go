package dto

// PeopleInfo 人物序列化结果
type PeopleInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PlanetInfo 星球序列化结果
type PlanetInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PeopleListResponse GET /people 响应
type PeopleListResponse struct {
	Msg    string       `json:"msg" example:"GET /people response"`
	People []PeopleInfo `json:"people"`
}

// PersonResponse GET /people/{id} 响应，person 为至多一个元素的列表
type PersonResponse struct {
	Msg    string       `json:"msg" example:"GET /people/<int:people_id> response"`
	Person []PeopleInfo `json:"person"`
}

// PlanetListResponse GET /planets 响应（字段名沿用 users）
type PlanetListResponse struct {
	Msg   string       `json:"msg" example:"GET /planets response"`
	Users []PlanetInfo `json:"users"`
}

// PlanetResponse GET /planets/{id} 响应，result 为至多一个元素的列表
type PlanetResponse struct {
	Msg    string       `json:"msg" example:"GET /planets/<int:planet_id> response"`
	Result []PlanetInfo `json:"result"`
}
