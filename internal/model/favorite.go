package model

// FavoritePeople 用户收藏的人物
// 同一 (用户, 人物) 允许重复收藏，表上不建唯一索引
type FavoritePeople struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   int64 `gorm:"column:id_user;not null;index" json:"id_user"`
	PeopleID int64 `gorm:"column:id_people;not null;index" json:"id_people"`

	// 关联关系，仅用于生成外键约束
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	People People `gorm:"foreignKey:PeopleID" json:"-"`
}

func (FavoritePeople) TableName() string {
	return "favorite_people"
}

// FavoritePlanet 用户收藏的星球
type FavoritePlanet struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   int64 `gorm:"column:id_user;not null;index" json:"id_user"`
	PlanetID int64 `gorm:"column:id_planet;not null;index" json:"id_planet"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Planet Planet `gorm:"foreignKey:PlanetID" json:"-"`
}

func (FavoritePlanet) TableName() string {
	return "favorite_planets"
}

// All 返回需要迁移的全部模型，按外键依赖排序
func All() []interface{} {
	return []interface{}{
		&User{},
		&People{},
		&Planet{},
		&FavoritePeople{},
		&FavoritePlanet{},
	}
}
