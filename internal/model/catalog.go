package model

// People 人物参考数据
type People struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:250;not null;uniqueIndex" json:"name"`
	URL  string `gorm:"column:url;size:200;not null;uniqueIndex" json:"url"`
}

func (People) TableName() string {
	return "people"
}

// Planet 星球参考数据
type Planet struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:250;not null;uniqueIndex" json:"name"`
	URL  string `gorm:"column:url;size:200;not null;uniqueIndex" json:"url"`
}

func (Planet) TableName() string {
	return "planets"
}
