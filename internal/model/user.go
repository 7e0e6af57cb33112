package model

// User 用户模型，由外部创建，本服务只读
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"size:120;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:80;not null" json:"-"` // json:"-" 序列化时忽略密码
	IsActive bool   `gorm:"not null" json:"is_active"`
}

func (User) TableName() string {
	return "user"
}
