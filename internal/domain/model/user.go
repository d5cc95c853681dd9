package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// usersテーブル。カラム名は既存スキーマに合わせる。
type User struct {
	ID         int64  `gorm:"primaryKey;autoIncrement;column:user_id" json:"userId"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Username   string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Birthdate  string `gorm:"type:varchar(50)" json:"birthdate"`
	Address    string `gorm:"type:varchar(255)" json:"address"`
	Role       Role   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Email      string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password   string `gorm:"type:varchar(255);not null" json:"-"`
	ProfilePic string `gorm:"type:varchar(512);column:profile_pic" json:"profile_pic"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string { return "users" }
