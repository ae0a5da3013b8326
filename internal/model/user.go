package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Email        string    `gorm:"size:100;unique;not null" json:"email"`
	Password     string    `gorm:"size:100;not null" json:"-"`
	Username     string    `gorm:"size:100" json:"username"`
	ProfileImage string    `gorm:"size:255" json:"profileImage"`
	Role         UserRole  `gorm:"type:enum('user','admin');default:'user'" json:"role"`
	LastLogin    time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen     time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser 对外暴露的用户信息（去除时间戳等内部字段）
type PublicUser struct {
	ID           uint     `json:"id"`
	Email        string   `json:"email"`
	Username     string   `json:"username"`
	ProfileImage string   `json:"profileImage"`
	Role         UserRole `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		ProfileImage: u.ProfileImage,
		Role:         u.Role,
	}
}
