package model

import (
	"time"
)

// UserProgress 每个用户唯一的学习进度记录
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID           uint       `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	Level            int        `gorm:"default:1" json:"level"`
	XP               int        `gorm:"default:0" json:"xp"`
	Streak           int        `gorm:"default:0" json:"streak"` // 连续学习天数
	LessonsCompleted int        `gorm:"default:0" json:"lessonsCompleted"`
	LastActivityDate *time.Time `json:"lastActivityDate"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
