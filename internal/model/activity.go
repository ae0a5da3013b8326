package model

import (
	"encoding/json"
	"time"
)

// 活动日志类型
const (
	ActivityProgressUpdate = "progress_update"
)

// Activity 追加式的用户行为日志，创建后不再修改、不做软删除。
// 时间戳字段不走 BaseModel，created_at 需要参与 (user_id, created_at) 联合索引
// swagger:model Activity
type Activity struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time       `gorm:"index:idx_user_created,priority:2" json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	UserID      uint            `gorm:"index:idx_user_created,priority:1;type:bigint unsigned;not null" json:"userId"`
	User        *User           `gorm:"foreignKey:UserID" json:"-"`
	Type        string          `gorm:"size:50;not null" json:"type"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Metadata    json.RawMessage `gorm:"type:json" json:"metadata,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}

// ProgressMetadata 进度更新活动所携带的快照
type ProgressMetadata struct {
	Level            int `json:"level"`
	XP               int `json:"xp"`
	Streak           int `json:"streak"`
	LessonsCompleted int `json:"lessonsCompleted"`
}
