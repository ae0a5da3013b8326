package model

// UserPreferences 每个用户唯一的偏好设置，首次访问时按默认值创建
// swagger:model UserPreferences
type UserPreferences struct {
	BaseModel
	UserID         uint   `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	Language       string `gorm:"size:10;default:'en'" json:"language"`
	BaseLanguage   string `gorm:"size:32;default:'en'" json:"baseLanguage"`
	TargetLanguage string `gorm:"size:32;default:'Hausa'" json:"targetLanguage"`
	Theme          string `gorm:"type:enum('light','dark','system');default:'system'" json:"theme"`
	Notifications  bool   `gorm:"default:true" json:"notifications"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}
