package model

type Achievement struct {
	BaseModel
	UserID   uint   `gorm:"index:idx_user_code,unique,priority:1;type:bigint unsigned;not null" json:"userId"`
	Code     string `gorm:"size:50;index:idx_user_code,unique,priority:2;not null" json:"code"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Icon     string `gorm:"size:255" json:"icon"`
	EarnedXP int    `gorm:"default:0" json:"earnedXP"`
}

func (Achievement) TableName() string {
	return "achievements"
}
