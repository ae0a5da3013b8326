package repository

import (
	"lingo_backend/internal/model"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) Create(achievement *model.Achievement) error {
	return r.DB.Create(achievement).Error
}

func (r *AchievementRepository) FindByUser(userID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&achievements).Error
	return achievements, err
}

// CodesByUser 用户已获得的成就代码集合
func (r *AchievementRepository) CodesByUser(userID uint) (map[string]bool, error) {
	var codes []string
	err := r.DB.Model(&model.Achievement{}).
		Where("user_id = ?", userID).
		Pluck("code", &codes).Error
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(codes))
	for _, code := range codes {
		set[code] = true
	}
	return set, nil
}
