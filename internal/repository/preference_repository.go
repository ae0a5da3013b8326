package repository

import (
	"errors"
	"lingo_backend/internal/model"

	"gorm.io/gorm"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

func (r *PreferenceRepository) FindByUser(userID uint) (*model.UserPreferences, error) {
	var prefs model.UserPreferences
	err := r.DB.Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *PreferenceRepository) Create(prefs *model.UserPreferences) error {
	return r.DB.Create(prefs).Error
}

// GetOrCreate 返回用户偏好，不存在时按默认值创建
func (r *PreferenceRepository) GetOrCreate(userID uint) (*model.UserPreferences, error) {
	prefs, err := r.FindByUser(userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	prefs = &model.UserPreferences{
		UserID:         userID,
		Language:       "en",
		BaseLanguage:   "en",
		TargetLanguage: "Hausa",
		Theme:          "system",
		Notifications:  true,
	}
	if err := r.Create(prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (r *PreferenceRepository) Update(prefs *model.UserPreferences) error {
	return r.DB.Save(prefs).Error
}
