package service

import (
	"lingo_backend/internal/model"
	"lingo_backend/internal/repository"
)

// PreferenceUpdate 偏好更新请求，nil 字段表示不修改
type PreferenceUpdate struct {
	Language       *string `json:"language"`
	BaseLanguage   *string `json:"baseLanguage"`
	TargetLanguage *string `json:"targetLanguage"`
	Theme          *string `json:"theme" binding:"omitempty,oneof=light dark system"`
	Notifications  *bool   `json:"notifications"`
}

type PreferenceService struct {
	PreferenceRepo *repository.PreferenceRepository
}

func NewPreferenceService(preferenceRepo *repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{PreferenceRepo: preferenceRepo}
}

// GetPreferences 返回用户偏好，首次访问按默认值创建
func (s *PreferenceService) GetPreferences(userID uint) (*model.UserPreferences, error) {
	return s.PreferenceRepo.GetOrCreate(userID)
}

// UpdatePreferences 部分更新用户偏好，未提供的字段保持原值
func (s *PreferenceService) UpdatePreferences(userID uint, update PreferenceUpdate) (*model.UserPreferences, error) {
	prefs, err := s.PreferenceRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if update.Language != nil {
		prefs.Language = *update.Language
	}
	if update.BaseLanguage != nil {
		prefs.BaseLanguage = *update.BaseLanguage
	}
	if update.TargetLanguage != nil {
		prefs.TargetLanguage = *update.TargetLanguage
	}
	if update.Theme != nil {
		prefs.Theme = *update.Theme
	}
	if update.Notifications != nil {
		prefs.Notifications = *update.Notifications
	}

	if err := s.PreferenceRepo.Update(prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
