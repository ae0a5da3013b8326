package repository

import (
	"lingo_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) LessonsByLanguage(language string) ([]model.LessonStage, error) {
	var stages []model.LessonStage
	err := r.DB.Where("language = ?", language).Order("stage_id ASC").Find(&stages).Error
	return stages, err
}

func (r *ContentRepository) VocabularyByLanguage(language string) ([]model.VocabularyStage, error) {
	var stages []model.VocabularyStage
	err := r.DB.Where("language = ?", language).Order("stage_id ASC").Find(&stages).Error
	return stages, err
}

func (r *ContentRepository) QuizzesByLanguage(language string) ([]model.QuizStage, error) {
	var stages []model.QuizStage
	err := r.DB.Where("language = ?", language).Order("stage_id ASC").Find(&stages).Error
	return stages, err
}

// Languages 已有内容覆盖的目标语言列表
func (r *ContentRepository) Languages() ([]string, error) {
	var languages []string
	err := r.DB.Model(&model.LessonStage{}).
		Distinct("language").
		Order("language ASC").
		Pluck("language", &languages).Error
	return languages, err
}
