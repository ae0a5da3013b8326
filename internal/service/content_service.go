package service

import (
	"lingo_backend/internal/model"
	"lingo_backend/internal/repository"
)

// 未指定语言时返回默认目标语言的内容
const defaultTargetLanguage = "Hausa"

type ContentService struct {
	ContentRepo *repository.ContentRepository
}

func NewContentService(contentRepo *repository.ContentRepository) *ContentService {
	return &ContentService{ContentRepo: contentRepo}
}

func normalizeLanguage(language string) string {
	if language == "" {
		return defaultTargetLanguage
	}
	return language
}

func (s *ContentService) GetLessons(language string) ([]model.LessonStage, error) {
	return s.ContentRepo.LessonsByLanguage(normalizeLanguage(language))
}

func (s *ContentService) GetVocabulary(language string) ([]model.VocabularyStage, error) {
	return s.ContentRepo.VocabularyByLanguage(normalizeLanguage(language))
}

func (s *ContentService) GetQuizzes(language string) ([]model.QuizStage, error) {
	return s.ContentRepo.QuizzesByLanguage(normalizeLanguage(language))
}

func (s *ContentService) GetLanguages() ([]string, error) {
	return s.ContentRepo.Languages()
}
