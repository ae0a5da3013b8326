package service

import (
	"lingo_backend/internal/model"
	"lingo_backend/internal/repository"
)

// AchievementRule 由进度快照推导的成就规则
type AchievementRule struct {
	Code      string
	Name      string
	Icon      string
	EarnedXP  int
	Qualifies func(p *model.UserProgress) bool
}

// 成就阈值与产品端的展示保持一致
var achievementRules = []AchievementRule{
	{
		Code:     "first_steps",
		Name:     "First Steps",
		Icon:     "🎯",
		EarnedXP: 10,
		Qualifies: func(p *model.UserProgress) bool {
			return p.LessonsCompleted >= 1
		},
	},
	{
		Code:     "point_collector",
		Name:     "Point Collector",
		Icon:     "💎",
		EarnedXP: 20,
		Qualifies: func(p *model.UserProgress) bool {
			return p.XP >= 100
		},
	},
	{
		Code:     "level_up",
		Name:     "Level Up",
		Icon:     "🆙",
		EarnedXP: 20,
		Qualifies: func(p *model.UserProgress) bool {
			return p.Level >= 2
		},
	},
	{
		Code:     "dedicated",
		Name:     "Dedicated",
		Icon:     "🔥",
		EarnedXP: 30,
		Qualifies: func(p *model.UserProgress) bool {
			return p.Streak >= 3
		},
	},
}

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
}

func NewAchievementService(achievementRepo *repository.AchievementRepository) *AchievementService {
	return &AchievementService{AchievementRepo: achievementRepo}
}

// QualifiedCodes 给定进度快照下满足条件的成就代码
func QualifiedCodes(p *model.UserProgress) []string {
	var codes []string
	for _, rule := range achievementRules {
		if rule.Qualifies(p) {
			codes = append(codes, rule.Code)
		}
	}
	return codes
}

// SyncForProgress 为新达成的成就补写记录，返回本次新增的成就
func (s *AchievementService) SyncForProgress(userID uint, p *model.UserProgress) ([]model.Achievement, error) {
	owned, err := s.AchievementRepo.CodesByUser(userID)
	if err != nil {
		return nil, err
	}

	var awarded []model.Achievement
	for _, rule := range achievementRules {
		if owned[rule.Code] || !rule.Qualifies(p) {
			continue
		}

		achievement := model.Achievement{
			UserID:   userID,
			Code:     rule.Code,
			Name:     rule.Name,
			Icon:     rule.Icon,
			EarnedXP: rule.EarnedXP,
		}
		if err := s.AchievementRepo.Create(&achievement); err != nil {
			return awarded, err
		}
		awarded = append(awarded, achievement)
	}

	return awarded, nil
}

func (s *AchievementService) GetUserAchievements(userID uint) ([]model.Achievement, error) {
	return s.AchievementRepo.FindByUser(userID)
}
