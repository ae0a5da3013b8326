package repository

import (
	"errors"
	"lingo_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUser(userID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ?", userID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) Create(progress *model.UserProgress) error {
	return r.DB.Create(progress).Error
}

// GetOrCreate 返回用户的进度记录，不存在时创建一条零值记录。
// 首次读取即建档是对外的契约，而不是隐藏的副作用。
func (r *ProgressRepository) GetOrCreate(userID uint) (*model.UserProgress, error) {
	progress, err := r.FindByUser(userID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = &model.UserProgress{
		UserID: userID,
		Level:  1,
	}
	if err := r.Create(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// Upsert 按用户ID保存进度（存在则整体覆盖，不存在则插入）。
// 并发更新同一用户时后写者胜出。
func (r *ProgressRepository) Upsert(progress *model.UserProgress) error {
	existing, err := r.FindByUser(progress.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.DB.Create(progress).Error
		}
		return err
	}

	progress.ID = existing.ID
	progress.CreatedAt = existing.CreatedAt
	return r.DB.Save(progress).Error
}

// LeaderboardRow 排行榜行，进度数据加上所属用户信息
type LeaderboardRow struct {
	model.UserProgress
	Username     string `json:"-"`
	Email        string `json:"-"`
	ProfileImage string `json:"-"`
}

// TopByXP 按经验值降序取前 limit 名，并联出用户展示信息
func (r *ProgressRepository) TopByXP(limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.DB.Model(&model.UserProgress{}).
		Select("user_progress.*, users.username, users.email, users.profile_image").
		Joins("JOIN users ON users.id = user_progress.user_id").
		Order("user_progress.xp DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
