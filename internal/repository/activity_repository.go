package repository

import (
	"lingo_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(activity *model.Activity) error {
	return r.DB.Create(activity).Error
}

// FindByUser 按创建时间倒序分页返回用户的活动日志
func (r *ActivityRepository) FindByUser(userID uint, limit, skip int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(skip).
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Activity{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// FindAll 管理端：全量活动日志，联出用户信息
func (r *ActivityRepository) FindAll(limit, skip int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(skip).
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Activity{}).Count(&count).Error
	return count, err
}
