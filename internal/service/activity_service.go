package service

import (
	"encoding/json"
	"lingo_backend/internal/model"
	"lingo_backend/internal/repository"
)

// ActivityPage 分页返回的活动日志
type ActivityPage struct {
	Activities []ActivityItem `json:"activities"`
	Total      int64          `json:"total"`
	HasMore    bool           `json:"hasMore"`
}

// ActivityItem 对外的活动日志条目，管理端查询时附带用户信息
type ActivityItem struct {
	model.Activity
	UserInfo *ActivityUser `json:"user,omitempty"`
}

type ActivityUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
}

func NewActivityService(activityRepo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{ActivityRepo: activityRepo}
}

// ListForUser 用户维度的活动日志，按时间倒序分页
func (s *ActivityService) ListForUser(userID uint, limit, skip int) (*ActivityPage, error) {
	activities, err := s.ActivityRepo.FindByUser(userID, limit, skip)
	if err != nil {
		return nil, err
	}

	total, err := s.ActivityRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, len(activities))
	for _, a := range activities {
		items = append(items, ActivityItem{Activity: a})
	}

	return &ActivityPage{
		Activities: items,
		Total:      total,
		HasMore:    int64(skip+limit) < total,
	}, nil
}

// Create 追加一条活动日志，日志创建后不会被修改
func (s *ActivityService) Create(userID uint, activityType, description string, metadata json.RawMessage) (*model.Activity, error) {
	activity := &model.Activity{
		UserID:      userID,
		Type:        activityType,
		Description: description,
		Metadata:    metadata,
	}
	if err := s.ActivityRepo.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// ListAll 管理端：所有用户的活动日志，附带用户展示信息
func (s *ActivityService) ListAll(limit, skip int) (*ActivityPage, error) {
	activities, err := s.ActivityRepo.FindAll(limit, skip)
	if err != nil {
		return nil, err
	}

	total, err := s.ActivityRepo.CountAll()
	if err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, len(activities))
	for _, a := range activities {
		item := ActivityItem{Activity: a}
		if a.User != nil {
			item.UserInfo = &ActivityUser{
				Username: a.User.Username,
				Email:    a.User.Email,
			}
		}
		item.Activity.User = nil
		items = append(items, item)
	}

	return &ActivityPage{
		Activities: items,
		Total:      total,
		HasMore:    int64(skip+limit) < total,
	}, nil
}
