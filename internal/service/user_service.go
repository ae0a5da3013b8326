package service

import (
	"errors"
	"lingo_backend/internal/model"
	"lingo_backend/internal/repository"
	"lingo_backend/internal/util"

	"gorm.io/gorm"
)

// UserService 处理管理端的用户管理逻辑
type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// GetUsers 获取用户列表，支持分页、角色筛选和搜索
func (s *UserService) GetUsers(page, pageSize int, role, search string) ([]model.PublicUser, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := s.UserRepo.List(page, pageSize, role, search)
	if err != nil {
		return nil, 0, err
	}

	public := make([]model.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, total, nil
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateUserRole 修改用户角色
func (s *UserService) UpdateUserRole(id uint, role model.UserRole) (*model.User, error) {
	if role != model.RoleUser && role != model.RoleAdmin {
		return nil, errors.New("invalid role")
	}

	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.UserRepo.UpdateRole(user.ID, role); err != nil {
		return nil, err
	}

	user.Role = role
	return user, nil
}
