package service

import (
	"errors"
	"lingo_backend/internal/config"
	"lingo_backend/internal/model"
	"lingo_backend/internal/repository"
	"lingo_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lingo_backend/internal/util"
)

type AuthService struct {
	UserRepo       *repository.UserRepository
	ProgressRepo   *repository.ProgressRepository
	PreferenceRepo *repository.PreferenceRepository
	Cfg            *config.Config
}

func NewAuthService(
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	preferenceRepo *repository.PreferenceRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		UserRepo:       userRepo,
		ProgressRepo:   progressRepo,
		PreferenceRepo: preferenceRepo,
		Cfg:            cfg,
	}
}

// Register 创建用户并初始化默认的偏好和进度记录，返回登录令牌
func (s *AuthService) Register(email, password string) (*model.User, string, error) {
	_, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return nil, "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Email:    email,
		Password: string(hashedPassword),
		Role:     model.RoleUser,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, "", err
	}

	// 注册即建档，后续读取不再走惰性创建
	if _, err := s.PreferenceRepo.GetOrCreate(user.ID); err != nil {
		logger.Log.Error("default preferences init failed", zap.Uint("userID", user.ID), zap.Error(err))
	}
	if _, err := s.ProgressRepo.GetOrCreate(user.ID); err != nil {
		logger.Log.Error("default progress init failed", zap.Uint("userID", user.ID), zap.Error(err))
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("last login update failed", zap.Uint("userID", user.ID), zap.Error(err))
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	// 令牌有效但用户已不存在时返回 nil，由调用方回应 404
	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}

// UpdateProfile 更新用户名和头像
func (s *AuthService) UpdateProfile(userID uint, username, profileImage string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	user.Username = username
	user.ProfileImage = profileImage
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// SetProfileImage 仅更新头像地址
func (s *AuthService) SetProfileImage(userID uint, url string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	user.ProfileImage = url
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
