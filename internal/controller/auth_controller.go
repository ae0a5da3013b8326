package controller

import (
	"errors"
	"fmt"
	"lingo_backend/internal/model"
	"lingo_backend/internal/service"
	"lingo_backend/internal/util"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService    *service.AuthService
	StorageService *service.StorageService
}

func NewAuthController(authService *service.AuthService, storageService *service.StorageService) *AuthController {
	return &AuthController{
		AuthService:    authService,
		StorageService: storageService,
	}
}

// swagger:model SignupRequest
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// swagger:model SigninRequest
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse 注册/登录的响应体
// swagger:model AuthResponse
type AuthResponse struct {
	User  model.PublicUser `json:"user"`
	Token string           `json:"token"`
}

// Signup godoc
// @Summary 注册新用户
// @Description 创建账号并初始化默认偏好和进度
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body SignupRequest true "注册信息"
// @Success 201 {object} AuthResponse "创建成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误或邮箱已被注册"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Register(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.BadRequest(ctx, "User already exists")
		} else {
			util.LogServerError(ctx, err)
		}
		return
	}

	util.Created(ctx, AuthResponse{User: user.Public(), Token: token})
}

// Signin godoc
// @Summary 用户登录
// @Description 验证用户身份并返回JWT令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body SigninRequest true "登录凭据"
// @Success 200 {object} AuthResponse "成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "凭据无效"
// @Router /api/auth/signin [post]
func (c *AuthController) Signin(ctx *gin.Context) {
	var req SigninRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Unauthorized(ctx, "Invalid credentials")
		} else {
			util.LogServerError(ctx, err)
		}
		return
	}

	util.Success(ctx, AuthResponse{User: user.Public(), Token: token})
}

// Signout godoc
// @Summary 退出登录
// @Description 令牌由客户端自行丢弃
// @Tags 认证
// @Produce  json
// @Success 200 {object} object "成功"
// @Router /api/auth/signout [post]
func (c *AuthController) Signout(ctx *gin.Context) {
	util.Success(ctx, gin.H{"message": "Signed out successfully"})
}

// Me godoc
// @Summary 当前用户
// @Description 返回当前用户及其偏好和进度
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} object "成功"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 404 {object} util.ErrorResponse "用户不存在"
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.NotFound(ctx, "User not found")
		return
	}

	preferences, err := c.AuthService.PreferenceRepo.GetOrCreate(user.ID)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	progress, err := c.AuthService.ProgressRepo.GetOrCreate(user.ID)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"user":        user.Public(),
		"preferences": preferences,
		"progress":    progress,
	})
}

// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage"`
}

// UpdateProfile godoc
// @Summary 更新个人资料
// @Description 更新用户名和头像
// @Tags 认证
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body UpdateProfileRequest true "资料"
// @Success 200 {object} object "成功"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 404 {object} util.ErrorResponse "用户不存在"
// @Router /api/auth/profile [patch]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "No token provided")
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.UpdateProfile(claims.UserID, req.Username, req.ProfileImage)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogServerError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"user": user.Public()})
}

// UploadAvatar godoc
// @Summary 上传头像
// @Description 上传头像文件并更新用户资料
// @Tags 认证
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "头像文件"
// @Success 200 {object} object "成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /api/auth/avatar/upload [post]
func (c *AuthController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "No token provided")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("avatars/%d_%s%s", claims.UserID, model.GenerateUUID(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	user, err := c.AuthService.SetProfileImage(claims.UserID, url)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url, "user": user.Public()})
}
