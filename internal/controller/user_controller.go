package controller

import (
	"errors"
	"lingo_backend/internal/model"
	"lingo_backend/internal/service"
	"lingo_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UserController 管理端的用户管理接口
type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// swagger:model UpdateRoleRequest
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

// GetUsers godoc
// @Summary 获取用户列表
// @Description 管理端：分页查询用户，支持角色筛选和搜索
// @Tags 用户管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码" default(1)
// @Param   pageSize query int false "每页条数" default(20)
// @Param   role query string false "角色筛选"
// @Param   search query string false "搜索关键词"
// @Success 200 {object} object "成功"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 403 {object} util.ErrorResponse "无权限"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/admin/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))
	role := ctx.Query("role")
	search := ctx.Query("search")

	users, total, err := c.UserService.GetUsers(page, pageSize, role, search)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"users": users,
		"total": total,
		"page":  page,
	})
}

// UpdateUserRole godoc
// @Summary 修改用户角色
// @Description 管理端：在 user 和 admin 之间切换角色
// @Tags 用户管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "用户ID"
// @Param   body body UpdateRoleRequest true "目标角色"
// @Success 200 {object} object "成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 403 {object} util.ErrorResponse "无权限"
// @Failure 404 {object} util.ErrorResponse "用户不存在"
// @Router /api/admin/users/{id}/role [patch]
func (c *UserController) UpdateUserRole(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateUserRole(uint(id), model.UserRole(req.Role))
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
