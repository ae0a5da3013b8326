package controller

import (
	"lingo_backend/internal/service"
	"lingo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PreferenceController struct {
	PreferenceService *service.PreferenceService
}

func NewPreferenceController(preferenceService *service.PreferenceService) *PreferenceController {
	return &PreferenceController{PreferenceService: preferenceService}
}

// GetPreferences godoc
// @Summary 获取用户偏好
// @Description 返回当前用户的偏好设置，首次访问时按默认值创建
// @Tags 偏好
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.UserPreferences "成功"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/preferences [get]
func (c *PreferenceController) GetPreferences(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "No token provided")
		return
	}

	prefs, err := c.PreferenceService.GetPreferences(claims.UserID)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	util.Success(ctx, prefs)
}

// UpdatePreferences godoc
// @Summary 更新用户偏好
// @Description 部分更新偏好设置，未提供的字段保持原值
// @Tags 偏好
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.PreferenceUpdate true "偏好设置"
// @Success 200 {object} model.UserPreferences "成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/preferences [patch]
func (c *PreferenceController) UpdatePreferences(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "No token provided")
		return
	}

	var req service.PreferenceUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prefs, err := c.PreferenceService.UpdatePreferences(claims.UserID, req)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	util.Success(ctx, prefs)
}
