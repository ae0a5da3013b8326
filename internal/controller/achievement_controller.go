package controller

import (
	"lingo_backend/internal/service"
	"lingo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// GetUserAchievements godoc
// @Summary 获取用户成就
// @Description 返回当前用户已获得的成就
// @Tags 成就
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {array} model.Achievement "成功"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/achievements [get]
func (c *AchievementController) GetUserAchievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "No token provided")
		return
	}

	achievements, err := c.AchievementService.GetUserAchievements(claims.UserID)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	util.Success(ctx, achievements)
}
