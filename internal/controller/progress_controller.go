package controller

import (
	"lingo_backend/internal/service"
	"lingo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// UpdateProgressRequest 进度更新请求。
// streak 不在请求中：连续天数只由服务端计算。
// level 字段保留以兼容旧客户端，但取值会被服务端按经验值推导覆盖。
// swagger:model UpdateProgressRequest
type UpdateProgressRequest struct {
	Level            int `json:"level"`
	XP               int `json:"xp" binding:"min=0"`
	LessonsCompleted int `json:"lessonsCompleted" binding:"min=0"`
}

// GetProgress godoc
// @Summary 获取学习进度
// @Description 返回当前用户的进度，首次访问时创建零值记录
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.UserProgress "成功"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "No token provided")
		return
	}

	progress, err := c.ProgressService.GetProgress(claims.UserID)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// UpdateProgress godoc
// @Summary 更新学习进度
// @Description 覆盖经验值和已完成课程数，连续天数和等级由服务端计算
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body UpdateProgressRequest true "进度数据"
// @Success 200 {object} model.UserProgress "成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/progress [patch]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "No token provided")
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.UpdateProgress(claims.UserID, req.XP, req.LessonsCompleted)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// GetLeaderboard godoc
// @Summary 排行榜
// @Description 经验值前100名，附带用户展示信息，无需登录
// @Tags 进度
// @Produce  json
// @Success 200 {array} service.LeaderboardEntry "成功"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/progress/leaderboard [get]
func (c *ProgressController) GetLeaderboard(ctx *gin.Context) {
	entries, err := c.ProgressService.Leaderboard(ctx.Request.Context())
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
