package controller

import (
	"encoding/json"
	"lingo_backend/internal/service"
	"lingo_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// swagger:model CreateActivityRequest
type CreateActivityRequest struct {
	Type        string          `json:"type" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Metadata    json.RawMessage `json:"metadata"`
}

func pagination(ctx *gin.Context, defaultLimit int) (limit, skip int) {
	limit = defaultLimit
	if l, err := strconv.Atoi(ctx.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	if s, err := strconv.Atoi(ctx.Query("skip")); err == nil && s > 0 {
		skip = s
	}
	return limit, skip
}

// GetActivities godoc
// @Summary 获取活动日志
// @Description 当前用户的活动日志，按时间倒序分页
// @Tags 活动
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "每页条数" default(50)
// @Param   skip query int false "跳过条数" default(0)
// @Success 200 {object} service.ActivityPage "成功"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/activities [get]
func (c *ActivityController) GetActivities(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "No token provided")
		return
	}

	limit, skip := pagination(ctx, 50)

	page, err := c.ActivityService.ListForUser(claims.UserID, limit, skip)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	util.Success(ctx, page)
}

// CreateActivity godoc
// @Summary 创建活动日志
// @Description 为当前用户追加一条活动记录
// @Tags 活动
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateActivityRequest true "活动内容"
// @Success 201 {object} model.Activity "创建成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/activities [post]
func (c *ActivityController) CreateActivity(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "No token provided")
		return
	}

	var req CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activity, err := c.ActivityService.Create(claims.UserID, req.Type, req.Description, req.Metadata)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	util.Created(ctx, activity)
}

// GetAllActivities godoc
// @Summary 获取全部活动日志
// @Description 管理端：所有用户的活动日志，附带用户信息
// @Tags 活动
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "每页条数" default(100)
// @Param   skip query int false "跳过条数" default(0)
// @Success 200 {object} service.ActivityPage "成功"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Failure 403 {object} util.ErrorResponse "无权限"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/activities/all [get]
func (c *ActivityController) GetAllActivities(ctx *gin.Context) {
	limit, skip := pagination(ctx, 100)

	page, err := c.ActivityService.ListAll(limit, skip)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	util.Success(ctx, page)
}
