package controller

import (
	"lingo_backend/internal/service"
	"lingo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// GetLessons godoc
// @Summary 获取课程内容
// @Description 按目标语言返回课程阶段
// @Tags 内容
// @Produce  json
// @Param   language query string false "目标语言" default(Hausa)
// @Success 200 {array} model.LessonStage "成功"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/content/lessons [get]
func (c *ContentController) GetLessons(ctx *gin.Context) {
	stages, err := c.ContentService.GetLessons(ctx.Query("language"))
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}
	util.Success(ctx, stages)
}

// GetVocabulary godoc
// @Summary 获取词汇内容
// @Description 按目标语言返回词汇阶段
// @Tags 内容
// @Produce  json
// @Param   language query string false "目标语言" default(Hausa)
// @Success 200 {array} model.VocabularyStage "成功"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/content/vocabulary [get]
func (c *ContentController) GetVocabulary(ctx *gin.Context) {
	stages, err := c.ContentService.GetVocabulary(ctx.Query("language"))
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}
	util.Success(ctx, stages)
}

// GetQuizzes godoc
// @Summary 获取测验内容
// @Description 按目标语言返回测验阶段
// @Tags 内容
// @Produce  json
// @Param   language query string false "目标语言" default(Hausa)
// @Success 200 {array} model.QuizStage "成功"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/content/quiz [get]
func (c *ContentController) GetQuizzes(ctx *gin.Context) {
	stages, err := c.ContentService.GetQuizzes(ctx.Query("language"))
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}
	util.Success(ctx, stages)
}

// GetLanguages godoc
// @Summary 获取支持的语言
// @Description 返回已有课程内容覆盖的目标语言
// @Tags 内容
// @Produce  json
// @Success 200 {array} string "成功"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/content/languages [get]
func (c *ContentController) GetLanguages(ctx *gin.Context) {
	languages, err := c.ContentService.GetLanguages()
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}
	util.Success(ctx, languages)
}
