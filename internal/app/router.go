package app

import (
	"lingo_backend/docs"
	"lingo_backend/internal/config"
	"lingo_backend/internal/middleware"
	"lingo_backend/internal/model"

	"lingo_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerUserRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.POST("/auth/signup", c.auth.Signup)
		public.POST("/auth/signin", c.auth.Signin)
		public.POST("/auth/signout", c.auth.Signout)

		// 排行榜对游客开放
		public.GET("/progress/leaderboard", c.progress.GetLeaderboard)

		public.GET("/content/lessons", c.content.GetLessons)
		public.GET("/content/vocabulary", c.content.GetVocabulary)
		public.GET("/content/quiz", c.content.GetQuizzes)
		public.GET("/content/languages", c.content.GetLanguages)
	}
}

func (a *App) registerUserRoutes(authGroup *gin.RouterGroup, c *controllers) {
	authGroup.GET("/auth/me", c.auth.Me)
	authGroup.PATCH("/auth/profile", c.auth.UpdateProfile)
	authGroup.POST("/auth/avatar/upload", c.auth.UploadAvatar)

	authGroup.GET("/progress", c.progress.GetProgress)
	authGroup.PATCH("/progress", c.progress.UpdateProgress)

	authGroup.GET("/preferences", c.preference.GetPreferences)
	authGroup.PATCH("/preferences", c.preference.UpdatePreferences)

	authGroup.GET("/activities", c.activity.GetActivities)
	authGroup.POST("/activities", c.activity.CreateActivity)

	authGroup.GET("/achievements", c.achievement.GetUserAchievements)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.RoleAdmin),
	)
	{
		admin.GET("/activities/all", c.activity.GetAllActivities)
		admin.GET("/admin/users", c.user.GetUsers)
		admin.PATCH("/admin/users/:id/role", c.user.UpdateUserRole)
	}
}
