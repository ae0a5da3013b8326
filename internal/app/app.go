package app

import (
	"context"
	"lingo_backend/internal/config"
	"lingo_backend/internal/controller"
	"lingo_backend/internal/repository"
	"lingo_backend/internal/service"
	"lingo_backend/pkg/configwatcher"
	"lingo_backend/pkg/database"
	"lingo_backend/pkg/logger"
	"lingo_backend/pkg/monitoring"
	"lingo_backend/pkg/security"
	"lingo_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user        *repository.UserRepository
	progress    *repository.ProgressRepository
	activity    *repository.ActivityRepository
	preference  *repository.PreferenceRepository
	achievement *repository.AchievementRepository
	content     *repository.ContentRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	progress    *service.ProgressService
	activity    *service.ActivityService
	preference  *service.PreferenceService
	achievement *service.AchievementService
	content     *service.ContentService
	user        *service.UserService
}

type controllers struct {
	auth        *controller.AuthController
	progress    *controller.ProgressController
	activity    *controller.ActivityController
	preference  *controller.PreferenceController
	achievement *controller.AchievementController
	content     *controller.ContentController
	user        *controller.UserController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		progress:    repository.NewProgressRepository(db),
		activity:    repository.NewActivityRepository(db),
		preference:  repository.NewPreferenceRepository(db),
		achievement: repository.NewAchievementRepository(db),
		content:     repository.NewContentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.progress, repos.preference, cfg)
	s.achievement = service.NewAchievementService(repos.achievement)
	s.progress = service.NewProgressService(
		repos.progress,
		repos.activity,
		s.achievement,
		rdb,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
	)
	s.activity = service.NewActivityService(repos.activity)
	s.preference = service.NewPreferenceService(repos.preference)
	s.content = service.NewContentService(repos.content)
	s.user = service.NewUserService(repos.user)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, s.storage),
		progress:    controller.NewProgressController(s.progress),
		activity:    controller.NewActivityController(s.activity),
		preference:  controller.NewPreferenceController(s.preference),
		achievement: controller.NewAchievementController(s.achievement),
		content:     controller.NewContentController(s.content),
		user:        controller.NewUserController(s.user),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	// 配置热更新：目前只有缓存TTL可以安全地在运行时生效
	go configwatcher.WatchConfig(filepath.Join("configs", "config.yaml"), cfg, func(raw interface{}) {
		newCfg, ok := raw.(*config.Config)
		if !ok {
			return
		}
		services.progress.SetCacheTTL(time.Duration(newCfg.Cache.TTLSeconds) * time.Second)
		logger.Log.Info("Config reloaded",
			zap.Int("leaderboard_ttl_seconds", newCfg.Cache.TTLSeconds))
	})

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("lingo-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	logger.Log.Sync()

	log.Println("Server exiting")
}
