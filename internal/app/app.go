package app

import (
	"context"
	"english_station_backend/internal/config"
	"english_station_backend/internal/controller"
	"english_station_backend/internal/repository"
	"english_station_backend/internal/service"
	"english_station_backend/pkg/database"
	"english_station_backend/pkg/logger"
	"english_station_backend/pkg/monitoring"
	"english_station_backend/pkg/security"
	"english_station_backend/pkg/tracing"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Redis   *redis.Client
	Origins *security.OriginList

	tracer          *sdktrace.TracerProvider
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	lesson       *repository.LessonRepository
	vocabulary   *repository.VocabularyRepository
	quiz         *repository.QuizRepository
	quizResult   *repository.QuizResultRepository
	progress     *repository.ProgressRepository
	user         *repository.UserRepository
	setting      *repository.SettingRepository
	settingCache *repository.SettingCache
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	lesson   *service.LessonService
	quiz     *service.QuizService
	progress *service.ProgressService
	setting  *service.SettingService
}

type controllers struct {
	health   *controller.HealthController
	auth     *controller.AuthController
	user     *controller.UserController
	lesson   *controller.LessonController
	quiz     *controller.QuizController
	progress *controller.ProgressController
	setting  *controller.SettingController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口，依次执行已注册的回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	repos := &repositories{
		lesson:     repository.NewLessonRepository(db),
		vocabulary: repository.NewVocabularyRepository(db),
		quiz:       repository.NewQuizRepository(db),
		quizResult: repository.NewQuizResultRepository(db),
		progress:   repository.NewProgressRepository(db),
		user:       repository.NewUserRepository(db),
		setting:    repository.NewSettingRepository(db),
	}
	if rdb != nil {
		repos.settingCache = repository.NewSettingCache(rdb)
	}
	return repos
}

func initServices(repos *repositories, cfg *config.Config) *services {
	// Redis 未启用时传入 nil 接口，服务直接读库
	var cache service.SettingCache
	if repos.settingCache != nil {
		cache = repos.settingCache
	}

	return &services{
		auth:     service.NewAuthService(repos.user, cfg),
		user:     service.NewUserService(repos.user, repos.progress, repos.quizResult),
		lesson:   service.NewLessonService(repos.lesson, repos.vocabulary),
		quiz:     service.NewQuizService(repos.quiz, repos.quizResult, repos.lesson),
		progress: service.NewProgressService(repos.progress, repos.lesson, repos.user),
		setting:  service.NewSettingService(repos.setting, cache),
	}
}

func initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		health:   controller.NewHealthController(db),
		auth:     controller.NewAuthController(s.auth),
		user:     controller.NewUserController(s.user),
		lesson:   controller.NewLessonController(s.lesson),
		quiz:     controller.NewQuizController(s.quiz),
		progress: controller.NewProgressController(s.progress),
		setting:  controller.NewSettingController(s.setting),
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			// 缓存可选，连接失败时降级为直接读库
			logger.Log.Warn("Redis unavailable, settings cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Origins: security.NewOriginList(cfg.CORS.AllowedOrigins),
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("english-station", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	monitoring.Init()

	repos := initRepositories(db, rdb)
	svcs := initServices(repos, cfg)
	ctrls := initControllers(svcs, db)

	gin.SetMode(cfg.Server.Mode)
	app.Router = newRouter(cfg, app.Origins, ctrls, repos.user)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		app.Origins.Set(newCfg.CORS.AllowedOrigins)
		logger.SetMode(newCfg.Server.Mode)
		logger.Log.Info("Runtime config applied",
			zap.Strings("origins", newCfg.CORS.AllowedOrigins),
			zap.String("mode", newCfg.Server.Mode),
		)
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close()
	logger.Log.Info("Server exiting")
}

// Close 释放追踪、Redis 与数据库连接
func (a *App) Close() {
	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
		cancel()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if err := database.Close(a.DB); err != nil {
			logger.Log.Error("Failed to close database", zap.Error(err))
		}
	}
}
