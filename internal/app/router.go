package app

import (
	"english_station_backend/docs"
	"english_station_backend/internal/config"
	"english_station_backend/internal/middleware"
	"english_station_backend/internal/util"
	"english_station_backend/pkg/logger"
	"english_station_backend/pkg/monitoring"
	"english_station_backend/pkg/security"
	"english_station_backend/pkg/tracing"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func newRouter(cfg *config.Config, origins *security.OriginList, c *controllers, users middleware.UserLookup) *gin.Engine {
	router := gin.New()
	setupMiddlewares(router, cfg, origins)
	registerRoutes(router, c, cfg, users)
	return router
}

func setupMiddlewares(router *gin.Engine, cfg *config.Config, origins *security.OriginList) {
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	router.Use(security.CORS(origins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config, users middleware.UserLookup) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	registerPublicRoutes(router, c, cfg)

	// 2. 登录用户
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, users))
	registerLearnerRoutes(authGroup, c)

	// 3. 管理员
	adminGroup := router.Group("/api")
	adminGroup.Use(middleware.AuthMiddleware(cfg, users), middleware.AdminMiddleware())
	registerAdminRoutes(adminGroup, c)

	router.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/api" {
			util.NotFound(ctx, fmt.Sprintf("API endpoint %s not found", path))
			return
		}
		util.NotFound(ctx, "Not found")
	})
}

func registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	// 游客可访问，携带有效令牌时写入用户信息
	public := router.Group("/api")
	public.Use(middleware.TryAuthMiddleware(cfg))
	{
		public.GET("/health", c.health.HealthCheck)

		public.GET("/lessons", c.lesson.ListLessons)
		public.GET("/lessons/:id", c.lesson.GetLesson)
		public.GET("/lessons/:id/vocabulary", c.lesson.ListVocabulary)

		public.GET("/quiz", c.quiz.ListQuizzes)
		public.GET("/quiz/:id", c.quiz.GetQuiz)

		public.POST("/users", c.auth.Register)
		public.POST("/users/login", c.auth.Login)
		public.POST("/users/refresh-token", c.auth.RefreshToken)

		public.GET("/settings", c.setting.GetSettings)
	}
}

func registerLearnerRoutes(group *gin.RouterGroup, c *controllers) {
	group.POST("/quiz/:id/submit", c.quiz.SubmitQuiz)
	group.GET("/quiz/results/:userId", c.quiz.GetResults)

	progress := group.Group("/progress")
	{
		progress.GET("/user/:userId", c.progress.ListUserProgress)
		progress.POST("", c.progress.UpsertProgress)
		progress.DELETE("/:id", c.progress.DeleteProgress)
	}

	group.GET("/users/:id", c.user.GetUser)
	group.PUT("/users/:id", c.user.UpdateUser)
}

func registerAdminRoutes(group *gin.RouterGroup, c *controllers) {
	group.POST("/lessons", c.lesson.CreateLesson)
	group.PUT("/lessons/:id", c.lesson.UpdateLesson)
	group.DELETE("/lessons/:id", c.lesson.DeleteLesson)
	group.POST("/lessons/:id/vocabulary", c.lesson.AddVocabulary)
	group.DELETE("/vocabulary/:id", c.lesson.DeleteVocabulary)

	group.POST("/quiz", c.quiz.CreateQuiz)
	group.PUT("/quiz/:id", c.quiz.UpdateQuiz)
	group.DELETE("/quiz/:id", c.quiz.DeleteQuiz)

	group.GET("/progress", c.progress.ListProgress)
	group.GET("/progress/lesson/:lessonId", c.progress.ListLessonProgress)

	group.GET("/users", c.user.ListUsers)
	group.DELETE("/users/:id", c.user.DeleteUser)

	group.POST("/settings", c.setting.UpdateSettings)

	// 管理后台
	admin := group.Group("/admin")
	{
		admin.GET("/quizzes/:id", c.quiz.GetQuizForAdmin)

		admin.GET("/users", c.user.ListUsers)
		admin.DELETE("/users/:id", c.user.DeleteUser)
		admin.PUT("/users/:id/promote", c.user.PromoteUser)
		admin.PUT("/users/:id/demote", c.user.DemoteUser)

		admin.GET("/lessons", c.lesson.ListLessons)
		admin.POST("/lessons", c.lesson.CreateLesson)
		admin.PUT("/lessons/:id", c.lesson.UpdateLesson)
		admin.DELETE("/lessons/:id", c.lesson.DeleteLesson)

		admin.GET("/settings", c.setting.GetSettings)
		admin.PUT("/settings", c.setting.ReplaceSettings)
	}
}
