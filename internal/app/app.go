package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nura_backend/internal/config"
	"nura_backend/internal/controller"
	"nura_backend/internal/repository"
	"nura_backend/internal/service"
	"nura_backend/pkg/database"
	"nura_backend/pkg/logger"
	"nura_backend/pkg/monitoring"
	"nura_backend/pkg/security"
	"nura_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user          *repository.UserRepository
	course        *repository.CourseRepository
	enrollment    *repository.EnrollmentRepository
	quiz          *repository.QuizRepository
	submission    *repository.SubmissionRepository
	tag           *repository.TagRepository
	assignment    *repository.AssignmentRepository
	certification *repository.CertificationRepository
	notification  *repository.NotificationRepository
	report        *repository.ReportRepository
	analytics     *repository.AnalyticsRepository
}

type services struct {
	storage      *service.StorageService
	ai           *service.AIService
	feedback     *service.FeedbackService
	auth         *service.AuthService
	user         *service.UserService
	tags         *service.TagService
	course       *service.CourseService
	quiz         *service.QuizService
	enrollment   *service.EnrollmentService
	assignment   *service.AssignmentService
	analytics    *service.AnalyticsService
	dashboard    *service.DashboardService
	report       *service.ReportService
	notification *service.NotificationService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	course       *controller.CourseController
	quiz         *controller.QuizController
	enrollment   *controller.EnrollmentController
	assignment   *controller.AssignmentController
	tag          *controller.TagController
	analytics    *controller.AnalyticsController
	dashboard    *controller.DashboardController
	report       *controller.ReportController
	notification *controller.NotificationController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig runs every registered reload callback. Called by the config
// watcher after a successful reload.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		course:        repository.NewCourseRepository(db),
		enrollment:    repository.NewEnrollmentRepository(db),
		quiz:          repository.NewQuizRepository(db),
		submission:    repository.NewSubmissionRepository(db),
		tag:           repository.NewTagRepository(db),
		assignment:    repository.NewAssignmentRepository(db),
		certification: repository.NewCertificationRepository(db),
		notification:  repository.NewNotificationRepository(db),
		report:        repository.NewReportRepository(db),
		analytics:     repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.ai = service.NewAIService(cfg.AI)
	s.feedback = service.NewFeedbackService(s.ai, repos.submission)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.tags = service.NewTagService(repos.tag, repos.course, s.ai)
	s.course = service.NewCourseService(repos.course, s.tags, s.storage, rdb)
	s.quiz = service.NewQuizService(repos.quiz, repos.submission, repos.course, s.feedback)
	s.notification = service.NewNotificationService(repos.notification)
	s.enrollment = service.NewEnrollmentService(repos.enrollment, repos.course, repos.certification, s.notification)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.course, repos.enrollment, s.storage, s.notification)
	s.analytics = service.NewAnalyticsService(repos.analytics)
	s.dashboard = service.NewDashboardService(s.analytics, repos.course)
	s.report = service.NewReportService(repos.report, s.analytics, s.ai)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		course:       controller.NewCourseController(s.course),
		quiz:         controller.NewQuizController(s.quiz),
		enrollment:   controller.NewEnrollmentController(s.enrollment),
		assignment:   controller.NewAssignmentController(s.assignment),
		tag:          controller.NewTagController(s.tags),
		analytics:    controller.NewAnalyticsController(s.analytics),
		dashboard:    controller.NewDashboardController(s.dashboard),
		report:       controller.NewReportController(s.report),
		notification: controller.NewNotificationController(s.notification),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config, rdb *redis.Client) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.buildCounterStore(cfg, rdb)))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) buildCounterStore(cfg *config.Config, rdb *redis.Client) security.CounterStore {
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}

	if cfg.RateLimit.Store == "redis" && rdb != nil {
		return security.NewRedisCounterStore(rdb, maxRequests, window)
	}
	return security.NewMemoryCounterStore(maxRequests, window)
}

func (a *App) startBackgroundTasks(s *services) {
	s.feedback.Start()

	// Nightly sweep for courses the synchronous tagging path missed.
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			s.tags.BackfillUntagged(ctx, 100)
			cancel()
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("logger initialized")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg, rdb)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("nura-lms", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	// Drain queued feedback jobs before the process exits.
	if a.services != nil && a.services.feedback != nil {
		a.services.feedback.Stop()
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
