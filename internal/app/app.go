package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edubridge_backend/internal/config"
	"edubridge_backend/internal/controller"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/service"
	"edubridge_backend/pkg/database"
	"edubridge_backend/pkg/logger"
	"edubridge_backend/pkg/monitoring"
	"edubridge_backend/pkg/security"
	"edubridge_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	skill       *repository.SkillRepository
	assignment  *repository.AssignmentRepository
	lecture     *repository.LectureRepository
	post        *repository.PostRepository
	chat        *repository.ChatRepository
	candidate   *repository.CandidateRepository
	portfolio   *repository.PortfolioRepository
	interview   *repository.InterviewRepository
	application *repository.ApplicationRepository
}

type services struct {
	ai         *service.AIService
	youtube    *service.YouTubeService
	auth       *service.AuthService
	user       *service.UserService
	roadmap    *service.RoadmapService
	interview  *service.InterviewService
	career     *service.CareerService
	chat       *service.ChatService
	lecture    *service.LectureService
	assignment *service.AssignmentService
	community  *service.CommunityService
	candidate  *service.CandidateService
	portfolio  *service.PortfolioService
	execute    *service.ExecuteService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	roadmap    *controller.RoadmapController
	interview  *controller.InterviewController
	career     *controller.CareerController
	chat       *controller.ChatController
	lecture    *controller.LectureController
	assignment *controller.AssignmentController
	community  *controller.CommunityController
	candidate  *controller.CandidateController
	execute    *controller.ExecuteController
	portfolio  *controller.PortfolioController
	simulation *controller.SimulationController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		skill:       repository.NewSkillRepository(db),
		assignment:  repository.NewAssignmentRepository(db),
		lecture:     repository.NewLectureRepository(db),
		post:        repository.NewPostRepository(db),
		chat:        repository.NewChatRepository(db),
		candidate:   repository.NewCandidateRepository(db),
		portfolio:   repository.NewPortfolioRepository(db),
		interview:   repository.NewInterviewRepository(db),
		application: repository.NewApplicationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageProvider(cfg.Storage)
	if err != nil {
		return nil, err
	}

	s := &services{}
	s.ai = service.NewAIService(cfg.AI)
	s.youtube = service.NewYouTubeService(cfg.YouTube)
	s.auth = service.NewAuthService(repos.user, cfg.JWT)
	s.user = service.NewUserService(repos.user, repos.skill)
	s.roadmap = service.NewRoadmapService(s.ai, s.youtube, repos.chat, rdb)
	s.interview = service.NewInterviewService(repos.interview, repos.skill, rdb)
	s.career = service.NewCareerService(repos.skill, repos.assignment, repos.application)
	s.chat = service.NewChatService(s.ai, s.youtube, repos.chat)
	s.lecture = service.NewLectureService(repos.lecture)
	s.assignment = service.NewAssignmentService(repos.assignment, storage)
	s.community = service.NewCommunityService(repos.post)
	s.candidate = service.NewCandidateService(repos.candidate, s.ai)
	s.portfolio = service.NewPortfolioService(repos.portfolio, repos.chat, s.ai)
	s.execute = service.NewExecuteService(cfg.Piston)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.user),
		user:       controller.NewUserController(s.user),
		roadmap:    controller.NewRoadmapController(s.roadmap),
		interview:  controller.NewInterviewController(s.interview),
		career:     controller.NewCareerController(s.career),
		chat:       controller.NewChatController(s.chat),
		lecture:    controller.NewLectureController(s.lecture),
		assignment: controller.NewAssignmentController(s.assignment),
		community:  controller.NewCommunityController(s.community),
		candidate:  controller.NewCandidateController(s.candidate),
		execute:    controller.NewExecuteController(s.execute),
		portfolio:  controller.NewPortfolioController(s.portfolio),
		simulation: controller.NewSimulationController(),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

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
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("edubridge-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
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

	log.Println("Server exiting")
}
