package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleet-maintenance/config"
	deliveryHttp "fleet-maintenance/internal/delivery/http"
	"fleet-maintenance/internal/delivery/http/handler"
	"fleet-maintenance/internal/delivery/http/middleware"
	"fleet-maintenance/internal/infrastructure/cache"
	"fleet-maintenance/internal/infrastructure/database"
	"fleet-maintenance/internal/reminder"
	"fleet-maintenance/internal/repository"
	"fleet-maintenance/internal/service"
	"fleet-maintenance/internal/usecase"
	"fleet-maintenance/pkg/jwt"
	"fleet-maintenance/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(db, cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	vehicleRepo := repository.NewVehicleRepository()
	programRepo := repository.NewServiceProgramRepository()
	scheduleRepo := repository.NewServiceScheduleRepository()
	taskRepo := repository.NewServiceTaskRepository()
	reminderRepo := repository.NewServiceReminderRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	reminderCache := service.NewReminderCacheService(redisClient, log)

	// Initialize the projection engine
	projectionStore := repository.NewProjectionStore(db, scheduleRepo, programRepo, vehicleRepo)
	engine := reminder.NewEngine(projectionStore, log, reminder.Options{
		DefaultLookaheadDays:    cfg.Reminder.DefaultLookaheadDays,
		DefaultMileageLookahead: cfg.Reminder.DefaultMileageLookahead,
		MaxOccurrences:          cfg.Reminder.MaxOccurrencesPerSeries,
	})

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, auditService, jwtService, redisClient)
	vehicleUsecase := usecase.NewVehicleUsecase(db, log, vehicleRepo, auditService, reminderCache)
	programUsecase := usecase.NewServiceProgramUsecase(db, log, programRepo, vehicleRepo, auditService, reminderCache)
	scheduleUsecase := usecase.NewServiceScheduleUsecase(db, log, scheduleRepo, programRepo, taskRepo, auditService, reminderCache)
	taskUsecase := usecase.NewServiceTaskUsecase(db, log, taskRepo, auditService, reminderCache)
	reminderUsecase := usecase.NewServiceReminderUsecase(db, log, reminderRepo, vehicleRepo, scheduleRepo, auditService)
	projectionUsecase := usecase.NewReminderProjectionUsecase(log, engine, reminderCache)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	vehicleHandler := handler.NewVehicleHandler(vehicleUsecase, customValidator)
	programHandler := handler.NewServiceProgramHandler(programUsecase, customValidator)
	scheduleHandler := handler.NewServiceScheduleHandler(scheduleUsecase, customValidator)
	taskHandler := handler.NewServiceTaskHandler(taskUsecase, customValidator)
	reminderHandler := handler.NewServiceReminderHandler(reminderUsecase, customValidator)
	projectionHandler := handler.NewReminderProjectionHandler(projectionUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		vehicleHandler,
		programHandler,
		scheduleHandler,
		taskHandler,
		reminderHandler,
		projectionHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
