// Package http wires repositories, use cases, and handlers into the Gin
// engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	attendanceusecases "punchcard/internal/application/attendance/usecases"
	userusecases "punchcard/internal/application/user/usecases"
	"punchcard/internal/infrastructure/auth"
	"punchcard/internal/infrastructure/config"
	"punchcard/internal/infrastructure/excel"
	"punchcard/internal/infrastructure/ratelimit"
	"punchcard/internal/infrastructure/repository"
	"punchcard/internal/interfaces/http/handlers"
	"punchcard/internal/interfaces/http/middleware"
	"punchcard/internal/interfaces/http/routes"
	"punchcard/internal/shared/db"
	"punchcard/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
}

// NewRouter creates a new HTTP router with all dependencies wired.
// redisClient may be nil; rate limiting is then disabled.
func NewRouter(gormDB *gorm.DB, cfg *config.Config, redisClient *redis.Client, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS([]string{"*"}))

	// Infrastructure services
	userRepo := repository.NewUserRepository(gormDB)
	attendanceRepo := repository.NewAttendanceRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpDays)
	qrService := auth.NewQRTokenService(cfg.Attendance.QRSecret, cfg.Attendance.QRValidityHours)
	workbookWriter := excel.NewWriter()

	var limiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	// Use cases
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, jwtService, log)
	getProfileUC := userusecases.NewGetProfileUseCase(userRepo, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	createUserUC := userusecases.NewCreateUserUseCase(userRepo, hasher, log)
	updateUserUC := userusecases.NewUpdateUserUseCase(userRepo, hasher, log)
	toggleActiveUC := userusecases.NewToggleActiveUseCase(userRepo, log)
	deleteUserUC := userusecases.NewDeleteUserUseCase(userRepo, log)

	checkInUC := attendanceusecases.NewCheckInUseCase(attendanceRepo, qrService, txManager, log)
	checkOutUC := attendanceusecases.NewCheckOutUseCase(attendanceRepo, qrService, txManager, log)
	historyUC := attendanceusecases.NewHistoryUseCase(attendanceRepo, log)
	todayUC := attendanceusecases.NewTodayStatusUseCase(attendanceRepo, log)
	adminReportUC := attendanceusecases.NewAdminReportUseCase(attendanceRepo, log)
	adminStatsUC := attendanceusecases.NewAdminStatsUseCase(attendanceRepo, log)
	exportUC := attendanceusecases.NewExportUseCase(attendanceRepo, workbookWriter, log)

	// Handlers and middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	authHandler := handlers.NewAuthHandler(loginUC, registerUC)
	profileHandler := handlers.NewProfileHandler(getProfileUC)
	attendanceHandler := handlers.NewAttendanceHandler(checkInUC, checkOutUC, historyUC, todayUC)
	qrHandler := handlers.NewQRHandler(qrService, qrService, cfg.Attendance.QRValidityHours)
	reportHandler := handlers.NewReportHandler(adminReportUC, exportUC, adminStatsUC)
	adminUserHandler := handlers.NewAdminUserHandler(listUsersUC, createUserUC, updateUserUC, toggleActiveUC, deleteUserUC)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
		RateLimiter: limiter,
		LoginRateLimits: ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.LoginPerMinute,
			RequestsPerHour:   cfg.RateLimit.LoginPerHour,
		},
	})
	routes.SetupQRRoutes(engine, &routes.QRRouteConfig{
		QRHandler:      qrHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupAttendanceRoutes(engine, &routes.AttendanceRouteConfig{
		AttendanceHandler: attendanceHandler,
		ProfileHandler:    profileHandler,
		AuthMiddleware:    authMiddleware,
		RateLimiter:       limiter,
		PunchRateLimits: ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.CheckInPerMinute,
		},
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		ReportHandler:    reportHandler,
		AdminUserHandler: adminUserHandler,
		AuthMiddleware:   authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
