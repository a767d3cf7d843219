package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sekolahvote/voting-portal/internal/api/handler"
	"github.com/sekolahvote/voting-portal/internal/api/middleware"
	"github.com/sekolahvote/voting-portal/internal/core/domain"
	"github.com/sekolahvote/voting-portal/internal/core/service"
	"github.com/sekolahvote/voting-portal/internal/infrastructure/config"
	redisrepo "github.com/sekolahvote/voting-portal/internal/infrastructure/db/redis"
	"github.com/sekolahvote/voting-portal/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("voting"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	voteRepo := sqlite.NewVoteRepository(db)
	sessionRepo := redisrepo.NewSessionRepository(rdb)

	sessionManager := service.NewSessionManager(sessionRepo, cfg.SessionSecret, cfg.SessionTTL)
	authService := service.NewAuthService(userRepo, sessionManager)
	votingService := service.NewVotingService(voteRepo, domain.Candidates{
		Female: cfg.Candidates.Female,
		Male:   cfg.Candidates.Male,
	})
	adminService := service.NewAdminService(userRepo, voteRepo)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL, cfg.Env != "development")
	votingHandler := handler.NewVotingHandler(votingService, sessionManager)
	adminHandler := handler.NewAdminHandler(adminService, sessionManager)

	sessionGate := middleware.Session(sessionManager)
	adminGate := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Voting routes (any authenticated session) ---
	e.GET("/", votingHandler.VotingPage, sessionGate)
	e.POST("/", votingHandler.SubmitBallot, sessionGate)
	e.GET("/result", votingHandler.Results, sessionGate)

	// --- Admin routes (admin role only) ---
	e.GET("/admin", adminHandler.Dashboard, sessionGate, adminGate)
	e.POST("/admin", adminHandler.CreateUser, sessionGate, adminGate)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
