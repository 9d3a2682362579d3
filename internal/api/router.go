package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/interviewsim/interview-api/internal/api/handler"
	"github.com/interviewsim/interview-api/internal/api/middleware"
	"github.com/interviewsim/interview-api/internal/core/domain"
	"github.com/interviewsim/interview-api/internal/core/service"
	"github.com/interviewsim/interview-api/internal/core/token"
	"github.com/interviewsim/interview-api/internal/infrastructure/config"
	mongodb "github.com/interviewsim/interview-api/internal/infrastructure/db/mongo"
	redisdb "github.com/interviewsim/interview-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("interview"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	questionRepo := mongodb.NewQuestionRepository(db)
	sessionRepo := mongodb.NewSessionRepository(db)
	questionCache := redisdb.NewQuestionCache(rdb)

	// --- Token issuing and verification ---
	issuer := token.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	verifiers := []token.Verifier{token.NewLocalVerifier(cfg.JWT.Secret)}
	if cfg.Supabase.JWTSecret != "" {
		verifiers = append(verifiers, token.NewSupabaseVerifier(cfg.Supabase.JWTSecret, cfg.Supabase.ProjectURL))
	}
	authenticator := middleware.NewAuthenticator(userRepo, log, verifiers...)
	e.Use(authenticator.Middleware())

	// --- Services ---
	authService := service.NewAuthService(userRepo, issuer, log)
	questionService := service.NewQuestionService(questionRepo, questionCache, log)
	sessionService := service.NewSessionService(sessionRepo, userRepo, log)
	userService := service.NewUserService(userRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	questionHandler := handler.NewQuestionHandler(questionService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	userHandler := handler.NewUserHandler(userService)

	// --- Guards ---
	authenticated := middleware.RequireAuthenticated()
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	selfOrAdmin := middleware.RequireSelfByIDOrAdmin("id", userRepo)
	selfByUserIDOrAdmin := middleware.RequireSelfByIDOrAdmin("userId", userRepo)
	selfByUsernameOrAdmin := middleware.RequireSelfByUsernameOrAdmin("username")
	sessionOwnerOrAdmin := middleware.RequireSessionOwnerOrAdmin("id", sessionRepo)

	// --- Auth routes (exempt from authentication) ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Question routes ---
	questions := e.Group("/api/questions")
	questions.GET("", questionHandler.List, authenticated)
	questions.GET("/random", questionHandler.Random, authenticated)
	questions.GET("/search", questionHandler.Search, authenticated)
	questions.GET("/category/:category", questionHandler.GetByCategory, authenticated)
	questions.GET("/difficulty/:difficulty", questionHandler.GetByDifficulty, authenticated)
	questions.GET("/:id", questionHandler.Get, authenticated)
	questions.POST("", questionHandler.Create, adminOnly)
	questions.PUT("/:id", questionHandler.Update, adminOnly)
	questions.DELETE("/:id", questionHandler.Delete, adminOnly)

	// --- Session routes ---
	sessions := e.Group("/api/sessions")
	sessions.GET("", sessionHandler.List, adminOnly)
	sessions.GET("/user/:userId", sessionHandler.GetUserSessions, selfByUserIDOrAdmin)
	sessions.GET("/:id", sessionHandler.Get, sessionOwnerOrAdmin)
	sessions.POST("/start", sessionHandler.Start, authenticated)
	sessions.POST("/:id/end", sessionHandler.End, sessionOwnerOrAdmin)
	sessions.POST("/:id/cancel", sessionHandler.Cancel, sessionOwnerOrAdmin)

	// --- User routes ---
	users := e.Group("/api/users")
	users.GET("", userHandler.List, adminOnly)
	users.GET("/me", userHandler.Me, authenticated)
	users.GET("/username/:username", userHandler.GetByUsername, selfByUsernameOrAdmin)
	users.GET("/:id", userHandler.Get, selfOrAdmin)
	users.PUT("/:id", userHandler.Update, selfOrAdmin)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
