package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/orchidarium/catalog-api/docs"
	"github.com/orchidarium/catalog-api/internal/api/handler"
	"github.com/orchidarium/catalog-api/internal/api/middleware"
	"github.com/orchidarium/catalog-api/internal/core/service"
	"github.com/orchidarium/catalog-api/internal/infrastructure/config"
	mongodb "github.com/orchidarium/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/orchidarium/catalog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	orchidRepo := mongodb.NewOrchidRepository(db)

	tokens := service.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	limiter := redisdb.NewLoginLimiter(rdb)

	authService := service.NewAuthService(userRepo, tokens, limiter, log)
	userService := service.NewUserService(userRepo, tokens, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	orchidService := service.NewOrchidService(orchidRepo, categoryRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService, tokens.TTL(), cfg.IsProduction())
	userHandler := handler.NewUserHandler(userService, tokens.TTL(), cfg.IsProduction())
	categoryHandler := handler.NewCategoryHandler(categoryService)
	orchidHandler := handler.NewOrchidHandler(orchidService)
	publicHandler := handler.NewPublicHandler(orchidService)
	commentHandler := handler.NewCommentHandler(orchidService)

	authn := middleware.Authenticate(tokens)
	admin := middleware.RequireAdmin()
	member := middleware.RequireMember()

	// --- Public routes ---
	public := e.Group("/public")
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.GET("/", publicHandler.List)
	public.GET("/search", publicHandler.Search)
	public.GET("/:slug", publicHandler.GetBySlug)

	// --- Accounts (admin), except /me which needs any authenticated identity ---
	accounts := e.Group("/accounts", authn)
	accounts.GET("/me", userHandler.Me)
	accounts.GET("/", userHandler.List, admin)
	accounts.POST("/", userHandler.Create, admin)

	// --- Member self-service ---
	memberGroup := e.Group("/member", authn)
	memberGroup.GET("/me", userHandler.Me)
	memberGroup.PUT("/update", userHandler.Update, member)
	memberGroup.PUT("/password-change", userHandler.ChangePassword, member)

	// --- Catalog management (admin) ---
	orchid := e.Group("/orchid", authn, admin)
	orchid.GET("/", orchidHandler.List)
	orchid.POST("/", orchidHandler.Create)
	orchid.GET("/:id", orchidHandler.Get)
	orchid.PUT("/:id", orchidHandler.Update)
	orchid.DELETE("/:id", orchidHandler.Delete)

	categories := e.Group("/categories", authn, admin)
	categories.GET("/", categoryHandler.List)
	categories.POST("/", categoryHandler.Create)
	categories.GET("/:id", categoryHandler.Get)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	// --- Comments (member) ---
	comment := e.Group("/comment", authn, member)
	comment.POST("/:orchidId", commentHandler.Post)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
