// Package server contains the HTTP handlers and route wiring for the
// Katalog Miniatur API.
package server

import (
	"context"
	"time"

	"minikatalog/internal/cache"
	"minikatalog/internal/config"
	"minikatalog/internal/database"
	"minikatalog/internal/middleware"
	"minikatalog/internal/repository"
	"minikatalog/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	postRepo       repository.MicropostRepository
	relRepo        repository.RelationshipRepository
	userService    *service.UserService
	postService    *service.MicropostService
	relService     *service.RelationshipService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewMicropostRepository(db)
	relRepo := repository.NewRelationshipRepository(db)

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("minikatalog-api"),
		userRepo:       userRepo,
		postRepo:       postRepo,
		relRepo:        relRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.postService = service.NewMicropostService(postRepo, userRepo, s.isAdminByUserID)
	s.relService = service.NewRelationshipService(relRepo, userRepo)

	return s
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID into slog
	app.Use(middleware.ContextMiddleware())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware, app))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(s.redis, "signup", 10, time.Hour), s.Signup)
	auth.Post("/login", middleware.RateLimit(s.redis, "login", 20, 15*time.Minute), s.Login)

	users := api.Group("/users")
	users.Get("/", s.ListUsers)
	users.Get("/:id", s.GetUser)
	users.Put("/me", middleware.AuthRequired, s.UpdateProfile)
	users.Delete("/:id", middleware.AuthRequired, s.DeleteUser)
	users.Get("/:id/microposts", s.ListUserMicroposts)
	users.Get("/:id/following", s.ListFollowing)
	users.Get("/:id/followers", s.ListFollowers)
	users.Post("/:id/follow", middleware.AuthRequired, s.Follow)
	users.Delete("/:id/follow", middleware.AuthRequired, s.Unfollow)
	users.Get("/:id/follow", middleware.AuthRequired, s.FollowingStatus)

	api.Get("/feed", middleware.AuthRequired, s.Feed)

	posts := api.Group("/microposts", middleware.AuthRequired)
	posts.Post("/", s.CreateMicropost)
	posts.Delete("/:id", s.DeleteMicropost)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.WarnContext(ctx, "redis close failed", "error", err.Error())
		}
	}
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
