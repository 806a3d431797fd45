// Package server contains the HTTP handlers and routing for the application's API endpoints.
package server

import (
	"fmt"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/github"
	"devconnect/internal/middleware"
	"devconnect/internal/repository"
	"devconnect/internal/service"
	"devconnect/internal/token"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	promMiddleware *fiberprometheus.FiberPrometheus
	tokens         *token.Service
	github         *github.Client

	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository

	userService    *service.UserService
	profileService *service.ProfileService
	postService    *service.PostService
	commentService *service.CommentService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDB(cfg, db), nil
}

// NewServerWithDB creates a Server on an already-established database
// connection. Use this in tests or when a bootstrap layer owns the
// connection lifecycle.
func NewServerWithDB(cfg *config.Config, db *gorm.DB) *Server {
	var githubOpts []github.Option
	if cfg.GithubToken != "" {
		githubOpts = append(githubOpts, github.WithToken(cfg.GithubToken))
	}

	server := &Server{
		config:         cfg,
		db:             db,
		promMiddleware: middleware.InitMetrics("devconnect-api"),
		tokens:         token.NewService(cfg.JWTSecret, token.DefaultTTL),
		github:         github.NewClient(githubOpts...),
		userRepo:       repository.NewUserRepository(db),
		profileRepo:    repository.NewProfileRepository(db),
		postRepo:       repository.NewPostRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
	}

	server.userService = service.NewUserService(server.userRepo, server.tokens)
	server.profileService = service.NewProfileService(server.profileRepo, server.userRepo)
	server.postService = service.NewPostService(server.postRepo, server.userRepo)
	server.commentService = service.NewCommentService(server.commentRepo, server.postRepo, server.userRepo)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for correlation
	app.Use(requestid.New())

	// Propagate request ID and user ID into the request context for the
	// context-aware logger
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:3000,http://127.0.0.1:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.TokenHeader,
		MaxAge:       86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	authed := middleware.AuthRequired(s.tokens)

	// Registration and login
	api.Post("/users", s.Register)
	api.Post("/auth", s.Login)
	api.Get("/auth", authed, s.GetCurrentUser)

	// Profiles
	profile := api.Group("/profile")
	profile.Get("/me", authed, s.GetMyProfile)
	profile.Post("/", authed, s.UpsertProfile)
	profile.Delete("/", authed, s.DeleteAccount)
	profile.Put("/experience", authed, s.AddExperience)
	profile.Delete("/experience/:exp_id", authed, s.DeleteExperience)
	profile.Put("/education", authed, s.AddEducation)
	profile.Delete("/education/:edu_id", authed, s.DeleteEducation)
	profile.Get("/github/:username", s.GetGithubRepos)
	profile.Get("/user/:user_id", s.GetProfileByUser)
	profile.Get("/", s.ListProfiles)

	// Posts, likes, comments
	posts := api.Group("/posts", authed)
	posts.Post("/", s.CreatePost)
	posts.Get("/", s.GetPosts)
	posts.Put("/like/:id", s.LikePost)
	posts.Put("/unlike/:id", s.UnlikePost)
	posts.Post("/comment/:id", s.AddComment)
	posts.Delete("/comment/:id/:comment_id", s.DeleteComment)
	posts.Get("/:id", s.GetPost)
	posts.Delete("/:id", s.DeletePost)
}

// HealthCheck handles GET /health
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
