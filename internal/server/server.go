package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/minisocial/backend/internal/auth"
	"github.com/minisocial/backend/internal/config"
	"github.com/minisocial/backend/internal/database"
	"github.com/minisocial/backend/internal/handlers"
	"github.com/minisocial/backend/internal/middleware"
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
	tokens  *auth.TokenService
	cfg     *config.Config
}

// New wires config and database into the handler tree.
func New(cfg *config.Config, db database.Service) *Server {
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	return &Server{
		db:      db,
		handler: handlers.NewHandler(db.GetDB(), tokens, hasher),
		tokens:  tokens,
		cfg:     cfg,
	}
}

// NewHTTPServer creates and configures the HTTP server for main.
func NewHTTPServer(cfg *config.Config) *http.Server {
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	s := New(cfg, db)
	router := s.RegisterRoutes()

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", cfg.Port)

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(middleware.RequestID())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", s.handler.Auth.Register)
		api.POST("/authenticate", s.handler.Auth.Login)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.Auth(s.tokens))
		{
			protected.GET("/user", s.handler.Auth.Me)

			protected.POST("/follow/:id", s.handler.User.Follow)
			protected.POST("/unfollow/:id", s.handler.User.Unfollow)
			protected.GET("/followers", s.handler.User.Followers)
			protected.GET("/following", s.handler.User.Following)

			protected.POST("/posts", s.handler.Post.CreatePost)
			protected.DELETE("/posts/:id", s.handler.Post.DeletePost)
			protected.GET("/posts/:id", s.handler.Post.GetPost)
			protected.GET("/all_posts", s.handler.Post.GetMyPosts)

			// The reference API exposes like/unlike/comment as GETs; kept
			// for client compatibility.
			protected.GET("/like/:id", s.handler.Post.LikePost)
			protected.GET("/unlike/:id", s.handler.Post.UnlikePost)
			protected.GET("/comment/:id", s.handler.Post.CreateComment)
			protected.GET("/comments/:id", s.handler.Post.GetComments)
		}
	}

	return r
}
