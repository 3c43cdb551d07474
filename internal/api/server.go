package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"engagemate/internal/api/handlers"
	"engagemate/internal/api/middleware"
	"engagemate/internal/config"
	"engagemate/internal/discovery"
	"engagemate/internal/engage"
	"engagemate/internal/events"
	"engagemate/internal/logger"
	"engagemate/internal/settings"
	"engagemate/internal/store"

	"github.com/gin-gonic/gin"
)

// Deps bundles the explicitly constructed collaborators the server routes to.
// Stores are injected so tests can substitute in-memory fakes.
type Deps struct {
	Products  store.ProductStore
	Manager   *engage.Manager
	Settings  *settings.Service
	Searcher  discovery.Searcher
	Publisher events.Publisher
}

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, log *logger.Logger, deps Deps) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	// Initialize handlers
	productHandler := handlers.NewProductHandler(deps.Products, deps.Publisher, log)
	discoveryHandler := handlers.NewDiscoveryHandler(deps.Products, deps.Settings, deps.Searcher, log)
	commentHandler := handlers.NewCommentHandler(deps.Manager, deps.Products, log)
	settingsHandler := handlers.NewSettingsHandler(deps.Settings, log)
	statsHandler := handlers.NewStatsHandler(deps.Products, deps.Manager)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Routes
	v1 := router.Group("/api/v1")
	{
		// Products
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		// Discovery
		v1.POST("/discovery/search", discoveryHandler.Search)

		// Generated comments
		comments := v1.Group("/comments")
		{
			comments.GET("", commentHandler.List)
			comments.POST("/generate", commentHandler.Generate)
			comments.POST("/:id/post", commentHandler.MarkPosted)
			comments.POST("/:id/fail", commentHandler.MarkFailed)
			comments.DELETE("/:id", commentHandler.Delete)
		}

		// Settings
		v1.GET("/settings", settingsHandler.Get)
		v1.PUT("/settings", settingsHandler.Save)

		// Dashboard stats
		v1.GET("/stats", statsHandler.Get)
	}

	return &Server{
		config: cfg,
		logger: log,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on %s", addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// Router exposes the gin engine for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
