package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutriplan/backend/config"
	"github.com/nutriplan/backend/internal/api"
	"github.com/nutriplan/backend/internal/database"
	"github.com/nutriplan/backend/internal/middleware"
	"github.com/nutriplan/backend/internal/nutrition"
	"github.com/nutriplan/backend/internal/service"
	"github.com/nutriplan/backend/internal/store"
)

// Server wires the nutrient store, calculator service and HTTP transport.
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New builds the server. With a database the catalogue is served from it;
// without one the built-in in-memory catalogue keeps the calculators fully
// functional. The Redis client is optional and enables response caching and
// rate limiting.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	var nutrientStore nutrition.NutrientStore
	if db != nil {
		nutrientStore = store.NewGormStore(db)
	} else {
		log.Println("no database configured, serving the built-in catalogue")
		nutrientStore = store.NewMemoryStore()
	}

	svc := service.NewNutritionService(nutrientStore, redisClient)

	v1 := router.Group("/api/v1")
	if redisClient != nil {
		limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     120,
			KeyPrefix: "ratelimit",
		})
		v1.Use(limiter.RateLimitMiddleware())
	}
	api.NewNutritionHandler(svc).RegisterRoutes(v1)

	router.GET("/health", func(c *gin.Context) {
		if db != nil {
			if err := database.HealthCheck(c.Request.Context(), db); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		router: router,
		cfg:    cfg,
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start runs the HTTP listener and blocks until it stops.
func (s *Server) Start() error {
	log.Printf("listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests before stopping.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
