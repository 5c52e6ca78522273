package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geonjuring/parking-system/internal/cache"
	"github.com/geonjuring/parking-system/internal/config"
	"github.com/geonjuring/parking-system/internal/database"
	"github.com/geonjuring/parking-system/internal/feed"
	"github.com/geonjuring/parking-system/internal/handlers"
	"github.com/geonjuring/parking-system/internal/logger"
	"github.com/geonjuring/parking-system/internal/middleware"
	"github.com/geonjuring/parking-system/internal/registry"
	"github.com/geonjuring/parking-system/internal/repository"
	"github.com/geonjuring/parking-system/internal/services"
	"github.com/geonjuring/parking-system/internal/simulation"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting parking API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Connect the occupancy snapshot cache
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis", err, map[string]interface{}{
			"addr": cfg.Redis.Addr(),
		})
	}
	defer redisClient.Close()

	log.Info("Cache connection established", map[string]interface{}{
		"addr": cfg.Redis.Addr(),
	})

	// Static registry and the occupancy simulator over it
	reg := registry.Default()
	sim := simulation.New(reg, cfg.Simulation.Seed)

	log.Info("Registry loaded", map[string]interface{}{
		"dongs": len(reg.DongNames()),
		"lots":  reg.LotCount(),
	})

	// Charger feed: initial load, then on demand via the refresh endpoint
	feedCache := feed.NewCache(cfg.Feed.Path, feed.NewReader())
	chargerService := services.NewChargerService(feedCache, reg, log)
	if err := chargerService.Refresh(ctx); err != nil {
		// The API still serves lot status without charger data
		log.Warn("Initial charger feed load failed", map[string]interface{}{
			"path":  cfg.Feed.Path,
			"error": err.Error(),
		})
	}

	// Service layer
	parkingService := services.NewParkingService(reg, sim, log)
	userService := services.NewUserService(repository.NewUserRepository(db), log)
	favoriteService := services.NewFavoriteService(repository.NewFavoriteRepository(db), reg, log)
	sessionService := services.NewSessionService(repository.NewSessionRepository(db), reg, log)

	// Run the simulator and publish snapshots until shutdown
	snapshots := cache.NewSnapshotStore(redisClient, 3*cfg.Simulation.Interval)
	simCtx, stopSim := context.WithCancel(ctx)
	defer stopSim()
	go runSimulator(simCtx, sim, snapshots, cfg.Simulation.Interval, log)

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, redisClient, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Initialize handlers
	lotHandler := handlers.NewLotHandler(parkingService)
	chargerHandler := handlers.NewChargerHandler(chargerService)
	userHandler := handlers.NewUserHandler(userService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/dongs", lotHandler.Dongs)
		v1.GET("/dongs/:dong/lots", lotHandler.Lots)

		lots := v1.Group("/lots")
		{
			lots.GET("/:name", lotHandler.Lot)
			lots.GET("/:name/fee", lotHandler.Fee)
			lots.GET("/:name/chargers", chargerHandler.ForLot)
		}

		chargers := v1.Group("/chargers")
		{
			chargers.GET("", chargerHandler.List)
			chargers.POST("/refresh", chargerHandler.Refresh)
		}

		auth := v1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
		}

		users := v1.Group("/users/:user")
		{
			users.PUT("/password", userHandler.ChangePassword)
			users.DELETE("", userHandler.DeleteAccount)

			favorites := users.Group("/favorites")
			{
				favorites.GET("", favoriteHandler.List)
				favorites.POST("", favoriteHandler.Add)
				favorites.DELETE("", favoriteHandler.Remove)
				favorites.DELETE("/all", favoriteHandler.Clear)
			}

			parking := users.Group("/parking")
			{
				parking.POST("", sessionHandler.Start)
				parking.GET("", sessionHandler.Current)
				parking.DELETE("", sessionHandler.End)
			}
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)
	stopSim()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}

// runSimulator advances the occupancy random walk on a fixed interval
// and publishes each snapshot to the cache. Publish failures are logged
// and the walk continues; the in-process view stays authoritative.
func runSimulator(ctx context.Context, sim *simulation.Simulator, store *cache.SnapshotStore, interval time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sim.Tick()
			if err := store.Publish(ctx, sim.Statuses()); err != nil {
				log.Warn("Occupancy snapshot publish failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}
}
