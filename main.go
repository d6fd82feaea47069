package main

import (
	"Uno/config"
	game_constants "Uno/constants/game"
	pgconfig "Uno/config/postgres"
	_ "Uno/config/swagger"
	"Uno/middleware"
	"Uno/routes"
	"Uno/services/auth"
	"Uno/services/gameplay"
	"Uno/services/redis"
	"Uno/services/socket_io"
	"Uno/services/store"
	"Uno/services/store/gormstore"
	"Uno/services/store/memstore"
	"Uno/services/users"
	"Uno/utils/logger"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title UNO API
// @version 1.0
// @description Gin-Gonic server for a multiplayer UNO game
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	defer logger.Sync()
	settings := config.Load()
	logger.Info("Setting up server...")

	if settings.Prod {
		gin.SetMode(gin.ReleaseMode)
	}
	if settings.SecretKey == "" {
		logger.Log.Fatal("SECRET_KEY must be set in production")
	}

	st, closeStore := openStore(settings)
	defer closeStore()

	// Token revocations and the response cache live in redis when it is
	// configured, in process otherwise
	var revocations auth.Revocations = auth.NewMemoryRevocations()
	var cache middleware.ResponseCache = middleware.NewMemoryCache(50, game_constants.RESPONSE_CACHE_TTL)
	redisClient, err := config.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	if redisClient != nil {
		defer redis.CloseRedis(redisClient)
		revocations = redisClient
		cache = redisClient
	}

	authService := auth.NewService(settings.SecretKey, revocations)
	gameService := gameplay.New(st)
	sio := &socket_io.MySocketServer{}

	r := gin.New()
	r.Use(gin.Recovery())
	middleware.SetUpMiddleware(r, settings)

	routes.SetupRoutes(r, routes.Dependencies{
		Store:    st,
		Users:    users.NewService(st),
		Auth:     authService,
		Games:    gameService,
		Cache:    cache,
		Notifier: sio,
	})
	sio.Start(r, authService, gameService, settings.CORSOrigins)

	srv := &http.Server{Addr: ":" + settings.Port, Handler: r}
	go func() {
		logger.Infof("Server started on port %s", settings.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Error starting server: %v", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-signals

	logger.Info("Shutting down...")
	sio.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Error shutting down server: %v", err)
	}
}

// openStore picks the storage backend from STORAGE
func openStore(settings config.Settings) (store.Store, func()) {
	if settings.Storage == config.StorageMemory {
		logger.Warnf("Using in-memory storage, nothing survives a restart")
		return memstore.New(), func() {}
	}

	gormDB, err := pgconfig.ConnectGORM()
	if err != nil {
		logger.Log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	logger.Info("GORM Connected")

	// Only migrate in development or during deployment
	if settings.Migrate {
		logger.Info("Migrating PostgreSQL database...")
		if err := pgconfig.MigrateDatabase(gormDB); err != nil {
			logger.Log.Fatalf("Database migration failed: %v", err)
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	return gormstore.New(gormDB), func() { sqlDB.Close() }
}
