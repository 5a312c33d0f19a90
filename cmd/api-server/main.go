package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"animehub/database"
	"animehub/internal/config"
	"animehub/internal/handler"
	"animehub/internal/middleware"
	"animehub/internal/realtime"
	"animehub/internal/repository"
	"animehub/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// Redis is optional; without it realtime events stay on this instance.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unreachable, realtime fan-out disabled", "error", err)
			rdb = nil
		}
		cancel()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub(rdb)
	go hub.Run(ctx)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	animeRepo := repository.NewAnimeRepository(db)
	tagRepo := repository.NewTagRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	forumRepo := repository.NewForumRepository(db)
	forumPostRepo := repository.NewForumPostRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	animeService := service.NewAnimeService(animeRepo, tagRepo, reviewRepo, favoriteRepo)
	reviewService := service.NewReviewService(reviewRepo, animeRepo)
	forumService := service.NewForumService(forumRepo, forumPostRepo, replyRepo)
	messageService := service.NewMessageService(messageRepo, userRepo, hub)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	animeHandler := handler.NewAnimeHandler(animeService, reviewService)
	forumHandler := handler.NewForumHandler(forumService)
	messageHandler := handler.NewMessageHandler(messageService)

	if cfg.GoEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")

	public := api.Group("")
	public.Use(middleware.OptionalAuth(authService))

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authService), middleware.RequireAdmin())

	authHandler.RegisterRoutes(public, authed)
	animeHandler.RegisterRoutes(public, authed, admin)
	forumHandler.RegisterRoutes(public, authed, admin)
	messageHandler.RegisterRoutes(authed)
	authed.GET("/ws", realtime.WSHandler(hub))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
