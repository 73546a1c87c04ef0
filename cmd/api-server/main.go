package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"novelverse/database"
	"novelverse/internal/config"
	"novelverse/internal/ingestion/googlebooks"
	"novelverse/internal/ingestion/imagehost"
	"novelverse/internal/jobs"
	"novelverse/internal/microservices/http-api/handler"
	"novelverse/internal/microservices/http-api/middleware"
	"novelverse/internal/microservices/http-api/repository"
	"novelverse/internal/microservices/http-api/service"
	"novelverse/internal/microservices/websocket"
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

	cache, err := googlebooks.NewVolumeCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CatalogTTL)
	if err != nil {
		log.Fatalf("could not connect to Redis: %v", err)
	}
	defer cache.Close()

	// repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	novelRepo := repository.NewNovelRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	shelfRepo := repository.NewBookshelfRepository(db)
	convRepo := repository.NewConversationRepository(db)
	msgRepo := repository.NewMessageRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	clubRepo := repository.NewBookClubRepository(db)

	// realtime hub
	hub := websocket.NewHub(logger)

	// external services
	catalog := googlebooks.NewClient(cfg.GoogleBooksAPIURL, cfg.GoogleBooksAPIKey)
	uploader := imagehost.NewUploader(
		cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.UploadFolder)

	// services
	authSvc := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	notifSvc := service.NewNotificationService(notifRepo, hub)
	userSvc := service.NewUserService(userRepo, notifSvc)
	novelSvc := service.NewNovelService(novelRepo, catalog, cache, logger)
	postSvc := service.NewPostService(postRepo, novelRepo, novelSvc, notifSvc)
	commentSvc := service.NewCommentService(commentRepo, postRepo, notifSvc, hub)
	feedSvc := service.NewFeedService(postRepo, commentRepo, userRepo, shelfRepo)
	shelfSvc := service.NewBookshelfService(shelfRepo, novelSvc)
	convSvc := service.NewConversationService(convRepo, msgRepo, userRepo, hub)
	scheduleSvc := service.NewScheduleService(scheduleRepo, shelfRepo, novelSvc, shelfSvc)
	clubSvc := service.NewBookClubService(clubRepo, shelfRepo, postSvc)
	searchSvc := service.NewSearchService(userSvc, novelSvc)

	// background jobs
	notifier := jobs.NewScheduleNotifier(scheduleRepo, notifSvc, logger)
	notifier.Start()
	defer notifier.Stop()

	// router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg.CORSOrigins))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive"})
	})

	authRequired := middleware.AuthMiddleware(authSvc)

	api := r.Group("/api")
	handler.NewAuthHandler(authSvc, cfg).RegisterRoutes(api.Group("/auth"))

	users := api.Group("/users", authRequired)
	handler.NewUserHandler(userSvc).RegisterRoutes(users)

	posts := api.Group("/posts", authRequired)
	handler.NewPostHandler(postSvc, commentSvc, feedSvc).RegisterRoutes(posts)

	comments := api.Group("/comments", authRequired)
	handler.NewCommentHandler(commentSvc).RegisterRoutes(comments)

	shelf := api.Group("/bookshelf", authRequired)
	handler.NewBookshelfHandler(shelfSvc).RegisterRoutes(shelf)

	conversations := api.Group("/conversations", authRequired)
	handler.NewConversationHandler(convSvc).RegisterRoutes(conversations)

	notifications := api.Group("/notifications", authRequired)
	handler.NewNotificationHandler(notifSvc).RegisterRoutes(notifications)

	schedule := api.Group("/schedule", authRequired)
	handler.NewScheduleHandler(scheduleSvc).RegisterRoutes(schedule)

	clubs := api.Group("/clubs", authRequired)
	handler.NewBookClubHandler(clubSvc).RegisterRoutes(clubs)

	catalogGroup := api.Group("/catalog", authRequired)
	handler.NewCatalogHandler(novelSvc, searchSvc).RegisterRoutes(catalogGroup)

	uploads := api.Group("/uploads", authRequired)
	handler.NewUploadHandler(uploader).RegisterRoutes(uploads)

	r.GET("/ws", authRequired, websocket.WSHandler(hub))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// corsMiddleware allows the configured frontend origins.
func corsMiddleware(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	for _, origin := range origins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
