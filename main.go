package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"admin-panel-server/config"
	"admin-panel-server/handlers"
	"admin-panel-server/helper"
	"admin-panel-server/middleware"
	"admin-panel-server/repositories"
	"admin-panel-server/services"
	"admin-panel-server/storage"
)

func main() {
	// Running without a .env file is fine in containers.
	_ = godotenv.Load()

	lg := buildLogger()
	defer lg.Sync() //nolint:errcheck

	jwtCfg, err := config.LoadJWT()
	if err != nil {
		lg.Fatal("token configuration", zap.Error(err))
	}

	db, err := config.InitDB()
	if err != nil {
		lg.Fatal("database init", zap.Error(err))
	}

	if created, err := config.SeedAdmin(db); err != nil {
		// The server still starts; an operator can seed by hand.
		lg.Warn("admin seed failed", zap.Error(err))
	} else if created {
		lg.Info("admin account seeded")
	}

	images, err := storage.NewS3Storage(context.Background(), storage.LoadS3Config())
	if err != nil {
		lg.Fatal("image storage init", zap.Error(err))
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Services
	tokens := services.NewTokenService(jwtCfg)
	authService := services.NewAuthService(userRepo, tokens, lg)
	userService := services.NewUserService(userRepo)
	articleService := services.NewArticleService(articleRepo, commentRepo, images, lg)
	analyticsService := services.NewAnalyticsService(articleRepo, userRepo, commentRepo)

	// Handlers
	h := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, tokens, h)
	userHandler := handlers.NewUserHandler(userService, h)
	articleHandler := handlers.NewArticleHandler(articleService, images, h, lg)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, h)

	router := setupRouter(tokens, authHandler, userHandler, articleHandler, analyticsHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		lg.Info("admin panel server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("listen and serve", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("server shutdown", zap.Error(err))
	}
}

func setupRouter(
	tokens *services.TokenService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	articleHandler *handlers.ArticleHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(config.AllowedOrigins()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"service":   "admin-panel-server",
			"timestamp": time.Now(),
		})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", middleware.AuthMiddleware(tokens), authHandler.GetProfile)
			auth.POST("/logout", authHandler.Logout)
		}

		articles := api.Group("/articles")
		{
			// Image streaming stays public.
			articles.GET("/:id/image", articleHandler.StreamImage)

			authed := articles.Group("", middleware.AuthMiddleware(tokens))
			{
				authed.GET("", middleware.RequireAdminOrEditor(), articleHandler.GetArticles)
				authed.GET("/:id", middleware.RequireAdminOrEditor(), articleHandler.GetArticle)
				authed.PUT("/:id", middleware.RequireAdminOrEditor(), articleHandler.UpdateArticle)
				authed.DELETE("/:id", middleware.RequireAdmin(), articleHandler.DeleteArticle)
			}
		}

		analytics := api.Group("/analytics", middleware.AuthMiddleware(tokens), middleware.RequireAdminOrEditor())
		{
			analytics.GET("/dashboard", analyticsHandler.GetDashboard)
			analytics.GET("/articles", analyticsHandler.GetArticleAnalytics)
		}

		users := api.Group("/users", middleware.AuthMiddleware(tokens))
		{
			users.POST("/editors", middleware.RequireAdmin(), userHandler.CreateEditor)
			users.GET("/editors", middleware.RequireAdmin(), userHandler.GetEditors)
			users.GET("", middleware.RequireAdminOrEditor(), userHandler.GetUsers)
			users.GET("/:id", middleware.RequireAdminOrEditor(), userHandler.GetUser)
			users.PUT("/:id/role", middleware.RequireAdmin(), userHandler.UpdateRole)
			users.PUT("/:id/status", middleware.RequireAdminOrEditor(), userHandler.ToggleActive)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}

func buildLogger() *zap.Logger {
	if os.Getenv("APP_ENV") == "production" {
		lg, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return lg
	}

	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return lg
}
