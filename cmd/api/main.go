// @title           Poemario API
// @version         1.0
// @description     API de publicacao de poemas com votos de pena e simbolos derivados
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/poemario-backend/docs"
	"github.com/rafabene/poemario-backend/internal/handlers/dto"
	httphandlers "github.com/rafabene/poemario-backend/internal/handlers/http"
	"github.com/rafabene/poemario-backend/internal/handlers/middleware"
	"github.com/rafabene/poemario-backend/internal/handlers/ws"
	"github.com/rafabene/poemario-backend/internal/infrastructure/config"
	"github.com/rafabene/poemario-backend/internal/infrastructure/i18n"
	"github.com/rafabene/poemario-backend/internal/infrastructure/logging"
	"github.com/rafabene/poemario-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/poemario-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting poemario backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Validadores customizados (mood_color, feather_type)
	dto.RegisterValidators()

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	poemRepo := postgres.NewPoemRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	totemRepo := postgres.NewTotemRepository(db)
	rewardRepo := postgres.NewRewardRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Hub WebSocket para o feed de eventos
	hub := ws.NewHub(logger)
	defer hub.Close()

	accessExpiry, err := time.ParseDuration(cfg.Auth.AccessExpiry)
	if err != nil {
		logger.Error("invalid JWT_ACCESS_EXPIRY", "value", cfg.Auth.AccessExpiry, "error", err)
		log.Fatal(err)
	}

	// Inicializar services
	userService := services.NewUserService(userRepo, poemRepo, voteRepo, totemRepo, rewardRepo, logger)
	poemService := services.NewPoemService(poemRepo, userRepo, voteRepo, totemRepo, hub, logger)
	voteService := services.NewVoteService(voteRepo, poemRepo, userRepo, uow, hub, logger)
	totemService := services.NewTotemService(totemRepo, logger)
	rewardService := services.NewRewardService(rewardRepo, userRepo, logger)
	authService := services.NewAuthService(userRepo, services.AuthConfig{
		JWTSecret:       cfg.Auth.JWTSecret,
		AccessExpiry:    accessExpiry,
		MaxLoginRetries: cfg.Auth.MaxLoginRetries,
	}, logger)

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService)
	poemHandler := httphandlers.NewPoemHandler(poemService, voteService)
	voteHandler := httphandlers.NewVoteHandler(voteService)
	totemHandler := httphandlers.NewTotemHandler(totemService)
	rewardHandler := httphandlers.NewRewardHandler(rewardService)
	authHandler := httphandlers.NewAuthHandler(authService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Accept-Language")
	router.Use(cors.New(corsConfig))

	// Autenticação
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Feed de eventos em tempo real
	router.GET("/ws/feed", hub.ServeWS)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Users
		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", authMiddleware.RequireAuth(), userHandler.UpdateUser)
			users.DELETE("/:id", authMiddleware.RequireAuth(), userHandler.DeleteUser)
			users.POST("/:id/unlock", authMiddleware.RequireAuth(), authHandler.Unlock)

			users.GET("/:id/poems", poemHandler.ListUserPoems)
			users.GET("/:id/poems/published", poemHandler.ListUserPublishedPoems)
			users.GET("/:id/votes", voteHandler.ListUserVotes)

			users.GET("/:id/rewards", rewardHandler.ListUserRewards)
			users.PUT("/:id/rewards/:reward_id", authMiddleware.RequireAuth(), rewardHandler.GrantReward)
			users.DELETE("/:id/rewards/:reward_id", authMiddleware.RequireAuth(), rewardHandler.RevokeReward)
		}

		// Poems
		poems := v1.Group("/poems")
		{
			poems.POST("", authMiddleware.RequireAuth(), poemHandler.CreateDraft)
			poems.GET("", poemHandler.ListPoems)
			poems.GET("/:id", poemHandler.GetPoem)
			poems.PATCH("/:id", authMiddleware.RequireAuth(), poemHandler.UpdatePoem)
			poems.DELETE("/:id", authMiddleware.RequireAuth(), poemHandler.DeletePoem)
			poems.POST("/:id/publish", authMiddleware.RequireAuth(), poemHandler.Publish)

			poems.POST("/:id/votes", authMiddleware.RequireAuth(), poemHandler.CastVote)
			poems.GET("/:id/votes", poemHandler.ListPoemVotes)
		}

		// Votes
		votes := v1.Group("/votes")
		{
			votes.GET("", voteHandler.ListVotes)
			votes.GET("/:id", voteHandler.GetVote)
			votes.DELETE("/:id", authMiddleware.RequireAuth(), voteHandler.DeleteVote)
		}

		// Totems
		totems := v1.Group("/totems")
		{
			totems.POST("", authMiddleware.RequireAuth(), totemHandler.CreateTotem)
			totems.GET("", totemHandler.ListTotems)
			totems.GET("/:id", totemHandler.GetTotem)
			totems.PATCH("/:id", authMiddleware.RequireAuth(), totemHandler.UpdateTotem)
			totems.DELETE("/:id", authMiddleware.RequireAuth(), totemHandler.DeleteTotem)
		}

		// Rewards
		rewards := v1.Group("/rewards")
		{
			rewards.POST("", authMiddleware.RequireAuth(), rewardHandler.CreateReward)
			rewards.GET("", rewardHandler.ListRewards)
			rewards.GET("/:id", rewardHandler.GetReward)
			rewards.DELETE("/:id", authMiddleware.RequireAuth(), rewardHandler.DeleteReward)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
