package container

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/shubhmangal/backend/internal/config"
	"github.com/shubhmangal/backend/internal/delivery/http"
	"github.com/shubhmangal/backend/internal/delivery/http/handler"
	"github.com/shubhmangal/backend/internal/delivery/http/middleware"
	"github.com/shubhmangal/backend/internal/infrastructure/database"
	"github.com/shubhmangal/backend/internal/infrastructure/server"
	"github.com/shubhmangal/backend/internal/infrastructure/storage"
	"github.com/shubhmangal/backend/internal/repository/postgres"
	"github.com/shubhmangal/backend/internal/usecase/auth"
	"github.com/shubhmangal/backend/internal/usecase/chat"
	"github.com/shubhmangal/backend/internal/usecase/interest"
	"github.com/shubhmangal/backend/internal/usecase/profile"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server

	pollerCancel context.CancelFunc
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize photo storage
	photoStore, err := storage.NewLocalPhotoStore(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	interestRepo := postgres.NewInterestRepository(db)
	adminRepo := postgres.NewAdminRepository(db)

	// Initialize use cases
	denylist := auth.NewRedisDenylist(redisClient)
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		profileRepo,
		adminRepo,
		photoStore,
		denylist,
		&cfg.JWT,
	)

	profileUseCase := profile.NewProfileUseCase(profileRepo, photoStore)

	countCache := interest.NewRedisCountCache(redisClient)
	interestUseCase := interest.NewInterestUseCase(
		interestRepo,
		profileRepo,
		adminRepo,
		countCache,
	)

	sessionStore := chat.NewRedisSessionStore(redisClient, cfg.Chat.SessionTTL)
	chatUseCase := chat.NewChatUseCase(sessionStore, profileUseCase, cfg.Chat.ProfileLimit)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	chatHandler := handler.NewChatHandler(chatUseCase)
	interestHandler := handler.NewInterestHandler(interestUseCase)
	adminHandler := handler.NewAdminHandler(profileUseCase, interestUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		chatHandler,
		interestHandler,
		adminHandler,
		authMiddleware,
		cfg.Storage.Path,
		cfg.Storage.BaseURL,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	// Start the pending-interest count poller
	pollerCtx, cancel := context.WithCancel(context.Background())
	poller := interest.NewPoller(interestRepo, countCache, cfg.Chat.PollInterval)
	go poller.Run(pollerCtx)

	return &Container{
		Config:       cfg,
		DB:           db,
		Redis:        redisClient,
		Server:       srv,
		pollerCancel: cancel,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Stop background polling
	if c.pollerCancel != nil {
		c.pollerCancel()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
