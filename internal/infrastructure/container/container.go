package container

import (
	"fmt"
	"time"

	"github.com/KaurHarleen1930/hokienest-backend/internal/cache"
	"github.com/KaurHarleen1930/hokienest-backend/internal/config"
	"github.com/KaurHarleen1930/hokienest-backend/internal/delivery/http"
	"github.com/KaurHarleen1930/hokienest-backend/internal/delivery/http/handler"
	"github.com/KaurHarleen1930/hokienest-backend/internal/delivery/http/middleware"
	"github.com/KaurHarleen1930/hokienest-backend/internal/infrastructure/database"
	"github.com/KaurHarleen1930/hokienest-backend/internal/infrastructure/gemini"
	"github.com/KaurHarleen1930/hokienest-backend/internal/infrastructure/server"
	"github.com/KaurHarleen1930/hokienest-backend/internal/matching"
	"github.com/KaurHarleen1930/hokienest-backend/internal/repository/postgres"
	"github.com/KaurHarleen1930/hokienest-backend/internal/usecase/auth"
	"github.com/KaurHarleen1930/hokienest-backend/internal/usecase/match"
	"github.com/KaurHarleen1930/hokienest-backend/internal/usecase/profile"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := newLogger(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis. The match cache is optional: if Redis is down
	// the store stays authoritative and reads go straight to Postgres.
	var matchCache match.MatchCache
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("failed to initialize redis, continuing without match cache", zap.Error(err))
		redisClient = nil
	} else {
		matchCache = cache.NewMatchCache(redisClient, cfg.Matching.CacheTTL)
	}

	// Initialize Gemini Client
	geminiClient, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		log.Warn("failed to initialize gemini client, continuing without AI features", zap.Error(err))
		// Don't fail, just continue without AI features
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	matchRepo := postgres.NewMatchRepository(db)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		profileRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryMinutes)*time.Minute,
	)

	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
	)

	matchUseCase := match.NewMatchUseCase(
		profileRepo,
		matchRepo,
		matchCache,
		matching.NewResolver(log),
		geminiClient,
		cfg.Matching,
		log,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		matchHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

func newLogger(cfg *config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	return nil
}
