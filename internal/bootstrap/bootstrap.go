package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kaan/uniforum/internal/app/controllers"
	appMigrations "github.com/kaan/uniforum/internal/app/migrations"
	appRepos "github.com/kaan/uniforum/internal/app/repositories"
	appRoutes "github.com/kaan/uniforum/internal/app/routes"
	appServices "github.com/kaan/uniforum/internal/app/services"
	"github.com/kaan/uniforum/internal/config"
	"github.com/kaan/uniforum/internal/db"
	appMiddleware "github.com/kaan/uniforum/internal/middleware"
	pkgAuth "github.com/kaan/uniforum/internal/pkg/auth"
	"github.com/kaan/uniforum/internal/pkg/logger"
	"github.com/kaan/uniforum/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	CatalogService         appServices.CatalogService
	QuestionService        appServices.QuestionService
	AnswerService          appServices.AnswerService
	VoteService            appServices.VoteService
	AnnouncementService    appServices.AnnouncementService
	LeaderboardService     appServices.LeaderboardService
	AuthController         *appControllers.AuthController
	CatalogController      *appControllers.CatalogController
	QuestionController     *appControllers.QuestionController
	AnswerController       *appControllers.AnswerController
	VoteController         *appControllers.VoteController
	AnnouncementController *appControllers.AnnouncementController
	LeaderboardController  *appControllers.LeaderboardController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seed failures are not fatal; the API works without default data
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  parseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: parseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.SubjectRepository,
		deps.Repos.DepartmentRepository,
		deps.JWTService,
		lgr,
	)
	deps.CatalogService = appServices.NewCatalogService(
		deps.Repos.DepartmentRepository,
		deps.Repos.SubjectRepository,
		lgr,
	)
	deps.QuestionService = appServices.NewQuestionService(
		deps.Repos.QuestionRepository,
		deps.Repos.SubjectRepository,
		deps.Repos.AnswerRepository,
		lgr,
	)
	deps.AnswerService = appServices.NewAnswerService(
		deps.Repos.AnswerRepository,
		deps.Repos.QuestionRepository,
		deps.Repos.SubjectRepository,
		lgr,
	)
	deps.VoteService = appServices.NewVoteService(
		deps.Repos.UpvoteRepository,
		deps.Repos.AnswerRepository,
		lgr,
	)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository, lgr)
	deps.LeaderboardService = appServices.NewLeaderboardService(deps.Repos.UserRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.QuestionController = appControllers.NewQuestionController(deps.QuestionService)
	deps.AnswerController = appControllers.NewAnswerController(deps.AnswerService)
	deps.VoteController = appControllers.NewVoteController(deps.VoteService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)
	deps.LeaderboardController = appControllers.NewLeaderboardController(deps.LeaderboardService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CatalogController,
		deps.QuestionController,
		deps.AnswerController,
		deps.VoteController,
		deps.AnnouncementController,
		deps.LeaderboardController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
