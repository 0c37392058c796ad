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
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/placement/studentms/internal/app/controllers"
	appMigrations "github.com/placement/studentms/internal/app/migrations"
	appRepos "github.com/placement/studentms/internal/app/repositories"
	appRoutes "github.com/placement/studentms/internal/app/routes"
	appServices "github.com/placement/studentms/internal/app/services"
	"github.com/placement/studentms/internal/config"
	"github.com/placement/studentms/internal/db"
	appMiddleware "github.com/placement/studentms/internal/middleware"
	pkgAuth "github.com/placement/studentms/internal/pkg/auth"
	"github.com/placement/studentms/internal/pkg/logger"
	"github.com/placement/studentms/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    *appServices.StudentService
	AuthService       *appServices.AuthService
	StudentController *appControllers.StudentController
	AuthController    *appControllers.AuthController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

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

// SetupDatabase establishes the database connection and runs migrations.
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

	if cfg.Auth.SeedAdmin {
		if err := seed.CreateDefaultAdmin(context.Background(), database, cfg, lgr); err != nil {
			// Seeding failure is not fatal; the register endpoint still works
			lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	verifier, encoder := pkgAuth.ForScheme(cfg.Auth.PasswordScheme)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminUserRepository, verifier, encoder, lgr)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORSMiddleware())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.AuthController,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	})

	return router
}
