package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/bloglist/internal/config"
	"github.com/templui/bloglist/internal/db"
	"github.com/templui/bloglist/internal/middleware"
	"github.com/templui/bloglist/internal/repository"
	"github.com/templui/bloglist/internal/service"
)

// sweepInterval is how often idle rate limiter entries are dropped
const sweepInterval = 5 * time.Minute

// App owns the database handle and the services built on it.
type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	BlogService *service.BlogService
	RateLimiter *middleware.RateLimiter

	stop chan struct{}
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	blogRepository := repository.NewBlogRepository(database)

	// Services
	blogService := service.NewBlogService(blogRepository)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	stop := make(chan struct{})
	go rateLimiter.Run(sweepInterval, stop)

	return &App{
		Cfg:         cfg,
		DB:          database,
		BlogService: blogService,
		RateLimiter: rateLimiter,
		stop:        stop,
	}, nil
}

// Close stops background work and closes the database. Safe to call once.
func (a *App) Close() error {
	if a.stop != nil {
		close(a.stop)
		a.stop = nil
	}
	return db.Close(a.DB)
}
