package app

import (
	"context"
	"fmt"
	"time"

	"job-routing/internal/config"
	"job-routing/internal/data"
	"job-routing/internal/database"
	dbpostgres "job-routing/internal/database/postgres"
	"job-routing/internal/domain/job"
	"job-routing/internal/infrastructure/cache"
	"job-routing/internal/repository"
	"job-routing/internal/usecase"
	"job-routing/internal/view"
	"job-routing/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config   config.Config
	Logger   *zap.Logger
	Catalog  *job.Catalog
	Cache    *cache.Redis
	Jobs     *usecase.JobList
	Renderer *view.Renderer
	Hub      *ws.Hub
}

// NewContainer loads the data set once and wires every component around it.
func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	catalog, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("jobs loaded",
		zap.String("source", cfg.Data.Source),
		zap.Int("count", catalog.Len()),
		zap.String("fingerprint", catalog.Fingerprint()),
	)

	var redis *cache.Redis
	if cfg.Cache.Enabled {
		redis = cache.NewRedis(cfg.Cache, logger.Named("cache"))
	}

	return NewContainerWithCatalog(cfg, catalog, redis, logger)
}

func NewContainerWithCatalog(cfg config.Config, catalog *job.Catalog, redis *cache.Redis, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	var searchCache usecase.SearchCache
	if redis != nil {
		searchCache = redis
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Catalog:  catalog,
		Cache:    redis,
		Jobs:     usecase.NewJobListUsecase(catalog, cfg.Board, searchCache, logger),
		Renderer: renderer,
		Hub:      ws.NewHub(logger),
	}, nil
}

func LoadCatalog(ctx context.Context, cfg config.Config) (*job.Catalog, error) {
	var (
		src repository.JobSource
		db  database.DB
	)
	switch cfg.Data.Source {
	case config.DataSourceFile:
		src = repository.NewFileJobRepository(cfg.Data.JobsFile)
	case config.DataSourcePostgres:
		conn, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		db = conn
		src = repository.NewPostgresJobRepository(db)
	default:
		src = repository.NewEmbeddedJobRepository(data.JobsJSON)
	}
	if db != nil {
		// The catalog is loaded once; the pool is not needed afterwards.
		defer db.Close()
	}

	postings, err := src.LoadJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}
	return job.NewCatalog(postings)
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
