package container

import (
	"context"
	"fmt"

	"books-api/internal/config"
	"books-api/internal/domains/book/handler"
	"books-api/internal/domains/book/repository"
	"books-api/internal/domains/book/service"
	"books-api/internal/infrastructure/database"
	"books-api/pkg/logger"
)

// Container holds every application dependency.
// Infrastructure is built first, then repository, service and handler
// layers on top of it.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	BookRepo    repository.RepositoryInterface
	BookService service.ServiceInterface
	BookHandler *handler.Handler
}

// NewContainer connects to PostgreSQL and wires the book domain.
// Startup fails if the database cannot be reached after the configured retries.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger.Info("Initializing container", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	db := database.NewPostgresDB(cfg.DBConfig())
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewWithDB(cfg, db), nil
}

// NewWithDB wires the container around an already connected database.
func NewWithDB(cfg *config.Config, db *database.PostgresDB) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Debug("Container initialized")
	return c
}

func (c *Container) initRepositories() {
	c.BookRepo = repository.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.BookService = service.NewBookService(c.BookRepo)
}

func (c *Container) initHandlers() {
	c.BookHandler = handler.NewHandler(c.BookService)
}

// Cleanup releases the connection pool.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("Container cleanup completed", nil)
}
