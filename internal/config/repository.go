package config

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"task-manager/internal/repository/sqlite"
)

// RepositoryFactory creates repository instances based on the configured environment
type RepositoryFactory struct {
	config *Config
}

// NewRepositoryFactory creates a new repository factory for the given configuration
func NewRepositoryFactory(config *Config) *RepositoryFactory {
	return &RepositoryFactory{config: config}
}

// CreateRepository opens the store selected by the configured environment
func (rf *RepositoryFactory) CreateRepository(ctx context.Context) (sqlite.Repository, error) {
	switch rf.config.Application.Env {
	case Development:
		return rf.open(ctx, "td.db")
	case Testing:
		return rf.open(ctx, ":memory:")
	default:
		return rf.createProductionRepository(ctx)
	}
}

// createProductionRepository makes sure the database directory exists before opening the file in it
func (rf *RepositoryFactory) createProductionRepository(ctx context.Context) (sqlite.Repository, error) {
	perms, err := rf.config.GetDirPermissions()
	if err != nil {
		return nil, fmt.Errorf("invalid database directory permissions: %w", err)
	}
	if err := os.MkdirAll(rf.config.Database.Dir, perms); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	return rf.open(ctx, rf.config.GetDatabasePath())
}

func (rf *RepositoryFactory) open(ctx context.Context, dbPath string) (sqlite.Repository, error) {
	zerolog.Ctx(ctx).Debug().
		Str("env", string(rf.config.Application.Env)).
		Str("path", dbPath).
		Msg("creating repository")

	repo, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database: %w", rf.config.Application.Env, err)
	}
	return repo, nil
}

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(ctx context.Context, config *Config) (sqlite.Repository, error) {
	return NewRepositoryFactory(config).CreateRepository(ctx)
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(context.Background(), ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}
