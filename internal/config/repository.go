package config

import (
	"context"
	"fmt"
	"os"

	"todo-list/internal/repository"
	"todo-list/internal/repository/postgres"
	"todo-list/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// DevelopmentDatabasePath is the SQLite file used in the development environment.
const DevelopmentDatabasePath = "todo.db"

// GetEnvironment reads TODO_ENV. Anything unrecognised is Production.
func GetEnvironment() Environment {
	switch Environment(os.Getenv("TODO_ENV")) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		return Production
	}
}

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env    Environment
	config *Config
}

// NewRepositoryFactory creates a new repository factory for the given
// environment. config is only consulted in Production.
func NewRepositoryFactory(env Environment, config *Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, config: config}
}

// CreateRepository opens and migrates the store for the factory's environment.
func (rf *RepositoryFactory) CreateRepository(ctx context.Context) (repository.Repository, error) {
	switch rf.env {
	case Testing:
		repo, err := sqlite.NewInMemory()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize testing database: %w", err)
		}
		return repo, nil
	case Development:
		repo, err := sqlite.New(DevelopmentDatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize development database: %w", err)
		}
		return repo, nil
	default:
		return rf.createProductionRepository(ctx)
	}
}

func (rf *RepositoryFactory) createProductionRepository(ctx context.Context) (repository.Repository, error) {
	if rf.config == nil {
		return nil, fmt.Errorf("production repository requires a configuration")
	}
	db := rf.config.Database

	switch db.Driver {
	case DriverPostgres:
		repo, err := postgres.New(ctx, db.DSN, db.Schema)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres database: %w", err)
		}
		return repo, nil
	case DriverSQLite:
		if err := os.MkdirAll(db.Dir, os.FileMode(db.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		repo, err := sqlite.New(rf.config.GetDatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, &ConfigError{Field: "database.driver", Message: fmt.Sprintf("unsupported driver %q", db.Driver)}
	}
}
