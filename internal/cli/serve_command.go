package cli

import (
	"context"
	"fmt"

	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/rpc"
	"todo-list/internal/services"
)

// ServeCommand runs the RPC server against the configured store
type ServeCommand struct {
	env    config.Environment
	config *config.Config
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(env config.Environment, cfg *config.Config) *ServeCommand {
	return &ServeCommand{env: env, config: cfg}
}

// Execute opens the store and serves until ctx is cancelled. The store is
// closed after the server has drained.
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	repo, err := config.NewRepositoryFactory(c.env, c.config).CreateRepository(ctx)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logging.Errorf("closing store: %v", err)
		}
	}()

	router := rpc.NewRouter(services.NewTodoService(repo))
	server := rpc.NewServer(router, repo, rpc.Options{
		Addr:            c.config.Server.Addr,
		ReadTimeout:     c.config.Server.ReadTimeout,
		WriteTimeout:    c.config.Server.WriteTimeout,
		ShutdownTimeout: c.config.Server.ShutdownTimeout,
	})

	logging.Debugf("serving procedures %v (%s environment)", router.Names(), c.env)
	return server.ListenAndServe(ctx)
}
