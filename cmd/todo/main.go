package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-list/internal/cli"
	"todo-list/internal/config"
)

func main() {
	// Interrupts cancel the command context; serve drains and closes the store.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(config.GetEnvironment(), os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
