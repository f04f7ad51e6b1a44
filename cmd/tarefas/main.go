// Package main is the entry point for the tarefas CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tarefas/internal/backend/restapi"
	"tarefas/internal/cli"
	"tarefas/internal/commands"
	"tarefas/internal/config"
	"tarefas/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return restapi.New(cfg, cfg.Logger())
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
