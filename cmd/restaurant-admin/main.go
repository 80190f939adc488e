package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"restaurant-admin/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(cli.Run(ctx, os.Args[1:]))
}
