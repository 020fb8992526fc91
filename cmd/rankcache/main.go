package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"rankcache/internal/cli"
)

func main() {
	// SIGINT/SIGTERM cancel ctx; commands stop between cache operations.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
