package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/roadnet/internal/cli"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// run the command
	cli.Execute(ctx, version)
}
