package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/watchbench/apprentice/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
