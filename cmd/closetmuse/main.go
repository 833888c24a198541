package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
