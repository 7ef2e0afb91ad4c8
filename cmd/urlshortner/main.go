package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Vaibhavmishra08/urlshortner/internal/adapter/delivery/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
