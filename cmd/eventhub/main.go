// Command eventhub is the terminal client for eventhub-server.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/stpnv0/EventHub/internal/app"
	"github.com/stpnv0/EventHub/internal/config"
)

func main() {
	cfg := config.MustLoadClient()

	flag.StringVar(&cfg.Remote.BaseURL, "url", cfg.Remote.BaseURL, "eventhub-server base URL")
	flag.DurationVar(&cfg.Scheduler.Interval, "refresh", cfg.Scheduler.Interval, "auto refresh interval (0 disables)")
	flag.StringVar(&cfg.Logger.Level, "log-level", cfg.Logger.Level, "log level (debug, info, warn, error)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := app.NewClient(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("client init: %v", err)
	}

	if err = client.Run(ctx); err != nil {
		log.Fatalf("client run: %v", err)
	}
}
