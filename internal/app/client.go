package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/stpnv0/EventHub/internal/cli"
	"github.com/stpnv0/EventHub/internal/client/catalog"
	"github.com/stpnv0/EventHub/internal/client/coordinator"
	"github.com/stpnv0/EventHub/internal/client/ledger"
	"github.com/stpnv0/EventHub/internal/client/notice"
	"github.com/stpnv0/EventHub/internal/client/remote"
	"github.com/stpnv0/EventHub/internal/config"
	"github.com/stpnv0/EventHub/internal/scheduler"
	"github.com/wb-go/wbf/logger"
)

// Client is the terminal application: the sync core behind a shell.
type Client struct {
	cfg         *config.ClientConfig
	log         logger.Logger
	coordinator *coordinator.Coordinator
	scheduler   *scheduler.Scheduler
	shell       *cli.Shell
}

func NewClient(cfg *config.ClientConfig, in io.Reader, out io.Writer) (*Client, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventHub",
		"client",
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	api := remote.New(cfg.Remote.BaseURL, &http.Client{Timeout: cfg.Remote.Timeout})

	c := coordinator.New(
		catalog.NewStore(api, log),
		ledger.New(api, log),
		notice.New(cfg.Notice.TTL),
		log,
	)

	return &Client{
		cfg:         cfg,
		log:         log,
		coordinator: c,
		scheduler:   scheduler.New(c, cfg.Scheduler.Interval, log),
		shell:       cli.New(c, api, in, out, log),
	}, nil
}

// Run serves the shell until it exits or ctx is done.
func (c *Client) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.scheduler.Start(ctx)
	}()

	c.log.LogAttrs(ctx, logger.InfoLevel, "client started",
		logger.String("remote", c.cfg.Remote.BaseURL),
	)

	// the shell blocks on stdin, so a signal does not wait for it
	done := make(chan error, 1)
	go func() { done <- c.shell.Run(ctx) }()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		c.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	}

	cancel()
	wg.Wait()
	c.coordinator.Logout()

	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}
