package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"ordersdesk.com/app/internal/config"
	"ordersdesk.com/app/internal/console"
	"ordersdesk.com/app/internal/orderlist"
	"ordersdesk.com/app/internal/ordersapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	flag.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "admin API base URL")
	flag.StringVar(&cfg.AdminToken, "token", cfg.AdminToken, "admin token")
	flag.DurationVar(&cfg.SearchDebounce, "debounce", cfg.SearchDebounce, "search quiet period")
	flag.Parse()
	if err := cfg.ValidateClient(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	out := console.NewOutput(os.Stdout)

	client := ordersapi.NewClient(cfg.APIBaseURL, ordersapi.WithToken(cfg.AdminToken))
	res := ordersapi.NewOrdersResource(client, func(s ordersapi.Snapshot) {
		console.RenderSnapshot(out, s)
	})

	base := strings.TrimRight(cfg.APIBaseURL, "/")
	nav := orderlist.NavigatorFunc(func(path string) {
		fmt.Fprintf(out, "→ %s%s\n", base, path)
	})

	ctrl := orderlist.NewController(res, nav, orderlist.Options{
		Debounce: cfg.SearchDebounce,
		Logger:   logger,
	})
	defer ctrl.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// initial load, same as mounting the screen
	_ = ctrl.Clear(ctx)

	fmt.Fprintln(out, "type to search, :help for commands")
	err = console.NewSession(ctrl, out, logger).Run(ctx, os.Stdin)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
