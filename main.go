package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/chaos-io/rembg-api/config"
	"github.com/chaos-io/rembg-api/rembg"
	"github.com/chaos-io/rembg-api/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	var remover rembg.Remover = rembg.NewDefaultRemBG()
	if cfg.RembgURL != "" {
		remover = rembg.NewEngineRemover(cfg.RembgURL, cfg.RembgTimeout)
	}

	stats := server.NewStats()

	c := cron.New()
	if _, err := c.AddFunc("@every 1m", stats.Report); err != nil {
		log.Fatal("Failed to schedule stats job:", err)
	}
	c.Start()
	defer c.Stop()

	srv := server.New(cfg, remover, stats)

	slog.Info("listening", "addr", cfg.Addr(), "engine", cfg.RembgURL)
	if err := srv.Run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
