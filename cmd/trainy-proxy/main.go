package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/fitroutine/trainy/internal/config"
	"github.com/fitroutine/trainy/internal/proxy"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	server := proxy.New(cfg.Weather.APIKey, cfg.Weather.ProviderURL, nil, log)

	log.Info("listening", "addr", cfg.Server.Addr())
	if err := http.ListenAndServe(cfg.Server.Addr(), server); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
