// wordcountd serves the counting engine over HTTP: an upload form on /
// and a multipart counting endpoint on /count.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"wordcount/internal/webserver"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file overriding the built-in defaults")
		listenAddr = flag.String("addr", "", "listen address, overrides the configured one")
	)

	flag.Parse()

	cfg, err := webserver.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}

	if err := webserver.LoadTranslations(); err != nil {
		slog.Error("Failed to load translations", "error", err)
		os.Exit(1)
	}

	server := webserver.NewServer(cfg)

	slog.Info("Server started", "addr", cfg.ListenAddr)

	if err := http.ListenAndServe(cfg.ListenAddr, server.Routes()); err != nil {
		slog.Error("Server startup error", "error", err)
		os.Exit(1)
	}
}
