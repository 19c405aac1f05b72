package main

import (
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/podgen/podgen/internal/config"
	"github.com/podgen/podgen/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the podcast generation HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			deps, err := buildPipeline(cfg)
			if err != nil {
				return err
			}
			defer deps.close()

			opts := []server.Option{
				server.WithWorkers(cfg.Server.Workers),
				server.WithRequestTimeout(time.Duration(cfg.Server.RequestTimeout) * time.Second),
			}
			if path := suggestionsPath(cfg); path != "" {
				opts = append(opts, server.WithSuggestionsPath(path))
			}
			handler := server.NewHandler(deps.producer, deps.episodes, deps.blobs, deps.articles, opts...)
			srv := server.New(cfg.Server.ListenAddr, handler, slog.Default())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}
}

// suggestionsPath returns the configured suggestions file, or the
// suggestions.json next to the metadata when one exists
func suggestionsPath(cfg config.Config) string {
	if cfg.Podcast.SuggestionsPath != "" {
		return cfg.Podcast.SuggestionsPath
	}
	fallback := filepath.Join(cfg.Storage.Dir, "suggestions.json")
	if _, err := os.Stat(fallback); err == nil {
		return fallback
	}
	return ""
}
