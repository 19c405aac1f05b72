package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/podgen/podgen/internal/ai"
	"github.com/podgen/podgen/internal/article"
	"github.com/podgen/podgen/internal/config"
	"github.com/podgen/podgen/internal/producer"
	"github.com/podgen/podgen/internal/script"
	"github.com/podgen/podgen/internal/server"
	"github.com/podgen/podgen/internal/speech"
	"github.com/podgen/podgen/internal/store"
	"github.com/podgen/podgen/podcast"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "podgen",
		Short: "Two-host AI podcast generator",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newGenerateCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger
func setupLogger(levelStr string) {
	lvl, err := server.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if activeCfg.Server.ListenAddr == "" {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

// pipeline bundles the wired services shared by the serve and generate commands
type pipeline struct {
	producer *producer.Producer
	episodes *store.Store
	blobs    store.ObjectStore
	articles *article.Fetcher
	nc       *nats.Conn
}

func (p *pipeline) close() {
	if p.nc != nil {
		p.nc.Close()
	}
}

func buildPipeline(cfg config.Config) (*pipeline, error) {
	gemini := ai.NewGeminiService(ai.Config{
		APIKey:      cfg.Google.APIKey,
		ScriptModel: cfg.Google.ScriptModel,
		TTSModel:    cfg.Google.TTSModel,
	}, nil)

	hosts := configuredHosts(cfg.Podcast)
	log := slog.Default()
	scripts := script.NewService(gemini, hosts, script.DefaultParams(), log)
	voices := speech.NewService(gemini, hosts, log)

	episodes, err := store.New(cfg.Storage.Dir)
	if err != nil {
		return nil, err
	}

	blobs, nc, err := newBlobStore(cfg)
	if err != nil {
		return nil, err
	}

	return &pipeline{
		producer: producer.New(scripts, voices, episodes, blobs, hosts, log),
		episodes: episodes,
		blobs:    blobs,
		articles: article.NewFetcher(nil),
		nc:       nc,
	}, nil
}

// configuredHosts maps the config host pair onto the domain type, keeping the
// built-in speakers when none are configured
func configuredHosts(cfg config.PodcastConfig) podcast.Hosts {
	if len(cfg.Hosts) != 2 {
		return podcast.DefaultHosts()
	}
	return podcast.Hosts{
		{Name: cfg.Hosts[0].Name, Voice: cfg.Hosts[0].Voice},
		{Name: cfg.Hosts[1].Name, Voice: cfg.Hosts[1].Voice},
	}
}

func newBlobStore(cfg config.Config) (store.ObjectStore, *nats.Conn, error) {
	switch cfg.Storage.Backend {
	case "nats":
		nc, err := nats.Connect(cfg.Storage.NatsURL, nats.Name("podgen"))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.Storage.NatsURL, err)
		}
		js, err := nc.JetStream()
		if err != nil {
			nc.Close()
			return nil, nil, fmt.Errorf("failed to get JetStream context: %w", err)
		}
		blobs, err := store.NewNatsStore(js, cfg.Storage.Bucket)
		if err != nil {
			nc.Close()
			return nil, nil, err
		}
		return blobs, nc, nil
	default:
		blobs, err := store.NewDirStore(filepath.Join(cfg.Storage.Dir, "audio"))
		if err != nil {
			return nil, nil, err
		}
		return blobs, nil, nil
	}
}
