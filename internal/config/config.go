package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the full application configuration, merged from defaults,
// config file, environment, and command-line flags
type Config struct {
	Server   ServerConfig  `mapstructure:"server"`
	Google   GoogleConfig  `mapstructure:"google"`
	Podcast  PodcastConfig `mapstructure:"podcast"`
	Storage  StorageConfig `mapstructure:"storage"`
	LogLevel string        `mapstructure:"log_level"`
}

type ServerConfig struct {
	ListenAddr     string `mapstructure:"listen_addr"`
	Workers        int    `mapstructure:"workers"`
	RequestTimeout int    `mapstructure:"request_timeout"` // seconds
}

type GoogleConfig struct {
	APIKey      string `mapstructure:"api_key"`
	ScriptModel string `mapstructure:"script_model"`
	TTSModel    string `mapstructure:"tts_model"`
}

type PodcastConfig struct {
	Minutes         int          `mapstructure:"minutes"`
	SuggestionsPath string       `mapstructure:"suggestions_path"`
	Hosts           []HostConfig `mapstructure:"hosts"`
}

// HostConfig overrides one of the two podcast speakers. Hosts are set through
// the config file; an empty list keeps the built-in pair.
type HostConfig struct {
	Name  string `mapstructure:"name"`
	Voice string `mapstructure:"voice"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend"` // file or nats
	Dir     string `mapstructure:"dir"`
	NatsURL string `mapstructure:"nats_url"`
	Bucket  string `mapstructure:"nats_bucket"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:     "0.0.0.0:8080",
			Workers:        2,
			RequestTimeout: 300,
		},
		Google: GoogleConfig{
			APIKey:      "",
			ScriptModel: "gemini-2.5-pro",
			TTSModel:    "gemini-2.5-flash-preview-tts",
		},
		Podcast: PodcastConfig{
			Minutes:         3,
			SuggestionsPath: "",
		},
		Storage: StorageConfig{
			Backend: "file",
			Dir:     "storage/podcasts",
			NatsURL: "nats://127.0.0.1:4222",
			Bucket:  "podcast-audio",
		},
		LogLevel: "info",
	}
}

// RegisterFlags declares every config flag on fs with defaults as fallback values
func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("workers", defaults.Server.Workers, "Max concurrent generation requests")
	fs.Int("request-timeout", defaults.Server.RequestTimeout, "Per-request generation timeout in seconds")
	fs.String("api-key", defaults.Google.APIKey, "Google API key")
	fs.String("script-model", defaults.Google.ScriptModel, "Gemini model that writes scripts")
	fs.String("tts-model", defaults.Google.TTSModel, "Gemini model that speaks them")
	fs.Int("minutes", defaults.Podcast.Minutes, "Default episode length in minutes")
	fs.String("suggestions", defaults.Podcast.SuggestionsPath, "Path to a JSON file with topic suggestions")
	fs.String("storage-backend", defaults.Storage.Backend, "Audio storage backend (file|nats)")
	fs.String("storage-dir", defaults.Storage.Dir, "Directory for podcast metadata and audio")
	fs.String("nats-url", defaults.Storage.NatsURL, "NATS server URL for the nats backend")
	fs.String("nats-bucket", defaults.Storage.Bucket, "NATS object store bucket for audio")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

// Load merges configuration sources in flag > env > file > default order
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("PODGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("google.api_key", "PODGEN_GOOGLE_API_KEY", "GOOGLE_API_KEY"); err != nil {
		return Config{}, fmt.Errorf("bind api key env vars: %w", err)
	}
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("podgen")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Validate reports configuration the services would reject at first use
func (c Config) Validate() error {
	if c.Google.APIKey == "" {
		return fmt.Errorf("google api key is required (set PODGEN_GOOGLE_API_KEY or --api-key)")
	}
	if c.Podcast.Minutes < 1 || c.Podcast.Minutes > 15 {
		return fmt.Errorf("podcast minutes must be between 1 and 15, got %d", c.Podcast.Minutes)
	}
	if n := len(c.Podcast.Hosts); n != 0 && n != 2 {
		return fmt.Errorf("podcast hosts must name exactly two speakers, got %d", n)
	}
	for i, h := range c.Podcast.Hosts {
		if h.Name == "" || h.Voice == "" {
			return fmt.Errorf("podcast host %d needs both a name and a voice", i)
		}
	}
	switch c.Storage.Backend {
	case "file", "nats":
	default:
		return fmt.Errorf("unknown storage backend %q (want file|nats)", c.Storage.Backend)
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.workers", c.Server.Workers)
	v.SetDefault("server.request_timeout", c.Server.RequestTimeout)
	v.SetDefault("google.api_key", c.Google.APIKey)
	v.SetDefault("google.script_model", c.Google.ScriptModel)
	v.SetDefault("google.tts_model", c.Google.TTSModel)
	v.SetDefault("podcast.minutes", c.Podcast.Minutes)
	v.SetDefault("podcast.suggestions_path", c.Podcast.SuggestionsPath)
	v.SetDefault("storage.backend", c.Storage.Backend)
	v.SetDefault("storage.dir", c.Storage.Dir)
	v.SetDefault("storage.nats_url", c.Storage.NatsURL)
	v.SetDefault("storage.nats_bucket", c.Storage.Bucket)
	v.SetDefault("log_level", c.LogLevel)
}

// bindFlags binds each flag to its viper key individually so that unchanged
// flags do not shadow values from the config file or environment
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"server.listen_addr":       "listen-addr",
		"server.workers":           "workers",
		"server.request_timeout":   "request-timeout",
		"google.api_key":           "api-key",
		"google.script_model":      "script-model",
		"google.tts_model":         "tts-model",
		"podcast.minutes":          "minutes",
		"podcast.suggestions_path": "suggestions",
		"storage.backend":          "storage-backend",
		"storage.dir":              "storage-dir",
		"storage.nats_url":         "nats-url",
		"storage.nats_bucket":      "nats-bucket",
		"log_level":                "log-level",
	}
	for key, name := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
