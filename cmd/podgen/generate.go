package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/podgen/podgen/internal/audio"
	"github.com/podgen/podgen/internal/script"
)

func newGenerateCmd() *cobra.Command {
	var (
		topic      string
		articleURL string
		output     string
		play       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single episode and store its audio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if topic == "" && articleURL == "" {
				return errors.New("either --topic or --url is required")
			}

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

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			req := script.Request{
				Topic:   strings.TrimSpace(topic),
				Minutes: cfg.Podcast.Minutes,
			}
			if articleURL != "" {
				content, title, err := deps.articles.Fetch(ctx, articleURL)
				if err != nil {
					return err
				}
				req.Context = content
				if req.Topic == "" {
					req.Topic = strings.TrimSpace(title)
				}
			}

			ep, err := deps.producer.Produce(ctx, req)
			if err != nil {
				return err
			}

			if output != "" || play {
				data, err := deps.blobs.Download(ctx, ep.AudioKey)
				if err != nil {
					return err
				}
				path := output
				if path == "" {
					path = filepath.Join(os.TempDir(), ep.ID+".wav")
					defer os.Remove(path)
				}
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("failed to write audio file: %w", err)
				}
				if play {
					if err := audio.NewPlayer().Play(path); err != nil {
						return err
					}
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:       %s\n", ep.ID)
			fmt.Fprintf(out, "topic:    %s\n", ep.Topic)
			fmt.Fprintf(out, "words:    %d\n", ep.WordCount)
			fmt.Fprintf(out, "duration: %s\n", ep.Duration)
			if output != "" {
				fmt.Fprintf(out, "audio:    %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Podcast topic")
	cmd.Flags().StringVar(&articleURL, "url", "", "Article URL to base the episode on")
	cmd.Flags().StringVar(&output, "output", "", "Also write the episode WAV to this path")
	cmd.Flags().BoolVar(&play, "play", false, "Play the episode after generating it")

	return cmd
}
