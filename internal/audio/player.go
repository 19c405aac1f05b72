package audio

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

//go:generate moq -out mocks/command_runner.go -pkg mocks -skip-ensure -fmt goimports . CommandRunner

// CommandRunner builds the OS-specific playback command for an audio file
type CommandRunner interface {
	AudioCommand(filename string) (*exec.Cmd, error)
}

// Player plays generated episode audio through the system audio player
type Player struct {
	runner CommandRunner
}

// NewPlayer creates a player backed by the platform default command runner
func NewPlayer() *Player {
	return &Player{runner: &DefaultCommandRunner{}}
}

// Play blocks until playback of the file finishes
func (p *Player) Play(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("audio file does not exist: %s", filename)
		}
		return fmt.Errorf("failed to check audio file: %w", err)
	}

	cmd, err := p.runner.AudioCommand(filename)
	if err != nil {
		return fmt.Errorf("failed to get audio command: %w", err)
	}

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error playing audio: %w", err)
	}

	return nil
}

// DefaultCommandRunner picks an audio player available on the current OS
type DefaultCommandRunner struct{}

// AudioCommand returns the playback command for filename
func (r *DefaultCommandRunner) AudioCommand(filename string) (*exec.Cmd, error) {
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, ";|&$`") {
		return nil, fmt.Errorf("invalid filename: potential security risk")
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("afplay", filename), nil
	case "windows":
		return exec.Command("cmd", "/C", "start", filename), nil
	case "linux":
		// try several common audio players
		players := []string{"mpv", "mplayer", "ffplay", "aplay"}
		for _, player := range players {
			if _, err := exec.LookPath(player); err == nil {
				if player == "aplay" {
					// #nosec G204 -- Player is selected from a whitelist of known audio players
					return exec.Command(player, "-q", filename), nil
				}
				// #nosec G204 -- Player is selected from a whitelist of known audio players
				// note: options must come before filename for mpv/mplayer/ffplay
				return exec.Command(player, "-nodisp", "-autoexit", "-really-quiet", filename), nil
			}
		}
		return nil, fmt.Errorf("no suitable audio player found on your system")
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
