package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	EngineCLI     = "cli"
	EngineLibrary = "library"

	DefaultDownloadURL = "https://huggingface.co/ggerganov/whisper.cpp/resolve/main"
)

type Config struct {
	Whisper WhisperConfig `yaml:"whisper"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

type WhisperConfig struct {
	Engine      string `yaml:"engine"`
	BinaryPath  string `yaml:"binary_path"`
	ModelsDir   string `yaml:"models_dir"`
	DownloadURL string `yaml:"download_url"`
	Threads     int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		// The zero config only fails validation if the home directory is unknown.
		cfg.Whisper.ModelsDir = filepath.Join(os.TempDir(), "transcribe", "whisper")
	}
	return cfg
}

func (c *Config) Validate() error {
	c.Whisper.Engine = strings.ToLower(strings.TrimSpace(c.Whisper.Engine))
	switch c.Whisper.Engine {
	case "":
		c.Whisper.Engine = EngineCLI
	case EngineCLI, EngineLibrary:
	default:
		return fmt.Errorf("whisper.engine must be %q or %q, got %q", EngineCLI, EngineLibrary, c.Whisper.Engine)
	}
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must not be negative")
	}

	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.DownloadURL == "" {
		c.Whisper.DownloadURL = DefaultDownloadURL
	}
	c.Whisper.DownloadURL = strings.TrimRight(c.Whisper.DownloadURL, "/")
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = min(runtime.NumCPU(), 8)
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	if c.Whisper.ModelsDir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return fmt.Errorf("whisper.models_dir is required: %w", err)
		}
		c.Whisper.ModelsDir = filepath.Join(cacheDir, "transcribe", "whisper")
	}
	dir, err := expandHome(c.Whisper.ModelsDir)
	if err != nil {
		return fmt.Errorf("whisper.models_dir: %w", err)
	}
	c.Whisper.ModelsDir = dir

	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
