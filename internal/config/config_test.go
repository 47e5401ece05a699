package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					Engine:     "cli",
					BinaryPath: "./whisper-cli",
					ModelsDir:  "models",
				},
			},
			wantErr: false,
		},
		{
			name:    "empty config gets defaults",
			config:  Config{Whisper: WhisperConfig{ModelsDir: "models"}},
			wantErr: false,
		},
		{
			name:    "library engine",
			config:  Config{Whisper: WhisperConfig{Engine: "Library", ModelsDir: "models"}},
			wantErr: false,
		},
		{
			name:    "unknown engine",
			config:  Config{Whisper: WhisperConfig{Engine: "python", ModelsDir: "models"}},
			wantErr: true,
		},
		{
			name:    "negative threads",
			config:  Config{Whisper: WhisperConfig{Threads: -1, ModelsDir: "models"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Whisper: WhisperConfig{ModelsDir: "models", DownloadURL: "http://mirror.local/models/"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.Engine != EngineCLI {
		t.Errorf("Engine = %q, want %q", cfg.Whisper.Engine, EngineCLI)
	}
	if cfg.Whisper.BinaryPath != "whisper-cli" {
		t.Errorf("BinaryPath = %q, want whisper-cli", cfg.Whisper.BinaryPath)
	}
	if cfg.Whisper.DownloadURL != "http://mirror.local/models" {
		t.Errorf("DownloadURL = %q, trailing slash not trimmed", cfg.Whisper.DownloadURL)
	}
	if cfg.Whisper.Threads < 1 || cfg.Whisper.Threads > 8 {
		t.Errorf("Threads = %d, want 1..8", cfg.Whisper.Threads)
	}
	if cfg.FFmpeg.BinaryPath != "ffmpeg" {
		t.Errorf("FFmpeg.BinaryPath = %q, want ffmpeg", cfg.FFmpeg.BinaryPath)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
}

func TestValidateExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	cfg := Config{Whisper: WhisperConfig{ModelsDir: "~/models"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if want := filepath.Join(home, "models"); cfg.Whisper.ModelsDir != want {
		t.Errorf("ModelsDir = %q, want %q", cfg.Whisper.ModelsDir, want)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  engine: "cli"
  binary_path: "./whisper-cli"
  models_dir: "models"
  threads: 2

ffmpeg:
  binary_path: "/usr/bin/ffmpeg"

logging:
  level: "debug"
  format: "json"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.BinaryPath != "./whisper-cli" {
		t.Errorf("BinaryPath = %v, want %v", cfg.Whisper.BinaryPath, "./whisper-cli")
	}
	if cfg.Whisper.Threads != 2 {
		t.Errorf("Threads = %v, want 2", cfg.Whisper.Threads)
	}
	if cfg.FFmpeg.BinaryPath != "/usr/bin/ffmpeg" {
		t.Errorf("FFmpeg.BinaryPath = %v, want /usr/bin/ffmpeg", cfg.FFmpeg.BinaryPath)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %v, want json", cfg.Logging.Format)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadInvalidEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("whisper:\n  engine: torch\n  models_dir: m\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "whisper.engine") {
		t.Errorf("Load() error = %v, want whisper.engine error", err)
	}
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if cfg.Whisper.Engine != EngineCLI {
		t.Errorf("Engine = %q, want default %q", cfg.Whisper.Engine, EngineCLI)
	}
	if cfg.Whisper.ModelsDir == "" {
		t.Error("ModelsDir should have a default")
	}
}
