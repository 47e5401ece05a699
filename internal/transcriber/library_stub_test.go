//go:build !whispercpp

package transcriber

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/nguyentantai21042004/transcribe/internal/config"
	"github.com/nguyentantai21042004/transcribe/internal/logger"
)

func TestLibraryEngineUnavailable(t *testing.T) {
	cfg := &config.Config{Whisper: config.WhisperConfig{Engine: config.EngineLibrary}}
	log := logger.NewWithWriter(io.Discard, "info", "text")

	tr, err := New(cfg, &fakeCache{}, nil, &fakeExecutor{}, log)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer tr.Close()

	if err := tr.Load(context.Background()); !errors.Is(err, ErrEngineUnavailable) {
		t.Errorf("Load() error = %v, want ErrEngineUnavailable", err)
	}
	if _, err := tr.Transcribe(context.Background(), "a.wav"); !errors.Is(err, ErrEngineUnavailable) {
		t.Errorf("Transcribe() error = %v, want ErrEngineUnavailable", err)
	}
}
