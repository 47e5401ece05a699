//go:build !whispercpp

package transcriber

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/transcribe/internal/audio"
	"github.com/nguyentantai21042004/transcribe/internal/config"
	"github.com/nguyentantai21042004/transcribe/internal/logger"
	"github.com/nguyentantai21042004/transcribe/internal/model"
)

// unavailableTranscriber stands in for the library engine when the binary was
// built without whisper.cpp.
type unavailableTranscriber struct{}

func newLibrary(cfg *config.Config, cache model.Cache, conv audio.Converter, log logger.Logger) (Transcriber, error) {
	return unavailableTranscriber{}, nil
}

func (unavailableTranscriber) Load(ctx context.Context) error {
	return fmt.Errorf("%w: library engine requires a build with -tags whispercpp", ErrEngineUnavailable)
}

func (u unavailableTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	return nil, u.Load(ctx)
}

func (unavailableTranscriber) Close() error {
	return nil
}
