//go:build whispercpp

package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	"github.com/nguyentantai21042004/transcribe/internal/audio"
	"github.com/nguyentantai21042004/transcribe/internal/config"
	"github.com/nguyentantai21042004/transcribe/internal/logger"
	"github.com/nguyentantai21042004/transcribe/internal/model"
)

// libraryTranscriber runs whisper.cpp in-process through its Go bindings.
type libraryTranscriber struct {
	threads   int
	cache     model.Cache
	converter audio.Converter
	logger    logger.Logger
	model     whisper.Model
}

func newLibrary(cfg *config.Config, cache model.Cache, conv audio.Converter, log logger.Logger) (Transcriber, error) {
	return &libraryTranscriber{
		threads:   cfg.Whisper.Threads,
		cache:     cache,
		converter: conv,
		logger:    log,
	}, nil
}

func (t *libraryTranscriber) Load(ctx context.Context) error {
	if t.model != nil {
		return nil
	}

	path, err := t.cache.Ensure(ctx, ModelName)
	if err != nil {
		return fmt.Errorf("load model %s: %w", ModelName, err)
	}

	m, err := whisper.New(path)
	if err != nil {
		return fmt.Errorf("load whisper model %s: %w", path, err)
	}
	t.model = m

	t.logger.Debug(ctx, "whisper.cpp model loaded: %s (multilingual: %t)", path, m.IsMultilingual())
	return nil
}

func (t *libraryTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	if err := t.Load(ctx); err != nil {
		return nil, err
	}

	samples, err := t.converter.Samples(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("decode audio: %w", err)
	}
	t.logger.Debug(ctx, "Decoded %d samples (%.1fs)", len(samples), float64(len(samples))/audio.SampleRate)

	wctx, err := t.model.NewContext()
	if err != nil {
		return nil, fmt.Errorf("create whisper context: %w", err)
	}
	if err := wctx.SetLanguage(Language); err != nil {
		return nil, fmt.Errorf("set language %s: %w", Language, err)
	}
	if t.threads > 0 {
		wctx.SetThreads(uint(t.threads))
	}
	wctx.SetTokenTimestamps(true)
	wctx.SetSplitOnWord(true)

	// Returning false from the encoder callback aborts inference.
	keepGoing := func() bool { return ctx.Err() == nil }
	if err := wctx.Process(samples, keepGoing, nil, nil); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("whisper process: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{Language: Language}
	for {
		s, err := wctx.NextSegment()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read segment: %w", err)
		}
		res.Segments = append(res.Segments, segmentFromLibrary(s))
	}
	res.Text = joinText(res.Segments)

	return res, nil
}

func (t *libraryTranscriber) Close() error {
	if t.model == nil {
		return nil
	}
	err := t.model.Close()
	t.model = nil
	return err
}

func segmentFromLibrary(s whisper.Segment) Segment {
	seg := Segment{Start: s.Start, End: s.End, Text: s.Text}
	for _, tok := range s.Tokens {
		if isSpecialToken(tok.Text) {
			continue
		}
		seg.Words = append(seg.Words, Word{
			Start:       tok.Start,
			End:         tok.End,
			Text:        tok.Text,
			Probability: tok.P,
		})
	}
	return seg
}
