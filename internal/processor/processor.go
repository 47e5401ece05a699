package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/transcribe/internal/report"
	"github.com/nguyentantai21042004/transcribe/internal/resolver"
	"github.com/nguyentantai21042004/transcribe/internal/transcriber"
)

// Process orchestrates the entire transcription pipeline. A missing input is
// logged and returned as an error wrapping resolver.ErrNotFound; the model is
// not loaded and nothing is written in that case.
func (p *implProcessor) Process(ctx context.Context, input string) (string, error) {
	startTime := time.Now()

	// Step 1: Resolve the input to one existing file
	res, err := resolver.Resolve(input)
	if res.Expanded {
		p.logger.Info(ctx, "Found file: %s", res.Path)
		if res.Matches > 1 {
			p.logger.Debug(ctx, "%d files match %s, using the first", res.Matches, res.Input)
		}
	}
	if err != nil {
		if errors.Is(err, resolver.ErrNotFound) {
			p.logger.Error(ctx, "File not found: %s", res.Path)
		}
		return "", err
	}

	// Step 2: Load the model
	p.logger.Info(ctx, "Loading Whisper model (%s)...", transcriber.ModelName)
	if err := p.transcriber.Load(ctx); err != nil {
		return "", fmt.Errorf("load model: %w", err)
	}

	// Step 3: Transcribe
	p.logger.Info(ctx, "Transcribing: %s", res.Path)
	result, err := p.transcriber.Transcribe(ctx, res.Path)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	// Step 4: Render and write the transcript next to the source
	outputPath := report.OutputPath(res.Path)
	content := report.Render(filepath.Base(res.Path), result)
	if err := report.Write(outputPath, content); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	p.logger.Info(ctx, "Transcription complete: %s", outputPath)
	p.logger.Debug(ctx, "Segments: %d, processing time: %s", len(result.Segments), time.Since(startTime))

	return outputPath, nil
}
