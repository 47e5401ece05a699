package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nguyentantai21042004/transcribe/internal/audio"
	"github.com/nguyentantai21042004/transcribe/internal/logger"
	"github.com/nguyentantai21042004/transcribe/internal/model"
	"github.com/nguyentantai21042004/transcribe/pkg/executor"
)

// cliTranscriber runs the whisper.cpp command line tool once per file.
type cliTranscriber struct {
	binary  string
	threads int
	tempDir string

	// set by Load
	modelPath  string
	binaryPath string

	cache     model.Cache
	converter audio.Converter
	executor  executor.Executor
	logger    logger.Logger
}

func (t *cliTranscriber) Load(ctx context.Context) error {
	if t.modelPath != "" {
		return nil
	}

	// Check the binary first so a missing install fails before the download
	binaryPath, err := t.executor.LookPath(t.binary)
	if err != nil {
		return fmt.Errorf("whisper binary %s: %w", t.binary, err)
	}
	if binaryPath, err = filepath.Abs(binaryPath); err != nil {
		return fmt.Errorf("resolve whisper binary: %w", err)
	}
	path, err := t.cache.Ensure(ctx, ModelName)
	if err != nil {
		return fmt.Errorf("load model %s: %w", ModelName, err)
	}

	if path, err = filepath.Abs(path); err != nil {
		return fmt.Errorf("resolve model path: %w", err)
	}

	t.modelPath = path
	t.binaryPath = binaryPath
	t.logger.Debug(ctx, "Using model %s with %s", path, t.binary)
	return nil
}

func (t *cliTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	if err := t.Load(ctx); err != nil {
		return nil, err
	}

	// Isolated work dir so nothing is written next to the source audio
	workDir, err := os.MkdirTemp(t.tempDir, "transcribe-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer t.cleanupDir(ctx, workDir)

	// whisper-cli runs inside workDir, so every path handed to it is absolute
	if workDir, err = filepath.Abs(workDir); err != nil {
		return nil, fmt.Errorf("resolve temp dir: %w", err)
	}

	wavPath, err := t.converter.ToWAV(ctx, audioPath, workDir)
	if err != nil {
		return nil, err
	}

	outputPrefix := filepath.Join(workDir, "transcript")

	// -l: force the spoken language
	// -sow: split segments on word boundaries
	// -oj/-ojf: JSON output including per-token offsets
	// -np: no progress or timing prints
	// -of: output file prefix, whisper appends .json
	args := []string{
		"-m", t.modelPath,
		"-f", wavPath,
		"-l", Language,
		"-t", strconv.Itoa(t.threads),
		"-sow",
		"-oj",
		"-ojf",
		"-np",
		"-of", outputPrefix,
	}

	t.logger.Debug(ctx, "Running %s with %d threads", t.binary, t.threads)
	// Run inside workDir so any stray output is removed with it
	if _, err := t.executor.ExecuteInDir(ctx, workDir, t.binaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".json")
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	res, err := parseCLIOutput(data)
	if err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}
	return res, nil
}

func (t *cliTranscriber) Close() error {
	return nil
}

func (t *cliTranscriber) cleanupDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}
