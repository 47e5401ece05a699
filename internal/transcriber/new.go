package transcriber

import (
	"github.com/nguyentantai21042004/transcribe/internal/audio"
	"github.com/nguyentantai21042004/transcribe/internal/config"
	"github.com/nguyentantai21042004/transcribe/internal/logger"
	"github.com/nguyentantai21042004/transcribe/internal/model"
	"github.com/nguyentantai21042004/transcribe/pkg/executor"
)

// New creates the Transcriber selected by cfg.Whisper.Engine
func New(cfg *config.Config, cache model.Cache, conv audio.Converter, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	if cfg.Whisper.Engine == config.EngineLibrary {
		return newLibrary(cfg, cache, conv, log)
	}

	return &cliTranscriber{
		binary:    cfg.Whisper.BinaryPath,
		threads:   cfg.Whisper.Threads,
		tempDir:   cfg.Paths.Temp,
		cache:     cache,
		converter: conv,
		executor:  exec,
		logger:    log,
	}, nil
}
