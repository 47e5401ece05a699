package audio

import (
	"github.com/nguyentantai21042004/transcribe/internal/logger"
	"github.com/nguyentantai21042004/transcribe/pkg/executor"
)

type implConverter struct {
	ffmpeg   string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Converter that runs the ffmpeg binary at ffmpegPath
func New(ffmpegPath string, exec executor.Executor, log logger.Logger) Converter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &implConverter{
		ffmpeg:   ffmpegPath,
		executor: exec,
		logger:   log,
	}
}
