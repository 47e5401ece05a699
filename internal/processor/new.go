package processor

import (
	"github.com/nguyentantai21042004/transcribe/internal/logger"
	"github.com/nguyentantai21042004/transcribe/internal/transcriber"
)

type implProcessor struct {
	transcriber transcriber.Transcriber
	logger      logger.Logger
}

// New creates a new Processor instance
func New(tr transcriber.Transcriber, log logger.Logger) Processor {
	return &implProcessor{
		transcriber: tr,
		logger:      log,
	}
}
