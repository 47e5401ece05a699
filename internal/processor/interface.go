package processor

import "context"

// Processor defines the interface for the transcription pipeline
type Processor interface {
	// Process transcribes the file named by input (a path or glob pattern)
	// and returns the path of the written transcript.
	Process(ctx context.Context, input string) (string, error)
}
