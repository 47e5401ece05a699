package transcriber

import (
	"context"
	"errors"
	"time"
)

const (
	// ModelName is the model tier every transcription uses.
	ModelName = "base"
	// Language is the spoken language passed to the model.
	Language = "zh"
)

// ErrEngineUnavailable is returned when the configured engine was not compiled in.
var ErrEngineUnavailable = errors.New("transcription engine unavailable")

// Word is a single token with its own timing.
type Word struct {
	Start       time.Duration
	End         time.Duration
	Text        string
	Probability float32
}

// Segment is a contiguous span of audio and its recognized text.
type Segment struct {
	Start time.Duration
	End   time.Duration
	Text  string
	Words []Word
}

// Result is the model output for one file. Segments keep the model's order.
type Result struct {
	Text     string
	Language string
	Segments []Segment
}

// Transcriber loads a speech model once and transcribes audio files with it.
type Transcriber interface {
	// Load makes the model ready, downloading it on first use.
	Load(ctx context.Context) error
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
	Close() error
}

// joinText concatenates segment texts the way the model reports full text.
func joinText(segments []Segment) string {
	var n int
	for _, s := range segments {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range segments {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}

// isSpecialToken reports whisper control tokens such as [_BEG_] or [_TT_150].
func isSpecialToken(text string) bool {
	return len(text) > 2 && text[0] == '[' && text[1] == '_'
}
