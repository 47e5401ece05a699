package audio

import "context"

// SampleRate is the rate Whisper models expect.
const SampleRate = 16000

// Converter prepares audio files for the speech model.
type Converter interface {
	// ToWAV writes a 16 kHz mono PCM WAV copy of input into dir and returns its
	// path. Without ffmpeg only OGG/Opus input is supported.
	ToWAV(ctx context.Context, input, dir string) (string, error)
	// Samples decodes input to 16 kHz mono samples in [-1, 1).
	Samples(ctx context.Context, input string) ([]float32, error)
}
