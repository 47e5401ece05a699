package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ToWAV converts input to 16kHz mono WAV, the input format whisper-cli reads
func (c *implConverter) ToWAV(ctx context.Context, input, dir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	wavPath := filepath.Join(dir, base+"_16k.wav")

	if _, err := c.executor.LookPath(c.ffmpeg); err != nil {
		pcm, err := c.decodeNative(ctx, input)
		if err != nil {
			return "", err
		}
		if err := writeWAV(wavPath, pcm, SampleRate); err != nil {
			return "", err
		}
		c.logger.Debug(ctx, "Audio converted without ffmpeg: %s", wavPath)
		return wavPath, nil
	}

	c.logger.Debug(ctx, "Converting audio to 16kHz mono WAV: %s", input)

	// -vn: drop any video stream
	// -ar/-ac: 16kHz mono
	// -c:a pcm_s16le: 16-bit little-endian PCM
	// -y: overwrite output file if exists
	args := []string{
		"-nostdin",
		"-i", input,
		"-vn",
		"-ar", strconv.Itoa(SampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		wavPath,
	}

	if _, err := c.executor.Execute(ctx, c.ffmpeg, args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	c.logger.Debug(ctx, "Audio converted: %s", wavPath)
	return wavPath, nil
}

// Samples decodes input with ffmpeg when it is installed. Without ffmpeg only
// OGG/Opus can be decoded, in pure Go.
func (c *implConverter) Samples(ctx context.Context, input string) ([]float32, error) {
	if _, err := c.executor.LookPath(c.ffmpeg); err == nil {
		return c.samplesWithFFmpeg(ctx, input)
	}

	pcm, err := c.decodeNative(ctx, input)
	if err != nil {
		return nil, err
	}
	return int16ToFloat32(pcm), nil
}

// decodeNative decodes the formats supported without ffmpeg to 16kHz mono PCM.
func (c *implConverter) decodeNative(ctx context.Context, input string) ([]int16, error) {
	mt, err := mimetype.DetectFile(input)
	if err != nil {
		return nil, fmt.Errorf("detect audio format: %w", err)
	}
	if !isOgg(mt) {
		return nil, fmt.Errorf("unsupported audio format %s without ffmpeg (install ffmpeg)", mt.String())
	}

	c.logger.Debug(ctx, "ffmpeg not found, decoding %s in pure Go", mt.String())
	pcm, err := decodeOggOpusFile(input)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", mt.String(), err)
	}
	return pcm, nil
}

func (c *implConverter) samplesWithFFmpeg(ctx context.Context, input string) ([]float32, error) {
	tmpFile, err := os.CreateTemp("", "transcribe-*.raw")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	args := []string{
		"-nostdin",
		"-i", input,
		"-vn",
		"-ar", strconv.Itoa(SampleRate),
		"-ac", "1",
		"-f", "s16le",
		"-c:a", "pcm_s16le",
		"-y",
		tmpPath,
	}
	if _, err := c.executor.Execute(ctx, c.ffmpeg, args...); err != nil {
		return nil, fmt.Errorf("ffmpeg decode audio: %w", err)
	}

	raw, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read decoded audio: %w", err)
	}

	return int16ToFloat32(int16sFromLE(raw)), nil
}

func isOgg(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("application/ogg") || m.Is("audio/ogg") {
			return true
		}
	}
	return false
}
