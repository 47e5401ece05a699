package audio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pion/opus"
	"github.com/pion/opus/pkg/oggreader"
)

const (
	// decodeBufferSamples is one 20ms packet at 48kHz, the most the decoder writes.
	decodeBufferSamples = 960
	// silkUpsample is the factor the decoder applies to SILK output.
	silkUpsample = 3
	// preSkipRate is the rate OpusHead pre-skip is counted in.
	preSkipRate = 48000
)

// decodeOggOpusFile recovers from decoder panics on malformed streams.
func decodeOggOpusFile(path string) (pcm []int16, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	defer func() {
		if r := recover(); r != nil {
			pcm = nil
			err = fmt.Errorf("opus decoder panic: %v", r)
		}
	}()
	return decodeOggOpus(f)
}

// decodeOggOpus decodes a SILK mono OGG/Opus stream to 16kHz PCM. The sample
// count of each packet follows from its bandwidth and frame duration, so
// silence inside the stream keeps its length.
func decodeOggOpus(r io.Reader) ([]int16, error) {
	ogg, header, err := oggreader.NewWith(r)
	if err != nil {
		return nil, fmt.Errorf("parse ogg container: %w", err)
	}

	decoder := opus.NewDecoder()
	frame := make([]byte, decodeBufferSamples*2)
	skip := int(header.PreSkip)

	var out, run []int16
	runRate := 0
	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		resampled, err := resample(run, runRate, SampleRate)
		if err != nil {
			return err
		}
		out = append(out, resampled...)
		run = run[:0]
		return nil
	}

	for {
		packets, _, err := ogg.ParseNextPage()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse ogg page: %w", err)
		}

		for _, packet := range packets {
			if len(packet) == 0 {
				continue
			}
			// OpusTags and packets the decoder does not support are skipped.
			bandwidth, _, err := decoder.Decode(packet, frame)
			if err != nil {
				continue
			}
			rate, n := packetSamples(bandwidth, packet[0])
			if n == 0 || n > decodeBufferSamples {
				continue
			}
			samples := int16sFromLE(frame[:n*2])

			if skip > 0 {
				drop := min(skip*rate/preSkipRate, len(samples))
				samples = samples[drop:]
				skip -= drop * preSkipRate / rate
			}

			if rate != runRate {
				if err := flush(); err != nil {
					return nil, err
				}
				runRate = rate
			}
			run = append(run, samples...)
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errors.New("no audio decoded (only SILK mono streams are supported without ffmpeg)")
	}
	return out, nil
}

// packetSamples returns the output rate and sample count of one decoded packet.
func packetSamples(bandwidth opus.Bandwidth, toc byte) (rate, samples int) {
	rate = bandwidth.SampleRate() * silkUpsample
	return rate, rate * silkFrameMillis(toc) / 1000
}

// silkFrameMillis reads the frame duration from a TOC byte; zero for non-SILK configs.
func silkFrameMillis(toc byte) int {
	config := toc >> 3
	if config > 11 {
		return 0
	}
	return [...]int{10, 20, 40, 60}[config%4]
}
