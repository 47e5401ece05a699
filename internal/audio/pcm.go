package audio

import (
	"encoding/binary"
	"fmt"

	"github.com/zeozeozeo/gomplerate"
)

// int16sFromLE reads little-endian 16-bit samples; a trailing odd byte is ignored.
func int16sFromLE(buf []byte) []int16 {
	samples := make([]int16, len(buf)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(buf[i*2:]))
	}
	return samples
}

func resample(samples []int16, fromRate, toRate int) ([]int16, error) {
	if fromRate == toRate {
		return samples, nil
	}

	r, err := gomplerate.NewResampler(1, fromRate, toRate)
	if err != nil {
		return nil, fmt.Errorf("create resampler %d->%d: %w", fromRate, toRate, err)
	}
	return r.ResampleInt16(samples), nil
}

func int16ToFloat32(samples []int16) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = float32(s) / 32768.0
	}
	return out
}
