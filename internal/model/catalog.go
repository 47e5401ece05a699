// Package model keeps a local cache of ggml Whisper models and downloads
// missing ones on first use.
package model

import (
	"errors"
	"fmt"
)

// ErrUnknownModel is returned for names outside the catalog.
var ErrUnknownModel = errors.New("unknown model")

// Model describes one downloadable ggml checkpoint.
type Model struct {
	Name string // tier name, e.g. "base"
	File string // file name in the cache and on the mirror
	Size int64  // approximate size, used when the server omits Content-Length
}

// Models from https://huggingface.co/ggerganov/whisper.cpp, multilingual only.
var catalog = []Model{
	{Name: "tiny", File: "ggml-tiny.bin", Size: 77_700_000},
	{Name: "base", File: "ggml-base.bin", Size: 147_900_000},
	{Name: "small", File: "ggml-small.bin", Size: 487_600_000},
	{Name: "medium", File: "ggml-medium.bin", Size: 1_530_000_000},
	{Name: "large-v3", File: "ggml-large-v3.bin", Size: 3_100_000_000},
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Model, error) {
	for _, m := range catalog {
		if m.Name == name {
			return m, nil
		}
	}
	return Model{}, fmt.Errorf("%q: %w", name, ErrUnknownModel)
}
