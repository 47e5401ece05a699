// Package resolver turns the command-line input into one existing file path.
package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when the resolved path does not name an existing file.
var ErrNotFound = errors.New("file not found")

// Resolution describes how an input string was turned into a path.
type Resolution struct {
	Input    string
	Path     string
	Expanded bool // the input was a pattern and Path is its first match
	Matches  int
}

// HasWildcard reports whether input contains a glob metacharacter.
func HasWildcard(input string) bool {
	return strings.ContainsAny(input, "*?[")
}

// Resolve expands input when it is a glob pattern and picks the first match
// in lexical order. An input naming an existing file is used as given even if
// it contains metacharacters. A pattern with no matches, or a malformed one,
// is used literally. The returned error wraps ErrNotFound when the final path does not
// exist or is a directory; the Resolution is filled in either way.
func Resolve(input string) (Resolution, error) {
	res := Resolution{Input: input, Path: input}

	if HasWildcard(input) && !exists(input) {
		matches, err := filepath.Glob(input)
		if err == nil && len(matches) > 0 {
			res.Path = matches[0]
			res.Expanded = true
			res.Matches = len(matches)
		}
	}

	info, err := os.Stat(res.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return res, fmt.Errorf("%s: %w", res.Path, ErrNotFound)
		}
		return res, fmt.Errorf("stat %s: %w", res.Path, err)
	}
	if info.IsDir() {
		return res, fmt.Errorf("%s is a directory: %w", res.Path, ErrNotFound)
	}

	return res, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
