// Package report renders a transcription result as the plain-text transcript
// written next to the source audio.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/transcribe/internal/transcriber"
)

// Extension replaces the audio file's extension on the written transcript.
const Extension = ".txt"

// OutputPath returns input with its extension replaced by Extension.
// A dot-file such as ".m4a" has no extension and keeps its full name.
func OutputPath(input string) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	if ext == base {
		ext = ""
	}
	return strings.TrimSuffix(input, ext) + Extension
}

// Render builds the transcript document for the file named filename.
func Render(filename string, res *transcriber.Result) string {
	var b strings.Builder

	b.WriteString("# 转录结果\n")
	fmt.Fprintf(&b, "文件: %s\n", filename)
	b.WriteString("---\n\n")

	b.WriteString("## 完整文本\n\n")
	b.WriteString(strings.TrimSpace(res.Text))
	b.WriteString("\n\n")

	b.WriteString("## 分段详情\n\n")
	for _, seg := range res.Segments {
		fmt.Fprintf(&b, "[%.1fs - %.1fs] %s\n", seg.Start.Seconds(), seg.End.Seconds(), strings.TrimSpace(seg.Text))
	}

	return b.String()
}

// Write stores content at path through a temp file and rename, replacing any
// existing file.
func Write(path, content string) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".transcript-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Ensure cleanup on error.
	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.WriteString(content); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	if err := tmpFile.Chmod(0644); err != nil {
		return fmt.Errorf("chmod transcript: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close transcript: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename transcript: %w", err)
	}
	return nil
}
