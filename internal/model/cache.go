package model

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/schollz/progressbar/v3"
)

const lockRetryDelay = 250 * time.Millisecond

// Ensure returns the cached model, downloading it under an exclusive file lock
// so concurrent invocations fetch it only once.
func (c *implCache) Ensure(ctx context.Context, name string) (string, error) {
	m, err := Lookup(name)
	if err != nil {
		return "", err
	}
	path := filepath.Join(c.dir, m.File)

	if isCached(path) {
		c.logger.Debug(ctx, "Model %s found in cache: %s", m.Name, path)
		return path, nil
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return "", fmt.Errorf("create models directory: %w", err)
	}

	lock := flock.New(filepath.Join(c.dir, "."+m.File+".lock"))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return "", fmt.Errorf("lock model cache: %w", err)
	}
	if !locked {
		return "", fmt.Errorf("lock model cache: %s is busy", c.dir)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			c.logger.Warn(ctx, "Failed to release model cache lock: %v", err)
		}
	}()

	// Another process may have finished the download while we waited.
	if isCached(path) {
		return path, nil
	}

	if err := c.download(ctx, m, path); err != nil {
		return "", fmt.Errorf("download model %s: %w", m.Name, err)
	}
	return path, nil
}

func (c *implCache) download(ctx context.Context, m Model, path string) error {
	url := c.baseURL + "/" + m.File
	tempPath := path + ".download"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("download request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: HTTP %d from %s", resp.StatusCode, url)
	}

	size := resp.ContentLength
	if size <= 0 {
		size = m.Size
	}
	c.logger.Info(ctx, "Downloading model %s (%s) from %s", m.Name, humanize.Bytes(uint64(size)), url)

	tempFile, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	written, err := io.Copy(io.MultiWriter(tempFile, c.progress(size, m.File)), resp.Body)
	if closeErr := tempFile.Close(); err == nil {
		err = closeErr
	}
	if err == nil && resp.ContentLength > 0 && written != resp.ContentLength {
		err = fmt.Errorf("short download: got %d of %d bytes", written, resp.ContentLength)
	}
	if err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("write model: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("rename model: %w", err)
	}

	c.logger.Info(ctx, "Model saved: %s (%s)", path, humanize.Bytes(uint64(written)))
	return nil
}

// progress returns a byte-counting progress bar on stderr when it is a
// terminal, and a discarding writer otherwise.
func (c *implCache) progress(size int64, description string) io.Writer {
	if !c.interactive {
		return io.Discard
	}
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func isCached(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}
