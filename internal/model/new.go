package model

import (
	"net/http"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/nguyentantai21042004/transcribe/internal/logger"
)

type implCache struct {
	dir         string
	baseURL     string
	client      *http.Client
	logger      logger.Logger
	interactive bool
}

// New creates a Cache rooted at dir that downloads from baseURL.
// A nil client uses http.DefaultClient.
func New(dir, baseURL string, client *http.Client, log logger.Logger) Cache {
	if client == nil {
		client = http.DefaultClient
	}

	fd := os.Stderr.Fd()
	return &implCache{
		dir:         dir,
		baseURL:     strings.TrimRight(baseURL, "/"),
		client:      client,
		logger:      log,
		interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}
