// Package dataurl turns local image files into data URLs so pictures can be
// stored inline in a slot.
package dataurl

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/validation"
)

// MaxBytes bounds the size of an embedded file.
const MaxBytes = 4 << 20

const prefix = "data:"

// Result is the outcome of an asynchronous Read.
type Result struct {
	Path string
	URL  string
	Err  error
}

// FromFile reads path and encodes it as a base64 data URL. Only images are
// accepted.
func FromFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("dataurl: %w", err)
	}
	if info.IsDir() {
		return "", validation.New("file", "%s is a directory", path)
	}
	if info.Size() > MaxBytes {
		return "", validation.New("file", "%s is %s, the limit is %s",
			path, humanize.IBytes(uint64(info.Size())), humanize.IBytes(MaxBytes))
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("dataurl: %w", err)
	}
	mime := http.DetectContentType(b)
	if !strings.HasPrefix(mime, "image/") {
		return "", validation.New("file", "%s is %s, not an image", path, mime)
	}
	return Encode(mime, b), nil
}

// Encode builds a base64 data URL.
func Encode(mime string, data []byte) string {
	return prefix + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode splits a base64 data URL into its media type and payload.
func Decode(url string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(url, prefix)
	if !ok {
		return "", nil, validation.New("dataURL", "missing %q prefix", prefix)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, validation.New("dataURL", "missing payload")
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, validation.New("dataURL", "only base64 payloads are supported")
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, validation.New("dataURL", "bad base64: %v", err)
	}
	return mime, b, nil
}

// IsImage reports whether url is a data URL of an image.
func IsImage(url string) bool {
	return strings.HasPrefix(url, prefix+"image/")
}

// Read encodes path on its own goroutine. The channel yields one Result and
// is closed. Failures are logged and reported in Result.Err.
func Read(ctx context.Context, path string) <-chan Result {
	return ReadWith(ctx, path, logging.For(logging.ComponentDataURL))
}

// ReadWith is Read with an explicit logger.
func ReadWith(ctx context.Context, path string, log *slog.Logger) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		url, err := FromFile(path)
		if err != nil {
			log.Warn("file not loaded", "path", path, "error", err)
		}
		select {
		case out <- Result{Path: path, URL: url, Err: err}:
		case <-ctx.Done():
		}
	}()
	return out
}
