// Package transfer moves every planner slot in and out of one JSON object,
// the shape of a browser localStorage dump.
package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/store"
)

// Export writes every key of s as one JSON object. Each member is a string
// holding the stored bytes untouched, as a localStorage dump does.
func Export(ctx context.Context, s store.Store, w io.Writer) (int, error) {
	keys := s.Keys(ctx)
	out := make(map[string]string, len(keys))
	var errs *multierror.Error
	for _, key := range keys {
		raw, ok, err := s.Get(key)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		if !ok {
			continue
		}
		out[key] = raw
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return 0, err
	}
	return len(out), errs.ErrorOrNil()
}

// Import is the outcome of Load.
type Import struct {
	Written []string `json:"written"`
	Skipped []string `json:"skipped,omitempty"`
}

type Options struct {
	// Prefix limits the import to keys starting with it. Empty takes all.
	Prefix string
	Log    *slog.Logger
}

// Load reads one JSON object and writes each member to s. String members
// hold the stored bytes, as Export and localStorage write them; other members
// are stored as their compacted JSON. Keys the store rejects are skipped and
// reported together.
func Load(ctx context.Context, s store.Store, r io.Reader, opts Options) (Import, error) {
	log := opts.Log
	if log == nil {
		log = logging.For(logging.ComponentTransfer)
	}
	var in map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return Import{}, fmt.Errorf("transfer: expected one JSON object: %w", err)
	}
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var (
		res  Import
		errs *multierror.Error
	)
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if opts.Prefix != "" && !strings.HasPrefix(key, opts.Prefix) {
			res.Skipped = append(res.Skipped, key)
			continue
		}
		value, err := member(in[key])
		if err != nil {
			res.Skipped = append(res.Skipped, key)
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		if err := s.Set(key, value); err != nil {
			log.Warn("slot not imported", "key", key, "error", err)
			res.Skipped = append(res.Skipped, key)
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		res.Written = append(res.Written, key)
	}
	log.Info("slots imported", "written", len(res.Written), "skipped", len(res.Skipped))
	return res, errs.ErrorOrNil()
}

// member is the stored form of one dump member.
func member(raw json.RawMessage) (string, error) {
	var str string
	if json.Unmarshal(raw, &str) == nil {
		return str, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}
