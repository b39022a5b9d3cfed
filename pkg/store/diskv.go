package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const (
	// BackendDisk persists slots as files under the configured base path.
	BackendDisk = "disk"
	// BackendMemory keeps slots for the lifetime of the process only.
	BackendMemory = "memory"
	// BackendNone disables the store entirely.
	BackendNone = "none"

	valueSuffix = ".json"
	tempDirName = ".tmp"
)

// Load creates the Store selected by cfg. A nil cfg loads the configuration
// from the environment. BackendNone yields ErrUnavailable so callers switch to
// in-memory values.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch backend := cfg.Backend(); backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendNone:
		return nil, ErrUnavailable
	case BackendDisk, "":
		return openDisk(cfg.BasePath())
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}
}

func openDisk(basePath string) (*disk, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("%w: base path unknown", ErrUnavailable)
	}
	if err := os.MkdirAll(filepath.Join(basePath, tempDirName), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &disk{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDirName),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		PathPerm:          0o755,
		FilePerm:          0o644,
		// No cache: another process may rewrite the same keys.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

type disk struct {
	d        *diskv.Diskv
	basePath string
}

func (p *disk) Get(key string) (string, bool, error) {
	if err := ValidateKey(key); err != nil {
		return "", false, err
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), true, nil
}

func (p *disk) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *disk) Delete(key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := p.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *disk) Keys(ctx context.Context) []string {
	all := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if key == "" {
			continue
		}
		all = append(all, key)
	}
	sort.Strings(all)
	return all
}

// keyToPathTransform maps `a.b.c` to the file a/b/c.json. The suffix keeps a
// key and a longer key sharing its prefix from colliding as file and folder.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, ".")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1] + valueSuffix,
	}
}

// pathToKeyTransform returns "" for files that do not hold a slot value.
func pathToKeyTransform(pathKey *diskv.PathKey) string {
	name, ok := strings.CutSuffix(pathKey.FileName, valueSuffix)
	if !ok || name == "" {
		return ""
	}
	for _, part := range pathKey.Path {
		if part == tempDirName {
			return ""
		}
	}
	return strings.Join(append(append([]string{}, pathKey.Path...), name), ".")
}

// keyForPath derives the slot key for an absolute file path under base.
func keyForPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	return pathToKeyTransform(&diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	})
}
