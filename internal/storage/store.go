package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/wb-go/wbf/retry"
)

// jsonFile is one flat record file. Every entity kind owns exactly one file
// with load-all / save-all semantics: the loaded slice is a snapshot, a save
// rewrites the whole file. A per-file RWMutex keeps concurrent readers and
// the single writer from observing a half-written file.
type jsonFile struct {
	path     string
	mu       sync.RWMutex
	strategy retry.Strategy
}

func newJSONFile(dataDir, name string) *jsonFile {
	return &jsonFile{
		path: filepath.Join(dataDir, name),
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    100 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// load decodes the file into v. A missing file is not an error: v keeps its
// zero value, matching the original behavior of treating absence as empty.
func (f *jsonFile) load(v any) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", f.path, err)
	}

	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", f.path, err)
	}
	return nil
}

// save rewrites the whole file atomically (temp file + rename) so a crashed
// write never leaves a truncated record collection behind.
func (f *jsonFile) save(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}

	return retry.Do(func() error {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return fmt.Errorf("mkdir for %s: %w", f.path, err)
		}
		tmp := f.path + ".tmp"
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", tmp, err)
		}
		if err := os.Rename(tmp, f.path); err != nil {
			return fmt.Errorf("rename %s: %w", tmp, err)
		}
		return nil
	}, f.strategy)
}
