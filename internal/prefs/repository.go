package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"zenfinance/internal/logger"
)

// StorageName is the namespaced key the preference blob lives under.
const StorageName = "zen-finance-storage"

// schemaVersion is bumped when the blob layout changes; Load migrates or
// defaults anything older.
const schemaVersion = 1

// Repository persists the preference blob.
type Repository interface {
	// Load reads the persisted state. A missing blob is not an error; it
	// returns the zero State so defaults apply.
	Load() (State, error)
	Save(State) error
}

// blob is the on-disk layout: the state wrapped with a schema version.
type blob struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// FileRepository stores the blob as a single JSON file.
type FileRepository struct {
	path string
}

// NewFileRepository creates a repository at an explicit path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// DefaultPath returns the per-user location of the preference file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "zenfinance", StorageName+".json"), nil
}

// Load reads and migrates the persisted blob.
func (r *FileRepository) Load() (State, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("reading preferences: %w", err)
	}

	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		// A corrupt blob is discarded rather than blocking startup.
		return State{}, nil
	}
	if b.Version > schemaVersion {
		// Written by a newer build; keep the fields we understand and let
		// the next Save rewrite the blob at our version.
		logger.Get().Warnw("preference blob from newer schema",
			"found", b.Version,
			"supported", schemaVersion,
		)
	}
	return b.State, nil
}

// Save writes the blob synchronously. Every preference mutation flushes.
func (r *FileRepository) Save(state State) error {
	data, err := json.Marshal(blob{State: state, Version: schemaVersion})
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creating preferences dir: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}
