// Package file persists the quiz snapshot as a JSON file, the desktop
// equivalent of the browser's localStorage slot.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"trivia-cli/internal/domain"
)

const snapshotFile = "quiz_state.json"

// SnapshotStore stores the snapshot at a single well-known path.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore builds a store at path. An empty path falls back to
// quiz_state.json under the user config directory.
func NewSnapshotStore(path string) (*SnapshotStore, error) {
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(base, "trivia", snapshotFile)
	}
	return &SnapshotStore{path: path}, nil
}

// Path returns the snapshot location.
func (s *SnapshotStore) Path() string { return s.path }

// Save writes the snapshot atomically, overwriting any prior value.
func (s *SnapshotStore) Save(_ context.Context, state domain.QuizState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot if present. A missing or malformed file is
// reported as absent, not an error: a corrupt snapshot only costs the
// resume, never the session.
func (s *SnapshotStore) Load(_ context.Context) (domain.QuizState, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.QuizState{}, false, nil
		}
		return domain.QuizState{}, false, fmt.Errorf("read snapshot: %w", err)
	}

	var state domain.QuizState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.QuizState{}, false, nil
	}
	return state, true, nil
}

// Clear removes the snapshot file.
func (s *SnapshotStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}
