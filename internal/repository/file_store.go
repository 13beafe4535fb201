package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"shoplist/internal/model"

	"github.com/rs/zerolog"
)

// fileStore implements SlotStore as a single JSON document on disk.
// Writes go to a temporary file that is renamed over the original, so a
// reader never observes a partially written document.
type fileStore struct {
	mu     sync.Mutex
	path   string
	logger zerolog.Logger
}

// NewFileStore creates a file-backed slot store at path, creating the parent
// directory if needed.
func NewFileStore(path string, logger zerolog.Logger) (SlotStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	logger = logger.With().Str("repository", "file-slots").Str("path", path).Logger()
	logger.Info().Msg("file slot store ready")

	return &fileStore{path: path, logger: logger}, nil
}

// Get returns the value stored under key.
func (s *fileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.read()
	if err != nil {
		return nil, err
	}
	v, ok := slots[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

// PutAll merges slots into the document and replaces the file atomically.
func (s *fileStore) PutAll(ctx context.Context, slots map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if errors.Is(err, model.ErrSnapshotCorrupt) {
		s.logger.Warn().Err(err).Msg("replacing malformed slot file")
		current = make(map[string][]byte)
	} else if err != nil {
		return err
	}
	for k, v := range slots {
		current[k] = v
	}

	data, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("failed to encode slot file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace slot file: %w", err)
	}

	s.logger.Debug().Int("slots", len(current)).Msg("slot file written")
	return nil
}

// Close is a no-op; the file is not held open between calls.
func (s *fileStore) Close() error {
	return nil
}

// read decodes the slot document. A missing file is an empty document.
// Values are base64 strings on disk, which encoding/json handles for []byte.
func (s *fileStore) read() (map[string][]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string][]byte), nil
		}
		return nil, fmt.Errorf("failed to read slot file: %w", err)
	}

	slots := make(map[string][]byte)
	if len(data) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("%w: failed to decode slot file: %v", model.ErrSnapshotCorrupt, err)
	}
	return slots, nil
}
