package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yatrika/service-planner/internal/domain/apperr"
	"github.com/yatrika/service-planner/internal/domain/trip"
)

// FileTripRepository is the file-based implementation of trip.TripRepository.
// Records are stored as indented JSON under a single output directory.
type FileTripRepository struct {
	dir string
}

// NewFileTripRepository creates a repository rooted at dir, creating the
// directory if needed.
func NewFileTripRepository(dir string) (*FileTripRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &FileTripRepository{dir: dir}, nil
}

// Save writes the record as indented JSON and returns its path.
func (r *FileTripRepository) Save(_ context.Context, record trip.TripRecord, filename string) (string, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", apperr.NewInternalError("failed to encode trip record", err)
	}

	path := filepath.Join(r.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperr.NewInternalError("failed to write trip record", err)
	}
	return path, nil
}

// Load reads a persisted trip record from disk.
func (r *FileTripRepository) Load(_ context.Context, path string) (*trip.TripRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NewNotFoundError("trip record", path)
		}
		return nil, apperr.NewInternalError("failed to read trip record", err)
	}

	var record trip.TripRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, apperr.NewInternalError("failed to decode trip record", err)
	}
	return &record, nil
}

// Dir returns the repository's root directory.
func (r *FileTripRepository) Dir() string {
	return r.dir
}
