package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"marketplace/storefront/internal/domain"

	"github.com/spf13/afero"
)

type fileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore persists the cart as a JSON file on the given filesystem.
func NewFileStore(fs afero.Fs, path string) Store {
	return &fileStore{
		fs:   fs,
		path: path,
	}
}

func (s *fileStore) Load(ctx context.Context) ([]domain.CartLine, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // nothing stored yet
		}
		return nil, fmt.Errorf("failed to read cart file %s: %w", s.path, err)
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart file %s: %w", s.path, err)
	}
	return lines, nil
}

func (s *fileStore) Save(ctx context.Context, lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "/" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cart directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file %s: %w", s.path, err)
	}
	return nil
}
