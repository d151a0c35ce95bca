package kvstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/spf13/afero"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// FileStore keeps one file per key under dir. Writes go through a
// temporary file and a rename so a crash never leaves a torn value.
type FileStore struct {
	fs  afero.Fs
	dir string
	mu  sync.RWMutex
}

func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	return &FileStore{
		fs:  fs,
		dir: dir,
	}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}

	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrKeyNotFound
		}

		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	return data, nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := p + ".tmp"

	f, err := s.fs.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", key, err)
	}

	if _, err := f.Write(value); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(tmp)

		return fmt.Errorf("write %s: %w", key, err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(tmp)

		return fmt.Errorf("sync %s: %w", key, err)
	}

	if err := f.Close(); err != nil {
		_ = s.fs.Remove(tmp)

		return fmt.Errorf("close %s: %w", key, err)
	}

	if err := s.fs.Rename(tmp, p); err != nil {
		return fmt.Errorf("rename %s: %w", key, err)
	}

	slog.Debug("value written to file store",
		"key", key,
		"bytes", len(value),
	)

	return nil
}

func (s *FileStore) Remove(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}

	return nil
}

func (s *FileStore) Close() error {
	return nil
}
