package toml

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

const (
	localFileMode   = 0o600
	localDirMode    = 0o700
	tempFilePattern = ".local-*.toml.tmp"
)

// LocalStore keeps the client-side key/value data in a TOML file. Writes are
// atomic and serialized per path across instances in the same process.
type LocalStore struct {
	path string
	mu   *sync.RWMutex
	now  func() time.Time
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.LocalStore = (*LocalStore)(nil)

func NewLocalStore(path string) (*LocalStore, error) {
	if path == "" {
		return nil, errors.New("local store path is empty")
	}
	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &LocalStore{path: path, mu: lockForPath(path), now: time.Now}, nil
}

func (s *LocalStore) Path() string {
	return s.path
}

func (s *LocalStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return "", err
	}

	value, ok := file.Values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrLocalKeyNotFound, key)
	}
	return value, nil
}

func (s *LocalStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("local key is empty")
	}

	return s.update(ctx, func(values map[string]string) bool {
		if current, ok := values[key]; ok && current == value {
			return false
		}
		values[key] = value
		return true
	})
}

// Delete removes the given keys. Absent keys are ignored.
func (s *LocalStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return s.update(ctx, func(values map[string]string) bool {
		changed := false
		for _, key := range keys {
			if _, ok := values[key]; ok {
				delete(values, key)
				changed = true
			}
		}
		return changed
	})
}

func (s *LocalStore) List(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return nil, err
	}

	return maps.Clone(file.Values), nil
}

func (s *LocalStore) update(ctx context.Context, mutate func(map[string]string) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	if !mutate(file.Values) {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	file.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	return s.writeSchema(file)
}

func (s *LocalStore) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read local store: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode local store: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve local store path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (s *LocalStore) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.path), localDirMode); err != nil {
		return fmt.Errorf("create local store directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode local store: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp local store: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp local store: %w", err)
	}

	if err := tempFile.Chmod(localFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp local store: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp local store: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace local store: %w", err)
	}

	cleanup = false

	return nil
}
