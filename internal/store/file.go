package store

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
)

const stateFileName = "state.json"

// FileStore persists values as a single JSON document under a state
// directory. Writes go through a temp file and rename so a crash never
// leaves a half-written document behind.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	s := &FileStore{
		path:   filepath.Join(baseDir, stateFileName),
		values: make(map[string]string),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := sonic.Unmarshal(data, &s.values); err != nil {
		// A corrupt state file is discarded rather than fatal; the
		// worst outcome is a re-shown prompt.
		s.values = make(map[string]string)
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	data, err := sonic.Marshal(s.values)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
