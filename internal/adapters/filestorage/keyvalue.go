package filestorage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKeyValueStore реализует KeyValueStorePort поверх одного JSON-файла.
// Каждая запись переписывает файл целиком: наборы маленькие, а
// синхронная запись - часть контракта хранилища. Гонка между двумя
// процессами над одним файлом разрешается по принципу "последний
// писатель выигрывает" - это принятое, а не защищаемое поведение.
type FileKeyValueStore struct {
	path string
	mu   sync.Mutex
}

// NewFileKeyValueStore создает хранилище; директория файла создается заранее.
func NewFileKeyValueStore(path string) (*FileKeyValueStore, error) {
	if path == "" {
		return nil, fmt.Errorf("storage file path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory %q: %w", dir, err)
		}
	}
	return &FileKeyValueStore{path: path}, nil
}

func (s *FileKeyValueStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data[key], nil
}

func (s *FileKeyValueStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	data[key] = json.RawMessage(value)
	return s.save(data)
}

func (s *FileKeyValueStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return s.save(data)
}

// load читает файл; отсутствующий или пустой файл дает пустое хранилище.
func (s *FileKeyValueStore) load() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]json.RawMessage), nil
		}
		return nil, fmt.Errorf("failed to read storage file %q: %w", s.path, err)
	}
	if len(raw) == 0 {
		return make(map[string]json.RawMessage), nil
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse storage file %q: %w", s.path, err)
	}
	if data == nil {
		data = make(map[string]json.RawMessage)
	}
	return data, nil
}

func (s *FileKeyValueStore) save(data map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage content: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write storage file %q: %w", s.path, err)
	}
	return nil
}
