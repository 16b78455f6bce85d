package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/storage"
)

// MemoryStorage is an in-memory storage.Storage for tests
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string]memoryObject

	// Failure injection by path
	FailUpload map[string]bool
	FailDelete map[string]bool
	FailOpen   map[string]bool
}

type memoryObject struct {
	data        []byte
	contentType string
	updated     time.Time
}

var errInjected = errors.New("testutil: injected storage failure")

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		objects:    map[string]memoryObject{},
		FailUpload: map[string]bool{},
		FailDelete: map[string]bool{},
		FailOpen:   map[string]bool{},
	}
}

// Put stores an object directly, bypassing Upload
func (s *MemoryStorage) Put(path string, data []byte) {
	s.PutAt(path, data, time.Now())
}

// PutAt stores an object with an explicit modification time
func (s *MemoryStorage) PutAt(path string, data []byte, updated time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = memoryObject{data: data, updated: updated}
}

// Has reports whether path exists
func (s *MemoryStorage) Has(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[path]
	return ok
}

// Paths returns every stored path, sorted
func (s *MemoryStorage) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.objects))
	for p := range s.objects {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// URLFor returns the URL Upload would hand out for path
func URLFor(path string) string {
	return "https://storage.test/" + path
}

func (s *MemoryStorage) Upload(_ context.Context, path string, r io.Reader, contentType string) (*storage.Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailUpload[path] {
		return nil, fmt.Errorf("upload %s: %w", path, errInjected)
	}
	s.objects[path] = memoryObject{data: data, contentType: contentType, updated: time.Now()}

	return &storage.Object{Path: path, URL: URLFor(path), ContentType: contentType, Size: int64(len(data))}, nil
}

func (s *MemoryStorage) Open(_ context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailOpen[path] {
		return nil, fmt.Errorf("open %s: %w", path, errInjected)
	}
	obj, ok := s.objects[path]
	if !ok {
		return nil, fmt.Errorf("path=%s: %w", path, storage.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (s *MemoryStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailDelete[path] {
		return fmt.Errorf("delete %s: %w", path, errInjected)
	}
	if _, ok := s.objects[path]; !ok {
		return fmt.Errorf("path=%s: %w", path, storage.ErrNotFound)
	}
	delete(s.objects, path)
	return nil
}

func (s *MemoryStorage) List(_ context.Context, prefix string) ([]storage.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var infos []storage.ObjectInfo
	for p, obj := range s.objects {
		if strings.HasPrefix(p, prefix) {
			infos = append(infos, storage.ObjectInfo{Path: p, Size: int64(len(obj.data)), Updated: obj.updated})
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Path < infos[j].Path })
	return infos, nil
}

var _ storage.Storage = (*MemoryStorage)(nil)
