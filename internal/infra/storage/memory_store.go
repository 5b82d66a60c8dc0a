package storage

import (
	"context"
	"sync"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/repository"
)

const watchBuffer = 64

// MemoryBackend is an in-process key/value space shared by several session views.
type MemoryBackend struct {
	mu       sync.Mutex
	values   map[string]string
	watchers map[int]*memoryWatcher
	nextID   int
}

type memoryWatcher struct {
	ch chan entity.StorageChange
}

// NewMemoryBackend creates an empty backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		values:   make(map[string]string),
		watchers: make(map[int]*memoryWatcher),
	}
}

// memoryStore is one session's handle on a MemoryBackend.
type memoryStore struct {
	backend   *MemoryBackend
	sessionID string

	closeOnce sync.Once
	closed    chan struct{}
}

// NewMemoryStore opens a session view over backend. Two views over the same
// backend behave like two tabs of the same origin.
func NewMemoryStore(backend *MemoryBackend, sessionID string) repository.StateStore {
	return &memoryStore{
		backend:   backend,
		sessionID: sessionID,
		closed:    make(chan struct{}),
	}
}

func (s *memoryStore) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.isClosed() {
		return "", false, repository.ErrStoreClosed
	}

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	value, ok := s.backend.values[key]

	return value, ok, nil
}

func (s *memoryStore) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	if s.isClosed() {
		return nil, repository.ErrStoreClosed
	}

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	out := make(map[string]string, len(keys))
	for _, key := range keys {
		if value, ok := s.backend.values[key]; ok {
			out[key] = value
		}
	}

	return out, nil
}

func (s *memoryStore) Set(ctx context.Context, values map[string]string) error {
	if s.isClosed() {
		return repository.ErrStoreClosed
	}
	if len(values) == 0 {
		return nil
	}

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	keys := make([]string, 0, len(values))
	for key, value := range values {
		s.backend.values[key] = value
		keys = append(keys, key)
	}
	s.backend.notifyLocked(s.sessionID, keys)

	return nil
}

func (s *memoryStore) Delete(ctx context.Context, keys ...string) error {
	if s.isClosed() {
		return repository.ErrStoreClosed
	}

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	removed := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := s.backend.values[key]; ok {
			delete(s.backend.values, key)
			removed = append(removed, key)
		}
	}
	s.backend.notifyLocked(s.sessionID, removed)

	return nil
}

func (s *memoryStore) Watch(ctx context.Context) (<-chan entity.StorageChange, error) {
	if s.isClosed() {
		return nil, repository.ErrStoreClosed
	}

	watcher := &memoryWatcher{ch: make(chan entity.StorageChange, watchBuffer)}

	s.backend.mu.Lock()
	id := s.backend.nextID
	s.backend.nextID++
	s.backend.watchers[id] = watcher
	s.backend.mu.Unlock()

	out := make(chan entity.StorageChange, watchBuffer)
	go func() {
		defer close(out)
		defer func() {
			s.backend.mu.Lock()
			delete(s.backend.watchers, id)
			s.backend.mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.closed:
				return
			case change := <-watcher.ch:
				change.Foreign = change.Writer != s.sessionID
				select {
				case out <- change:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (s *memoryStore) SessionID() string {
	return s.sessionID
}

func (s *memoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })

	return nil
}

// notifyLocked fans a mutation out to every watcher. Slow watchers lose changes
// instead of blocking writers.
func (b *MemoryBackend) notifyLocked(writer string, keys []string) {
	for _, watcher := range b.watchers {
		for _, key := range keys {
			select {
			case watcher.ch <- entity.StorageChange{Key: key, Writer: writer}:
			default:
			}
		}
	}
}
