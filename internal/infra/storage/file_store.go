package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/repository"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// fileDocument is the on-disk layout of the shared state file. Writers records the
// last session to set or delete each key; Writer is the last session to save the file.
type fileDocument struct {
	Writer  string            `json:"writer"`
	Version uint64            `json:"version"`
	Values  map[string]string `json:"values"`
	Writers map[string]string `json:"writers"`
}

// fileLocks serializes read-modify-write cycles of stores sharing a path in this process.
//
//nolint:gochecknoglobals
var fileLocks sync.Map

// fileStore keeps the shared state in one JSON file. Every session pointing at the
// same path sees the others' writes through fsnotify.
type fileStore struct {
	path      string
	sessionID string
	logger    *slog.Logger

	mu        *sync.Mutex
	closeOnce sync.Once
	closed    chan struct{}
}

// NewFileStore opens (and if needed creates the directory of) the state file at path.
func NewFileStore(path, sessionID string, logger *slog.Logger) (repository.StateStore, error) {
	if path == "" {
		return nil, errors.New("storage path is required for file provider")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve storage path")
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, errors.Wrap(err, "create storage directory")
	}

	lock, _ := fileLocks.LoadOrStore(absPath, &sync.Mutex{})

	return &fileStore{
		path:      absPath,
		sessionID: sessionID,
		logger:    logger,
		mu:        lock.(*sync.Mutex),
		closed:    make(chan struct{}),
	}, nil
}

func (s *fileStore) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

func (s *fileStore) read() (*fileDocument, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &fileDocument{Values: map[string]string{}, Writers: map[string]string{}}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read state file")
	}

	doc := &fileDocument{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, errors.Wrap(err, "decode state file")
		}
	}
	if doc.Values == nil {
		doc.Values = map[string]string{}
	}
	if doc.Writers == nil {
		doc.Writers = map[string]string{}
	}

	return doc, nil
}

// write replaces the file atomically so that readers never observe a partial document.
func (s *fileStore) write(doc *fileDocument) error {
	doc.Writer = s.sessionID
	doc.Version++

	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encode state file")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".quickdash-state-*")
	if err != nil {
		return errors.Wrap(err, "create temp state file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errors.Wrap(err, "write temp state file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "close temp state file")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "replace state file")
	}

	return nil
}

func (s *fileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.isClosed() {
		return "", false, repository.ErrStoreClosed
	}

	doc, err := s.read()
	if err != nil {
		return "", false, err
	}
	value, ok := doc.Values[key]

	return value, ok, nil
}

func (s *fileStore) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	if s.isClosed() {
		return nil, repository.ErrStoreClosed
	}

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(keys))
	for _, key := range keys {
		if value, ok := doc.Values[key]; ok {
			out[key] = value
		}
	}

	return out, nil
}

func (s *fileStore) Set(ctx context.Context, values map[string]string) error {
	if s.isClosed() {
		return repository.ErrStoreClosed
	}
	if len(values) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	for key, value := range values {
		doc.Values[key] = value
		doc.Writers[key] = s.sessionID
	}

	return s.write(doc)
}

func (s *fileStore) Delete(ctx context.Context, keys ...string) error {
	if s.isClosed() {
		return repository.ErrStoreClosed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	changed := false
	for _, key := range keys {
		if _, ok := doc.Values[key]; ok {
			delete(doc.Values, key)
			doc.Writers[key] = s.sessionID
			changed = true
		}
	}
	if !changed {
		return nil
	}

	return s.write(doc)
}

// Watch follows the state file's directory, since atomic replacement swaps the inode.
func (s *fileStore) Watch(ctx context.Context) (<-chan entity.StorageChange, error) {
	if s.isClosed() {
		return nil, repository.ErrStoreClosed
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "cannot create watcher")
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()

		return nil, errors.Wrapf(err, "cannot watch %q", filepath.Dir(s.path))
	}

	initial, err := s.read()
	if err != nil {
		watcher.Close()

		return nil, err
	}

	out := make(chan entity.StorageChange, watchBuffer)
	go func() {
		defer close(out)
		defer watcher.Close()

		snapshot := initial.Values
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.closed:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != s.path {
					continue
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Remove) {
					continue
				}

				doc, err := s.read()
				if err != nil {
					s.logger.Warn("Failed to reload state file", slog.Any("error", err))

					continue
				}

				for _, key := range diffKeys(snapshot, doc.Values) {
					writer := doc.writerOf(key)
					change := entity.StorageChange{
						Key:     key,
						Writer:  writer,
						Foreign: writer != s.sessionID,
					}
					select {
					case out <- change:
					case <-ctx.Done():
						return
					}
				}
				snapshot = doc.Values
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("State file watcher error", slog.Any("error", err))
			}
		}
	}()

	return out, nil
}

func (s *fileStore) SessionID() string {
	return s.sessionID
}

func (s *fileStore) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })

	return nil
}

// writerOf falls back to the file's last writer for documents saved without per-key writers.
func (doc *fileDocument) writerOf(key string) string {
	if writer, ok := doc.Writers[key]; ok && writer != "" {
		return writer
	}

	return doc.Writer
}

// diffKeys lists keys added, removed or modified between two snapshots.
func diffKeys(before, after map[string]string) []string {
	var keys []string
	for key, value := range after {
		if old, ok := before[key]; !ok || old != value {
			keys = append(keys, key)
		}
	}
	for key := range before {
		if _, ok := after[key]; !ok {
			keys = append(keys, key)
		}
	}

	return keys
}
