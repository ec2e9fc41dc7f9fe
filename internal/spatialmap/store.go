package spatialmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gofrs/flock"

	"github.com/sprite-who-codes/claudron-dashboard/internal/logging"
	"github.com/sprite-who-codes/claudron-dashboard/internal/services"
)

// Store persists the multi-room spatial map as a single JSON document.
type Store struct {
	path   string
	logger *slog.Logger
	lock   *flock.Flock

	mu    sync.RWMutex
	rooms map[string]RoomMap
}

// Open loads the store at path, or starts empty when the file does not
// exist. A file that exists but cannot be parsed is a hard failure: starting
// empty would silently discard every other room's data on the next save.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Store{
		path:   path,
		logger: logging.NewComponentLogger(logger, "spatialmap"),
		lock:   flock.New(path + ".lock"),
		rooms:  make(map[string]RoomMap),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the store file location.
func (s *Store) Path() string {
	return s.path
}

// SetRoom replaces room's annotation list and persists the full store. The
// store file is re-read under the file lock before merging so a concurrent
// invocation updating a different room is never clobbered. All other keys
// are left untouched.
func (s *Store) SetRoom(room string, annotations RoomMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return services.Wrap(services.ErrNotFound, "spatialmap", "lock store", s.path, err)
	}
	defer s.lock.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	s.rooms[room] = annotations
	if err := s.save(); err != nil {
		return err
	}

	s.logger.Debug("room entry replaced",
		logging.String(logging.FieldRoom, room),
		logging.Int("annotations", len(annotations)),
		logging.String(logging.FieldPath, s.path))
	return nil
}

// Room returns the annotation list for room, if present.
func (s *Store) Room(room string) (RoomMap, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	annotations, ok := s.rooms[room]
	return annotations, ok
}

// RoomIDs returns all room identifiers in sorted order.
func (s *Store) RoomIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.rooms))
	for id := range s.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.rooms = make(map[string]RoomMap)
			return nil
		}
		return services.Wrap(services.ErrNotFound, "spatialmap", "read store", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		s.rooms = make(map[string]RoomMap)
		return nil
	}

	var rooms map[string]RoomMap
	if err := json.Unmarshal(data, &rooms); err != nil {
		return services.Wrap(services.ErrParse, "spatialmap", "parse store", s.path, err)
	}
	s.rooms = rooms
	return nil
}

// save writes the full store document atomically via a temp file. Keys come
// out in sorted order so repeated runs produce byte-identical files.
func (s *Store) save() error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.rooms); err != nil {
		return services.Wrap(services.ErrParse, "spatialmap", "encode store", s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return services.Wrap(services.ErrNotFound, "spatialmap", "create store directory", dir, err)
		}
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		return services.Wrap(services.ErrNotFound, "spatialmap", "write temp file", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return services.Wrap(services.ErrNotFound, "spatialmap", "rename temp file", s.path, err)
	}
	return nil
}
