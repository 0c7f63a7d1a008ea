package event

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Repository is the durable collection of event records. Records are only
// ever appended; listing policy (expiry, ordering) lives in the service.
type Repository interface {
	LoadAll() ([]Event, error)
	Append(e Event) error
}

// ===========================
// 📄 File Repository — a single JSON array document, rewritten wholesale on
// every append. Write cost is O(n) in record count, which is fine at
// bulletin-board volumes. The mutex guards the read-modify-write sequence so
// concurrent creates within this process cannot overwrite each other.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// LoadAll reads the whole collection. A missing file means no events yet, not
// an error. An unparsable file is logged and treated as empty so that future
// appends keep working; refusing all writes would brick a single-file store
// with no recovery path.
func (r *FileRepository) LoadAll() ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

func (r *FileRepository) loadLocked() ([]Event, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read event store: %w", err)
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		log.Printf("⚠️ Event store %s is unparsable, treating as empty: %v", r.path, err)
		return []Event{}, nil
	}
	return events, nil
}

// Append rewrites the collection through a temp file + rename, so a crash
// mid-write never leaves a half-written document behind.
func (r *FileRepository) Append(e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.loadLocked()
	if err != nil {
		return err
	}
	events = append(events, e)

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize events: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".events-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write event store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace event store: %w", err)
	}
	return nil
}
