package roles

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStore keeps records in a single JSON file, keyed by user ID. Writes go
// to a temp file and are renamed into place, so a crash mid-write leaves the
// previous file intact. Used when the bot runs without a database.
type FileStore struct {
	path string

	mu      sync.Mutex
	records map[string]Record
}

func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, records: make(map[string]Record)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fs, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	if err := json.Unmarshal(data, &fs.records); err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	return fs, nil
}

func (fs *FileStore) Get(ctx context.Context, userID string) (Record, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	rec, ok := fs.records[userID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (fs *FileStore) Put(ctx context.Context, rec Record) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	next := fs.clone()
	next[rec.UserID] = rec
	if err := fs.persist(next); err != nil {
		return err
	}
	fs.records = next
	return nil
}

func (fs *FileStore) Delete(ctx context.Context, userID string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, ok := fs.records[userID]; !ok {
		return nil
	}
	next := fs.clone()
	delete(next, userID)
	if err := fs.persist(next); err != nil {
		return err
	}
	fs.records = next
	return nil
}

func (fs *FileStore) ListAll(ctx context.Context) ([]Record, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	records := make([]Record, 0, len(fs.records))
	for _, rec := range fs.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].UserID < records[j].UserID })
	return records, nil
}

func (fs *FileStore) clone() map[string]Record {
	next := make(map[string]Record, len(fs.records)+1)
	for k, v := range fs.records {
		next[k] = v
	}
	return next
}

// persist writes the full collection and atomically replaces the data file.
// The in-memory map is only swapped after this succeeds.
func (fs *FileStore) persist(records map[string]Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &StorageError{Op: "save", Err: err}
		}
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}
