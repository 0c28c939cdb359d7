package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// HighscoreStore loads and saves the single highscore value.
type HighscoreStore interface {
	// LoadHighscore returns the stored highscore, or 0 when nothing usable
	// is stored. It never fails.
	LoadHighscore() int
	// SaveHighscore stores score if it beats the stored highscore and
	// reports whether it was written.
	SaveHighscore(score int) (bool, error)
}

// highscoreRecord is the on-disk layout of the highscore file.
type highscoreRecord struct {
	Highscore int `json:"highscore"`
}

// HighscoreFile keeps the highscore in a JSON file: {"highscore": 42}.
// It is safe for concurrent use by several sessions of one process.
type HighscoreFile struct {
	path string
	mu   sync.Mutex
}

// NewHighscoreFile returns a store for the file at path. A leading ~ is
// expanded to the home directory. The file is not touched until used.
func NewHighscoreFile(path string) (*HighscoreFile, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighscoreFile{path: expanded}, nil
}

// Path returns the file location.
func (f *HighscoreFile) Path() string {
	return f.path
}

// LoadHighscore reads the file. A missing or malformed file, or any read
// error, yields 0.
func (f *HighscoreFile) LoadHighscore() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// load reads the file without locking.
func (f *HighscoreFile) load() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0
	}

	var rec highscoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0
	}
	return rec.Highscore
}

// SaveHighscore overwrites the whole file with score when it is higher than
// the value currently on disk, which other sessions may have raised. The
// comparison and the write happen under one lock. The write goes
// through a temporary file so readers never see a partial record.
func (f *HighscoreFile) SaveHighscore(score int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if score <= f.load() {
		return false, nil
	}
	if err := f.write(score); err != nil {
		return false, err
	}
	return true, nil
}

// write replaces the file with score.
func (f *HighscoreFile) write(score int) error {
	data, err := json.Marshal(highscoreRecord{Highscore: score})
	if err != nil {
		return fmt.Errorf("storage: cannot encode highscore: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot write highscore: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write highscore: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write highscore: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}
