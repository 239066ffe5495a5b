package leaderboard

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultCapacity bounds how many entries a board file keeps
const DefaultCapacity = 100

type boardFile struct {
	Entries []Entry `yaml:"entries"`
}

// FileStore keeps the board as a YAML document on disk
type FileStore struct {
	path     string
	capacity int
	mu       sync.Mutex
}

// NewFileStore creates a store at path; the file is created on first Submit
func NewFileStore(path string, capacity int) *FileStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &FileStore{path: path, capacity: capacity}
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return s.path
}

// Submit inserts e in rank order and rewrites the file
func (s *FileStore) Submit(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	entries = append(entries, e)
	sort.SliceStable(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
	if len(entries) > s.capacity {
		entries = entries[:s.capacity]
	}
	return s.save(entries)
}

// Top returns up to n best entries; n <= 0 returns all
func (s *FileStore) Top(n int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// Rank returns the 1-based position of id, or 0 if it fell off the board
func (s *FileStore) Rank(id string) (int, error) {
	entries, err := s.Top(0)
	if err != nil {
		return 0, err
	}
	for i, e := range entries {
		if e.ID == id {
			return i + 1, nil
		}
	}
	return 0, nil
}

func (s *FileStore) load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read leaderboard %s", s.path)
	}

	var board boardFile
	if err := yaml.Unmarshal(data, &board); err != nil {
		return nil, errors.Wrapf(err, "parse leaderboard %s", s.path)
	}
	return board.Entries, nil
}

// save writes through a temp file so a crash never leaves a torn board
func (s *FileStore) save(entries []Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create leaderboard dir %s", dir)
	}

	data, err := yaml.Marshal(boardFile{Entries: entries})
	if err != nil {
		return errors.Wrap(err, "encode leaderboard")
	}

	tmp, err := os.CreateTemp(dir, ".leaderboard-*")
	if err != nil {
		return errors.Wrap(err, "create temp leaderboard")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write leaderboard")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close leaderboard")
	}
	return errors.Wrapf(os.Rename(tmp.Name(), s.path), "replace leaderboard %s", s.path)
}
