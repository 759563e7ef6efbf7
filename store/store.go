// Package store persists a fortress State in a single JSON file inside a
// private data directory.
//
// A Store starts Uninitialized. Open makes it Secure when the directory can be
// trusted, or Degraded when it cannot: the session then runs in memory only.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/etnz/fortress"
	"github.com/rs/zerolog"
)

// DefaultFileName is the name of the snapshot file in the data directory.
const DefaultFileName = "fortress.json"

// ErrDegraded is returned by Save when the store runs in memory only.
var ErrDegraded = errors.New("storage unavailable, running in memory only")

// Status is the state of the storage.
type Status int

const (
	Uninitialized Status = iota
	Secure
	Degraded
)

func (s Status) String() string {
	switch s {
	case Uninitialized:
		return "Initializing..."
	case Secure:
		return "STORAGE: SECURE"
	case Degraded:
		return "STORAGE: MEMORY ONLY"
	default:
		return "unknown"
	}
}

// Store reads and writes the snapshot file.
type Store struct {
	dir  string
	name string
	log  zerolog.Logger

	mu     sync.Mutex // serializes writes, the last completed one wins
	status Status
	reason error // why the store is Degraded
}

// New returns an Uninitialized store for the file name in dir.
func New(dir, name string, log zerolog.Logger) *Store {
	if name == "" {
		name = DefaultFileName
	}
	return &Store{
		dir:  dir,
		name: name,
		log:  log.With().Str("component", "store").Str("file", filepath.Join(dir, name)).Logger(),
	}
}

// Path returns the path of the snapshot file.
func (s *Store) Path() string { return filepath.Join(s.dir, s.name) }

// Status returns the current storage status.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Reason returns why the store is Degraded, nil otherwise.
func (s *Store) Reason() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}

func (s *Store) degrade(err error) {
	s.status, s.reason = Degraded, err
	s.log.Warn().Err(err).Msg(Degraded.String())
}

// Open prepares the data directory and loads the snapshot on top of base.
//
// It never fails: if the directory cannot be trusted or the snapshot cannot be
// read, the store becomes Degraded and base (or what could be loaded of the
// snapshot) is returned.
func (s *Store) Open(ctx context.Context, base *fortress.State) *fortress.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := trusted(s.dir); err != nil {
		s.degrade(err)
		return base
	}

	data, err := os.ReadFile(s.Path())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// first run, nothing to load.
	case err != nil:
		s.degrade(fmt.Errorf("cannot read %q: %w", s.Path(), err))
		return base
	case len(bytes.TrimSpace(data)) > 0:
		loaded, err := fortress.DecodeSnapshot(bytes.NewReader(data), base)
		if err != nil {
			// keep the unreadable file untouched, it may be repaired by hand.
			s.degrade(fmt.Errorf("cannot load %q: %w", s.Path(), err))
			return base
		}
		base = loaded
	}

	s.status = Secure
	s.persist()
	s.log.Debug().Int("entries", len(base.History)).Msg(Secure.String())
	return base
}

// trusted checks that dir is a private directory, creating it if needed.
func trusted(dir string) error {
	if dir == "" {
		return errors.New("no data directory configured")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("cannot create data directory: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot stat data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data directory %q is not a directory", dir)
	}
	if info.Mode().Perm()&0o022 != 0 {
		return fmt.Errorf("data directory %q is writable by others (%v)", dir, info.Mode().Perm())
	}
	return nil
}

// persist asks for the directory content to be durable. It is best effort.
func (s *Store) persist() {
	d, err := os.Open(s.dir)
	if err != nil {
		s.log.Debug().Err(err).Msg("durable storage not granted")
		return
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		s.log.Debug().Err(err).Msg("durable storage not granted")
	}
}

// Save overwrites the snapshot file with st.
//
// The file is replaced as a whole: readers see either the old or the new
// content. Concurrent saves are serialized.
func (s *Store) Save(ctx context.Context, st *fortress.State) error {
	var buf bytes.Buffer
	if err := fortress.EncodeSnapshot(&buf, st); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != Secure {
		return ErrDegraded
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeFile(s.Path(), buf.Bytes()); err != nil {
		return fmt.Errorf("cannot save %q: %w", s.Path(), err)
	}
	return nil
}

// Raw returns the content of the snapshot file.
func (s *Store) Raw() ([]byte, error) {
	return os.ReadFile(s.Path())
}

// writeFile atomically replaces filename with data.
func writeFile(filename string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), filename)
}
