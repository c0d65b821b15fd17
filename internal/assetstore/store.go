// Package assetstore loads decoded assets by path in the background. Callers
// request a load, keep the handle, and poll it each tick.
package assetstore

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Handle identifies a requested asset. It is the asset's path.
type Handle string

// State is where a handle is in its load.
type State uint8

const (
	NotRequested State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "not requested"
}

// Loader decodes the raw bytes of one asset.
type Loader func(data []byte) (any, error)

type entry struct {
	state State
	value any
	err   error
}

// Store is safe for concurrent use. Loads run on their own goroutines.
type Store struct {
	fsys    fs.FS
	log     *logrus.Entry
	loaders map[string]Loader

	mu      sync.Mutex
	entries map[Handle]*entry
	wg      sync.WaitGroup
}

// New creates a store reading from fsys.
func New(fsys fs.FS, log *logrus.Entry) *Store {
	return &Store{
		fsys:    fsys,
		log:     log.WithField("component", "assetstore"),
		loaders: make(map[string]Loader),
		entries: make(map[Handle]*entry),
	}
}

// Register installs the loader for paths ending in suffix. When several
// suffixes match, the longest wins. Register before the first Load.
func (s *Store) Register(suffix string, l Loader) {
	s.loaders[suffix] = l
}

// Load requests path and returns its handle immediately. Requesting the same
// path again returns the same handle without reloading.
func (s *Store) Load(path string) Handle {
	h := Handle(path)
	s.mu.Lock()
	if _, ok := s.entries[h]; ok {
		s.mu.Unlock()
		return h
	}
	e := &entry{state: Loading}
	s.entries[h] = e
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		v, err := s.decode(path)
		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			e.state, e.err = Failed, err
			s.log.WithError(err).WithField("path", path).Error("asset load failed")
			return
		}
		e.state, e.value = Loaded, v
		s.log.WithField("path", path).Debug("asset loaded")
	}()
	return h
}

func (s *Store) decode(path string) (any, error) {
	l := s.loaderFor(path)
	if l == nil {
		return nil, fmt.Errorf("no loader for %q", path)
	}
	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	v, err := l(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}

func (s *Store) loaderFor(path string) Loader {
	var best string
	for suffix := range s.loaders {
		if strings.HasSuffix(path, suffix) && len(suffix) > len(best) {
			best = suffix
		}
	}
	if best == "" {
		return nil
	}
	return s.loaders[best]
}

// State reports the load state of h.
func (s *Store) State(h Handle) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[h]; ok {
		return e.state
	}
	return NotRequested
}

// Err returns the failure for a handle in the Failed state.
func (s *Store) Err(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[h]; ok {
		return e.err
	}
	return nil
}

// Wait blocks until every load requested so far has finished.
func (s *Store) Wait() {
	s.wg.Wait()
}

// Get returns the decoded value for h once loaded. It reports false while the
// asset is loading, failed, or holds a different type.
func Get[T any](s *Store, h Handle) (T, bool) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[h]
	if !ok || e.state != Loaded {
		return zero, false
	}
	v, ok := e.value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
