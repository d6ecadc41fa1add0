// Package file implements the catalog repository over a single JSON document
// on disk. Every operation is a whole-document read-modify-write; an
// in-process mutex serializes mutations so two concurrent writers cannot
// silently drop each other's changes.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"github.com/entarch/systems-catalog/internal/core/domain"
)

const (
	idPrefix      = "SYS"
	idAlphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idSuffixLen   = 5
	maxIDAttempts = 5
)

// document is the on-disk layout: one top-level key wrapping the entries.
type document struct {
	Systems []domain.System `json:"systems"`
}

// Store owns the catalog document. All access goes through its methods;
// callers never see references into the loaded state.
type Store struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// NewStore creates a Store over the document at path. The file itself is
// created lazily by Init or the first mutation.
func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Init creates the document with an empty collection wrapper when it does not
// exist yet, so the first request never races file creation.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat catalog document: %w", err)
	}

	s.log.Info().Str("path", s.path).Msg("catalog document missing, creating empty collection")
	return s.save(&document{Systems: []domain.System{}})
}

// Ping verifies the document can be read and parsed. Used by readiness probes.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.load()
	return err
}

// List returns all entries in insertion order.
func (s *Store) List(ctx context.Context) ([]domain.System, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.System, len(doc.Systems))
	copy(out, doc.Systems)
	return out, nil
}

// Get returns the entry with the given id, or domain.ErrSystemNotFound.
func (s *Store) Get(ctx context.Context, id string) (domain.System, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return domain.System{}, err
	}
	for _, sys := range doc.Systems {
		if sys.ID == id {
			return sys, nil
		}
	}
	return domain.System{}, domain.ErrSystemNotFound
}

// Create assigns a fresh id and identical created_at/updated_at stamps,
// appends the entry, and persists the whole document.
func (s *Store) Create(ctx context.Context, sys domain.System) (domain.System, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return domain.System{}, err
	}

	id, err := s.newID(doc)
	if err != nil {
		return domain.System{}, err
	}

	now := time.Now().UTC()
	sys.ID = id
	sys.CreatedAt = now
	sys.UpdatedAt = now

	doc.Systems = append(doc.Systems, sys)
	if err := s.save(doc); err != nil {
		return domain.System{}, err
	}
	return sys, nil
}

// Update merges the patch onto the stored entry and refreshes updated_at.
// The id and created_at fields are untouched by construction: the patch
// cannot carry them.
func (s *Store) Update(ctx context.Context, id string, patch domain.SystemPatch) (domain.System, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return domain.System{}, err
	}
	for i := range doc.Systems {
		if doc.Systems[i].ID != id {
			continue
		}
		patch.Apply(&doc.Systems[i])
		doc.Systems[i].UpdatedAt = time.Now().UTC()
		if err := s.save(doc); err != nil {
			return domain.System{}, err
		}
		return doc.Systems[i], nil
	}
	return domain.System{}, domain.ErrSystemNotFound
}

// Delete removes the entry with the given id. Hard removal, no tombstones.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	for i := range doc.Systems {
		if doc.Systems[i].ID != id {
			continue
		}
		doc.Systems = append(doc.Systems[:i], doc.Systems[i+1:]...)
		return s.save(doc)
	}
	return domain.ErrSystemNotFound
}

// load reads and parses the whole document. A missing file yields an empty
// collection; a file that exists but does not parse is reported as corrupt
// rather than silently treated as empty, so a bad document cannot wipe the
// catalog on the next write.
func (s *Store) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &document{Systems: []domain.System{}}, nil
		}
		return nil, fmt.Errorf("read catalog document: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Error().Err(err).Str("path", s.path).
			Msg("catalog document is not valid JSON; refusing to continue — fix or remove the file")
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptDocument, s.path, err)
	}
	if doc.Systems == nil {
		doc.Systems = []domain.System{}
	}
	return &doc, nil
}

// save overwrites the whole document. The payload is written to a temp file
// in the same directory and renamed into place so readers never observe a
// half-written document.
func (s *Store) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write catalog document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp document: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace catalog document: %w", err)
	}
	return nil
}

// newID generates a human-scannable id: SYS-<base36 unix ts>-<random suffix>,
// uppercased. Collision-resistant, not collision-proof, so the result is
// checked against existing ids and regenerated on the (unlikely) hit.
func (s *Store) newID(doc *document) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := generateSystemID()
		if err != nil {
			return "", err
		}
		if !containsID(doc.Systems, id) {
			return id, nil
		}
		s.log.Warn().Str("id", id).Msg("system id collision, regenerating")
	}
	return "", fmt.Errorf("could not generate a unique system id after %d attempts", maxIDAttempts)
}

func generateSystemID() (string, error) {
	suffix, err := gonanoid.Generate(idAlphabet, idSuffixLen)
	if err != nil {
		return "", fmt.Errorf("generate id suffix: %w", err)
	}
	ts := strings.ToUpper(strconv.FormatInt(time.Now().Unix(), 36))
	return fmt.Sprintf("%s-%s-%s", idPrefix, ts, suffix), nil
}

func containsID(systems []domain.System, id string) bool {
	for _, sys := range systems {
		if sys.ID == id {
			return true
		}
	}
	return false
}
