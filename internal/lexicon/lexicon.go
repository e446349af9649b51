// Package lexicon holds the in-memory emotion lexicon behind an atomically
// swapped snapshot. Readers on the scoring hot path never take a lock; the
// rare writers (bulk load, admin curation, expansion approval) build a new
// snapshot from the previous one and publish it with a single pointer swap.
package lexicon

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/logging"
	"github.com/in-tuned/emotion-engine/internal/textproc"
)

// maxEntryWeight bounds a single component of an entry weight vector.
// Curated data tops out around 3.0; anything far above that is a bad row.
const maxEntryWeight = 5.0

// Key identifies an entry within a snapshot.
type Key struct {
	Language string
	Phrase   string
}

// Snapshot is one immutable, internally consistent view of the lexicon.
type Snapshot struct {
	version int64
	tables  map[string]map[string]domain.LexiconEntry
	maxLen  map[string]int
}

// Version returns the monotonically increasing snapshot version.
func (s *Snapshot) Version() int64 { return s.version }

// Size returns the total entry count across languages.
func (s *Snapshot) Size() int {
	n := 0
	for _, t := range s.tables {
		n += len(t)
	}
	return n
}

// Lookup finds the entry for a folded phrase key in a language.
func (s *Snapshot) Lookup(language, key string) (domain.LexiconEntry, bool) {
	t, ok := s.tables[language]
	if !ok {
		return domain.LexiconEntry{}, false
	}
	e, ok := t[key]
	return e, ok
}

// MaxPhraseTokens returns the longest phrase length, in tokens, present for
// a language. The scorer uses it to bound its phrase-match window.
func (s *Snapshot) MaxPhraseTokens(language string) int {
	return s.maxLen[language]
}

// Entries returns a copy of all entries for a language, for the admin API.
func (s *Snapshot) Entries(language string) []domain.LexiconEntry {
	t := s.tables[language]
	out := make([]domain.LexiconEntry, 0, len(t))
	for _, e := range t {
		out = append(out, e)
	}
	return out
}

// FoldPhrase produces the canonical lookup key for a phrase: lowercase,
// diacritic-folded, single-space separated.
func FoldPhrase(phrase string) string {
	fields := strings.Fields(textproc.Fold(phrase))
	return strings.Join(fields, " ")
}

// Store owns the active snapshot pointer. Reads are lock-free; writes are
// serialized by a mutex and publish via copy-and-swap.
type Store struct {
	snap atomic.Pointer[Snapshot]
	mu   sync.Mutex
	log  logging.Logger
}

// NewStore returns a store holding an empty snapshot.
func NewStore(log logging.Logger) *Store {
	st := &Store{log: log}
	st.snap.Store(&Snapshot{
		version: 0,
		tables:  map[string]map[string]domain.LexiconEntry{},
		maxLen:  map[string]int{},
	})
	return st
}

// Snapshot returns the current active snapshot.
func (st *Store) Snapshot() *Snapshot {
	return st.snap.Load()
}

// Contains reports whether a folded word has an entry in a language. It
// implements the language detector's coverage signal.
func (st *Store) Contains(language, word string) bool {
	_, ok := st.Snapshot().Lookup(language, FoldPhrase(word))
	return ok
}

// Get returns the active entry for a (language, phrase) pair.
func (st *Store) Get(language, phrase string) (domain.LexiconEntry, bool) {
	return st.Snapshot().Lookup(language, FoldPhrase(phrase))
}

// Load bulk-inserts entries over the current snapshot. Malformed entries are
// rejected individually with a logged cause; one bad row never aborts the
// load. Returns the accepted and rejected counts.
func (st *Store) Load(entries []domain.LexiconEntry) (accepted, rejected int) {
	st.mu.Lock()
	defer st.mu.Unlock()

	next := st.cloneLocked()
	for i := range entries {
		if err := validate(&entries[i]); err != nil {
			rejected++
			st.log.Warn("lexicon entry rejected",
				logging.String("language", entries[i].Language),
				logging.String("phrase", entries[i].Phrase),
				logging.Err(err))
			continue
		}
		next.put(entries[i])
		accepted++
	}
	st.publishLocked(next)
	return accepted, rejected
}

// Apply upserts and removes entries in one atomic publish. Used by admin
// curation and expansion approval. Invalid upserts fail the whole call since
// admin writes are small and intentional.
func (st *Store) Apply(upserts []domain.LexiconEntry, removals []Key) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	for i := range upserts {
		if err := validate(&upserts[i]); err != nil {
			return fmt.Errorf("upsert %q/%q: %w", upserts[i].Language, upserts[i].Phrase, err)
		}
	}

	next := st.cloneLocked()
	for i := range upserts {
		next.put(upserts[i])
	}
	for _, k := range removals {
		if t, ok := next.tables[k.Language]; ok {
			delete(t, FoldPhrase(k.Phrase))
		}
	}
	next.recomputeMaxLen()
	st.publishLocked(next)
	return nil
}

func (st *Store) cloneLocked() *Snapshot {
	cur := st.snap.Load()
	next := &Snapshot{
		version: cur.version + 1,
		tables:  make(map[string]map[string]domain.LexiconEntry, len(cur.tables)),
		maxLen:  make(map[string]int, len(cur.maxLen)),
	}
	for lang, t := range cur.tables {
		nt := make(map[string]domain.LexiconEntry, len(t))
		for k, e := range t {
			nt[k] = e
		}
		next.tables[lang] = nt
	}
	for lang, n := range cur.maxLen {
		next.maxLen[lang] = n
	}
	return next
}

func (st *Store) publishLocked(next *Snapshot) {
	st.snap.Store(next)
	st.log.Debug("lexicon snapshot published",
		logging.Int64("version", next.version),
		logging.Int("entries", next.Size()))
}

func (s *Snapshot) put(e domain.LexiconEntry) {
	key := FoldPhrase(e.Phrase)
	t, ok := s.tables[e.Language]
	if !ok {
		t = make(map[string]domain.LexiconEntry)
		s.tables[e.Language] = t
	}
	t[key] = e

	if n := len(strings.Fields(key)); n > s.maxLen[e.Language] {
		s.maxLen[e.Language] = n
	}
}

func (s *Snapshot) recomputeMaxLen() {
	s.maxLen = make(map[string]int, len(s.tables))
	for lang, t := range s.tables {
		for k := range t {
			if n := len(strings.Fields(k)); n > s.maxLen[lang] {
				s.maxLen[lang] = n
			}
		}
	}
}

func validate(e *domain.LexiconEntry) error {
	if strings.TrimSpace(e.Language) == "" {
		return fmt.Errorf("empty language")
	}
	if FoldPhrase(e.Phrase) == "" {
		return fmt.Errorf("empty phrase")
	}
	if !e.Weights.Finite() {
		return fmt.Errorf("non-finite weight")
	}
	for i, w := range e.Weights {
		if w < 0 {
			return fmt.Errorf("negative weight for %s", domain.Emotion(i))
		}
		if w > maxEntryWeight {
			return fmt.Errorf("weight %.2f for %s exceeds limit", w, domain.Emotion(i))
		}
	}
	if e.Weights.IsZero() {
		return fmt.Errorf("all-zero weights")
	}
	if e.Confidence < 0 || e.Confidence > 1 {
		return fmt.Errorf("confidence %.2f out of range", e.Confidence)
	}
	if e.Provenance == "" {
		e.Provenance = domain.ProvenanceCurated
	}
	return nil
}
