package lexicon

import (
	"context"
	"fmt"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/logging"
)

// Repository is the persistence layer behind the manager. Satisfied by the
// Postgres lexicon repository; nil-safe wrappers let tests run without a
// database.
type Repository interface {
	Upsert(ctx context.Context, entry domain.LexiconEntry) error
	Delete(ctx context.Context, language, phrase string) error
	ListAll(ctx context.Context) ([]domain.LexiconEntry, error)
}

// Manager coordinates lexicon writes: persist to the repository first, then
// publish a new in-memory snapshot. The database is the durable source of
// truth; the snapshot only changes after the row is safely down.
type Manager struct {
	store *Store
	repo  Repository
	log   logging.Logger
}

// NewManager builds a manager. repo may be nil for in-memory-only operation.
func NewManager(store *Store, repo Repository, log logging.Logger) *Manager {
	return &Manager{store: store, repo: repo, log: log}
}

// Store exposes the underlying snapshot store for readers.
func (m *Manager) Store() *Store { return m.store }

// Upsert validates, persists and publishes one entry.
func (m *Manager) Upsert(ctx context.Context, entry domain.LexiconEntry) error {
	if m.repo != nil {
		if err := m.repo.Upsert(ctx, entry); err != nil {
			return fmt.Errorf("persist entry: %w", err)
		}
	}
	if err := m.store.Apply([]domain.LexiconEntry{entry}, nil); err != nil {
		return err
	}
	m.log.Info("lexicon entry upserted",
		logging.String("language", entry.Language),
		logging.String("phrase", entry.Phrase),
		logging.String("provenance", string(entry.Provenance)))
	return nil
}

// Delete removes an entry from the database and the snapshot.
func (m *Manager) Delete(ctx context.Context, language, phrase string) error {
	if _, ok := m.store.Get(language, phrase); !ok {
		return fmt.Errorf("entry %q/%q not found", language, phrase)
	}
	if m.repo != nil {
		if err := m.repo.Delete(ctx, language, phrase); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}
	}
	if err := m.store.Apply(nil, []Key{{Language: language, Phrase: phrase}}); err != nil {
		return err
	}
	m.log.Info("lexicon entry deleted",
		logging.String("language", language),
		logging.String("phrase", phrase))
	return nil
}

// LoadFromRepository merges persisted entries over the current snapshot.
// Rows that fail validation are skipped individually, so one bad row in the
// database never takes the curated seed down with it.
func (m *Manager) LoadFromRepository(ctx context.Context) (accepted, rejected int, err error) {
	if m.repo == nil {
		return 0, 0, nil
	}
	entries, err := m.repo.ListAll(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list persisted entries: %w", err)
	}
	accepted, rejected = m.store.Load(entries)
	return accepted, rejected, nil
}
