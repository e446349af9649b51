package expansion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/in-tuned/emotion-engine/internal/cache"
	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/logging"
	"github.com/in-tuned/emotion-engine/internal/telemetry"
)

// One provider per test binary; prometheus collectors register globally.
var testTelemetry = telemetry.NewProvider()

type mockProvider struct {
	name     string
	langs    map[string]bool
	defs     []Definition
	err      error
	calls    int
	lastWord string
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Supports(lang string) bool { return m.langs[lang] }

func (m *mockProvider) Lookup(_ context.Context, word, _ string) ([]Definition, error) {
	m.calls++
	m.lastWord = word
	if m.err != nil {
		return nil, m.err
	}
	return m.defs, nil
}

type mockCandidateRepo struct {
	nextID     int64
	candidates map[int64]*domain.ExternalLexiconCandidate
	createErr  error
}

func newMockCandidateRepo() *mockCandidateRepo {
	return &mockCandidateRepo{candidates: make(map[int64]*domain.ExternalLexiconCandidate)}
}

func (r *mockCandidateRepo) Create(_ context.Context, c *domain.ExternalLexiconCandidate) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	c.ID = r.nextID
	stored := *c
	r.candidates[c.ID] = &stored
	return nil
}

func (r *mockCandidateRepo) GetByID(_ context.Context, id int64) (*domain.ExternalLexiconCandidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *mockCandidateRepo) List(_ context.Context, status domain.CandidateStatus, _ int) ([]domain.ExternalLexiconCandidate, error) {
	var out []domain.ExternalLexiconCandidate
	for _, c := range r.candidates {
		if c.Status == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *mockCandidateRepo) UpdateStatus(_ context.Context, id int64, status domain.CandidateStatus) error {
	c, ok := r.candidates[id]
	if !ok {
		return errors.New("candidate not found")
	}
	c.Status = status
	return nil
}

type mockSink struct {
	entries []domain.LexiconEntry
	err     error
}

func (s *mockSink) Upsert(_ context.Context, entry domain.LexiconEntry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func newTestService(repo CandidateRepository, sink EntrySink, providers ...Provider) *Service {
	return NewService(ServiceParams{
		Providers:      providers,
		Cache:          cache.NewMemory(),
		CacheTTL:       time.Minute,
		RequestTimeout: time.Second,
		RatePerSecond:  100,
		RateBurst:      10,
		Repository:     repo,
		Sink:           sink,
		Telemetry:      testTelemetry,
		Logger:         logging.Nop(),
	})
}

func joyfulProvider() *mockProvider {
	return &mockProvider{
		name:  "free_dictionary",
		langs: map[string]bool{"en": true},
		defs: []Definition{{
			Word:        "stoked",
			Language:    "en",
			Definitions: []string{"a feeling of great happiness and delight"},
			Source:      "free_dictionary",
		}},
	}
}

func TestLookupCreatesPendingCandidate(t *testing.T) {
	repo := newMockCandidateRepo()
	prov := joyfulProvider()
	svc := newTestService(repo, &mockSink{}, prov)

	cand, err := svc.Lookup(context.Background(), " Stoked ", "en")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if cand.Status != domain.CandidatePending {
		t.Errorf("new candidates must be pending, got %s", cand.Status)
	}
	if cand.Word != "stoked" {
		t.Errorf("the looked-up word must be folded, got %q", cand.Word)
	}
	if prov.lastWord != "stoked" {
		t.Errorf("the provider must receive the folded word, got %q", prov.lastWord)
	}
	if cand.ProposedWeights[domain.Joy] == 0 {
		t.Error("expected a joy weight on the proposal")
	}
	if len(repo.candidates) != 1 {
		t.Errorf("expected 1 persisted candidate, got %d", len(repo.candidates))
	}
}

func TestLookupServesRepeatsFromCache(t *testing.T) {
	repo := newMockCandidateRepo()
	prov := joyfulProvider()
	svc := newTestService(repo, &mockSink{}, prov)

	first, err := svc.Lookup(context.Background(), "stoked", "en")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	second, err := svc.Lookup(context.Background(), "stoked", "en")
	if err != nil {
		t.Fatalf("cached lookup failed: %v", err)
	}

	if prov.calls != 1 {
		t.Errorf("repeat lookups within the TTL must not reach the provider, got %d calls", prov.calls)
	}
	if second.ID != first.ID || second.Word != first.Word {
		t.Error("the cached candidate must match the original")
	}
	if len(repo.candidates) != 1 {
		t.Errorf("a cache hit must not create another candidate, got %d", len(repo.candidates))
	}
}

func TestLookupCachesNoSignalOutcome(t *testing.T) {
	prov := &mockProvider{
		name:  "free_dictionary",
		langs: map[string]bool{"en": true},
		err:   ErrNoDefinitions,
	}
	svc := newTestService(newMockCandidateRepo(), &mockSink{}, prov)

	for i := 0; i < 2; i++ {
		if _, err := svc.Lookup(context.Background(), "zzyzx", "en"); !errors.Is(err, ErrNoSignal) {
			t.Fatalf("lookup %d: expected ErrNoSignal, got %v", i, err)
		}
	}
	if prov.calls != 1 {
		t.Errorf("repeat lookups of a fruitless word must not reach the provider, got %d calls", prov.calls)
	}
}

func TestLookupCachesLowConfidenceOutcome(t *testing.T) {
	prov := &mockProvider{
		name:  "free_dictionary",
		langs: map[string]bool{"en": true},
		defs: []Definition{{
			Definitions: []string{"excitedly jumping around"},
			Source:      "free_dictionary",
		}},
	}
	svc := newTestService(newMockCandidateRepo(), &mockSink{}, prov)

	for i := 0; i < 2; i++ {
		if _, err := svc.Lookup(context.Background(), "word", "en"); !errors.Is(err, ErrLowConfidence) {
			t.Fatalf("lookup %d: expected ErrLowConfidence, got %v", i, err)
		}
	}
	if prov.calls != 1 {
		t.Errorf("repeat lookups of a rejected word must not reach the provider, got %d calls", prov.calls)
	}
}

func TestLookupAbsorbsProviderFailure(t *testing.T) {
	prov := &mockProvider{
		name:  "free_dictionary",
		langs: map[string]bool{"en": true},
		err:   errors.New("upstream 500"),
	}
	svc := newTestService(newMockCandidateRepo(), &mockSink{}, prov)

	_, err := svc.Lookup(context.Background(), "word", "en")
	if !errors.Is(err, ErrNoSignal) {
		t.Errorf("provider failures must surface as no signal, got %v", err)
	}

	// The failed outcome is cached; the provider is not retried immediately.
	if _, err := svc.Lookup(context.Background(), "word", "en"); !errors.Is(err, ErrNoSignal) {
		t.Errorf("expected ErrNoSignal on the repeat lookup, got %v", err)
	}
	if prov.calls != 1 {
		t.Errorf("expected 1 provider call across repeat lookups, got %d", prov.calls)
	}
}

func TestLookupNotFound(t *testing.T) {
	prov := &mockProvider{
		name:  "free_dictionary",
		langs: map[string]bool{"en": true},
		err:   ErrNoDefinitions,
	}
	svc := newTestService(newMockCandidateRepo(), &mockSink{}, prov)

	if _, err := svc.Lookup(context.Background(), "asdfgh", "en"); !errors.Is(err, ErrNoSignal) {
		t.Errorf("expected ErrNoSignal, got %v", err)
	}
}

func TestLookupRejectsLowConfidence(t *testing.T) {
	prov := &mockProvider{
		name:  "free_dictionary",
		langs: map[string]bool{"en": true},
		defs: []Definition{{
			Definitions: []string{"excitedly jumping around"},
			Source:      "free_dictionary",
		}},
	}
	repo := newMockCandidateRepo()
	svc := newTestService(repo, &mockSink{}, prov)

	if _, err := svc.Lookup(context.Background(), "word", "en"); !errors.Is(err, ErrLowConfidence) {
		t.Errorf("expected ErrLowConfidence, got %v", err)
	}
	if len(repo.candidates) != 0 {
		t.Error("low-confidence proposals must not be persisted")
	}
}

func TestLookupSkipsUnsupportedProviders(t *testing.T) {
	prov := joyfulProvider() // en only
	svc := newTestService(newMockCandidateRepo(), &mockSink{}, prov)

	if _, err := svc.Lookup(context.Background(), "feliz", "es"); !errors.Is(err, ErrNoSignal) {
		t.Errorf("expected ErrNoSignal, got %v", err)
	}
	if prov.calls != 0 {
		t.Errorf("a provider must not be queried for unsupported languages, got %d calls", prov.calls)
	}
}

func TestApprovePromotesCandidate(t *testing.T) {
	repo := newMockCandidateRepo()
	sink := &mockSink{}
	svc := newTestService(repo, sink, joyfulProvider())

	cand, err := svc.Lookup(context.Background(), "stoked", "en")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	approved, err := svc.Approve(context.Background(), cand.ID)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != domain.CandidateAccepted {
		t.Errorf("expected accepted, got %s", approved.Status)
	}

	if len(sink.entries) != 1 {
		t.Fatalf("expected 1 entry applied to the lexicon, got %d", len(sink.entries))
	}
	entry := sink.entries[0]
	if entry.Phrase != "stoked" || entry.Language != "en" {
		t.Errorf("unexpected entry %q/%q", entry.Language, entry.Phrase)
	}
	if entry.Provenance != domain.ProvenanceExternal {
		t.Errorf("approved entries must carry external provenance, got %s", entry.Provenance)
	}

	// A decided candidate cannot be approved again.
	if _, err := svc.Approve(context.Background(), cand.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestApproveSinkFailureKeepsCandidatePending(t *testing.T) {
	repo := newMockCandidateRepo()
	sink := &mockSink{err: errors.New("db down")}
	svc := newTestService(repo, sink, joyfulProvider())

	cand, err := svc.Lookup(context.Background(), "stoked", "en")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if _, err := svc.Approve(context.Background(), cand.ID); err == nil {
		t.Fatal("expected approve to fail when the sink fails")
	}
	stored, _ := repo.GetByID(context.Background(), cand.ID)
	if stored.Status != domain.CandidatePending {
		t.Errorf("a failed approval must leave the candidate pending, got %s", stored.Status)
	}
}

func TestRejectCandidate(t *testing.T) {
	repo := newMockCandidateRepo()
	sink := &mockSink{}
	svc := newTestService(repo, sink, joyfulProvider())

	cand, err := svc.Lookup(context.Background(), "stoked", "en")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	rejected, err := svc.Reject(context.Background(), cand.ID)
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != domain.CandidateRejected {
		t.Errorf("expected rejected, got %s", rejected.Status)
	}
	if len(sink.entries) != 0 {
		t.Error("rejection must never touch the lexicon")
	}

	if _, err := svc.Reject(context.Background(), cand.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestDecideUnknownCandidate(t *testing.T) {
	svc := newTestService(newMockCandidateRepo(), &mockSink{}, joyfulProvider())

	if _, err := svc.Approve(context.Background(), 404); !errors.Is(err, ErrCandidateNotFound) {
		t.Errorf("expected ErrCandidateNotFound, got %v", err)
	}
	if _, err := svc.Reject(context.Background(), 404); !errors.Is(err, ErrCandidateNotFound) {
		t.Errorf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestListCandidates(t *testing.T) {
	repo := newMockCandidateRepo()
	svc := newTestService(repo, &mockSink{}, joyfulProvider())

	if _, err := svc.Lookup(context.Background(), "stoked", "en"); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	pending, err := svc.ListCandidates(context.Background(), domain.CandidatePending, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("expected 1 pending candidate, got %d", len(pending))
	}

	accepted, err := svc.ListCandidates(context.Background(), domain.CandidateAccepted, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(accepted) != 0 {
		t.Errorf("expected no accepted candidates, got %d", len(accepted))
	}
}
