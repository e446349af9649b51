package expansion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/in-tuned/emotion-engine/internal/breaker"
	"github.com/in-tuned/emotion-engine/internal/cache"
	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/logging"
	"github.com/in-tuned/emotion-engine/internal/telemetry"
	"github.com/in-tuned/emotion-engine/internal/textproc"
)

// Errors surfaced to API callers.
var (
	ErrNoSignal          = errors.New("definitions carried no emotion signal")
	ErrLowConfidence     = errors.New("proposal confidence below the acceptance threshold")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInvalidTransition = errors.New("candidate is not pending")
)

// minProposalConfidence rejects proposals whose evidence is too thin to be
// worth an admin's review.
const minProposalConfidence = 0.3

// cachedLookup is the cache envelope for one (word, language) key: either
// the stored candidate or the reason the lookup produced none. Negative
// outcomes are cached too, so a word that yields nothing does not reach the
// providers again on every retry.
type cachedLookup struct {
	Candidate *domain.ExternalLexiconCandidate `json:"candidate,omitempty"`
	Failure   string                           `json:"failure,omitempty"`
}

const (
	failureNoSignal      = "no_signal"
	failureLowConfidence = "low_confidence"
)

// CandidateRepository persists expansion candidates.
type CandidateRepository interface {
	Create(ctx context.Context, c *domain.ExternalLexiconCandidate) error
	GetByID(ctx context.Context, id int64) (*domain.ExternalLexiconCandidate, error)
	List(ctx context.Context, status domain.CandidateStatus, limit int) ([]domain.ExternalLexiconCandidate, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CandidateStatus) error
}

// EntrySink receives the entry of an approved candidate. Satisfied by the
// lexicon manager, which writes through to Postgres and swaps the snapshot.
type EntrySink interface {
	Upsert(ctx context.Context, entry domain.LexiconEntry) error
}

// Service coordinates external lookups: cache first, then rate-limited,
// circuit-broken, time-boxed provider calls. A usable proposal becomes a
// pending candidate; everything that fails is absorbed and reported as such.
type Service struct {
	providers []Provider
	cache     cache.TTLCache
	cacheTTL  time.Duration
	breakers  map[string]*breaker.Breaker
	limiter   *rate.Limiter
	timeout   time.Duration
	repo      CandidateRepository
	sink      EntrySink
	tele      *telemetry.Provider
	log       logging.Logger
}

// ServiceParams collects Service dependencies.
type ServiceParams struct {
	Providers      []Provider
	Cache          cache.TTLCache
	CacheTTL       time.Duration
	RequestTimeout time.Duration
	RatePerSecond  float64
	RateBurst      int
	Repository     CandidateRepository
	Sink           EntrySink
	Telemetry      *telemetry.Provider
	Logger         logging.Logger
}

// NewService builds the expansion service. One breaker per provider, so a
// flaky urban dictionary does not block free dictionary lookups.
func NewService(p ServiceParams) *Service {
	breakers := make(map[string]*breaker.Breaker, len(p.Providers))
	for _, prov := range p.Providers {
		name := prov.Name()
		log := p.Logger
		breakers[name] = breaker.New(breaker.Config{
			OnStateChange: func(from, to breaker.State) {
				log.Warn("expansion provider circuit state changed",
					logging.String("provider", name),
					logging.String("from", from.String()),
					logging.String("to", to.String()))
			},
		})
	}
	return &Service{
		providers: p.Providers,
		cache:     p.Cache,
		cacheTTL:  p.CacheTTL,
		breakers:  breakers,
		limiter:   rate.NewLimiter(rate.Limit(p.RatePerSecond), p.RateBurst),
		timeout:   p.RequestTimeout,
		repo:      p.Repository,
		sink:      p.Sink,
		tele:      p.Telemetry,
		log:       p.Logger,
	}
}

// Lookup resolves a word against the external providers and records the
// proposal as a pending candidate. Results are cached by (word, language);
// repeat lookups within the TTL never reach the network.
func (s *Service) Lookup(ctx context.Context, word, language string) (*domain.ExternalLexiconCandidate, error) {
	ctx, span := s.tele.StartSpan(ctx, "expansion.Lookup")
	defer span.End()

	word = textproc.Fold(textproc.Normalize(word))
	if word == "" {
		return nil, errors.New("word is empty")
	}
	key := language + "|" + word

	if payload, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var cached cachedLookup
		if err := json.Unmarshal(payload, &cached); err == nil {
			s.tele.RecordExpansionCacheHit()
			switch {
			case cached.Candidate != nil:
				return cached.Candidate, nil
			case cached.Failure == failureLowConfidence:
				return nil, ErrLowConfidence
			default:
				return nil, ErrNoSignal
			}
		}
		// corrupt cache entry, fall through to a fresh lookup
	} else if err != nil {
		s.log.Warn("expansion cache read failed", logging.Err(err))
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	defs := s.fetch(ctx, word, language)
	if len(defs) == 0 {
		s.cacheOutcome(ctx, key, cachedLookup{Failure: failureNoSignal}, s.negativeTTL())
		return nil, ErrNoSignal
	}

	proposal, ok := DeriveWeights(defs, language)
	if !ok {
		s.cacheOutcome(ctx, key, cachedLookup{Failure: failureNoSignal}, s.negativeTTL())
		return nil, ErrNoSignal
	}
	if proposal.Confidence < minProposalConfidence {
		s.cacheOutcome(ctx, key, cachedLookup{Failure: failureLowConfidence}, s.negativeTTL())
		return nil, ErrLowConfidence
	}

	cand := &domain.ExternalLexiconCandidate{
		Word:             word,
		Language:         language,
		ProposedWeights:  proposal.Weights,
		SourceDefinition: proposal.Definition,
		Source:           proposal.Source,
		Confidence:       proposal.Confidence,
		Status:           domain.CandidatePending,
	}
	if err := s.repo.Create(ctx, cand); err != nil {
		return nil, fmt.Errorf("persist candidate: %w", err)
	}

	s.cacheOutcome(ctx, key, cachedLookup{Candidate: cand}, s.cacheTTL)

	s.log.Info("expansion candidate created",
		logging.String("word", word),
		logging.String("language", language),
		logging.String("source", cand.Source),
		logging.Float64("confidence", cand.Confidence))
	return cand, nil
}

func (s *Service) cacheOutcome(ctx context.Context, key string, outcome cachedLookup, ttl time.Duration) {
	payload, err := json.Marshal(outcome)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, ttl); err != nil {
		s.log.Warn("expansion cache write failed", logging.Err(err))
	}
}

// negativeTTL is the shorter expiry for failed outcomes, so transient
// upstream trouble ages out before the regular TTL.
func (s *Service) negativeTTL() time.Duration {
	if ttl := s.cacheTTL / 4; ttl > 0 {
		return ttl
	}
	return s.cacheTTL
}

// fetch queries every provider that supports the language. Provider failures
// are logged and skipped; one healthy provider is enough.
func (s *Service) fetch(ctx context.Context, word, language string) []Definition {
	var all []Definition
	for _, prov := range s.providers {
		if !prov.Supports(language) {
			continue
		}
		start := time.Now()
		var defs []Definition
		err := s.breakers[prov.Name()].Execute(ctx, func() error {
			callCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()
			var lookupErr error
			defs, lookupErr = prov.Lookup(callCtx, word, language)
			return lookupErr
		})
		elapsed := time.Since(start)
		switch {
		case errors.Is(err, ErrNoDefinitions):
			s.tele.RecordExpansionLookup(prov.Name(), "not_found", elapsed)
		case errors.Is(err, breaker.ErrOpen):
			s.tele.RecordExpansionLookup(prov.Name(), "circuit_open", elapsed)
		case err != nil:
			s.tele.RecordExpansionLookup(prov.Name(), "error", elapsed)
			s.log.Warn("expansion provider lookup failed",
				logging.String("provider", prov.Name()),
				logging.String("word", word),
				logging.Err(err))
		default:
			s.tele.RecordExpansionLookup(prov.Name(), "ok", elapsed)
			all = append(all, defs...)
		}
	}
	return all
}

// ListCandidates returns stored candidates filtered by status.
func (s *Service) ListCandidates(ctx context.Context, status domain.CandidateStatus, limit int) ([]domain.ExternalLexiconCandidate, error) {
	return s.repo.List(ctx, status, limit)
}

// Approve promotes a pending candidate into the live lexicon with external
// provenance.
func (s *Service) Approve(ctx context.Context, id int64) (*domain.ExternalLexiconCandidate, error) {
	cand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, ErrCandidateNotFound
	}
	if cand.Status != domain.CandidatePending {
		return nil, ErrInvalidTransition
	}

	if err := s.sink.Upsert(ctx, cand.Entry()); err != nil {
		return nil, fmt.Errorf("apply candidate entry: %w", err)
	}
	if err := s.repo.UpdateStatus(ctx, id, domain.CandidateAccepted); err != nil {
		return nil, fmt.Errorf("update candidate status: %w", err)
	}
	cand.Status = domain.CandidateAccepted

	s.log.Info("expansion candidate approved",
		logging.Int64("candidate_id", id),
		logging.String("word", cand.Word),
		logging.String("language", cand.Language))
	return cand, nil
}

// Reject marks a pending candidate as rejected.
func (s *Service) Reject(ctx context.Context, id int64) (*domain.ExternalLexiconCandidate, error) {
	cand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, ErrCandidateNotFound
	}
	if cand.Status != domain.CandidatePending {
		return nil, ErrInvalidTransition
	}
	if err := s.repo.UpdateStatus(ctx, id, domain.CandidateRejected); err != nil {
		return nil, fmt.Errorf("update candidate status: %w", err)
	}
	cand.Status = domain.CandidateRejected
	return cand, nil
}
