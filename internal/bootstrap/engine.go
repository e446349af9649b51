package bootstrap

import (
	"context"
	"fmt"

	"github.com/in-tuned/emotion-engine/internal/config"
	"github.com/in-tuned/emotion-engine/internal/engine"
	"github.com/in-tuned/emotion-engine/internal/language"
	"github.com/in-tuned/emotion-engine/internal/lexicon"
	"github.com/in-tuned/emotion-engine/internal/logging"
	"github.com/in-tuned/emotion-engine/internal/safety"
	"github.com/in-tuned/emotion-engine/internal/telemetry"
)

// EngineComponents holds the assembled analysis pipeline.
type EngineComponents struct {
	Store    *lexicon.Store
	Manager  *lexicon.Manager
	Detector *language.Detector
	Safety   *safety.Classifier
	Analyzer *engine.Analyzer
}

// SetupEngine loads the lexicon and wires the analysis pipeline. The curated
// seed goes in first, then persisted entries merge over it, so admin and
// expansion edits survive restarts and always win over the seed.
func SetupEngine(ctx context.Context, cfg *config.Config, db *DatabaseComponents, tele *telemetry.Provider, logger logging.Logger) (*EngineComponents, error) {
	profiles := language.DefaultProfiles()
	store := lexicon.NewStore(logger)

	seed := lexicon.SeedEntries()
	seed = append(seed, lexicon.Widen(seed, profiles)...)
	accepted, rejected := store.Load(seed)
	tele.RecordLexiconLoad(store.Snapshot().Size(), rejected)
	logger.Info("seed lexicon loaded",
		logging.Int("accepted", accepted),
		logging.Int("rejected", rejected))

	var repo lexicon.Repository
	if db != nil {
		repo = db.LexiconRepo
	}
	manager := lexicon.NewManager(store, repo, logger)
	if dbAccepted, dbRejected, err := manager.LoadFromRepository(ctx); err != nil {
		return nil, fmt.Errorf("load persisted lexicon: %w", err)
	} else if dbAccepted > 0 || dbRejected > 0 {
		tele.RecordLexiconLoad(store.Snapshot().Size(), dbRejected)
		logger.Info("persisted lexicon merged",
			logging.Int("accepted", dbAccepted),
			logging.Int("rejected", dbRejected))
	}

	detector := language.NewDetector(profiles, store, cfg.Analysis.DefaultLanguage)
	riskClassifier := safety.NewClassifier(logger)

	analyzer := engine.NewAnalyzer(engine.AnalyzerParams{
		Detector:      detector,
		Store:         store,
		Tuning:        engine.DefaultTuning(),
		Risk:          riskClassifier,
		Telemetry:     tele,
		Logger:        logger,
		MaxInputChars: cfg.Analysis.MaxInputChars,
		DefaultRegion: cfg.Safety.DefaultRegion,
	})

	return &EngineComponents{
		Store:    store,
		Manager:  manager,
		Detector: detector,
		Safety:   riskClassifier,
		Analyzer: analyzer,
	}, nil
}
