// Package engine implements the emotion scoring pipeline: lexicon matching,
// mixture normalization and metric derivation.
package engine

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/language"
	"github.com/in-tuned/emotion-engine/internal/lexicon"
	"github.com/in-tuned/emotion-engine/internal/logging"
	"github.com/in-tuned/emotion-engine/internal/telemetry"
	"github.com/in-tuned/emotion-engine/internal/textproc"
)

// The only errors surfaced to callers as rejected requests. Everything else
// is absorbed and logged.
var (
	ErrEmptyInput   = errors.New("input text is empty")
	ErrInputTooLong = errors.New("input text exceeds the configured maximum")
)

// RiskAssessor runs the independent safety pass.
type RiskAssessor interface {
	Assess(tokens []textproc.Token, lang, region string) domain.RiskAssessment
}

// Request is one analysis call.
type Request struct {
	Text       string
	LocaleHint string
	RegionHint string
}

// Analyzer wires the full pipeline. Analysis is stateless and synchronous;
// concurrent calls share nothing but the lexicon snapshot pointer.
type Analyzer struct {
	detector *language.Detector
	store    *lexicon.Store
	scorer   *Scorer
	tuning   Tuning
	risk     RiskAssessor
	tele     *telemetry.Provider
	log      logging.Logger

	maxInputChars int
	defaultRegion string
}

// AnalyzerParams collects Analyzer dependencies.
type AnalyzerParams struct {
	Detector      *language.Detector
	Store         *lexicon.Store
	Tuning        Tuning
	Risk          RiskAssessor
	Telemetry     *telemetry.Provider
	Logger        logging.Logger
	MaxInputChars int
	DefaultRegion string
}

// NewAnalyzer builds the pipeline.
func NewAnalyzer(p AnalyzerParams) *Analyzer {
	return &Analyzer{
		detector:      p.Detector,
		store:         p.Store,
		scorer:        NewScorer(p.Tuning),
		tuning:        p.Tuning,
		risk:          p.Risk,
		tele:          p.Telemetry,
		log:           p.Logger,
		maxInputChars: p.MaxInputChars,
		defaultRegion: p.DefaultRegion,
	}
}

// Analyze runs detection, scoring, normalization, derivation and the safety
// pass over one text. It holds a single lexicon snapshot for the whole call,
// so results are consistent even if an admin publishes mid-request.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*domain.AnalysisResult, error) {
	start := time.Now()
	ctx, span := a.tele.StartSpan(ctx, "engine.Analyze")
	defer span.End()

	text := textproc.Normalize(req.Text)
	if text == "" {
		a.tele.RecordAnalysisFailure(ctx, "empty_input")
		return nil, ErrEmptyInput
	}
	if len([]rune(text)) > a.maxInputChars {
		a.tele.RecordAnalysisFailure(ctx, "input_too_long")
		return nil, ErrInputTooLong
	}

	tokens := textproc.Tokenize(text)
	if textproc.CountWords(tokens) == 0 {
		a.tele.RecordAnalysisFailure(ctx, "empty_input")
		return nil, ErrEmptyInput
	}

	lang := a.detector.Detect(tokens, req.LocaleHint)
	profile := a.detector.Profile(lang)
	span.SetAttributes(attribute.String("language", lang))

	textproc.MarkNegation(tokens, profile.Negators(), a.tuning.ModifierWindow)

	snap := a.store.Snapshot()
	score := a.scorer.Score(text, tokens, snap, profile)

	arousal := a.tuning.Arousal(&score)
	boosted := a.tuning.BoostArousal(score.Raw, arousal)
	emotionProfile := a.tuning.Normalize(boosted)
	metrics := a.tuning.Derive(lang, emotionProfile, &score, arousal)

	region := req.RegionHint
	if region == "" {
		region = a.defaultRegion
	}
	risk := a.risk.Assess(tokens, lang, region)
	a.tele.RecordRiskLevel(ctx, string(risk.Level))

	result := &domain.AnalysisResult{
		Language:   lang,
		Profile:    emotionProfile,
		Dominant:   metrics.Dominant,
		Secondary:  metrics.Secondary,
		Current:    metrics.Current,
		MixedState: metrics.MixedState,
		Valence:    metrics.Valence,
		Activation: metrics.Activation,
		Intensity:  metrics.Intensity,
		Confidence: metrics.Confidence,
		Pattern:    metrics.Pattern,
		Prototype:  metrics.Prototype,
		Risk:       risk,
		Meta: domain.AnalysisMeta{
			WordCount:     score.WordCount,
			TotalTokens:   score.TotalTokens,
			MatchedTokens: score.MatchedTokens,
			SignalDensity: score.SignalDensity(),
			NetCertainty:  metrics.NetCertainty,
			Arousal:       arousal,
		},
	}

	elapsed := time.Since(start)
	a.tele.RecordAnalysis(ctx, lang, metrics.Dominant.String(),
		emotionProfile.LowSignal, metrics.MixedState, elapsed)
	a.log.Debug("analysis complete",
		logging.String("language", lang),
		logging.String("dominant", metrics.Dominant.String()),
		logging.Bool("low_signal", emotionProfile.LowSignal),
		logging.String("risk_level", string(risk.Level)),
		logging.Duration("duration", elapsed))

	return result, nil
}

// Snapshot exposes the active lexicon snapshot for diagnostics.
func (a *Analyzer) Snapshot() *lexicon.Snapshot {
	return a.store.Snapshot()
}
