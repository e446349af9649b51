package api

import (
	"fmt"
	"time"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/engine"
)

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
	Region   string `json:"region"`
}

// UpsertEntryRequest creates or replaces a lexicon entry. Weights are keyed
// by emotion name; absent emotions default to zero.
type UpsertEntryRequest struct {
	Language   string             `json:"language" binding:"required"`
	Phrase     string             `json:"phrase"   binding:"required"`
	Weights    map[string]float64 `json:"weights"  binding:"required"`
	Confidence float64            `json:"confidence"`
}

// LookupRequest is the body of POST /api/v1/expansion/lookup.
type LookupRequest struct {
	Word     string `json:"word"     binding:"required"`
	Language string `json:"language" binding:"required"`
}

// MixtureRow is one emotion's share of the mixture, with a label localized
// to the resolved language.
type MixtureRow struct {
	ID      string  `json:"id"`
	Percent float64 `json:"percent"`
	Label   string  `json:"label"`
}

// AnalysisResults is the derived-metrics block of an analysis document.
type AnalysisResults struct {
	Dominant   string  `json:"dominant"`
	Current    string  `json:"current"`
	Secondary  *string `json:"secondary,omitempty"`
	MixedState bool    `json:"mixed_state"`
	Valence    float64 `json:"valence"`
	Activation float64 `json:"activation"`
	Intensity  string  `json:"intensity"`
	Confidence float64 `json:"confidence"`
	Pattern    string  `json:"pattern"`
	Prototype  string  `json:"prototype"`
}

// AnalysisMeta carries the diagnostics block of an analysis document.
type AnalysisMeta struct {
	WordCount     int     `json:"word_count"`
	SignalDensity float64 `json:"signal_density"`
	LowSignal     bool    `json:"low_signal"`
}

// AnalysisResponse is the document returned by POST /api/v1/analyze. The
// mixture always has one row per core emotion, percents in [0,100].
type AnalysisResponse struct {
	Language    string                `json:"language"`
	CoreMixture []MixtureRow          `json:"coreMixture"`
	Results     AnalysisResults       `json:"results"`
	Risk        domain.RiskAssessment `json:"risk"`
	Meta        AnalysisMeta          `json:"meta"`
}

func toAnalysisResponse(r *domain.AnalysisResult) AnalysisResponse {
	rows := make([]MixtureRow, 0, domain.NumEmotions)
	for _, e := range domain.Emotions {
		rows = append(rows, MixtureRow{
			ID:      e.String(),
			Percent: r.Profile.Mixture[e] * 100,
			Label:   engine.EmotionLabel(r.Language, e),
		})
	}

	var secondary *string
	if r.Secondary != nil {
		s := r.Secondary.String()
		secondary = &s
	}

	return AnalysisResponse{
		Language:    r.Language,
		CoreMixture: rows,
		Results: AnalysisResults{
			Dominant:   r.Dominant.String(),
			Current:    r.Current,
			Secondary:  secondary,
			MixedState: r.MixedState,
			Valence:    r.Valence,
			Activation: r.Activation,
			Intensity:  string(r.Intensity),
			Confidence: r.Confidence,
			Pattern:    string(r.Pattern),
			Prototype:  r.Prototype,
		},
		Risk: r.Risk,
		Meta: AnalysisMeta{
			WordCount:     r.Meta.WordCount,
			SignalDensity: r.Meta.SignalDensity,
			LowSignal:     r.Profile.LowSignal,
		},
	}
}

// EntryResponse is one lexicon entry with weights keyed by emotion name.
type EntryResponse struct {
	Language   string             `json:"language"`
	Phrase     string             `json:"phrase"`
	Weights    map[string]float64 `json:"weights"`
	Provenance string             `json:"provenance"`
	Confidence float64            `json:"confidence"`
}

// EntriesListResponse is a list of entries for one language.
type EntriesListResponse struct {
	Language string          `json:"language"`
	Entries  []EntryResponse `json:"entries"`
	Total    int             `json:"total"`
}

// CandidateResponse is one expansion candidate for admin review.
type CandidateResponse struct {
	ID               int64              `json:"id"`
	Word             string             `json:"word"`
	Language         string             `json:"language"`
	ProposedWeights  map[string]float64 `json:"proposed_weights"`
	SourceDefinition string             `json:"source_definition"`
	Source           string             `json:"source"`
	Confidence       float64            `json:"confidence"`
	Status           string             `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
}

// CandidatesListResponse is a list of candidates filtered by status.
type CandidatesListResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Total      int                 `json:"total"`
}

// vectorToMap renders only the nonzero components, keeping payloads sparse.
func vectorToMap(v domain.Vector) map[string]float64 {
	out := make(map[string]float64)
	for _, e := range domain.Emotions {
		if v[e] != 0 {
			out[e.String()] = v[e]
		}
	}
	return out
}

// vectorFromMap parses named weights into a Vector, rejecting unknown names.
func vectorFromMap(weights map[string]float64) (domain.Vector, error) {
	var v domain.Vector
	for name, w := range weights {
		e, err := domain.ParseEmotion(name)
		if err != nil {
			return v, fmt.Errorf("invalid weights: %w", err)
		}
		v[e] = w
	}
	return v, nil
}

func toEntryResponse(e domain.LexiconEntry) EntryResponse {
	return EntryResponse{
		Language:   e.Language,
		Phrase:     e.Phrase,
		Weights:    vectorToMap(e.Weights),
		Provenance: string(e.Provenance),
		Confidence: e.Confidence,
	}
}

func toCandidateResponse(c *domain.ExternalLexiconCandidate) CandidateResponse {
	return CandidateResponse{
		ID:               c.ID,
		Word:             c.Word,
		Language:         c.Language,
		ProposedWeights:  vectorToMap(c.ProposedWeights),
		SourceDefinition: c.SourceDefinition,
		Source:           c.Source,
		Confidence:       c.Confidence,
		Status:           string(c.Status),
		CreatedAt:        c.CreatedAt,
	}
}
