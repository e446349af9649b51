package engine

import "github.com/in-tuned/emotion-engine/internal/domain"

// Tuning collects the product-tuned scoring constants. None of these are
// mathematically derived; they are exposed as named fields so deployments
// can override them without touching the algorithm.
type Tuning struct {
	// Per-token weight modifiers applied inside the lookback window.
	IntensifierBoost float64
	DiminisherDamp   float64
	UncertaintyDamp  float64
	CertaintyBoost   float64
	ProfanityBoost   float64
	CapsBoost        float64
	ElongationBoost  float64
	MinAlpha         float64

	// NegationFactor scales a matched entry inside a negation window.
	// Negative values invert the contribution; the deriver clamps the
	// accumulated vector at zero.
	NegationFactor float64

	// ModifierWindow is how many preceding tokens are inspected for
	// intensifiers, diminishers and certainty markers.
	ModifierWindow int

	// Clause weighting. Text after a contrast marker ("but") usually
	// carries the writer's real state.
	ContrastWeight   float64
	SecondHalfWeight float64
	LastClauseWeight float64

	// ArousalBeta scales how strongly global arousal boosts each emotion.
	ArousalBeta domain.Vector
	// ValenceSign is each emotion's contribution direction on the
	// positive/negative affect axis.
	ValenceSign domain.Vector

	// SaturationScale controls the soft saturation of global intensity:
	// 1 - exp(-sum/scale).
	SaturationScale float64
	// MaxIntensity caps global intensity strictly below 1.
	MaxIntensity float64
	// CertaintyAdjustScale converts net certainty into an intensity
	// multiplier, clamped to [0.5, 1.4].
	CertaintyAdjustScale float64

	// LowSignalFloor is the raw-magnitude floor below which the mixture is
	// zeroed instead of fabricating a dominant emotion from noise.
	LowSignalFloor float64

	// MixedMargin is the top-two separation below which dominance is
	// considered ambiguous.
	MixedMargin float64
	// SecondaryMinShare is the minimum mixture share for reporting a
	// secondary emotion.
	SecondaryMinShare float64
	// DominantShare is the minimum top share for a single-dominant pattern.
	DominantShare float64
	// DiffuseCeiling is the top share below which the pattern is diffuse.
	DiffuseCeiling float64
}

// DefaultTuning returns the production constants.
func DefaultTuning() Tuning {
	return Tuning{
		IntensifierBoost: 0.5,
		DiminisherDamp:   0.3,
		UncertaintyDamp:  0.2,
		CertaintyBoost:   0.15,
		ProfanityBoost:   0.4,
		CapsBoost:        0.3,
		ElongationBoost:  0.2,
		MinAlpha:         0.2,
		NegationFactor:   -0.8,
		ModifierWindow:   3,

		ContrastWeight:   1.3,
		SecondHalfWeight: 1.1,
		LastClauseWeight: 1.05,

		ArousalBeta: domain.Vec(
			domain.Anger, 0.9,
			domain.Disgust, 0.5,
			domain.Fear, 0.9,
			domain.Joy, 0.7,
			domain.Sadness, 0.3,
			domain.Passion, 0.8,
			domain.Surprise, 1.0,
		),
		ValenceSign: domain.Vec(
			domain.Anger, -1.0,
			domain.Disgust, -1.0,
			domain.Fear, -1.0,
			domain.Joy, 1.0,
			domain.Sadness, -1.0,
			domain.Passion, 1.0,
			domain.Surprise, 0.4,
		),

		SaturationScale:      8.0,
		MaxIntensity:         0.995,
		CertaintyAdjustScale: 0.35,

		LowSignalFloor: 0.35,

		MixedMargin:       0.08,
		SecondaryMinShare: 0.15,
		DominantShare:     0.45,
		DiffuseCeiling:    0.30,
	}
}
