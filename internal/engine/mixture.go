package engine

import (
	"math"

	"github.com/in-tuned/emotion-engine/internal/domain"
)

// Normalize converts an arousal-boosted raw vector into a mixture profile.
// Below the low-signal floor the mixture is uniformly zero: silence is
// preferred over a dominant emotion fabricated from noise.
func (t *Tuning) Normalize(boosted domain.Vector) domain.EmotionProfile {
	profile := domain.EmotionProfile{Raw: boosted}

	total := boosted.Sum()
	if total < t.LowSignalFloor {
		profile.LowSignal = true
		return profile
	}

	for i := range boosted {
		profile.Mixture[i] = boosted[i] / total
	}
	return profile
}

// BoostArousal applies the per-emotion arousal boost and clamps negatives
// left over from inverted (negated) contributions.
func (t *Tuning) BoostArousal(raw domain.Vector, arousal float64) domain.Vector {
	var out domain.Vector
	for i := range raw {
		out[i] = raw[i] * (1.0 + t.ArousalBeta[i]*arousal)
	}
	out.ClampNegative()
	return out
}

// Arousal combines normalized emphasis-cue counts into a single activation
// signal in [0, 1].
func (t *Tuning) Arousal(r *ScoreResult) float64 {
	norm := func(count int, scale float64) float64 {
		return math.Min(1.0, float64(count)/scale)
	}
	raw := 0.4*norm(r.ExclaimCount, 3) +
		0.3*norm(r.QuestionCount, 3) +
		0.3*norm(r.AllCapsCount, 3) +
		0.4*norm(r.ElongatedCount, 3) +
		0.4*norm(r.ProfanityCount, 2)
	return clamp01(raw)
}

// NetCertainty combines certainty and uncertainty markers with punctuation
// cues into a signed score in [-1, 1].
func (t *Tuning) NetCertainty(r *ScoreResult) float64 {
	norm := func(count int, scale float64) float64 {
		return math.Min(1.0, float64(count)/scale)
	}
	uncertainty := norm(r.UncertaintyCount, 4) + 0.4*norm(r.QuestionCount, 3)
	certainty := norm(r.CertaintyCount, 4) + 0.6*norm(r.ExclaimCount, 3)
	return math.Max(-1.0, math.Min(1.0, certainty-uncertainty))
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
