package engine

import (
	"math"

	"github.com/in-tuned/emotion-engine/internal/domain"
)

// blendBias resolves which emotion names a near-tied pair. Keys are ordered
// by canonical emotion order, earlier first.
var blendBias = map[[2]domain.Emotion]domain.Emotion{
	{domain.Anger, domain.Sadness}: domain.Sadness,
	{domain.Anger, domain.Disgust}: domain.Anger,
	{domain.Joy, domain.Passion}:   domain.Passion,
	{domain.Fear, domain.Surprise}: domain.Fear,
	{domain.Joy, domain.Surprise}:  domain.Joy,
}

// Metrics is everything the deriver computes on top of a mixture profile.
type Metrics struct {
	Dominant   domain.Emotion
	Secondary  *domain.Emotion
	Current    string
	MixedState bool
	Valence    float64
	Activation float64
	Intensity  domain.IntensityBucket
	Confidence float64
	Pattern    domain.Pattern
	Prototype  string

	GlobalIntensity float64
	NetCertainty    float64
	Arousal         float64
}

// Derive computes the caller-facing metrics from the normalized profile and
// the scoring pass diagnostics. locale selects the label set for the current
// wording. All ranking uses fixed canonical emotion order for tie-breaking;
// results are fully deterministic.
func (t *Tuning) Derive(locale string, profile domain.EmotionProfile, res *ScoreResult, arousal float64) Metrics {
	m := Metrics{Arousal: arousal}
	m.NetCertainty = t.NetCertainty(res)

	top, topShare := profile.Mixture.Max()
	second, secondShare := secondMax(profile.Mixture, top)

	m.Dominant = top
	delta := topShare - secondShare

	if secondShare >= t.SecondaryMinShare {
		s := second
		m.Secondary = &s
	}
	m.MixedState = !profile.LowSignal && secondShare > 0 && delta < t.MixedMargin

	m.GlobalIntensity = t.globalIntensity(profile, res, m.NetCertainty, topShare)
	m.Intensity = bucketIntensity(topShare * m.GlobalIntensity * 100.0)

	m.Valence = t.valence(profile.Mixture)
	m.Activation = t.activation(profile.Mixture, arousal)
	m.Confidence = t.confidence(profile, res, delta, m.GlobalIntensity, m.NetCertainty)
	m.Pattern = t.pattern(profile, topShare, delta)
	m.Prototype = closestPrototype(profile)
	m.Current = t.currentLabel(locale, profile, top, second, secondShare, delta, m.Intensity)
	return m
}

func secondMax(v domain.Vector, top domain.Emotion) (domain.Emotion, float64) {
	best := domain.Emotion(-1)
	bestVal := -1.0
	for i := 0; i < domain.NumEmotions; i++ {
		if domain.Emotion(i) == top {
			continue
		}
		if v[i] > bestVal {
			best = domain.Emotion(i)
			bestVal = v[i]
		}
	}
	if bestVal < 0 {
		return top, 0
	}
	return best, bestVal
}

// globalIntensity soft-saturates the raw magnitude, scales it by the
// certainty adjustment and gates weak ambiguous signals.
func (t *Tuning) globalIntensity(profile domain.EmotionProfile, res *ScoreResult, netCertainty, topShare float64) float64 {
	total := profile.Raw.Sum()
	if total <= 0 {
		return 0
	}
	base := 1.0 - math.Exp(-total/t.SaturationScale)
	base = math.Min(base, t.MaxIntensity)

	adjust := 1.0 + t.CertaintyAdjustScale*netCertainty
	adjust = math.Max(0.5, math.Min(1.4, adjust))

	intensity := math.Min(base*adjust, t.MaxIntensity)
	if intensity < 0.12 && topShare < 0.45 {
		intensity *= 0.7
	}
	return math.Max(0, intensity)
}

func bucketIntensity(percent float64) domain.IntensityBucket {
	switch {
	case percent >= 80:
		return domain.IntensityVeryHigh
	case percent >= 55:
		return domain.IntensityHigh
	case percent >= 30:
		return domain.IntensityModerate
	case percent >= 10:
		return domain.IntensityLow
	default:
		return domain.IntensityVeryLow
	}
}

func (t *Tuning) valence(mixture domain.Vector) float64 {
	v := 0.0
	for i := range mixture {
		v += mixture[i] * t.ValenceSign[i]
	}
	return math.Max(-1.0, math.Min(1.0, v))
}

// activation blends the mixture's energy profile with raw arousal cues, so
// extra exclamation marks or caps can only raise it.
func (t *Tuning) activation(mixture domain.Vector, arousal float64) float64 {
	energy := 0.0
	for i := range mixture {
		energy += mixture[i] * t.ArousalBeta[i]
	}
	return clamp01(0.6*energy + 0.4*arousal)
}

func (t *Tuning) confidence(profile domain.EmotionProfile, res *ScoreResult, delta, intensity, netCertainty float64) float64 {
	if profile.LowSignal {
		return clamp01(0.1 * math.Min(1.0, float64(res.WordCount)/12.0))
	}
	length := math.Min(1.0, float64(res.WordCount)/12.0)
	separation := math.Min(1.0, delta*3.0)
	density := math.Min(1.0, res.SignalDensity()*2.0)
	certainty := (netCertainty + 1.0) / 2.0

	c := 0.25*length + 0.25*separation + 0.2*density + 0.15*intensity + 0.15*certainty
	return math.Round(clamp01(c)*1000) / 1000
}

func (t *Tuning) pattern(profile domain.EmotionProfile, topShare, delta float64) domain.Pattern {
	switch {
	case profile.LowSignal:
		return domain.PatternDiffuse
	case delta < t.MixedMargin:
		return domain.PatternBimodal
	case topShare >= t.DominantShare:
		return domain.PatternSingleDominant
	case topShare < t.DiffuseCeiling:
		return domain.PatternDiffuse
	default:
		return domain.PatternBimodal
	}
}

// currentLabel picks the nuanced wording for the "current" emotion: the
// blend-biased emotion when dominance is ambiguous, phrased by intensity
// bucket from the static label table.
func (t *Tuning) currentLabel(locale string, profile domain.EmotionProfile, top, second domain.Emotion, secondShare, delta float64, bucket domain.IntensityBucket) string {
	if profile.LowSignal {
		return "Neutral"
	}
	current := top
	if secondShare > 0 && delta < t.MixedMargin {
		a, b := top, second
		if b < a {
			a, b = b, a
		}
		if biased, ok := blendBias[[2]domain.Emotion{a, b}]; ok {
			current = biased
		}
	}
	return NuancedLabel(NormalizeLocale(locale), current, bucket)
}
