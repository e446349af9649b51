package engine

import (
	"gonum.org/v1/gonum/floats"

	"github.com/in-tuned/emotion-engine/internal/domain"
)

// prototypes are admin-curated reference mixtures used for the nearest-tone
// descriptor. They are labels, not classifications; the closest one is
// reported even when the match is loose.
var prototypes = []domain.Prototype{
	{Name: "melancholic calm", Mixture: domain.Vec(domain.Sadness, 0.55, domain.Fear, 0.15, domain.Joy, 0.1, domain.Passion, 0.1, domain.Disgust, 0.1)},
	{Name: "quiet contentment", Mixture: domain.Vec(domain.Joy, 0.6, domain.Passion, 0.2, domain.Sadness, 0.1, domain.Surprise, 0.1)},
	{Name: "bright excitement", Mixture: domain.Vec(domain.Joy, 0.5, domain.Surprise, 0.35, domain.Passion, 0.15)},
	{Name: "tender affection", Mixture: domain.Vec(domain.Passion, 0.55, domain.Joy, 0.35, domain.Sadness, 0.1)},
	{Name: "wistful longing", Mixture: domain.Vec(domain.Passion, 0.4, domain.Sadness, 0.4, domain.Joy, 0.2)},
	{Name: "anxious unease", Mixture: domain.Vec(domain.Fear, 0.6, domain.Sadness, 0.25, domain.Surprise, 0.15)},
	{Name: "simmering resentment", Mixture: domain.Vec(domain.Anger, 0.5, domain.Disgust, 0.3, domain.Sadness, 0.2)},
	{Name: "hot indignation", Mixture: domain.Vec(domain.Anger, 0.65, domain.Surprise, 0.2, domain.Disgust, 0.15)},
	{Name: "weary despair", Mixture: domain.Vec(domain.Sadness, 0.65, domain.Fear, 0.25, domain.Anger, 0.1)},
	{Name: "startled alarm", Mixture: domain.Vec(domain.Surprise, 0.5, domain.Fear, 0.4, domain.Sadness, 0.1)},
	{Name: "repelled aversion", Mixture: domain.Vec(domain.Disgust, 0.6, domain.Anger, 0.25, domain.Fear, 0.15)},
	{Name: "bittersweet mix", Mixture: domain.Vec(domain.Joy, 0.35, domain.Sadness, 0.35, domain.Passion, 0.2, domain.Surprise, 0.1)},
}

const neutralPrototype = "neutral"

// closestPrototype returns the prototype name nearest to the mixture by
// cosine similarity. Low-signal profiles map to the neutral descriptor.
func closestPrototype(profile domain.EmotionProfile) string {
	if profile.LowSignal {
		return neutralPrototype
	}

	mix := profile.Mixture[:]
	mixNorm := floats.Norm(mix, 2)
	if mixNorm == 0 {
		return neutralPrototype
	}

	best := neutralPrototype
	bestSim := -1.0
	for i := range prototypes {
		proto := prototypes[i].Mixture[:]
		protoNorm := floats.Norm(proto, 2)
		if protoNorm == 0 {
			continue
		}
		sim := floats.Dot(mix, proto) / (mixNorm * protoNorm)
		if sim > bestSim {
			best = prototypes[i].Name
			bestSim = sim
		}
	}
	return best
}
