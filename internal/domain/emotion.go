// Package domain holds the core types shared across the emotion engine.
package domain

import (
	"fmt"
	"math"
)

// Emotion is one of the seven core emotions the engine scores.
type Emotion int

const (
	Anger Emotion = iota
	Disgust
	Fear
	Joy
	Sadness
	Passion
	Surprise

	// NumEmotions is the fixed dimensionality of every weight vector.
	NumEmotions = 7
)

// Emotions lists all core emotions in canonical order. This order is the
// tie-breaker everywhere a ranking could otherwise depend on map iteration.
var Emotions = [NumEmotions]Emotion{Anger, Disgust, Fear, Joy, Sadness, Passion, Surprise}

var emotionNames = [NumEmotions]string{
	"anger", "disgust", "fear", "joy", "sadness", "passion", "surprise",
}

// String returns the canonical lowercase name of the emotion.
func (e Emotion) String() string {
	if e < 0 || int(e) >= NumEmotions {
		return "unknown"
	}
	return emotionNames[e]
}

// MarshalText implements encoding.TextMarshaler for JSON payloads.
func (e Emotion) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Emotion) UnmarshalText(text []byte) error {
	parsed, err := ParseEmotion(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// ParseEmotion resolves a canonical name back to an Emotion.
func ParseEmotion(name string) (Emotion, error) {
	for i, n := range emotionNames {
		if n == name {
			return Emotion(i), nil
		}
	}
	return 0, fmt.Errorf("unknown emotion: %q", name)
}

// Vector is a fixed-size weight vector over the core emotions, indexed by
// Emotion. Zero value is the zero vector.
type Vector [NumEmotions]float64

// Add accumulates other into v.
func (v *Vector) Add(other Vector) {
	for i := range v {
		v[i] += other[i]
	}
}

// AddScaled accumulates other*factor into v.
func (v *Vector) AddScaled(other Vector, factor float64) {
	for i := range v {
		v[i] += other[i] * factor
	}
}

// Scale multiplies every component by factor.
func (v *Vector) Scale(factor float64) {
	for i := range v {
		v[i] *= factor
	}
}

// ClampNegative zeroes any component pushed below zero, e.g. by negation.
func (v *Vector) ClampNegative() {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0
		}
	}
}

// Sum returns the component sum.
func (v Vector) Sum() float64 {
	var total float64
	for _, c := range v {
		total += c
	}
	return total
}

// Max returns the largest component and its emotion. Ties resolve to the
// earlier emotion in canonical order.
func (v Vector) Max() (Emotion, float64) {
	best := Emotions[0]
	bestVal := v[0]
	for i := 1; i < NumEmotions; i++ {
		if v[i] > bestVal {
			best = Emotion(i)
			bestVal = v[i]
		}
	}
	return best, bestVal
}

// IsZero reports whether every component is exactly zero.
func (v Vector) IsZero() bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}

// Finite reports whether every component is a finite, representable number.
func (v Vector) Finite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Vec builds a Vector from sparse emotion/weight pairs. It panics on an odd
// argument count, which is acceptable for the static tables it serves.
func Vec(pairs ...any) Vector {
	if len(pairs)%2 != 0 {
		panic("domain.Vec: odd number of arguments")
	}
	var v Vector
	for i := 0; i < len(pairs); i += 2 {
		e := pairs[i].(Emotion)
		w := pairs[i+1].(float64)
		v[e] = w
	}
	return v
}
