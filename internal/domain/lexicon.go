package domain

import "time"

// Provenance records where a lexicon entry came from. It is kept for audit
// and never blocks a later writer from replacing the entry.
type Provenance string

const (
	ProvenanceCurated  Provenance = "curated"
	ProvenanceExternal Provenance = "external"
	ProvenanceAdmin    Provenance = "admin"
)

// LexiconEntry maps a single word or multi-word phrase to an emotion weight
// vector for one language. Within a language, at most one active entry
// exists per exact phrase; merges are last-writer-wins.
type LexiconEntry struct {
	Language   string     `db:"language"   json:"language"`
	Phrase     string     `db:"phrase"     json:"phrase"`
	Weights    Vector     `db:"-"          json:"weights"`
	Provenance Provenance `db:"provenance" json:"provenance"`
	Confidence float64    `db:"confidence" json:"confidence"`
}

// CandidateStatus is the lifecycle state of an expansion candidate.
type CandidateStatus string

const (
	CandidatePending  CandidateStatus = "pending"
	CandidateAccepted CandidateStatus = "accepted"
	CandidateRejected CandidateStatus = "rejected"
)

// ExternalLexiconCandidate is a proposed lexicon entry derived from an
// external definition source. It never reaches the live lexicon without an
// explicit admin decision.
type ExternalLexiconCandidate struct {
	ID               int64           `db:"id"                json:"id"`
	Word             string          `db:"word"              json:"word"`
	Language         string          `db:"language"          json:"language"`
	ProposedWeights  Vector          `db:"-"                 json:"proposed_weights"`
	SourceDefinition string          `db:"source_definition" json:"source_definition"`
	Source           string          `db:"source"            json:"source"`
	Confidence       float64         `db:"confidence"        json:"confidence"`
	Status           CandidateStatus `db:"status"            json:"status"`
	CreatedAt        time.Time       `db:"created_at"        json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"        json:"updated_at"`
}

// Entry converts an accepted candidate into a live lexicon entry with
// external provenance.
func (c *ExternalLexiconCandidate) Entry() LexiconEntry {
	return LexiconEntry{
		Language:   c.Language,
		Phrase:     c.Word,
		Weights:    c.ProposedWeights,
		Provenance: ProvenanceExternal,
		Confidence: c.Confidence,
	}
}

// Prototype is a named reference mixture used for nearest-neighbor tone
// labeling. Prototypes are static, admin-curated data.
type Prototype struct {
	Name    string `json:"name"`
	Mixture Vector `json:"mixture"`
}
