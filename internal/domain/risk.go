package domain

// RiskLevel is the crisis-severity classification, computed independently of
// emotional scoring.
type RiskLevel string

const (
	RiskNone     RiskLevel = "none"
	RiskPossible RiskLevel = "possible"
	RiskLikely   RiskLevel = "likely"
	RiskSevere   RiskLevel = "severe"
)

var riskRank = map[RiskLevel]int{
	RiskNone:     0,
	RiskPossible: 1,
	RiskLikely:   2,
	RiskSevere:   3,
}

// Rank returns the ordinal severity of the level, with none lowest.
func (r RiskLevel) Rank() int {
	return riskRank[r]
}

// AtLeast reports whether r is as severe as other or more so.
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return r.Rank() >= other.Rank()
}

// MaxRiskLevel returns the more severe of two levels. Severity is monotonic:
// escalation is the only legal direction during a single classification.
func MaxRiskLevel(a, b RiskLevel) RiskLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Hotline is a crisis line resolved for a region.
type Hotline struct {
	RegionCode string `json:"region_code"`
	Label      string `json:"label"`
	Number     string `json:"number"`
	URL        string `json:"url,omitempty"`
}

// RiskAssessment is the outcome of the safety pass. MatchedCategories names
// the pattern tiers that fired (for audit); it never echoes input text.
type RiskAssessment struct {
	Level             RiskLevel `json:"level"`
	MatchedCategories []string  `json:"matched_categories,omitempty"`
	Region            string    `json:"region"`
	Hotline           Hotline   `json:"hotline"`
}
