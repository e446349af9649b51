package domain

// EmotionProfile pairs the raw accumulated score vector with its normalized
// mixture. When LowSignal is set the mixture is uniformly zero: the input
// carried too little emotional signal to name a dominant emotion honestly.
type EmotionProfile struct {
	Raw       Vector `json:"raw"`
	Mixture   Vector `json:"mixture"`
	LowSignal bool   `json:"low_signal"`
}

// IntensityBucket is the coarse band of the pre-normalization raw magnitude.
type IntensityBucket string

const (
	IntensityVeryLow  IntensityBucket = "very_low"
	IntensityLow      IntensityBucket = "low"
	IntensityModerate IntensityBucket = "moderate"
	IntensityHigh     IntensityBucket = "high"
	IntensityVeryHigh IntensityBucket = "very_high"
)

// Pattern describes the shape of the mixture distribution.
type Pattern string

const (
	PatternSingleDominant Pattern = "single_dominant"
	PatternBimodal        Pattern = "bimodal"
	PatternDiffuse        Pattern = "diffuse"
)

// AnalysisMeta carries diagnostic values alongside a result. None of these
// affect the caller-facing contract; they exist for audit and tuning.
type AnalysisMeta struct {
	WordCount     int     `json:"word_count"`
	TotalTokens   int     `json:"total_tokens"`
	MatchedTokens int     `json:"matched_tokens"`
	SignalDensity float64 `json:"signal_density"`
	NetCertainty  float64 `json:"net_certainty"`
	Arousal       float64 `json:"arousal"`
}

// AnalysisResult is the full outcome of one analysis call. It is ephemeral
// and owned by the caller; the engine never persists it.
type AnalysisResult struct {
	Language   string          `json:"language"`
	Profile    EmotionProfile  `json:"profile"`
	Dominant   Emotion         `json:"dominant"`
	Secondary  *Emotion        `json:"secondary,omitempty"`
	Current    string          `json:"current"`
	MixedState bool            `json:"mixed_state"`
	Valence    float64         `json:"valence"`
	Activation float64         `json:"activation"`
	Intensity  IntensityBucket `json:"intensity"`
	Confidence float64         `json:"confidence"`
	Pattern    Pattern         `json:"pattern"`
	Prototype  string          `json:"prototype"`
	Risk       RiskAssessment  `json:"risk"`
	Meta       AnalysisMeta    `json:"meta"`
}
