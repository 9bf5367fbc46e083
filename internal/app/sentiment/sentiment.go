package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Labels assigned to transcripts. LabelNA marks transcripts that carry no
// classifiable text, including every failed transcription.
const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
	LabelNA       = "N/A"
)

// Compound polarity thresholds. Scores in [-0.1, 0.1] are treated as neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Classifier maps free text onto one of the sentiment labels.
type Classifier interface {
	Classify(text string) string
}

// VADERClassifier classifies text with the VADER sentiment model. The
// analyzer is read-only after construction and safe for concurrent use.
type VADERClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADERClassifier creates a classifier backed by the default VADER lexicon.
func NewVADERClassifier() *VADERClassifier {
	return &VADERClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Classify thresholds the compound polarity score into a label. Empty or
// whitespace-only text yields LabelNA.
func (c *VADERClassifier) Classify(text string) string {
	if strings.TrimSpace(text) == "" {
		return LabelNA
	}

	score := c.analyzer.PolarityScores(text).Compound
	switch {
	case score > positiveThreshold:
		return LabelPositive
	case score < negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
