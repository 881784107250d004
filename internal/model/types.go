package model

import (
	"time"

	"github.com/EgiFazila/solrisk/internal/feature"
)

type RiskCategory string

const (
	CategoryLow    RiskCategory = "low"
	CategoryMedium RiskCategory = "medium"
	CategoryHigh   RiskCategory = "high"
)

func ParseCategory(s string) RiskCategory {
	switch s {
	case string(CategoryHigh):
		return CategoryHigh
	case string(CategoryMedium):
		return CategoryMedium
	default:
		return CategoryLow
	}
}

func CategoryGTE(a, b RiskCategory) bool {
	order := map[RiskCategory]int{CategoryLow: 1, CategoryMedium: 2, CategoryHigh: 3}
	return order[a] >= order[b]
}

// Assessment is the read-only result for one source document. Fingerprint is the
// SHA-256 content digest of the exact source bytes; Features carries the full
// extracted vector so the score stays inspectable.
type Assessment struct {
	File        string         `json:"file"`
	Fingerprint string         `json:"fingerprint"`
	Features    feature.Vector `json:"features"`
	Score       int            `json:"score"`
	Category    RiskCategory   `json:"category"`
	Signals     []string       `json:"signals,omitempty"`
}

type AnalyzeRequest struct {
	Path         string
	BaselinePath string
	NoCache      bool
}

type AnalyzeResult struct {
	RunID       string        `json:"runId"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Assessments []Assessment  `json:"assessments"`
	Elapsed     time.Duration `json:"elapsed"`
}
