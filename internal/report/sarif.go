package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/EgiFazila/solrisk/internal/model"
)

type sarif struct {
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool       sarifTool     `json:"tool"`
	Automation sarifAuto     `json:"automationDetails"`
	Results    []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}
type sarifDriver struct {
	Name string `json:"name"`
}
type sarifAuto struct {
	ID string `json:"id"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}
type sarifLoc struct {
	Physical sarifPhys `json:"physicalLocation"`
}
type sarifPhys struct {
	ArtifactLocation sarifArt `json:"artifactLocation"`
}
type sarifArt struct {
	URI string `json:"uri"`
}

// ToSARIF renders one result per assessment. Categories map onto SARIF levels:
// low → note, medium → warning, high → error.
func ToSARIF(result *model.AnalyzeResult) ([]byte, error) {
	var results []sarifResult
	for _, a := range result.Assessments {
		level := "note"
		switch a.Category {
		case model.CategoryMedium:
			level = "warning"
		case model.CategoryHigh:
			level = "error"
		}
		text := fmt.Sprintf("heuristic risk score %d (%s)", a.Score, a.Category)
		if len(a.Signals) > 0 {
			text += ": " + strings.Join(a.Signals, ", ")
		}
		results = append(results, sarifResult{
			RuleID:  "SOLRISK-HEURISTIC",
			Level:   level,
			Message: sarifMessage{Text: text},
			Locations: []sarifLoc{{Physical: sarifPhys{
				ArtifactLocation: sarifArt{URI: a.File},
			}}},
		})
	}
	s := sarif{Version: "2.1.0", Runs: []sarifRun{{
		Tool:       sarifTool{Driver: sarifDriver{Name: "solrisk"}},
		Automation: sarifAuto{ID: result.RunID},
		Results:    results,
	}}}
	return json.MarshalIndent(s, "", "  ")
}
