package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EgiFazila/solrisk/internal/feature"
	"github.com/EgiFazila/solrisk/internal/model"
)

func TestToSARIF(t *testing.T) {
	result := &model.AnalyzeResult{
		RunID:       "run-123",
		GeneratedAt: time.Now().UTC(),
		Assessments: []model.Assessment{
			{File: "a.sol", Fingerprint: "aa", Features: feature.Extract(""), Score: 0, Category: model.CategoryLow},
			{File: "b.sol", Fingerprint: "bb", Features: feature.Extract(""), Score: 40, Category: model.CategoryMedium, Signals: []string{"has_tx_origin"}},
			{File: "c.sol", Fingerprint: "cc", Features: feature.Extract(""), Score: 90, Category: model.CategoryHigh},
		},
	}
	data, err := ToSARIF(result)
	require.NoError(t, err)

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name string `json:"name"`
				} `json:"driver"`
			} `json:"tool"`
			Automation struct {
				ID string `json:"id"`
			} `json:"automationDetails"`
			Results []struct {
				RuleID  string `json:"ruleId"`
				Level   string `json:"level"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	assert.Equal(t, "solrisk", doc.Runs[0].Tool.Driver.Name)
	assert.Equal(t, "run-123", doc.Runs[0].Automation.ID)

	require.Len(t, doc.Runs[0].Results, 3)
	assert.Equal(t, "note", doc.Runs[0].Results[0].Level)
	assert.Equal(t, "warning", doc.Runs[0].Results[1].Level)
	assert.Equal(t, "error", doc.Runs[0].Results[2].Level)
	assert.Contains(t, doc.Runs[0].Results[1].Message.Text, "has_tx_origin")
	assert.Contains(t, doc.Runs[0].Results[2].Message.Text, "score 90")
}
