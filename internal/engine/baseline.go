package engine

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/EgiFazila/solrisk/internal/model"
)

// A baseline is a set of source fingerprints already reviewed; matching
// documents are filtered from later runs until their content changes.
type baseline struct {
	GeneratedAt  time.Time       `json:"generatedAt"`
	Fingerprints map[string]bool `json:"fingerprints"`
}

func loadBaseline(path string) (baseline, error) {
	var b baseline
	if path == "" {
		return b, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	// bare fingerprint array is accepted too
	var fp []string
	if err := json.Unmarshal(data, &fp); err == nil {
		m := make(map[string]bool, len(fp))
		for _, f := range fp {
			m[f] = true
		}
		b.Fingerprints = m
		return b, nil
	}
	_ = json.Unmarshal(data, &b)
	if b.Fingerprints == nil {
		b.Fingerprints = map[string]bool{}
	}
	return b, nil
}

func filterByBaseline(assessments []model.Assessment, b baseline) []model.Assessment {
	if len(b.Fingerprints) == 0 {
		return assessments
	}
	var out []model.Assessment
	for _, a := range assessments {
		if a.Fingerprint != "" && b.Fingerprints[a.Fingerprint] {
			continue
		}
		out = append(out, a)
	}
	return out
}

// WriteBaseline records the fingerprints of the given assessments so later runs
// can skip unchanged documents.
func WriteBaseline(path string, assessments []model.Assessment) error {
	if path == "" {
		return nil
	}
	m := make(map[string]bool)
	for _, a := range assessments {
		if a.Fingerprint != "" {
			m[a.Fingerprint] = true
		}
	}
	arr := make([]string, 0, len(m))
	for k := range m {
		arr = append(arr, k)
	}
	sort.Strings(arr)
	data, _ := json.MarshalIndent(arr, "", "  ")
	return os.WriteFile(path, data, 0o644)
}
