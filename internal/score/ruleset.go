package score

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/EgiFazila/solrisk/internal/feature"
)

// KeywordWeight binds a risky keyword to its score contribution. A zero weight
// keeps the keyword in the feature schema without affecting the score.
type KeywordWeight struct {
	Token  string `yaml:"token" json:"token"`
	Weight int    `yaml:"weight" json:"weight"`
}

// CountBand contributes Weight when a count feature exceeds Over. Bands are
// evaluated in order and the first match wins.
type CountBand struct {
	Over   int `yaml:"over" json:"over"`
	Weight int `yaml:"weight" json:"weight"`
}

// Ruleset is the entire scoring model: keyword weights, count bands and category
// cut points. It is plain data so the rule list can evolve without touching
// extraction logic.
type Ruleset struct {
	Keywords     []KeywordWeight `yaml:"keywords" json:"keywords"`
	PayableBands []CountBand     `yaml:"payableBands" json:"payableBands"`
	LineBands    []CountBand     `yaml:"lineBands" json:"lineBands"`
	MaxScore     int             `yaml:"maxScore" json:"maxScore"`
	LowMax       int             `yaml:"lowMax" json:"lowMax"`
	MediumMax    int             `yaml:"mediumMax" json:"mediumMax"`
}

// Default returns the built-in ruleset. selfdestruct and block.timestamp are
// tracked as signals but carry no weight yet.
func Default() Ruleset {
	return Ruleset{
		Keywords: []KeywordWeight{
			{Token: "delegatecall", Weight: 50},
			{Token: "call.value", Weight: 30},
			{Token: "tx.origin", Weight: 40},
			{Token: "selfdestruct", Weight: 0},
			{Token: "block.timestamp", Weight: 0},
		},
		PayableBands: []CountBand{{Over: 3, Weight: 25}, {Over: 0, Weight: 5}},
		LineBands:    []CountBand{{Over: 300, Weight: 15}, {Over: 100, Weight: 5}},
		MaxScore:     100,
		LowMax:       20,
		MediumMax:    60,
	}
}

// FeatureKeywords returns the keyword list in ruleset order for building the
// feature schema.
func (rs Ruleset) FeatureKeywords() []feature.Keyword {
	kws := make([]feature.Keyword, 0, len(rs.Keywords))
	for _, kw := range rs.Keywords {
		kws = append(kws, feature.NewKeyword(kw.Token))
	}
	return kws
}

// Validate rejects rulesets that would break the score contract: negative
// contributions would void monotonicity, and the category cut points must be
// ordered within [0, MaxScore].
func (rs Ruleset) Validate() error {
	for _, kw := range rs.Keywords {
		if kw.Token == "" {
			return fmt.Errorf("ruleset: keyword with empty token")
		}
		if kw.Weight < 0 {
			return fmt.Errorf("ruleset: keyword %q has negative weight %d", kw.Token, kw.Weight)
		}
	}
	for _, bands := range [][]CountBand{rs.PayableBands, rs.LineBands} {
		for i, b := range bands {
			if b.Weight < 0 {
				return fmt.Errorf("ruleset: count band over %d has negative weight %d", b.Over, b.Weight)
			}
			// bands are first-match-wins, so later entries must cover lower counts
			if i > 0 && b.Over >= bands[i-1].Over {
				return fmt.Errorf("ruleset: count bands must have strictly descending over values, got %d after %d", b.Over, bands[i-1].Over)
			}
		}
	}
	if rs.MaxScore <= 0 {
		return fmt.Errorf("ruleset: maxScore must be positive, got %d", rs.MaxScore)
	}
	if rs.LowMax < 0 || rs.LowMax >= rs.MediumMax || rs.MediumMax > rs.MaxScore {
		return fmt.Errorf("ruleset: cut points must satisfy 0 <= lowMax < mediumMax <= maxScore")
	}
	return nil
}

// Load reads a ruleset from a YAML file. An empty path yields the default
// ruleset.
func Load(path string) (Ruleset, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, fmt.Errorf("read ruleset %s: %w", path, err)
	}
	var rs Ruleset
	if err := yaml.Unmarshal(b, &rs); err != nil {
		return Ruleset{}, fmt.Errorf("parse ruleset %s: %w", path, err)
	}
	if err := rs.Validate(); err != nil {
		return Ruleset{}, err
	}
	return rs, nil
}
