package score

import (
	"fmt"

	"github.com/EgiFazila/solrisk/internal/feature"
	"github.com/EgiFazila/solrisk/internal/model"
)

// Rule is one scoring step: a pure function from a feature vector to a
// non-negative contribution. Rules run in list order and only ever add.
type Rule struct {
	Name  string
	Apply func(v feature.Vector) int
}

// Outcome is the scorer's full answer for one vector. Signals lists the rules
// that contributed, in rule order.
type Outcome struct {
	Score    int
	Category model.RiskCategory
	Signals  []string
}

// Rules expands the ruleset into its ordered rule list. Keyword rules come
// first, then the payable and line bands. Vectors missing a referenced key read
// as 0, so partial or extended schemas under-score rather than fail.
func (rs Ruleset) Rules() []Rule {
	var rules []Rule
	for _, kw := range rs.Keywords {
		flag := feature.NewKeyword(kw.Token).Flag
		weight := kw.Weight
		rules = append(rules, Rule{Name: flag, Apply: func(v feature.Vector) int {
			if v.Get(flag) == 1 {
				return weight
			}
			return 0
		}})
	}
	rules = append(rules,
		Rule{Name: "n_payable", Apply: bandRule("n_payable", rs.PayableBands)},
		Rule{Name: "n_lines", Apply: bandRule("n_lines", rs.LineBands)},
	)
	return rules
}

func bandRule(key string, bands []CountBand) func(feature.Vector) int {
	return func(v feature.Vector) int {
		n := v.Get(key)
		for _, b := range bands {
			if n > b.Over {
				return b.Weight
			}
		}
		return 0
	}
}

// Assess runs the ordered rule list over v, clamps the sum to [0, MaxScore] and
// maps it to a category. Deterministic and independent of the vector's key order.
func (rs Ruleset) Assess(v feature.Vector) Outcome {
	score := 0
	var signals []string
	for _, r := range rs.Rules() {
		if c := r.Apply(v); c > 0 {
			score += c
			signals = append(signals, r.Name)
		}
	}
	if score > rs.MaxScore {
		score = rs.MaxScore
	}
	return Outcome{Score: score, Category: rs.Categorize(score), Signals: signals}
}

// Evaluate returns just the score and category for v.
func (rs Ruleset) Evaluate(v feature.Vector) (int, model.RiskCategory) {
	out := rs.Assess(v)
	return out.Score, out.Category
}

// Categorize maps a clamped score to its category: scores up to LowMax are low,
// up to MediumMax medium, anything above high.
func (rs Ruleset) Categorize(score int) model.RiskCategory {
	switch {
	case score <= rs.LowMax:
		return model.CategoryLow
	case score <= rs.MediumMax:
		return model.CategoryMedium
	default:
		return model.CategoryHigh
	}
}

// Describe renders the rule list for display, one line per rule.
func (rs Ruleset) Describe() []string {
	var out []string
	for _, kw := range rs.Keywords {
		out = append(out, fmt.Sprintf("%s\t+%d\twhen %q appears", feature.NewKeyword(kw.Token).Flag, kw.Weight, kw.Token))
	}
	for _, b := range rs.PayableBands {
		out = append(out, fmt.Sprintf("n_payable\t+%d\twhen count > %d", b.Weight, b.Over))
	}
	for _, b := range rs.LineBands {
		out = append(out, fmt.Sprintf("n_lines\t+%d\twhen count > %d", b.Weight, b.Over))
	}
	return out
}
