package engine

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/EgiFazila/solrisk/internal/config"
	"github.com/EgiFazila/solrisk/internal/model"
)

// filterByCategory removes assessments below the configured category threshold.
func filterByCategory(assessments []model.Assessment, cfg config.Config) []model.Assessment {
	threshold := model.ParseCategory(cfg.CategoryThreshold)
	var out []model.Assessment
	for _, a := range assessments {
		if model.CategoryGTE(a.Category, threshold) {
			out = append(out, a)
		}
	}
	return out
}

// applyIgnores drops assessments whose file matches any configured glob. Globs
// use doublestar syntax and match against slash-separated paths, so patterns
// like "**/test/**" work across platforms.
func applyIgnores(assessments []model.Assessment, cfg config.Config) []model.Assessment {
	if len(cfg.Ignore) == 0 {
		return assessments
	}
	var out []model.Assessment
	for _, a := range assessments {
		if isIgnored(a.File, cfg.Ignore) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func isIgnored(file string, globs []string) bool {
	path := filepath.ToSlash(file)
	for _, g := range globs {
		if ok, err := doublestar.Match(g, path); err == nil && ok {
			return true
		}
	}
	return false
}
