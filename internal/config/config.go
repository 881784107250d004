package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config tunes the analyzer around the core pipeline. The scoring model itself
// lives in a separate ruleset file (RulesPath); this file only carries
// tool-level behavior.
type Config struct {
	CategoryThreshold string   `json:"categoryThreshold"`
	Ignore            []string `json:"ignore"`
	RulesPath         string   `json:"rulesPath"`
	NoCache           bool     `json:"noCache"`
}

func Default() Config {
	return Config{
		CategoryThreshold: "low",
	}
}

// Load searches upwards from startDir for a .solrisk.json and merges it over
// the defaults. Returns the path of the file used, or "" when none was found.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	dir := startDir
	for {
		candidate := filepath.Join(dir, ".solrisk.json")
		if _, err := os.Stat(candidate); err == nil {
			b, err := os.ReadFile(candidate)
			if err != nil {
				return cfg, candidate, err
			}
			_ = json.Unmarshal(b, &cfg)
			return cfg, candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return cfg, "", nil
}
