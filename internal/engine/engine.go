package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/EgiFazila/solrisk/internal/cache"
	"github.com/EgiFazila/solrisk/internal/config"
	"github.com/EgiFazila/solrisk/internal/feature"
	"github.com/EgiFazila/solrisk/internal/model"
	"github.com/EgiFazila/solrisk/internal/score"
	"github.com/EgiFazila/solrisk/internal/util"
)

// Engine runs the extract → score → fingerprint pipeline over Solidity files.
// The pipeline itself is pure; the engine owns the file discovery, caching and
// filtering around it.
type Engine struct {
	rules    score.Ruleset
	schema   []feature.Definition
	rulesTag string
}

func New(rs score.Ruleset) *Engine {
	tag, _ := json.Marshal(rs)
	return &Engine{
		rules:    rs,
		schema:   feature.Schema(rs.FeatureKeywords()),
		rulesTag: string(tag),
	}
}

func (e *Engine) Analyze(ctx context.Context, req model.AnalyzeRequest) (*model.AnalyzeResult, error) {
	start := time.Now()
	files, err := discoverFiles(req.Path)
	if err != nil {
		return nil, err
	}
	cfg, _, _ := config.Load(configDir(req.Path))
	noCache := req.NoCache || cfg.NoCache

	assessments, err := e.analyzeFiles(ctx, files, noCache)
	if err != nil {
		return nil, err
	}
	sort.Slice(assessments, func(i, j int) bool { return assessments[i].File < assessments[j].File })

	assessments = applyIgnores(assessments, cfg)
	assessments = filterByCategory(assessments, cfg)
	if req.BaselinePath != "" {
		b, err := loadBaseline(req.BaselinePath)
		if err != nil {
			return nil, err
		}
		assessments = filterByBaseline(assessments, b)
	}

	return &model.AnalyzeResult{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Assessments: assessments,
		Elapsed:     time.Since(start),
	}, nil
}

// AnalyzeSource runs the core pipeline over one in-memory document. No I/O, no
// cache; name labels the result.
func (e *Engine) AnalyzeSource(name, source string) model.Assessment {
	vec := feature.ExtractWith(source, e.schema)
	out := e.rules.Assess(vec)
	return model.Assessment{
		File:        name,
		Fingerprint: util.Fingerprint(source),
		Features:    vec,
		Score:       out.Score,
		Category:    out.Category,
		Signals:     out.Signals,
	}
}

// analyzeFiles fans the per-file work out over a bounded goroutine pool.
func (e *Engine) analyzeFiles(ctx context.Context, files []string, noCache bool) ([]model.Assessment, error) {
	cpu := runtime.NumCPU()
	if cpu < 2 {
		cpu = 2
	}
	type res struct {
		a   model.Assessment
		err error
	}
	ch := make(chan res, len(files))
	var wg sync.WaitGroup
	sem := make(chan struct{}, cpu)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := path
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			a, err := e.analyzeFile(path, noCache)
			ch <- res{a: a, err: err}
		}()
	}
	wg.Wait()
	close(ch)
	var out []model.Assessment
	for r := range ch {
		if r.err != nil {
			return nil, r.err
		}
		a := r.a
		a.File = filepath.ToSlash(a.File)
		out = append(out, a)
	}
	return out, nil
}

func (e *Engine) analyzeFile(path string, noCache bool) (model.Assessment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Assessment{}, fmt.Errorf("read %s: %w", path, err)
	}
	source := string(b)
	fp := util.Fingerprint(source)

	key := cache.Key("assessment-v1", e.rulesTag, fp)
	if !noCache {
		if data, ok := cache.Load(key); ok {
			var a model.Assessment
			if err := json.Unmarshal(data, &a); err == nil && a.Fingerprint == fp {
				a.File = path
				// stored vectors carry JSON map order; restore this engine's schema order
				a.Features = a.Features.Align(e.schema)
				return a, nil
			}
		}
	}

	a := e.AnalyzeSource(path, source)
	if !noCache {
		if data, err := json.Marshal(a); err == nil {
			_ = cache.Store(key, data)
		}
	}
	return a, nil
}

// discoverFiles resolves path to the list of Solidity files to analyze. A
// single-file path is accepted as-is when it has a .sol extension.
func discoverFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		if !isSolidity(path) {
			return nil, fmt.Errorf("%s: not a Solidity source file", path)
		}
		return []string{path}, nil
	}
	var out []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if isSolidity(p) {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}
	return out, nil
}

func isSolidity(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".sol")
}

func configDir(path string) string {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return filepath.Dir(path)
	}
	return path
}
