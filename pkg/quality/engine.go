package quality

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Engine validates photograph quality before the costly remote diagnosis
// step. It holds immutable configuration only, so one Engine serves any
// number of concurrent Validate calls.
type Engine struct {
	cfg Config
}

// NewEngine creates a validation engine with the given thresholds.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the thresholds the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Validate decodes the input buffer and runs the selected sub-checks over
// the shared raster. With no explicit checks it runs all of them. The
// sub-checks have no data dependency on one another, so they run as a
// fan-out over the immutable raster and join before aggregation.
//
// Undecodable, empty and oversized inputs short-circuit into an invalid
// report; every other condition degrades the score instead of failing.
func (e *Engine) Validate(ctx context.Context, data []byte, checks ...CheckType) *Report {
	if int64(len(data)) > e.cfg.MaxInputBytes {
		return e.oversizedReport(len(data))
	}

	raster, err := Decode(data)
	if err != nil {
		if err == ErrEmptyInput {
			return shortCircuitReport(IssueEmptyFile,
				"Image file is empty. Please upload a valid image",
				"Image file is empty")
		}
		return shortCircuitReport(IssueInvalidImage,
			"Unable to read image. Please upload a valid JPEG or PNG image",
			"Image file is invalid or corrupted")
	}

	selected := normalizeChecks(checks)
	results := make([]CheckResult, len(selected))

	g, _ := errgroup.WithContext(ctx)
	for i, ct := range selected {
		i, ct := i, ct
		g.Go(func() error {
			results[i] = runCheck(ct, raster, e.cfg)
			return nil
		})
	}
	// Sub-checks fail open rather than returning errors.
	_ = g.Wait()

	return aggregate(results)
}

// runCheck dispatches a single sub-check. All sub-checks are pure
// functions of (raster, config).
func runCheck(ct CheckType, r *Raster, cfg Config) CheckResult {
	switch ct {
	case CheckResolution:
		return checkResolution(r, cfg)
	case CheckBlur:
		return checkBlur(r, cfg)
	default:
		return checkLighting(r, cfg)
	}
}

// normalizeChecks deduplicates the requested checks and fixes their order
// so aggregation is deterministic. An empty selection means all checks.
func normalizeChecks(checks []CheckType) []CheckType {
	if len(checks) == 0 {
		return AllChecks()
	}
	requested := make(map[CheckType]bool, len(checks))
	for _, ct := range checks {
		requested[ct] = true
	}
	var out []CheckType
	for _, ct := range checkOrder {
		if requested[ct] {
			out = append(out, ct)
		}
	}
	return out
}

// aggregate merges sub-check results into one report. The quality score is
// the arithmetic mean of the enabled sub-check scores; validity is decided
// by the blocking issue subset alone.
func aggregate(results []CheckResult) *Report {
	rep := &Report{
		Valid:    true,
		Issues:   []IssueKind{},
		Guidance: []string{},
		Metrics:  map[string]float64{},
		Labels:   map[string]string{},
	}

	scores := make([]float64, 0, len(results))
	seen := make(map[IssueKind]bool)
	for _, res := range results {
		scores = append(scores, res.Score)
		for _, k := range res.Issues {
			if !seen[k] {
				seen[k] = true
				rep.Issues = append(rep.Issues, k)
			}
		}
		rep.Guidance = append(rep.Guidance, res.Guidance...)
		for key, v := range res.Metrics {
			rep.Metrics[key] = v
		}
		for key, v := range res.Labels {
			rep.Labels[key] = v
		}
	}

	if len(scores) > 0 {
		rep.QualityScore = round2(stat.Mean(scores, nil))
	}
	for _, k := range rep.Issues {
		if k.Blocking() {
			rep.Valid = false
			break
		}
	}
	rep.Summary = summarize(rep.Valid, len(rep.Issues), rep.QualityScore)
	return rep
}

func summarize(valid bool, issueCount int, score float64) string {
	if valid {
		switch {
		case score >= 0.9:
			return "Excellent image quality - perfect for accurate diagnosis"
		case score >= 0.8:
			return "Good image quality - suitable for diagnosis"
		default:
			return "Acceptable image quality - diagnosis may be less accurate"
		}
	}
	if issueCount == 1 {
		return "Image has 1 quality issue that should be addressed for accurate diagnosis"
	}
	return fmt.Sprintf("Image has %d quality issues that should be addressed for accurate diagnosis", issueCount)
}

func (e *Engine) oversizedReport(size int) *Report {
	return shortCircuitReport(IssueFileTooLarge,
		fmt.Sprintf("Image size (%.1fMB) exceeds maximum (%.1fMB)",
			float64(size)/(1024*1024), float64(e.cfg.MaxInputBytes)/(1024*1024)),
		"Image file is too large")
}

func shortCircuitReport(kind IssueKind, guidance, summary string) *Report {
	return &Report{
		Valid:        false,
		QualityScore: 0.0,
		Issues:       []IssueKind{kind},
		Guidance:     []string{guidance},
		Metrics:      map[string]float64{},
		Labels:       map[string]string{},
		Summary:      summary,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
