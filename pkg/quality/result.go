package quality

// CheckType selects which sub-checks Validate runs.
type CheckType string

const (
	CheckResolution CheckType = "resolution"
	CheckBlur       CheckType = "blur"
	CheckLighting   CheckType = "lighting"
)

// checkOrder fixes the aggregation order so reports are deterministic
// regardless of which goroutine finishes first.
var checkOrder = []CheckType{CheckResolution, CheckBlur, CheckLighting}

// AllChecks returns every available check type in aggregation order.
func AllChecks() []CheckType {
	out := make([]CheckType, len(checkOrder))
	copy(out, checkOrder)
	return out
}

// ParseCheckType converts a wire-level check name into a CheckType.
func ParseCheckType(s string) (CheckType, bool) {
	switch CheckType(s) {
	case CheckResolution, CheckBlur, CheckLighting:
		return CheckType(s), true
	}
	return "", false
}

// CheckResult is the outcome of a single sub-check. Sub-checks are pure
// functions of (raster, config); they never mutate the raster.
type CheckResult struct {
	Valid    bool
	Score    float64
	Issues   []IssueKind
	Guidance []string
	Metrics  map[string]float64
	Labels   map[string]string
}

// Report is the aggregated verdict for one validation call.
type Report struct {
	Valid        bool               `json:"valid"`
	QualityScore float64            `json:"quality_score"`
	Issues       []IssueKind        `json:"issues"`
	Guidance     []string           `json:"guidance"`
	Metrics      map[string]float64 `json:"metrics"`
	Labels       map[string]string  `json:"labels,omitempty"`
	Summary      string             `json:"summary"`
}

// HasIssue reports whether the given issue kind is present in the report.
func (r *Report) HasIssue(kind IssueKind) bool {
	for _, k := range r.Issues {
		if k == kind {
			return true
		}
	}
	return false
}

// IssueGuidance is one entry of the static per-issue guidance table,
// resolved for display to the end user.
type IssueGuidance struct {
	Issue string   `json:"issue"`
	Icon  string   `json:"icon"`
	Tips  []string `json:"tips"`
}

// RetryGuidance tells an upstream caller whether the photo must be retaken
// and, if so, what to fix first.
type RetryGuidance struct {
	RetryNeeded      bool            `json:"retry_needed"`
	Message          string          `json:"message"`
	QualityScore     float64         `json:"quality_score,omitempty"`
	TopIssues        []IssueKind     `json:"top_issues,omitempty"`
	SpecificGuidance []IssueGuidance `json:"specific_guidance,omitempty"`
	AllGuidance      []string        `json:"all_guidance,omitempty"`
}
