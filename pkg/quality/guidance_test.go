package quality

import (
	"strings"
	"testing"
)

func TestRetryGuidanceFor_ValidReport(t *testing.T) {
	retry := RetryGuidanceFor(&Report{Valid: true, QualityScore: 0.95})

	if retry.RetryNeeded {
		t.Error("Expected retry_needed=false for a valid report")
	}
	if !strings.Contains(retry.Message, "proceed") {
		t.Errorf("Expected proceed message, got %q", retry.Message)
	}
	if len(retry.TopIssues) != 0 || len(retry.SpecificGuidance) != 0 {
		t.Error("Valid report must not carry retake guidance")
	}
}

func TestRetryGuidanceFor_PriorityOrder(t *testing.T) {
	rep := &Report{
		Valid:        false,
		QualityScore: 0.3,
		Issues: []IssueKind{
			IssueLowContrast,
			IssueSlightlyBlurry,
			IssueTooDark,
			IssueLowResolution,
			IssueUnevenLighting,
		},
	}
	retry := RetryGuidanceFor(rep)

	if !retry.RetryNeeded {
		t.Fatal("Expected retry_needed=true")
	}
	want := []IssueKind{IssueLowResolution, IssueTooDark, IssueSlightlyBlurry}
	if len(retry.TopIssues) != len(want) {
		t.Fatalf("Expected top issues %v, got %v", want, retry.TopIssues)
	}
	for i, k := range want {
		if retry.TopIssues[i] != k {
			t.Errorf("Expected %q at position %d, got %q", k, i, retry.TopIssues[i])
		}
	}
	if retry.Message != "Please retake the photo to address 3 quality issue(s)" {
		t.Errorf("Unexpected message: %q", retry.Message)
	}
	if retry.QualityScore != 0.3 {
		t.Errorf("Expected quality score 0.3 echoed, got %f", retry.QualityScore)
	}
}

func TestRetryGuidanceFor_TopIssuesAreReportSubset(t *testing.T) {
	rep := &Report{
		Valid:  false,
		Issues: []IssueKind{IssueUnusualAspectRatio, IssueVeryBlurry},
	}
	retry := RetryGuidanceFor(rep)

	if len(retry.TopIssues) != 2 {
		t.Fatalf("Expected 2 top issues, got %v", retry.TopIssues)
	}
	for _, k := range retry.TopIssues {
		if !rep.HasIssue(k) {
			t.Errorf("Top issue %q is not in the report", k)
		}
	}
	if retry.TopIssues[0] != IssueVeryBlurry {
		t.Errorf("Expected very_blurry before unusual_aspect_ratio, got %v", retry.TopIssues)
	}
}

func TestRetryGuidanceFor_UnknownIssueSortsLast(t *testing.T) {
	rep := &Report{
		Valid:  false,
		Issues: []IssueKind{IssueKind("mystery_issue"), IssueTooBright},
	}
	retry := RetryGuidanceFor(rep)

	if retry.TopIssues[0] != IssueTooBright {
		t.Errorf("Expected known issue first, got %v", retry.TopIssues)
	}
	if retry.TopIssues[1] != IssueKind("mystery_issue") {
		t.Errorf("Expected unknown issue last, got %v", retry.TopIssues)
	}
	// No template exists for the unknown kind; it is skipped, not invented.
	if len(retry.SpecificGuidance) != 1 {
		t.Fatalf("Expected 1 guidance entry, got %d", len(retry.SpecificGuidance))
	}
	if retry.SpecificGuidance[0].Issue != "Too Bright" {
		t.Errorf("Unexpected guidance entry: %+v", retry.SpecificGuidance[0])
	}
}

func TestRetryGuidanceFor_RetryMatchesValidity(t *testing.T) {
	reports := []*Report{
		{Valid: true},
		{Valid: false, Issues: []IssueKind{IssueEmptyFile}},
		{Valid: false, Issues: []IssueKind{IssueVeryBlurry, IssueTooDark}},
		{Valid: true, Issues: []IssueKind{IssueLowContrast, IssueUnevenLighting}},
	}
	for i, rep := range reports {
		retry := RetryGuidanceFor(rep)
		if retry.RetryNeeded == rep.Valid {
			t.Errorf("Report %d: retry_needed=%v contradicts valid=%v", i, retry.RetryNeeded, rep.Valid)
		}
	}
}

func TestGuidanceTemplates_CoverPriorityList(t *testing.T) {
	for _, k := range guidancePriority {
		tmpl, ok := guidanceTemplates[k]
		if !ok {
			t.Errorf("No guidance template for prioritized issue %q", k)
			continue
		}
		if tmpl.Title == "" || tmpl.Icon == "" {
			t.Errorf("Template for %q is missing title or icon", k)
		}
		if len(tmpl.Tips) < 3 || len(tmpl.Tips) > 4 {
			t.Errorf("Template for %q has %d tips, want 3-4", k, len(tmpl.Tips))
		}
	}
}

func TestBlurTemplatesShared(t *testing.T) {
	very := guidanceTemplates[IssueVeryBlurry]
	slightly := guidanceTemplates[IssueSlightlyBlurry]
	if very.Title != slightly.Title {
		t.Error("Both blur kinds should resolve to the same template")
	}
}
