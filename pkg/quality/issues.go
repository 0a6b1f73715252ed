package quality

// IssueKind is an enumerated defect category reported by a validation.
type IssueKind string

const (
	IssueLowResolution      IssueKind = "low_resolution"
	IssueUnusualAspectRatio IssueKind = "unusual_aspect_ratio"
	IssueVeryHighResolution IssueKind = "very_high_resolution"
	IssueVeryBlurry         IssueKind = "very_blurry"
	IssueSlightlyBlurry     IssueKind = "slightly_blurry"
	IssueTooDark            IssueKind = "too_dark"
	IssueTooBright          IssueKind = "too_bright"
	IssueLowContrast        IssueKind = "low_contrast"
	IssueUnevenLighting     IssueKind = "uneven_lighting"
	IssueInvalidImage       IssueKind = "invalid_image"
	IssueEmptyFile          IssueKind = "empty_file"
	IssueFileTooLarge       IssueKind = "file_too_large"
)

// blockingIssues is the subset of issue kinds that invalidate a report.
// IssueLowContrast and IssueUnevenLighting degrade the quality score but
// never flip a report to invalid on their own.
var blockingIssues = map[IssueKind]bool{
	IssueLowResolution:      true,
	IssueUnusualAspectRatio: true,
	IssueInvalidImage:       true,
	IssueEmptyFile:          true,
	IssueFileTooLarge:       true,
	IssueVeryBlurry:         true,
	IssueSlightlyBlurry:     true,
	IssueTooDark:            true,
	IssueTooBright:          true,
}

// Blocking reports whether this issue kind invalidates a report on its own.
func (k IssueKind) Blocking() bool {
	return blockingIssues[k]
}
