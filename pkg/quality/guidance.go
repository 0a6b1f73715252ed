package quality

import (
	"fmt"
	"sort"
)

// guidancePriority orders issues by how much fixing them improves the next
// shot. Unrecognized kinds keep their report order after all known ones.
var guidancePriority = []IssueKind{
	IssueLowResolution,
	IssueVeryBlurry,
	IssueTooDark,
	IssueTooBright,
	IssueSlightlyBlurry,
	IssueUnevenLighting,
	IssueLowContrast,
	IssueUnusualAspectRatio,
}

// GuidanceTemplate is a fixed icon plus actionable tips for one issue kind.
type GuidanceTemplate struct {
	Title string
	Icon  string
	Tips  []string
}

var blurryTemplate = GuidanceTemplate{
	Title: "Blurry Image",
	Icon:  "🔍",
	Tips: []string{
		"Tap on the crop in your camera app to focus",
		"Hold your phone steady or rest it on a stable surface",
		"Ensure good lighting for faster shutter speed",
		"Clean your camera lens",
	},
}

// guidanceTemplates covers every kind in guidancePriority so the retry
// generator never falls back to ad hoc strings.
var guidanceTemplates = map[IssueKind]GuidanceTemplate{
	IssueLowResolution: {
		Title: "Low Resolution",
		Icon:  "📏",
		Tips: []string{
			"Use your phone camera's highest quality setting",
			"Get closer to the crop for more detail",
			"Ensure camera is set to maximum resolution",
		},
	},
	IssueVeryBlurry:     blurryTemplate,
	IssueSlightlyBlurry: blurryTemplate,
	IssueTooDark: {
		Title: "Too Dark",
		Icon:  "🌙",
		Tips: []string{
			"Take photos during daytime",
			"Move to a brighter location",
			"Use additional lighting if indoors",
			"Avoid shadows covering the crop",
		},
	},
	IssueTooBright: {
		Title: "Too Bright",
		Icon:  "☀️",
		Tips: []string{
			"Avoid direct sunlight",
			"Take photos in shade or on cloudy days",
			"Adjust camera exposure down if available",
			"Position yourself to block harsh light",
		},
	},
	IssueUnevenLighting: {
		Title: "Uneven Lighting",
		Icon:  "💡",
		Tips: []string{
			"Use diffused natural light",
			"Avoid flash photography",
			"Take photos on cloudy days for even lighting",
			"Ensure no harsh shadows on the crop",
		},
	},
	IssueLowContrast: {
		Title: "Low Contrast",
		Icon:  "🌗",
		Tips: []string{
			"Ensure even lighting without harsh shadows",
			"Avoid hazy or foggy conditions",
			"Photograph against a plain, contrasting background",
		},
	},
	IssueUnusualAspectRatio: {
		Title: "Unusual Framing",
		Icon:  "🖼️",
		Tips: []string{
			"Capture the crop in a balanced, square-like frame",
			"Avoid panorama or cropped strip shots",
			"Keep the whole plant inside the frame",
		},
	},
}

// maxTopIssues caps how many issues the retry message asks the user to fix
// at once.
const maxTopIssues = 3

// RetryGuidanceFor turns a failing report into a prioritized, actionable
// retake message. For a valid report it tells the caller to proceed.
func RetryGuidanceFor(rep *Report) *RetryGuidance {
	if rep.Valid {
		return &RetryGuidance{
			RetryNeeded: false,
			Message:     "Image quality is good. You can proceed with analysis.",
		}
	}

	sorted := make([]IssueKind, len(rep.Issues))
	copy(sorted, rep.Issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priorityIndex(sorted[i]) < priorityIndex(sorted[j])
	})

	topIssues := sorted
	if len(topIssues) > maxTopIssues {
		topIssues = topIssues[:maxTopIssues]
	}

	specific := make([]IssueGuidance, 0, len(topIssues))
	for _, k := range topIssues {
		tmpl, ok := guidanceTemplates[k]
		if !ok {
			continue
		}
		specific = append(specific, IssueGuidance{
			Issue: tmpl.Title,
			Icon:  tmpl.Icon,
			Tips:  tmpl.Tips,
		})
	}

	return &RetryGuidance{
		RetryNeeded:      true,
		Message:          fmt.Sprintf("Please retake the photo to address %d quality issue(s)", len(topIssues)),
		QualityScore:     rep.QualityScore,
		TopIssues:        topIssues,
		SpecificGuidance: specific,
		AllGuidance:      rep.Guidance,
	}
}

func priorityIndex(k IssueKind) int {
	for i, p := range guidancePriority {
		if p == k {
			return i
		}
	}
	return len(guidancePriority)
}
