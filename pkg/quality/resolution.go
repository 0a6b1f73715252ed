package quality

import "fmt"

// checkResolution validates minimum size and aspect ratio. Oversized
// dimensions are reported as informational only and never affect the score.
func checkResolution(r *Raster, cfg Config) CheckResult {
	width, height := r.Width, r.Height

	res := CheckResult{
		Valid:   true,
		Metrics: map[string]float64{},
	}
	score := 1.0

	if min(width, height) < cfg.MinDimension {
		res.Issues = append(res.Issues, IssueLowResolution)
		res.Guidance = append(res.Guidance,
			fmt.Sprintf("Image resolution is too low (%dx%d). Please take a photo with at least %dx%d pixels",
				width, height, cfg.MinDimension, cfg.MinDimension),
			"Tips: Use your phone camera's highest quality setting")
		score = float64(min(width, height)) / float64(cfg.MinDimension)
	}

	aspectRatio := 1.0
	if height > 0 {
		aspectRatio = float64(width) / float64(height)
	}
	if aspectRatio > cfg.MaxAspectRatio || aspectRatio < cfg.MinAspectRatio {
		res.Issues = append(res.Issues, IssueUnusualAspectRatio)
		res.Guidance = append(res.Guidance,
			"Image has an unusual aspect ratio. Try to capture the crop in a more balanced, square-like frame")
		score *= 0.8
	}

	if max(width, height) > cfg.MaxDimension {
		// Informational: may indicate poor compression, does not lower the score.
		res.Issues = append(res.Issues, IssueVeryHighResolution)
		res.Guidance = append(res.Guidance,
			"Image resolution is very high. Consider reducing it to improve upload speed")
	}

	res.Score = clamp01(score)
	for _, k := range res.Issues {
		if k.Blocking() {
			res.Valid = false
			break
		}
	}

	res.Metrics["width"] = float64(width)
	res.Metrics["height"] = float64(height)
	res.Metrics["aspect_ratio"] = round2(aspectRatio)
	return res
}
