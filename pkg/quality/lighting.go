package quality

import (
	"gonum.org/v1/gonum/stat"
)

// Lighting labels reported in the "lighting_quality" label.
const (
	LightingGood    = "good"
	LightingFair    = "fair"
	LightingPoor    = "poor"
	LightingUnknown = "unknown"
)

// Histogram bucket boundaries for the uneven-lighting signal: pixels in
// [0, 85] count as dark, pixels in [171, 255] count as bright.
const (
	darkBucketMax     = 85
	brightBucketStart = 171
)

// intensityLevels is the shared 0..255 support for histogram statistics.
var intensityLevels = func() []float64 {
	levels := make([]float64, 256)
	for i := range levels {
		levels[i] = float64(i)
	}
	return levels
}()

// checkLighting computes brightness, contrast and exposure-distribution
// signals from per-channel intensity histograms. Brightness outside the
// configured band blocks validity; low contrast and uneven lighting only
// degrade the score.
func checkLighting(r *Raster, cfg Config) CheckResult {
	res := CheckResult{
		Valid:   true,
		Score:   1.0,
		Metrics: map[string]float64{},
		Labels:  map[string]string{},
	}

	totalPixels := r.Width * r.Height
	if totalPixels == 0 {
		// Fail open, same policy as the blur check.
		res.Metrics["brightness"] = 0
		res.Metrics["contrast"] = 0
		res.Labels["lighting_quality"] = LightingUnknown
		return res
	}

	var redHist, greenHist, blueHist [256]float64
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			red, green, blue := r.rgbAt(x, y)
			redHist[red]++
			greenHist[green]++
			blueHist[blue]++
		}
	}

	// Mean channel intensity and mean per-channel spread, both derived from
	// the histograms as weighted statistics.
	brightness := (stat.Mean(intensityLevels, redHist[:]) +
		stat.Mean(intensityLevels, greenHist[:]) +
		stat.Mean(intensityLevels, blueHist[:])) / 3
	contrast := (stat.PopStdDev(intensityLevels, redHist[:]) +
		stat.PopStdDev(intensityLevels, greenHist[:]) +
		stat.PopStdDev(intensityLevels, blueHist[:])) / 3

	score := 1.0

	switch {
	case brightness < cfg.MinBrightness:
		res.Issues = append(res.Issues, IssueTooDark)
		res.Guidance = append(res.Guidance,
			"Image is too dark. Please take the photo in better lighting",
			"Tips: Take photos during daytime or use additional lighting",
			"Avoid shadows covering the crop")
		score = brightness / cfg.MinBrightness
	case brightness > cfg.MaxBrightness:
		res.Issues = append(res.Issues, IssueTooBright)
		res.Guidance = append(res.Guidance,
			"Image is overexposed (too bright). Please reduce exposure",
			"Tips: Avoid direct sunlight, take photos in shade or cloudy conditions",
			"Adjust camera exposure settings if available")
		score = (255 - brightness) / (255 - cfg.MaxBrightness)
	}

	if contrast < cfg.MinContrast {
		res.Issues = append(res.Issues, IssueLowContrast)
		res.Guidance = append(res.Guidance,
			"Image has low contrast, making details hard to see",
			"Tips: Ensure even lighting without harsh shadows")
		score *= 0.8
	}

	// Uneven lighting: a heavy concentration of pixels at either end of the
	// averaged intensity histogram indicates harsh shadows or bright spots.
	var darkPixels, brightPixels float64
	for i := 0; i <= darkBucketMax; i++ {
		darkPixels += (redHist[i] + greenHist[i] + blueHist[i]) / 3
	}
	for i := brightBucketStart; i < 256; i++ {
		brightPixels += (redHist[i] + greenHist[i] + blueHist[i]) / 3
	}
	darkPct := darkPixels / float64(totalPixels)
	brightPct := brightPixels / float64(totalPixels)

	if darkPct > cfg.DarkFraction || brightPct > cfg.BrightFraction {
		res.Issues = append(res.Issues, IssueUnevenLighting)
		res.Guidance = append(res.Guidance,
			"Lighting is uneven with harsh shadows or bright spots",
			"Tips: Use diffused natural light or take photos on a cloudy day",
			"Avoid flash photography which creates harsh shadows")
		score *= 0.85
	}

	switch len(res.Issues) {
	case 0:
		res.Labels["lighting_quality"] = LightingGood
	case 1:
		res.Labels["lighting_quality"] = LightingFair
	default:
		res.Labels["lighting_quality"] = LightingPoor
	}

	res.Score = clamp01(score)
	for _, k := range res.Issues {
		if k.Blocking() {
			res.Valid = false
			break
		}
	}

	res.Metrics["brightness"] = round2(brightness)
	res.Metrics["contrast"] = round2(contrast)
	res.Metrics["dark_percentage"] = round1(darkPct * 100)
	res.Metrics["bright_percentage"] = round1(brightPct * 100)
	return res
}
