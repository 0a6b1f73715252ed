package quality

import (
	"gonum.org/v1/gonum/stat"
)

// Blur levels reported in the "blur_level" label.
const (
	BlurLevelSharp          = "sharp"
	BlurLevelSlightlyBlurry = "slightly_blurry"
	BlurLevelVeryBlurry     = "very_blurry"
	BlurLevelUnknown        = "unknown"
)

// checkBlur scores sharpness from the variance of a Laplacian edge response
// over the luminance plane. Sharp photographs have many strong edges and a
// high variance; smoothed ones do not.
func checkBlur(r *Raster, cfg Config) CheckResult {
	res := CheckResult{
		Valid:   true,
		Score:   1.0,
		Metrics: map[string]float64{},
		Labels:  map[string]string{},
	}

	edges, err := laplacianEdges(r)
	if err != nil {
		// Fail open: a raster too small to convolve must never abort the
		// overall validation.
		res.Metrics["blur_score"] = 0
		res.Labels["blur_level"] = BlurLevelUnknown
		return res
	}

	blurScore := stat.Variance(edges, nil)

	switch {
	case blurScore < cfg.BlurThreshold*0.5:
		res.Valid = false
		res.Score = 0.3
		res.Issues = append(res.Issues, IssueVeryBlurry)
		res.Guidance = append(res.Guidance,
			"Image is very blurry. Please retake the photo with better focus",
			"Tips: Tap on the crop in your camera app to focus before taking the photo",
			"Hold your phone steady or use a stable surface")
		res.Labels["blur_level"] = BlurLevelVeryBlurry
	case blurScore < cfg.BlurThreshold:
		res.Valid = false
		res.Score = 0.6
		res.Issues = append(res.Issues, IssueSlightlyBlurry)
		res.Guidance = append(res.Guidance,
			"Image is slightly blurry. For best results, retake with better focus",
			"Tips: Ensure good lighting and hold the camera steady")
		res.Labels["blur_level"] = BlurLevelSlightlyBlurry
	default:
		res.Labels["blur_level"] = BlurLevelSharp
	}

	res.Metrics["blur_score"] = round2(blurScore)
	res.Metrics["blur_threshold"] = cfg.BlurThreshold
	return res
}

// laplacianEdges applies the 3x3 kernel [0,1,0; 1,-4,1; 0,1,0] to the
// luminance plane and returns the edge magnitudes of every interior pixel.
func laplacianEdges(r *Raster) ([]float64, error) {
	width, height := r.Width, r.Height
	if width < 3 || height < 3 {
		return nil, errDegenerateRaster
	}

	lum := r.luminance()
	edges := make([]float64, 0, (width-2)*(height-2))
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			center := lum[y*width+x]
			top := lum[(y-1)*width+x]
			bottom := lum[(y+1)*width+x]
			left := lum[y*width+x-1]
			right := lum[y*width+x+1]
			edges = append(edges, -4*center+top+bottom+left+right)
		}
	}

	// stat.Variance needs at least two samples.
	if len(edges) < 2 {
		return nil, errDegenerateRaster
	}
	return edges, nil
}
