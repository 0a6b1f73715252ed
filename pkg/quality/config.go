package quality

// Config holds the thresholds used by the validation engine. A Config is
// passed by value and never mutated, so a single Engine is safe for
// concurrent use and per-deployment tuning happens at construction time.
type Config struct {
	// Resolution thresholds
	MinDimension   int
	MaxDimension   int
	MinAspectRatio float64
	MaxAspectRatio float64

	// Sharpness threshold (variance of the Laplacian edge response)
	BlurThreshold float64

	// Lighting thresholds
	MinBrightness  float64
	MaxBrightness  float64
	MinContrast    float64
	DarkFraction   float64
	BrightFraction float64

	// Input size cap, enforced before decoding
	MaxInputBytes int64
}

// DefaultConfig returns the thresholds used in production deployments.
func DefaultConfig() Config {
	return Config{
		MinDimension:   300,
		MaxDimension:   4000,
		MinAspectRatio: 0.33,
		MaxAspectRatio: 3.0,
		BlurThreshold:  100.0,
		MinBrightness:  30,
		MaxBrightness:  225,
		MinContrast:    20,
		DarkFraction:   0.40,
		BrightFraction: 0.40,
		MaxInputBytes:  5 * 1024 * 1024,
	}
}
