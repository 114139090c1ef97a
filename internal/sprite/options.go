package sprite

// Options controls a single generation call.
type Options struct {
	// MirrorX reflects the result horizontally, doubling its width.
	MirrorX bool
	// MirrorY reflects the result vertically, doubling its height.
	MirrorY bool
	// Colored selects the HSL gradient colorizer. When false the output is
	// one bit: black outline on white.
	Colored bool

	// The remaining fields only apply when Colored is set. All are 0–1 and
	// are clamped to that range.

	// EdgeBrightness scales the RGB channels of outline pixels.
	EdgeBrightness float64
	// ColorVariations is how likely the hue is to change along the gradient.
	ColorVariations float64
	// BrightnessNoise is the amplitude of per-pixel brightness jitter.
	BrightnessNoise float64
	// Saturation is the upper bound of the random saturation.
	Saturation float64

	// Seed drives the random source. Equal seeds give equal sprites.
	Seed uint64
}

// DefaultOptions returns colored, unmirrored options.
func DefaultOptions() Options {
	return Options{
		Colored:         true,
		EdgeBrightness:  0.3,
		ColorVariations: 0.2,
		BrightnessNoise: 0.3,
		Saturation:      0.5,
	}
}

func (o Options) clamped() Options {
	o.EdgeBrightness = clamp01(o.EdgeBrightness)
	o.ColorVariations = clamp01(o.ColorVariations)
	o.BrightnessNoise = clamp01(o.BrightnessNoise)
	o.Saturation = clamp01(o.Saturation)
	return o
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
