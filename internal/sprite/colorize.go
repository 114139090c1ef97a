package sprite

import (
	"math"

	"github.com/gogpu/gg"
)

const (
	// Unset is the value of pixels no colorizer wrote: empty cells in
	// gradient output, and the body color of one-bit output.
	Unset uint32 = 0xFFFFFFFF
	// MonoBorder is the outline color of one-bit output.
	MonoBorder uint32 = 0x00000000
)

// Monochrome maps outline cells to MonoBorder and everything else to Unset.
func Monochrome(cells []Cell) []uint32 {
	out := make([]uint32, len(cells))
	for i, c := range cells {
		if c.IsBorder() {
			out[i] = MonoBorder
		} else {
			out[i] = Unset
		}
	}
	return out
}

// Gradient colors the cells with a hue that drifts in patches along one
// random axis. Brightness follows a half sine along that axis plus
// per-pixel noise, and outline pixels are darkened by opts.EdgeBrightness.
// Empty cells keep Unset. Every other pixel is packed as 0x00RRGGBB.
func Gradient(cells []Cell, width, height int, opts Options, rng Source) []uint32 {
	opts = opts.clamped()

	out := make([]uint32, len(cells))
	for i := range out {
		out[i] = Unset
	}

	vertical := rng.Float64() > 0.5
	saturation := clamp01(rng.Float64() * opts.Saturation)
	hue := rng.Float64()

	variationCheck := 1 - opts.ColorVariations
	brightnessInv := 1 - opts.BrightnessNoise

	uLen, vLen := width, height
	if vertical {
		uLen, vLen = height, width
	}

	for u := 0; u < uLen; u++ {
		// |mean of three samples| stays near zero
		isNewColor := math.Abs((rng.Range(-1, 1) + rng.Range(-1, 1) + rng.Range(-1, 1)) / 3)
		if isNewColor > variationCheck {
			hue = rng.Float64()
		}

		uSin := math.Sin(float64(u) / float64(uLen) * math.Pi)

		for v := 0; v < vLen; v++ {
			index := u + v*width
			if vertical {
				index = v + u*width
			}

			c := cells[index]
			if c == CellEmpty {
				continue
			}

			brightness := uSin*brightnessInv + rng.Range(0, opts.BrightnessNoise)
			rgb := gg.HSL(hue*360, saturation, clamp01(brightness))
			r, g, b := channel(rgb.R), channel(rgb.G), channel(rgb.B)

			if c.IsBorder() {
				r = uint8(float64(r) * opts.EdgeBrightness)
				g = uint8(float64(g) * opts.EdgeBrightness)
				b = uint8(float64(b) * opts.EdgeBrightness)
			}

			out[index] = uint32(r)<<16 | uint32(g)<<8 | uint32(b)
		}
	}

	return out
}

// channel converts a [0,1] color component to 8 bits.
func channel(v float64) uint8 {
	v = math.Round(v * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
