package sprite

// Mirror reflects a colored buffer across the requested axes and returns the
// new buffer with its dimensions. With no axis set the input is returned
// untouched. Every output pixel is a copy of exactly one input pixel.
func Mirror(pixels []uint32, width, height int, mirrorX, mirrorY bool) ([]uint32, int, int) {
	if !mirrorX && !mirrorY {
		return pixels, width, height
	}

	outW, outH := width, height
	if mirrorX {
		outW *= 2
	}
	if mirrorY {
		outH *= 2
	}
	out := make([]uint32, outW*outH)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			value := pixels[x+y*width]
			mx := outW - x - 1
			my := outH - y - 1

			out[x+y*outW] = value
			if mirrorX {
				out[mx+y*outW] = value
			}
			if mirrorY {
				out[x+my*outW] = value
			}
			if mirrorX && mirrorY {
				out[mx+my*outW] = value
			}
		}
	}

	return out, outW, outH
}
