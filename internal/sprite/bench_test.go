package sprite

import "testing"

func benchMask(w, h int) []MaskCell {
	values := make([]int8, w*h)
	for i := range values {
		values[i] = int8(i%3 - 1)
	}
	return FromInt8(values)
}

func benchmarkGenerate(b *testing.B, size int, colored bool) {
	mask := benchMask(size, size)
	opts := DefaultOptions()
	opts.Colored = colored
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opts.Seed = uint64(i)
		s, err := Generate(mask, size, opts)
		if err != nil {
			b.Fatal(err)
		}
		if len(s.Pixels) != size*size {
			b.Fatalf("got %d pixels", len(s.Pixels))
		}
	}
}

func BenchmarkColor10x10(b *testing.B) { benchmarkGenerate(b, 10, true) }
func BenchmarkColor100x100(b *testing.B) { benchmarkGenerate(b, 100, true) }
func BenchmarkMono10x10(b *testing.B) { benchmarkGenerate(b, 10, false) }
func BenchmarkMono100x100(b *testing.B) { benchmarkGenerate(b, 100, false) }
