package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprite-gen/internal/render"
	"sprite-gen/internal/sprite"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestParseFlagsDefaults(t *testing.T) {
	var stderr bytes.Buffer
	c, m, err := parseFlags([]string{"-seed", "9"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "Ship", m.Name)
	assert.True(t, c.opts.MirrorX, "ship template mirrors X")
	assert.True(t, c.opts.Colored)
	assert.Equal(t, uint64(9), c.opts.Seed)
	assert.Equal(t, 1, c.count)
}

func TestParseFlagsOverrideTemplate(t *testing.T) {
	path := writeFile(t, "t.json", `{"rows":["1#"],"options":{"mirror_y":true,"edge_brightness":0.9,"seed":5}}`)

	c, m, err := parseFlags([]string{"-mask", path}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "t", m.Name)
	assert.True(t, c.opts.MirrorY)
	assert.Equal(t, 0.9, c.opts.EdgeBrightness)
	assert.Equal(t, uint64(5), c.opts.Seed)

	c, _, err = parseFlags([]string{"-mask", path, "-mirror-y=false", "-edge", "0.1", "-seed", "3", "-colored=false"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, c.opts.MirrorY)
	assert.False(t, c.opts.Colored)
	assert.Equal(t, 0.1, c.opts.EdgeBrightness)
	assert.Equal(t, uint64(3), c.opts.Seed)
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad count", []string{"-count", "0"}},
		{"extra arg", []string{"oops"}},
		{"missing mask", []string{"-mask", "/nonexistent/mask.json"}},
		{"unknown flag", []string{"-bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseFlags(tt.args, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}

func TestRunANSI(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-seed", "1", "-count", "2"}, &stdout, &stderr))

	// Two 12x12 ship sprites: 6 lines each, separated by a blank line
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	assert.Len(t, lines, 13)
	assert.Empty(t, lines[6])
	assert.Contains(t, stderr.String(), "seed 1")
}

func TestRunPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sheet.png")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-seed", "1", "-count", "3", "-cols", "2", "-scale", "2", "-out", out}, &stdout, &stderr))
	assert.Empty(t, stdout.String())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, (2*(12+4)+4)*2, img.Bounds().Dx())
	assert.Equal(t, (2*(12+4)+4)*2, img.Bounds().Dy())
}

func TestRunPNGMask(t *testing.T) {
	maskPath := filepath.Join(t.TempDir(), "tiny.png")
	require.NoError(t, render.SaveMaskPNG(maskPath, [][]sprite.MaskCell{
		{sprite.MaskBody1, sprite.MaskSolid},
		{sprite.MaskBody2, sprite.MaskEmpty},
	}))

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-mask", maskPath, "-seed", "2"}, &stdout, &bytes.Buffer{}))
	// 2x2 template, unmirrored: one line of half blocks
	assert.Equal(t, 1, strings.Count(stdout.String(), "\n"))
	assert.Equal(t, 2, strings.Count(stdout.String(), string(render.UpperHalf)))
}
