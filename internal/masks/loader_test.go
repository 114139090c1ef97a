package masks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprite-gen/internal/sprite"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseMask(t *testing.T) {
	m, err := ParseMask([]byte(`{
		"name": "Bug",
		"rows": [".1#", "22."],
		"options": {"mirror_y": true, "saturation": 0.9}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Bug", m.Name)
	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, []sprite.MaskCell{
		sprite.MaskEmpty, sprite.MaskBody1, sprite.MaskSolid,
		sprite.MaskBody2, sprite.MaskBody2, sprite.MaskEmpty,
	}, m.Cells())

	opts := m.Options(sprite.DefaultOptions())
	assert.True(t, opts.MirrorY)
	assert.False(t, opts.MirrorX)
	assert.True(t, opts.Colored)
	assert.Equal(t, 0.9, opts.Saturation)
	assert.Equal(t, 0.3, opts.EdgeBrightness)
}

func TestParseMaskErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		err  error
	}{
		{"no rows", `{"rows": []}`, ErrEmptyMask},
		{"empty row", `{"rows": [""]}`, ErrEmptyMask},
		{"ragged", `{"rows": ["..", "..."]}`, ErrRaggedMask},
		{"declared width", `{"width": 4, "rows": ["..", ".."]}`, ErrRaggedMask},
		{"declared height", `{"height": 3, "rows": ["..", ".."]}`, ErrRaggedMask},
		{"unknown rune", `{"rows": [".x"]}`, ErrUnknownCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMask([]byte(tt.json))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := ParseMask([]byte(`{not json`))
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	m := DefaultMask()
	data, err := m.Encode()
	require.NoError(t, err)

	back, err := ParseMask(data)
	require.NoError(t, err)
	assert.Equal(t, m.Name, back.Name)
	assert.Equal(t, m.Grid, back.Grid)
	assert.Equal(t, m.Options(sprite.DefaultOptions()), back.Options(sprite.DefaultOptions()))
}

func TestDefaultMask(t *testing.T) {
	m := DefaultMask()
	assert.Equal(t, 6, m.Width)
	assert.Equal(t, 12, m.Height)
	assert.True(t, m.Options(sprite.DefaultOptions()).MirrorX)

	stats := m.Stats()
	total := 0
	for _, n := range stats {
		total += n
	}
	assert.Equal(t, 72, total)
	assert.Equal(t, 6, stats[sprite.MaskBody2])
	assert.Equal(t, 5, stats[sprite.MaskSolid])

	s, err := sprite.Generate(m.Cells(), m.Width, m.Options(sprite.DefaultOptions()))
	require.NoError(t, err)
	assert.Equal(t, 12, s.Width)
	assert.Equal(t, 12, s.Height)
}

func TestCellAtAndSet(t *testing.T) {
	m := DefaultMask()
	assert.Equal(t, sprite.MaskEmpty, m.CellAt(-1, 0))
	assert.Equal(t, sprite.MaskEmpty, m.CellAt(6, 0))
	assert.Equal(t, sprite.MaskSolid, m.CellAt(5, 2))

	c := m.Clone()
	c.Set(0, 0, sprite.MaskSolid)
	c.Set(99, 99, sprite.MaskSolid)
	assert.Equal(t, sprite.MaskSolid, c.CellAt(0, 0))
	assert.Equal(t, sprite.MaskEmpty, m.CellAt(0, 0), "clone must not share rows")
}

func TestLoadMasks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"name": "A", "rows": ["1#"]}`)
	writeFile(t, dir, "unnamed.json", `{"rows": ["22"]}`)
	writeFile(t, dir, "notes.txt", `ignored`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	all, err := LoadMasks(dir)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Contains(t, all, "A")
	assert.Contains(t, all, "unnamed")

	writeFile(t, dir, "b.json", `{"name": "A", "rows": ["11"]}`)
	_, err = LoadMasks(dir)
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = LoadMasks(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestNewMask(t *testing.T) {
	_, err := NewMask("x", nil)
	assert.ErrorIs(t, err, ErrEmptyMask)

	_, err = NewMask("x", [][]sprite.MaskCell{{sprite.MaskBody1}, {}})
	assert.ErrorIs(t, err, ErrRaggedMask)

	m, err := NewMask("x", [][]sprite.MaskCell{{sprite.MaskBody1, sprite.MaskSolid}})
	require.NoError(t, err)
	assert.Equal(t, []string{"1#"}, m.Rows())
}

func TestBundledTemplates(t *testing.T) {
	all, err := LoadMasks(filepath.Join("..", "..", "assets", "masks"))
	require.NoError(t, err)
	require.Contains(t, all, "Ship")

	ship := all["Ship"]
	assert.Equal(t, DefaultMask().Grid, ship.Grid)
	assert.Equal(t, DefaultMask().Options(sprite.DefaultOptions()), ship.Options(sprite.DefaultOptions()))

	for name, m := range all {
		_, err := sprite.Generate(m.Cells(), m.Width, m.Options(sprite.DefaultOptions()))
		assert.NoError(t, err, name)
	}
}
