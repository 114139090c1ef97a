package masks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sprite-gen/internal/sprite"
)

// Mask is a sprite template loaded from disk.
type Mask struct {
	Name   string
	Width  int
	Height int
	Grid   [][]sprite.MaskCell // [y][x]

	overrides jsonOptions
}

// jsonMask is the on-disk JSON format.
type jsonMask struct {
	Name    string      `json:"name"`
	Width   int         `json:"width,omitempty"`
	Height  int         `json:"height,omitempty"`
	Rows    []string    `json:"rows"`
	Options jsonOptions `json:"options,omitempty"`
}

// jsonOptions holds per-template overrides of sprite.DefaultOptions.
// Absent fields keep the caller's value.
type jsonOptions struct {
	MirrorX         *bool    `json:"mirror_x,omitempty"`
	MirrorY         *bool    `json:"mirror_y,omitempty"`
	Colored         *bool    `json:"colored,omitempty"`
	EdgeBrightness  *float64 `json:"edge_brightness,omitempty"`
	ColorVariations *float64 `json:"color_variations,omitempty"`
	BrightnessNoise *float64 `json:"brightness_noise,omitempty"`
	Saturation      *float64 `json:"saturation,omitempty"`
	Seed            *uint64  `json:"seed,omitempty"`
}

// LoadMask reads a JSON template file from disk.
func LoadMask(path string) (*Mask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mask file: %w", err)
	}
	m, err := ParseMask(data)
	if err != nil {
		return nil, err
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// ParseMask decodes a JSON template.
func ParseMask(data []byte) (*Mask, error) {
	var jm jsonMask
	if err := json.Unmarshal(data, &jm); err != nil {
		return nil, fmt.Errorf("parse mask JSON: %w", err)
	}

	grid, err := ParseRows(jm.Rows)
	if err != nil {
		return nil, err
	}

	height := len(grid)
	width := len(grid[0])
	if jm.Height != 0 && jm.Height != height {
		return nil, fmt.Errorf("%w: %d rows, declared height %d", ErrRaggedMask, height, jm.Height)
	}
	if jm.Width != 0 && jm.Width != width {
		return nil, fmt.Errorf("%w: rows are %d wide, declared width %d", ErrRaggedMask, width, jm.Width)
	}

	return &Mask{
		Name:      jm.Name,
		Width:     width,
		Height:    height,
		Grid:      grid,
		overrides: jm.Options,
	}, nil
}

// ParseRows parses text rows ('#' solid, '.' empty, '1' body, '2' body or
// outline) into a grid.
func ParseRows(rows []string) ([][]sprite.MaskCell, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMask
	}

	grid := make([][]sprite.MaskCell, len(rows))
	width := -1
	for y, row := range rows {
		line := make([]sprite.MaskCell, 0, len(row))
		for x, r := range []rune(row) {
			c, ok := sprite.MaskCellFromRune(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, r, x, y)
			}
			line = append(line, c)
		}
		if width == -1 {
			width = len(line)
		}
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedMask, y, len(line), width)
		}
		grid[y] = line
	}
	return grid, nil
}

// NewMask builds a template from a grid. The grid is used as is.
func NewMask(name string, grid [][]sprite.MaskCell) (*Mask, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyMask
	}
	for y, row := range grid {
		if len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedMask, y, len(row), len(grid[0]))
		}
	}
	return &Mask{Name: name, Width: len(grid[0]), Height: len(grid), Grid: grid}, nil
}

// CellAt returns the cell at the given coordinates.
// Out-of-bounds coordinates are empty.
func (m *Mask) CellAt(x, y int) sprite.MaskCell {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return sprite.MaskEmpty
	}
	return m.Grid[y][x]
}

// Set paints a cell. Out-of-bounds coordinates are ignored.
func (m *Mask) Set(x, y int, c sprite.MaskCell) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Grid[y][x] = c
}

// Cells returns the template flattened in row-major order, ready for
// sprite.Generate together with m.Width.
func (m *Mask) Cells() []sprite.MaskCell {
	cells := make([]sprite.MaskCell, 0, m.Width*m.Height)
	for _, row := range m.Grid {
		cells = append(cells, row...)
	}
	return cells
}

// Clone returns a deep copy, safe to edit independently.
func (m *Mask) Clone() *Mask {
	c := *m
	c.Grid = make([][]sprite.MaskCell, len(m.Grid))
	for y, row := range m.Grid {
		c.Grid[y] = append([]sprite.MaskCell(nil), row...)
	}
	return &c
}

// Options applies the template's option overrides to base.
func (m *Mask) Options(base sprite.Options) sprite.Options {
	o := m.overrides
	if o.MirrorX != nil {
		base.MirrorX = *o.MirrorX
	}
	if o.MirrorY != nil {
		base.MirrorY = *o.MirrorY
	}
	if o.Colored != nil {
		base.Colored = *o.Colored
	}
	if o.EdgeBrightness != nil {
		base.EdgeBrightness = *o.EdgeBrightness
	}
	if o.ColorVariations != nil {
		base.ColorVariations = *o.ColorVariations
	}
	if o.BrightnessNoise != nil {
		base.BrightnessNoise = *o.BrightnessNoise
	}
	if o.Saturation != nil {
		base.Saturation = *o.Saturation
	}
	if o.Seed != nil {
		base.Seed = *o.Seed
	}
	return base
}

// Rows returns the template as text rows.
func (m *Mask) Rows() []string {
	rows := make([]string, m.Height)
	for y, row := range m.Grid {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteRune(c.Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

// Encode returns the template in the on-disk JSON format.
func (m *Mask) Encode() ([]byte, error) {
	jm := jsonMask{
		Name:    m.Name,
		Width:   m.Width,
		Height:  m.Height,
		Rows:    m.Rows(),
		Options: m.overrides,
	}
	return json.MarshalIndent(jm, "", "  ")
}

// Stats counts the cells of each kind.
func (m *Mask) Stats() map[sprite.MaskCell]int {
	counts := make(map[sprite.MaskCell]int, 4)
	for _, row := range m.Grid {
		for _, c := range row {
			counts[c]++
		}
	}
	return counts
}

// LoadMasks scans a directory for *.json files, loads each as a Mask,
// and returns them indexed by Name.
func LoadMasks(dir string) (map[string]*Mask, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read masks directory: %w", err)
	}

	all := make(map[string]*Mask)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		m, err := LoadMask(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		if _, exists := all[m.Name]; exists {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateName, m.Name, entry.Name())
		}
		all[m.Name] = m
	}
	return all, nil
}

// DefaultMask returns the built-in half spaceship: 6x12, mirrored along X.
func DefaultMask() *Mask {
	grid, err := ParseRows([]string{
		"......",
		"....11",
		"....1#",
		"...11#",
		"...11#",
		"..111#",
		".11122",
		".11122",
		".11122",
		".1111#",
		"...111",
		"......",
	})
	if err != nil {
		panic(err)
	}
	mirror := true
	return &Mask{
		Name:      "Ship",
		Width:     6,
		Height:    12,
		Grid:      grid,
		overrides: jsonOptions{MirrorX: &mirror},
	}
}
