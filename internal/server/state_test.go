package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprite-gen/internal/masks"
	"sprite-gen/internal/sprite"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Action
	}{
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Action{ActionUp, ActionDown, ActionRight, ActionLeft}},
		{"reroll", " rR", []Action{ActionReroll, ActionReroll, ActionReroll}},
		{"toggles", "xyc", []Action{ActionMirrorX, ActionMirrorY, ActionColored}},
		{"templates", "np", []Action{ActionNextTemplate, ActionPrevTemplate}},
		{"variation", "+-", []Action{ActionMoreVariation, ActionLessVariation}},
		{"tools", "1234", []Action{ActionToolEmpty, ActionToolSolid, ActionToolBody1, ActionToolBody2}},
		{"quit", "q", []Action{ActionQuit}},
		{"ctrl-c", "\x03", []Action{ActionQuit}},
		{"ignored", "zé", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInput([]byte(tt.in)))
		})
	}
}

func twoTemplates(t *testing.T) []*masks.Mask {
	t.Helper()
	small, err := masks.ParseMask([]byte(`{"name":"small","rows":["1.","#2"],"options":{"colored":false}}`))
	require.NoError(t, err)
	return []*masks.Mask{masks.DefaultMask(), small}
}

func TestNewDrawingState(t *testing.T) {
	d := NewDrawingState(twoTemplates(t), 42)
	assert.Equal(t, 0, d.Template)
	assert.Equal(t, "Ship", d.Mask.Name)
	assert.True(t, d.Options.MirrorX)
	assert.Equal(t, uint64(42), d.Options.Seed)
	assert.Equal(t, sprite.MaskBody1, d.Tool)
	assert.Equal(t, "Ship (1/2)", d.Title())
}

func TestDrawingStateCursorClamps(t *testing.T) {
	d := NewDrawingState(twoTemplates(t), 1)
	assert.False(t, d.Apply(ActionUp, nil))
	assert.False(t, d.Apply(ActionLeft, nil))
	assert.Equal(t, 0, d.CursorX)
	assert.Equal(t, 0, d.CursorY)

	for i := 0; i < 20; i++ {
		d.Apply(ActionRight, nil)
		d.Apply(ActionDown, nil)
	}
	assert.Equal(t, 5, d.CursorX)
	assert.Equal(t, 11, d.CursorY)

	// Switching to a smaller template pulls the cursor inside it
	d.Apply(ActionNextTemplate, nil)
	assert.Equal(t, 1, d.CursorX)
	assert.Equal(t, 1, d.CursorY)
}

func TestDrawingStateToggles(t *testing.T) {
	d := NewDrawingState(twoTemplates(t), 1)

	assert.True(t, d.Apply(ActionMirrorX, nil))
	assert.False(t, d.Options.MirrorX)
	assert.True(t, d.Apply(ActionMirrorY, nil))
	assert.True(t, d.Options.MirrorY)
	assert.True(t, d.Apply(ActionColored, nil))
	assert.False(t, d.Options.Colored)

	assert.True(t, d.Apply(ActionReroll, func() uint64 { return 99 }))
	assert.Equal(t, uint64(99), d.Options.Seed)
}

func TestDrawingStateVariationBounds(t *testing.T) {
	d := NewDrawingState(twoTemplates(t), 1)
	for i := 0; i < 20; i++ {
		d.Apply(ActionMoreVariation, nil)
	}
	assert.Equal(t, 1.0, d.Options.ColorVariations)
	for i := 0; i < 20; i++ {
		d.Apply(ActionLessVariation, nil)
	}
	assert.Equal(t, 0.0, d.Options.ColorVariations)
}

func TestDrawingStateTemplateSwitch(t *testing.T) {
	templates := twoTemplates(t)
	d := NewDrawingState(templates, 7)

	d.Apply(ActionNextTemplate, nil)
	assert.Equal(t, "small", d.Mask.Name)
	assert.False(t, d.Options.Colored)
	assert.False(t, d.Options.MirrorX)
	assert.Equal(t, uint64(7), d.Options.Seed)

	// Wraps in both directions
	d.Apply(ActionNextTemplate, nil)
	assert.Equal(t, 0, d.Template)
	d.Apply(ActionPrevTemplate, nil)
	assert.Equal(t, 1, d.Template)
}

func TestDrawingStatePaint(t *testing.T) {
	templates := twoTemplates(t)
	d := NewDrawingState(templates, 1)

	assert.True(t, d.Apply(ActionToolSolid, nil))
	assert.Equal(t, sprite.MaskSolid, d.Tool)
	assert.Equal(t, sprite.MaskSolid, d.Mask.CellAt(0, 0))

	// Painting the same cell again changes nothing
	assert.False(t, d.Apply(ActionToolSolid, nil))

	// The loaded template is untouched
	assert.Equal(t, sprite.MaskEmpty, templates[0].CellAt(0, 0))

	// Switching away and back discards edits
	d.Apply(ActionNextTemplate, nil)
	d.Apply(ActionPrevTemplate, nil)
	assert.Equal(t, sprite.MaskEmpty, d.Mask.CellAt(0, 0))
}

func TestStatus(t *testing.T) {
	d := NewDrawingState(twoTemplates(t), 3)
	lines := d.Status()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "seed 3")
	assert.Contains(t, lines[0], "mirror x:on y:off")
	assert.Contains(t, lines[0], "tool body1")
}

func TestGenerateFillsGallery(t *testing.T) {
	s := NewSSHServer(":0", "unused", twoTemplates(t))
	d := NewDrawingState(s.templates, 5)

	// Ship mirrored: 12x12 sprites, 7x7 gallery slots
	sprites, err := s.generate(context.Background(), d, 80, 24)
	require.NoError(t, err)
	assert.Len(t, sprites, 8)
	for _, sp := range sprites {
		assert.Equal(t, 12, sp.Width)
		assert.Equal(t, 12, sp.Height)
	}

	sprites, err = s.generate(context.Background(), d, 10, 4)
	require.NoError(t, err)
	assert.Empty(t, sprites)
}

func TestStartWithoutTemplates(t *testing.T) {
	err := NewSSHServer(":0", "unused", nil).Start()
	assert.ErrorIs(t, err, ErrNoTemplates)
}
