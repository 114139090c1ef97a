package server

import (
	"fmt"

	"sprite-gen/internal/masks"
	"sprite-gen/internal/sprite"
)

// Action represents a viewer input action.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionReroll
	ActionMirrorX
	ActionMirrorY
	ActionColored
	ActionNextTemplate
	ActionPrevTemplate
	ActionMoreVariation
	ActionLessVariation
	ActionToolEmpty
	ActionToolSolid
	ActionToolBody1
	ActionToolBody2
	ActionQuit
)

// variationStep is how much +/- changes the color variation option.
const variationStep = 0.1

// DrawingState is everything one preview session can change: the template
// being edited, the fill tool, the generation options and the base seed.
type DrawingState struct {
	Templates []*masks.Mask
	Template  int         // index into Templates
	Mask      *masks.Mask // editable copy of Templates[Template]
	Tool      sprite.MaskCell
	Options   sprite.Options
	CursorX   int
	CursorY   int
}

// NewDrawingState starts a session on the first template with its own
// option overrides applied. templates must not be empty.
func NewDrawingState(templates []*masks.Mask, seed uint64) *DrawingState {
	d := &DrawingState{
		Templates: templates,
		Tool:      sprite.MaskBody1,
	}
	d.selectTemplate(0)
	d.Options.Seed = seed
	return d
}

func (d *DrawingState) selectTemplate(i int) {
	n := len(d.Templates)
	i = ((i % n) + n) % n
	seed := d.Options.Seed
	d.Template = i
	d.Mask = d.Templates[i].Clone()
	d.Options = d.Mask.Options(sprite.DefaultOptions())
	d.Options.Seed = seed
	d.CursorX = min(d.CursorX, d.Mask.Width-1)
	d.CursorY = min(d.CursorY, d.Mask.Height-1)
}

// Apply updates the state for one action. It reports whether the sprites
// need to be regenerated.
func (d *DrawingState) Apply(a Action, rng func() uint64) bool {
	switch a {
	case ActionUp:
		d.CursorY = max(d.CursorY-1, 0)
	case ActionDown:
		d.CursorY = min(d.CursorY+1, d.Mask.Height-1)
	case ActionLeft:
		d.CursorX = max(d.CursorX-1, 0)
	case ActionRight:
		d.CursorX = min(d.CursorX+1, d.Mask.Width-1)
	case ActionReroll:
		d.Options.Seed = rng()
		return true
	case ActionMirrorX:
		d.Options.MirrorX = !d.Options.MirrorX
		return true
	case ActionMirrorY:
		d.Options.MirrorY = !d.Options.MirrorY
		return true
	case ActionColored:
		d.Options.Colored = !d.Options.Colored
		return true
	case ActionNextTemplate:
		d.selectTemplate(d.Template + 1)
		return true
	case ActionPrevTemplate:
		d.selectTemplate(d.Template - 1)
		return true
	case ActionMoreVariation:
		d.Options.ColorVariations = min(d.Options.ColorVariations+variationStep, 1)
		return true
	case ActionLessVariation:
		d.Options.ColorVariations = max(d.Options.ColorVariations-variationStep, 0)
		return true
	case ActionToolEmpty, ActionToolSolid, ActionToolBody1, ActionToolBody2:
		d.Tool = toolFor(a)
		if d.Mask.CellAt(d.CursorX, d.CursorY) == d.Tool {
			return false
		}
		d.Mask.Set(d.CursorX, d.CursorY, d.Tool)
		return true
	}
	return false
}

func toolFor(a Action) sprite.MaskCell {
	switch a {
	case ActionToolSolid:
		return sprite.MaskSolid
	case ActionToolBody1:
		return sprite.MaskBody1
	case ActionToolBody2:
		return sprite.MaskBody2
	default:
		return sprite.MaskEmpty
	}
}

// Status returns the HUD lines describing the state.
func (d *DrawingState) Status() []string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	return []string{
		fmt.Sprintf("seed %d  mirror x:%s y:%s  color:%s  variation %.1f  tool %s",
			d.Options.Seed, onOff(d.Options.MirrorX), onOff(d.Options.MirrorY),
			onOff(d.Options.Colored), d.Options.ColorVariations, d.Tool),
		"[space] reroll [x/y] mirror [c] color [n/p] template [+/-] variation [arrows 1-4] paint [q] quit",
	}
}

// Title returns the template name with its position in the list.
func (d *DrawingState) Title() string {
	return fmt.Sprintf("%s (%d/%d)", d.Mask.Name, d.Template+1, len(d.Templates))
}
