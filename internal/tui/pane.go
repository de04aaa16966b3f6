package tui

import (
	"fmt"
	"strings"

	"github.com/swipekbd/swipekbd/internal/control"
	"github.com/swipekbd/swipekbd/internal/model"
	"github.com/swipekbd/swipekbd/internal/styling"
)

// Key cap cell size in terminal cells, for a width-1 key.
const (
	capWidth  = 7
	capHeight = 3
	sideGap   = 4
)

// keyRect is the screen rectangle a key occupied at the last draw.
type keyRect struct {
	ref        control.KeyRef
	x, y, w, h int
}

// KeyboardPane renders both keyboard halves and maps screen positions back
// to key cells. The rectangles of the last draw are the hit-test geometry,
// so positions resolve against exactly what is on screen.
type KeyboardPane struct {
	layout *model.Layout
	sheet  *styling.Stylesheet

	rects []keyRect
}

func NewKeyboardPane(layout *model.Layout, sheet *styling.Stylesheet) *KeyboardPane {
	return &KeyboardPane{layout: layout, sheet: sheet}
}

// State is what the pane needs from the engine to draw a frame.
type State struct {
	LeftLayer  int
	RightLayer int
	Modifiers  []model.Modifier

	Touched    control.KeyRef
	HasTouched bool
}

// Draw renders both halves onto the screen and refreshes the hit-test
// geometry.
func (p *KeyboardPane) Draw(s *ScreenHandler, state State) {
	w, h := s.Dimensions()
	s.DrawBox(0, 0, w, h, p.sheet.Background)
	p.rects = p.rects[:0]

	leftLayer := p.layer(model.SideLeft, state.LeftLayer)
	rightLayer := p.layer(model.SideRight, state.RightLayer)

	leftW := layerWidth(leftLayer)
	rightW := layerWidth(rightLayer)

	x0 := (w - (leftW + sideGap + rightW)) / 2
	if x0 < 0 {
		x0 = 0
	}
	y0 := h - layerHeight(leftLayer, rightLayer) - 1
	if y0 < 0 {
		y0 = 0
	}

	p.drawSide(s, model.SideLeft, state.LeftLayer, leftLayer, x0, y0, state)
	p.drawSide(s, model.SideRight, state.RightLayer, rightLayer, x0+leftW+sideGap, y0, state)

	p.drawStatus(s, state, h-1)
}

// DrawTrigger renders the single cell that brings a hidden keyboard back.
func (p *KeyboardPane) DrawTrigger(s *ScreenHandler) {
	_, h := s.Dimensions()
	p.rects = p.rects[:0]
	s.DrawText(0, h-1, 3, 1, p.sheet.Trigger, " ⌨ ")
}

// TriggerHit reports whether a screen position is on the hidden-keyboard
// trigger cell.
func (p *KeyboardPane) TriggerHit(s *ScreenHandler, x, y int) bool {
	_, h := s.Dimensions()
	return y == h-1 && x >= 0 && x < 3
}

// HitTest resolves a screen position to the key cell drawn there.
func (p *KeyboardPane) HitTest(x, y int) (control.KeyRef, bool) {
	for _, r := range p.rects {
		if x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h {
			return r.ref, true
		}
	}
	return control.KeyRef{}, false
}

func (p *KeyboardPane) layer(side model.Side, index int) *model.Layer {
	layers := p.layout.Layers(side)
	if index < 0 || index >= len(layers) {
		index = 0
	}
	return &layers[index]
}

func (p *KeyboardPane) drawSide(
	s *ScreenHandler,
	side model.Side,
	layerIndex int,
	layer *model.Layer,
	x0, y0 int,
	state State,
) {
	y := y0
	for ri, row := range layer.Rows {
		x := x0
		for ci, key := range row {
			ref := control.KeyRef{Side: side, Row: ri, Col: ci}
			w := int(key.Width() * capWidth)

			style := p.keyStyle(key)
			if state.HasTouched && state.Touched == ref {
				style = p.sheet.KeyCapTouched
			}

			s.DrawBox(x+1, y, w-1, capHeight-1, style)
			s.DrawText(x+1, y, w-1, 1, style, centered(key.Label(), w-1))

			p.rects = append(p.rects, keyRect{ref: ref, x: x, y: y, w: w, h: capHeight})
			x += w
		}
		y += capHeight
	}
}

func (p *KeyboardPane) keyStyle(key model.Key) styling.DrawStyling {
	switch key.(type) {
	case *model.PointerKey, *model.PointerButtonKey:
		return p.sheet.KeyCapPointer
	case *model.CommandKey:
		return p.sheet.KeyCapCommand
	default:
		return p.sheet.KeyCap
	}
}

func (p *KeyboardPane) drawStatus(s *ScreenHandler, state State, y int) {
	layers := fmt.Sprintf(" L%d/R%d ", state.LeftLayer, state.RightLayer)
	s.DrawText(0, y, len(layers), 1, p.sheet.LayerIndicator, layers)

	if len(state.Modifiers) == 0 {
		return
	}
	var names []string
	for _, mod := range state.Modifiers {
		names = append(names, mod.String())
	}
	text := " " + strings.Join(names, " ") + " "
	s.DrawText(len(layers)+1, y, len(text), 1, p.sheet.ModIndicator, text)
}

// layerWidth is the width in cells of the layer's widest row.
func layerWidth(layer *model.Layer) int {
	max := 0
	for _, row := range layer.Rows {
		w := 0
		for _, key := range row {
			w += int(key.Width() * capWidth)
		}
		if w > max {
			max = w
		}
	}
	return max
}

// layerHeight is the height in cells of the taller of the two layers.
func layerHeight(left, right *model.Layer) int {
	rows := len(left.Rows)
	if len(right.Rows) > rows {
		rows = len(right.Rows)
	}
	return rows * capHeight
}

func centered(label string, w int) string {
	runes := []rune(label)
	if len(runes) >= w {
		return label
	}
	pad := (w - len(runes)) / 2
	return strings.Repeat(" ", pad) + label
}
