package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"survivors/internal/component"
	"survivors/internal/ecs"
	"survivors/internal/vec"
)

// hudRows is the space reserved for the HUD below the playfield.
const hudRows = 4

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(vec.Zero, w, max(h-hudRows, 1)),
	}
}

// Resize adapts the viewport after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-hudRows, 1)
}

// CenterOn recenters the camera on world position p.
func (r *Renderer) CenterOn(p vec.Vec2) { r.camera.Center = p }

// DrawFrame clears the screen and renders every visible entity.
func (r *Renderer) DrawFrame(w *ecs.World) {
	r.screen.Clear()
	r.drawEntities(w)
}

// drawable holds sorting info for entity rendering.
type drawable struct {
	t      component.Transform
	sprite component.Sprite
}

// drawEntities renders all entities with Transform + Sprite, lowest Z first.
// Entities with a glyph are drawn as that glyph at their center; the rest
// are filled boxes.
func (r *Renderer) drawEntities(w *ecs.World) {
	ids := w.Query(component.CTransform, component.CSprite)
	items := make([]drawable, 0, len(ids))
	for _, id := range ids {
		items = append(items, drawable{
			t:      w.Get(id, component.CTransform).(component.Transform),
			sprite: w.Get(id, component.CSprite).(component.Sprite),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].t.Z < items[j].t.Z
	})

	for _, it := range items {
		color := RGB(it.sprite.Color, it.sprite.Alpha)
		if it.sprite.Glyph != "" {
			sx, sy, ok := r.camera.WorldToScreen(it.t.Pos)
			if ok {
				r.putGlyph(sx, sy, it.sprite.Glyph, tcell.StyleDefault.Foreground(color))
			}
			continue
		}
		fill := '█'
		if it.sprite.Alpha > 0 && it.sprite.Alpha < 1 {
			fill = '░'
		}
		r.fillBox(component.Bounds(it.t, it.sprite), fill, tcell.StyleDefault.Foreground(color))
	}
}

func (r *Renderer) fillBox(box vec.Rect, fill rune, style tcell.Style) {
	x0, y0, x1, y1 := r.camera.Cells(box)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, r.camera.ViewWidth), min(y1, r.camera.ViewHeight)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, fill, nil, style)
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
