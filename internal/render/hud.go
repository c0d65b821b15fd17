package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is what the HUD shows about the session.
type Status struct {
	Health, MaxHealth float64
	Energy, MaxEnergy float64
	Level             uint32
	XP, NextLevel     uint32
	Wave, Kills       int
	Slot              string
	Elapsed           time.Duration
	Weapons           []string
}

// DrawHUD renders the status lines at the bottom of the screen and shows
// the frame.
func (r *Renderer) DrawHUD(s Status) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, ColorDim)

	x := r.drawBar(0, hudY+1, "HP", s.Health, s.MaxHealth, ColorHealth)
	x = r.drawBar(x+2, hudY+1, "EN", s.Energy, s.MaxEnergy, ColorEnergy)
	x = r.drawBar(x+2, hudY+1, fmt.Sprintf("Lv%d", s.Level), float64(s.XP), float64(s.NextLevel), ColorXP)

	info := fmt.Sprintf("  Wave %d  Kills %d  %s  [%s]", s.Wave, s.Kills, s.Elapsed.Round(time.Second), s.Slot)
	r.drawText(x, hudY+1, info, tcell.StyleDefault.Foreground(ColorText))

	r.drawText(0, hudY+2, strings.Join(s.Weapons, "  "), tcell.StyleDefault.Foreground(ColorDim))
	r.drawText(0, hudY+3, "←/→ move  ↑/space jump  1 melee  2 ranged  tab swap  q quit",
		tcell.StyleDefault.Foreground(ColorDim))

	r.screen.Show()
}

// drawBar draws "label [#####     ]" and returns the column after it.
func (r *Renderer) drawBar(x, y int, label string, cur, maxVal float64, color tcell.Color) int {
	const width = 10
	filled := 0
	if maxVal > 0 {
		filled = int(min(max(cur/maxVal, 0), 1) * width)
	}
	x = r.drawText(x, y, label+" ", tcell.StyleDefault.Foreground(ColorText))
	style := tcell.StyleDefault.Foreground(color)
	for i := range width {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
	return x + width
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x and returns the column after it. Wide
// runes take two columns.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}
