package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Option is one line of the level-up menu.
type Option struct {
	Title, Detail string
}

// DrawLevelUp overlays the powerup choices on the current frame.
func (r *Renderer) DrawLevelUp(options []Option, selected int) {
	lines := []string{"LEVEL UP!  choose a powerup", ""}
	for i, o := range options {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, o.Title))
		if o.Detail != "" {
			lines = append(lines, "   "+o.Detail)
		}
	}
	lines = append(lines, "", "↑/↓ select  enter confirm  1-9 pick")

	x0, y0 := r.drawPanel(lines)
	row := y0 + 2
	for i, o := range options {
		style := tcell.StyleDefault.Foreground(ColorText)
		if i == selected {
			style = style.Foreground(ColorSelected).Bold(true)
		}
		r.drawText(x0, row, fmt.Sprintf("%d. %s", i+1, o.Title), style)
		row++
		if o.Detail != "" {
			row++
		}
	}
	r.screen.Show()
}

// DrawGameOver overlays the end-of-run summary.
func (r *Renderer) DrawGameOver(kills, wave int, elapsed time.Duration, level uint32) {
	r.drawPanel([]string{
		"YOU DIED",
		"",
		fmt.Sprintf("Survived %s", elapsed.Round(time.Second)),
		fmt.Sprintf("Reached wave %d and level %d", wave, level),
		fmt.Sprintf("Defeated %d enemies", kills),
		"",
		"press q to quit",
	})
	r.screen.Show()
}

// drawPanel draws lines in a bordered box centered on the playfield and
// returns the top-left text position.
func (r *Renderer) drawPanel(lines []string) (x0, y0 int) {
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	vw, vh := r.camera.ViewWidth, r.camera.ViewHeight
	x0 = max((vw-width)/2, 1)
	y0 = max((vh-len(lines))/2, 1)

	border := tcell.StyleDefault.Foreground(ColorDim)
	blank := tcell.StyleDefault
	for y := y0 - 1; y <= y0+len(lines); y++ {
		for x := x0 - 2; x < x0+width+2; x++ {
			ch := ' '
			style := blank
			switch {
			case y == y0-1 || y == y0+len(lines):
				ch, style = '─', border
			case x == x0-2 || x == x0+width+1:
				ch, style = '│', border
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
	for i, l := range lines {
		r.drawText(x0, y0+i, l, tcell.StyleDefault.Foreground(ColorText))
	}
	return x0, y0
}
