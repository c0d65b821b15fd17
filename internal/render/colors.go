package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"survivors/internal/behavior"
)

// HUD palette.
var (
	ColorHealth   = tcell.NewRGBColor(220, 60, 60)
	ColorEnergy   = tcell.NewRGBColor(80, 160, 255)
	ColorXP       = tcell.NewRGBColor(230, 180, 50)
	ColorDim      = tcell.ColorGray
	ColorText     = tcell.ColorWhite
	ColorSelected = tcell.ColorYellow
)

// RGB converts a definition color to a terminal color, blended toward black
// by alpha.
func RGB(c behavior.Color, alpha float64) tcell.Color {
	if alpha <= 0 {
		alpha = 1
	}
	ch := func(v float64) int32 {
		return int32(math.Round(min(max(v*alpha, 0), 1) * 255))
	}
	return tcell.NewRGBColor(ch(c.R), ch(c.G), ch(c.B))
}
