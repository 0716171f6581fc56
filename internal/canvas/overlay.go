package canvas

import (
	"unicode/utf8"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Panel draws a framed message box in the center of the screen. The title is
// drawn in titleColor, the remaining lines in the default color.
func Panel(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	w := utf8.RuneCountInString(title)
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}

	// Calculate box dimensions
	boxW := w + 4
	boxH := len(lines) + 4
	if len(lines) == 0 {
		boxH = 3
	}
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, titleColor)

	centered(dst, box, box.Y+1, title, titleColor)
	for i, l := range lines {
		centered(dst, box, box.Y+3+i, l, core.ColorWhite)
	}
}

// Banner draws one line of text centered on the screen without a frame.
func Banner(dst *core.Screen, c core.Color, text string) {
	dst.DrawTextCentered(dst.Height()/2, text, c)
}

func centered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-utf8.RuneCountInString(text))/2
	dst.DrawTextColored(x, y, text, c)
}
