package window

import (
	"fmt"

	"github.com/vovakirdan/tui-bird/internal/core"
)

const (
	glyphWidth = 7 // basicfont.Face7x13 advance
	lineHeight = 16
	boxPadding = 16
	boxRadius  = 8
)

// overlayLines returns the message box content for the current state, or
// nil while a run is in progress.
func overlayLines(st core.GameState, paused, newBest bool) []string {
	switch {
	case paused:
		return []string{"PAUSED", "", "p to resume"}
	case st.Phase == core.PhaseNotStarted:
		lines := []string{"BIRD", "", "click or enter to start", "space to flap"}
		if st.Best > 0 {
			lines = append(lines, "", fmt.Sprintf("Best: %d", st.Best))
		}
		return lines
	case st.Phase == core.PhaseEnded:
		title := "GAME OVER"
		if newBest {
			title = "NEW BEST!"
		}
		return []string{title, "", fmt.Sprintf("Score: %d", st.Score), fmt.Sprintf("Best: %d", st.Best), "", "click to retry"}
	default:
		return nil
	}
}

// drawOverlay draws a centred rounded box with lines of text. Boxes larger
// than the surface are skipped.
func drawOverlay(dst core.Surface, lines []string) {
	if len(lines) == 0 {
		return
	}
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}
	sw, sh := dst.Size()
	w := float64(inner*glyphWidth + 2*boxPadding)
	h := float64(len(lines)*lineHeight + 2*boxPadding)
	if w > sw || h > sh {
		return
	}
	x, y := (sw-w)/2, (sh-h)/2

	dst.FillRoundedRect(x, y, w, h, boxRadius, core.ColorOverlay)
	for i, l := range lines {
		tx := x + (w-float64(len([]rune(l))*glyphWidth))/2
		dst.DrawText(tx, y+boxPadding+float64(i*lineHeight), l, core.ColorOverlayText)
	}
}
