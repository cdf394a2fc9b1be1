package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-bird/internal/core"
)

// overlayLines returns the message box content for the current state, or
// nil when the playfield should be left alone.
func overlayLines(st core.GameState, paused, newBest bool) []string {
	switch {
	case paused:
		return []string{"PAUSED", "", "p to resume"}
	case st.Phase == core.PhaseNotStarted:
		lines := []string{"TUI BIRD", "", "enter to start", "space to flap"}
		if st.Best > 0 {
			lines = append(lines, "", fmt.Sprintf("Best: %d", st.Best))
		}
		return lines
	case st.Phase == core.PhaseEnded:
		title := "GAME OVER"
		if newBest {
			title = "NEW BEST!"
		}
		return []string{title, "", fmt.Sprintf("Score: %d", st.Score), fmt.Sprintf("Best: %d", st.Best), "", "enter to retry"}
	default:
		return nil
	}
}

// drawOverlay draws a centred message box over the playfield rows of s.
// Boxes that do not fit are skipped.
func drawOverlay(s *core.Screen, rows int, lines []string) {
	if len(lines) == 0 {
		return
	}
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}
	w, h := inner+4, len(lines)+2
	if w > s.Width() || h > rows {
		return
	}
	box := core.NewRect((s.Width()-w)/2, (rows-h)/2, w, h)

	s.DrawRect(box, core.Cell{Rune: ' ', Fg: core.ColorOverlayText, Bg: core.ColorOverlay})
	s.DrawBox(box)
	for i, l := range lines {
		x := box.X + (w-len([]rune(l)))/2
		s.DrawText(x, box.Y+1+i, l, core.ColorOverlayText)
	}
}
