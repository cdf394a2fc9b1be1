package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bird/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache maps fg/bg pairs to lipgloss styles of one renderer. It is
// only touched from the Bubble Tea goroutine of one program, so each Model
// owns one.
type styleCache struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

func newStyleCache(r *lipgloss.Renderer) *styleCache {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &styleCache{renderer: r, styles: make(map[colorPair]lipgloss.Style)}
}

func (c *styleCache) style(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if st, ok := c.styles[key]; ok {
		return st
	}
	st := c.renderer.NewStyle()
	if h := fg.Hex(); h != "" {
		st = st.Foreground(lipgloss.Color(h))
	}
	if h := bg.Hex(); h != "" {
		st = st.Background(lipgloss.Color(h))
	}
	c.styles[key] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, newStyleCache(nil))
}

func renderScreen(s *core.Screen, styles *styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
