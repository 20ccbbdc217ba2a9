package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Board drawing glyphs. Each board cell is two characters wide so the
// playfield looks square in a terminal.
const (
	blockGlyph = "██"
	emptyGlyph = " ·"
	cellWidth  = 2
)

// Palette resolves a board cell to its display color.
type Palette func(tetris.Cell) core.Color

// PaletteFor returns the template colors of engine configuration cfg.
func PaletteFor(cfg tetris.Config) Palette {
	colors := make([]core.Color, len(cfg.Templates)+1)
	for _, t := range cfg.Templates {
		colors[t.ID] = t.Color
	}
	return func(c tetris.Cell) core.Color {
		if int(c) < len(colors) {
			return colors[c]
		}
		return core.ColorDefault
	}
}

// BoardRect returns the frame of a width x height board drawn at (x, y),
// border included.
func BoardRect(x, y, width, height int) core.Rect {
	return core.NewRect(x, y, width*cellWidth+2, height+2)
}

// DrawGame draws the board, the active piece and the side panel into dst.
func DrawGame(dst *core.Screen, s tetris.State, palette Palette) {
	height := len(s.Grid)
	width := 0
	if height > 0 {
		width = len(s.Grid[0])
	}

	frame := BoardRect(1, 0, width, height)
	dst.DrawBox(frame, core.ColorGray)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sx, sy := frame.X+1+x*cellWidth, frame.Y+1+y
			if c := s.CellAt(x, y); c != tetris.Empty {
				dst.DrawTextColored(sx, sy, blockGlyph, palette(c))
			} else {
				dst.DrawTextColored(sx, sy, emptyGlyph, core.ColorGray)
			}
		}
	}

	drawPanel(dst, frame.Right()+2, frame.Y+1, s)
	drawOverlay(dst, frame, s)
}

func drawPanel(dst *core.Screen, x, y int, s tetris.State) {
	label := func(row int, name string, value any) {
		dst.DrawTextColored(x, y+row, name, core.ColorGray)
		dst.DrawTextColored(x, y+row+1, fmt.Sprint(value), core.ColorBrightWhite)
	}

	dst.DrawTextColored(x, y, "T E T R I S", core.ColorBrightCyan)
	label(2, "SCORE", s.Score)
	label(5, "LEVEL", s.Level)
	label(8, "LINES", s.Lines)
	label(11, "SPEED", fmt.Sprintf("%dms", s.Interval.Milliseconds()))

	dst.DrawTextColored(x, y+14, "HIGH SCORES", core.ColorGray)
	if len(s.HighScores) == 0 {
		dst.DrawTextColored(x, y+15, "-", core.ColorGray)
	}
	for i, hs := range s.HighScores {
		dst.DrawTextColored(x, y+15+i, fmt.Sprintf("%d. %d", i+1, hs), core.ColorYellow)
	}
}

// drawOverlay writes the pause and game-over banners across the board.
func drawOverlay(dst *core.Screen, frame core.Rect, s tetris.State) {
	var lines []string
	switch s.Phase {
	case tetris.PhasePaused:
		lines = []string{"PAUSED", "p to resume"}
	case tetris.PhaseEnded:
		lines = []string{"GAME OVER", fmt.Sprintf("score %d", s.Score), "r to restart"}
	default:
		return
	}

	mid := frame.Y + frame.H/2 - len(lines)/2
	inner := frame.W - 2
	for i, line := range lines {
		pad := max(0, (inner-len(line))/2)
		text := strings.Repeat(" ", pad) + line + strings.Repeat(" ", max(0, inner-pad-len(line)))
		dst.DrawTextColored(frame.X+1, mid+i, text, core.ColorBrightYellow)
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
