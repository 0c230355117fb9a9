package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nlipatov/skygate/internal/config"
	"github.com/nlipatov/skygate/internal/core"
	"github.com/nlipatov/skygate/internal/game"
)

// Visual characters for rendering
const (
	gateChar      = '█'
	gateCapTop    = '▄'
	gateCapBottom = '▀'
	groundChar    = '═'
	dirtChar      = '░'
	flyerBody     = '●'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// DrawSnapshot renders a session snapshot into the cell buffer,
// converting field units to terminal cells.
func DrawSnapshot(dst *core.Screen, snap game.Snapshot, field config.FieldConfig) {
	dst.Clear()

	toCellX := func(u float64) int { return int(u / field.UnitsPerCellX) }
	toCellY := func(u float64) int { return int(u / field.UnitsPerCellY) }

	groundRow := toCellY(snap.Field.Height - snap.Field.GroundHeight)

	// Gates
	for _, gv := range snap.Gates {
		x0 := toCellX(gv.X)
		x1 := toCellX(gv.X + gv.Width)
		drawGate(dst, gv, x0, x1, toCellY, groundRow)
	}

	// Ground strip
	dst.DrawHLine(0, groundRow, dst.Width(), groundChar, core.ColorGray)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), dirtChar, core.ColorGray)
	}

	// Flyer
	drawFlyer(dst, snap, toCellX, toCellY)

	// HUD
	hud := fmt.Sprintf(" Score: %d   Best: %d ", snap.Score, snap.HighScore)
	dst.DrawTextColored(2, 0, hud, core.ColorBrightWhite)

	// State banner
	switch snap.State {
	case game.StateStart:
		drawCenteredMessage(dst, "SKYGATE", snap.Message)
	case game.StateGameOver:
		drawCenteredMessage(dst, "GAME OVER", snap.Message)
	}
}

// drawGate renders both segments of one gate with end caps.
func drawGate(dst *core.Screen, gv game.GateView, x0, x1 int, toCellY func(float64) int, groundRow int) {
	topRows := toCellY(gv.TopHeight)
	for y := 0; y < topRows; y++ {
		for x := x0; x < x1; x++ {
			dst.SetCell(x, y, gateChar, core.ColorGreen)
		}
	}
	if topRows > 0 {
		for x := x0; x < x1; x++ {
			dst.SetCell(x, topRows-1, gateCapTop, core.ColorGreen)
		}
	}

	bottomRow := toCellY(gv.GapStart + gv.GapSize)
	for y := bottomRow; y < groundRow; y++ {
		for x := x0; x < x1; x++ {
			dst.SetCell(x, y, gateChar, core.ColorGreen)
		}
	}
	if bottomRow < groundRow {
		for x := x0; x < x1; x++ {
			dst.SetCell(x, bottomRow, gateCapBottom, core.ColorGreen)
		}
	}
}

// drawFlyer renders the flyer with a head glyph picked from the
// rotation hint.
func drawFlyer(dst *core.Screen, snap game.Snapshot, toCellX, toCellY func(float64) int) {
	fx := toCellX(snap.FlyerX)
	fy := toCellY(snap.FlyerY)
	fw := core.Max(1, toCellX(snap.FlyerW))

	head := '▶'
	switch {
	case snap.Rotation <= -10:
		head = '▲'
	case snap.Rotation >= 35:
		head = '▼'
	}

	for dx := 0; dx < fw-1; dx++ {
		dst.SetCell(fx+dx, fy, flyerBody, core.ColorYellow)
	}
	dst.SetCell(fx+fw-1, fy, head, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
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
