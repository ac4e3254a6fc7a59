package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilemerge/internal/game"
)

// Tile cell geometry.
const (
	tileWidth  = 7
	tileHeight = 3
)

// tileColors maps exponents to 256-color backgrounds. Exponents past the
// end reuse the last entry.
var tileColors = []lipgloss.Color{
	"236", // empty
	"230", // 2
	"229", // 4
	"215", // 8
	"209", // 16
	"203", // 32
	"196", // 64
	"228", // 128
	"227", // 256
	"226", // 512
	"220", // 1024
	"214", // 2048
	"93",  // 4096
	"57",  // 8192
	"21",  // 16384
	"16",  // 32768
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	wonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lostStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// tileStyle returns the style for one tile.
func tileStyle(exponent int, mono bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center)
	if mono {
		if exponent > 0 {
			s = s.Bold(true)
		}
		return s
	}

	idx := min(exponent, len(tileColors)-1)
	s = s.Background(tileColors[idx])
	if (exponent >= 3 && exponent <= 6) || exponent >= 12 {
		s = s.Foreground(lipgloss.Color("15"))
	} else {
		s = s.Foreground(lipgloss.Color("235"))
	}
	return s.Bold(true)
}

// tileLabel is the text drawn inside a tile.
func tileLabel(exponent int, mono bool) string {
	if exponent == 0 {
		if mono {
			return "."
		}
		return ""
	}
	return strconv.Itoa(game.TileValue(exponent))
}

// RenderBoard draws the grid of a snapshot.
func RenderBoard(snap game.Snapshot, mono bool) string {
	rows := make([]string, 0, game.Height)
	for _, row := range snap.Board {
		tiles := make([]string, 0, game.Width)
		for _, e := range row {
			tiles = append(tiles, tileStyle(e, mono).Render(tileLabel(e, mono)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderStatus draws the header: target, score and outcome.
func RenderStatus(snap game.Snapshot, highScore int64) string {
	header := titleStyle.Render(fmt.Sprintf("TILEMERGE %d", game.TileValue(snap.Target)))
	score := fmt.Sprintf("Score %s  Moves %d", snap.Score, snap.Moves)
	if highScore > 0 {
		score += fmt.Sprintf("  Best %d", highScore)
	}

	lines := []string{header, score}
	switch snap.Outcome {
	case game.Won:
		lines = append(lines, wonStyle.Render("You win! Press r for a new game."))
	case game.Lost:
		lines = append(lines, lostStyle.Render("Game over. Press r to try again."))
	}
	return strings.Join(lines, "\n")
}

// PlainBoard renders a snapshot without styling, one row per line.
func PlainBoard(snap game.Snapshot) string {
	var sb strings.Builder
	for y, row := range snap.Board {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x, e := range row {
			if x > 0 {
				sb.WriteRune(' ')
			}
			label := "."
			if e > 0 {
				label = strconv.Itoa(game.TileValue(e))
			}
			fmt.Fprintf(&sb, "%5s", label)
		}
	}
	return sb.String()
}

// centerText pads text to sit in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers each line of a multi-line block.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
