package home

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	growthdto "plant/internal/modules/growth/dto"
	"plant/internal/ui/theme"
)

type cell int

const (
	cellEmpty cell = iota
	cellStem
	cellBud
	cellSprout
	cellLeaf
	cellPot
)

// swayStep is the rotation that moves a leaf one column.
const swayStep = 0.01

var glyphs = map[cell]rune{
	cellStem:   '│',
	cellBud:    '.',
	cellSprout: '∘',
	cellLeaf:   '❦',
}

// RenderPlant draws the frame into a width x height block of text. Anchors
// are normalized with y pointing up; the bottom three rows hold the pot.
func RenderPlant(frame growthdto.FrameOutput, width, height int) string {
	if width < 12 {
		width = 12
	}
	if height < 6 {
		height = 6
	}
	plantH := height - 3
	grid := make([][]rune, height)
	kinds := make([][]cell, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
		kinds[r] = make([]cell, width)
	}
	set := func(r, c int, k cell, ch rune) {
		if r < 0 || r >= height || c < 0 || c >= width {
			return
		}
		grid[r][c] = ch
		kinds[r][c] = k
	}

	type placed struct {
		row, col int
		kind     cell
	}
	stemCol := width / 2
	top := plantH - 1
	leaves := make([]placed, 0, len(frame.Leaves))
	for _, leaf := range frame.Leaves {
		kind := leafCell(leaf.Scale)
		if kind == cellEmpty {
			continue
		}
		p := placed{
			row:  int(math.Round((1 - leaf.Y) * float64(plantH-1))),
			col:  int(math.Round(leaf.X*float64(width-1))) + swayOffset(leaf.Angle),
			kind: kind,
		}
		top = min(top, p.row)
		leaves = append(leaves, p)
	}
	for r := top; r < plantH; r++ {
		set(r, stemCol, cellStem, glyphs[cellStem])
	}
	for _, p := range leaves {
		set(p.row, p.col, p.kind, glyphs[p.kind])
	}

	potW := max(8, width/3)
	potLeft := stemCol - potW/2
	drawPot := func(r int, line string) {
		for i, ch := range []rune(line) {
			if ch != ' ' {
				set(r, potLeft+i, cellPot, ch)
			}
		}
	}
	drawPot(plantH, "["+strings.Repeat("=", potW-2)+"]")
	drawPot(plantH+1, " \\"+strings.Repeat(" ", potW-4)+"/")
	drawPot(plantH+2, "  \\"+strings.Repeat("_", potW-6)+"/")

	return renderGrid(grid, kinds)
}

func renderGrid(grid [][]rune, kinds [][]cell) string {
	styles := map[cell]lipgloss.Style{
		cellStem:   theme.Stem,
		cellBud:    theme.Bud,
		cellSprout: theme.Bud,
		cellLeaf:   theme.Leaf,
		cellPot:    theme.Pot,
	}
	var sb strings.Builder
	for r := range grid {
		for c, ch := range grid[r] {
			if style, ok := styles[kinds[r][c]]; ok {
				sb.WriteString(style.Render(string(ch)))
				continue
			}
			sb.WriteRune(ch)
		}
		if r < len(grid)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func leafCell(scale float64) cell {
	switch {
	case scale <= 0:
		return cellEmpty
	case scale < 1.0/3:
		return cellBud
	case scale < 2.0/3:
		return cellSprout
	default:
		return cellLeaf
	}
}

func swayOffset(angle float64) int {
	offset := int(math.Round(angle / swayStep))
	return max(-1, min(1, offset))
}
