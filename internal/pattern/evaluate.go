// Package pattern decides whether a marked card wins under the session's
// rule set. Evaluation is pure: it never mutates the grid and is re-run
// from scratch on every check.
package pattern

import "github.com/abenezerd/bingocaller/internal/domain"

// cell is a (row, col) coordinate on the 5x5 grid.
type cell [2]int

// line is one countable shape in classic mode.
type line struct {
	typ   domain.LineType
	cells []cell
}

// Evaluate checks a marked grid against the pattern config and returns the
// win result. A full_house selection applies in either category.
func Evaluate(m domain.MarkedGrid, cfg domain.PatternConfig) domain.WinResult {
	if cfg.SelectedPattern == domain.PatternFullHouse {
		return evalFullHouse(m)
	}
	if cfg.Category == domain.CategoryClassic {
		return evalClassic(m, cfg)
	}
	return evalModern(m, cfg)
}

func evalFullHouse(m domain.MarkedGrid) domain.WinResult {
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if !m[row][col] {
				return domain.WinResult{}
			}
		}
	}
	return domain.WinResult{Won: true, Cells: markAll()}
}

// evalClassic counts completed lines of the allowed types in a fixed
// priority order: rows top to bottom, columns left to right, the two
// diagonals, then the composite shapes. Counting stops as soon as the
// target is reached, so extra complete lines beyond the target are not
// highlighted.
func evalClassic(m domain.MarkedGrid, cfg domain.PatternConfig) domain.WinResult {
	target := cfg.ClassicLinesTarget
	if target < 1 {
		target = 1
	}

	count := 0
	var cells domain.MarkedGrid
	for _, ln := range classicLines(cfg) {
		if !complete(m, ln.cells) {
			continue
		}
		count++
		markCells(&cells, ln.cells)
		if count >= target {
			break
		}
	}

	if count < target {
		return domain.WinResult{}
	}
	return domain.WinResult{Won: true, Cells: cells}
}

func evalModern(m domain.MarkedGrid, cfg domain.PatternConfig) domain.WinResult {
	switch cfg.SelectedPattern {
	case domain.PatternXShape:
		return evalShape(m, xShapeCells(), true)
	case domain.PatternPlusSign:
		return evalShape(m, plusSignCells(), true)
	case domain.PatternTShape:
		return evalShape(m, tShapeCells(), false)
	case domain.PatternUShape:
		return evalShape(m, uShapeCells(), false)
	case domain.PatternDiamond:
		return evalShape(m, diamondCells(), false)
	case domain.PatternOneLine:
		return evalAnyLines(m, 1)
	case domain.PatternTwoLines:
		return evalAnyLines(m, 2)
	case domain.PatternThreeLines:
		return evalAnyLines(m, 3)
	default:
		return domain.WinResult{}
	}
}

// evalShape checks a fixed cell set. Only x_shape and plus_sign highlight
// their defining cells; the other named shapes mark the whole grid when
// won, matching the shipped behavior.
func evalShape(m domain.MarkedGrid, cells []cell, exact bool) domain.WinResult {
	if !complete(m, cells) {
		return domain.WinResult{}
	}
	if exact {
		var out domain.MarkedGrid
		markCells(&out, cells)
		return domain.WinResult{Won: true, Cells: out}
	}
	return domain.WinResult{Won: true, Cells: markAll()}
}

// evalAnyLines wins when at least target of any row, column, or diagonal
// are complete. Highlighting falls back to the whole grid.
func evalAnyLines(m domain.MarkedGrid, target int) domain.WinResult {
	count := 0
	for _, ln := range basicLines() {
		if complete(m, ln.cells) {
			count++
			if count >= target {
				return domain.WinResult{Won: true, Cells: markAll()}
			}
		}
	}
	return domain.WinResult{}
}

// ── line geometry ────────────────────────────────────────────────

// basicLines returns the twelve simple lines: five rows, five columns,
// and the two diagonals, in priority order.
func basicLines() []line {
	var lines []line
	for row := 0; row < 5; row++ {
		var cells []cell
		for col := 0; col < 5; col++ {
			cells = append(cells, cell{row, col})
		}
		lines = append(lines, line{typ: domain.LineHorizontal, cells: cells})
	}
	for col := 0; col < 5; col++ {
		var cells []cell
		for row := 0; row < 5; row++ {
			cells = append(cells, cell{row, col})
		}
		lines = append(lines, line{typ: domain.LineVertical, cells: cells})
	}
	lines = append(lines,
		line{typ: domain.LineDiagonal, cells: diagDownCells()},
		line{typ: domain.LineDiagonal, cells: diagUpCells()},
	)
	return lines
}

// classicLines returns the countable lines for a classic config, filtered
// to the allowed types, in the fixed priority order.
func classicLines(cfg domain.PatternConfig) []line {
	var lines []line
	for _, ln := range basicLines() {
		if cfg.AllowsLine(ln.typ) {
			lines = append(lines, ln)
		}
	}
	if cfg.AllowsLine(domain.LineFourCorners) {
		lines = append(lines, line{typ: domain.LineFourCorners, cells: fourCornerCells()})
	}
	if cfg.AllowsLine(domain.LinePlus) {
		lines = append(lines, line{typ: domain.LinePlus, cells: plusSignCells()})
	}
	if cfg.AllowsLine(domain.LineX) {
		lines = append(lines, line{typ: domain.LineX, cells: xShapeCells()})
	}
	return lines
}

func diagDownCells() []cell {
	var cells []cell
	for i := 0; i < 5; i++ {
		cells = append(cells, cell{i, i})
	}
	return cells
}

func diagUpCells() []cell {
	var cells []cell
	for i := 0; i < 5; i++ {
		cells = append(cells, cell{4 - i, i})
	}
	return cells
}

func fourCornerCells() []cell {
	return []cell{{0, 0}, {0, 4}, {4, 0}, {4, 4}}
}

// plusSignCells is the middle row plus the middle column.
func plusSignCells() []cell {
	var cells []cell
	for col := 0; col < 5; col++ {
		cells = append(cells, cell{2, col})
	}
	for row := 0; row < 5; row++ {
		if row != 2 {
			cells = append(cells, cell{row, 2})
		}
	}
	return cells
}

// xShapeCells is both diagonals.
func xShapeCells() []cell {
	cells := diagDownCells()
	for _, c := range diagUpCells() {
		if c != (cell{2, 2}) {
			cells = append(cells, c)
		}
	}
	return cells
}

// tShapeCells is the top row plus the middle column.
func tShapeCells() []cell {
	var cells []cell
	for col := 0; col < 5; col++ {
		cells = append(cells, cell{0, col})
	}
	for row := 1; row < 5; row++ {
		cells = append(cells, cell{row, 2})
	}
	return cells
}

// uShapeCells is the left column, right column, and bottom row.
func uShapeCells() []cell {
	var cells []cell
	for row := 0; row < 5; row++ {
		cells = append(cells, cell{row, 0}, cell{row, 4})
	}
	for col := 1; col < 4; col++ {
		cells = append(cells, cell{4, col})
	}
	return cells
}

// diamondCells is the fixed 9-cell diamond: the four edge midpoints, the
// four inner diagonal cells, and the free center.
func diamondCells() []cell {
	return []cell{
		{0, 2},
		{1, 1}, {1, 3},
		{2, 0}, {2, 2}, {2, 4},
		{3, 1}, {3, 3},
		{4, 2},
	}
}

// ── helpers ──────────────────────────────────────────────────────

func complete(m domain.MarkedGrid, cells []cell) bool {
	for _, c := range cells {
		if !m[c[0]][c[1]] {
			return false
		}
	}
	return true
}

func markCells(out *domain.MarkedGrid, cells []cell) {
	for _, c := range cells {
		out[c[0]][c[1]] = true
	}
}

func markAll() domain.MarkedGrid {
	var m domain.MarkedGrid
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			m[row][col] = true
		}
	}
	return m
}
