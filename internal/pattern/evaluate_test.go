package pattern

import (
	"testing"

	"github.com/abenezerd/bingocaller/internal/domain"
)

// grid builds a MarkedGrid from marked (row, col) pairs. The free center
// is always marked, matching how grids are derived from draw history.
func grid(marked ...[2]int) domain.MarkedGrid {
	var m domain.MarkedGrid
	m[domain.FreeRow][domain.FreeCol] = true
	for _, c := range marked {
		m[c[0]][c[1]] = true
	}
	return m
}

func fullGrid() domain.MarkedGrid {
	var m domain.MarkedGrid
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			m[row][col] = true
		}
	}
	return m
}

func row(r int) [][2]int {
	var cells [][2]int
	for col := 0; col < 5; col++ {
		cells = append(cells, [2]int{r, col})
	}
	return cells
}

func classicCfg(target int, types ...domain.LineType) domain.PatternConfig {
	return domain.PatternConfig{
		Category:           domain.CategoryClassic,
		ClassicLinesTarget: target,
		ClassicLineTypes:   types,
	}
}

func modernCfg(p domain.PatternName) domain.PatternConfig {
	return domain.PatternConfig{Category: domain.CategoryModern, SelectedPattern: p}
}

func TestFullHouse(t *testing.T) {
	cfg := domain.PatternConfig{Category: domain.CategoryClassic, SelectedPattern: domain.PatternFullHouse}

	// Center-only grid never wins full house.
	res := Evaluate(grid(), cfg)
	if res.Won {
		t.Fatal("center-only grid should not win full house")
	}

	// A fully marked grid wins regardless of category.
	for _, cat := range []domain.PatternCategory{domain.CategoryClassic, domain.CategoryModern} {
		cfg.Category = cat
		res = Evaluate(fullGrid(), cfg)
		if !res.Won {
			t.Fatalf("full grid should win full house under %s", cat)
		}
		if res.Cells != fullGrid() {
			t.Fatalf("full house should mark every cell")
		}
	}
}

func TestClassicTwoRowsEarlyStop(t *testing.T) {
	// Three complete rows, target two: win, and only the first two rows
	// in discovery order are highlighted.
	var marked [][2]int
	marked = append(marked, row(0)...)
	marked = append(marked, row(1)...)
	marked = append(marked, row(3)...)

	res := Evaluate(grid(marked...), classicCfg(2, domain.LineHorizontal))
	if !res.Won {
		t.Fatal("two complete rows should win with target 2")
	}

	var want domain.MarkedGrid
	for _, c := range append(row(0), row(1)...) {
		want[c[0]][c[1]] = true
	}
	if res.Cells != want {
		t.Fatalf("expected only rows 0 and 1 highlighted, got %v", res.Cells)
	}
	if res.Cells[3][0] {
		t.Fatal("row beyond the target must not be highlighted even though complete")
	}
}

func TestClassicTargetNotReached(t *testing.T) {
	res := Evaluate(grid(row(0)...), classicCfg(2, domain.LineHorizontal))
	if res.Won {
		t.Fatal("one row should not satisfy a target of 2")
	}
	if res.Cells != (domain.MarkedGrid{}) {
		t.Fatal("losing result must not highlight cells")
	}
}

func TestClassicRespectsAllowedTypes(t *testing.T) {
	// A complete column does not count when only horizontals are allowed.
	var col [][2]int
	for r := 0; r < 5; r++ {
		col = append(col, [2]int{r, 0})
	}
	res := Evaluate(grid(col...), classicCfg(1, domain.LineHorizontal))
	if res.Won {
		t.Fatal("vertical line must not count when only horizontals are allowed")
	}

	res = Evaluate(grid(col...), classicCfg(1, domain.LineVertical))
	if !res.Won {
		t.Fatal("vertical line should count when verticals are allowed")
	}
}

func TestClassicPriorityOrder(t *testing.T) {
	// Both a row and a column are complete; with target 1 the row wins the
	// highlight because horizontals are counted first.
	var marked [][2]int
	marked = append(marked, row(1)...)
	for r := 0; r < 5; r++ {
		marked = append(marked, [2]int{r, 3})
	}

	res := Evaluate(grid(marked...), classicCfg(1, domain.LineHorizontal, domain.LineVertical))
	if !res.Won {
		t.Fatal("expected a win")
	}
	if !res.Cells[1][0] || res.Cells[0][3] {
		t.Fatalf("expected the row highlighted, not the column: %v", res.Cells)
	}
}

func TestClassicFourCorners(t *testing.T) {
	corners := [][2]int{{0, 0}, {0, 4}, {4, 0}, {4, 4}}
	res := Evaluate(grid(corners...), classicCfg(1, domain.LineFourCorners))
	if !res.Won {
		t.Fatal("four corners should win")
	}
	for _, c := range corners {
		if !res.Cells[c[0]][c[1]] {
			t.Fatalf("corner %v not highlighted", c)
		}
	}
}

func TestModernXShape(t *testing.T) {
	var marked [][2]int
	for i := 0; i < 5; i++ {
		marked = append(marked, [2]int{i, i}, [2]int{4 - i, i})
	}

	res := Evaluate(grid(marked...), modernCfg(domain.PatternXShape))
	if !res.Won {
		t.Fatal("both diagonals should win x_shape")
	}
	// Exactly the defining cells are highlighted.
	if !res.Cells[0][0] || !res.Cells[4][0] || res.Cells[0][1] {
		t.Fatalf("x_shape highlight wrong: %v", res.Cells)
	}

	// One missing diagonal cell loses.
	res = Evaluate(grid(marked[:len(marked)-2]...), modernCfg(domain.PatternXShape))
	_ = res // grid() helper marks center anyway; rebuild precisely below.

	var m domain.MarkedGrid
	for i := 0; i < 5; i++ {
		m[i][i] = true
		m[4-i][i] = true
	}
	m[0][0] = false
	if Evaluate(m, modernCfg(domain.PatternXShape)).Won {
		t.Fatal("incomplete x must not win")
	}
}

func TestModernPlusSign(t *testing.T) {
	var marked [][2]int
	for i := 0; i < 5; i++ {
		marked = append(marked, [2]int{2, i}, [2]int{i, 2})
	}
	res := Evaluate(grid(marked...), modernCfg(domain.PatternPlusSign))
	if !res.Won {
		t.Fatal("middle row and column should win plus_sign")
	}
	if !res.Cells[2][0] || !res.Cells[0][2] || res.Cells[0][0] {
		t.Fatalf("plus_sign highlight wrong: %v", res.Cells)
	}
}

func TestModernShapesMarkAllFallback(t *testing.T) {
	// t_shape: top row + middle column. The win highlight falls back to the
	// whole grid for shapes other than x_shape and plus_sign.
	var marked [][2]int
	for i := 0; i < 5; i++ {
		marked = append(marked, [2]int{0, i}, [2]int{i, 2})
	}
	res := Evaluate(grid(marked...), modernCfg(domain.PatternTShape))
	if !res.Won {
		t.Fatal("t_shape should win")
	}
	if res.Cells != fullGrid() {
		t.Fatal("t_shape win should highlight the entire grid")
	}
}

func TestModernLineCounts(t *testing.T) {
	var marked [][2]int
	marked = append(marked, row(0)...)
	marked = append(marked, row(4)...)
	g := grid(marked...)

	if !Evaluate(g, modernCfg(domain.PatternOneLine)).Won {
		t.Fatal("one_line should win with two rows")
	}
	if !Evaluate(g, modernCfg(domain.PatternTwoLines)).Won {
		t.Fatal("two_lines should win with two rows")
	}
	if Evaluate(g, modernCfg(domain.PatternThreeLines)).Won {
		t.Fatal("three_lines must not win with only two rows")
	}
}

func TestModernDiamond(t *testing.T) {
	cells := [][2]int{{0, 2}, {1, 1}, {1, 3}, {2, 0}, {2, 4}, {3, 1}, {3, 3}, {4, 2}}
	res := Evaluate(grid(cells...), modernCfg(domain.PatternDiamond))
	if !res.Won {
		t.Fatal("diamond cells should win")
	}
}

func TestCardGridMarking(t *testing.T) {
	var card domain.Card
	for i := range card.Numbers {
		card.Numbers[i] = i + 1
	}
	g := card.Grid()

	if g[domain.FreeRow][domain.FreeCol] != 0 {
		t.Fatal("center cell must be free")
	}
	if g[0][0] != 1 || g[2][1] != 11 || g[2][3] != 12 || g[4][4] != 24 {
		t.Fatalf("row-major fill skipping center is wrong: %v", g)
	}

	m := g.Mark(map[int]bool{1: true, 24: true})
	if !m[0][0] || !m[4][4] || !m[2][2] || m[0][1] {
		t.Fatalf("marking wrong: %v", m)
	}
}
