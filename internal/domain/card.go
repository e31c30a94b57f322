package domain

// CardNumbers is the flat 24-number definition of a printed bingo card,
// row-major, with the free center cell omitted.
const CardNumbers = 24

// FreeRow and FreeCol locate the free center cell of a 5x5 card.
const (
	FreeRow = 2
	FreeCol = 2
)

// Card is a sellable card definition. Ownership and pricing belong to the
// surrounding app; the core only reads the numbers.
type Card struct {
	ID      int
	Numbers [CardNumbers]int
}

// CardGrid is a card laid out as a 5x5 matrix. The free center cell holds 0.
type CardGrid [5][5]int

// MarkedGrid records which cells of a card are covered by the draw history.
// The free center is always true.
type MarkedGrid [5][5]bool

// Grid expands the flat 24-number definition into a 5x5 grid, filling
// row-major and skipping the center cell.
func (c *Card) Grid() CardGrid {
	var g CardGrid
	i := 0
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if row == FreeRow && col == FreeCol {
				continue
			}
			g[row][col] = c.Numbers[i]
			i++
		}
	}
	return g
}

// Mark derives a MarkedGrid from the grid and a set of drawn numbers.
func (g CardGrid) Mark(drawn map[int]bool) MarkedGrid {
	var m MarkedGrid
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if row == FreeRow && col == FreeCol {
				m[row][col] = true
				continue
			}
			m[row][col] = drawn[g[row][col]]
		}
	}
	return m
}

// DrawnSet builds the lookup set used by Mark from a draw history.
func DrawnSet(history []DrawnNumber) map[int]bool {
	set := make(map[int]bool, len(history))
	for _, d := range history {
		set[d.Number] = true
	}
	return set
}
