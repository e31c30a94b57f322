package domain

// PatternCategory selects between the two win-rule families.
type PatternCategory string

const (
	CategoryClassic PatternCategory = "classic"
	CategoryModern  PatternCategory = "modern"
)

// LineType is one of the shapes that counts as a "line" in classic mode.
type LineType string

const (
	LineHorizontal  LineType = "horizontal"
	LineVertical    LineType = "vertical"
	LineDiagonal    LineType = "diagonal"
	LineFourCorners LineType = "four_corners"
	LinePlus        LineType = "plus"
	LineX           LineType = "x"
)

// PatternName identifies a fixed modern pattern.
type PatternName string

const (
	PatternFullHouse  PatternName = "full_house"
	PatternTShape     PatternName = "t_shape"
	PatternUShape     PatternName = "u_shape"
	PatternXShape     PatternName = "x_shape"
	PatternPlusSign   PatternName = "plus_sign"
	PatternDiamond    PatternName = "diamond"
	PatternOneLine    PatternName = "one_line"
	PatternTwoLines   PatternName = "two_lines"
	PatternThreeLines PatternName = "three_lines"
)

// PatternConfig is the win rule set for one game session. Supplied by the
// surrounding app before the game starts and immutable afterwards.
type PatternConfig struct {
	Category PatternCategory

	// SelectedPattern is consulted in modern mode. A full_house selection
	// applies in either category.
	SelectedPattern PatternName

	// ClassicLinesTarget is how many completed lines win in classic mode.
	// Values below 1 are treated as 1.
	ClassicLinesTarget int

	// ClassicLineTypes is the set of shapes that count toward the target.
	ClassicLineTypes []LineType
}

// AllowsLine reports whether the classic config counts the given line type.
func (c PatternConfig) AllowsLine(t LineType) bool {
	for _, lt := range c.ClassicLineTypes {
		if lt == t {
			return true
		}
	}
	return false
}

// WinResult is the outcome of one card check. Cells marks the cells that
// form the satisfying pattern; it is meaningful only when Won is true.
type WinResult struct {
	Won   bool
	Cells MarkedGrid
}
