// Package domain holds the core bingo types and the ports the rest of
// the application depends on.
package domain

import "time"

// Letter is one of the five bingo column letters.
type Letter string

const (
	LetterB Letter = "B"
	LetterI Letter = "I"
	LetterN Letter = "N"
	LetterG Letter = "G"
	LetterO Letter = "O"
)

// TotalNumbers is the size of the full bingo number set.
const TotalNumbers = 75

// LabeledNumber is a bingo number with its column letter. The letter is
// fully determined by the number: B 1-15, I 16-30, N 31-45, G 46-60, O 61-75.
type LabeledNumber struct {
	Letter Letter
	Number int
}

// NewLabeledNumber builds a LabeledNumber for n, deriving the letter from
// the fixed column ranges. ok is false when n is outside 1-75.
func NewLabeledNumber(n int) (LabeledNumber, bool) {
	if n < 1 || n > TotalNumbers {
		return LabeledNumber{}, false
	}
	return LabeledNumber{Letter: LetterFor(n), Number: n}, true
}

// LetterFor returns the column letter for a number in 1-75.
func LetterFor(n int) Letter {
	switch {
	case n <= 15:
		return LetterB
	case n <= 30:
		return LetterI
	case n <= 45:
		return LetterN
	case n <= 60:
		return LetterG
	default:
		return LetterO
	}
}

// String returns the spoken form, e.g. "B-7".
func (l LabeledNumber) String() string {
	return string(l.Letter) + "-" + itoa(l.Number)
}

// DrawnNumber is a LabeledNumber stamped at draw time. Immutable once
// created; appended to the session history and never removed.
type DrawnNumber struct {
	LabeledNumber
	DrawnAt time.Time
}

// itoa avoids pulling strconv into every caller for two-digit numbers.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
