package domain

import "time"

// StartReport is handed to the report sink when a game begins.
type StartReport struct {
	SessionID       string
	CardsSold       int
	AmountCollected float64
	StartedAt       time.Time
}

// EndReport is handed to the report sink when a game ends, whether by
// pool exhaustion or by the operator ending the session.
type EndReport struct {
	SessionID     string
	NumbersCalled int
	Duration      time.Duration
	WinnerFound   bool
	EndedAt       time.Time
}
