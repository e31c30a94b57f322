package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrGameNotActive = errors.New("game is not active")
	ErrGamePaused    = errors.New("game is paused")
	ErrGameOver      = errors.New("game is over")
	ErrInvalidCard   = errors.New("card is not in this game")
	ErrAlreadyExists = errors.New("already exists")
)
