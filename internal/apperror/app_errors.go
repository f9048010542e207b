package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrInvalidPairCount  = errors.New("pair count must be at least 1")
	ErrNotEnoughSymbols  = errors.New("not enough distinct symbols for pair count")
	ErrDuplicateSymbol   = errors.New("symbol is used more than once")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrSessionClosed     = errors.New("session is closed")
)
