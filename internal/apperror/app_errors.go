package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfRange       = errors.New("cell is out of range")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInvalidInput     = errors.New("invalid input")
)
