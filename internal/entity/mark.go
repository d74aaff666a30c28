package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Mark is the content of a single board cell and also names the side to move.
type Mark int8

const (
	EmptyCell Mark = iota
	PlayerOne
	PlayerTwo
)

const (
	emptySymbol     = "-"
	playerOneSymbol = "O"
	playerTwoSymbol = "X"
)

var ErrUnknownMark = errors.New("unknown mark")

func (that Mark) String() string {
	switch that {
	case PlayerOne:
		return playerOneSymbol
	case PlayerTwo:
		return playerTwoSymbol
	default:
		return emptySymbol
	}
}

// Opponent returns the other side. EmptyCell has no opponent and is returned as is.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return EmptyCell
	}
}

// ParseMark - parses a player symbol, "O" for player one and "X" for player two.
func ParseMark(symbol string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(symbol)) {
	case playerOneSymbol:
		return PlayerOne, nil
	case playerTwoSymbol:
		return PlayerTwo, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", ErrUnknownMark, symbol)
	}
}
