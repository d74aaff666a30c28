package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 3

// Move addresses a cell by row and column, both counted from the top-left corner.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("%d,%d", that.Row, that.Col)
}

// ParseMove - parses a "row,col" pair such as "1,2".
func ParseMove(input string) (Move, error) {
	parts := strings.Split(strings.TrimSpace(input), ",")
	if len(parts) != 2 {
		return Move{}, fmt.Errorf("%w: expected a pair of values separated by comma, e.g. 1,2", apperror.ErrInvalidInput)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Move{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidInput, parts[0])
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Move{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidInput, parts[1])
	}

	move := Move{Row: row, Col: col}
	if !move.InRange() {
		return Move{}, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, move)
	}

	return move, nil
}
