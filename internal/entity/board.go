package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

var (
	ErrInvalidBoard = errors.New("invalid board layout")

	// WinCombos lists the 3 rows, 3 columns and 2 diagonals.
	WinCombos = [8][3]Move{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
)

// Board is a 3x3 grid together with the side to move.
//
// Board is a value: Apply returns a successor and never touches the receiver, so a copy
// handed to another scope can not be changed behind its back.
type Board struct {
	cells [BoardSize][BoardSize]Mark
	turn  Mark
}

// NewBoard - creates an empty board with player one to move.
func NewBoard() Board {
	return Board{turn: PlayerOne}
}

// ParseBoard - builds a board from nine cell symbols in row-major order.
// "O" is player one, "X" is player two, "-" or "." is an empty cell; whitespace and "|" are ignored.
// The side to move is derived from the mark counts.
func ParseBoard(layout string) (Board, error) {
	var symbols []rune
	for _, r := range layout {
		switch r {
		case ' ', '\t', '\n', '\r', '|':
			continue
		}
		symbols = append(symbols, r)
	}

	if len(symbols) != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, BoardSize*BoardSize, len(symbols))
	}

	var board Board
	var ones, twos int
	for i, r := range symbols {
		var mark Mark
		switch r {
		case 'O', 'o':
			mark = PlayerOne
			ones++
		case 'X', 'x':
			mark = PlayerTwo
			twos++
		case '-', '.':
			mark = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unknown symbol %q", ErrInvalidBoard, r)
		}
		board.cells[i/BoardSize][i%BoardSize] = mark
	}

	// player one always moves first
	switch ones - twos {
	case 0:
		board.turn = PlayerOne
	case 1:
		board.turn = PlayerTwo
	default:
		return Board{}, fmt.Errorf("%w: %d marks of %s against %d of %s", ErrInvalidBoard, ones, PlayerOne, twos, PlayerTwo)
	}

	return board, nil
}

func (that Board) Turn() Mark {
	return that.turn
}

func (that Board) PlayerOneTurn() bool {
	return that.turn == PlayerOne
}

func (that Board) PlayerTwoTurn() bool {
	return that.turn == PlayerTwo
}

// At returns the mark at the given cell. Coordinates outside the grid panic like an index out of range.
func (that Board) At(row, col int) Mark {
	return that.cells[row][col]
}

// AvailableMoves - returns the empty cells in row-major order.
// The search relies on this order: among equally valued moves the first one listed is played.
func (that Board) AvailableMoves() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that.cells[row][col] == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that Board) HasAvailableMoves() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if that.cells[row][col] == EmptyCell {
				return true
			}
		}
	}

	return false
}

// Apply - places the mark of the side to move and passes the turn.
// The returned flag reports whether the placement completed a line for the mover; no move may be
// applied to a board once it holds a line.
func (that Board) Apply(move Move) (Board, bool, error) {
	if !move.InRange() {
		return that, false, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, move)
	}

	if that.cells[move.Row][move.Col] != EmptyCell {
		return that, false, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	if one, two := that.Winner(); one || two {
		return that, false, apperror.ErrGameFinished
	}

	mover := that.turn
	next := that
	next.cells[move.Row][move.Col] = mover
	next.turn = mover.Opponent()

	return next, next.isWinner(mover), nil
}

// Winner - reports for each side whether it holds a complete line.
func (that Board) Winner() (bool, bool) {
	return that.isWinner(PlayerOne), that.isWinner(PlayerTwo)
}

func (that Board) isWinner(mark Mark) bool {
	for _, combo := range WinCombos {
		a, b, c := combo[0], combo[1], combo[2]
		if that.cells[a.Row][a.Col] == mark && that.cells[b.Row][b.Col] == mark && that.cells[c.Row][c.Col] == mark {
			return true
		}
	}

	return false
}

func (that Board) String() string {
	var sb strings.Builder
	for row := range BoardSize {
		for col := range BoardSize {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(that.cells[row][col].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
