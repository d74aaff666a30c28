package minimax

import (
	"cmp"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type class int8

// Classes are declared in ascending order, so comparing two values starts with their class.
const (
	classNegativeInfinity class = iota
	classPlayerTwoWin
	classScore
	classPlayerOneWin
	classPositiveInfinity
)

// Value is a position value on the scale player one maximizes and player two minimizes.
//
// Any win of player one is greater than any score, which in turn is greater than any win of
// player two. Inside a class the depth counter (0 at the root, decreasing with every ply)
// breaks ties in favour of quicker wins and slower losses.
type Value struct {
	class class
	depth int
}

var (
	NegativeInfinity = Value{class: classNegativeInfinity}
	PositiveInfinity = Value{class: classPositiveInfinity}
)

// Win - the value of a line completed by side at the given depth.
func Win(side entity.Mark, depth int) Value {
	if side == entity.PlayerOne {
		return Value{class: classPlayerOneWin, depth: depth}
	}

	return Value{class: classPlayerTwoWin, depth: depth}
}

// Score - the value of a board filled without a line at the given depth.
func Score(depth int) Value {
	return Value{class: classScore, depth: depth}
}

// Compare returns -1, 0 or +1 as that is less than, equal to or greater than other.
func (that Value) Compare(other Value) int {
	if c := cmp.Compare(that.class, other.class); c != 0 {
		return c
	}

	switch that.class {
	case classPlayerOneWin, classScore:
		return cmp.Compare(that.depth, other.depth)
	case classPlayerTwoWin:
		// a shallower win is better for player two, so it sits lower on the scale
		return cmp.Compare(other.depth, that.depth)
	default:
		return 0
	}
}

func (that Value) Less(other Value) bool {
	return that.Compare(other) < 0
}

func (that Value) Greater(other Value) bool {
	return that.Compare(other) > 0
}

// Winner reports the side this value is a forced win for.
func (that Value) Winner() (entity.Mark, bool) {
	switch that.class {
	case classPlayerOneWin:
		return entity.PlayerOne, true
	case classPlayerTwoWin:
		return entity.PlayerTwo, true
	default:
		return entity.EmptyCell, false
	}
}

func (that Value) Depth() int {
	return that.depth
}

func (that Value) String() string {
	switch that.class {
	case classNegativeInfinity:
		return "-inf"
	case classPositiveInfinity:
		return "+inf"
	case classPlayerOneWin, classPlayerTwoWin:
		side, _ := that.Winner()
		return fmt.Sprintf("win(%s)@%d", side, that.depth)
	default:
		return fmt.Sprintf("score@%d", that.depth)
	}
}
