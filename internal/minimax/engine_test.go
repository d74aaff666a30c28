package minimax

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullTreeNodes is the number of moves in the unpruned game tree from the empty board.
const fullTreeNodes = 549945

func mustParseBoard(t *testing.T, layout string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(layout)
	require.NoError(t, err)

	return board
}

// referenceValue is plain minimax without pruning, scored the same way as the engine.
func referenceValue(board entity.Board, depth int) Value {
	depth--

	maximizing := board.PlayerOneTurn()
	best := PositiveInfinity
	if maximizing {
		best = NegativeInfinity
	}

	for _, move := range board.AvailableMoves() {
		value := referenceMoveValue(board, move, depth)
		if (maximizing && value.Greater(best)) || (!maximizing && value.Less(best)) {
			best = value
		}
	}

	return best
}

func referenceMoveValue(board entity.Board, move entity.Move, depth int) Value {
	next, won, err := board.Apply(move)
	if err != nil {
		panic(err)
	}

	switch {
	case won:
		return Win(board.Turn(), depth)
	case !next.HasAvailableMoves():
		return Score(depth)
	default:
		return referenceValue(next, depth)
	}
}

// reachableBoards collects every distinct board reachable from the empty one that has no winner
// and at least one empty cell.
func reachableBoards() []entity.Board {
	seen := map[entity.Board]struct{}{}
	var boards []entity.Board

	var walk func(board entity.Board)
	walk = func(board entity.Board) {
		if _, ok := seen[board]; ok {
			return
		}
		seen[board] = struct{}{}
		boards = append(boards, board)

		for _, move := range board.AvailableMoves() {
			next, won, err := board.Apply(move)
			if err != nil {
				panic(err)
			}
			if won || !next.HasAvailableMoves() {
				continue
			}
			walk(next)
		}
	}
	walk(entity.NewBoard())

	return boards
}

func TestEngine_ChooseMove(t *testing.T) {
	engine := NewEngine()

	t.Run("Takes the last cell when it completes a line", func(t *testing.T) {
		// Given: one empty cell left and player one completes the top row there
		board := mustParseBoard(t, `
			O O -
			X X O
			O X X`)

		// When: the engine chooses for player one
		move, err := engine.ChooseMove(board)

		// Then: it takes the winning cell
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Prefers the immediate win", func(t *testing.T) {
		// Given: player one can win now
		board := mustParseBoard(t, `
			O O -
			X X -
			- - -`)

		// When: the engine searches for player one
		result, err := engine.Search(board)

		// Then: it wins on the spot instead of later
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, result.Move)
		assert.Equal(t, Win(entity.PlayerOne, -1), result.Value)
	})

	t.Run("Player two blocks a threat it can survive", func(t *testing.T) {
		// Given: player one threatens the top row
		board := mustParseBoard(t, `
			O O -
			- X -
			- - -`)

		// When: the engine chooses for player two
		move, err := engine.ChooseMove(board)

		// Then: it blocks
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Delays a forced loss", func(t *testing.T) {
		// Given: player one threatens the main diagonal and can fork after the block
		board := mustParseBoard(t, `
			O X -
			- O -
			- - -`)

		// When: the engine searches for player two
		result, err := engine.Search(board)

		// Then: it blocks, which loses two plies later than any other move
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, result.Move)
		assert.Equal(t, Win(entity.PlayerOne, -4), result.Value)
	})

	t.Run("Equal moves resolve to the first in row-major order", func(t *testing.T) {
		// Given: an empty board, where every opening leads to a tie
		board := entity.NewBoard()

		// When: the engine chooses the opening
		result, err := engine.Search(board)

		// Then: the top-left corner is played and the game is a tie on a full board
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, result.Move)
		assert.Equal(t, Score(-9), result.Value)
	})

	t.Run("Error on a full board", func(t *testing.T) {
		board := mustParseBoard(t, "OXO OXX XOO")

		_, err := engine.ChooseMove(board)

		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Error on a decided board", func(t *testing.T) {
		board := mustParseBoard(t, `
			O X -
			O X -
			O - -`)

		_, err := engine.ChooseMove(board)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestEngine_Search_Pruning(t *testing.T) {
	// When: searching from the empty board
	result, err := NewEngine().Search(entity.NewBoard())

	// Then: the node counter is populated and pruning skipped part of the tree
	require.NoError(t, err)
	assert.Positive(t, result.Nodes)
	assert.Less(t, result.Nodes, fullTreeNodes)
}

func TestEngine_BestMove_NodesAreCountedPerCall(t *testing.T) {
	engine := NewEngine()
	board := mustParseBoard(t, "OX- -O- ---")

	first, err := engine.BestMove(board, false, 0, NegativeInfinity, PositiveInfinity)
	require.NoError(t, err)

	second, err := engine.BestMove(board, false, 0, NegativeInfinity, PositiveInfinity)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_ReachableBoards(t *testing.T) {
	engine := NewEngine()
	boards := reachableBoards()

	// 5478 legal boards exist, minus the finished ones
	require.Len(t, boards, 4520)

	for _, board := range boards {
		result, err := engine.Search(board)
		require.NoError(t, err, "board\n%s", board)

		// Then: the move is legal
		assert.Contains(t, board.AvailableMoves(), result.Move, "board\n%s", board)

		// And: pruning did not change the game value, and the chosen move achieves it
		expected := referenceValue(board, 0)
		assert.Equal(t, expected, result.Value, "board\n%s", board)
		assert.Equal(t, expected, referenceMoveValue(board, result.Move, -1), "board\n%s", board)
	}
}

func TestEngine_SelfPlayEndsInTie(t *testing.T) {
	engine := NewEngine()
	board := entity.NewBoard()

	for board.HasAvailableMoves() {
		move, err := engine.ChooseMove(board)
		require.NoError(t, err)

		next, won, err := board.Apply(move)
		require.NoError(t, err)
		require.False(t, won, "%s won with %s on\n%s", board.Turn(), move, board)

		board = next
	}

	one, two := board.Winner()
	assert.False(t, one)
	assert.False(t, two)
}
