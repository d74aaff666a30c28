package minimax

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Result is the outcome of one search call.
type Result struct {
	Move  entity.Move
	Value Value
	// Nodes is the number of moves evaluated by this call.
	Nodes int
}

// Engine picks moves by exhaustive minimax search with alpha-beta pruning.
// Player one maximizes the value scale, player two minimizes it.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// ChooseMove - returns the move a perfect player would make for the side to move.
func (that *Engine) ChooseMove(board entity.Board) (entity.Move, error) {
	result, err := that.Search(board)
	if err != nil {
		return entity.Move{}, err
	}

	return result.Move, nil
}

// Search - searches the whole remaining game tree from board with the full window.
func (that *Engine) Search(board entity.Board) (Result, error) {
	return that.BestMove(board, board.PlayerOneTurn(), 0, NegativeInfinity, PositiveInfinity)
}

// BestMove - evaluates every available move of board and returns the best one together with its
// bound: alpha when maximizing, beta when minimizing.
//
// depth is the counter of the calling ply; it is decremented before the moves of this ply are
// scored. Moves are tried in row-major order and a later move only replaces the current best on a
// strict improvement, so the first of equally valued moves wins.
func (that *Engine) BestMove(board entity.Board, maximizing bool, depth int, alpha, beta Value) (Result, error) {
	if one, two := board.Winner(); one || two {
		return Result{}, fmt.Errorf("search on a decided board: %w", apperror.ErrGameFinished)
	}

	if !board.HasAvailableMoves() {
		return Result{}, fmt.Errorf("search on a full board: %w", apperror.ErrNoAvailableMoves)
	}

	s := &search{}

	move, value, err := s.bestMove(board, maximizing, depth, alpha, beta)
	if err != nil {
		return Result{}, err
	}

	return Result{Move: move, Value: value, Nodes: s.nodes}, nil
}

// search carries the node counter of a single BestMove call.
type search struct {
	nodes int
}

func (that *search) bestMove(board entity.Board, maximizing bool, depth int, alpha, beta Value) (entity.Move, Value, error) {
	depth--

	moves := board.AvailableMoves()
	best := moves[0]

	for _, move := range moves {
		value, err := that.moveValue(board, move, maximizing, depth, alpha, beta)
		if err != nil {
			return entity.Move{}, Value{}, err
		}

		if maximizing {
			if value.Greater(alpha) {
				alpha = value
				best = move
			}
		} else if value.Less(beta) {
			beta = value
			best = move
		}

		// remaining siblings can not change the outcome
		if alpha.Greater(beta) {
			break
		}
	}

	if maximizing {
		return best, alpha, nil
	}

	return best, beta, nil
}

func (that *search) moveValue(board entity.Board, move entity.Move, maximizing bool, depth int, alpha, beta Value) (Value, error) {
	that.nodes++

	next, won, err := board.Apply(move)
	if err != nil {
		return Value{}, fmt.Errorf("failed to apply move %s: %w", move, err)
	}

	if won {
		return Win(board.Turn(), depth), nil
	}

	if !next.HasAvailableMoves() {
		return Score(depth), nil
	}

	_, value, err := that.bestMove(next, !maximizing, depth, alpha, beta)
	if err != nil {
		return Value{}, err
	}

	return value, nil
}
