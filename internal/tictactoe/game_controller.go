package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game is a single game session on top of a board.
type Game struct {
	Board  entity.Board
	Status string
	// Winner is EmptyCell while the game is ongoing and after a tie.
	Winner entity.Mark
	Moves  []entity.Move
}

func NewGame() *Game {
	return &Game{
		Board:  entity.NewBoard(),
		Status: StatusOngoing,
		Winner: entity.EmptyCell,
	}
}

// MakeTurn - plays move for player, who must be the side to move.
func (that *Game) MakeTurn(player entity.Mark, move entity.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Board.Turn() != player {
		return apperror.ErrNotYourTurn
	}

	next, won, err := that.Board.Apply(move)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Board = next
	that.Moves = append(that.Moves, move)
	that.updateGameStatus(player, won)

	return nil
}

// updateGameStatus - finishes the game on a win or when the board is full.
func (that *Game) updateGameStatus(player entity.Mark, won bool) {
	switch {
	case won:
		that.Winner = player
		that.Status = StatusFinished
	case !that.Board.HasAvailableMoves():
		that.Winner = entity.EmptyCell
		that.Status = StatusFinished
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == entity.EmptyCell
}
