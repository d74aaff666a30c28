package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *tictactoe.Game) (entity.Move, error)
}

type searchEngine interface {
	Search(board entity.Board) (minimax.Result, error)
}

type botService struct {
	logger *slog.Logger
	engine searchEngine
}

func NewBotService(logger *slog.Logger, engine searchEngine) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		engine: engine,
	}
}

// MakeTurn - plays the engine's move for the side to move.
func (that *botService) MakeTurn(game *tictactoe.Game) (entity.Move, error) {
	log := that.logger.With("method", "MakeTurn")

	if game.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	mark := game.Board.Turn()

	result, err := that.engine.Search(game.Board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to search for a move: %w", err)
	}

	if err = game.MakeTurn(mark, result.Move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Info("bot made a turn", "mark", mark.String(), "move", result.Move.String(), "value", result.Value.String(), "nodes", result.Nodes)

	return result.Move, nil
}
