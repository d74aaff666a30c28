package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const exitCommand = "exit"

var errExit = errors.New("exit requested")

type botService interface {
	MakeTurn(game *tictactoe.Game) (entity.Move, error)
}

type Options struct {
	// HumanMark is the side entered from the input; ignored in self-play.
	HumanMark entity.Mark
	SelfPlay  bool
}

// Console runs a game between a human on the input and the bot, or between two bots.
type Console struct {
	logger *slog.Logger

	in  io.Reader
	out io.Writer

	bot  botService
	opts Options
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, bot botService, opts Options) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     in,
		out:    out,
		bot:    bot,
		opts:   opts,
	}
}

// Run - plays one game to the end. Leaving with "exit", closing the input or cancelling ctx is not an error.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)
	game := tictactoe.NewGame()

	for !game.IsFinished() {
		if ctx.Err() != nil {
			that.printf("Exiting...\n")
			return nil
		}

		mark := game.Board.Turn()

		if that.isHumanTurn(mark) {
			move, err := that.humanMove(ctx, game, lines)
			if errors.Is(err, errExit) {
				that.printf("Exiting...\n")
				return nil
			}

			if err != nil {
				return fmt.Errorf("failed to read player move: %w", err)
			}

			if err = game.MakeTurn(mark, move); err != nil {
				return fmt.Errorf("failed to make player turn: %w", err)
			}

			that.printf("%s has input %s\n", that.sideName(mark), move)
		} else {
			move, err := that.bot.MakeTurn(game)
			if err != nil {
				return fmt.Errorf("failed to make bot turn: %w", err)
			}

			that.printf("%s has input %s\n", that.sideName(mark), move)
		}

		that.printf("%s", game.Board)
	}

	that.printf("%s\n", that.outcome(game))

	log.Info("game finished", "winner", game.Winner.String(), "moves", len(game.Moves))

	return nil
}

// humanMove - prompts until the input holds a move on an empty cell.
func (that *Console) humanMove(ctx context.Context, game *tictactoe.Game, lines <-chan string) (entity.Move, error) {
	for {
		that.printf("Enter your next move (should be 'row,col' pair indicating position on the board):\n")

		var line string
		var ok bool

		select {
		case <-ctx.Done():
			return entity.Move{}, errExit
		case line, ok = <-lines:
			if !ok {
				return entity.Move{}, errExit
			}
		}

		if strings.TrimSpace(line) == exitCommand {
			return entity.Move{}, errExit
		}

		move, err := parseAvailableMove(game.Board, line)
		if err != nil {
			that.printf("Failed to parse input: %v\n", err)
			continue
		}

		return move, nil
	}
}

func parseAvailableMove(board entity.Board, line string) (entity.Move, error) {
	move, err := entity.ParseMove(line)
	if err != nil {
		return entity.Move{}, err
	}

	if !slices.Contains(board.AvailableMoves(), move) {
		return entity.Move{}, fmt.Errorf("%w: %s, please select another one", apperror.ErrCellOccupied, move)
	}

	return move, nil
}

// readLines - feeds input lines to the game loop so a pending prompt can be abandoned on cancel.
func (that *Console) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
	}()

	return lines
}

func (that *Console) isHumanTurn(mark entity.Mark) bool {
	return !that.opts.SelfPlay && mark == that.opts.HumanMark
}

func (that *Console) sideName(mark entity.Mark) string {
	switch {
	case that.opts.SelfPlay && mark == entity.PlayerOne:
		return "Player one"
	case that.opts.SelfPlay:
		return "Player two"
	case mark == that.opts.HumanMark:
		return "Player"
	default:
		return "Computer"
	}
}

// outcome - reports the result from the final board's winner check.
func (that *Console) outcome(game *tictactoe.Game) string {
	var winner entity.Mark

	switch one, two := game.Board.Winner(); {
	case one:
		winner = entity.PlayerOne
	case two:
		winner = entity.PlayerTwo
	default:
		return "It's a tie!"
	}

	switch {
	case that.opts.SelfPlay:
		return that.sideName(winner) + " has won!"
	case winner == that.opts.HumanMark:
		return "The player has won!"
	default:
		return "The computer has won..."
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
