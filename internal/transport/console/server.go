package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

const (
	msgBoard       = "Board:"
	msgPrompt      = "Choose a cell:"
	msgInvalidCell = "Invalid cell"
	msgInputClosed = "Input closed"
	msgWon         = "GAME OVER, you won"
	msgLost        = "GAME OVER, you lost"
	msgDraw        = "GAME OVER, draw"
)

var ErrInvalidInput = errors.New("invalid input")

type Server struct {
	logger  *slog.Logger
	useCase usecase.GameUseCase

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, useCase usecase.GameUseCase, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:  logger.With("component", "console"),
		useCase: useCase,
		in:      in,
		out:     out,
	}
}

// Start plays one game on the console. It returns nil when the game is over,
// apperror.ErrInputClosed when input runs out first, or the context error.
// The line reader stops when Start returns.
func (that *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, that.in)
	game := that.useCase.NewGame()

	log := that.logger.With("gameID", game.ID)

	for {
		that.printf("%s\n%s\n", msgBoard, game.Board)
		that.printf("%s\n", msgPrompt)

		var input line
		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return ctx.Err()
		case next, ok := <-lines:
			if !ok {
				that.printf("%s\n", msgInputClosed)
				return apperror.ErrInputClosed
			}
			input = next
		}

		if input.err != nil {
			that.printf("%s: %v\n", msgInputClosed, input.err)
			return fmt.Errorf("%w: %w", apperror.ErrInputClosed, input.err)
		}

		cell, err := parseCell(input.text, game.Board)
		if err != nil {
			log.Debug("rejected input", "input", input.text, "error", err)
			that.printf("%s\n", msgInvalidCell)
			continue
		}

		if _, err = that.useCase.MakeTurn(ctx, game, cell); err != nil {
			if errors.Is(err, apperror.ErrCellOccupied) || errors.Is(err, apperror.ErrInvalidCell) {
				that.printf("%s\n", msgInvalidCell)
				continue
			}

			return fmt.Errorf("failed to make turn: %w", err)
		}

		if game.IsFinished() {
			that.printf("%s\n%s", finalMessage(game), game.Board)
			return nil
		}
	}
}

// parseCell - accepts only an index of an empty cell on board.
func parseCell(text string, board *entity.Board) (int, error) {
	cell, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, text)
	}

	if cell < 0 || cell >= board.Len() {
		return 0, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !board.Validate(cell) {
		return 0, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return cell, nil
}

func finalMessage(game *entity.Game) string {
	switch {
	case game.HumanWon():
		return msgWon
	case game.BotWon():
		return msgLost
	default:
		return msgDraw
	}
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
