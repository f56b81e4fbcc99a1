package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type GameUseCase interface {
	NewGame() *entity.Game
	MakeTurn(ctx context.Context, game *entity.Game, cell int) (*entity.Game, error)
}

type botService interface {
	SelectAndPlace(board *entity.Board, mark entity.Cell) bool
}

type gameUseCase struct {
	logger *slog.Logger

	botService botService
}

func NewGameUseCase(logger *slog.Logger, botService botService) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "usecase"),
		botService: botService,
	}
}

func (that *gameUseCase) NewGame() *entity.Game {
	game := entity.NewGame()

	that.logger.Info("game started", "gameID", game.ID)

	return game
}

// MakeTurn - places the human mark on cell and, unless that ends the game, lets the bot answer.
func (that *gameUseCase) MakeTurn(ctx context.Context, game *entity.Game, cell int) (*entity.Game, error) {
	log := that.logger.With("gameID", game.ID)

	if err := ctx.Err(); err != nil {
		return game, fmt.Errorf("turn canceled: %w", err)
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if err := validateMove(game.Board, cell); err != nil {
		return game, fmt.Errorf("invalid turn: %w", err)
	}

	if err := game.Board.Place(cell, game.HumanMark); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}
	game.Moves++
	log.Debug("player made turn", "cell", cell, "mark", game.HumanMark.String())

	if game.UpdateGameState(); game.IsFinished() {
		log.Info("game finished", "winner", game.Winner.String(), "moves", game.Moves)
		return game, nil
	}

	if !that.botService.SelectAndPlace(game.Board, game.BotMark) {
		return game, fmt.Errorf("bot failed to make turn: %w", apperror.ErrNoAvailableMoves)
	}
	game.Moves++

	if game.UpdateGameState(); game.IsFinished() {
		log.Info("game finished", "winner", game.Winner.String(), "moves", game.Moves)
	}

	return game, nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, cell int) error {
	if board.Validate(cell) {
		return nil
	}

	if _, err := board.Cell(cell); err != nil {
		return err
	}

	return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
}
