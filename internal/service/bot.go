package service

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type BotService interface {
	SelectAndPlace(board *entity.Board, mark entity.Cell) bool
}

// botService takes the first free cell in row-major order. It neither blocks
// nor tries to win.
type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

func (that *botService) SelectAndPlace(board *entity.Board, mark entity.Cell) bool {
	cell, ok := board.FirstEmpty()
	if !ok {
		that.logger.Debug("no available moves")
		return false
	}

	if err := board.Place(cell, mark); err != nil {
		that.logger.Error("failed to place mark", "cell", cell, "error", err)
		return false
	}

	that.logger.Debug("bot made turn", "cell", cell, "mark", mark.String())

	return true
}
