package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	GameStatusFinished = "finished"
	GameStatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is one match between the human and the bot.
type Game struct {
	ID        string
	Board     *Board
	HumanMark Cell
	BotMark   Cell
	Status    string
	Winner    Cell
	Moves     int
}

func NewGame() *Game {
	return &Game{
		ID:        uuid.NewString(),
		Board:     NewDefaultBoard(),
		HumanMark: CellO,
		BotMark:   CellX,
		Status:    GameStatusOngoing,
	}
}

// UpdateGameState - finishes the game when the board reached a terminal state.
func (that *Game) UpdateGameState() Result {
	result := that.Board.Evaluate()

	switch result.Status {
	// one player wins
	case StatusWin:
		that.Winner = result.Winner
		that.Status = GameStatusFinished
	// tie
	case StatusDraw:
		that.Winner = CellEmpty
		that.Status = GameStatusFinished
	// game continue
	case StatusOngoing:
		that.Status = GameStatusOngoing
	}

	return result
}

func (that *Game) IsFinished() bool {
	return that.Status == GameStatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == GameStatusOngoing
}

func (that *Game) HumanWon() bool {
	return that.IsFinished() && that.Winner == that.HumanMark
}

func (that *Game) BotWon() bool {
	return that.IsFinished() && that.Winner == that.BotMark
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == CellEmpty
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
