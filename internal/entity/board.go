package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const DefaultBoardSize = 3

var (
	ErrInvalidBoardSize = errors.New("board size must be at least 1")
	ErrInvalidMark      = errors.New("invalid mark")
)

// Board is a square grid of cells stored row-major. Its dimensions never change.
type Board struct {
	cells [][]Cell
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}

	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}

	return &Board{cells: cells}, nil
}

func NewDefaultBoard() *Board {
	board, _ := NewBoard(DefaultBoardSize)
	return board
}

func (that *Board) Rows() int {
	return len(that.cells)
}

func (that *Board) Cols() int {
	if len(that.cells) == 0 {
		return 0
	}

	return len(that.cells[0])
}

// Len - number of cells on the board.
func (that *Board) Len() int {
	return that.Rows() * that.Cols()
}

// At returns CellEmpty for coordinates outside the board.
func (that *Board) At(row, col int) Cell {
	if row < 0 || row >= that.Rows() || col < 0 || col >= that.Cols() {
		return CellEmpty
	}

	return that.cells[row][col]
}

func (that *Board) Translate(index int) (int, int) {
	return Translate(index, that.Cols())
}

func (that *Board) Cell(index int) (Cell, error) {
	if !that.inBounds(index) {
		return CellEmpty, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	row, col := that.Translate(index)

	return that.cells[row][col], nil
}

// Validate reports whether index addresses an empty cell on this board.
func (that *Board) Validate(index int) bool {
	cell, err := that.Cell(index)
	return err == nil && cell == CellEmpty
}

// Place puts mark on the cell at index. Exactly one cell changes on success.
func (that *Board) Place(index int, mark Cell) error {
	if !mark.IsMark() {
		return fmt.Errorf("%w: %d", ErrInvalidMark, mark)
	}

	cell, err := that.Cell(index)
	if err != nil {
		return err
	}

	if cell != CellEmpty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	row, col := that.Translate(index)
	that.cells[row][col] = mark

	return nil
}

// FirstEmpty - scans the board row by row and returns the first empty cell index.
func (that *Board) FirstEmpty() (int, bool) {
	for i, row := range that.cells {
		for j, cell := range row {
			if cell == CellEmpty {
				return Index(i, j, that.Cols()), true
			}
		}
	}

	return 0, false
}

func (that *Board) IsTerminal() bool {
	return that.Evaluate().Status != StatusOngoing
}

func (that *Board) Clone() *Board {
	cells := make([][]Cell, len(that.cells))
	for i, row := range that.cells {
		cells[i] = append([]Cell(nil), row...)
	}

	return &Board{cells: cells}
}

// Render draws the grid; empty cells show their linear index as a hint.
func (that *Board) Render() string {
	width := len(strconv.Itoa(that.Len() - 1))
	separator := strings.Repeat("+"+strings.Repeat("-", width+2), that.Cols()) + "+\n"

	var sb strings.Builder
	for i, row := range that.cells {
		sb.WriteString(separator)
		for j, cell := range row {
			label := cell.String()
			if cell == CellEmpty {
				label = strconv.Itoa(Index(i, j, that.Cols()))
			}
			fmt.Fprintf(&sb, "| %-*s ", width, label)
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(separator)

	return sb.String()
}

func (that *Board) String() string {
	return that.Render()
}

func (that *Board) inBounds(index int) bool {
	return index >= 0 && index < that.Len()
}
