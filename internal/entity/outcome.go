package entity

type Status uint8

const (
	StatusOngoing Status = iota
	StatusDraw
	StatusWin
)

func (that Status) String() string {
	switch that {
	case StatusDraw:
		return "draw"
	case StatusWin:
		return "win"
	default:
		return "ongoing"
	}
}

// Result is the outcome of a board position. Winner is set only for StatusWin.
type Result struct {
	Status Status
	Winner Cell
}

// Evaluate checks rows, columns, both diagonals and finally board fullness.
func (that *Board) Evaluate() Result {
	if winner := that.lineWinner(); winner != CellEmpty {
		return Result{Status: StatusWin, Winner: winner}
	}

	// the game will continue until all the squares are full
	if _, ok := that.FirstEmpty(); ok {
		return Result{Status: StatusOngoing}
	}

	return Result{Status: StatusDraw}
}

func (that *Board) lineWinner() Cell {
	n := that.Rows()

	for i := 0; i < n; i++ {
		if winner := that.rowWinner(i); winner != CellEmpty {
			return winner
		}
	}

	for j := 0; j < that.Cols(); j++ {
		if winner := that.columnWinner(j); winner != CellEmpty {
			return winner
		}
	}

	if winner := that.mainDiagonalWinner(); winner != CellEmpty {
		return winner
	}

	return that.antiDiagonalWinner()
}

func (that *Board) rowWinner(row int) Cell {
	return uniform(len(that.cells[row]), func(j int) Cell { return that.cells[row][j] })
}

func (that *Board) columnWinner(col int) Cell {
	return uniform(that.Rows(), func(i int) Cell { return that.cells[i][col] })
}

func (that *Board) mainDiagonalWinner() Cell {
	return uniform(that.Rows(), func(i int) Cell { return that.cells[i][i] })
}

func (that *Board) antiDiagonalWinner() Cell {
	last := that.Cols() - 1
	return uniform(that.Rows(), func(i int) Cell { return that.cells[i][last-i] })
}

// uniform returns the mark shared by all n cells of a line, or CellEmpty when
// the line starts empty or any cell differs from its first one.
func uniform(n int, at func(i int) Cell) Cell {
	if n == 0 {
		return CellEmpty
	}

	first := at(0)
	if first == CellEmpty {
		return CellEmpty
	}

	for i := 1; i < n; i++ {
		if at(i) != first {
			return CellEmpty
		}
	}

	return first
}
