package entity

// Cell is the state of one board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellO
	CellX
)

func (that Cell) String() string {
	switch that {
	case CellO:
		return "O"
	case CellX:
		return "X"
	default:
		return " "
	}
}

func (that Cell) IsMark() bool {
	return that == CellO || that == CellX
}
