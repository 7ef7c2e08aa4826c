package entity

const BoardSize = 9

// Cell is one square of the board.
type Cell uint8

const (
	EmptyCell Cell = iota
	CellX
	CellO
)

// Player returns the owner of an occupied cell, false for an empty one.
func (that Cell) Player() (Player, bool) {
	switch that {
	case CellX:
		return PlayerX, true
	case CellO:
		return PlayerO, true
	default:
		return 0, false
	}
}

func (that Cell) String() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return " "
	}
}

// Board is the 3x3 grid stored row-major.
type Board [BoardSize]Cell

// WinCombos lists the winning lines in scan order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func Row(cell int) int { return cell / 3 }

func Col(cell int) int { return cell % 3 }

// Index maps a row and column back to a cell index, -1 when off the board.
func Index(row, col int) int {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return -1
	}
	return row*3 + col
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// Count returns how many cells hold the given mark.
func (that Board) Count(mark Cell) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}
	return n
}
