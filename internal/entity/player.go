package entity

// Player is one of the two sides. The zero value is not a valid player.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// Other returns the opposing player.
func (that Player) Other() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Cell returns the mark this player leaves on the board.
func (that Player) Cell() Cell {
	switch that {
	case PlayerX:
		return CellX
	case PlayerO:
		return CellO
	default:
		return EmptyCell
	}
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "-"
	}
}
