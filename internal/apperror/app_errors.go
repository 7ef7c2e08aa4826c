package apperror

import "errors"

// Reasons a move is ignored. The engine never surfaces them to the player;
// they only explain a no-op in debug logs.
var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
)
