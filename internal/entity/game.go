package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
)

type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeDraw
)

// Result is the outcome of a round. Winner and Line are set only for OutcomeWin.
type Result struct {
	Outcome Outcome
	Winner  Player
	Line    [3]int
}

func (that Result) IsNone() bool { return that.Outcome == OutcomeNone }

func (that Result) IsWin() bool { return that.Outcome == OutcomeWin }

func (that Result) IsDraw() bool { return that.Outcome == OutcomeDraw }

// Contains reports whether cell belongs to the winning line.
func (that Result) Contains(cell int) bool {
	if !that.IsWin() {
		return false
	}
	for _, idx := range that.Line {
		if idx == cell {
			return true
		}
	}
	return false
}

func (that Result) String() string {
	switch that.Outcome {
	case OutcomeWin:
		return fmt.Sprintf("%s wins %v", that.Winner, that.Line)
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// Score counts rounds won by each player.
type Score struct {
	X int `json:"x"`
	O int `json:"o"`
}

func (that Score) Of(player Player) int {
	if player == PlayerO {
		return that.O
	}
	return that.X
}

func (that *Score) add(player Player) {
	if player == PlayerO {
		that.O++
		return
	}
	that.X++
}

type State uint8

const (
	StateInProgress State = iota
	StateWonX
	StateWonO
	StateDrawn
)

func (that State) String() string {
	switch that {
	case StateWonX:
		return "won_x"
	case StateWonO:
		return "won_o"
	case StateDrawn:
		return "drawn"
	default:
		return "in_progress"
	}
}

// Game is the whole engine state. It holds no pointers, so a plain value copy
// is an independent snapshot.
type Game struct {
	Board   Board  `json:"board"`
	Turn    Player `json:"turn"`
	Starter Player `json:"starter"`
	Result  Result `json:"result"`
	Score   Score  `json:"score"`
}

func NewGame() *Game {
	return &Game{
		Turn:    PlayerX,
		Starter: PlayerX,
	}
}

// CheckResult scans WinCombos in order and reports the first complete line.
// A full board without a line is a draw.
func CheckResult(board Board) Result {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			winner, _ := a.Player()
			return Result{Outcome: OutcomeWin, Winner: winner, Line: combo}
		}
	}

	if board.IsFull() {
		return Result{Outcome: OutcomeDraw}
	}

	return Result{}
}

// ValidateMove explains why ApplyMove would ignore cell, nil if it would not.
func (that *Game) ValidateMove(cell int) error {
	if !IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Board[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// ApplyMove places the current player's mark on cell. Illegal moves leave the
// game untouched and return false.
func (that *Game) ApplyMove(cell int) bool {
	if that.ValidateMove(cell) != nil {
		return false
	}

	that.Board[cell] = that.Turn.Cell()
	that.UpdateGameState()

	return true
}

// UpdateGameState settles the round after a mark was placed by Turn.
func (that *Game) UpdateGameState() {
	switch result := CheckResult(that.Board); result.Outcome {
	case OutcomeWin:
		that.Result = result
		that.Score.add(result.Winner)
	case OutcomeDraw:
		that.Result = result
	default:
		that.Turn = that.Turn.Other()
	}
}

// Reset starts a new round with the other starter and keeps the score.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Result = Result{}
	that.Starter = that.Starter.Other()
	that.Turn = that.Starter
}

// NewGame starts over from X with a zero score.
func (that *Game) NewGame() {
	*that = *NewGame()
}

func (that *Game) IsFinished() bool {
	return !that.Result.IsNone()
}

func (that *Game) IsOngoing() bool {
	return that.Result.IsNone()
}

func (that *Game) State() State {
	switch {
	case that.Result.IsDraw():
		return StateDrawn
	case that.Result.IsWin() && that.Result.Winner == PlayerO:
		return StateWonO
	case that.Result.IsWin():
		return StateWonX
	default:
		return StateInProgress
	}
}

// Snapshot returns an independent copy of the game.
func (that *Game) Snapshot() Game {
	return *that
}

// MoveCount is the number of marks placed this round.
func (that *Game) MoveCount() int {
	return BoardSize - that.Board.Count(EmptyCell)
}
