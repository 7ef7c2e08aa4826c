package usecase

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

type Action string

const (
	ActionMove    Action = "move"
	ActionReset   Action = "reset"
	ActionNewGame Action = "new_game"
)

// Transition pairs the game before and after one request. Applied is false
// when the request left the game unchanged.
type Transition struct {
	Action  Action
	Cell    int
	Before  entity.Game
	After   entity.Game
	Applied bool
}

// GameManager owns the single active game. It is driven from one event loop
// and does no locking.
type GameManager struct {
	logger  *slog.Logger
	game    *entity.Game
	roundID string
}

func NewGameManager(logger *slog.Logger) *GameManager {
	manager := &GameManager{
		logger:  logger.With("component", "game_manager"),
		game:    entity.NewGame(),
		roundID: uuid.NewString(),
	}

	manager.log().Info("round started", "starter", manager.game.Starter.String())

	return manager
}

func (that *GameManager) MakeTurn(cell int) Transition {
	log := that.log().With("method", "MakeTurn", "cell", cell)

	before := that.game.Snapshot()
	if err := that.game.ValidateMove(cell); err != nil {
		log.Debug("move ignored", "reason", err)

		return Transition{Action: ActionMove, Cell: cell, Before: before, After: before}
	}

	player := that.game.Turn
	applied := that.game.ApplyMove(cell)
	after := that.game.Snapshot()

	log.Debug("move applied", "player", player.String())

	switch after.State() {
	case entity.StateWonX, entity.StateWonO:
		log.Info("round won",
			"winner", after.Result.Winner.String(),
			"line", after.Result.Line,
			"score_x", after.Score.X,
			"score_o", after.Score.O,
		)
	case entity.StateDrawn:
		log.Info("round drawn", "score_x", after.Score.X, "score_o", after.Score.O)
	case entity.StateInProgress:
	}

	return Transition{Action: ActionMove, Cell: cell, Before: before, After: after, Applied: applied}
}

// Reset clears the board for a new round and keeps the score.
func (that *GameManager) Reset() Transition {
	before := that.game.Snapshot()
	that.game.Reset()

	return that.startRound(ActionReset, before)
}

// NewGame clears the board and the score.
func (that *GameManager) NewGame() Transition {
	before := that.game.Snapshot()
	that.game.NewGame()

	return that.startRound(ActionNewGame, before)
}

// Game returns a snapshot of the current game.
func (that *GameManager) Game() entity.Game {
	return that.game.Snapshot()
}

func (that *GameManager) RoundID() string {
	return that.roundID
}

func (that *GameManager) startRound(action Action, before entity.Game) Transition {
	previousRound := that.roundID
	that.roundID = uuid.NewString()

	that.log().Info("round started",
		"action", string(action),
		"previous_round", previousRound,
		"starter", that.game.Starter.String(),
		"score_x", that.game.Score.X,
		"score_o", that.game.Score.O,
	)

	return Transition{
		Action:  action,
		Cell:    -1,
		Before:  before,
		After:   that.game.Snapshot(),
		Applied: true,
	}
}

func (that *GameManager) log() *slog.Logger {
	return that.logger.With("round", that.roundID)
}
