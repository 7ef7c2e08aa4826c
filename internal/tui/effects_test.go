package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/usecase"
)

func testAnimation() config.Animation {
	return config.Animation{
		FrameInterval: 10 * time.Millisecond,
		AppearFrames:  4,
		PulseFrames:   4,
		FadeInFrames:  4,
	}
}

func kinds(effects []Effect) []EffectKind {
	out := make([]EffectKind, 0, len(effects))
	for _, effect := range effects {
		out = append(out, effect.Kind)
	}
	return out
}

func TestDiff(t *testing.T) {
	t.Run("Identical snapshots fire nothing", func(t *testing.T) {
		game := entity.NewGame().Snapshot()

		assert.Empty(t, Diff(game, game))
	})

	t.Run("A move makes the cell appear and pulses the turn", func(t *testing.T) {
		// Given: a fresh game
		game := entity.NewGame()
		before := game.Snapshot()

		// When: X plays the center
		require.True(t, game.ApplyMove(4))

		// Then: the center appears and O's turn pulses
		assert.Equal(t, []Effect{
			{Kind: EffectCellAppear, Cell: 4},
			{Kind: EffectTurnPulse, Player: entity.PlayerO},
		}, Diff(before, game.Snapshot()))
	})

	t.Run("A winning move highlights the line and bumps the score", func(t *testing.T) {
		// Given: X is one move away from the top row
		game := entity.NewGame()
		for _, cell := range []int{0, 3, 1, 4} {
			require.True(t, game.ApplyMove(cell))
		}
		before := game.Snapshot()

		// When: X completes the row
		require.True(t, game.ApplyMove(2))

		// Then: appear, highlight and bump fire, and the turn does not pulse
		assert.Equal(t, []Effect{
			{Kind: EffectCellAppear, Cell: 2},
			{Kind: EffectWinHighlight, Line: [3]int{0, 1, 2}},
			{Kind: EffectScoreBump, Player: entity.PlayerX},
		}, Diff(before, game.Snapshot()))
	})

	t.Run("The last move of a draw shakes the board", func(t *testing.T) {
		// Given: eight moves of a drawn game
		game := entity.NewGame()
		for _, cell := range []int{0, 1, 2, 4, 3, 5, 7, 6} {
			require.True(t, game.ApplyMove(cell))
		}
		before := game.Snapshot()

		// When: the ninth cell is filled
		require.True(t, game.ApplyMove(8))

		// Then: the cell appears and the board shakes
		assert.Equal(t, []EffectKind{EffectCellAppear, EffectDrawShake}, kinds(Diff(before, game.Snapshot())))
	})

	t.Run("Reset clears the board and pulses the new starter", func(t *testing.T) {
		// Given: a won round
		game := entity.NewGame()
		for _, cell := range []int{0, 3, 1, 4, 2} {
			require.True(t, game.ApplyMove(cell))
		}
		before := game.Snapshot()

		// When: resetting
		game.Reset()

		// Then: the board clears and O pulses
		assert.Equal(t, []Effect{
			{Kind: EffectBoardClear},
			{Kind: EffectTurnPulse, Player: entity.PlayerO},
		}, Diff(before, game.Snapshot()))
	})

	t.Run("Every cell appears exactly once per round", func(t *testing.T) {
		// Given: a manager driving a full drawn round with repeated taps
		manager := usecase.NewGameManager(slog.New(slog.NewJSONHandler(io.Discard, nil)))
		appeared := map[int]int{}

		// When: diffing every transition, ignored ones included
		for _, cell := range []int{0, 0, 1, 2, 2, 4, 3, 5, 7, 6, 8, 8, 4} {
			transition := manager.MakeTurn(cell)
			for _, effect := range Diff(transition.Before, transition.After) {
				if effect.Kind == EffectCellAppear {
					appeared[effect.Cell]++
				}
			}
		}

		// Then: each of the nine cells appeared once
		require.Len(t, appeared, entity.BoardSize)
		for cell, count := range appeared {
			assert.Equal(t, 1, count, "cell %d", cell)
		}
	})
}

func TestAnimator(t *testing.T) {
	t.Run("Disabled animator ignores effects", func(t *testing.T) {
		conf := testAnimation()
		conf.Disabled = true

		anim := newAnimator(conf).start([]Effect{{Kind: EffectFadeIn}})

		assert.False(t, anim.active())
	})

	t.Run("Effects finish after their frame count", func(t *testing.T) {
		// Given: a cell appearing for four frames
		anim := newAnimator(testAnimation()).start([]Effect{{Kind: EffectCellAppear, Cell: 3}})
		active, ok := anim.find(EffectCellAppear, 3)
		require.True(t, ok)
		assert.True(t, active.firstHalf())

		// When: advancing three frames
		for i := 0; i < 3; i++ {
			anim = anim.advance()
		}

		// Then: the effect is in its last frame
		active, ok = anim.find(EffectCellAppear, 3)
		require.True(t, ok)
		assert.False(t, active.firstHalf())

		// And: one more frame ends it
		anim = anim.advance()
		assert.False(t, anim.active())
	})

	t.Run("Restarting a slot replaces the running effect", func(t *testing.T) {
		// Given: a turn pulse two frames in
		anim := newAnimator(testAnimation()).start([]Effect{{Kind: EffectTurnPulse, Player: entity.PlayerO}})
		anim = anim.advance().advance()

		// When: the turn pulses again
		anim = anim.start([]Effect{{Kind: EffectTurnPulse, Player: entity.PlayerX}})

		// Then: only the new pulse runs, from frame zero
		require.Len(t, anim.effects, 1)
		assert.Equal(t, entity.PlayerX, anim.effects[0].Player)
		assert.Equal(t, 0, anim.effects[0].frame)
	})

	t.Run("Board clear cancels round effects", func(t *testing.T) {
		// Given: a cell appearing and a score bump
		anim := newAnimator(testAnimation()).start([]Effect{
			{Kind: EffectCellAppear, Cell: 1},
			{Kind: EffectScoreBump, Player: entity.PlayerX},
		})

		// When: the board clears
		anim = anim.start([]Effect{{Kind: EffectBoardClear}})

		// Then: the cell effect is gone and the score bump keeps playing
		assert.Equal(t, []EffectKind{EffectScoreBump, EffectBoardClear}, kinds(effectsOf(anim)))
	})

	t.Run("Copies do not share frames", func(t *testing.T) {
		original := newAnimator(testAnimation()).start([]Effect{{Kind: EffectFadeIn}})

		advanced := original.advance()

		assert.Equal(t, 0, original.effects[0].frame)
		assert.Equal(t, 1, advanced.effects[0].frame)
	})
}

func effectsOf(anim animator) []Effect {
	out := make([]Effect, 0, len(anim.effects))
	for _, active := range anim.effects {
		out = append(out, active.Effect)
	}
	return out
}
