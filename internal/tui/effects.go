package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

// EffectKind names a cosmetic animation. Effects never feed back into the game.
type EffectKind uint8

const (
	EffectFadeIn EffectKind = iota
	EffectCellAppear
	EffectWinHighlight
	EffectDrawShake
	EffectScoreBump
	EffectTurnPulse
	EffectBoardClear
)

func (that EffectKind) String() string {
	switch that {
	case EffectFadeIn:
		return "fade_in"
	case EffectCellAppear:
		return "cell_appear"
	case EffectWinHighlight:
		return "win_highlight"
	case EffectDrawShake:
		return "draw_shake"
	case EffectScoreBump:
		return "score_bump"
	case EffectTurnPulse:
		return "turn_pulse"
	case EffectBoardClear:
		return "board_clear"
	default:
		return "unknown"
	}
}

// Effect is one animation to play. Cell is set for EffectCellAppear, Line for
// EffectWinHighlight and Player for EffectScoreBump and EffectTurnPulse.
type Effect struct {
	Kind   EffectKind
	Cell   int
	Line   [3]int
	Player entity.Player
}

// Diff compares two snapshots and returns the effects the change should fire.
// Identical snapshots fire nothing.
func Diff(before, after entity.Game) []Effect {
	var effects []Effect

	if after.Board == (entity.Board{}) && before.Board != (entity.Board{}) {
		effects = append(effects, Effect{Kind: EffectBoardClear})
	}

	for cell := 0; cell < entity.BoardSize; cell++ {
		if before.Board[cell] == entity.EmptyCell && after.Board[cell] != entity.EmptyCell {
			effects = append(effects, Effect{Kind: EffectCellAppear, Cell: cell})
		}
	}

	if before.Result.IsNone() {
		switch {
		case after.Result.IsWin():
			effects = append(effects, Effect{Kind: EffectWinHighlight, Line: after.Result.Line})
		case after.Result.IsDraw():
			effects = append(effects, Effect{Kind: EffectDrawShake})
		}
	}

	if after.Score.X > before.Score.X {
		effects = append(effects, Effect{Kind: EffectScoreBump, Player: entity.PlayerX})
	}
	if after.Score.O > before.Score.O {
		effects = append(effects, Effect{Kind: EffectScoreBump, Player: entity.PlayerO})
	}

	if after.IsOngoing() && (before.Turn != after.Turn || before.IsFinished()) {
		effects = append(effects, Effect{Kind: EffectTurnPulse, Player: after.Turn})
	}

	return effects
}

type frameMsg time.Time

type activeEffect struct {
	Effect
	frame  int
	frames int
}

func (that activeEffect) sameSlot(other Effect) bool {
	if that.Kind != other.Kind {
		return false
	}
	if that.Kind == EffectCellAppear {
		return that.Cell == other.Cell
	}
	if that.Kind == EffectScoreBump {
		return that.Player == other.Player
	}
	return true
}

// animator tracks running effects as frame counters. Every method returns a
// fresh slice so copies of the model never share state.
type animator struct {
	conf    config.Animation
	effects []activeEffect
}

func newAnimator(conf config.Animation) animator {
	return animator{conf: conf}
}

func (that animator) enabled() bool {
	return !that.conf.Disabled && that.conf.FrameInterval > 0
}

func (that animator) frames(kind EffectKind) int {
	switch kind {
	case EffectFadeIn:
		return that.conf.FadeInFrames
	case EffectCellAppear, EffectBoardClear:
		return that.conf.AppearFrames
	case EffectWinHighlight:
		return 2 * that.conf.PulseFrames
	case EffectDrawShake, EffectScoreBump, EffectTurnPulse:
		return that.conf.PulseFrames
	default:
		return 0
	}
}

// start queues effects, restarting any effect already playing in the same slot.
// A board clear cancels the per-round effects still running.
func (that animator) start(effects []Effect) animator {
	if !that.enabled() || len(effects) == 0 {
		return that
	}

	running := make([]activeEffect, 0, len(that.effects)+len(effects))
	running = append(running, that.effects...)

	for _, effect := range effects {
		frames := that.frames(effect.Kind)
		if frames <= 0 {
			continue
		}

		kept := make([]activeEffect, 0, len(running)+1)
		for _, active := range running {
			if active.sameSlot(effect) {
				continue
			}
			if effect.Kind == EffectBoardClear && isRoundEffect(active.Kind) {
				continue
			}
			kept = append(kept, active)
		}
		running = append(kept, activeEffect{Effect: effect, frames: frames})
	}

	that.effects = running

	return that
}

func isRoundEffect(kind EffectKind) bool {
	return kind == EffectCellAppear || kind == EffectWinHighlight || kind == EffectDrawShake
}

// advance moves every effect one frame and drops the finished ones.
func (that animator) advance() animator {
	running := make([]activeEffect, 0, len(that.effects))
	for _, active := range that.effects {
		active.frame++
		if active.frame < active.frames {
			running = append(running, active)
		}
	}
	that.effects = running

	return that
}

func (that animator) active() bool {
	return len(that.effects) > 0
}

func (that animator) tick() tea.Cmd {
	return tea.Tick(that.conf.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// find returns the running effect matching kind, and cell for EffectCellAppear.
func (that animator) find(kind EffectKind, cell int) (activeEffect, bool) {
	for _, active := range that.effects {
		if active.Kind != kind {
			continue
		}
		if kind == EffectCellAppear && active.Cell != cell {
			continue
		}
		return active, true
	}
	return activeEffect{}, false
}

func (that animator) findPlayer(kind EffectKind, player entity.Player) (activeEffect, bool) {
	for _, active := range that.effects {
		if active.Kind == kind && active.Player == player {
			return active, true
		}
	}
	return activeEffect{}, false
}

// firstHalf reports whether the effect is still in the first half of its run.
func (that activeEffect) firstHalf() bool {
	return that.frame*2 < that.frames
}

// blink alternates every frame.
func (that activeEffect) blink() bool {
	return that.frame%2 == 0
}
