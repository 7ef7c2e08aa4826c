// Package tui is the terminal front end of the game. It turns key presses and
// mouse clicks into game requests, renders snapshots of the game and plays
// cosmetic effects on every state change.
//
// The model is driven by a single bubbletea event loop and must not be shared
// between goroutines.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/usecase"
)

type gameManager interface {
	MakeTurn(cell int) usecase.Transition
	Reset() usecase.Transition
	NewGame() usecase.Transition
	Game() entity.Game
}

type Model struct {
	logger  *slog.Logger
	manager gameManager

	keys   keyMap
	help   help.Model
	styles styles
	anim   animator

	game    entity.Game
	cursor  int
	layout  layout
	width   int
	height  int
	ticking bool

	quitting bool
}

func New(logger *slog.Logger, manager gameManager, conf *config.Config) Model {
	model := Model{
		logger:  logger.With("component", "tui"),
		manager: manager,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  newStyles(conf.Theme),
		anim:    newAnimator(conf.Animation),
		game:    manager.Game(),
		cursor:  4,
		layout:  layouts[layoutMedium],
	}

	model.anim = model.anim.start([]Effect{{Kind: EffectFadeIn}})
	model.ticking = model.anim.active()

	return model
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.ticking {
		return m.anim.tick()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout = pickLayout(msg.Width, msg.Height)

	case frameMsg:
		m.anim = m.anim.advance()
		if m.anim.active() {
			return m, m.anim.tick()
		}
		m.ticking = false

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if cell, ok := m.cellAt(msg.X, msg.Y); ok {
			m.cursor = cell
			return m.apply(m.manager.MakeTurn(cell))
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Place):
		return m.apply(m.manager.MakeTurn(m.cursor))

	case key.Matches(msg, m.keys.Cell):
		cell := int(msg.String()[0] - '1')
		m.cursor = cell
		return m.apply(m.manager.MakeTurn(cell))

	case key.Matches(msg, m.keys.Reset):
		return m.apply(m.manager.Reset())

	case key.Matches(msg, m.keys.NewGame):
		m.cursor = 4
		return m.apply(m.manager.NewGame())
	}

	return m, nil
}

// apply renders the outcome of a request and fires the effects of the change.
func (m Model) apply(transition usecase.Transition) (tea.Model, tea.Cmd) {
	m.game = transition.After
	if !transition.Applied {
		return m, nil
	}

	effects := Diff(transition.Before, transition.After)
	if len(effects) > 0 {
		m.logger.Debug("effects fired", "action", string(transition.Action), "effects", effectKinds(effects))
	}

	m.anim = m.anim.start(effects)
	if m.anim.active() && !m.ticking {
		m.ticking = true
		return m, m.anim.tick()
	}

	return m, nil
}

func (m *Model) moveCursor(dRow, dCol int) {
	row := (entity.Row(m.cursor) + dRow + 3) % 3
	col := (entity.Col(m.cursor) + dCol + 3) % 3
	m.cursor = entity.Index(row, col)
}

// Game returns the snapshot the model currently renders.
func (m Model) Game() entity.Game {
	return m.game
}

func (m Model) Cursor() int {
	return m.cursor
}

func effectKinds(effects []Effect) []string {
	kinds := make([]string, 0, len(effects))
	for _, effect := range effects {
		kinds = append(kinds, effect.Kind.String())
	}
	return kinds
}
