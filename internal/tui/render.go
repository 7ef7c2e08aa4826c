package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

type layoutSize uint8

const (
	layoutCompact layoutSize = iota
	layoutMedium
	layoutLarge
	layoutTooSmall
)

// layout is the geometry of the board for one terminal size.
type layout struct {
	size       layoutSize
	cellWidth  int
	cellHeight int
}

var layouts = map[layoutSize]layout{
	layoutLarge:    {size: layoutLarge, cellWidth: 11, cellHeight: 5},
	layoutMedium:   {size: layoutMedium, cellWidth: 7, cellHeight: 3},
	layoutCompact:  {size: layoutCompact, cellWidth: 3, cellHeight: 1},
	layoutTooSmall: {size: layoutTooSmall},
}

const (
	// title, status, score and a blank line sit above the board
	headerHeight = 4
	// a blank line and the help bar sit below it
	footerHeight = 2
)

func (that layout) boardWidth() int  { return 3*that.cellWidth + 2 }
func (that layout) boardHeight() int { return 3*that.cellHeight + 2 }

func (that layout) fits(width, height int) bool {
	return that.boardWidth() <= width && headerHeight+that.boardHeight()+footerHeight <= height
}

func pickLayout(width, height int) layout {
	for _, size := range []layoutSize{layoutLarge, layoutMedium, layoutCompact} {
		if candidate := layouts[size]; candidate.fits(width, height) {
			return candidate
		}
	}
	return layouts[layoutTooSmall]
}

var bigGlyphs = map[entity.Player]string{
	entity.PlayerX: "\\   /\n \\ / \n  X  \n / \\ \n/   \\",
	entity.PlayerO: "╭───╮\n│   │\n│   │\n│   │\n╰───╯",
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.layout.size == layoutTooSmall {
		return m.styles.notice.Render("window too small, resize to play")
	}

	lines := []string{
		m.center(m.renderTitle()),
		m.center(m.renderStatus()),
		m.center(m.renderScore()),
		"",
	}

	pad := strings.Repeat(" ", m.boardLeft()+m.shakeOffset())
	for _, line := range strings.Split(m.renderBoard(), "\n") {
		lines = append(lines, pad+line)
	}

	lines = append(lines, "", m.center(m.help.View(m.keys)))

	return strings.Join(lines, "\n")
}

func (m Model) center(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

func (m Model) boardLeft() int {
	if m.width <= m.layout.boardWidth() {
		return 0
	}
	return (m.width - m.layout.boardWidth()) / 2
}

func (m Model) shakeOffset() int {
	if shake, ok := m.anim.find(EffectDrawShake, -1); ok && !shake.blink() {
		return 1
	}
	return 0
}

func (m Model) renderTitle() string {
	style := m.styles.title
	if fade, ok := m.anim.find(EffectFadeIn, -1); ok && fade.firstHalf() {
		style = style.Faint(true)
	}
	return style.Render("TIC · TAC · TOE")
}

func (m Model) statusText() string {
	switch m.game.State() {
	case entity.StateWonX, entity.StateWonO:
		return fmt.Sprintf("%s wins", m.game.Result.Winner)
	case entity.StateDrawn:
		return "Draw"
	default:
		return fmt.Sprintf("%s to move", m.game.Turn)
	}
}

func (m Model) renderStatus() string {
	style := m.styles.status
	switch {
	case m.game.Result.IsWin():
		style = style.Foreground(m.styles.accent)
	case m.game.Result.IsDraw():
		style = style.Foreground(m.styles.muted)
	default:
		style = m.styles.mark(m.game.Turn)
		if pulse, ok := m.anim.find(EffectTurnPulse, -1); ok && !pulse.blink() {
			style = style.Faint(true)
		}
	}
	return style.Render(m.statusText())
}

func (m Model) renderScore() string {
	part := func(player entity.Player) string {
		style := m.styles.score
		if _, ok := m.anim.findPlayer(EffectScoreBump, player); ok {
			style = m.styles.scoreBump
		}
		return style.Render(fmt.Sprintf("%s %d", player, m.game.Score.Of(player)))
	}
	return part(entity.PlayerX) + m.styles.score.Render(" · ") + part(entity.PlayerO)
}

func (m Model) renderBoard() string {
	l := m.layout

	vertical := m.styles.separator.Render(strings.TrimSuffix(strings.Repeat("│\n", l.cellHeight), "\n"))
	segment := strings.Repeat("─", l.cellWidth)
	horizontal := m.styles.separator.Render(segment + "┼" + segment + "┼" + segment)

	rows := make([]string, 0, 5)
	for row := 0; row < 3; row++ {
		if row > 0 {
			rows = append(rows, horizontal)
		}
		cells := make([]string, 0, 5)
		for col := 0; col < 3; col++ {
			if col > 0 {
				cells = append(cells, vertical)
			}
			cells = append(cells, m.renderCell(entity.Index(row, col)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(cell int) string {
	l := m.layout
	style := m.styles.empty
	glyph := "·"

	if player, ok := m.game.Board[cell].Player(); ok {
		style = m.styles.mark(player)
		glyph = player.String()
		if big, found := bigGlyphs[player]; found && l.size == layoutLarge {
			glyph = big
		}
		if appear, running := m.anim.find(EffectCellAppear, cell); running && appear.firstHalf() {
			glyph = strings.ToLower(player.String())
			style = style.Faint(true)
		}
	} else if l.size == layoutCompact {
		glyph = " "
	}

	if _, clearing := m.anim.find(EffectBoardClear, -1); clearing {
		style = style.Faint(true)
	}

	if m.game.Result.Contains(cell) {
		style = style.Reverse(true)
		if highlight, running := m.anim.find(EffectWinHighlight, -1); running && !highlight.blink() {
			style = style.Reverse(false).Underline(true)
		}
	}

	if cell == m.cursor && m.game.IsOngoing() {
		style = style.Background(m.styles.muted)
	}

	return style.
		Width(l.cellWidth).
		Height(l.cellHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(glyph)
}

// cellAt maps a terminal position to the board cell under it. Separators and
// positions outside the board map to nothing.
func (m Model) cellAt(x, y int) (int, bool) {
	l := m.layout
	if l.size == layoutTooSmall {
		return 0, false
	}

	bx := x - m.boardLeft()
	by := y - headerHeight
	if bx < 0 || by < 0 || bx >= l.boardWidth() || by >= l.boardHeight() {
		return 0, false
	}

	if bx%(l.cellWidth+1) == l.cellWidth || by%(l.cellHeight+1) == l.cellHeight {
		return 0, false
	}

	return entity.Index(by/(l.cellHeight+1), bx/(l.cellWidth+1)), true
}
