package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/blockfall/internal/game"
)

// frameInterval paces the engine at roughly 60 ticks per second.
const frameInterval = 16 * time.Millisecond

// --- Custom tea.Msg types ---

type FrameMsg time.Time

// --- Screens ---

type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenPlaying
	ScreenGameOver
)

// --- Model ---

type Model struct {
	screen     Screen
	playerName string
	cfg        game.Config

	session   *game.Session
	keys      keyMap
	help      help.Model
	latch     *latch
	lastFrame time.Time
	now       func() time.Time

	// Last observed values, for logging transitions.
	lastLevel int
	lastPhase game.Phase

	width  int
	height int
	err    error
}

// NewModel creates the terminal front end. Sessions are created from cfg
// each time a game starts; the seed advances between games.
func NewModel(playerName string, cfg game.Config) Model {
	return Model{
		screen:     ScreenWelcome,
		playerName: playerName,
		cfg:        cfg,
		keys:       defaultKeyMap(),
		help:       help.New(),
		latch:      newLatch(latchWindow),
		now:        time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case msg.String() == "q" && m.screen != ScreenPlaying:
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenWelcome:
		return m.handleWelcomeKeys(msg)
	case ScreenPlaying:
		return m.handlePlayingKeys(msg)
	case ScreenGameOver:
		return m.handleGameOverKeys(msg)
	}
	return m, nil
}

func (m Model) handleWelcomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "s", "1":
		return m.startGame()
	}
	return m, nil
}

func (m Model) handlePlayingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	now := m.now()
	for _, b := range m.keys.actions() {
		if key.Matches(msg, b.binding) {
			m.latch.press(b.action, now)
		}
	}
	return m, nil
}

func (m Model) handleGameOverKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.screen = ScreenWelcome
		m.session = nil
		return m, nil
	case "r":
		return m.startGame()
	}
	return m, nil
}

func (m Model) startGame() (tea.Model, tea.Cmd) {
	s, err := game.NewSession(m.cfg)
	if err != nil {
		m.err = err
		return m, nil
	}
	log.Printf("game started: player=%s seed=%d", m.playerName, m.cfg.Seed)

	m.cfg.Seed++
	m.session = s
	m.err = nil
	m.screen = ScreenPlaying
	m.latch.reset()
	m.lastFrame = time.Time{}
	m.lastLevel = s.Level()
	m.lastPhase = s.Phase()
	return m, frameCmd()
}

func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	if m.screen != ScreenPlaying || m.session == nil {
		return m, nil
	}

	var elapsed time.Duration
	if !m.lastFrame.IsZero() {
		elapsed = t.Sub(m.lastFrame)
	}
	m.lastFrame = t

	m.session.Tick(elapsed, m.latch.levels(t))
	m.logTransitions()

	if m.session.Phase() == game.PhaseGameOver {
		m.screen = ScreenGameOver
		return m, nil
	}
	return m, frameCmd()
}

func (m *Model) logTransitions() {
	s := m.session
	if lvl := s.Level(); lvl != m.lastLevel {
		log.Printf("level %d: gravity=%s", lvl, s.GravityInterval())
		m.lastLevel = lvl
	}
	if ph := s.Phase(); ph != m.lastPhase {
		switch ph {
		case game.PhasePaused:
			log.Printf("paused")
		case game.PhaseRunning:
			if m.lastPhase == game.PhasePaused {
				log.Printf("resumed")
			}
		case game.PhaseGameOver:
			log.Printf("game over: score=%d lines=%d level=%d", s.Score(), s.Lines(), s.Level())
		}
		m.lastPhase = ph
	}
}

// --- View ---

func (m Model) View() string {
	switch m.screen {
	case ScreenWelcome:
		return m.renderWelcome()
	case ScreenPlaying:
		return m.renderPlaying()
	case ScreenGameOver:
		return m.renderGameOver()
	}
	return ""
}

func (m Model) renderCentered(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m Model) renderWelcome() string {
	content := RenderWelcome()
	if m.err != nil {
		content += "\n" + gameOverStyle.Render(m.err.Error())
	}
	return m.renderCentered(content)
}

func (m Model) renderPlaying() string {
	if m.session == nil {
		return "Loading..."
	}
	snap := m.session.Snapshot()

	leftPanel := lipgloss.NewStyle().
		Width(24).
		Render(RenderInfo(snap, m.playerName))

	centerPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			RenderBoard(snap),
			RenderStatus(snap),
		))

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, centerPanel)
	mainContent = lipgloss.JoinVertical(lipgloss.Center, mainContent, m.help.View(m.keys))

	return m.renderCentered(mainContent)
}

func (m Model) renderGameOver() string {
	if m.session == nil {
		return m.renderCentered("Game Over")
	}
	content := RenderGameOver(m.session.Score(), m.session.Lines(), m.session.Level())
	content += "\n\nPress ENTER to continue, R to play again"
	return m.renderCentered(content)
}
