package tui

import (
	"bytes"
	"log"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/blockfall/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestLatchLevels(t *testing.T) {
	l := newLatch(latchWindow)

	assert.Equal(t, game.Input{}, l.levels(base), "nothing pressed yet")

	l.press(game.ActionLeft, base)
	assert.True(t, l.levels(base)[game.ActionLeft])
	assert.True(t, l.levels(base.Add(latchWindow-time.Millisecond))[game.ActionLeft])
	assert.False(t, l.levels(base.Add(latchWindow))[game.ActionLeft], "released after the window")

	// Auto-repeat events arriving inside the window keep the level high.
	for i := 1; i <= 10; i++ {
		l.press(game.ActionDown, base.Add(time.Duration(i)*30*time.Millisecond))
	}
	assert.True(t, l.levels(base.Add(320*time.Millisecond))[game.ActionDown])
	assert.False(t, l.levels(base.Add(320*time.Millisecond))[game.ActionLeft])

	l.reset()
	assert.Equal(t, game.Input{}, l.levels(base.Add(320*time.Millisecond)))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func newTestModel(t *testing.T, cfg game.Config) Model {
	t.Helper()
	m := NewModel("tester", cfg)
	m.now = func() time.Time { return base }
	return m
}

func TestStartGame(t *testing.T) {
	m := newTestModel(t, game.DefaultConfig())
	assert.Equal(t, ScreenWelcome, m.screen)

	m, cmd := update(t, m, keyMsg("enter"))

	assert.Equal(t, ScreenPlaying, m.screen)
	require.NotNil(t, m.session)
	assert.NotNil(t, cmd, "frame loop started")
	assert.Equal(t, int64(2), m.cfg.Seed, "next game gets a fresh seed")
}

func TestKeysDriveSession(t *testing.T) {
	m := newTestModel(t, game.DefaultConfig())
	m, _ = update(t, m, keyMsg("enter"))
	startX := m.session.Snapshot().Active.X

	m, _ = update(t, m, keyMsg("left"))
	m, cmd := update(t, m, FrameMsg(base.Add(10*time.Millisecond)))

	assert.NotNil(t, cmd, "next frame scheduled")
	assert.Equal(t, startX-1, m.session.Snapshot().Active.X)
}

func TestPauseKey(t *testing.T) {
	m := newTestModel(t, game.DefaultConfig())
	m, _ = update(t, m, keyMsg("enter"))

	m, _ = update(t, m, keyMsg("esc"))
	m, _ = update(t, m, FrameMsg(base.Add(time.Millisecond)))

	assert.Equal(t, game.PhasePaused, m.session.Phase())
	assert.Contains(t, m.View(), "PAUSED")
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, game.DefaultConfig())

	_, cmd := update(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m, _ = update(t, m, keyMsg("enter"))
	_, cmd = update(t, m, keyMsg("q"))
	assert.Nil(t, cmd, "q is ignored while playing")

	_, cmd = update(t, m, keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestGameOverScreen(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Width = 4
	cfg.Height = 4
	m := newTestModel(t, cfg)
	m, _ = update(t, m, keyMsg("enter"))

	// The leftmost column is never reached from spawn, so no row can clear
	// and the stack tops out after a few hard drops.
	now := base
	for i := 0; i < 50 && m.screen == ScreenPlaying; i++ {
		m.now = func() time.Time { return now }
		m, _ = update(t, m, keyMsg(" "))
		m, _ = update(t, m, FrameMsg(now.Add(time.Millisecond)))
		now = now.Add(200 * time.Millisecond)
		m, _ = update(t, m, FrameMsg(now))
	}

	require.Equal(t, ScreenGameOver, m.screen)
	assert.Equal(t, game.PhaseGameOver, m.session.Phase())
	assert.Contains(t, m.View(), "GAME OVER")

	_, cmd := update(t, m, FrameMsg(now.Add(time.Second)))
	assert.Nil(t, cmd, "frame loop stops after game over")

	m, _ = update(t, m, keyMsg("enter"))
	assert.Equal(t, ScreenWelcome, m.screen)
	assert.Nil(t, m.session)
}

func TestInvalidConfigStaysOnWelcome(t *testing.T) {
	m := newTestModel(t, game.Config{})

	m, cmd := update(t, m, keyMsg("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, ScreenWelcome, m.screen)
	assert.ErrorIs(t, m.err, game.ErrInvalidConfig)
	assert.Contains(t, m.View(), "invalid config")
}

func TestLogsPauseAndResume(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	m := newTestModel(t, game.DefaultConfig())
	m, _ = update(t, m, keyMsg("enter"))

	m, _ = update(t, m, keyMsg("esc"))
	m, _ = update(t, m, FrameMsg(base.Add(time.Millisecond)))
	require.Equal(t, game.PhasePaused, m.session.Phase())
	m, _ = update(t, m, FrameMsg(base.Add(200*time.Millisecond)))

	m.now = func() time.Time { return base.Add(300 * time.Millisecond) }
	m, _ = update(t, m, keyMsg("esc"))
	m, _ = update(t, m, FrameMsg(base.Add(301*time.Millisecond)))
	for _, at := range []time.Duration{1400, 2500, 3600} {
		m, _ = update(t, m, FrameMsg(base.Add(at*time.Millisecond)))
	}

	require.Equal(t, game.PhaseRunning, m.session.Phase())
	assert.Contains(t, buf.String(), "paused")
	assert.Contains(t, buf.String(), "resumed")
}
