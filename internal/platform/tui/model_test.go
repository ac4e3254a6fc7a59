package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilemerge/internal/game"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestSession(t *testing.T, seed int64) *game.Session {
	t.Helper()
	s, err := game.NewSession(game.DefaultConfig(), game.NewSource(seed), nil)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// playUntilOver cycles directions until the session ends.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft},
		{Type: tea.KeyDown},
		{Type: tea.KeyRight},
		{Type: tea.KeyUp},
	}
	for i := 0; i < 100000; i++ {
		if m.Session().Outcome() != game.InProgress {
			return m
		}
		next, _ := m.Update(keys[i%len(keys)])
		m = next.(Model)
	}
	t.Fatal("session never ended")
	return m
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   game.Input
		isQuit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, game.InputUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, game.InputDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, game.InputLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, game.InputRight, false},
		{"vim k", runeKey('k'), game.InputUp, false},
		{"vim h", runeKey('h'), game.InputLeft, false},
		{"wasd d", runeKey('d'), game.InputRight, false},
		{"wasd s", runeKey('s'), game.InputDown, false},
		{"q quits", runeKey('q'), game.InputNone, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, game.InputNone, true},
		{"unbound key", runeKey('z'), game.InputNone, false},
		{"restart disabled", runeKey('r'), game.InputNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, isQuit := km.MapKey(tt.msg)
			if in != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), in, isQuit, tt.want, tt.isQuit)
			}
		})
	}

	km.Restart.SetEnabled(true)
	if in, _ := km.MapKey(runeKey('r')); in != game.InputRestart {
		t.Errorf("MapKey(r) with restart enabled = %v, want Restart", in)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newTestSession(t, 1), nil, Options{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("quit command produced %T, want tea.QuitMsg", msg)
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, want empty", v)
	}
}

func TestModelRestartIgnoredWhileInProgress(t *testing.T) {
	m := NewModel(newTestSession(t, 7), nil, Options{})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	before := m.Session().Snapshot()
	if before.Moves != 1 {
		t.Fatalf("Moves = %d, want 1", before.Moves)
	}

	next, _ = m.Update(runeKey('r'))
	m = next.(Model)
	if after := m.Session().Snapshot(); after != before {
		t.Errorf("restart during play changed the session: %+v -> %+v", before, after)
	}
}

func TestModelSavesFinishedGameOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := playUntilOver(t, NewModel(newTestSession(t, 42), store, Options{}))
	final := m.Session().Snapshot()

	// Further moves are rejected and must not record again
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)

	scores, err := store.TopScores(game.DefaultTargetExponent, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("recorded %d scores, want 1", len(scores))
	}
	if scores[0].Score != int64(final.ScoreValue) || scores[0].Outcome != final.Outcome.String() {
		t.Errorf("recorded %+v, want score %d outcome %s", scores[0], final.ScoreValue, final.Outcome)
	}

	// Restart is now live and starts a fresh game
	next, _ = m.Update(runeKey('r'))
	m = next.(Model)
	snap := m.Session().Snapshot()
	if snap.Outcome != game.InProgress || snap.Moves != 0 {
		t.Errorf("after restart: outcome %v moves %d", snap.Outcome, snap.Moves)
	}
	if !strings.Contains(m.View(), "Best") {
		t.Error("View() should show the best score after a recorded game")
	}
}

func TestRenderBoardMono(t *testing.T) {
	s := newTestSession(t, 3)
	out := RenderBoard(s.Snapshot(), true)
	if !strings.Contains(out, ".") {
		t.Error("mono board should mark empty cells")
	}

	plain := PlainBoard(s.Snapshot())
	if lines := strings.Split(plain, "\n"); len(lines) != game.Height {
		t.Errorf("PlainBoard() has %d lines, want %d", len(lines), game.Height)
	}
}

func TestScoreboardTargetsWrap(t *testing.T) {
	m := NewScoreboardModel(nil, game.MaxTargetExponent, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Target() != game.MinTargetExponent {
		t.Errorf("Target() after wrap = %d, want %d", m.Target(), game.MinTargetExponent)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Target() != game.MaxTargetExponent {
		t.Errorf("Target() after reverse wrap = %d, want %d", m.Target(), game.MaxTargetExponent)
	}

	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}
