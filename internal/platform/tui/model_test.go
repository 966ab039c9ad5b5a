package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/config"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/core"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/games/tiles"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: 42}
}

func TestMapKey(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('w'), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runeKey('a'), core.ActionLeft},
		{runeKey('l'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSelect},
		{runeKey('x'), core.ActionDeselect},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('z'), core.ActionNone},
	}
	for _, tt := range tests {
		if got := keys.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMenuSizeCycle(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	if m.Size() != config.SizeClassic {
		t.Fatalf("default size = %s, want classic", m.Size())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Size() != config.SizeLarge {
		t.Errorf("after right: %s, want large", m.Size())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Size() != config.SizeSmall {
		t.Errorf("size should wrap to small, got %s", m.Size())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	if m.Size() != config.SizeLarge {
		t.Errorf("left should wrap back to large, got %s", m.Size())
	}
}

func TestMenuResult(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting a game should end the menu program")
	}

	r := next.(MenuModel).result()
	if r.Quit || r.WantsScoreboard {
		t.Fatalf("unexpected result %+v", r)
	}
	if r.GameID != tiles.MergeID {
		t.Errorf("GameID = %q, want %q", r.GameID, tiles.MergeID)
	}

	next, _ = NewMenuModel(nil, testRuntime()).Update(tea.KeyMsg{Type: tea.KeyTab})
	if r := next.(MenuModel).result(); !r.WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	next, _ = NewMenuModel(nil, testRuntime()).Update(runeKey('q'))
	if r := next.(MenuModel).result(); !r.Quit {
		t.Error("q should quit")
	}
}

func TestNewGameAppliesPreset(t *testing.T) {
	game, err := NewGame(tiles.MatchID, config.DefaultTilesConfig(), config.SizeSmall)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	game.Reset(testRuntime())

	snap := game.(*tiles.Game).Snapshot()
	if rows := strings.Count(snap.Board, "\n") + 1; rows != 6 {
		t.Errorf("small board has %d rows, want 6", rows)
	}

	if _, err := NewGame("pacman", config.DefaultTilesConfig(), ""); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestGameModelBack(t *testing.T) {
	game, err := NewGame(tiles.MatchID, config.DefaultTilesConfig(), "")
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	m := NewGameModel(game, nil, testRuntime())
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if !m.BackToMenu() || m.IsQuitting() {
		t.Fatal("esc should leave for the menu without quitting")
	}

	// No further ticks once the game is left.
	if _, cmd := m.Update(TickMsg{}); cmd != nil {
		t.Error("tick after leaving should not schedule another")
	}
}

func TestGameModelReservesHelpLine(t *testing.T) {
	game, err := NewGame(tiles.MatchID, config.DefaultTilesConfig(), "")
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	m := NewGameModel(game, nil, testRuntime())
	m.Init()

	lines := strings.Split(m.View(), "\n")
	if len(lines) != testRuntime().ScreenH {
		t.Errorf("view has %d lines, want %d", len(lines), testRuntime().ScreenH)
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, testRuntime(), config.DefaultTilesConfig())

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.view != viewGame {
		t.Fatalf("view = %d, want game", s.view)
	}
	if s.gameModel.game.ID() != tiles.MatchID {
		t.Errorf("started %q, want %q", s.gameModel.game.ID(), tiles.MatchID)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.view != viewMenu {
		t.Fatalf("view = %d, want menu after esc", s.view)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.view != viewScores {
		t.Fatalf("view = %d, want scores", s.view)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.view != viewMenu {
		t.Errorf("view = %d, want menu after leaving scores", s.view)
	}

	next, cmd := s.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
