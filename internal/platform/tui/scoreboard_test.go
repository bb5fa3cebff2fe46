package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-ai/internal/storage"
)

type fakeSource struct {
	top, recent []storage.ScoreEntry
	err         error
}

func (f *fakeSource) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return f.top, f.err
}

func (f *fakeSource) RecentScores(string, int) ([]storage.ScoreEntry, error) {
	return f.recent, f.err
}

func (f *fakeSource) GetGameStats(gameID string) (*storage.GameStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &storage.GameStats{GameID: gameID, GamesCount: len(f.top), HighScore: 9}, nil
}

func entries(scores ...int) []storage.ScoreEntry {
	out := make([]storage.ScoreEntry, len(scores))
	for i, s := range scores {
		out[i] = storage.ScoreEntry{ID: int64(i + 1), GameID: "flappy", Score: s, CreatedAt: time.Unix(0, 0)}
	}
	return out
}

func TestScoreboardSwitchesView(t *testing.T) {
	src := &fakeSource{top: entries(9, 4, 1), recent: entries(1, 9)}
	m := NewScoreboardModel(src, "flappy", "Flappy Bird", 100, 30)

	if m.CurrentView() != ViewBest || len(m.Scores()) != 3 {
		t.Fatalf("initial view %v with %d rows, expected Best with 3", m.CurrentView(), len(m.Scores()))
	}

	for _, want := range []struct {
		view ScoreView
		rows int
	}{{ViewRecent, 2}, {ViewBest, 3}} {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
		if m.CurrentView() != want.view || len(m.Scores()) != want.rows {
			t.Errorf("view %v with %d rows, expected %v with %d", m.CurrentView(), len(m.Scores()), want.view, want.rows)
		}
	}

	out := m.View()
	for _, want := range []string{"HIGH SCORES - Flappy Bird", "Best", "Recent", "Attempts"} {
		if !strings.Contains(out, want) {
			t.Errorf("%q missing from view", want)
		}
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	tests := []struct {
		name string
		src  ScoreSource
		want string
	}{
		{"no store", nil, "No scores recorded yet."},
		{"empty", &fakeSource{}, "No scores recorded yet."},
		{"error", &fakeSource{err: errors.New("db locked")}, "db locked"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(tc.src, "flappy", "Flappy Bird", 60, 30)
			if out := m.View(); !strings.Contains(out, tc.want) {
				t.Errorf("%q missing from view:\n%s", tc.want, out)
			}
		})
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(&fakeSource{}, "flappy", "Flappy Bird", 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !isQuit(cmd) {
		t.Fatal("q should quit the scoreboard")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
