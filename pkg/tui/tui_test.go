package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yair/groupie-tracker/pkg/domain"
	"github.com/yair/groupie-tracker/pkg/search"
)

type fakeCatalog struct {
	listErr error
}

func (f *fakeCatalog) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []domain.Artist{
		{ID: 1, Name: "Queen", Members: []string{"Freddie Mercury", "Brian May", "Roger Taylor", "John Deacon"}, CreationDate: "1970", FirstAlbum: "14-12-1973"},
		{ID: 2, Name: "Queens of the Stone Age", Members: []string{"Josh Homme", "Troy Van Leeuwen", "Michael Shuman", "Dean Fertita", "Jon Theodore"}, CreationDate: "1996", FirstAlbum: "06-10-1998"},
		{ID: 3, Name: "Bob Marley", Members: []string{"Bob Marley"}, CreationDate: "1963", FirstAlbum: "13-04-1973"},
	}, nil
}

func (f *fakeCatalog) GetRelation(ctx context.Context, artistID int) (domain.RelationMap, error) {
	switch artistID {
	case 1:
		return domain.RelationMap{{Location: "london-uk", Dates: []string{"01-01-2020"}}}, nil
	case 3:
		return domain.RelationMap{{Location: "kingston-jamaica", Dates: []string{"02-02-2020"}}}, nil
	}
	return domain.RelationMap{}, nil
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(m Model, keys ...tea.KeyType) Model {
	for _, k := range keys {
		m, _ = update(m, tea.KeyMsg{Type: k})
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(search.NewEngine(&fakeCatalog{}, search.Options{}), 8, 0)
	msg := m.load()()
	m, _ = update(m, msg)
	if m.state != StateReady {
		t.Fatalf("expected ready state, got %v (err %v)", m.state, m.err)
	}
	return m
}

func names(artists []domain.EnrichedArtist) []string {
	out := make([]string, len(artists))
	for i, a := range artists {
		out[i] = a.Name
	}
	return out
}

func TestModelLoad(t *testing.T) {
	t.Run("ready lists everything", func(t *testing.T) {
		m := loadedModel(t)
		if got := len(m.Results()); got != 3 {
			t.Errorf("expected 3 results, got %d", got)
		}
		if !strings.Contains(m.View(), "London, UK") {
			t.Error("expected location in view")
		}
	})

	t.Run("load failure", func(t *testing.T) {
		m := NewModel(search.NewEngine(&fakeCatalog{listErr: domain.ErrFetchFailure}, search.Options{}), 8, 0)
		m, _ = update(m, m.load()())

		if m.state != StateError {
			t.Fatalf("expected error state, got %v", m.state)
		}
		if !errors.Is(m.err, domain.ErrFetchFailure) {
			t.Errorf("expected ErrFetchFailure, got %v", m.err)
		}
		if !strings.Contains(m.View(), search.LoadErrorMessage) {
			t.Error("expected load error message in view")
		}

		m, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlR})
		if m.state != StateLoading || cmd == nil {
			t.Error("expected ctrl+r to start a reload")
		}
	})

	t.Run("typing before load is kept", func(t *testing.T) {
		m := NewModel(search.NewEngine(&fakeCatalog{}, search.Options{}), 8, 0)
		m = typeText(m, "bob")
		m, _ = update(m, m.load()())

		if got := names(m.Results()); len(got) != 1 || got[0] != "Bob Marley" {
			t.Errorf("expected [Bob Marley], got %v", got)
		}
	})
}

func TestModelSuggestions(t *testing.T) {
	t.Run("typing filters and suggests", func(t *testing.T) {
		m := typeText(loadedModel(t), "que")

		if got := m.suggestions.Items; len(got) != 2 || got[0] != "Queen" || got[1] != "Queens of the Stone Age" {
			t.Errorf("unexpected suggestions %v", got)
		}
		if got := names(m.Results()); len(got) != 2 {
			t.Errorf("expected 2 results, got %v", got)
		}
	})

	t.Run("down then enter selects", func(t *testing.T) {
		m := typeText(loadedModel(t), "que")
		m = press(m, tea.KeyDown, tea.KeyDown, tea.KeyDown)
		if m.suggestions.Active != 0 {
			t.Fatalf("expected wrap to 0, got %d", m.suggestions.Active)
		}

		m = press(m, tea.KeyEnter)
		if m.Query() != "Queen" {
			t.Errorf("expected query Queen, got %q", m.Query())
		}
		if m.suggestions.Visible() {
			t.Error("expected suggestions hidden after enter")
		}
	})

	t.Run("up from nothing lands on the last item, not the second to last", func(t *testing.T) {
		m := typeText(loadedModel(t), "que")
		m = press(m, tea.KeyUp)
		if m.suggestions.Active != 1 {
			t.Errorf("expected 1, got %d", m.suggestions.Active)
		}
	})

	t.Run("esc hides then quits", func(t *testing.T) {
		m := typeText(loadedModel(t), "que")
		m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEsc})
		if m.suggestions.Visible() || cmd != nil {
			t.Error("expected first esc to only hide suggestions")
		}

		_, cmd = update(m, tea.KeyMsg{Type: tea.KeyEsc})
		if cmd == nil {
			t.Fatal("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})
}

func TestModelSlider(t *testing.T) {
	m := loadedModel(t)

	m = typeText(m, "]]")
	if m.slider.One != 2 {
		t.Fatalf("expected lower handle at 2, got %d", m.slider.One)
	}
	if m.Query() != "" {
		t.Errorf("expected slider keys to stay out of the query, got %q", m.Query())
	}
	if got := names(m.Results()); len(got) != 2 || got[0] != "Queen" {
		t.Errorf("expected Queen and QOTSA, got %v", got)
	}

	m = typeText(m, "{{{{")
	if m.slider.Two != 4 {
		t.Fatalf("expected upper handle at 4, got %d", m.slider.Two)
	}
	if got := names(m.Results()); len(got) != 1 || got[0] != "Queen" {
		t.Errorf("expected [Queen], got %v", got)
	}
	if !strings.Contains(m.View(), "2 - 4") {
		t.Error("expected slider labels in view")
	}

	m = typeText(m, "[[[")
	if m.slider.One != 0 {
		t.Errorf("expected lower handle clamped at 0, got %d", m.slider.One)
	}
}
