// Package tui provides a Bubble Tea terminal client for searching the
// artist catalog.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yair/groupie-tracker/pkg/domain"
	"github.com/yair/groupie-tracker/pkg/search"
	"github.com/yair/groupie-tracker/pkg/slider"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3264FE")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#3264FE"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	trackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DADAE5"))
	rangeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3264FE"))
)

// maxRows caps the result list when the window size is unknown.
const maxRows = 10

// Searcher is the part of the search engine the client drives.
type Searcher interface {
	Load(ctx context.Context) error
	Filter(criteria search.Criteria) []domain.EnrichedArtist
	Suggest(query string) []string
}

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state       State
	textInput   textinput.Model
	spinner     spinner.Model
	searcher    Searcher
	slider      *slider.DualRange
	suggestions *search.Suggestions
	results     []domain.EnrichedArtist
	err         error

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model over searcher with a slider on
// [0, maxMembers].
func NewModel(searcher Searcher, maxMembers, minGap int) Model {
	ti := textinput.New()
	ti.Placeholder = "artist, member, location, date"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3264FE"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:       StateLoading,
		textInput:   ti,
		spinner:     sp,
		searcher:    searcher,
		slider:      slider.New(maxMembers, minGap),
		suggestions: search.NewSuggestions(nil),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.load())
}

// LoadDoneMsg is sent when the catalog load finishes.
type LoadDoneMsg struct {
	Err error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.suggestions.Visible() {
				m.suggestions.Hide()
				return m, nil
			}
			m.cancel()
			return m, tea.Quit

		case "down":
			m.suggestions.Down()
			return m, nil

		case "up":
			m.suggestions.Up()
			return m, nil

		case "enter":
			if selected, ok := m.suggestions.Selected(); ok {
				m.textInput.SetValue(selected)
				m.textInput.CursorEnd()
			}
			m.suggestions.Hide()
			m.refilter()
			return m, nil

		case "[", "]", "{", "}":
			m.moveHandle(msg.String())
			m.refilter()
			return m, nil

		case "ctrl+r":
			if m.state == StateError {
				m.state = StateLoading
				m.err = nil
				return m, tea.Batch(m.load(), m.spinner.Tick)
			}
		}

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case LoadDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			m.results = nil
		} else {
			m.state = StateReady
			m.refilter()
		}
		return m, nil
	}

	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)

	if m.textInput.Value() != before && m.state == StateReady {
		m.suggestions = search.NewSuggestions(m.searcher.Suggest(m.textInput.Value()))
		m.refilter()
	}

	return m, tea.Batch(cmds...)
}

// moveHandle nudges a slider handle one step: [ and ] move the lower
// handle, { and } the upper one.
func (m *Model) moveHandle(key string) {
	switch key {
	case "[":
		m.slider.SlideOne(m.slider.One - 1)
	case "]":
		m.slider.SlideOne(m.slider.One + 1)
	case "{":
		m.slider.SlideTwo(m.slider.Two - 1)
	case "}":
		m.slider.SlideTwo(m.slider.Two + 1)
	}
}

func (m *Model) refilter() {
	if m.state != StateReady {
		return
	}
	m.results = m.searcher.Filter(search.Criteria{
		Query:   m.textInput.Value(),
		Members: m.slider.Range(),
	})
}

func (m Model) load() tea.Cmd {
	searcher, ctx := m.searcher, m.ctx
	return func() tea.Msg {
		return LoadDoneMsg{Err: searcher.Load(ctx)}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Groupie Tracker"))
	b.WriteString("\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Loading artists..."))
		b.WriteString("\n")
	case StateError:
		b.WriteString(errorStyle.Render(search.LoadErrorMessage))
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(dimStyle.Render("  " + m.err.Error()))
			b.WriteString("\n")
		}
	case StateReady:
		b.WriteString(m.viewSearch())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewSearch() string {
	var b strings.Builder

	b.WriteString(m.textInput.View())
	b.WriteString("\n")
	b.WriteString(m.renderSuggestions())
	b.WriteString("\n")
	b.WriteString(m.renderSlider())
	b.WriteString("\n\n")
	b.WriteString(m.renderResults())

	return b.String()
}

func (m Model) renderSuggestions() string {
	if !m.suggestions.Visible() {
		return ""
	}

	var b strings.Builder
	for i, item := range m.suggestions.Items {
		if i == m.suggestions.Active {
			b.WriteString("  " + activeStyle.Render(item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderSlider draws one cell per member count, highlighted between the
// handles.
func (m Model) renderSlider() string {
	var track strings.Builder
	for i := 0; i <= m.slider.Max; i++ {
		cell := "━"
		if i == m.slider.One || i == m.slider.Two {
			cell = "●"
		}
		if i >= m.slider.One && i <= m.slider.Two {
			track.WriteString(rangeStyle.Render(cell))
		} else {
			track.WriteString(trackStyle.Render(cell))
		}
	}

	return fmt.Sprintf("%s %s %s",
		infoStyle.Render("Members"),
		track.String(),
		infoStyle.Render(m.slider.LabelOne()+" - "+m.slider.LabelTwo()))
}

func (m Model) renderResults() string {
	if len(m.results) == 0 {
		return dimStyle.Render(search.EmptyResultsMessage)
	}

	rows := maxRows
	if m.height > 0 {
		rows = m.height - 12
		if rows < 3 {
			rows = 3
		}
	}

	var b strings.Builder
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d result(s)", len(m.results))))
	b.WriteString("\n")
	for i, artist := range m.results {
		if i >= rows {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(m.results)-rows)))
			b.WriteString("\n")
			break
		}
		b.WriteString("  ")
		b.WriteString(nameStyle.Render(artist.Name))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" · %s · %s · %s",
			search.MembersLabel(artist.MembersCount),
			artist.Location,
			artist.FirstAlbumHuman)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateReady:
		return "↑/↓: suggestions • enter: select • [ ]: min members • { }: max members • esc: quit"
	case StateError:
		return "ctrl+r: retry • esc: quit"
	}
	return "esc: quit"
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.textInput.Value()
}

// Results returns the artists currently listed.
func (m Model) Results() []domain.EnrichedArtist {
	return m.results
}

// Run starts the TUI application.
func Run(searcher Searcher, maxMembers, minGap int) error {
	p := tea.NewProgram(NewModel(searcher, maxMembers, minGap), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
