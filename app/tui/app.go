// Package tui provides a Bubble Tea terminal UI for word lookups.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rbhz/word-lookup/app/lookup"
	"github.com/rbhz/word-lookup/app/render"
)

const (
	title = "Word Lookup"
	// rows taken by the header, input and footer
	chromeHeight = 5
)

// Options configures the UI
type Options struct {
	Context    context.Context
	Controller *lookup.Controller
	Player     Player
	Accent     string
	AuthorURL  string
}

// Model is the root application state for Bubble Tea
type Model struct {
	ctx        context.Context
	controller *lookup.Controller
	player     Player
	keys       keyMap
	authorURL  string
	accent     string

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool

	state   lookup.State
	playErr error
}

// New creates a new Bubble Tea model
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	accent := opts.Accent
	if accent == "" {
		accent = render.DefaultAccent
	}

	input := textinput.New()
	input.Placeholder = "Search for a word"
	input.CharLimit = 100
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))

	return Model{
		ctx:        ctx,
		controller: opts.Controller,
		player:     opts.Player,
		keys:       defaultKeyMap(),
		authorURL:  opts.AuthorURL,
		accent:     accent,
		input:      input,
		spinner:    sp,
		state:      opts.Controller.State(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.width, m.viewportHeight())
		}
		m.ready = true
		m.input.Width = m.width - 4
		m.updateViewport()
		return m, nil

	case outcomeMsg:
		// a newer lookup owns the screen
		if msg.Superseded {
			return m, nil
		}
		m.state = msg.State
		m.updateViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case playbackEndedMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.player != nil {
			m.player.Stop()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		return m.search()

	case key.Matches(msg, m.keys.Play):
		return m.togglePlayback()

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// search submits the input and waits for the outcome in background
func (m Model) search() (tea.Model, tea.Cmd) {
	done, err := m.controller.Start(m.ctx, m.input.Value())
	if err != nil {
		// blank input is ignored
		return m, nil
	}
	if m.player != nil {
		m.player.Stop()
	}
	m.playErr = nil
	m.state = m.controller.State()
	m.updateViewport()
	return m, tea.Batch(waitOutcomeCmd(done), m.spinner.Tick)
}

// togglePlayback plays the pronunciation or stops it when playing
func (m Model) togglePlayback() (tea.Model, tea.Cmd) {
	view := m.currentView()
	if m.player == nil || view.Audio == "" {
		return m, nil
	}
	if m.player.Playing() {
		m.player.Stop()
		return m, nil
	}
	done, err := m.player.Play(view.Audio)
	m.playErr = err
	if err != nil {
		return m, nil
	}
	return m, waitPlaybackCmd(done)
}

func (m Model) currentView() render.View {
	return render.Derive(m.state)
}

func (m Model) viewportHeight() int {
	return max(m.height-chromeHeight, 1)
}

// updateViewport re-renders the lookup into the viewport
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = m.viewportHeight()
	content := render.Terminal(m.currentView(), render.TerminalStyle{Width: m.width, Accent: m.accent})
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.accent))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))

	var b strings.Builder
	b.WriteString(heading.Render(title) + "\n")
	b.WriteString(m.input.View() + "\n\n")
	if m.state.Loading {
		b.WriteString(fmt.Sprintf("%s Looking up %q…", m.spinner.View(), m.state.Word))
		b.WriteString(strings.Repeat("\n", m.viewportHeight()))
	} else {
		b.WriteString(m.viewport.View() + "\n")
	}
	b.WriteString(muted.Render(m.footer()))
	return b.String()
}

// footer lists the available keys
func (m Model) footer() string {
	bindings := []key.Binding{m.keys.Search}
	if m.currentView().Audio != "" {
		bindings = append(bindings, m.keys.Play)
	}
	bindings = append(bindings, m.keys.PageUp, m.keys.PageDown, m.keys.Quit)

	parts := make([]string, 0, len(bindings)+2)
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	if m.player != nil && m.player.Playing() {
		parts = append(parts, "♪ playing")
	}
	if m.playErr != nil {
		parts = append(parts, "audio: "+m.playErr.Error())
	}
	if m.authorURL != "" {
		parts = append(parts, m.authorURL)
	}
	return strings.Join(parts, " • ")
}

// Messages

type outcomeMsg lookup.Outcome

type playbackEndedMsg struct{}

// Commands

func waitOutcomeCmd(done <-chan lookup.Outcome) tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg(<-done)
	}
}

func waitPlaybackCmd(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return playbackEndedMsg{}
	}
}

// Run starts the Bubble Tea program
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
