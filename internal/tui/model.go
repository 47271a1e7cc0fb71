// Package tui implements the flashcard display loop as a Bubble Tea model.
// Cards are printed into normal terminal scrollback; the rendered view is a
// single status/help line at the bottom of the screen.
package tui

import (
	"fmt"
	"time"

	"github.com/tinytelemetry/flashcards/internal/deck"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minInterval = 100 * time.Millisecond
	maxInterval = 5 * time.Minute
)

// TickMsg fires once per wait interval and advances to the next card.
type TickMsg time.Time

// reloadedMsg carries the result of re-reading the deck file.
type reloadedMsg struct {
	cards deck.Deck
	err   error
}

// Model drives the card rotation. The deck is owned by the model for its
// whole lifetime; nothing mutates it after load.
type Model struct {
	picker   *deck.Picker
	path     string
	interval time.Duration

	keys KeyMap
	help help.Model

	paused   bool
	shown    int
	lastCard string
	notice   string
	width    int
	quitting bool
}

// NewModel creates the display model for a loaded deck. path is the source
// file, kept for in-place reloads. interval must be positive; the caller
// validates it.
func NewModel(picker *deck.Picker, path string, interval time.Duration) *Model {
	return &Model{
		picker:   picker,
		path:     path,
		interval: interval,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init shows the first card immediately and starts the rotation.
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return TickMsg(time.Now()) }
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case TickMsg:
		if m.paused {
			return m, m.tick()
		}
		return m, tea.Batch(m.showCard(), m.tick())

	case reloadedMsg:
		m.applyReload(msg)
		return m, nil
	}

	return m, nil
}

// handleKeyPress dispatches key events against the default key map.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit), key.Matches(msg, k.Escape), key.Matches(msg, k.ForceQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, k.Pause):
		m.paused = !m.paused
		m.notice = ""
		return m, nil

	case key.Matches(msg, k.Next):
		return m, m.showCard()

	case key.Matches(msg, k.Reload):
		return m, m.reload()

	case key.Matches(msg, k.Faster):
		m.setInterval(m.interval / 2)
		return m, nil

	case key.Matches(msg, k.Slower):
		m.setInterval(m.interval * 2)
		return m, nil

	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// showCard picks the next card and prints it into scrollback.
func (m *Model) showCard() tea.Cmd {
	card := m.picker.Next()
	m.lastCard = card
	m.shown++
	m.notice = ""
	return tea.Println(card)
}

// tick schedules the next rotation step.
func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *Model) setInterval(d time.Duration) {
	if d < minInterval {
		d = minInterval
	}
	if d > maxInterval {
		d = maxInterval
	}
	m.interval = d
	m.notice = fmt.Sprintf("interval set to %s", formatDuration(d))
}

// reload re-reads the deck file off the event loop.
func (m *Model) reload() tea.Cmd {
	path := m.path
	return func() tea.Msg {
		cards, err := deck.Load(path)
		return reloadedMsg{cards: cards, err: err}
	}
}

// applyReload swaps in a freshly loaded deck. On any failure the current
// deck stays in place and the error is shown in the status line.
func (m *Model) applyReload(msg reloadedMsg) {
	if msg.err != nil {
		m.notice = fmt.Sprintf("reload failed: %v", msg.err)
		return
	}
	picker, err := deck.NewPicker(msg.cards)
	if err != nil {
		m.notice = fmt.Sprintf("reload failed: %v", err)
		return
	}
	m.picker = picker
	m.notice = fmt.Sprintf("reloaded %d cards", picker.Size())
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%gs", d.Seconds())
}
