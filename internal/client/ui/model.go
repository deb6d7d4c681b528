package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/yourusername/stream-chat/internal/chat"
)

// Layout rows outside the message viewport: header, chat border,
// input box (with border) and the status bar.
const (
	headerHeight    = 1
	chatChrome      = 2
	inputBoxHeight  = 3
	statusBarHeight = 1
	horizontalInset = 4 // border + padding on each side
)

// Options configures the chat model
type Options struct {
	Username       string
	Script         chat.Script
	ShowTimestamps bool
	Logger         zerolog.Logger
}

// Model is the main Bubble Tea model
type Model struct {
	feed     *chat.Feed
	panel    *ChatPanel
	viewport viewport.Model
	input    textinput.Model

	username string
	script   chat.Script
	log      zerolog.Logger

	width  int
	height int
}

// NewModel creates a chat model rendering feed. The model's panel is
// subscribed to feed, so every post shows up on the next refresh.
func NewModel(feed *chat.Feed, opts Options) Model {
	if opts.Username == "" {
		opts.Username = chat.DefaultUsername
	}

	panel := NewChatPanel(opts.ShowTimestamps)
	feed.Subscribe(panel)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Send a message"
	ti.CharLimit = 0 // no limit, like the web input
	ti.Focus()

	m := Model{
		feed:     feed,
		panel:    panel,
		viewport: viewport.New(80, 20),
		input:    ti,
		username: opts.Username,
		script:   opts.Script,
		log:      opts.Logger.With().Str("component", "tui").Logger(),
	}
	m.resize(80, 24)
	return m
}

// Init starts the cursor blink and the canned message timers
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		scheduleScriptCmd(m.script),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.log.Info().Int("messages", m.feed.Len()).Msg("quit")
			return m, tea.Quit

		case "enter":
			m.submit()
			return m, nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case cannedMsg:
		posted := m.feed.Post(msg.message.Username, msg.message.Text)
		m.log.Debug().Str("id", posted.ID.String()).Str("username", posted.Username).
			Dur("after", msg.message.After).Msg("canned message fired")
		m.refresh()
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat screen
func (m Model) View() string {
	return m.viewChat()
}

// Feed returns the feed this model renders
func (m Model) Feed() *chat.Feed {
	return m.feed
}

// submit posts the input as the local user. Blank input is ignored
// and left in place.
func (m *Model) submit() {
	rest, posted := chat.Submit(m.feed, m.username, m.input.Value())
	if !posted {
		return
	}
	m.input.SetValue(rest)
	m.log.Debug().Int("messages", m.feed.Len()).Msg("message submitted")
	m.refresh()
}

// refresh redraws the message list and scrolls to the newest entry
func (m *Model) refresh() {
	m.viewport.SetContent(m.panel.Content(m.viewport.Width))
	m.viewport.GotoBottom()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.viewport.Width = max(width-horizontalInset, 10)
	m.viewport.Height = max(height-headerHeight-chatChrome-inputBoxHeight-statusBarHeight, 3)
	m.input.Width = max(width-horizontalInset-len(m.input.Prompt)-1, 10)

	m.refresh()
}
