package tui

import (
	"strings"

	"rafpad-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// chatFallbackReply is shown as an assistant message when a send fails for
// any reason (network, server error, malformed response).
const chatFallbackReply = "Sorry, there was an error processing your message."

// chatState holds one assistant conversation. The session ID is generated
// once when the TUI starts and scopes every chat request for the lifetime of
// the process; restoring history replays the server's transcript for that
// session in order.
type chatState struct {
	sessionID string

	messages []model.ChatMessage
	viewport viewport.Model
	input    textinput.Model

	sending bool
	ready   bool
}

func newChatState() *chatState {
	c := &chatState{sessionID: uuid.NewString()}

	c.input = textinput.New()
	c.input.Placeholder = "Ask the assistant…"
	c.input.CharLimit = 2000
	c.input.Width = 40

	return c
}

func (c *chatState) setSize(width, height int) {
	if !c.ready {
		c.viewport = viewport.New(width, height)
		c.ready = true
	} else {
		c.viewport.Width = width
		c.viewport.Height = height
	}
	c.input.Width = width - 4
	c.refresh()
}

func (c *chatState) append(msg model.ChatMessage) {
	c.messages = append(c.messages, msg)
	c.refresh()
	c.viewport.GotoBottom()
}

func (c *chatState) replaceHistory(messages []model.ChatMessage) {
	c.messages = messages
	c.refresh()
	c.viewport.GotoBottom()
}

func (c *chatState) clear() {
	c.messages = nil
	c.refresh()
}

func (c *chatState) refresh() {
	if !c.ready {
		return
	}
	c.viewport.SetContent(c.transcript(c.viewport.Width))
}

func (c *chatState) transcript(width int) string {
	if len(c.messages) == 0 {
		return styleMuted().Render("No messages yet. Type below and press enter.")
	}

	userStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	var b strings.Builder
	for i, msg := range c.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		switch msg.Role {
		case model.RoleUser:
			b.WriteString(userStyle.Render("you") + "\n")
			b.WriteString(msg.Content + "\n")
		case model.RoleSystem:
			b.WriteString(styleMuted().Render("· "+msg.Content) + "\n")
		default:
			b.WriteString(styleMuted().Render("assistant") + "\n")
			b.WriteString(renderMarkdown(msg.Content, width) + "\n")
		}
	}
	return b.String()
}

func (m appModel) updateChatPane(msg tea.Msg) (tea.Model, tea.Cmd) {
	c := m.chat

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if c.sending {
				return m, nil
			}
			text := strings.TrimSpace(c.input.Value())
			if text == "" {
				return m, nil
			}
			c.input.SetValue("")
			c.sending = true
			c.append(model.ChatMessage{Role: model.RoleUser, Content: text})
			return m, m.sendChatCmd(c.sessionID, text)
		case "ctrl+l":
			return m, m.clearChatCmd(c.sessionID)
		case "ctrl+r":
			return m, m.chatHistoryCmd(c.sessionID)
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return m, cmd
}

func (m appModel) viewChatPane(width, height int) string {
	c := m.chat

	inputLine := c.input.View()
	if c.sending {
		inputLine = styleMuted().Render("waiting for the assistant…")
	}

	bodyH := height - 2
	if bodyH < 1 {
		bodyH = 1
	}
	if !c.ready || c.viewport.Width != width || c.viewport.Height != bodyH {
		c.setSize(width, bodyH)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		c.viewport.View(),
		"",
		inputLine,
	)
}
