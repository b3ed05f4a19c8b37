package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.width == 0 {
		return "loading…"
	}

	var body string
	switch m.pane {
	case paneNotes:
		body = m.noteList.View()
	case paneTasks:
		body = m.viewTasksPane()
	case paneChat:
		body = m.viewChatPane(m.paneWidth(), m.height-4)
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		body,
		m.viewFooter(),
	)

	if m.modal != modalNone {
		return placeCentered(m.width, m.height, m.viewModal())
	}
	return screen
}

func (m appModel) viewHeader() string {
	active := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	var tabs []string
	for _, p := range []pane{paneNotes, paneTasks, paneChat} {
		name := paneToString(p)
		if p == m.pane {
			tabs = append(tabs, active.Render(name))
		} else {
			tabs = append(tabs, styleMuted().Render(name))
		}
	}
	line := strings.Join(tabs, "  ")
	if m.loading {
		line += "  " + styleMuted().Render("(loading)")
	}
	return line + "\n"
}

// viewTasksPane shows the task list with a detail strip for the selection,
// including its subtasks. Notes don't get a detail strip; their first line
// carries enough.
func (m appModel) viewTasksPane() string {
	listView := m.taskList.View()

	t, ok := m.selectedTask()
	if !ok {
		return listView
	}

	var b strings.Builder
	b.WriteString(listView)
	if len(t.Subtasks) > 0 {
		b.WriteString("\n" + styleMuted().Render("subtasks:"))
		for _, st := range t.Subtasks {
			mark := "[ ]"
			if st.IsCompleted {
				mark = "[x]"
			}
			b.WriteString("\n  " + mark + " " + firstLine(st.Content))
		}
	}
	return b.String()
}

func (m appModel) viewFooter() string {
	var left string
	switch m.pane {
	case paneNotes:
		left = "filter: " + m.noteFilter.label()
	case paneTasks:
		left = "filter: " + m.taskFilter.label()
	case paneChat:
		left = "session: " + shortSession(m.chat.sessionID)
		if m.chatModel != "" {
			left += "  model: " + m.chatModel
		}
	}

	status := m.status
	if status != "" {
		if m.statusIsErr {
			status = styleError().Render(status)
		} else {
			status = lipgloss.NewStyle().Foreground(colorSuccess).Render(status)
		}
	}

	help := "tab: pane   n/t: new   e: edit   d: delete   f/c: filter   r: reload   q: quit"
	if m.pane == paneChat {
		help = "tab: pane   enter: send   ctrl+l: clear   ctrl+r: history   ctrl+c: quit"
	}

	lines := []string{styleMuted().Render(left)}
	if status != "" {
		lines = append(lines, status)
	}
	lines = append(lines, styleMuted().Render(help))
	return "\n" + strings.Join(lines, "\n")
}

func (m appModel) viewModal() string {
	switch m.modal {
	case modalCompose:
		return m.viewCompose()
	case modalEditNote, modalEditTask:
		return m.viewEdit()
	case modalChatSettings:
		return m.viewChatSettings()
	case modalChatModel:
		return m.viewChatModel()
	case modalConfirmDelete:
		body := "Delete " + elementToString(m.confirmKind) + "?"
		if m.confirmLabel != "" {
			body += "\n\n" + styleMuted().Render(m.confirmLabel)
		}
		return renderConfirmModal(m.width, "Confirm delete", body, "Delete", "Cancel", m.confirmFocused)
	}
	return ""
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
