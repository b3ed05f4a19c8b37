package tui

import (
	"fmt"

	"rafpad-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutLists()
		return m, nil

	case elementsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			cmd := m.setStatus("load failed: "+msg.err.Error(), true)
			return m, cmd
		}
		m.notes = msg.notes
		m.tasks = msg.tasks
		m.projects = msg.projects
		m.rebuildLists()
		return m, nil

	case entityForEditMsg:
		if msg.err != nil {
			cmd := m.setStatus("fetch failed: "+msg.err.Error(), true)
			return m, cmd
		}
		// Singleton edit modal: opening for another entity replaces any
		// previous edit state outright.
		switch msg.kind {
		case elementNote:
			m.edit = newEditNoteState(msg.note)
			m.modal = modalEditNote
		case elementTask:
			m.edit = newEditTaskState(msg.task)
			m.modal = modalEditTask
		}
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			// Leave the originating form open for retry.
			if m.compose != nil {
				m.compose.saving = false
				m.compose.errText = msg.err.Error()
			}
			if m.edit != nil {
				m.edit.saving = false
				m.edit.errText = msg.err.Error()
			}
			if m.modal == modalNone || m.modal == modalConfirmDelete {
				m.modal = modalNone
				cmd := m.setStatus(msg.action+" failed: "+msg.err.Error(), true)
				return m, cmd
			}
			return m, nil
		}
		m.modal = modalNone
		m.compose = nil
		m.edit = nil
		cmd := m.setStatus(msg.action, false)
		return m, tea.Batch(cmd, m.loadElementsCmd())

	case chatReplyMsg:
		m.chat.sending = false
		if msg.err != nil {
			debugLogf("chat send: %v", msg.err)
			m.chat.append(model.ChatMessage{Role: model.RoleAssistant, Content: chatFallbackReply})
			return m, nil
		}
		m.chat.append(model.ChatMessage{Role: model.RoleAssistant, Content: msg.reply})
		return m, nil

	case chatHistoryMsg:
		if msg.err != nil {
			cmd := m.setStatus("history failed: "+msg.err.Error(), true)
			return m, cmd
		}
		m.chat.replaceHistory(msg.messages)
		return m, nil

	case chatClearedMsg:
		if msg.err != nil {
			cmd := m.setStatus("clear failed: "+msg.err.Error(), true)
			return m, cmd
		}
		m.chat.clear()
		cmd := m.setStatus("chat cleared", false)
		return m, cmd

	case chatModelSetMsg:
		if msg.err != nil {
			if m.modelForm != nil {
				m.modelForm.saving = false
			}
			m.chat.append(model.ChatMessage{
				Role:    model.RoleSystem,
				Content: "Failed to switch model. The previous model remains active.",
			})
			cmd := m.setStatus("model switch failed: "+msg.err.Error(), true)
			return m, cmd
		}
		m.modal = modalNone
		m.modelForm = nil
		m.chatModel = msg.name
		m.chat.append(model.ChatMessage{
			Role:    model.RoleSystem,
			Content: fmt.Sprintf("Switched model to %s. Conversation context was reset.", msg.name),
		})
		cmd := m.setStatus("model: "+msg.name, false)
		return m, cmd

	case chatSettingsSavedMsg:
		if msg.err != nil {
			if m.settingsForm != nil {
				m.settingsForm.saving = false
				m.settingsForm.errText = msg.err.Error()
			}
			return m, nil
		}
		m.modal = modalNone
		m.settingsForm = nil
		cmd := m.setStatus("chat settings saved", false)
		return m, cmd

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusIsErr = false
		}
		return m, nil
	}

	if m.modal != modalNone {
		return m.updateModal(msg)
	}
	return m.updatePane(msg)
}

func (m appModel) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalCompose:
		return m.updateCompose(msg)
	case modalEditNote, modalEditTask:
		return m.updateEdit(msg)
	case modalChatSettings:
		return m.updateChatSettings(msg)
	case modalChatModel:
		return m.updateChatModel(msg)
	case modalConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	m.modal = modalNone
	return m, nil
}

func (m appModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc", "n", "ctrl+g":
		m.modal = modalNone
		return m, nil
	case "tab", "left", "right":
		m.confirmFocused = !m.confirmFocused
		return m, nil
	case "y":
		return m.runConfirmedDelete()
	case "enter":
		if m.confirmFocused {
			return m.runConfirmedDelete()
		}
		m.modal = modalNone
		return m, nil
	}
	return m, nil
}

func (m appModel) runConfirmedDelete() (tea.Model, tea.Cmd) {
	kind, id := m.confirmKind, m.confirmID
	m.modal = modalNone
	if kind == elementNote {
		return m, m.deleteNoteCmd(id)
	}
	return m, m.deleteTaskCmd(id)
}

func (m appModel) updatePane(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.pane = (m.pane + 1) % 3
			return m, nil
		case "shift+tab":
			m.pane = (m.pane + 2) % 3
			return m, nil
		}
	}

	if m.pane == paneChat {
		return m.updateChatPane(msg)
	}
	return m.updateListPane(msg)
}

func (m appModel) updateListPane(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.loadElementsCmd()
		case "n":
			m.compose = newComposeState(elementNote)
			m.modal = modalCompose
			return m, nil
		case "t":
			m.compose = newComposeState(elementTask)
			m.modal = modalCompose
			return m, nil
		case "f":
			if m.pane == paneNotes {
				m.noteFilter.tag = cycleTag(m.noteFilter.tag, m.projects)
			} else {
				m.taskFilter.tag = cycleTag(m.taskFilter.tag, m.projects)
			}
			m.rebuildLists()
			return m, nil
		case "c":
			if m.pane == paneNotes {
				m.noteFilter.category = cycleCategory(m.noteFilter.category)
			} else {
				m.taskFilter.category = cycleCategory(m.taskFilter.category)
			}
			m.rebuildLists()
			return m, nil
		case "e":
			if m.pane == paneNotes {
				if n, ok := m.selectedNote(); ok {
					return m, m.fetchNoteForEditCmd(n.ID)
				}
			} else if t, ok := m.selectedTask(); ok {
				return m, m.fetchTaskForEditCmd(t.ID)
			}
			return m, nil
		case "d":
			if m.pane == paneNotes {
				if n, ok := m.selectedNote(); ok {
					m.confirmKind = elementNote
					m.confirmID = n.ID
					m.confirmLabel = firstLine(n.Content)
					m.confirmFocused = false
					m.modal = modalConfirmDelete
				}
			} else if t, ok := m.selectedTask(); ok {
				m.confirmKind = elementTask
				m.confirmID = t.ID
				m.confirmLabel = firstLine(t.Content)
				m.confirmFocused = false
				m.modal = modalConfirmDelete
			}
			return m, nil
		case "m":
			if m.pane == paneNotes {
				if n, ok := m.selectedNote(); ok {
					if target := moveTarget(n.ProjectTag, m.projects); target != "" && target != n.ProjectTag {
						return m, m.moveNoteCmd(n.ID, target)
					}
				}
			} else if t, ok := m.selectedTask(); ok {
				if target := moveTarget(t.ProjectTag, m.projects); target != "" && target != t.ProjectTag {
					return m, m.moveTaskCmd(t.ID, target)
				}
			}
			return m, nil
		case "s":
			m.settingsForm = newSettingsState(m.chatSettings)
			m.modal = modalChatSettings
			return m, nil
		case "M":
			m.modelForm = newModelState(m.chatModel)
			m.modal = modalChatModel
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.pane == paneNotes {
		m.noteList, cmd = m.noteList.Update(msg)
	} else {
		m.taskList, cmd = m.taskList.Update(msg)
	}
	return m, cmd
}
