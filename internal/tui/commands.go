package tui

import (
	"context"
	"time"

	"rafpad-cli/internal/api"
	"rafpad-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 15 * time.Second
const chatTimeout = 60 * time.Second

// loadElementsCmd fetches the full server snapshot. The lists are never
// patched in place; every mutation ends by scheduling one of these.
func (m appModel) loadElementsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		notes, err := client.ListNotes(ctx)
		if err != nil {
			return elementsLoadedMsg{err: err}
		}
		tasks, err := client.ListTasks(ctx)
		if err != nil {
			return elementsLoadedMsg{err: err}
		}
		projects, err := client.ListProjects(ctx)
		if err != nil {
			return elementsLoadedMsg{err: err}
		}
		return elementsLoadedMsg{notes: notes, tasks: tasks, projects: projects}
	}
}

func (m appModel) fetchNoteForEditCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		n, err := client.GetNote(ctx, id)
		return entityForEditMsg{kind: elementNote, note: n, err: err}
	}
}

func (m appModel) fetchTaskForEditCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		t, err := client.GetTask(ctx, id)
		return entityForEditMsg{kind: elementTask, task: t, err: err}
	}
}

func (m appModel) createNoteCmd(p api.NotePayload) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := client.CreateNote(ctx, p)
		return mutationDoneMsg{action: "note created", err: err}
	}
}

func (m appModel) updateNoteCmd(id int, p api.NotePayload) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := client.UpdateNote(ctx, id, p)
		return mutationDoneMsg{action: "note updated", err: err}
	}
}

func (m appModel) deleteNoteCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := client.DeleteNote(ctx, id)
		return mutationDoneMsg{action: "note deleted", err: err}
	}
}

func (m appModel) moveNoteCmd(id int, tag string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := client.MoveNote(ctx, id, tag)
		return mutationDoneMsg{action: "note moved", err: err}
	}
}

func (m appModel) createTaskCmd(p api.TaskPayload) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := client.CreateTask(ctx, p)
		return mutationDoneMsg{action: "task created", err: err}
	}
}

func (m appModel) updateTaskCmd(id int, p api.TaskPayload) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := client.UpdateTask(ctx, id, p)
		return mutationDoneMsg{action: "task updated", err: err}
	}
}

func (m appModel) deleteTaskCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := client.DeleteTask(ctx, id)
		return mutationDoneMsg{action: "task deleted", err: err}
	}
}

func (m appModel) moveTaskCmd(id int, tag string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := client.MoveTask(ctx, id, tag)
		return mutationDoneMsg{action: "task moved", err: err}
	}
}

func (m appModel) sendChatCmd(sessionID, message string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
		defer cancel()
		reply, err := client.SendChat(ctx, sessionID, message)
		if err != nil {
			return chatReplyMsg{err: err}
		}
		return chatReplyMsg{reply: reply.Response}
	}
}

func (m appModel) chatHistoryCmd(sessionID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		messages, err := client.ChatHistory(ctx, sessionID)
		return chatHistoryMsg{messages: messages, err: err}
	}
}

func (m appModel) clearChatCmd(sessionID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := client.ClearChat(ctx, sessionID)
		return chatClearedMsg{err: err}
	}
}

func (m appModel) setChatModelCmd(name string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := client.SetChatModel(ctx, name)
		return chatModelSetMsg{name: name, err: err}
	}
}

// saveChatSettingsCmd persists locally first, then pushes to the server. A
// local write failure still attempts the server push so the session keeps
// working; the error wins over a server success.
func (m appModel) saveChatSettingsCmd(s model.ChatSettings) tea.Cmd {
	client := m.client
	st := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var storeErr error
		if st != nil {
			storeErr = st.SaveChatSettings(ctx, s)
		}
		err := client.SaveChatSettings(ctx, s)
		if err == nil {
			err = storeErr
		}
		return chatSettingsSavedMsg{err: err}
	}
}

func (m appModel) statusClearCmd(seq int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
