package tui

import (
	"context"

	"rafpad-cli/internal/api"
	"rafpad-cli/internal/model"
	"rafpad-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type appModel struct {
	client *api.Client
	store  *store.Store

	width  int
	height int

	pane pane

	// Server snapshot, as returned by the last full load. Filters are
	// applied on top of this when the visible lists are rebuilt.
	notes    []model.Note
	tasks    []model.Task
	projects []model.Project
	loading  bool

	noteFilter filterState
	taskFilter filterState
	noteList   list.Model
	taskList   list.Model

	chat         *chatState
	chatSettings model.ChatSettings
	chatModel    string

	modal        modalKind
	compose      *composeState
	edit         *editState
	settingsForm *settingsState
	modelForm    *modelState

	confirmKind    elementKind
	confirmID      int
	confirmLabel   string
	confirmFocused bool

	status      string
	statusIsErr bool
	statusSeq   int
}

func newAppModel(client *api.Client, st *store.Store) appModel {
	m := appModel{
		client:  client,
		store:   st,
		pane:    paneNotes,
		chat:    newChatState(),
		loading: true,
	}

	m.noteList = newList("Notes", nil)
	m.taskList = newList("Tasks", nil)

	m.chatSettings = model.DefaultChatSettings()
	if st != nil {
		if s, err := st.LoadChatSettings(context.Background()); err == nil {
			m.chatSettings = s
		}
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	// The history fetch replays any server-side transcript for this session
	// in order (empty for a fresh session).
	return tea.Batch(m.loadElementsCmd(), m.chatHistoryCmd(m.chat.sessionID))
}

// rebuildLists re-applies the active filters to the server snapshot. Called
// after every load and every filter change; selection is clamped by bubbles.
func (m *appModel) rebuildLists() {
	noteItems := make([]list.Item, 0, len(m.notes))
	for _, n := range filterNotes(m.notes, m.noteFilter) {
		noteItems = append(noteItems, noteListItem{note: n})
	}
	m.noteList.SetItems(noteItems)

	taskItems := make([]list.Item, 0, len(m.tasks))
	for _, t := range filterTasks(m.tasks, m.taskFilter) {
		taskItems = append(taskItems, taskListItem{task: t})
	}
	m.taskList.SetItems(taskItems)
}

func (m *appModel) selectedNote() (model.Note, bool) {
	if it, ok := m.noteList.SelectedItem().(noteListItem); ok {
		return it.note, true
	}
	return model.Note{}, false
}

func (m *appModel) selectedTask() (model.Task, bool) {
	if it, ok := m.taskList.SelectedItem().(taskListItem); ok {
		return it.task, true
	}
	return model.Task{}, false
}

func (m *appModel) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusIsErr = isErr
	m.statusSeq++
	return m.statusClearCmd(m.statusSeq)
}

func (m *appModel) layoutLists() {
	listH := m.height - 4
	if listH < 3 {
		listH = 3
	}
	paneW := m.paneWidth()
	m.noteList.SetSize(paneW, listH)
	m.taskList.SetSize(paneW, listH)
}

func (m *appModel) paneWidth() int {
	w := m.width
	if w <= 0 {
		w = 80
	}
	return w
}
