package tui

import (
	"rafpad-cli/internal/model"
)

type pane int

const (
	paneNotes pane = iota
	paneTasks
	paneChat
)

func paneToString(p pane) string {
	switch p {
	case paneNotes:
		return "notes"
	case paneTasks:
		return "tasks"
	case paneChat:
		return "chat"
	default:
		return "?"
	}
}

type elementKind int

const (
	elementNone elementKind = iota
	elementNote
	elementTask
)

func elementToString(k elementKind) string {
	switch k {
	case elementNote:
		return "note"
	case elementTask:
		return "task"
	default:
		return "none"
	}
}

type modalKind int

const (
	modalNone modalKind = iota
	modalCompose
	modalEditNote
	modalEditTask
	modalConfirmDelete
	modalChatModel
	modalChatSettings
)

// elementsLoadedMsg carries a full server snapshot. Every mutation ends in
// one of these; the lists always reflect exactly the last GET response.
type elementsLoadedMsg struct {
	notes    []model.Note
	tasks    []model.Task
	projects []model.Project
	err      error
}

// entityForEditMsg delivers the fresh single-entity GET that seeds the edit
// modal.
type entityForEditMsg struct {
	kind elementKind
	note model.Note
	task model.Task
	err  error
}

// mutationDoneMsg reports a create/update/delete. A nil err triggers a full
// reload; a non-nil err leaves the originating form open for retry.
type mutationDoneMsg struct {
	action string
	err    error
}

type chatReplyMsg struct {
	reply string
	err   error
}

type chatHistoryMsg struct {
	messages []model.ChatMessage
	err      error
}

type chatClearedMsg struct {
	err error
}

type chatModelSetMsg struct {
	name string
	err  error
}

type chatSettingsSavedMsg struct {
	err error
}

type statusClearMsg struct {
	seq int
}
