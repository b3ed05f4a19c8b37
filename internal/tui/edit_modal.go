package tui

import (
	"strings"
	"time"

	"rafpad-cli/internal/api"
	"rafpad-cli/internal/model"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// The edit modal is a singleton: opening it for another entity replaces any
// state left over from a previous edit. It is always seeded from a fresh
// single-entity GET, never from the cached list row, so concurrent edits from
// another client are picked up.

type editFocus int

const (
	editFocusContent editFocus = iota
	editFocusTag
	editFocusCategory
	editFocusPriority
	editFocusDeadline
)

type editState struct {
	kind elementKind
	id   int

	content     textarea.Model
	tagInput    textinput.Model
	categoryIdx int
	priorityIdx int
	deadline    textinput.Model

	// Completion and subtasks are shown for context only. The update route
	// does not accept them, so an editable control here would be a lie: the
	// reload after save would immediately contradict it.
	isCompleted bool
	subtasks    []model.Subtask

	focus   editFocus
	saving  bool
	errText string
}

func newEditNoteState(n model.Note) *editState {
	e := newEditState(elementNote, n.ID)
	e.content.SetValue(n.Content)
	e.tagInput.SetValue(n.ProjectTag)
	e.categoryIdx = categoryIndex(n.Category)
	return e
}

func newEditTaskState(t model.Task) *editState {
	e := newEditState(elementTask, t.ID)
	e.content.SetValue(t.Content)
	e.tagInput.SetValue(t.ProjectTag)
	e.categoryIdx = categoryIndex(t.Category)
	e.priorityIdx = priorityIndex(t.Priority)
	if t.Deadline != nil && !t.Deadline.IsZero() {
		e.deadline.SetValue(t.Deadline.DateString())
	}
	e.isCompleted = t.IsCompleted
	e.subtasks = t.Subtasks
	return e
}

func newEditState(kind elementKind, id int) *editState {
	e := &editState{kind: kind, id: id, focus: editFocusContent}

	e.content = textarea.New()
	e.content.CharLimit = model.MaxContentLen
	e.content.SetWidth(60)
	e.content.SetHeight(5)
	e.content.ShowLineNumbers = false
	e.content.Focus()

	e.tagInput = textinput.New()
	e.tagInput.Placeholder = model.DefaultProjectTag
	e.tagInput.CharLimit = 50
	e.tagInput.Width = 24

	e.deadline = textinput.New()
	e.deadline.Placeholder = "YYYY-MM-DD"
	e.deadline.CharLimit = 10
	e.deadline.Width = 12

	return e
}

func categoryIndex(category string) int {
	for i, c := range model.Categories {
		if string(c) == category {
			return i + 1
		}
	}
	return 0
}

func priorityIndex(priority string) int {
	for i, p := range model.Priorities {
		if string(p) == priority {
			return i + 1
		}
	}
	return 0
}

func (e *editState) fields() []editFocus {
	if e.kind == elementNote {
		return []editFocus{editFocusContent, editFocusTag, editFocusCategory}
	}
	return []editFocus{
		editFocusContent, editFocusTag, editFocusCategory,
		editFocusPriority, editFocusDeadline,
	}
}

func (e *editState) cycleFocus(backwards bool) {
	fields := e.fields()
	idx := 0
	for i, f := range fields {
		if f == e.focus {
			idx = i
			break
		}
	}
	if backwards {
		idx = (idx - 1 + len(fields)) % len(fields)
	} else {
		idx = (idx + 1) % len(fields)
	}
	e.focus = fields[idx]

	e.content.Blur()
	e.tagInput.Blur()
	e.deadline.Blur()
	switch e.focus {
	case editFocusContent:
		e.content.Focus()
	case editFocusTag:
		e.tagInput.Focus()
	case editFocusDeadline:
		e.deadline.Focus()
	}
}

func (e *editState) validate() string {
	if strings.TrimSpace(e.content.Value()) == "" {
		return "Please enter content"
	}
	if len(e.content.Value()) > model.MaxContentLen {
		return "Content too long"
	}
	if e.kind == elementTask {
		if d := strings.TrimSpace(e.deadline.Value()); d != "" {
			if _, err := time.Parse("2006-01-02", d); err != nil {
				return "Invalid deadline (use YYYY-MM-DD)"
			}
		}
	}
	return ""
}

func (e *editState) category() string {
	if e.categoryIdx <= 0 || e.categoryIdx > len(model.Categories) {
		return ""
	}
	return string(model.Categories[e.categoryIdx-1])
}

func (e *editState) priority() string {
	if e.priorityIdx <= 0 || e.priorityIdx > len(model.Priorities) {
		return ""
	}
	return string(model.Priorities[e.priorityIdx-1])
}

func (e *editState) notePayload() api.NotePayload {
	return api.NotePayload{
		Content:    e.content.Value(),
		Category:   e.category(),
		ProjectTag: model.TagOrDefault(e.tagInput.Value()),
	}
}

func (e *editState) taskPayload() api.TaskPayload {
	return api.TaskPayload{
		Content:     e.content.Value(),
		Category:    e.category(),
		Priority:    e.priority(),
		Deadline:    strings.TrimSpace(e.deadline.Value()),
		IsCompleted: e.isCompleted,
		ProjectTag:  model.TagOrDefault(e.tagInput.Value()),
	}
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	e := m.edit
	if e == nil {
		m.modal = modalNone
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+g":
			m.modal = modalNone
			m.edit = nil
			return m, nil
		case "tab":
			e.cycleFocus(false)
			return m, nil
		case "shift+tab":
			e.cycleFocus(true)
			return m, nil
		case "ctrl+s":
			if e.saving {
				return m, nil
			}
			if errText := e.validate(); errText != "" {
				e.errText = errText
				return m, nil
			}
			e.errText = ""
			e.saving = true
			if e.kind == elementNote {
				return m, m.updateNoteCmd(e.id, e.notePayload())
			}
			return m, m.updateTaskCmd(e.id, e.taskPayload())
		}

		switch e.focus {
		case editFocusCategory:
			switch key.String() {
			case "left":
				e.categoryIdx = (e.categoryIdx - 1 + len(model.Categories) + 1) % (len(model.Categories) + 1)
				return m, nil
			case "right", " ":
				e.categoryIdx = (e.categoryIdx + 1) % (len(model.Categories) + 1)
				return m, nil
			}
		case editFocusPriority:
			switch key.String() {
			case "left":
				e.priorityIdx = (e.priorityIdx - 1 + len(model.Priorities) + 1) % (len(model.Priorities) + 1)
				return m, nil
			case "right", " ":
				e.priorityIdx = (e.priorityIdx + 1) % (len(model.Priorities) + 1)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch e.focus {
	case editFocusContent:
		e.content, cmd = e.content.Update(msg)
	case editFocusTag:
		e.tagInput, cmd = e.tagInput.Update(msg)
		formatted := model.FormatProjectTag(e.tagInput.Value())
		if formatted != e.tagInput.Value() {
			e.tagInput.SetValue(formatted)
			e.tagInput.CursorEnd()
		}
	case editFocusDeadline:
		e.deadline, cmd = e.deadline.Update(msg)
	}
	return m, cmd
}

func (m appModel) viewEdit() string {
	e := m.edit
	if e == nil {
		return ""
	}

	label := func(f editFocus, s string) string {
		if e.focus == f {
			return lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(s)
		}
		return styleMuted().Render(s)
	}

	var b strings.Builder
	b.WriteString(label(editFocusContent, "Content"))
	b.WriteString("\n" + e.content.View() + "\n\n")
	b.WriteString(label(editFocusTag, "Project") + "  " + e.tagInput.View() + "\n")
	b.WriteString(label(editFocusCategory, "Category") + "  " + optionValue(e.category()) + "\n")

	if e.kind == elementTask {
		b.WriteString(label(editFocusPriority, "Priority") + "  " + optionValue(e.priority()) + "\n")
		b.WriteString(label(editFocusDeadline, "Deadline") + "  " + e.deadline.View() + "\n")
		box := "[ ]"
		if e.isCompleted {
			box = "[x]"
		}
		b.WriteString(styleMuted().Render("Done") + "  " + box + "\n")
		if len(e.subtasks) > 0 {
			b.WriteString("\n" + styleMuted().Render("Subtasks (read-only)") + "\n")
			for _, st := range e.subtasks {
				mark := "[ ]"
				if st.IsCompleted {
					mark = "[x]"
				}
				b.WriteString(mark + " " + st.Content + "\n")
			}
		}
	}

	if e.errText != "" {
		b.WriteString("\n" + styleError().Render(e.errText))
	}
	if e.saving {
		b.WriteString("\n" + styleMuted().Render("saving…"))
	} else {
		b.WriteString("\n" + styleMuted().Render("tab: next field   ctrl+s: save   esc: cancel"))
	}

	title := "Edit note"
	if e.kind == elementTask {
		title = "Edit task"
	}
	return renderModalBox(m.width, title, b.String())
}
