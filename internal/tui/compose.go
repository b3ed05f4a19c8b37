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

// The compose form mirrors the capture flow: pick an element type, fill the
// type-specific fields, save. Switching type resets both field sets and
// clears the draft subtask list. Draft subtasks exist only in memory until
// the parent task is saved.

type composeFocus int

const (
	comFocusContent composeFocus = iota
	comFocusTag
	comFocusCategory
	comFocusPriority
	comFocusDeadline
	comFocusSubtaskInput
	comFocusSubtaskList
)

// A draft subtask is content only; the create endpoint ignores any
// completion state, so there is nothing else to capture here.
type draftSubtask struct {
	content string
}

type composeState struct {
	elementType elementKind

	content      textarea.Model
	tagInput     textinput.Model
	categoryIdx  int // 0 = none, 1.. = model.Categories
	priorityIdx  int // 0 = default (medium), 1.. = model.Priorities
	deadline     textinput.Model
	subtaskInput textinput.Model
	subtasks     []draftSubtask
	subtaskSel   int

	focus   composeFocus
	saving  bool
	errText string
}

func newComposeState(kind elementKind) *composeState {
	c := &composeState{elementType: kind}

	c.content = textarea.New()
	c.content.CharLimit = model.MaxContentLen
	c.content.SetWidth(60)
	c.content.SetHeight(5)
	c.content.ShowLineNumbers = false

	c.tagInput = textinput.New()
	c.tagInput.Placeholder = model.DefaultProjectTag
	c.tagInput.CharLimit = 50
	c.tagInput.Width = 24

	c.deadline = textinput.New()
	c.deadline.Placeholder = "YYYY-MM-DD"
	c.deadline.CharLimit = 10
	c.deadline.Width = 12

	c.subtaskInput = textinput.New()
	c.subtaskInput.Placeholder = "Add subtask…"
	c.subtaskInput.CharLimit = 200
	c.subtaskInput.Width = 40

	c.applyType(kind)
	return c
}

// applyType switches the element type, resetting all fields of both types
// and clearing the draft subtask list.
func (c *composeState) applyType(kind elementKind) {
	c.elementType = kind
	c.content.SetValue("")
	c.tagInput.SetValue("")
	c.deadline.SetValue("")
	c.subtaskInput.SetValue("")
	c.categoryIdx = 0
	c.priorityIdx = 0
	c.subtasks = nil
	c.subtaskSel = 0
	c.errText = ""
	c.focus = comFocusContent

	switch kind {
	case elementNote:
		c.content.Placeholder = "Enter note content…"
	case elementTask:
		c.content.Placeholder = "Enter task description…"
	default:
		c.content.Placeholder = "Select a type first (ctrl+n note, ctrl+t task)"
	}
	c.syncFocus()
}

func (c *composeState) fields() []composeFocus {
	switch c.elementType {
	case elementNote:
		return []composeFocus{comFocusContent, comFocusTag, comFocusCategory}
	case elementTask:
		return []composeFocus{
			comFocusContent, comFocusTag, comFocusCategory,
			comFocusPriority, comFocusDeadline,
			comFocusSubtaskInput, comFocusSubtaskList,
		}
	default:
		return nil
	}
}

func (c *composeState) cycleFocus(backwards bool) {
	fields := c.fields()
	if len(fields) == 0 {
		return
	}
	idx := 0
	for i, f := range fields {
		if f == c.focus {
			idx = i
			break
		}
	}
	if backwards {
		idx = (idx - 1 + len(fields)) % len(fields)
	} else {
		idx = (idx + 1) % len(fields)
	}
	c.focus = fields[idx]
	c.syncFocus()
}

func (c *composeState) syncFocus() {
	c.content.Blur()
	c.tagInput.Blur()
	c.deadline.Blur()
	c.subtaskInput.Blur()
	switch c.focus {
	case comFocusContent:
		c.content.Focus()
	case comFocusTag:
		c.tagInput.Focus()
	case comFocusDeadline:
		c.deadline.Focus()
	case comFocusSubtaskInput:
		c.subtaskInput.Focus()
	}
}

// validate reports the first user-visible problem, or "" when the form can
// be submitted. Validation failures never issue a network call.
func (c *composeState) validate() string {
	if c.elementType == elementNone {
		return "Select element type (note or task) first"
	}
	if strings.TrimSpace(c.content.Value()) == "" {
		return "Please enter content"
	}
	if len(c.content.Value()) > model.MaxContentLen {
		return "Content too long"
	}
	if c.elementType == elementTask {
		if d := strings.TrimSpace(c.deadline.Value()); d != "" {
			if _, err := time.Parse("2006-01-02", d); err != nil {
				return "Invalid deadline (use YYYY-MM-DD)"
			}
		}
	}
	return ""
}

func (c *composeState) category() string {
	if c.categoryIdx <= 0 || c.categoryIdx > len(model.Categories) {
		return ""
	}
	return string(model.Categories[c.categoryIdx-1])
}

func (c *composeState) priority() string {
	if c.priorityIdx <= 0 || c.priorityIdx > len(model.Priorities) {
		return ""
	}
	return string(model.Priorities[c.priorityIdx-1])
}

func (c *composeState) notePayload() api.NotePayload {
	return api.NotePayload{
		Content:    c.content.Value(),
		Category:   c.category(),
		ProjectTag: model.TagOrDefault(c.tagInput.Value()),
	}
}

func (c *composeState) taskPayload() api.TaskPayload {
	var subtasks []api.SubtaskPayload
	for _, st := range c.subtasks {
		subtasks = append(subtasks, api.SubtaskPayload{Content: st.content})
	}
	return api.TaskPayload{
		Content:    c.content.Value(),
		Category:   c.category(),
		Priority:   c.priority(),
		Deadline:   strings.TrimSpace(c.deadline.Value()),
		ProjectTag: model.TagOrDefault(c.tagInput.Value()),
		Subtasks:   subtasks,
	}
}

func (m appModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	c := m.compose
	if c == nil {
		m.modal = modalNone
		return m, nil
	}

	key, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch key.String() {
		case "esc", "ctrl+g":
			m.modal = modalNone
			m.compose = nil
			return m, nil
		case "ctrl+n":
			c.applyType(elementNote)
			return m, nil
		case "ctrl+t":
			c.applyType(elementTask)
			return m, nil
		case "tab":
			c.cycleFocus(false)
			return m, nil
		case "shift+tab":
			c.cycleFocus(true)
			return m, nil
		case "ctrl+s":
			if c.saving {
				return m, nil
			}
			if errText := c.validate(); errText != "" {
				c.errText = errText
				return m, nil
			}
			c.errText = ""
			c.saving = true
			if c.elementType == elementNote {
				return m, m.createNoteCmd(c.notePayload())
			}
			return m, m.createTaskCmd(c.taskPayload())
		}

		switch c.focus {
		case comFocusCategory:
			switch key.String() {
			case "left":
				c.categoryIdx = (c.categoryIdx - 1 + len(model.Categories) + 1) % (len(model.Categories) + 1)
				return m, nil
			case "right", " ":
				c.categoryIdx = (c.categoryIdx + 1) % (len(model.Categories) + 1)
				return m, nil
			}
		case comFocusPriority:
			switch key.String() {
			case "left":
				c.priorityIdx = (c.priorityIdx - 1 + len(model.Priorities) + 1) % (len(model.Priorities) + 1)
				return m, nil
			case "right", " ":
				c.priorityIdx = (c.priorityIdx + 1) % (len(model.Priorities) + 1)
				return m, nil
			}
		case comFocusSubtaskInput:
			if key.String() == "enter" {
				text := strings.TrimSpace(c.subtaskInput.Value())
				if text != "" {
					c.subtasks = append(c.subtasks, draftSubtask{content: text})
					c.subtaskInput.SetValue("")
				}
				return m, nil
			}
		case comFocusSubtaskList:
			switch key.String() {
			case "up", "k":
				if c.subtaskSel > 0 {
					c.subtaskSel--
				}
				return m, nil
			case "down", "j":
				if c.subtaskSel < len(c.subtasks)-1 {
					c.subtaskSel++
				}
				return m, nil
			case "backspace", "x":
				// Direct row deletion, no undo.
				if c.subtaskSel >= 0 && c.subtaskSel < len(c.subtasks) {
					c.subtasks = append(c.subtasks[:c.subtaskSel], c.subtasks[c.subtaskSel+1:]...)
					if c.subtaskSel >= len(c.subtasks) && c.subtaskSel > 0 {
						c.subtaskSel--
					}
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch c.focus {
	case comFocusContent:
		c.content, cmd = c.content.Update(msg)
	case comFocusTag:
		c.tagInput, cmd = c.tagInput.Update(msg)
		// Keep the tag canonical while typing; empty stays empty and the
		// #inbox default is applied at save time only.
		formatted := model.FormatProjectTag(c.tagInput.Value())
		if formatted != c.tagInput.Value() {
			c.tagInput.SetValue(formatted)
			c.tagInput.CursorEnd()
		}
	case comFocusDeadline:
		c.deadline, cmd = c.deadline.Update(msg)
	case comFocusSubtaskInput:
		c.subtaskInput, cmd = c.subtaskInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) viewCompose() string {
	c := m.compose
	if c == nil {
		return ""
	}

	label := func(f composeFocus, s string) string {
		if c.focus == f {
			return lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(s)
		}
		return styleMuted().Render(s)
	}

	var b strings.Builder
	typeLine := "type: " + elementToString(c.elementType) + "   (ctrl+n note, ctrl+t task)"
	b.WriteString(styleMuted().Render(typeLine))
	b.WriteString("\n\n")
	b.WriteString(label(comFocusContent, "Content"))
	b.WriteString("\n" + c.content.View() + "\n\n")
	b.WriteString(label(comFocusTag, "Project") + "  " + c.tagInput.View() + "\n")
	b.WriteString(label(comFocusCategory, "Category") + "  " + optionValue(c.category()) + "\n")

	if c.elementType == elementTask {
		priority := c.priority()
		if priority == "" {
			priority = string(model.PriorityMedium) + " (default)"
		}
		b.WriteString(label(comFocusPriority, "Priority") + "  " + priority + "\n")
		b.WriteString(label(comFocusDeadline, "Deadline") + "  " + c.deadline.View() + "\n\n")
		b.WriteString(label(comFocusSubtaskInput, "Subtask") + "  " + c.subtaskInput.View() + "\n")
		if len(c.subtasks) > 0 {
			b.WriteString(label(comFocusSubtaskList, "Draft subtasks") + "\n")
			for i, st := range c.subtasks {
				row := "- " + st.content
				if c.focus == comFocusSubtaskList && i == c.subtaskSel {
					row = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Render(row)
				}
				b.WriteString(row + "\n")
			}
		}
	}

	if c.errText != "" {
		b.WriteString("\n" + styleError().Render(c.errText))
	}
	if c.saving {
		b.WriteString("\n" + styleMuted().Render("saving…"))
	} else {
		b.WriteString("\n" + styleMuted().Render("tab: next field   ctrl+s: save   esc: cancel"))
	}

	title := "New element"
	switch c.elementType {
	case elementNote:
		title = "New note"
	case elementTask:
		title = "New task"
	}
	return renderModalBox(m.width, title, b.String())
}

func optionValue(v string) string {
	if v == "" {
		return "—"
	}
	return v
}
