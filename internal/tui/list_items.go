package tui

import (
	"fmt"
	"io"
	"strings"

	"rafpad-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type noteListItem struct {
	note model.Note
}

func (i noteListItem) FilterValue() string { return i.note.Content }

// rowText builds the single-line note row. Missing fields degrade to
// placeholders so a malformed entity cannot suppress its siblings.
func (i noteListItem) rowText() string {
	content := strings.TrimSpace(i.note.Content)
	if content == "" {
		content = "(no content)"
	}
	content = firstLine(content)

	parts := []string{tagOrPlaceholder(i.note.ProjectTag)}
	if i.note.Category != "" {
		parts = append(parts, "["+i.note.Category+"]")
	}
	parts = append(parts, content)
	if d := i.note.CreatedAt.DateString(); d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, "  ")
}

type taskListItem struct {
	task model.Task
}

func (i taskListItem) FilterValue() string { return i.task.Content }

func (i taskListItem) rowText() string {
	content := strings.TrimSpace(i.task.Content)
	if content == "" {
		content = "(no content)"
	}
	content = firstLine(content)

	box := "[ ]"
	if i.task.IsCompleted {
		box = "[x]"
	}
	parts := []string{box, tagOrPlaceholder(i.task.ProjectTag)}
	if i.task.Priority != "" {
		parts = append(parts, priorityStyle(i.task.Priority).Render(i.task.Priority))
	}
	if i.task.Category != "" {
		parts = append(parts, "["+i.task.Category+"]")
	}
	parts = append(parts, content)
	if i.task.Deadline != nil && !i.task.Deadline.IsZero() {
		parts = append(parts, "due "+i.task.Deadline.DateString())
	}
	if n := len(i.task.Subtasks); n > 0 {
		done := 0
		for _, st := range i.task.Subtasks {
			if st.IsCompleted {
				done++
			}
		}
		parts = append(parts, fmt.Sprintf("(%d/%d)", done, n))
	}
	return strings.Join(parts, "  ")
}

func tagOrPlaceholder(tag string) string {
	if strings.TrimSpace(tag) == "" {
		return model.DefaultProjectTag
	}
	return tag
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "…"
	}
	return s
}

// rowDelegate renders one entity per line, width-clamped.
type rowDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newRowDelegate() rowDelegate {
	return rowDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
	}
}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	style := d.normal
	if index == m.Index() {
		style = d.selected
	}

	var line string
	switch it := item.(type) {
	case noteListItem:
		line = it.rowText()
	case taskListItem:
		line = it.rowText()
	default:
		line = fmt.Sprint(item)
	}

	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}
	fmt.Fprint(w, style.Render(line))
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, newRowDelegate(), 0, 0)
	l.Title = title
	// We render our own header/footer chrome; keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// Filtering happens through explicit project/category filters, not the
	// bubbles fuzzy filter.
	l.SetFilteringEnabled(false)
	// Bubbles lists default to quitting on ESC; here ESC means back/cancel.
	l.KeyMap.Quit.SetKeys("ctrl+c")
	return l
}
