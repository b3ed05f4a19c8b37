package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"rafpad-cli/internal/api"
	"rafpad-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) appModel {
	t.Helper()
	// Point at a closed port; tests never execute the returned commands
	// unless they deliberately want a network error.
	client := api.NewClient("http://127.0.0.1:1", time.Second)
	m := newAppModel(client, nil)
	m.width = 100
	m.height = 30
	m.layoutLists()
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestComposeSaveRejectsEmptyContentWithoutCommand(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg("n"))
	m = next.(appModel)
	if m.modal != modalCompose {
		t.Fatalf("modal = %v, want compose", m.modal)
	}

	next, cmd := m.Update(keyMsg("ctrl+s"))
	m = next.(appModel)
	if cmd != nil {
		t.Fatal("validation failure must not issue a command")
	}
	if m.compose.errText == "" {
		t.Fatal("expected a validation message")
	}
	if m.modal != modalCompose {
		t.Fatal("form should stay open after validation failure")
	}
}

func TestComposeSaveRequiresElementType(t *testing.T) {
	c := newComposeState(elementNone)
	c.content.SetValue("something")
	if msg := c.validate(); !strings.Contains(msg, "type") {
		t.Fatalf("validate() = %q, want type prompt", msg)
	}
}

func TestComposeTypeSwitchResetsFieldsAndSubtasks(t *testing.T) {
	c := newComposeState(elementTask)
	c.content.SetValue("buy milk")
	c.tagInput.SetValue("#errands")
	c.subtasks = []draftSubtask{{content: "find wallet"}, {content: "walk"}}
	c.priorityIdx = 2

	c.applyType(elementNote)
	if c.content.Value() != "" || c.tagInput.Value() != "" {
		t.Fatal("type switch must reset text fields")
	}
	if len(c.subtasks) != 0 {
		t.Fatal("type switch must clear draft subtasks")
	}

	c.applyType(elementTask)
	if len(c.subtasks) != 0 || c.priorityIdx != 0 {
		t.Fatal("switching back must not resurrect prior drafts")
	}
}

func TestComposeTagFormattedWhileTyping(t *testing.T) {
	m := newTestModel(t)
	m.compose = newComposeState(elementNote)
	m.modal = modalCompose
	m.compose.focus = comFocusTag
	m.compose.syncFocus()

	for _, r := range "my, tag" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(appModel)
	}
	if got := m.compose.tagInput.Value(); got != "#mytag" {
		t.Fatalf("tag input = %q, want #mytag", got)
	}
}

func TestComposeSavingBlocksResubmit(t *testing.T) {
	m := newTestModel(t)
	m.compose = newComposeState(elementNote)
	m.compose.content.SetValue("hello")
	m.compose.saving = true
	m.modal = modalCompose

	next, cmd := m.Update(keyMsg("ctrl+s"))
	m = next.(appModel)
	if cmd != nil {
		t.Fatal("ctrl+s while saving must be a no-op")
	}
}

func TestFiltersAreIndependentPerList(t *testing.T) {
	m := newTestModel(t)
	m.notes = []model.Note{
		{ID: 1, Content: "a", ProjectTag: "#work"},
		{ID: 2, Content: "b", ProjectTag: "#home"},
	}
	m.tasks = []model.Task{
		{ID: 1, Content: "t1", ProjectTag: "#work"},
		{ID: 2, Content: "t2", ProjectTag: "#home"},
	}
	m.noteFilter.tag = "#work"
	m.rebuildLists()

	if got := len(m.noteList.Items()); got != 1 {
		t.Fatalf("filtered notes = %d, want 1", got)
	}
	if got := len(m.taskList.Items()); got != 2 {
		t.Fatalf("task list must be unaffected by the note filter, got %d", got)
	}
}

func TestFilterMatchesCombinesTagAndCategory(t *testing.T) {
	f := filterState{tag: "#work", category: "idea"}
	if !f.matches("#work", "idea") {
		t.Fatal("both matching should pass")
	}
	if f.matches("#work", "meeting") || f.matches("#home", "idea") {
		t.Fatal("filters must AND together")
	}
	if !(filterState{}).matches("#anything", "whatever") {
		t.Fatal("empty filter must match everything")
	}
}

func TestCycleTagWrapsThroughProjects(t *testing.T) {
	projects := []model.Project{{Tag: "#work"}, {Tag: "#home"}}
	got := cycleTag("", projects)
	if got != "#work" {
		t.Fatalf("first cycle = %q, want #work", got)
	}
	got = cycleTag("#home", projects)
	if got != "" {
		t.Fatalf("cycle past last = %q, want empty", got)
	}
	if got := cycleTag("#stale", projects); got != "" {
		t.Fatalf("unknown current = %q, want reset to empty", got)
	}
}

func TestMalformedEntityDegradesWithoutSuppressingRow(t *testing.T) {
	row := noteListItem{note: model.Note{ID: 3}}.rowText()
	if !strings.Contains(row, "(no content)") {
		t.Fatalf("row = %q, want placeholder content", row)
	}
	if !strings.Contains(row, model.DefaultProjectTag) {
		t.Fatalf("row = %q, want default tag placeholder", row)
	}

	task := taskListItem{task: model.Task{ID: 4, Subtasks: []model.Subtask{
		{Content: "x", IsCompleted: true}, {Content: "y"},
	}}}
	if !strings.Contains(task.rowText(), "(1/2)") {
		t.Fatalf("task row = %q, want subtask counts", task.rowText())
	}
}

func TestChatSessionIDStableAcrossSends(t *testing.T) {
	m := newTestModel(t)
	session := m.chat.sessionID
	if session == "" {
		t.Fatal("session id must be generated at startup")
	}

	m.pane = paneChat
	m.chat.input.SetValue("hi")
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(appModel)
	if cmd == nil {
		t.Fatal("send should issue a command")
	}
	if m.chat.sessionID != session {
		t.Fatal("session id must not change on send")
	}
	if !m.chat.sending {
		t.Fatal("send must set the in-flight flag")
	}

	// Second enter while in flight is dropped.
	m.chat.input.SetValue("again")
	next, cmd = m.Update(keyMsg("enter"))
	m = next.(appModel)
	if cmd != nil {
		t.Fatal("send while in flight must be a no-op")
	}
}

func TestChatErrorShowsFallbackMessage(t *testing.T) {
	m := newTestModel(t)
	m.chat.sending = true

	next, _ := m.Update(chatReplyMsg{err: errors.New("connection refused")})
	m = next.(appModel)

	if m.chat.sending {
		t.Fatal("reply must clear the in-flight flag")
	}
	last := m.chat.messages[len(m.chat.messages)-1]
	if last.Role != model.RoleAssistant || last.Content != chatFallbackReply {
		t.Fatalf("last message = %+v, want the fallback assistant reply", last)
	}
}

func TestChatHistoryReplayPreservesOrder(t *testing.T) {
	m := newTestModel(t)
	history := []model.ChatMessage{
		{Role: model.RoleUser, Content: "first"},
		{Role: model.RoleAssistant, Content: "second"},
		{Role: model.RoleUser, Content: "third"},
	}
	next, _ := m.Update(chatHistoryMsg{messages: history})
	m = next.(appModel)

	if len(m.chat.messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(m.chat.messages))
	}
	for i, want := range []string{"first", "second", "third"} {
		if m.chat.messages[i].Content != want {
			t.Fatalf("message %d = %q, want %q", i, m.chat.messages[i].Content, want)
		}
	}
}

func TestMutationSuccessClosesModalAndReloads(t *testing.T) {
	m := newTestModel(t)
	m.compose = newComposeState(elementNote)
	m.modal = modalCompose

	next, cmd := m.Update(mutationDoneMsg{action: "note created"})
	m = next.(appModel)

	if m.modal != modalNone || m.compose != nil {
		t.Fatal("successful mutation must close the form")
	}
	if cmd == nil {
		t.Fatal("successful mutation must schedule a full reload")
	}
}

func TestMutationErrorKeepsFormOpen(t *testing.T) {
	m := newTestModel(t)
	m.compose = newComposeState(elementNote)
	m.compose.saving = true
	m.modal = modalCompose

	next, _ := m.Update(mutationDoneMsg{action: "note created", err: errors.New("connection refused")})
	m = next.(appModel)

	if m.modal != modalCompose {
		t.Fatal("failed mutation must leave the form open")
	}
	if m.compose.saving {
		t.Fatal("failed mutation must re-enable save")
	}
	if m.compose.errText == "" {
		t.Fatal("failed mutation must surface the error in the form")
	}
}

func TestElementsLoadedReplacesSnapshot(t *testing.T) {
	m := newTestModel(t)
	m.notes = []model.Note{{ID: 1, Content: "stale"}}

	next, _ := m.Update(elementsLoadedMsg{
		notes: []model.Note{{ID: 2, Content: "fresh"}},
	})
	m = next.(appModel)

	if len(m.notes) != 1 || m.notes[0].ID != 2 {
		t.Fatalf("notes = %+v, want only the fresh snapshot", m.notes)
	}
}

func TestMoveTargetSkipsEmptyOption(t *testing.T) {
	projects := []model.Project{{Tag: "#work"}, {Tag: "#home"}}

	if got := moveTarget("#work", projects); got != "#home" {
		t.Fatalf("moveTarget(#work) = %q, want #home", got)
	}
	// Cycling past the last project wraps to the first; a move target is
	// never the empty "all" option the filter cycle has.
	if got := moveTarget("#home", projects); got != "#work" {
		t.Fatalf("moveTarget(#home) = %q, want wrap to #work", got)
	}
	if got := moveTarget("", projects); got == "" {
		t.Fatal("moveTarget must not yield an empty tag when projects exist")
	}
	if got := moveTarget("#work", nil); got != "" {
		t.Fatalf("moveTarget with no projects = %q, want empty", got)
	}
}

func TestMoveWithoutProjectsIssuesNoCommand(t *testing.T) {
	m := newTestModel(t)
	m.notes = []model.Note{{ID: 1, Content: "a", ProjectTag: "#work"}}
	m.rebuildLists()

	next, cmd := m.Update(keyMsg("m"))
	m = next.(appModel)
	if cmd != nil {
		t.Fatal("move with no projects must not issue a request")
	}
}

func TestTaskCompletionIsDisplayOnly(t *testing.T) {
	m := newTestModel(t)
	m.pane = paneTasks
	m.tasks = []model.Task{{ID: 3, Content: "ship it", ProjectTag: "#work"}}
	m.rebuildLists()

	// No key in the tasks pane writes completion; the update route ignores
	// the field, so a toggle would succeed with 200 and then be contradicted
	// by the reload.
	next, cmd := m.Update(keyMsg(" "))
	m = next.(appModel)
	if cmd != nil {
		t.Fatal("space in the tasks pane must not issue a mutation")
	}
	if m.tasks[0].IsCompleted {
		t.Fatal("completion state must not change locally either")
	}
}

func TestEditTaskKeepsFetchedCompletionState(t *testing.T) {
	e := newEditTaskState(model.Task{ID: 3, Content: "ship it", IsCompleted: true})

	// Tab through every field and back; nothing in the form may flip the
	// fetched completion flag.
	for i := 0; i < len(e.fields())*2; i++ {
		e.cycleFocus(false)
	}
	if !e.taskPayload().IsCompleted {
		t.Fatal("edit payload must carry the fetched completion state unchanged")
	}
}

func TestDraftSubtasksRenderWithoutCheckboxes(t *testing.T) {
	m := newTestModel(t)
	m.compose = newComposeState(elementTask)
	m.compose.subtasks = []draftSubtask{{content: "find wallet"}}
	m.modal = modalCompose

	view := m.viewCompose()
	if !strings.Contains(view, "find wallet") {
		t.Fatal("draft subtask missing from the compose view")
	}
	if strings.Contains(view, "[ ] find wallet") {
		t.Fatal("drafts are content-only; a checkbox implies a state the create call does not send")
	}
}

func TestSettingsFormClampsOnParse(t *testing.T) {
	s := newSettingsState(model.DefaultChatSettings())
	s.temperature.SetValue("9")
	s.maxTokens.SetValue("100000")

	settings, err := s.settings()
	if err != nil {
		t.Fatalf("settings() error = %v", err)
	}
	if settings.Temperature != 2 {
		t.Fatalf("temperature = %v, want clamp to 2", settings.Temperature)
	}
	if settings.MaxTokens != 4096 {
		t.Fatalf("max tokens = %d, want clamp to 4096", settings.MaxTokens)
	}

	s.temperature.SetValue("warm")
	if _, err := s.settings(); err == nil {
		t.Fatal("non-numeric temperature must be rejected")
	}
}
