package tui

import (
	"fmt"
	"strconv"
	"strings"

	"rafpad-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Chat settings live in two places: the local settings store (so they
// survive restarts) and the server (which applies them to the assistant).
// Saving writes both. Out-of-range numbers are clamped, not rejected.

type settingsState struct {
	temperature textinput.Model
	maxTokens   textinput.Model
	identity    textinput.Model
	tone        textinput.Model
	subjectArea textinput.Model

	focus   int // index into inputs()
	saving  bool
	errText string
}

func newSettingsState(s model.ChatSettings) *settingsState {
	st := &settingsState{}

	st.temperature = textinput.New()
	st.temperature.SetValue(strconv.FormatFloat(s.Temperature, 'f', -1, 64))
	st.temperature.CharLimit = 6
	st.temperature.Width = 8

	st.maxTokens = textinput.New()
	st.maxTokens.SetValue(strconv.Itoa(s.MaxTokens))
	st.maxTokens.CharLimit = 6
	st.maxTokens.Width = 8

	st.identity = textinput.New()
	st.identity.SetValue(s.UserIdentity)
	st.identity.CharLimit = 200
	st.identity.Width = 40

	st.tone = textinput.New()
	st.tone.SetValue(s.ResponseTone)
	st.tone.CharLimit = 100
	st.tone.Width = 40

	st.subjectArea = textinput.New()
	st.subjectArea.SetValue(s.LLMSubjectArea)
	st.subjectArea.CharLimit = 100
	st.subjectArea.Width = 40

	st.temperature.Focus()
	return st
}

func (s *settingsState) inputs() []*textinput.Model {
	return []*textinput.Model{&s.temperature, &s.maxTokens, &s.identity, &s.tone, &s.subjectArea}
}

func (s *settingsState) cycleFocus(backwards bool) {
	inputs := s.inputs()
	inputs[s.focus].Blur()
	if backwards {
		s.focus = (s.focus - 1 + len(inputs)) % len(inputs)
	} else {
		s.focus = (s.focus + 1) % len(inputs)
	}
	inputs[s.focus].Focus()
}

// settings parses the form into a clamped ChatSettings. Unparseable numbers
// are an error; out-of-range ones are clamped silently.
func (s *settingsState) settings() (model.ChatSettings, error) {
	out := model.DefaultChatSettings()

	if v := strings.TrimSpace(s.temperature.Value()); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return out, fmt.Errorf("temperature must be a number")
		}
		out.Temperature = t
	}
	if v := strings.TrimSpace(s.maxTokens.Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return out, fmt.Errorf("max tokens must be a whole number")
		}
		out.MaxTokens = n
	}
	out.UserIdentity = strings.TrimSpace(s.identity.Value())
	out.ResponseTone = strings.TrimSpace(s.tone.Value())
	out.LLMSubjectArea = strings.TrimSpace(s.subjectArea.Value())
	return out.Clamp(), nil
}

func (m appModel) updateChatSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := m.settingsForm
	if s == nil {
		m.modal = modalNone
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+g":
			m.modal = modalNone
			m.settingsForm = nil
			return m, nil
		case "tab", "enter":
			s.cycleFocus(false)
			return m, nil
		case "shift+tab":
			s.cycleFocus(true)
			return m, nil
		case "ctrl+s":
			if s.saving {
				return m, nil
			}
			settings, err := s.settings()
			if err != nil {
				s.errText = err.Error()
				return m, nil
			}
			s.errText = ""
			s.saving = true
			m.chatSettings = settings
			return m, m.saveChatSettingsCmd(settings)
		}
	}

	var cmd tea.Cmd
	inputs := s.inputs()
	*inputs[s.focus], cmd = inputs[s.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewChatSettings() string {
	s := m.settingsForm
	if s == nil {
		return ""
	}

	label := func(i int, text string) string {
		if s.focus == i {
			return lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(text)
		}
		return styleMuted().Render(text)
	}

	var b strings.Builder
	b.WriteString(label(0, "Temperature (0–2)") + "  " + s.temperature.View() + "\n")
	b.WriteString(label(1, "Max tokens (1–4096)") + "  " + s.maxTokens.View() + "\n")
	b.WriteString(label(2, "Who you are") + "  " + s.identity.View() + "\n")
	b.WriteString(label(3, "Response tone") + "  " + s.tone.View() + "\n")
	b.WriteString(label(4, "Subject area") + "  " + s.subjectArea.View() + "\n")

	if s.errText != "" {
		b.WriteString("\n" + styleError().Render(s.errText))
	}
	if s.saving {
		b.WriteString("\n" + styleMuted().Render("saving…"))
	} else {
		b.WriteString("\n" + styleMuted().Render("tab: next field   ctrl+s: save   esc: cancel"))
	}

	return renderModalBox(m.width, "Chat settings", b.String())
}

// modelState is the one-line prompt for switching the assistant model.
type modelState struct {
	input  textinput.Model
	saving bool
}

func newModelState(current string) *modelState {
	s := &modelState{}
	s.input = textinput.New()
	s.input.Placeholder = "model name"
	s.input.SetValue(current)
	s.input.CharLimit = 100
	s.input.Width = 40
	s.input.Focus()
	return s
}

func (m appModel) updateChatModel(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := m.modelForm
	if s == nil {
		m.modal = modalNone
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+g":
			m.modal = modalNone
			m.modelForm = nil
			return m, nil
		case "enter":
			if s.saving {
				return m, nil
			}
			name := strings.TrimSpace(s.input.Value())
			if name == "" {
				return m, nil
			}
			s.saving = true
			return m, m.setChatModelCmd(name)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return m, cmd
}

func (m appModel) viewChatModel() string {
	s := m.modelForm
	if s == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(s.input.View() + "\n")
	if s.saving {
		b.WriteString("\n" + styleMuted().Render("switching…"))
	} else {
		b.WriteString("\n" + styleMuted().Render("enter: switch   esc: cancel"))
	}
	return renderModalBox(m.width, "Assistant model", b.String())
}
