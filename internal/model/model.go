package model

// Wire shapes as transmitted over the rafpad API boundary. The client never
// persists notes or tasks; the server response is the source of truth.

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
)

// Categories lists the selectable categories in form order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryStudy}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// DefaultProjectTag is substituted at save time when the tag field is empty.
const DefaultProjectTag = "#inbox"

// MaxContentLen mirrors the server-side content cap.
const MaxContentLen = 5000

type Note struct {
	ID         int       `json:"id"`
	Content    string    `json:"content"`
	Category   string    `json:"category,omitempty"`
	ProjectTag string    `json:"project_tag"`
	CreatedAt  Timestamp `json:"created_at"`
	UpdatedAt  Timestamp `json:"updated_at,omitempty"`
}

type Task struct {
	ID          int        `json:"id"`
	Content     string     `json:"content"`
	Category    string     `json:"category,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Deadline    *Timestamp `json:"deadline,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	ProjectTag  string     `json:"project_tag"`
	Subtasks    []Subtask  `json:"subtasks,omitempty"`
	CreatedAt   Timestamp  `json:"created_at"`
	UpdatedAt   Timestamp  `json:"updated_at,omitempty"`
}

type Subtask struct {
	ID          int    `json:"id,omitempty"`
	Content     string `json:"content"`
	IsCompleted bool   `json:"is_completed"`
}

type Project struct {
	ID   int    `json:"id"`
	Tag  string `json:"tag"`
	Name string `json:"name,omitempty"`
}

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
	RoleSystem    ChatRole = "system"
)

type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp Timestamp `json:"timestamp,omitempty"`
}

// ChatSettings are cached locally under a single key and re-sent to the
// server on save. Temperature is clamped to [0,2], MaxTokens to [1,4096].
type ChatSettings struct {
	Temperature    float64 `json:"temperature"`
	MaxTokens      int     `json:"maxTokens"`
	UserIdentity   string  `json:"userIdentity,omitempty"`
	ResponseTone   string  `json:"responseTone,omitempty"`
	LLMSubjectArea string  `json:"llmSubjectArea,omitempty"`
}

func DefaultChatSettings() ChatSettings {
	return ChatSettings{Temperature: 0.7, MaxTokens: 512}
}

// Clamp normalizes the numeric fields into their valid ranges.
func (s ChatSettings) Clamp() ChatSettings {
	if s.Temperature < 0 {
		s.Temperature = 0
	}
	if s.Temperature > 2 {
		s.Temperature = 2
	}
	if s.MaxTokens < 1 {
		s.MaxTokens = 1
	}
	if s.MaxTokens > 4096 {
		s.MaxTokens = 4096
	}
	return s
}
