package tui

import (
	"strings"

	"rafpad-cli/internal/model"
)

// filterState holds the active project/category filter for one list. Empty
// means "no filter". Notes and tasks are filtered independently.
type filterState struct {
	tag      string
	category string
}

func (f filterState) matches(tag, category string) bool {
	if f.tag != "" && tag != f.tag {
		return false
	}
	if f.category != "" && category != f.category {
		return false
	}
	return true
}

func (f filterState) label() string {
	var parts []string
	if f.tag != "" {
		parts = append(parts, f.tag)
	}
	if f.category != "" {
		parts = append(parts, f.category)
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, " ")
}

func filterNotes(notes []model.Note, f filterState) []model.Note {
	var out []model.Note
	for _, n := range notes {
		if f.matches(n.ProjectTag, n.Category) {
			out = append(out, n)
		}
	}
	return out
}

func filterTasks(tasks []model.Task, f filterState) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if f.matches(t.ProjectTag, t.Category) {
			out = append(out, t)
		}
	}
	return out
}

// cycleTag advances the project filter through "" and the known project
// tags, in order.
func cycleTag(current string, projects []model.Project) string {
	options := []string{""}
	for _, p := range projects {
		if strings.TrimSpace(p.Tag) != "" {
			options = append(options, p.Tag)
		}
	}
	return nextOption(current, options)
}

// cycleCategory advances the category filter through "" and the known
// categories.
func cycleCategory(current string) string {
	options := []string{""}
	for _, c := range model.Categories {
		options = append(options, string(c))
	}
	return nextOption(current, options)
}

// moveTarget picks the next project tag after current for a move. Unlike the
// filter cycle there is no "all" option here: the move endpoint rejects an
// empty project_tag. Returns "" when no projects exist.
func moveTarget(current string, projects []model.Project) string {
	var options []string
	for _, p := range projects {
		if strings.TrimSpace(p.Tag) != "" {
			options = append(options, p.Tag)
		}
	}
	if len(options) == 0 {
		return ""
	}
	return nextOption(current, options)
}

func nextOption(current string, options []string) string {
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	if len(options) == 0 {
		return ""
	}
	return options[0]
}
