package api

import (
	"context"
	"fmt"

	"rafpad-cli/internal/model"
)

// NotePayload is the create/update shape for a note. ProjectTag must be in
// canonical "#tag" form (or defaulted) by the time it reaches the API.
type NotePayload struct {
	Content    string `json:"content"`
	Category   string `json:"category,omitempty"`
	ProjectTag string `json:"project_tag"`
}

func (c *Client) ListNotes(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if err := c.get(ctx, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, id int) (model.Note, error) {
	var note model.Note
	if err := c.get(ctx, fmt.Sprintf("/api/notes/%d", id), nil, &note); err != nil {
		return model.Note{}, err
	}
	return note, nil
}

func (c *Client) CreateNote(ctx context.Context, p NotePayload) (model.Note, error) {
	p.ProjectTag = model.TagOrDefault(p.ProjectTag)
	var note model.Note
	if err := c.post(ctx, "/api/notes", p, &note); err != nil {
		return model.Note{}, err
	}
	return note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id int, p NotePayload) (model.Note, error) {
	p.ProjectTag = model.TagOrDefault(p.ProjectTag)
	var note model.Note
	if err := c.put(ctx, fmt.Sprintf("/api/notes/%d", id), p, &note); err != nil {
		return model.Note{}, err
	}
	return note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/notes/%d", id))
}

// MoveNote reassigns a note to another project by tag.
func (c *Client) MoveNote(ctx context.Context, id int, projectTag string) (model.Note, error) {
	var note model.Note
	body := map[string]string{"project_tag": projectTag}
	if err := c.patch(ctx, fmt.Sprintf("/api/notes/%d/move", id), body, &note); err != nil {
		return model.Note{}, err
	}
	return note, nil
}
