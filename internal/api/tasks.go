package api

import (
	"context"
	"fmt"

	"rafpad-cli/internal/model"
)

type SubtaskPayload struct {
	Content     string `json:"content"`
	IsCompleted bool   `json:"is_completed"`
}

// TaskPayload is the create/update shape for a task. Deadline is an ISO date
// string ("2006-01-02") or empty.
type TaskPayload struct {
	Content     string           `json:"content"`
	Category    string           `json:"category,omitempty"`
	Priority    string           `json:"priority,omitempty"`
	Deadline    string           `json:"deadline,omitempty"`
	IsCompleted bool             `json:"is_completed"`
	ProjectTag  string           `json:"project_tag"`
	Subtasks    []SubtaskPayload `json:"subtasks,omitempty"`
}

func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.get(ctx, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id int) (model.Task, error) {
	var task model.Task
	if err := c.get(ctx, fmt.Sprintf("/api/tasks/%d", id), nil, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (c *Client) CreateTask(ctx context.Context, p TaskPayload) (model.Task, error) {
	p.ProjectTag = model.TagOrDefault(p.ProjectTag)
	if p.Priority == "" {
		p.Priority = string(model.PriorityMedium)
	}
	var task model.Task
	if err := c.post(ctx, "/api/tasks", p, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int, p TaskPayload) (model.Task, error) {
	p.ProjectTag = model.TagOrDefault(p.ProjectTag)
	var task model.Task
	if err := c.put(ctx, fmt.Sprintf("/api/tasks/%d", id), p, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/tasks/%d", id))
}

// MoveTask reassigns a task to another project by tag.
func (c *Client) MoveTask(ctx context.Context, id int, projectTag string) (model.Task, error) {
	var task model.Task
	body := map[string]string{"project_tag": projectTag}
	if err := c.patch(ctx, fmt.Sprintf("/api/tasks/%d/move", id), body, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}
