package api

import (
	"context"

	"rafpad-cli/internal/model"
)

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := c.get(ctx, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}
