package api

import (
	"context"
	"net/url"

	"rafpad-cli/internal/model"
)

// ChatReply is the response to a chat send. History carries the updated
// server-side log for the session; callers that only need the assistant text
// can ignore it.
type ChatReply struct {
	Response string              `json:"response"`
	History  []model.ChatMessage `json:"history,omitempty"`
}

func (c *Client) SendChat(ctx context.Context, sessionID, message string) (ChatReply, error) {
	body := map[string]string{"message": message, "session_id": sessionID}
	var reply ChatReply
	if err := c.post(ctx, "/api/chat", body, &reply); err != nil {
		return ChatReply{}, err
	}
	return reply, nil
}

func (c *Client) ChatHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	query := url.Values{}
	query.Set("session_id", sessionID)
	var payload struct {
		History []model.ChatMessage `json:"history"`
	}
	if err := c.get(ctx, "/api/chat/history", query, &payload); err != nil {
		return nil, err
	}
	return payload.History, nil
}

func (c *Client) ClearChat(ctx context.Context, sessionID string) error {
	body := map[string]string{"session_id": sessionID}
	return c.post(ctx, "/api/chat/clear", body, nil)
}

// SetChatModel switches the active chat model server-side.
func (c *Client) SetChatModel(ctx context.Context, name string) error {
	body := map[string]string{"model": name}
	return c.put(ctx, "/api/chat/model", body, nil)
}

// SaveChatSettings re-sends the locally cached generation settings.
func (c *Client) SaveChatSettings(ctx context.Context, settings model.ChatSettings) error {
	return c.post(ctx, "/api/chat/settings", settings.Clamp(), nil)
}
