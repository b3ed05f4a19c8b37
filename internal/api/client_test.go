package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func fakeClient(fn roundTripFunc) *Client {
	c := NewClient("http://rafpad.test", 2*time.Second)
	c.HTTP = &http.Client{Transport: fn}
	return c
}

func TestErrorBodyMessageSurfaced(t *testing.T) {
	c := fakeClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, `{"error":"Content cannot be empty"}`), nil
	})
	_, err := c.CreateNote(context.Background(), NotePayload{Content: ""})
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d", apiErr.Status)
	}
	if apiErr.Message != "Content cannot be empty" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestErrorBodyUnparseableFallsBackGeneric(t *testing.T) {
	c := fakeClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, `<html>boom</html>`), nil
	})
	_, err := c.ListNotes(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "" {
		t.Errorf("expected empty message, got %q", apiErr.Message)
	}
	if apiErr.Error() != "api error: status 500" {
		t.Errorf("generic rendering = %q", apiErr.Error())
	}
}

func TestCreateNoteDefaultsProjectTag(t *testing.T) {
	var sent NotePayload
	c := fakeClient(func(r *http.Request) (*http.Response, error) {
		if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		return jsonResponse(http.StatusCreated, `{"id":1,"content":"x","project_tag":"#inbox"}`), nil
	})
	if _, err := c.CreateNote(context.Background(), NotePayload{Content: "x"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if sent.ProjectTag != "#inbox" {
		t.Errorf("project_tag = %q, want #inbox", sent.ProjectTag)
	}
}

func TestCreateTaskDefaultsPriority(t *testing.T) {
	var sent TaskPayload
	c := fakeClient(func(r *http.Request) (*http.Response, error) {
		if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		return jsonResponse(http.StatusCreated, `{"id":1,"content":"x","project_tag":"#inbox"}`), nil
	})
	payload := TaskPayload{Content: "x", Subtasks: []SubtaskPayload{{Content: "a"}, {Content: "b", IsCompleted: true}}}
	if _, err := c.CreateTask(context.Background(), payload); err != nil {
		t.Fatalf("create: %v", err)
	}
	if sent.Priority != "medium" {
		t.Errorf("priority = %q, want medium", sent.Priority)
	}
	if len(sent.Subtasks) != 2 || sent.Subtasks[1].Content != "b" || !sent.Subtasks[1].IsCompleted {
		t.Errorf("subtasks not preserved: %+v", sent.Subtasks)
	}
}

func TestChatSessionScoping(t *testing.T) {
	var gotPath, gotQuery string
	var gotBody map[string]string
	c := fakeClient(func(r *http.Request) (*http.Response, error) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("session_id")
		if r.Body != nil && r.Method == http.MethodPost {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
		}
		switch r.URL.Path {
		case "/api/chat":
			return jsonResponse(http.StatusOK, `{"response":"hi","history":[{"role":"user","content":"hello"},{"role":"assistant","content":"hi"}]}`), nil
		default:
			return jsonResponse(http.StatusOK, `{"history":[]}`), nil
		}
	})

	reply, err := c.SendChat(context.Background(), "sess-1", "hello")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply.Response != "hi" {
		t.Errorf("response = %q", reply.Response)
	}
	if len(reply.History) != 2 || reply.History[0].Role != "user" {
		t.Errorf("history = %+v", reply.History)
	}
	if gotBody["session_id"] != "sess-1" {
		t.Errorf("send body session_id = %q", gotBody["session_id"])
	}

	if _, err := c.ChatHistory(context.Background(), "sess-1"); err != nil {
		t.Fatalf("history: %v", err)
	}
	if gotPath != "/api/chat/history" || gotQuery != "sess-1" {
		t.Errorf("history request path=%q session_id=%q", gotPath, gotQuery)
	}
}

func TestDeleteIssuesNoBody(t *testing.T) {
	c := fakeClient(func(r *http.Request) (*http.Response, error) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/tasks/7" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{"message":"tasks soft deleted successfully"}`), nil
	})
	if err := c.DeleteTask(context.Background(), 7); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
