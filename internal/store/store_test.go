package store

import (
	"context"
	"testing"

	"rafpad-cli/internal/model"
)

func TestLoadChatSettingsDefaultsWhenEmpty(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	got, err := s.LoadChatSettings(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := model.DefaultChatSettings()
	if got != want {
		t.Errorf("got %+v, want defaults %+v", got, want)
	}
}

func TestSaveLoadChatSettingsRoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	in := model.ChatSettings{
		Temperature:    1.3,
		MaxTokens:      1024,
		UserIdentity:   "night owl",
		ResponseTone:   "dry",
		LLMSubjectArea: "planning",
	}
	if err := s.SaveChatSettings(context.Background(), in); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadChatSettings(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, in)
	}
}

func TestSaveClampsRanges(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	in := model.ChatSettings{Temperature: 9, MaxTokens: 100000}
	if err := s.SaveChatSettings(context.Background(), in); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadChatSettings(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Temperature != 2 || got.MaxTokens != 4096 {
		t.Errorf("expected clamped values, got %+v", got)
	}
}
