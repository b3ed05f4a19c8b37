package model

import "testing"

func TestFormatProjectTag(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"\t\n", ""},
		{"work", "#work"},
		{"#work", "#work"},
		{"my, tag", "#mytag"},
		{" spaced out ", "#spacedout"},
		{"#already,clean", "#alreadyclean"},
	}
	for _, c := range cases {
		if got := FormatProjectTag(c.in); got != c.want {
			t.Errorf("FormatProjectTag(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatProjectTagIdempotent(t *testing.T) {
	inputs := []string{"", "  ", "work", "#work", "my, tag", "a b c", "#x"}
	for _, in := range inputs {
		once := FormatProjectTag(in)
		twice := FormatProjectTag(once)
		if once != twice {
			t.Errorf("FormatProjectTag not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestTagOrDefault(t *testing.T) {
	if got := TagOrDefault(""); got != DefaultProjectTag {
		t.Errorf("TagOrDefault(\"\") = %q, want %q", got, DefaultProjectTag)
	}
	if got := TagOrDefault("  "); got != DefaultProjectTag {
		t.Errorf("TagOrDefault(blank) = %q, want %q", got, DefaultProjectTag)
	}
	if got := TagOrDefault("#work"); got != "#work" {
		t.Errorf("TagOrDefault(#work) = %q", got)
	}
}
