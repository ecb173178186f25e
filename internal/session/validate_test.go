package session

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	long := strings.Repeat("a", 64)
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"main", false},
		{"work-2", false},
		{"my_session", false},
		{"a", false},
		{long, false},
		{long + "a", true},
		{"", true},
		{"Main", true},
		{"my session", true},
		{"my.session", true},
		{"../etc", true},
	}
	for _, tt := range tests {
		err := ValidateName(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidName) {
			t.Errorf("ValidateName(%q) should wrap ErrInvalidName", tt.input)
		}
	}
}

func TestSuggest(t *testing.T) {
	tests := map[string]string{
		"Main":          "main",
		"  My Session ": "my-session",
		"../etc":        "etc",
		"a.b@c":         "a-b-c",
		"!!!":           "",
	}
	for in, want := range tests {
		if got := Suggest(in); got != want {
			t.Errorf("Suggest(%q) = %q, want %q", in, got, want)
		}
	}

	err := ValidateName("Work")
	if err == nil || !strings.Contains(err.Error(), `try "work"`) {
		t.Errorf("ValidateName(Work) = %v, want a suggestion", err)
	}
}
