package main

import (
	"strings"
	"testing"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
)

func TestSettingsPatch(t *testing.T) {
	patch, err := settingsPatch([]string{"sound=false", "fontSize=large", "background=#EEEEEE"})
	if err != nil {
		t.Fatal(err)
	}
	if patch.SoundEnabled == nil || patch.SoundEnabled.GetValue() {
		t.Error("sound should be set to false")
	}
	if patch.FontSize.GetValue() != "large" {
		t.Errorf("FontSize = %v", patch.FontSize)
	}
	if patch.ChatBackgroundColor.GetValue() != "#EEEEEE" {
		t.Errorf("ChatBackgroundColor = %v", patch.ChatBackgroundColor)
	}
	if patch.NotificationsEnabled != nil || patch.Language != nil {
		t.Error("untouched fields should stay nil")
	}
}

func TestSettingsPatchErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"empty", nil},
		{"no equals", []string{"sound"}},
		{"empty key", []string{"=true"}},
		{"bad bool", []string{"notifications=maybe"}},
		{"unknown", []string{"volume=11"}},
	}
	for _, tt := range tests {
		if _, err := settingsPatch(tt.args); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestApplyProfile(t *testing.T) {
	base := &baatchitv1.Profile{Name: "Afaq Ul Islam", Email: "afaq@example.com", Phone: "123"}

	got, err := applyProfile(base, []string{"status=Busy", "Bio=Gopher at heart", "email=x=y@z.io"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != "Busy" || got.Bio != "Gopher at heart" || got.Email != "x=y@z.io" {
		t.Errorf("applyProfile() = %v", got)
	}
	if got.Name != base.Name {
		t.Error("unset fields should be kept")
	}
	if base.Status != "" {
		t.Error("base profile should not be modified")
	}

	if _, err := applyProfile(base, []string{"age=3"}); err == nil {
		t.Error("unknown field should fail")
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	err := fieldErrors{"phone": "Phone number is required", "email": "Please enter a valid email"}
	want := "profile rejected: email: Please enter a valid email; phone: Phone number is required"
	if err.Error() != want {
		t.Errorf("Error() = %q", err.Error())
	}
	if !strings.Contains(usageError("fav <chat-id>").Error(), "baatchitctl fav") {
		t.Error("usage error should name the binary")
	}
}
