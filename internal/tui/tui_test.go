package tui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPromptConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got := PromptConfirm(strings.NewReader(tt.input), &out, "Overwrite .env?")
			if got != tt.want {
				t.Errorf("PromptConfirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if out.String() != "Overwrite .env? [y/N]: " {
				t.Errorf("unexpected prompt %q", out.String())
			}
		})
	}
}

func TestRender_PlainWhenNotStyled(t *testing.T) {
	if got := Render(false, SuccessStyle, "Found files:"); got != "Found files:" {
		t.Errorf("Render(false) = %q", got)
	}
	if got := Render(true, SuccessStyle, "Found files:"); !strings.Contains(got, "Found files:") {
		t.Errorf("Render(true) lost text: %q", got)
	}
}

func TestFormKeyMap_HelpText(t *testing.T) {
	if !strings.Contains(DefaultFormKeyMap().HelpText(), "esc cancel") {
		t.Error("help text should mention cancel")
	}
}
