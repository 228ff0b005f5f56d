package judge

import (
	"strings"
	"testing"

	"github.com/maibot-go/pluginkit/pkg/plugin"
)

func TestBuildPrompt(t *testing.T) {
	out := BuildPrompt("the user asks for the weather", plugin.Message{Text: "what's it like outside?"})

	for _, want := range []string{
		"Activation condition: the user asks for the weather",
		"Message: what's it like outside?",
		"yes or no",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q:\n%s", want, out)
		}
	}
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		answer  string
		verdict bool
		ok      bool
	}{
		{"yes", true, true},
		{"Yes", true, true},
		{"YES.", true, true},
		{" yes\n", true, true},
		{"no", false, true},
		{"No!", false, true},
		{"y", true, true},
		{"n", false, true},
		{"是", true, true},
		{"否", false, true},
		{"yes, the condition holds", true, true},
		{"no - irrelevant", false, true},
		{"maybe", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		verdict, ok := ParseVerdict(tt.answer)
		if verdict != tt.verdict || ok != tt.ok {
			t.Errorf("ParseVerdict(%q) = (%v, %v), want (%v, %v)", tt.answer, verdict, ok, tt.verdict, tt.ok)
		}
	}
}
