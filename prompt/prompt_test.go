package prompt

import (
	"testing"

	"github.com/birmacher/ai-agent/llm"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"two words", []string{"hello", "world"}, "hello world"},
		{"single", []string{"hi"}, "hi"},
		{"quoted argument kept", []string{"what is", "go?"}, "what is go?"},
		{"empty argument", []string{"a", "", "b"}, "a  b"},
		{"none", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Build(tt.args); got != tt.want {
				t.Errorf("Build(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestIsVerbose(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"hello --verbose", true},
		{"--verbose", true},
		{"fooverbose--verbosebar", true},
		{"hello -verbose", false},
		{"hello --Verbose", false},
		{"verbose", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsVerbose(tt.text); got != tt.want {
			t.Errorf("IsVerbose(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestConversation(t *testing.T) {
	messages := Conversation("hello world")

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}

	want := llm.Message{Role: "user", Content: "hello world"}
	if messages[0] != want {
		t.Errorf("Expected %+v, got %+v", want, messages[0])
	}
}
