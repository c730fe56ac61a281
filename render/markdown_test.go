package render

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	var tests = []struct {
		name string
		in   string
		want string
	}{
		{"paragraph", "hello", "<p>hello</p>"},
		{"heading", "# Hi", ">Hi</h1>"},
		{"emphasis", "some *emphasis* here", "<em>emphasis</em>"},
		{"link", "[go](https://go.dev)", `<a href="https://go.dev">go</a>`},
		{"gfm table", "| a | b |\n|---|---|\n| 1 | 2 |", "<table>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Markdown([]byte(tt.in))
			if err != nil {
				t.Fatalf("Markdown: %v", err)
			}
			if !strings.Contains(string(got), tt.want) {
				t.Errorf("Expected output to contain %q but got %q", tt.want, got)
			}
		})
	}
}
