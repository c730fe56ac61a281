package site

import "testing"

func TestSlugify(t *testing.T) {
	var tests = []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"Side Projects", "side-projects"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q): expected %q but got %q", tt.in, tt.want, got)
		}
	}
}
