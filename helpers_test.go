package notegen

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"  Already-Slugged  ", "already-slugged"},
		{"C'est l'été!", "c-est-l-t"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"Trailing punctuation!!!", "trailing-punctuation"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		slug  string
		valid bool
	}{
		{"hello-world", true},
		{"a1", true},
		{"2024-notes", true},
		{"", false},
		{"Hello", false},
		{"under_score", false},
		{"spaced out", false},
		{"dotted.name", false},
	}
	for _, tt := range tests {
		if got := IsValidSlug(tt.slug); got != tt.valid {
			t.Errorf("IsValidSlug(%q) = %v, want %v", tt.slug, got, tt.valid)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{"https://example.com", []string{"notes", "a.html"}, "https://example.com/notes/a.html"},
		{"https://example.com/sub", []string{"notes", "a.html"}, "https://example.com/sub/notes/a.html"},
		{"https://example.com", nil, "https://example.com"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.expected {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.expected)
		}
	}
}
