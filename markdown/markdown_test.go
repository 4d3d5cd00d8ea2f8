package markdown

import (
	"strings"
	"testing"
)

func render(t *testing.T, src string) string {
	t.Helper()
	body, _, err := New().Render([]byte(src))
	if err != nil {
		t.Fatalf("Render(%q) failed: %v", src, err)
	}
	return body
}

func TestRenderBasics(t *testing.T) {
	got := render(t, "# Hello\n\nSome **bold** text with a [link](https://example.com).")
	for _, want := range []string{"Hello", "<strong>bold</strong>", `<a href="https://example.com"`} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered HTML missing %q:\n%s", want, got)
		}
	}
}

func TestRenderRawHTMLPassthrough(t *testing.T) {
	got := render(t, "before\n\n<div class=\"note\">raw</div>\n\nafter")
	if !strings.Contains(got, `<div class="note">raw</div>`) {
		t.Errorf("raw HTML was not passed through:\n%s", got)
	}
}

func TestYouTubeEmbed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		embed string
	}{
		{"watch URL", "[v](https://www.youtube.com/watch?v=abc123)", "https://www.youtube.com/embed/abc123"},
		{"short URL", "[v](https://youtu.be/abc123)", "https://www.youtube.com/embed/abc123"},
		{"id with hyphen and underscore", "[v](https://youtu.be/a_b-C9)", "https://www.youtube.com/embed/a_b-C9"},
		{"bare pasted URL", "https://youtu.be/abc123", "https://www.youtube.com/embed/abc123"},
		{"surrounded by other paragraphs", "intro\n\n[v](https://youtu.be/abc123)\n\noutro", "https://www.youtube.com/embed/abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.input)
			if !strings.Contains(got, `<div class="video-container"><iframe src="`+tt.embed+`"`) {
				t.Errorf("input %q: no embed iframe in output:\n%s", tt.input, got)
			}
			if !strings.Contains(got, "allowfullscreen") {
				t.Errorf("input %q: embed missing allowfullscreen", tt.input)
			}
		})
	}
}

func TestTweetEmbed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		href  string
	}{
		{"twitter.com", "[t](https://twitter.com/someone/status/123456789)", "https://twitter.com/someone/status/123456789"},
		{"x.com", "[t](https://x.com/someone/status/123456789)", "https://x.com/someone/status/123456789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.input)
			if !strings.Contains(got, `<blockquote class="twitter-tweet"><a href="`+tt.href+`"></a></blockquote>`) {
				t.Errorf("input %q: no tweet blockquote in output:\n%s", tt.input, got)
			}
		})
	}
}

func TestEmbedNotRewritten(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"trailing text", "[v](https://youtu.be/abc123) see this"},
		{"leading text", "watch [v](https://youtu.be/abc123)"},
		{"two links", "[a](https://youtu.be/abc123) [b](https://youtu.be/def456)"},
		{"unrelated link", "[site](https://example.com/watch?v=abc123)"},
		{"tweet with text", "[t](https://x.com/someone/status/1) thread"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.input)
			if strings.Contains(got, "video-container") || strings.Contains(got, "twitter-tweet") {
				t.Errorf("input %q was rewritten into an embed:\n%s", tt.input, got)
			}
			if !strings.Contains(got, "<a href=") {
				t.Errorf("input %q: expected an ordinary link:\n%s", tt.input, got)
			}
		})
	}
}

func TestEmbedMatchesFirstProviderOnly(t *testing.T) {
	got := render(t, "[v](https://youtu.be/abc123)")
	if strings.Contains(got, "twitter-tweet") {
		t.Errorf("YouTube link produced a tweet embed:\n%s", got)
	}
	if n := strings.Count(got, "<iframe"); n != 1 {
		t.Errorf("expected exactly one iframe, got %d:\n%s", n, got)
	}
}
