package sanitize

import (
	"strings"
	"testing"
)

func TestCommentContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "great lesson", "great lesson"},
		{"trims whitespace", "  thanks  ", "thanks"},
		{"strips script", `<script>alert("x")</script>hello`, "hello"},
		{"strips tags", "<b>bold</b> words", "bold words"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommentContent(tt.input); got != tt.want {
				t.Errorf("CommentContent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLessonContent_KeepsUGCMarkup(t *testing.T) {
	in := `<p>Listen <a href="https://example.com" rel="nofollow">here</a></p><script>bad()</script>`
	got := LessonContent(in)
	if got == "" {
		t.Fatal("expected sanitized content, got empty string")
	}
	if strings.Contains(got, "script") {
		t.Errorf("expected sanitizer to strip script, got %q", got)
	}
	if !strings.Contains(got, "<p>") {
		t.Errorf("expected UGC policy to keep paragraph markup, got %q", got)
	}
}

func TestPhotoURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://img.example.com/a.png", "https://img.example.com/a.png"},
		{"http://img.example.com/a.png", "http://img.example.com/a.png"},
		{"  https://img.example.com/a.png  ", "https://img.example.com/a.png"},
		{"javascript:alert(1)", ""},
		{"ftp://example.com/a.png", ""},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := PhotoURL(tt.input); got != tt.want {
				t.Errorf("PhotoURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
