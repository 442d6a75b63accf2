// Package sanitize cleans user-supplied content before it is stored.
//
// Lesson bodies may carry the limited markup the editor produces, so they go
// through bluemonday's UGC policy. Comments are plain text and go through the
// strict policy, which strips all markup.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// LessonContent sanitizes a lesson body, allowing user-generated-content
// markup (links, lists, emphasis) and stripping everything else.
func LessonContent(s string) string {
	return strings.TrimSpace(ugc.Sanitize(s))
}

// CommentContent strips all markup and trims the result.
func CommentContent(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// PhotoURL returns the trimmed URL when it carries an http prefix, and the
// empty string otherwise. Anything that is not an http(s) URL is discarded
// rather than rejected, matching how profile photos are treated everywhere
// else in the system.
func PhotoURL(s string) string {
	u := strings.TrimSpace(s)
	if !strings.HasPrefix(u, "http") {
		return ""
	}
	return u
}
