package journal

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts entry content to sanitized HTML for display.
type Renderer struct {
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewRenderer builds the markdown pipeline with the UGC sanitization
// policy, so user content cannot inject script into the frontend.
func NewRenderer() *Renderer {
	return &Renderer{
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy:   bluemonday.UGCPolicy(),
	}
}

// Render returns sanitized HTML for the entry. Markdown entries run
// through goldmark; plain entries are escaped and wrapped per paragraph.
func (r *Renderer) Render(e *JournalEntry) (string, error) {
	if e.ContentFormat == FormatMarkdown {
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(e.Content), &buf); err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		return r.policy.Sanitize(buf.String()), nil
	}

	var sb strings.Builder
	for _, paragraph := range strings.Split(e.Content, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		sb.WriteString("<p>")
		sb.WriteString(html.EscapeString(paragraph))
		sb.WriteString("</p>\n")
	}
	return sb.String(), nil
}
