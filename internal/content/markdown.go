package content

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const minWrapWidth = 20

// Markdown renders markdown for a terminal of a given width.
type Markdown struct {
	style string
	width int
	r     *glamour.TermRenderer
}

// NewMarkdown returns a renderer using the named glamour standard style.
func NewMarkdown(style string) *Markdown {
	return &Markdown{style: style}
}

// Render renders md wrapped to width. The underlying renderer is rebuilt
// only when the width changes.
func (m *Markdown) Render(md string, width int) (string, error) {
	width = max(width, minWrapWidth)
	if m.r == nil || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath(m.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		m.r = r
		m.width = width
	}

	out, err := m.r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
