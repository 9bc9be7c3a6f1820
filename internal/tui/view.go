package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/folio/internal/core/config"
	"github.com/hay-kot/folio/internal/core/stack"
	"github.com/hay-kot/folio/internal/core/styles"
)

const headlineCursor = "▌"

// View renders the panel stack above a one-line footer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	body := m.renderBody(m.bodyHeight())
	if m.showHelp {
		body = overlayBottom(body, m.help.View(m.keys))
	}

	return strings.Join(append(body, m.renderFooter()), "\n")
}

// renderBody composes the panels row by row. Higher indices slide over lower
// ones, so each row shows the highest panel whose offset covers it.
func (m Model) renderBody(h int) []string {
	out := make([]string, h)
	cache := make(map[int][]string)

	for r := range h {
		for i := m.stack.Len() - 1; i >= 0; i-- {
			v := m.anim.Visual(i)
			off := int(math.Round(v.Offset * float64(h)))
			if r < off || r >= off+h {
				continue
			}

			lines, ok := cache[i]
			if !ok {
				lines = m.panelLines(i, h, v)
				cache[i] = lines
			}
			out[r] = lines[r-off]
			break
		}
	}

	return out
}

// panelLines renders panel i as exactly h lines with its visual treatment applied.
func (m Model) panelLines(i, h int, v stack.Visual) []string {
	lines := make([]string, 0, h)
	lines = append(lines, m.panelTitle(i))
	if h > 1 {
		lines = append(lines, strings.Split(m.panels.View(i), "\n")...)
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	lines = lines[:h]

	margin := int(math.Round((1 - v.Scale) * float64(m.width) / 2))
	dim := v.Dim >= stack.DimLevel/2

	for j, line := range lines {
		if dim {
			line = styles.PanelDimStyle.Render(ansi.Strip(line))
		}
		if margin > 0 {
			line = strings.Repeat(" ", margin) + ansi.Truncate(line, max(m.width-2*margin, 0), "")
		}
		lines[j] = line
	}

	return lines
}

func (m Model) panelTitle(i int) string {
	if i == 0 && m.cfg.TUI.Headline != "" {
		title := styles.HeadlineStyle.Render(m.headline.View())
		if !m.headline.Done() {
			title += styles.CursorStyle.Render(headlineCursor)
		}
		return " " + title
	}
	return styles.PanelTitleStyle.Render(m.panels.Title(i))
}

func (m Model) renderFooter() string {
	total := m.stack.Len()
	data := config.FooterData{
		Title:    m.crumb.title,
		Index:    m.crumb.index,
		Position: m.crumb.index + 1,
		Total:    total,
	}

	text, err := m.footer.Render(data)
	if err != nil {
		text = data.Title
	}

	var dots strings.Builder
	for i := range total {
		if i == m.crumb.index {
			dots.WriteString("●")
		} else {
			dots.WriteString("·")
		}
	}

	left := styles.BreadcrumbStyle.Render(text) + " " + styles.ProgressStyle.Render(dots.String())

	right := m.toasts.View()
	if right == "" && !m.showHelp {
		right = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if right == "" || gap < 1 {
		return styles.FooterStyle.Render(left)
	}
	return styles.FooterStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// overlayBottom replaces the last rows of body with overlay.
func overlayBottom(body []string, overlay string) []string {
	rows := strings.Split(overlay, "\n")
	start := max(len(body)-len(rows), 0)
	for i := start; i < len(body); i++ {
		body[i] = rows[i-start]
	}
	return body
}
