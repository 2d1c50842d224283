package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/WorldSEnder/virtlist/internal/style"
)

func (m Model) renderView() string {
	topBar := m.renderTopBar()
	contentLines := m.visibleContentLines()
	contentHeight := m.host.ClientHeight()

	var b strings.Builder
	b.WriteString(topBar)
	b.WriteString("\n")
	for i := 0; i < contentHeight; i++ {
		if i < len(contentLines) {
			b.WriteString(contentLines[i])
		}
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) renderTopBar() string {
	title := runewidth.Truncate(fmt.Sprintf("virtlist %s", m.config.Version), m.width, "…")
	help := "↓/↑ scroll · d/u half page · f/b page · g/G top/bottom · y copy · s save · q quit"
	help = runewidth.Truncate(help, m.width, "…")
	return style.ItemLabel.Render(title) + "\n" + style.Footer.Render(help)
}

// visibleContentLines maps the window's materialized items onto the rows of
// the content area. The rows of the leading spacer plus the materialized rows
// above the scroll offset are skipped, so the first returned line is the row
// at the current scroll position.
func (m Model) visibleContentLines() []string {
	if m.list == nil || m.width <= 0 {
		return nil
	}
	plan := m.list.Plan()
	contentHeight := m.host.ClientHeight()

	// rows of materialized items hidden above the viewport
	skip := m.list.ScrollOffset() - int(plan.HiddenBefore)
	if skip < 0 {
		skip = 0
	}

	var visible []string
	for _, item := range plan.Items {
		content := item.Content
		el := m.cache.Get(item.Position, func() string { return content })
		for _, line := range el.Lines(m.width) {
			if skip > 0 {
				skip--
				continue
			}
			visible = append(visible, line)
			if len(visible) == contentHeight {
				return visible
			}
		}
	}
	return visible
}

func (m Model) renderFooter() string {
	footer := style.Footer.Render(runewidth.Truncate(m.scrollPercentage(), m.width, "…"))
	if toastView := m.toast.View(); toastView != "" {
		return footer + "  " + toastView
	}
	return footer
}

func (m Model) scrollPercentage() string {
	if m.list == nil {
		return ""
	}
	total := int(m.list.TotalHeight())
	if total == 0 {
		return "0% (0/0)"
	}
	bottomRow := min(total, m.list.ScrollOffset()+m.host.ClientHeight())
	percentScrolled := int(float32(bottomRow) / float32(total) * 100)
	return fmt.Sprintf("%d%% (%d/%d rows)", percentScrolled, bottomRow, total)
}
