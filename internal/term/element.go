// Package term adapts the list engine to a terminal host: elements are blocks
// of text whose height is their row count at the current terminal width, and
// the resize-observation capability fires when a width change re-wraps an
// observed element to a different row count.
package term

import (
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// Element is one rendered list item. Its identity is fixed at creation; its
// content may be re-wrapped to any width.
type Element struct {
	id      string
	content string
}

func NewElement(content string) *Element {
	return &Element{
		id:      uuid.New().String(),
		content: content,
	}
}

func (e *Element) ID() string {
	return e.id
}

func (e *Element) Content() string {
	return e.content
}

// Lines returns the element's content wrapped to width terminal columns.
// Unbreakable tokens wider than the viewport are hard-truncated so one item
// can never overflow horizontally.
func (e *Element) Lines(width int) []string {
	if width <= 0 {
		return nil
	}
	wrapped := wordwrap.String(e.content, width)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		if runewidth.StringWidth(lines[i]) > width {
			lines[i] = runewidth.Truncate(lines[i], width, "…")
		}
	}
	return lines
}

// HeightAt measures the element's content height in rows at the given width.
func (e *Element) HeightAt(width int) float64 {
	return float64(len(e.Lines(width)))
}
