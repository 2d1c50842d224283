package command

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// StatsCopiedToClipboardMsg reports the outcome of copying the window
// diagnostics line to the system clipboard.
type StatsCopiedToClipboardMsg struct {
	Stats string
	Err   error
}

// CopyStatsToClipboardCmd copies the window diagnostics line, e.g.
// "window [94, 100) hiddenBefore=2820 ...", to the system clipboard.
func CopyStatsToClipboardCmd(stats string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(stats)
		return StatsCopiedToClipboardMsg{Stats: stats, Err: err}
	}
}
