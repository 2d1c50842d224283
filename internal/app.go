package internal

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/WorldSEnder/virtlist/internal/command"
	"github.com/WorldSEnder/virtlist/internal/constants"
	"github.com/WorldSEnder/virtlist/internal/dev"
	"github.com/WorldSEnder/virtlist/internal/fileio"
	"github.com/WorldSEnder/virtlist/internal/fixtures"
	"github.com/WorldSEnder/virtlist/internal/keymap"
	"github.com/WorldSEnder/virtlist/internal/message"
	"github.com/WorldSEnder/virtlist/internal/sampler"
	"github.com/WorldSEnder/virtlist/internal/style"
	"github.com/WorldSEnder/virtlist/internal/term"
	"github.com/WorldSEnder/virtlist/internal/toast"
	"github.com/WorldSEnder/virtlist/internal/util"
	"github.com/WorldSEnder/virtlist/internal/vlist"
)

// hostElement is the scroll container: the content rows between the top bar
// and the footer.
type hostElement struct {
	contentHeight int
}

func (h hostElement) ClientHeight() int {
	return h.contentHeight
}

type Model struct {
	config        Config
	keyMap        keymap.KeyMap
	width, height int
	initialized   bool
	list          *vlist.Model[string]
	observer      *term.WidthObserver
	cache         *term.ElementCache
	host          hostElement
	toast         toast.Model
	err           error
	topBarHeight  int // assumed constant
}

func InitialModel(c Config) Model {
	return Model{
		config:       c,
		keyMap:       c.KeyMap,
		cache:        term.NewElementCache(),
		topBarHeight: 2,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	dev.DebugMsg("App", msg)
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Quit) {
			if m.list != nil {
				m.list.Unmount()
			}
			return m, tea.Quit
		}
		return m.handleKeyMsg(msg)

	// WindowSizeMsg arrives once on startup, then again every time the terminal is resized
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg.Width, msg.Height)

	case message.ScrollMsg, sampler.TickMsg:
		if m.list != nil {
			cmd = m.list.Update(msg)
			cmds = append(cmds, cmd)
		}

	case message.RecomputeMsg:
		if m.list != nil {
			cmd = m.list.Update(msg)
			cmds = append(cmds, cmd)
			cmds = append(cmds, m.syncMaterialized())
		}

	case command.StatsCopiedToClipboardMsg:
		if msg.Err != nil {
			m.toast = toast.New(fmt.Sprintf("error copying: %s", msg.Err))
		} else {
			m.toast = toast.New("copied window stats to clipboard")
		}
		m.toast.MessageStyle = style.Toast
		cmds = append(cmds, m.toastTimeoutCmd(m.toast.ID))

	case fileio.SaveCompleteMsg:
		if msg.ErrMessage != "" {
			m.toast = toast.New(msg.ErrMessage)
		} else {
			m.toast = toast.New(msg.SuccessMessage)
		}
		m.toast.MessageStyle = style.Toast
		cmds = append(cmds, m.toastTimeoutCmd(m.toast.ID))

	case toast.TimeoutMsg:
		m.toast, cmd = m.toast.Update(msg)
		cmds = append(cmds, cmd)

	case message.ErrMsg:
		m.err = msg.Err
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if !m.initialized {
		return "initializing..."
	}
	if m.err != nil {
		return fmt.Sprintf("error: %v", m.err)
	}
	return m.renderView()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.list == nil {
		return m, nil
	}
	contentHeight := m.host.ClientHeight()

	switch {
	case key.Matches(msg, m.keyMap.Down):
		return m.scrollBy(1)
	case key.Matches(msg, m.keyMap.Up):
		return m.scrollBy(-1)
	case key.Matches(msg, m.keyMap.HalfPageDown):
		return m.scrollBy(max(1, contentHeight/2))
	case key.Matches(msg, m.keyMap.HalfPageUp):
		return m.scrollBy(-max(1, contentHeight/2))
	case key.Matches(msg, m.keyMap.PageDown):
		return m.scrollBy(contentHeight)
	case key.Matches(msg, m.keyMap.PageUp):
		return m.scrollBy(-contentHeight)
	case key.Matches(msg, m.keyMap.Top):
		return m.scrollTo(0)
	case key.Matches(msg, m.keyMap.Bottom):
		return m.scrollTo(m.maxScrollOffset())
	case key.Matches(msg, m.keyMap.Copy):
		return m, command.CopyStatsToClipboardCmd(m.windowStats())
	case key.Matches(msg, m.keyMap.Save):
		return m, fileio.GetSaveCommand(m.config.SavePath, m.visibleContentLines())
	}
	return m, nil
}

func (m Model) handleWindowSizeMsg(width, height int) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	m.width, m.height = width, height
	m.host = hostElement{contentHeight: max(0, height-m.topBarHeight-1)} // 1 for footer

	m.initialized = true

	if m.list == nil {
		observer, factory := term.NewWidthObserver(width)
		m.observer = observer
		m.list = vlist.New(
			vlist.Props[string]{
				ItemCount:   m.config.ItemCount,
				HeightPrior: float64(m.config.HeightPrior),
				Items:       vlist.NewItemGenerator(fixtures.ItemText),
			},
			factory,
			time.Duration(m.config.ScrollDelayMillis)*time.Millisecond,
		)
		cmds = append(cmds, m.list.Mount(m.host))
		return m, tea.Batch(cmds...)
	}

	m.observer.SetWidth(width)
	cmds = append(cmds, m.list.SetViewportExtent(m.host.ClientHeight()))
	m.observer.Flush()
	cmds = append(cmds, m.list.FlushResizes())
	return m, tea.Batch(cmds...)
}

// syncMaterialized renders the current window's items into elements, binds
// each element to its position, evicts dematerialized elements, and delivers
// any measurement entries queued by the observer back into the list.
func (m Model) syncMaterialized() tea.Cmd {
	plan := m.list.Plan()
	for _, item := range plan.Items {
		content := item.Content
		el := m.cache.Get(item.Position, func() string { return content })
		m.list.BindItem(item.Position, el)
	}
	win := m.list.Window()
	m.cache.EvictOutside(win.First, win.PastLast)
	m.observer.Flush()
	return m.list.FlushResizes()
}

func (m Model) scrollBy(delta int) (Model, tea.Cmd) {
	return m.scrollTo(m.list.ScrollOffset() + delta)
}

func (m Model) scrollTo(offset int) (Model, tea.Cmd) {
	offset = util.ClampValMinMax(offset, 0, m.maxScrollOffset())
	cmd := m.list.Update(message.ScrollMsg{Offset: offset})
	return m, cmd
}

func (m Model) maxScrollOffset() int {
	return max(0, int(m.list.TotalHeight())-m.host.ClientHeight())
}

func (m Model) windowStats() string {
	win := m.list.Window()
	return fmt.Sprintf(
		"window [%d, %d) hiddenBefore=%.0f hiddenAfter=%.0f scrollOffset=%d totalHeight=%.0f",
		win.First, win.PastLast, win.HiddenBefore, win.HiddenAfter,
		m.list.ScrollOffset(), m.list.TotalHeight(),
	)
}

func (m Model) toastTimeoutCmd(id int) tea.Cmd {
	return tea.Tick(constants.ToastDuration, func(time.Time) tea.Msg {
		return toast.TimeoutMsg{ID: id}
	})
}
