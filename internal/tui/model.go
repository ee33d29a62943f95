package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/arctimer/internal/countdown"
	"github.com/garrettladley/arctimer/internal/tui/components/dialog"
	"github.com/garrettladley/arctimer/internal/tui/components/footer"
	"github.com/garrettladley/arctimer/internal/tui/page/splash"
	"github.com/garrettladley/arctimer/internal/tui/page/timer"
	"github.com/garrettladley/arctimer/internal/tui/theme"
	"github.com/garrettladley/arctimer/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	timerPage
)

var footerHints = []string{
	"tab focus",
	"enter press",
	"s start",
	"p pause",
	"r resume",
	"x reset",
	"q quit",
}

type state struct {
	timer      timer.State
	dialog     bool
	freshField bool // next digit replaces the focused field
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	deps           Deps
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = xslog.FromContext(deps.Ctx)
	}

	ts := timer.NewState()
	ts.Frame = deps.Renderer.Render(0)

	return Model{
		page:  splashPage,
		theme: theme.New(),
		deps:  deps,
		state: state{timer: ts},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(splash.Duration, func(time.Time) tea.Msg {
			return splash.TickMsg{}
		}),
		listenSnapshotsCmd(m.deps.Ctx, m.deps.Timer.Updates()),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyPressMsg:
		return m, m.handleKey(msg.String())

	// splash timer expired - transition to the timer
	case splash.TickMsg:
		m.page = timerPage

	case SnapshotMsg:
		m.applySnapshot(msg.Snapshot)
		cmds := []tea.Cmd{listenSnapshotsCmd(m.deps.Ctx, m.deps.Timer.Updates())}
		if msg.Snapshot.Expired {
			m.state.dialog = true
			m.page = timerPage
			cmds = append(cmds, playAlarmCmd(m.deps.Ctx, m.deps.Alarm))
		}
		return m, tea.Batch(cmds...)

	case ActionMsg:
		m.handleActionResult(msg)

	case AlarmDoneMsg:
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.deps.Logger.WarnContext(m.deps.Ctx, "failed to play alarm", xslog.Error(msg.Err))
		}

	case EngineStoppedMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) quit() tea.Cmd {
	if m.deps.Cancel != nil {
		m.deps.Cancel()
	}
	return tea.Quit
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "ctrl+c", "q":
		return m.quit()
	}

	if m.state.dialog {
		switch key {
		case "enter", "esc", "space":
			m.state.dialog = false
		}
		return nil
	}

	if m.page == splashPage {
		m.page = timerPage
		return nil
	}

	ts := &m.state.timer
	switch key {
	case "tab", "right":
		m.focus(ts.Focus.Next())
	case "shift+tab", "left":
		m.focus(ts.Focus.Prev())
	case "enter", "space":
		if ts.Focus.IsField() {
			return m.press(timer.ControlStart)
		}
		return m.press(ts.Focus)
	case "s":
		return m.press(timer.ControlStart)
	case "p":
		return m.press(timer.ControlPause)
	case "r":
		return m.press(timer.ControlResume)
	case "x":
		return m.press(timer.ControlReset)
	case "backspace":
		if ts.Focus.IsField() {
			field := ts.Fields[ts.Focus]
			if _, size := utf8.DecodeLastRuneInString(field); size > 0 {
				ts.Fields[ts.Focus] = field[:len(field)-size]
			}
			m.state.freshField = false
		}
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' && ts.Focus.IsField() {
			m.typeDigit(key)
		}
	}
	return nil
}

func (m *Model) focus(c timer.Control) {
	m.state.timer.Focus = c
	m.state.freshField = c.IsField()
}

func (m *Model) typeDigit(digit string) {
	ts := &m.state.timer
	field := ts.Fields[ts.Focus]
	switch {
	case m.state.freshField:
		field = digit
	case utf8.RuneCountInString(field) < timer.FieldMaxRunes:
		field += digit
	}
	ts.Fields[ts.Focus] = field
	m.state.freshField = false
}

func (m *Model) press(c timer.Control) tea.Cmd {
	return actionCmd(m.deps.Ctx, m.deps.Timer, c, m.state.timer.Fields)
}

func (m *Model) handleActionResult(msg ActionMsg) {
	switch {
	case msg.Err == nil:
	case errors.Is(msg.Err, countdown.ErrInvalidInput):
		m.state.timer.Readout = timer.InvalidText
		m.state.timer.Invalid = true
		attrs := []any{xslog.Error(msg.Err)}
		if ie := countdown.AsInputError(msg.Err); ie != nil {
			attrs = append(attrs, slog.String("field", ie.Field))
		}
		m.deps.Logger.DebugContext(m.deps.Ctx, "rejected start", attrs...)
	case errors.Is(msg.Err, context.Canceled), errors.Is(msg.Err, countdown.ErrStopped):
	default:
		m.deps.Logger.WarnContext(m.deps.Ctx, "timer action failed",
			xslog.Event(msg.Action.String()),
			xslog.Error(msg.Err))
	}
}

// applySnapshot replaces the displayed readout and arc wholesale.
func (m *Model) applySnapshot(snap countdown.Snapshot) {
	ts := &m.state.timer
	ts.Phase = snap.Phase
	ts.Readout = snap.Display
	ts.Invalid = false
	ts.Frame = m.deps.Renderer.Render(snap.Fraction)
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses default dark
	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	view.SetContent(m.render())
	return view
}

func (m *Model) render() string {
	switch m.page {
	case splashPage:
		return splash.View(m.theme, m.viewportWidth, m.viewportHeight)
	case timerPage:
		foot := footer.New(m.viewportWidth, footerHints...).Render()
		body := timer.View(
			m.theme,
			m.state.timer,
			m.viewportWidth,
			max(m.viewportHeight-lipgloss.Height(foot), 0),
		)
		content := lipgloss.JoinVertical(lipgloss.Left, body, foot)

		if m.state.dialog {
			box := dialog.New(dialogTitle, dialogMessage, dialogHint).Render()
			content = overlayCenter(content, box, m.viewportWidth, m.viewportHeight)
		}
		return content
	default:
		return ""
	}
}
