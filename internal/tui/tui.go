// Package tui provides a Bubble Tea terminal user interface for artic-table.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/artic-table/internal/artic"
	"github.com/handiism/artic-table/internal/config"
	apihttp "github.com/handiism/artic-table/internal/http"
	"github.com/handiism/artic-table/internal/logging"
	"github.com/handiism/artic-table/internal/model"
	arttable "github.com/handiism/artic-table/internal/table"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

const (
	checked   = "[x]"
	unchecked = "[ ]"
	maxLogs   = 3
)

// LogEntry represents a gather progress line in the UI.
type LogEntry struct {
	Message string
	Level   artic.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    arttable.State
	executor arttable.Executor

	grid    table.Model
	input   textinput.Model
	spinner spinner.Model
	pager   paginator.Model
	help    help.Model

	logs     []LogEntry
	strategy string

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// Message types
type (
	// EventMsg carries the outcome of a table effect back into Update.
	EventMsg struct {
		Event arttable.Event
	}

	// ProgressMsg is sent when a bulk gather reports progress.
	ProgressMsg struct {
		Event artic.ProgressEvent
	}
)

// NewModel creates a new TUI model that performs its effects with executor.
func NewModel(executor arttable.Executor, pageSize int, strategy string) Model {
	ti := textinput.New()
	ti.Placeholder = "Number of rows"
	ti.CharLimit = 7
	ti.Width = 16

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	pg := paginator.New()
	pg.Type = paginator.Arabic
	pg.PerPage = pageSize

	grid := table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		table.WithHeight(pageSize+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#1A1A1A")).
		Background(lipgloss.Color("#F8B500"))
	grid.SetStyles(styles)

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    arttable.New(pageSize),
		executor: executor,
		grid:     grid,
		input:    ti,
		spinner:  sp,
		pager:    pg,
		help:     help.New(),
		strategy: strategy,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// State returns the table state the model is displaying.
func (m Model) State() arttable.State {
	return m.state
}

// Init loads the first page.
func (m Model) Init() tea.Cmd {
	_, eff := m.state.Init()
	return tea.Batch(m.perform(eff), m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.grid.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
		if m.state.PopoverOpen {
			return m.updatePopover(msg)
		}
		return m.updateTable(msg)

	case EventMsg:
		return m.apply(msg.Event)

	case ProgressMsg:
		if msg.Event.Level == artic.LevelVerbose && len(m.logs) > 0 && m.logs[len(m.logs)-1].Level == artic.LevelVerbose {
			m.logs[len(m.logs)-1] = LogEntry{Message: msg.Event.Message, Level: msg.Event.Level}
		} else {
			m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
		}
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.state.PopoverOpen {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.grid, cmd = m.grid.Update(msg)
	}
	return m, cmd
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, keys.Next):
		if m.state.HasNext() {
			return m.apply(arttable.PageChanged{Page: m.state.Page + 1})
		}
		return m, nil

	case key.Matches(msg, keys.Prev):
		if m.state.HasPrev() {
			return m.apply(arttable.PageChanged{Page: m.state.Page - 1})
		}
		return m, nil

	case key.Matches(msg, keys.Toggle):
		if row, ok := m.cursorRow(); ok {
			return m.apply(arttable.RowToggled{Artwork: row})
		}
		return m, nil

	case key.Matches(msg, keys.TogglePage):
		return m.apply(arttable.SelectionChanged{Selected: m.togglePage()})

	case key.Matches(msg, keys.Clear):
		return m.apply(arttable.SelectionCleared{})

	case key.Matches(msg, keys.Bulk):
		return m.apply(arttable.PopoverToggled{})
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m Model) updatePopover(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Cancel):
		return m.apply(arttable.PopoverClosed{})

	case key.Matches(msg, keys.Submit):
		next, _ := m.apply(arttable.BulkInputChanged{Text: m.input.Value()})
		m = next.(Model)
		next, cmd := m.apply(arttable.BulkSubmitted{})
		m = next.(Model)
		if cmd == nil {
			return m, nil
		}
		m.logs = nil
		return m, tea.Batch(cmd, m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	next, _ := m.apply(arttable.BulkInputChanged{Text: m.input.Value()})
	return next, cmd
}

// apply runs the reducer, syncs the widgets and turns the effect into a command.
func (m Model) apply(ev arttable.Event) (tea.Model, tea.Cmd) {
	wasOpen := m.state.PopoverOpen

	var eff arttable.Effect
	m.state, eff = arttable.Reduce(m.state, ev)

	if m.input.Value() != m.state.BulkInput {
		m.input.SetValue(m.state.BulkInput)
	}

	var cmds []tea.Cmd
	switch {
	case m.state.PopoverOpen && !wasOpen:
		cmds = append(cmds, m.input.Focus())
		m.grid.Blur()
	case !m.state.PopoverOpen && wasOpen:
		m.input.Blur()
		m.grid.Focus()
	}

	if _, ok := ev.(arttable.PageLoaded); ok {
		m.grid.SetCursor(0)
	}
	m.syncGrid()

	if cmd := m.perform(eff); cmd != nil {
		cmds = append(cmds, cmd)
		if _, ok := eff.(arttable.LoadPage); ok {
			cmds = append(cmds, m.spinner.Tick)
		}
	}

	switch len(cmds) {
	case 0:
		return m, nil
	case 1:
		return m, cmds[0]
	}
	return m, tea.Batch(cmds...)
}

// perform returns a command that runs the effect off the update loop.
func (m Model) perform(eff arttable.Effect) tea.Cmd {
	if eff == nil {
		return nil
	}
	ctx, executor := m.ctx, m.executor
	return func() tea.Msg {
		return EventMsg{Event: executor.Perform(ctx, eff)}
	}
}

func (m *Model) syncGrid() {
	rows := make([]table.Row, 0, len(m.state.Rows))
	for _, a := range m.state.Rows {
		mark := unchecked
		if m.state.IsSelected(a.ID) {
			mark = checked
		}
		rows = append(rows, append(table.Row{mark}, a.Cells()...))
	}
	m.grid.SetRows(rows)

	m.pager.SetTotalPages(m.state.Total)
	m.pager.Page = m.state.Page - 1
}

func (m Model) cursorRow() (model.Artwork, bool) {
	i := m.grid.Cursor()
	if i < 0 || i >= len(m.state.Rows) {
		return model.Artwork{}, false
	}
	return m.state.Rows[i], true
}

// togglePage selects every row of the page, or deselects them all when they
// are already selected.
func (m Model) togglePage() []model.Artwork {
	sel := m.state.Selection.Clone()

	all := len(m.state.Rows) > 0
	for _, a := range m.state.Rows {
		if !sel.Contains(a.ID) {
			all = false
			break
		}
	}

	for _, a := range m.state.Rows {
		if all {
			sel.Remove(a.ID)
		} else {
			sel.Add(a)
		}
	}
	return sel.Items()
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Artworks"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Art Institute of Chicago collection"))
	b.WriteString("\n\n")

	if m.state.PopoverOpen {
		b.WriteString(m.viewPopover())
		b.WriteString("\n")
	}

	b.WriteString(m.grid.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	// Footer
	b.WriteString("\n")
	if m.state.PopoverOpen {
		b.WriteString(m.help.ShortHelpView(keys.popoverHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(keys.tableHelp()))
	}

	return b.String()
}

func (m Model) viewPopover() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Select the first N rows"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	if m.strategy != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("strategy: " + m.strategy))
	}
	if m.state.Gathering {
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	}

	return boxStyle.Render(b.String())
}

func (m Model) viewStatus() string {
	var b strings.Builder

	if m.state.Loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Loading page %d...", m.state.Page)))
		b.WriteString("\n")
	}

	if m.state.Total > 0 {
		b.WriteString(infoStyle.Render(fmt.Sprintf("Page %s", m.pager.View())))
		first := m.state.FirstRow() + 1
		last := m.state.FirstRow() + len(m.state.Rows)
		if len(m.state.Rows) > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf(" | rows %d-%d of %d", first, last, m.state.Total)))
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf(" | no rows | %d total", m.state.Total)))
		}
	} else if !m.state.Loading {
		b.WriteString(dimStyle.Render("No rows"))
	}

	b.WriteString(" ")
	b.WriteString(successStyle.Render(fmt.Sprintf("| %d selected", m.state.Selection.Len())))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case artic.LevelError:
			style = errorStyle
			prefix = "✗"
		case artic.LevelWarning:
			style = warningStyle
			prefix = "!"
		case artic.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case artic.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func columns() []table.Column {
	widths := []int{30, 14, 28, 20, 10, 10}
	cols := []table.Column{{Title: "v", Width: 3}}
	for i, c := range model.Columns {
		cols = append(cols, table.Column{Title: c.Header, Width: widths[i]})
	}
	return cols
}

// Run starts the TUI application with the given settings.
func Run(settings *config.Settings) error {
	closer, err := logging.SetupFile(logging.LogLevel(settings.LogLevel), settings.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	var p *tea.Program

	client := artic.NewClient(apihttp.NewClient(settings.UserAgent, settings.Timeout()), settings.BaseURL, settings.Fields)
	executor := arttable.Executor{
		Loader: artic.NewPageLoader(client, settings.PageSize),
		Gatherer: artic.NewGatherer(client, settings.ToGatherConfig(), func(event artic.ProgressEvent) {
			if p != nil {
				p.Send(ProgressMsg{Event: event})
			}
		}),
	}

	p = tea.NewProgram(NewModel(executor, settings.PageSize, settings.GatherStrategy), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
