package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/recycle-run/internal/registry"
	"github.com/vovakirdan/recycle-run/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the mode sidebar
	sidebarWidth       = 30  // Width of the mode sidebar
	maxRuns            = 100 // Max runs to load
	scoreboardChrome   = 11  // Rows taken by title, summary, footer and help
)

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	sbDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbPanelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// runOrder selects which runs the table lists.
type runOrder int

const (
	orderBest runOrder = iota
	orderRecent
)

func (o runOrder) title() string {
	if o == orderRecent {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Order    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Order, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Order, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	cursor int // Index into modes
	order  runOrder
	store  *storage.Store

	runs  []storage.RunEntry
	stats *storage.ModeStats
	best  map[string]int // High score per mode, for the sidebar

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
		best:   make(map[string]int),
	}
	m.table = m.createTable()

	if store != nil {
		if all, err := store.AllStats(); err == nil {
			for mode, st := range all {
				m.best[mode] = st.HighScore
			}
		}
	}
	m.reload()
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// createTable sizes the columns to the space left beside the sidebar.
func (m ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Result", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 13},
	}

	avail := m.width - 4
	if m.showSidebar() {
		avail -= sidebarWidth + 3
	}
	if avail > 60 {
		columns[1].Width = 10
		columns[5].Width = min(avail-47, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-scoreboardChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches runs and the summary for the current mode and order.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		mode := m.modes[m.cursor].ID
		var runs []storage.RunEntry
		var err error
		if m.order == orderRecent {
			runs, err = m.store.RecentRuns(mode, maxRuns)
		} else {
			runs, err = m.store.TopRuns(mode, maxRuns)
		}
		if err == nil {
			m.runs = runs
		}
		if stats, err := m.store.Stats(mode); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		result := "-"
		if r.Won {
			result = "Won"
		}
		rank := fmt.Sprintf("#%d", i+1)
		if m.order == orderRecent {
			rank = strconv.FormatInt(r.ID, 10)
		}
		rows[i] = table.Row{
			rank,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			result,
			r.Duration.Round(time.Second).String(),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) moveMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.modes)) % len(m.modes)
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.moveMode(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.moveMode(-1)
			return m, nil

		case key.Matches(msg, m.keys.Order):
			m.order = 1 - m.order
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.reload()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := m.order.title()
	if len(m.modes) > 0 {
		title = fmt.Sprintf("%s - %s", title, m.modes[m.cursor].Title)
	}
	b.WriteString(sbTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	if m.stats != nil && m.stats.Runs > 0 {
		summary := fmt.Sprintf("Runs: %d  Wins: %d  Best level: %d  Average: %.0f",
			m.stats.Runs, m.stats.Wins, m.stats.BestLevel, m.stats.AvgScore)
		b.WriteString(centerText(summary, m.width))
	}
	b.WriteString("\n\n")

	panel := sbPanelStyle.Render(m.tableContent())
	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", panel))
	} else {
		b.WriteString(centerText(m.modeSwitcher(), m.width))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel))
	}
	b.WriteString("\n")

	if seed, ok := m.selectedSeed(); ok && len(m.modes) > 0 {
		line := fmt.Sprintf("Seed %d  |  same layout: recyclerun play %s --seed %d", seed, m.modes[m.cursor].ID, seed)
		b.WriteString(sbDimStyle.Render(line))
	}
	b.WriteString("\n")
	b.WriteString(sbDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// sidebar lists every mode with its best score.
func (m ScoreboardModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Modes\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, g := range m.modes {
		cursor, style := "  ", lipgloss.NewStyle()
		if i == m.cursor {
			cursor, style = "> ", sbActiveStyle
		}
		name := []rune(g.Title)
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = append(name[:maxLen-1], '.')
		}
		sb.WriteString(style.Render(cursor + string(name)))
		sb.WriteString("\n")

		best := "no runs"
		if score, ok := m.best[g.ID]; ok {
			best = fmt.Sprintf("best %d", score)
		}
		sb.WriteString(sbDimStyle.Render("    " + best))
		sb.WriteString("\n")
	}
	return sbPanelStyle.Width(sidebarWidth).Render(sb.String())
}

// modeSwitcher is the narrow-terminal stand-in for the sidebar.
func (m ScoreboardModel) modeSwitcher() string {
	if len(m.modes) == 0 {
		return ""
	}
	return sbActiveStyle.Render(fmt.Sprintf("< %s >", m.modes[m.cursor].Title)) +
		sbDimStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.modes)))
}

func (m ScoreboardModel) tableContent() string {
	if len(m.runs) == 0 {
		return sbDimStyle.Italic(true).Padding(2, 4).
			Render("No runs recorded yet.\nFinish a run to set a high score!")
	}
	return m.table.View()
}

// selectedSeed returns the world seed of the highlighted run.
func (m ScoreboardModel) selectedSeed() (int64, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) || m.runs[i].Seed == 0 {
		return 0, false
	}
	return m.runs[i].Seed, true
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
