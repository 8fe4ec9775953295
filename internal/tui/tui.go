// Package tui is the interactive year progress view, with a searchable
// location picker.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/agent-platform/tools/yearprogress/internal/catalog"
	"github.com/agent-platform/tools/yearprogress/internal/progress"
	"github.com/agent-platform/tools/yearprogress/internal/session"
)

const (
	pickerRows = 10
	barWidth   = 40
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4A90E2")).
			Padding(0, 1).
			MarginBottom(1)

	nameStyle = lipgloss.NewStyle().Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7DC6F"))
)

type tickMsg time.Time

type detectedMsg catalog.Location

// DetectFunc resolves the starting location.
type DetectFunc func(ctx context.Context) catalog.Location

// Options configures a Model.
type Options struct {
	// Context bounds detection. Quitting cancels a context derived from it.
	Context  context.Context
	Catalog  *catalog.Catalog
	Session  *session.Session
	Detect   DetectFunc
	Year     int
	Interval time.Duration
	Now      func() time.Time
}

// Model is the bubbletea model for the live view.
type Model struct {
	cat      *catalog.Catalog
	sess     *session.Session
	detect   DetectFunc
	year     int
	interval time.Duration
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	progress progress.Progress
	err      error
	width    int

	picking bool
	query   string
	matches []catalog.Entry
	cursor  int
}

// New returns a Model. Detection starts when the program runs.
func New(opts Options) Model {
	if opts.Session == nil {
		opts.Session = session.New()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	ctx, cancel := context.WithCancel(opts.Context)
	m := Model{
		cat:      opts.Catalog,
		sess:     opts.Session,
		detect:   opts.Detect,
		year:     opts.Year,
		interval: opts.Interval,
		now:      opts.Now,
		ctx:      ctx,
		cancel:   cancel,
	}
	return m.refresh()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) detectCmd() tea.Cmd {
	if m.detect == nil {
		return nil
	}
	ctx, detect := m.ctx, m.detect
	return func() tea.Msg {
		return detectedMsg(detect(ctx))
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.detectCmd(), tickCmd(m.interval))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case detectedMsg:
		if m.sess.Detected(catalog.Location(msg)) {
			m = m.refresh()
		}
	case tickMsg:
		m = m.refresh()
		return m, tickCmd(m.interval)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.picking {
			return m.updatePicker(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m.quit()
		case "l":
			m = m.openPicker()
		}
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	m.sess.Close()
	return m, tea.Quit
}

func (m Model) openPicker() Model {
	m.picking = true
	m.query = ""
	return m.filter()
}

func (m Model) closePicker() Model {
	m.picking = false
	m.query = ""
	m.matches = nil
	m.cursor = 0
	return m
}

func (m Model) filter() Model {
	m.matches = m.cat.Search(m.query)
	m.cursor = 0
	if loc, ok := m.sess.Current(); ok {
		for i, e := range m.matches {
			if e.Timezone == loc.Timezone {
				m.cursor = i
				break
			}
		}
	}
	return m
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.closePicker(), nil
	case tea.KeyEnter:
		if len(m.matches) > 0 {
			m.sess.Select(m.matches[m.cursor].Location())
			m = m.closePicker().refresh()
		}
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
			m = m.filter()
		}
	case tea.KeySpace:
		m.query += " "
		m = m.filter()
	case tea.KeyRunes:
		m.query += string(msg.Runes)
		m = m.filter()
	}
	return m, nil
}

func (m Model) refresh() Model {
	loc, ok := m.sess.Current()
	if !ok {
		return m
	}
	m.progress, m.err = progress.Compute(loc.Timezone, m.year, m.now())
	return m
}

// Location returns the location currently shown.
func (m Model) Location() (catalog.Location, bool) {
	return m.sess.Current()
}

// Progress returns the last computed progress.
func (m Model) Progress() progress.Progress {
	return m.progress
}

func (m Model) View() string {
	if m.picking {
		return m.pickerView()
	}

	loc, ok := m.sess.Current()
	if !ok {
		return dimStyle.Render("Detecting your location...") + "\n"
	}

	header := headerStyle.Render(fmt.Sprintf("⏳ %d Progress", m.year))
	if m.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.err.Error(), dimStyle.Render("Press 'l' to pick a location • 'q' to quit"))
	}

	p := m.progress
	bw := barWidth
	if m.width > 0 {
		bw = max(10, min(barWidth, m.width-12))
	}
	title := fmt.Sprintf("%s %s", catalog.Flag(loc.CountryCode), nameStyle.Render(loc.DisplayName))
	body := fmt.Sprintf("%s of %d completed\n\n%s\n\nDays elapsed:   %d\nDays remaining: %d",
		percentStyle.Render(fmt.Sprintf("%.2f%%", p.Percentage)),
		p.Year,
		barStyle.Render(progress.Bar(p, bw)),
		p.DaysElapsed,
		p.DaysRemaining,
	)
	if p.DayOfYear > 0 {
		body += fmt.Sprintf("\nToday is the %s day of the year", humanize.Ordinal(p.DayOfYear))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		title,
		dimStyle.Render(p.Timestamp),
		"",
		boxStyle.Render(body),
		dimStyle.Render("Press 'l' to pick a location • 'q' to quit"),
	) + "\n"
}

func (m Model) pickerView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Select Location"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Search: %s█\n", m.query)
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d timezones available", len(m.matches))))
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		fmt.Fprintf(&b, "No timezones found matching %q\n", m.query)
	}

	current, _ := m.sess.Current()
	start := 0
	if m.cursor >= pickerRows {
		start = m.cursor - pickerRows + 1
	}
	end := min(start+pickerRows, len(m.matches))
	now := m.now()
	for i := start; i < end; i++ {
		e := m.matches[i]
		line := fmt.Sprintf("%s %-20s %-24s %s", catalog.Flag(e.CountryCode), e.City, e.Country, catalog.FormatOffset(e.CurrentOffset(now)))
		switch {
		case i == m.cursor:
			line = selectedStyle.Render(line)
		case e.Timezone == current.Timezone:
			line = currentStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ move • enter select • esc close"))
	b.WriteString("\n")
	return b.String()
}
