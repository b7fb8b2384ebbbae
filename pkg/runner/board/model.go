package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/pumpdesk/pkg/filter"
	"tableflip.dev/pumpdesk/pkg/glyph"
	"tableflip.dev/pumpdesk/pkg/paginate"
	"tableflip.dev/pumpdesk/pkg/workitem"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	tabStyle    = lipgloss.NewStyle().Faint(true)
	activeTab   = lipgloss.NewStyle().Bold(true).Reverse(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

var tabs = []string{"all", "SCHEDULED", "ACTIVE", "COMPLETED", "CANCELLED"}

type model struct {
	duties []*workitem.DailyDuty
	now    func() time.Time

	tabIndex int
	search   textinput.Model
	view     *paginate.View[*workitem.DailyDuty]
}

func newModel(duties []*workitem.DailyDuty, pageSize int, now func() time.Time) *model {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64

	m := &model{
		duties: duties,
		now:    now,
		search: search,
		view:   paginate.NewView([]*workitem.DailyDuty{}, pageSize),
	}
	m.refilter()
	return m
}

// refilter recomputes the visible set; swapping it into the view resets the
// page cursor, which is exactly what a filter change requires.
func (m *model) refilter() {
	cfg := filter.Config{
		Tab:   tabs[m.tabIndex],
		Query: m.search.Value(),
	}
	m.view.SetItems(filter.ApplyAt(m.duties, cfg, m.now(), func(string, ...interface{}) {}))
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.search.Focused() {
		switch keyMsg.String() {
		case "esc", "enter":
			m.search.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.refilter()
			return m, cmd
		}
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.tabIndex = (m.tabIndex + 1) % len(tabs)
		m.refilter()
	case "shift+tab":
		m.tabIndex = (m.tabIndex + len(tabs) - 1) % len(tabs)
		m.refilter()
	case "/":
		m.search.Focus()
	case "right", "l", "n":
		m.view.Next()
	case "left", "h", "p":
		m.view.Prev()
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Daily duties"))
	b.WriteString("\n\n")

	rendered := make([]string, len(tabs))
	for i, tab := range tabs {
		if i == m.tabIndex {
			rendered[i] = activeTab.Render(" " + tab + " ")
		} else {
			rendered[i] = tabStyle.Render(" " + tab + " ")
		}
	}
	b.WriteString(strings.Join(rendered, " "))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	page, total := m.view.Page()
	if len(page) == 0 {
		b.WriteString(tabStyle.Render("  none"))
		b.WriteString("\n")
	}
	for _, d := range page {
		b.WriteString(fmt.Sprintf("  %s %s  %s  %s-%s  %sh\n",
			glyph.ForStatus(d.StatusLabel()),
			d.DutyDate.String(),
			d.EmployeeID,
			d.ShiftStart, d.ShiftEnd,
			d.TotalHours,
		))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"page %d/%d - %d duties - tab: switch, /: search, arrows: page, q: quit",
		m.view.PageIndex()+1, total, m.view.Len(),
	)))
	b.WriteString("\n")
	return b.String()
}
