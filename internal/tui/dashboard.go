// Package tui renders the read-only dashboard: today's tasks, habit status,
// weekly study minutes and the quote of the day.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkhalil/studenthub/internal/analytics"
	"github.com/mkhalil/studenthub/internal/hub"
	"github.com/mkhalil/studenthub/internal/models"
	"github.com/mkhalil/studenthub/internal/utils"
)

type keyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// dataMsg carries a freshly computed dashboard snapshot.
type dataMsg struct {
	user    string
	tasks   []models.Task
	habits  []models.Habit
	logs    []models.HabitLog
	rate    float64
	minutes int
	quote   models.Quote
	hasQ    bool
	err     error
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	hub    *hub.Hub
	engine *analytics.Engine
	data   dataMsg
	loaded bool
}

// NewModel builds the dashboard model.
func NewModel(h *hub.Hub, engine *analytics.Engine) *Model {
	return &Model{hub: h, engine: engine}
}

func (m *Model) refresh() tea.Msg {
	repo, err := m.hub.Repo()
	if err != nil {
		return dataMsg{err: err}
	}

	msg := dataMsg{user: repo.BoundUser()}
	if msg.tasks, err = m.engine.TodayTasks(); err != nil {
		return dataMsg{err: err}
	}
	if msg.habits, err = repo.ListHabits(); err != nil {
		return dataMsg{err: err}
	}
	if msg.logs, err = repo.ListHabitLogs(utils.Today()); err != nil {
		return dataMsg{err: err}
	}
	if msg.rate, err = m.engine.HabitCompletionRate(""); err != nil {
		return dataMsg{err: err}
	}
	if msg.minutes, err = m.engine.WeeklyStudyMinutes(); err != nil {
		return dataMsg{err: err}
	}
	msg.quote, msg.hasQ = m.engine.TodayQuote()
	return msg
}

func (m *Model) Init() tea.Cmd {
	return m.refresh
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Refresh):
			return m, m.refresh
		}
	case dataMsg:
		m.data = msg
		m.loaded = true
	}
	return m, nil
}

func (m *Model) View() string {
	if !m.loaded {
		return docStyle.Render("Loading...")
	}
	if m.data.err != nil {
		return docStyle.Render(dangerStyle.Render(fmt.Sprintf("Error: %v", m.data.err)) +
			"\n\n" + helpStyle.Render("q quit"))
	}

	out := titleStyle.Render(fmt.Sprintf("studenthub - %s - %s", m.data.user, utils.Today())) + "\n\n"

	if m.data.hasQ {
		out += quoteStyle.Render(fmt.Sprintf("%q", m.data.quote.Text))
		if m.data.quote.Author != "" {
			out += quoteStyle.Render(fmt.Sprintf(" - %s", m.data.quote.Author))
		}
		out += "\n\n"
	}

	out += sectionStyle.Render("Today's tasks") + "\n"
	if len(m.data.tasks) == 0 {
		out += dimStyle.Render("  nothing due today") + "\n"
	}
	for _, t := range m.data.tasks {
		mark := " "
		if t.Status == models.StatusCompleted {
			mark = "x"
		}
		out += fmt.Sprintf("  [%s] %s (%s)\n", mark, t.Title, t.Priority)
	}

	out += "\n" + sectionStyle.Render("Habits") + "\n"
	for _, h := range m.data.habits {
		mark := " "
		for _, l := range m.data.logs {
			if l.HabitID == h.ID && l.Completed {
				mark = "x"
				break
			}
		}
		out += fmt.Sprintf("  [%s] %s\n", mark, h.Name)
	}
	out += fmt.Sprintf("  %.0f%% complete today\n", m.data.rate)

	out += "\n" + sectionStyle.Render("Study") + "\n"
	out += fmt.Sprintf("  %dm completed this week\n", m.data.minutes)

	out += "\n" + helpStyle.Render("r refresh - q quit")
	return docStyle.Render(out)
}

// Run starts the dashboard and blocks until the user quits.
func Run(h *hub.Hub, engine *analytics.Engine) error {
	m := NewModel(h, engine)
	_, err := tea.NewProgram(m).Run()
	return err
}
