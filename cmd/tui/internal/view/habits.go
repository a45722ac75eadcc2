package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pillars/internal/spiritual"
)

type habitState int

const (
	habitStateBrowse habitState = iota
	habitStateCreate
)

type HabitsModel struct {
	CommonModel
	spiritService *spiritual.Service

	state  habitState
	table  table.Model
	habits []spiritual.Habit
	form   *huh.Form
	status string

	formName      string
	formFrequency string
	formNotes     string
}

func NewHabitsModel(spiritSvc *spiritual.Service) HabitsModel {
	columns := []table.Column{
		{Title: "Habit", Width: 28},
		{Title: "Frequency", Width: 10},
		{Title: "Streak", Width: 8},
		{Title: "Total", Width: 7},
		{Title: "Last done", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := HabitsModel{
		spiritService: spiritSvc,
		table:         t,
	}
	m.refreshTable()

	return m
}

func (m HabitsModel) Title() string { return "Habits" }
func (m HabitsModel) ShortHelp() string {
	if m.state == habitStateCreate {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | c: complete today | n: new | x: delete"
}

func (m HabitsModel) Init() tea.Cmd {
	return nil
}

func (m HabitsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == habitStateCreate {
		return m.updateCreate(msg)
	}

	return m.updateBrowse(msg)
}

func (m HabitsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "c":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.habits) {
				h, err := m.spiritService.CompleteHabit(m.habits[idx].ID, time.Now())
				if err != nil {
					m.status = fmt.Sprintf("Error: %v", err)
				} else {
					m.status = fmt.Sprintf("%s: streak %d, %d total", h.Name, h.Streak, h.TotalCompletions)
				}
				m.refreshTable()
			}

			return m, nil
		case "n":
			m.formName = ""
			m.formFrequency = string(spiritual.HabitDaily)
			m.formNotes = ""
			m.state = habitStateCreate
			m.form = m.buildForm()
			m.table.Blur()

			return m, m.form.Init()
		case "x":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.habits) {
				m.spiritService.DeleteHabit(m.habits[idx].ID)
				m.status = "Habit deleted"
				m.refreshTable()
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *HabitsModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("frequency").
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(spiritual.HabitDaily)),
					huh.NewOption("Weekly", string(spiritual.HabitWeekly)),
					huh.NewOption("Monthly", string(spiritual.HabitMonthly)),
				).
				Value(&m.formFrequency),

			huh.NewInput().
				Key("notes").
				Title("Notes").
				Value(&m.formNotes),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m HabitsModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m.closeForm("")
		}
	}

	f, cmd := m.form.Update(msg)
	if hf, ok := f.(*huh.Form); ok {
		m.form = hf
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.spiritService.CreateHabit(spiritual.HabitParams{
		Name:      strings.TrimSpace(m.formName),
		Frequency: spiritual.HabitFrequency(m.formFrequency),
		Notes:     strings.TrimSpace(m.formNotes),
	})

	return m.closeForm("Habit created")
}

func (m HabitsModel) closeForm(status string) (tea.Model, tea.Cmd) {
	m.state = habitStateBrowse
	m.form = nil
	m.status = status
	m.table.Focus()
	m.refreshTable()

	return m, nil
}

func (m HabitsModel) View() string {
	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == habitStateCreate && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("New Habit\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *HabitsModel) refreshTable() {
	m.habits = m.spiritService.ListHabits()

	rows := make([]table.Row, 0, len(m.habits))
	for _, h := range m.habits {
		last := h.LastCompleted
		if last == "" {
			last = "never"
		}

		rows = append(rows, table.Row{
			h.Name,
			string(h.Frequency),
			fmt.Sprintf("%d", h.Streak),
			fmt.Sprintf("%d", h.TotalCompletions),
			last,
		})
	}
	m.table.SetRows(rows)
}
