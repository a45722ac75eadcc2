package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
	"github.com/MrJamesThe3rd/pillars/internal/intellectual"
	"github.com/MrJamesThe3rd/pillars/internal/physical"
	"github.com/MrJamesThe3rd/pillars/internal/spiritual"
)

// DashboardModel renders the cross-pillar overview. Summaries are recomputed
// on every render, so the view is always current.
type DashboardModel struct {
	CommonModel

	financial    *financial.Service
	intellectual *intellectual.Service
	physical     *physical.Service
	spiritual    *spiritual.Service
}

func NewDashboardModel(
	fin *financial.Service,
	intel *intellectual.Service,
	phys *physical.Service,
	spirit *spiritual.Service,
) DashboardModel {
	return DashboardModel{
		financial:    fin,
		intellectual: intel,
		physical:     phys,
		spiritual:    spirit,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back" }

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, Back
		}
	}

	return m, nil
}

var panelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Width(38)

var panelTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205"))

func (m DashboardModel) View() string {
	fin := m.financial.Summarize()
	intel := m.intellectual.Summarize()
	phys := m.physical.Summarize()
	spirit := m.spiritual.Summarize()

	finPanel := panelStyle.Render(
		panelTitleStyle.Render("Financial") + "\n\n" +
			fmt.Sprintf("Balance:      %s\n", FormatAmount(fin.Balance)) +
			fmt.Sprintf("Income:       %s\n", FormatAmount(fin.TotalIncome)) +
			fmt.Sprintf("Expenses:     %s\n", FormatAmount(fin.TotalExpenses)) +
			fmt.Sprintf("Budget spent: %s of %s (%s)\n", FormatAmount(fin.TotalSpent), FormatAmount(fin.TotalAllocated), FormatPercent(fin.BudgetSpentPct)) +
			fmt.Sprintf("Investments:  %s (%+.1f%%)", FormatAmount(fin.InvestmentValue), fin.InvestmentGainPc),
	)

	intelPanel := panelStyle.Render(
		panelTitleStyle.Render("Intellectual") + "\n\n" +
			fmt.Sprintf("Readings:   %d/%d done\n", intel.ReadingsCompleted, intel.ReadingsTotal) +
			fmt.Sprintf("Pages read: %d\n", intel.PagesRead) +
			fmt.Sprintf("Progress:   %s avg\n", FormatPercent(intel.AverageProgress)) +
			fmt.Sprintf("Courses:    %d done\n", intel.CoursesCompleted) +
			fmt.Sprintf("Flashcards: %d mastered", intel.FlashcardsMastered),
	)

	physPanel := panelStyle.Render(
		panelTitleStyle.Render("Physical") + "\n\n" +
			fmt.Sprintf("Workouts:  %d/%d done\n", phys.WorkoutsCompleted, phys.WorkoutsTotal) +
			fmt.Sprintf("Goals:     %s avg\n", FormatPercent(phys.AverageGoalProgress)) +
			fmt.Sprintf("Reminders: %d/%d done", phys.RemindersCompleted, phys.RemindersTotal),
	)

	spiritPanel := panelStyle.Render(
		panelTitleStyle.Render("Spiritual") + "\n\n" +
			fmt.Sprintf("Meditated:   %d min\n", spirit.MinutesMeditated) +
			fmt.Sprintf("Sessions:    %d/%d done\n", spirit.SessionsCompleted, spirit.SessionsTotal) +
			fmt.Sprintf("Favorites:   %d quotes\n", spirit.FavoriteQuotes) +
			fmt.Sprintf("Best streak: %d days", spirit.BestStreak),
	)

	top := lipgloss.JoinHorizontal(lipgloss.Top, finPanel, intelPanel)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, physPanel, spiritPanel)

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, top, bottom),
	)
}
