package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/pillars/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/pillars/internal/config"
	"github.com/MrJamesThe3rd/pillars/internal/export"
	"github.com/MrJamesThe3rd/pillars/internal/financial"
	"github.com/MrJamesThe3rd/pillars/internal/importer"
	"github.com/MrJamesThe3rd/pillars/internal/intellectual"
	"github.com/MrJamesThe3rd/pillars/internal/physical"
	"github.com/MrJamesThe3rd/pillars/internal/seed"
	"github.com/MrJamesThe3rd/pillars/internal/spiritual"
)

type model struct {
	financialService    *financial.Service
	intellectualService *intellectual.Service
	physicalService     *physical.Service
	spiritualService    *spiritual.Service
	importService       *importer.Service
	exportService       *export.Service
	exportDir           string

	currentView View

	dashboardView    view.DashboardModel
	transactionsView view.TransactionsModel
	habitsView       view.HabitsModel
	importView       view.ImportModel
	exportView       view.ExportModel
}

type View int

const (
	ViewMenu         View = 0
	ViewDashboard    View = 1
	ViewTransactions View = 2
	ViewHabits       View = 3
	ViewImport       View = 4
	ViewExport       View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	data, err := seed.Load()
	if err != nil {
		slog.Error("failed to load seed data", "error", err)
		os.Exit(1)
	}

	finSvc := financial.NewService(data.Financial)
	intelSvc := intellectual.NewService(data.Intellectual)
	physSvc := physical.NewService(data.Physical)
	spiritSvc := spiritual.NewService(data.Spiritual)
	impSvc := importer.NewService()
	expSvc := export.NewService(finSvc)

	return model{
		financialService:    finSvc,
		intellectualService: intelSvc,
		physicalService:     physSvc,
		spiritualService:    spiritSvc,
		importService:       impSvc,
		exportService:       expSvc,
		exportDir:           cfg.Export.Dir,
		currentView:         ViewMenu,
		dashboardView:       view.NewDashboardModel(finSvc, intelSvc, physSvc, spiritSvc),
		transactionsView:    view.NewTransactionsModel(finSvc),
		habitsView:          view.NewHabitsModel(spiritSvc),
		importView:          view.NewImportModel(impSvc, finSvc),
		exportView:          view.NewExportModel(expSvc, cfg.Export.Dir),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.financialService, m.intellectualService, m.physicalService, m.spiritualService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.financialService)

				return m, m.transactionsView.Init()
			case "3":
				m.currentView = ViewHabits
				m.habitsView = view.NewHabitsModel(m.spiritualService)

				return m, m.habitsView.Init()
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService, m.financialService)

				return m, m.importView.Init()
			case "5":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService, m.exportDir)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewHabits:
		var newModel tea.Model
		newModel, cmd = m.habitsView.Update(msg)
		m.habitsView = newModel.(view.HabitsModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Pillars TUI\n\n" +
				"1. Dashboard\n" +
				"2. Transactions\n" +
				"3. Habits\n" +
				"4. Import Bank CSV\n" +
				"5. Export Financial Data\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewHabits:
		return m.habitsView.View()
	case ViewImport:
		return m.importView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
