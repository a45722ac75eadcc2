package view

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
	"github.com/MrJamesThe3rd/pillars/internal/importer"
)

type importState int

const (
	importStateForm importState = iota
	importStateDone
)

// ImportModel imports a bank CSV statement into the transaction collection.
type ImportModel struct {
	CommonModel
	importService *importer.Service
	finService    *financial.Service

	state    importState
	form     *huh.Form
	filePath string
	imported []financial.Transaction
	err      error
}

func NewImportModel(importSvc *importer.Service, finSvc *financial.Service) ImportModel {
	m := ImportModel{
		importService: importSvc,
		finService:    finSvc,
	}
	m.form = m.buildForm()

	return m
}

func (m ImportModel) Title() string { return "Import Bank CSV" }
func (m ImportModel) ShortHelp() string {
	if m.state == importStateDone {
		return "Esc: back"
	}

	return "Enter: import | Esc: back"
}

func (m *ImportModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Statement file").
				Placeholder("releve.csv").
				Value(&m.filePath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("file path cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m ImportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.state == importStateDone {
		return m, nil
	}

	f, cmd := m.form.Update(msg)
	if hf, ok := f.(*huh.Form); ok {
		m.form = hf
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = importStateDone
	m.imported, m.err = m.runImport()

	return m, nil
}

func (m ImportModel) runImport() ([]financial.Transaction, error) {
	f, err := os.Open(strings.TrimSpace(m.filePath))
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	params, err := m.importService.Import(importer.SourceBank, f)
	if err != nil {
		return nil, err
	}

	return m.finService.CreateTransactions(params), nil
}

func (m ImportModel) View() string {
	if m.state == importStateDone {
		if m.err != nil {
			return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Import failed: %v\n\nEsc: back", m.err))
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Imported %d transactions\n\n", len(m.imported)))

		for _, tx := range m.imported {
			sb.WriteString(fmt.Sprintf("  %s  %-9s %s  %s\n",
				FormatDate(tx.Date), tx.Type, FormatAmount(tx.Amount), tx.Description))
		}

		sb.WriteString("\nEsc: back")

		return lipgloss.NewStyle().Padding(2).Render(sb.String())
	}

	return lipgloss.NewStyle().Padding(2).Render("Import Bank CSV\n\n" + m.form.View())
}
