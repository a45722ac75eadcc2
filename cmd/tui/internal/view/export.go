package view

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pillars/internal/export"
)

type exportState int

const (
	exportStateConfirm exportState = iota
	exportStateDone
)

// ExportModel writes the financial collections to CSV files on disk.
type ExportModel struct {
	CommonModel
	exportService *export.Service
	exportDir     string

	state exportState
	run   export.Run
	err   error
}

func NewExportModel(exportSvc *export.Service, exportDir string) ExportModel {
	return ExportModel{
		exportService: exportSvc,
		exportDir:     exportDir,
	}
}

func (m ExportModel) Title() string { return "Export" }
func (m ExportModel) ShortHelp() string {
	if m.state == exportStateDone {
		return "Esc: back"
	}

	return "Enter: export | Esc: back"
}

func (m ExportModel) Init() tea.Cmd {
	return nil
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "enter":
		if m.state == exportStateConfirm {
			m.run, m.err = m.exportService.Export(m.exportDir)
			m.state = exportStateDone
		}

		return m, nil
	}

	return m, nil
}

func (m ExportModel) View() string {
	if m.state == exportStateConfirm {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Export financial data to %q?\n\nEnter: export | Esc: back", m.exportDir),
		)
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Export failed: %v\n\nEsc: back", m.err))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Export %s complete\n\nFiles:\n", m.run.ID))

	for _, f := range m.run.Files {
		sb.WriteString("  " + filepath.Base(f) + "\n")
	}

	if m.run.Summary != "" {
		sb.WriteString("\nTransactions:\n" + m.run.Summary)
	}

	sb.WriteString("\nEsc: back")

	return lipgloss.NewStyle().Padding(2).Render(sb.String())
}
