package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
	"github.com/MrJamesThe3rd/pillars/internal/form"
)

// txModalState tracks whether the edit panel is closed, creating a new
// record, or editing the selected one.
type txModalState int

const (
	txModalClosed txModalState = iota
	txModalCreate
	txModalEdit
)

type TransactionsModel struct {
	CommonModel
	finService *financial.Service

	state  txModalState
	table  table.Model
	txs    []financial.Transaction
	form   *huh.Form
	editID int
	status string

	// Form bindings; everything is a string until coerced on save.
	formDate      string
	formType      string
	formCategory  string
	formAmount    string
	formDesc      string
	formRecurring bool
	formFrequency string
}

func NewTransactionsModel(finSvc *financial.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 9},
		{Title: "Category", Width: 16},
		{Title: "Amount", Width: 12},
		{Title: "Description", Width: 36},
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

	m := TransactionsModel{
		finService: finSvc,
		table:      t,
	}
	m.refreshTable()

	return m
}

func (m TransactionsModel) Title() string { return "Transactions" }
func (m TransactionsModel) ShortHelp() string {
	if m.state != txModalClosed {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: new | e: edit | x: delete"
}

func (m TransactionsModel) Init() tea.Cmd {
	return nil
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == txModalClosed {
		return m.updateBrowse(msg)
	}

	return m.updateModal(msg)
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "n":
			return m.openForCreate()
		case "e":
			return m.openForEdit()
		case "x":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.txs) {
				m.finService.DeleteTransaction(m.txs[idx].ID)
				m.status = "Transaction deleted"
				m.refreshTable()
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

// openForCreate opens the modal with blank bindings.
func (m TransactionsModel) openForCreate() (tea.Model, tea.Cmd) {
	m.formDate = FormatDate(time.Now())
	m.formType = string(financial.TypeExpense)
	m.formCategory = ""
	m.formAmount = ""
	m.formDesc = ""
	m.formRecurring = false
	m.formFrequency = string(financial.FrequencyMonthly)

	m.state = txModalCreate
	m.form = m.buildForm()
	m.table.Blur()

	return m, m.form.Init()
}

// openForEdit opens the modal pre-filled with the selected transaction.
func (m TransactionsModel) openForEdit() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return m, nil
	}

	tx := m.txs[idx]
	m.editID = tx.ID
	m.formDate = FormatDate(tx.Date)
	m.formType = string(tx.Type)
	m.formCategory = tx.Category
	m.formAmount = FormatAmount(tx.Amount)
	m.formDesc = tx.Description
	m.formRecurring = tx.Recurring
	m.formFrequency = string(tx.Frequency)
	if m.formFrequency == "" {
		m.formFrequency = string(financial.FrequencyMonthly)
	}

	m.state = txModalEdit
	m.form = m.buildForm()
	m.table.Blur()

	return m, m.form.Init()
}

func (m *TransactionsModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("2024-03-15").
				Value(&m.formDate),

			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Expense", string(financial.TypeExpense)),
					huh.NewOption("Income", string(financial.TypeIncome)),
				).
				Value(&m.formType),

			huh.NewInput().
				Key("category").
				Title("Category").
				Value(&m.formCategory),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("42,50").
				Value(&m.formAmount),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewConfirm().
				Key("recurring").
				Title("Recurring?").
				Value(&m.formRecurring),

			huh.NewSelect[string]().
				Key("frequency").
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(financial.FrequencyDaily)),
					huh.NewOption("Weekly", string(financial.FrequencyWeekly)),
					huh.NewOption("Monthly", string(financial.FrequencyMonthly)),
					huh.NewOption("Yearly", string(financial.FrequencyYearly)),
				).
				Value(&m.formFrequency),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m TransactionsModel) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m.closeModal("")
		}
	}

	f, cmd := m.form.Update(msg)
	if hf, ok := f.(*huh.Form); ok {
		m.form = hf
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m.save()
}

func (m TransactionsModel) save() (tea.Model, tea.Cmd) {
	params := financial.TransactionParams{
		Date:        form.Date(m.formDate),
		Type:        financial.TransactionType(m.formType),
		Category:    strings.TrimSpace(m.formCategory),
		Amount:      form.Amount(m.formAmount),
		Description: strings.TrimSpace(m.formDesc),
		Recurring:   m.formRecurring,
	}
	if params.Recurring {
		params.Frequency = financial.Frequency(m.formFrequency)
	}

	switch m.state {
	case txModalCreate:
		m.finService.CreateTransaction(params)
		return m.closeModal("Transaction created")
	case txModalEdit:
		if _, err := m.finService.UpdateTransaction(m.editID, params); err != nil {
			return m.closeModal(fmt.Sprintf("Error saving: %v", err))
		}

		return m.closeModal("Transaction updated")
	}

	return m.closeModal("")
}

func (m TransactionsModel) closeModal(status string) (tea.Model, tea.Cmd) {
	m.state = txModalClosed
	m.form = nil
	m.status = status
	m.table.Focus()
	m.refreshTable()

	return m, nil
}

func (m TransactionsModel) View() string {
	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state != txModalClosed && m.form != nil {
		title := "New Transaction"
		if m.state == txModalEdit {
			title = "Edit Transaction"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *TransactionsModel) refreshTable() {
	m.txs = m.finService.ListTransactions()

	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Type),
			tx.Category,
			FormatAmount(tx.Amount),
			tx.Description,
		})
	}
	m.table.SetRows(rows)
}
