// Package export writes the financial collections out as CSV files for
// backup or spreadsheet use.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
)

// Run describes one completed export: the files written and a plain-text
// summary of the exported transactions.
type Run struct {
	ID      uuid.UUID
	Files   []string
	Summary string
}

// Service exports financial data to CSV files.
type Service struct {
	financial *financial.Service
}

// NewService creates a new export Service.
func NewService(finService *financial.Service) *Service {
	return &Service{financial: finService}
}

// Export writes one CSV per financial collection to the output directory
// and returns a Run describing what was written.
func (s *Service) Export(outputDir string) (Run, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Run{}, fmt.Errorf("creating output directory: %w", err)
	}

	run := Run{ID: uuid.New()}

	txs := s.financial.ListTransactions()

	writers := []struct {
		name  string
		write func(w *csv.Writer) error
	}{
		{"transactions.csv", func(w *csv.Writer) error { return writeTransactions(w, txs) }},
		{"budgets.csv", func(w *csv.Writer) error { return writeBudgets(w, s.financial.ListBudgets()) }},
		{"goals.csv", func(w *csv.Writer) error { return writeGoals(w, s.financial.ListGoals()) }},
		{"investments.csv", func(w *csv.Writer) error { return writeInvestments(w, s.financial.ListInvestments()) }},
	}

	for _, wr := range writers {
		path := filepath.Join(outputDir, wr.name)

		if err := writeFile(path, wr.write); err != nil {
			return Run{}, fmt.Errorf("writing %s: %w", wr.name, err)
		}

		run.Files = append(run.Files, path)
	}

	run.Summary = summarize(txs)

	return run, nil
}

func writeFile(path string, write func(w *csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := write(w); err != nil {
		return err
	}

	w.Flush()

	return w.Error()
}

func writeTransactions(w *csv.Writer, txs []financial.Transaction) error {
	if err := w.Write([]string{"id", "date", "type", "category", "amount", "description", "recurring", "frequency"}); err != nil {
		return err
	}

	for _, t := range txs {
		row := []string{
			strconv.Itoa(t.ID),
			t.Date.Format(time.DateOnly),
			string(t.Type),
			t.Category,
			formatCents(t.Amount),
			t.Description,
			strconv.FormatBool(t.Recurring),
			string(t.Frequency),
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func writeBudgets(w *csv.Writer, budgets []financial.Budget) error {
	if err := w.Write([]string{"id", "category", "allocated", "spent", "period", "notes"}); err != nil {
		return err
	}

	for _, b := range budgets {
		row := []string{
			strconv.Itoa(b.ID),
			b.Category,
			formatCents(b.Allocated),
			formatCents(b.Spent),
			string(b.Period),
			b.Notes,
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func writeGoals(w *csv.Writer, goals []financial.Goal) error {
	if err := w.Write([]string{"id", "name", "target_amount", "current_amount", "deadline", "priority", "notes"}); err != nil {
		return err
	}

	for _, g := range goals {
		deadline := ""
		if g.Deadline != nil {
			deadline = g.Deadline.Format(time.DateOnly)
		}

		row := []string{
			strconv.Itoa(g.ID),
			g.Name,
			formatCents(g.TargetAmount),
			formatCents(g.CurrentAmount),
			deadline,
			string(g.Priority),
			g.Notes,
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func writeInvestments(w *csv.Writer, investments []financial.Investment) error {
	if err := w.Write([]string{"id", "name", "type", "amount", "current_value", "purchase_date", "notes"}); err != nil {
		return err
	}

	for _, i := range investments {
		row := []string{
			strconv.Itoa(i.ID),
			i.Name,
			string(i.Type),
			formatCents(i.Amount),
			formatCents(i.CurrentValue),
			i.PurchaseDate.Format(time.DateOnly),
			i.Notes,
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// summarize builds a human-readable recap of the exported transactions,
// one line per movement.
func summarize(txs []financial.Transaction) string {
	var sb strings.Builder

	for _, t := range txs {
		sign := "-"
		if t.Type == financial.TypeIncome {
			sign = "+"
		}

		sb.WriteString(fmt.Sprintf("* %s | %s | %s%s €\n",
			t.Date.Format(time.DateOnly), t.Description, sign, formatCents(t.Amount)))
	}

	return sb.String()
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}
