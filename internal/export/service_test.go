package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pillars/internal/export"
	"github.com/MrJamesThe3rd/pillars/internal/financial"
)

func seededService() *financial.Service {
	march15 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	return financial.NewService(financial.Seed{
		Transactions: []financial.Transaction{
			{ID: 1, Date: march15, Type: financial.TypeIncome, Category: "Salaire", Amount: 320000, Description: "Salaire mars"},
			{ID: 2, Date: march15, Type: financial.TypeExpense, Category: "Logement", Amount: 120000, Description: "Loyer"},
		},
		Budgets: []financial.Budget{
			{ID: 1, Category: "Courses", Allocated: 40000, Spent: 28050, Period: financial.PeriodMonthly},
		},
		Goals: []financial.Goal{
			{ID: 1, Name: "Fonds d'urgence", TargetAmount: 1000000, CurrentAmount: 650000, Priority: financial.PriorityHigh},
		},
		Investments: []financial.Investment{
			{ID: 1, Name: "ETF Monde", Type: financial.InvestmentStock, Amount: 500000, CurrentValue: 540000, PurchaseDate: march15},
		},
	})
}

func TestService_Export(t *testing.T) {
	dir := t.TempDir()

	svc := export.NewService(seededService())
	run, err := svc.Export(dir)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, run.ID)
	require.Len(t, run.Files, 4)

	for _, name := range []string{"transactions.csv", "budgets.csv", "goals.csv", "investments.csv"} {
		path := filepath.Join(dir, name)
		assert.Contains(t, run.Files, path)

		_, statErr := os.Stat(path)
		assert.NoError(t, statErr, name)
	}
}

func TestService_ExportTransactionsContent(t *testing.T) {
	dir := t.TempDir()

	svc := export.NewService(seededService())
	_, err := svc.Export(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "transactions.csv"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "id,date,type,category,amount,description,recurring,frequency", lines[0])
	assert.Equal(t, "1,2024-03-15,income,Salaire,3200.00,Salaire mars,false,", lines[1])
	assert.Equal(t, "2,2024-03-15,expense,Logement,1200.00,Loyer,false,", lines[2])
}

func TestService_ExportSummary(t *testing.T) {
	dir := t.TempDir()

	svc := export.NewService(seededService())
	run, err := svc.Export(dir)
	require.NoError(t, err)

	assert.Contains(t, run.Summary, "* 2024-03-15 | Salaire mars | +3200.00 €")
	assert.Contains(t, run.Summary, "* 2024-03-15 | Loyer | -1200.00 €")
}

func TestService_ExportEmpty(t *testing.T) {
	dir := t.TempDir()

	svc := export.NewService(financial.NewService(financial.Seed{}))
	run, err := svc.Export(dir)
	require.NoError(t, err)

	require.Len(t, run.Files, 4)
	assert.Empty(t, run.Summary)
}
