package financial_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
)

func testSeed() financial.Seed {
	march15 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	march16 := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	return financial.Seed{
		Transactions: []financial.Transaction{
			{
				ID: 1, Date: march15, Type: financial.TypeIncome,
				Category: "Salaire", Amount: 300000, Description: "Salaire mensuel",
				Recurring: true, Frequency: financial.FrequencyMonthly,
			},
			{
				ID: 2, Date: march16, Type: financial.TypeExpense,
				Category: "Alimentation", Amount: 15000, Description: "Courses hebdomadaires",
				Recurring: true, Frequency: financial.FrequencyWeekly,
			},
		},
		Budgets: []financial.Budget{
			{ID: 1, Category: "Alimentation", Allocated: 50000, Spent: 35000, Period: financial.PeriodMonthly},
			{ID: 2, Category: "Transport", Allocated: 20000, Spent: 18000, Period: financial.PeriodMonthly},
		},
		Goals: []financial.Goal{
			{ID: 1, Name: "Épargne d'urgence", TargetAmount: 1000000, CurrentAmount: 500000, Priority: financial.PriorityHigh},
		},
		Investments: []financial.Investment{
			{ID: 1, Name: "Bitcoin", Type: financial.InvestmentCrypto, Amount: 100000, CurrentValue: 120000},
		},
	}
}

func TestService_TransactionCRUD(t *testing.T) {
	svc := financial.NewService(testSeed())

	created := svc.CreateTransaction(financial.TransactionParams{
		Date:        time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		Type:        financial.TypeExpense,
		Category:    "Loisirs",
		Amount:      4500,
		Description: "Cinéma",
	})
	assert.Equal(t, 3, created.ID)
	assert.Len(t, svc.ListTransactions(), 3)

	got, err := svc.GetTransaction(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cinéma", got.Description)

	updated, err := svc.UpdateTransaction(created.ID, financial.TransactionParams{
		Date:        created.Date,
		Type:        financial.TypeExpense,
		Category:    "Loisirs",
		Amount:      5000,
		Description: "Cinéma et popcorn",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), updated.Amount)

	svc.DeleteTransaction(created.ID)
	assert.Len(t, svc.ListTransactions(), 2)

	_, err = svc.GetTransaction(created.ID)
	assert.ErrorIs(t, err, financial.ErrNotFound)
}

func TestService_UpdateMissingTransaction(t *testing.T) {
	svc := financial.NewService(testSeed())

	_, err := svc.UpdateTransaction(99, financial.TransactionParams{Amount: 100})
	assert.ErrorIs(t, err, financial.ErrNotFound)

	// Delete of an unknown id is a silent no-op.
	svc.DeleteTransaction(99)
	assert.Len(t, svc.ListTransactions(), 2)
}

func TestService_BudgetPercent(t *testing.T) {
	svc := financial.NewService(testSeed())

	budgets := svc.ListBudgets()
	require.Len(t, budgets, 2)

	// allocated=500, spent=350 -> 70% spent, 150 remaining
	assert.Equal(t, 70, svc.BudgetSpentPercent(budgets[0]))

	empty := svc.CreateBudget(financial.BudgetParams{Category: "Santé", Period: financial.PeriodYearly})
	assert.Equal(t, 0, svc.BudgetSpentPercent(empty))
}

func TestService_GoalProgress(t *testing.T) {
	svc := financial.NewService(testSeed())

	goals := svc.ListGoals()
	require.Len(t, goals, 1)
	assert.Equal(t, 50, svc.GoalProgress(goals[0]))
}

func TestService_Summarize(t *testing.T) {
	svc := financial.NewService(testSeed())

	sum := svc.Summarize()
	assert.Equal(t, int64(300000), sum.TotalIncome)
	assert.Equal(t, int64(15000), sum.TotalExpenses)
	assert.Equal(t, int64(285000), sum.Balance)
	assert.Equal(t, int64(70000), sum.TotalAllocated)
	assert.Equal(t, int64(53000), sum.TotalSpent)
	assert.Equal(t, int64(17000), sum.BudgetRemaining)
	assert.Equal(t, 76, sum.BudgetSpentPct)
	assert.Equal(t, int64(100000), sum.TotalInvested)
	assert.Equal(t, int64(120000), sum.InvestmentValue)
	assert.Equal(t, int64(20000), sum.InvestmentGain)
	assert.InDelta(t, 20.0, sum.InvestmentGainPc, 0.001)
}

func TestService_SummarizeEmpty(t *testing.T) {
	svc := financial.NewService(financial.Seed{})

	sum := svc.Summarize()
	assert.Equal(t, int64(0), sum.Balance)
	assert.Equal(t, 0, sum.BudgetSpentPct)
	assert.Equal(t, 0.0, sum.InvestmentGainPc)
}

func TestService_Reset(t *testing.T) {
	svc := financial.NewService(testSeed())

	svc.CreateBudget(financial.BudgetParams{Category: "Extra"})
	svc.DeleteTransaction(1)
	svc.Reset()

	assert.Len(t, svc.ListTransactions(), 2)
	assert.Len(t, svc.ListBudgets(), 2)
}

func TestService_CreateTransactionsBatch(t *testing.T) {
	svc := financial.NewService(testSeed())

	txs := svc.CreateTransactions([]financial.TransactionParams{
		{Type: financial.TypeExpense, Amount: 1000, Description: "a"},
		{Type: financial.TypeExpense, Amount: 2000, Description: "b"},
	})
	require.Len(t, txs, 2)
	assert.Equal(t, 3, txs[0].ID)
	assert.Equal(t, 4, txs[1].ID)
	assert.Len(t, svc.ListTransactions(), 4)
}
