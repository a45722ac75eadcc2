package financial

import (
	"time"

	"github.com/MrJamesThe3rd/pillars/internal/collection"
	"github.com/MrJamesThe3rd/pillars/internal/metric"
)

// ErrNotFound is returned when a record id does not exist in its collection.
var ErrNotFound = collection.ErrNotFound

// Seed holds the initial records for each financial collection.
type Seed struct {
	Transactions []Transaction `yaml:"transactions"`
	Budgets      []Budget      `yaml:"budgets"`
	Goals        []Goal        `yaml:"goals"`
	Investments  []Investment  `yaml:"investments"`
}

// Service owns the financial pillar's collections.
type Service struct {
	transactions *collection.Store[Transaction]
	budgets      *collection.Store[Budget]
	goals        *collection.Store[Goal]
	investments  *collection.Store[Investment]
}

func NewService(seed Seed) *Service {
	return &Service{
		transactions: collection.New(
			func(t Transaction) int { return t.ID },
			func(t Transaction, id int) Transaction { t.ID = id; return t },
			seed.Transactions,
		),
		budgets: collection.New(
			func(b Budget) int { return b.ID },
			func(b Budget, id int) Budget { b.ID = id; return b },
			seed.Budgets,
		),
		goals: collection.New(
			func(g Goal) int { return g.ID },
			func(g Goal, id int) Goal { g.ID = id; return g },
			seed.Goals,
		),
		investments: collection.New(
			func(i Investment) int { return i.ID },
			func(i Investment, id int) Investment { i.ID = id; return i },
			seed.Investments,
		),
	}
}

// TransactionParams carries the user-supplied fields of a transaction.
type TransactionParams struct {
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      int64           `json:"amount"`
	Description string          `json:"description"`
	Recurring   bool            `json:"recurring"`
	Frequency   Frequency       `json:"frequency,omitempty"`
}

func (s *Service) ListTransactions() []Transaction {
	return s.transactions.List()
}

func (s *Service) GetTransaction(id int) (Transaction, error) {
	return s.transactions.Get(id)
}

func (s *Service) CreateTransaction(p TransactionParams) Transaction {
	return s.transactions.Add(Transaction{
		Date:        p.Date,
		Type:        p.Type,
		Category:    p.Category,
		Amount:      p.Amount,
		Description: p.Description,
		Recurring:   p.Recurring,
		Frequency:   p.Frequency,
	})
}

func (s *Service) UpdateTransaction(id int, p TransactionParams) (Transaction, error) {
	tx := Transaction{
		ID:          id,
		Date:        p.Date,
		Type:        p.Type,
		Category:    p.Category,
		Amount:      p.Amount,
		Description: p.Description,
		Recurring:   p.Recurring,
		Frequency:   p.Frequency,
	}

	if !s.transactions.Update(tx) {
		return Transaction{}, ErrNotFound
	}

	return tx, nil
}

func (s *Service) DeleteTransaction(id int) {
	s.transactions.Remove(id)
}

// CreateTransactions appends a batch of imported transactions in order.
func (s *Service) CreateTransactions(params []TransactionParams) []Transaction {
	txs := make([]Transaction, 0, len(params))
	for _, p := range params {
		txs = append(txs, s.CreateTransaction(p))
	}

	return txs
}

// BudgetParams carries the user-supplied fields of a budget.
type BudgetParams struct {
	Category  string `json:"category"`
	Allocated int64  `json:"allocated"`
	Spent     int64  `json:"spent"`
	Period    Period `json:"period"`
	Notes     string `json:"notes,omitempty"`
}

func (s *Service) ListBudgets() []Budget {
	return s.budgets.List()
}

func (s *Service) GetBudget(id int) (Budget, error) {
	return s.budgets.Get(id)
}

func (s *Service) CreateBudget(p BudgetParams) Budget {
	return s.budgets.Add(Budget{
		Category:  p.Category,
		Allocated: p.Allocated,
		Spent:     p.Spent,
		Period:    p.Period,
		Notes:     p.Notes,
	})
}

func (s *Service) UpdateBudget(id int, p BudgetParams) (Budget, error) {
	b := Budget{
		ID:        id,
		Category:  p.Category,
		Allocated: p.Allocated,
		Spent:     p.Spent,
		Period:    p.Period,
		Notes:     p.Notes,
	}

	if !s.budgets.Update(b) {
		return Budget{}, ErrNotFound
	}

	return b, nil
}

func (s *Service) DeleteBudget(id int) {
	s.budgets.Remove(id)
}

// GoalParams carries the user-supplied fields of a savings goal.
type GoalParams struct {
	Name          string     `json:"name"`
	TargetAmount  int64      `json:"target_amount"`
	CurrentAmount int64      `json:"current_amount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Priority      Priority   `json:"priority"`
	Notes         string     `json:"notes,omitempty"`
}

func (s *Service) ListGoals() []Goal {
	return s.goals.List()
}

func (s *Service) GetGoal(id int) (Goal, error) {
	return s.goals.Get(id)
}

func (s *Service) CreateGoal(p GoalParams) Goal {
	return s.goals.Add(Goal{
		Name:          p.Name,
		TargetAmount:  p.TargetAmount,
		CurrentAmount: p.CurrentAmount,
		Deadline:      p.Deadline,
		Priority:      p.Priority,
		Notes:         p.Notes,
	})
}

func (s *Service) UpdateGoal(id int, p GoalParams) (Goal, error) {
	g := Goal{
		ID:            id,
		Name:          p.Name,
		TargetAmount:  p.TargetAmount,
		CurrentAmount: p.CurrentAmount,
		Deadline:      p.Deadline,
		Priority:      p.Priority,
		Notes:         p.Notes,
	}

	if !s.goals.Update(g) {
		return Goal{}, ErrNotFound
	}

	return g, nil
}

func (s *Service) DeleteGoal(id int) {
	s.goals.Remove(id)
}

// GoalProgress returns how far along a goal is, as a rounded percentage.
func (s *Service) GoalProgress(g Goal) int {
	return metric.Percentage(g.CurrentAmount, g.TargetAmount)
}

// InvestmentParams carries the user-supplied fields of an investment.
type InvestmentParams struct {
	Name         string         `json:"name"`
	Type         InvestmentType `json:"type"`
	Amount       int64          `json:"amount"`
	CurrentValue int64          `json:"current_value"`
	PurchaseDate time.Time      `json:"purchase_date"`
	Notes        string         `json:"notes,omitempty"`
}

func (s *Service) ListInvestments() []Investment {
	return s.investments.List()
}

func (s *Service) GetInvestment(id int) (Investment, error) {
	return s.investments.Get(id)
}

func (s *Service) CreateInvestment(p InvestmentParams) Investment {
	return s.investments.Add(Investment{
		Name:         p.Name,
		Type:         p.Type,
		Amount:       p.Amount,
		CurrentValue: p.CurrentValue,
		PurchaseDate: p.PurchaseDate,
		Notes:        p.Notes,
	})
}

func (s *Service) UpdateInvestment(id int, p InvestmentParams) (Investment, error) {
	inv := Investment{
		ID:           id,
		Name:         p.Name,
		Type:         p.Type,
		Amount:       p.Amount,
		CurrentValue: p.CurrentValue,
		PurchaseDate: p.PurchaseDate,
		Notes:        p.Notes,
	}

	if !s.investments.Update(inv) {
		return Investment{}, ErrNotFound
	}

	return inv, nil
}

func (s *Service) DeleteInvestment(id int) {
	s.investments.Remove(id)
}

// BudgetSpentPercent returns how much of a budget's allocation is spent,
// as a rounded percentage.
func (s *Service) BudgetSpentPercent(b Budget) int {
	return metric.Percentage(b.Spent, b.Allocated)
}

// Summary aggregates the pillar's headline numbers. All amounts are cents.
type Summary struct {
	Balance          int64   `json:"balance"`
	TotalIncome      int64   `json:"total_income"`
	TotalExpenses    int64   `json:"total_expenses"`
	TotalAllocated   int64   `json:"total_allocated"`
	TotalSpent       int64   `json:"total_spent"`
	BudgetRemaining  int64   `json:"budget_remaining"`
	BudgetSpentPct   int     `json:"budget_spent_pct"`
	TotalInvested    int64   `json:"total_invested"`
	InvestmentValue  int64   `json:"investment_value"`
	InvestmentGain   int64   `json:"investment_gain"`
	InvestmentGainPc float64 `json:"investment_gain_pct"`
}

// Summarize recomputes the pillar summary from current collection contents.
func (s *Service) Summarize() Summary {
	txs := s.transactions.List()
	budgets := s.budgets.List()
	investments := s.investments.List()

	income := metric.SumWhere(txs,
		func(t Transaction) bool { return t.Type == TypeIncome },
		func(t Transaction) int64 { return t.Amount })
	expenses := metric.SumWhere(txs,
		func(t Transaction) bool { return t.Type == TypeExpense },
		func(t Transaction) int64 { return t.Amount })

	allocated := metric.Sum(budgets, func(b Budget) int64 { return b.Allocated })
	spent := metric.Sum(budgets, func(b Budget) int64 { return b.Spent })

	invested := metric.Sum(investments, func(i Investment) int64 { return i.Amount })
	value := metric.Sum(investments, func(i Investment) int64 { return i.CurrentValue })

	return Summary{
		Balance:          income - expenses,
		TotalIncome:      income,
		TotalExpenses:    expenses,
		TotalAllocated:   allocated,
		TotalSpent:       spent,
		BudgetRemaining:  metric.Remaining(allocated, spent),
		BudgetSpentPct:   metric.Percentage(spent, allocated),
		TotalInvested:    invested,
		InvestmentValue:  value,
		InvestmentGain:   metric.Gain(invested, value),
		InvestmentGainPc: metric.GainPercent(invested, value),
	}
}

// Reset restores every financial collection to its seed records.
func (s *Service) Reset() {
	s.transactions.Reset()
	s.budgets.Reset()
	s.goals.Reset()
	s.investments.Reset()
}
