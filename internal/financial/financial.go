package financial

import "time"

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Frequency represents how often a recurring transaction repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Period represents a budget period.
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Priority represents a goal's priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// InvestmentType represents the asset class of an investment.
type InvestmentType string

const (
	InvestmentStock      InvestmentType = "stock"
	InvestmentCrypto     InvestmentType = "crypto"
	InvestmentRealEstate InvestmentType = "real_estate"
	InvestmentOther      InvestmentType = "other"
)

// Transaction represents a single income or expense movement.
type Transaction struct {
	ID          int             `json:"id" yaml:"id"`
	Date        time.Time       `json:"date" yaml:"date"`
	Type        TransactionType `json:"type" yaml:"type"`
	Category    string          `json:"category" yaml:"category"`
	Amount      int64           `json:"amount" yaml:"amount"` // cents
	Description string          `json:"description" yaml:"description"`
	Recurring   bool            `json:"recurring" yaml:"recurring"`
	Frequency   Frequency       `json:"frequency,omitempty" yaml:"frequency,omitempty"`
}

// Budget represents an allocation for a spending category. The spent/allocated
// percentage is derived on read, never stored.
type Budget struct {
	ID        int    `json:"id" yaml:"id"`
	Category  string `json:"category" yaml:"category"`
	Allocated int64  `json:"allocated" yaml:"allocated"` // cents
	Spent     int64  `json:"spent" yaml:"spent"`         // cents
	Period    Period `json:"period" yaml:"period"`
	Notes     string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Goal represents a savings goal. Progress is derived from
// currentAmount/targetAmount.
type Goal struct {
	ID            int        `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	TargetAmount  int64      `json:"target_amount" yaml:"target_amount"`   // cents
	CurrentAmount int64      `json:"current_amount" yaml:"current_amount"` // cents
	Deadline      *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Priority      Priority   `json:"priority" yaml:"priority"`
	Notes         string     `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Investment represents a held asset. Gain is derived from
// currentValue-amount.
type Investment struct {
	ID           int            `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	Type         InvestmentType `json:"type" yaml:"type"`
	Amount       int64          `json:"amount" yaml:"amount"`               // purchase cost, cents
	CurrentValue int64          `json:"current_value" yaml:"current_value"` // cents
	PurchaseDate time.Time      `json:"purchase_date" yaml:"purchase_date"`
	Notes        string         `json:"notes,omitempty" yaml:"notes,omitempty"`
}
