package financial

import (
	"github.com/MrJamesThe3rd/pillars/internal/financial"
	"github.com/MrJamesThe3rd/pillars/internal/metric"
)

// budgetResponse adds the derived spent percentage to a budget.
type budgetResponse struct {
	financial.Budget
	SpentPercent int `json:"spent_percent"`
}

// goalResponse adds the derived progress percentage to a savings goal.
type goalResponse struct {
	financial.Goal
	Progress int `json:"progress"`
}

// investmentResponse adds the derived gain figures to an investment.
type investmentResponse struct {
	financial.Investment
	Gain        int64   `json:"gain"`
	GainPercent float64 `json:"gain_percent"`
}

func (h *Handler) toBudgetResponse(b financial.Budget) budgetResponse {
	return budgetResponse{Budget: b, SpentPercent: h.svc.BudgetSpentPercent(b)}
}

func (h *Handler) toGoalResponse(g financial.Goal) goalResponse {
	return goalResponse{Goal: g, Progress: h.svc.GoalProgress(g)}
}

func toInvestmentResponse(i financial.Investment) investmentResponse {
	return investmentResponse{
		Investment:  i,
		Gain:        metric.Gain(i.Amount, i.CurrentValue),
		GainPercent: metric.GainPercent(i.Amount, i.CurrentValue),
	}
}

func (h *Handler) listBudgets() []budgetResponse {
	budgets := h.svc.ListBudgets()

	resp := make([]budgetResponse, len(budgets))
	for i, b := range budgets {
		resp[i] = h.toBudgetResponse(b)
	}

	return resp
}

func (h *Handler) getBudget(id int) (budgetResponse, error) {
	b, err := h.svc.GetBudget(id)
	if err != nil {
		return budgetResponse{}, err
	}

	return h.toBudgetResponse(b), nil
}

func (h *Handler) createBudget(p financial.BudgetParams) budgetResponse {
	return h.toBudgetResponse(h.svc.CreateBudget(p))
}

func (h *Handler) updateBudget(id int, p financial.BudgetParams) (budgetResponse, error) {
	b, err := h.svc.UpdateBudget(id, p)
	if err != nil {
		return budgetResponse{}, err
	}

	return h.toBudgetResponse(b), nil
}

func (h *Handler) listGoals() []goalResponse {
	goals := h.svc.ListGoals()

	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = h.toGoalResponse(g)
	}

	return resp
}

func (h *Handler) getGoal(id int) (goalResponse, error) {
	g, err := h.svc.GetGoal(id)
	if err != nil {
		return goalResponse{}, err
	}

	return h.toGoalResponse(g), nil
}

func (h *Handler) createGoal(p financial.GoalParams) goalResponse {
	return h.toGoalResponse(h.svc.CreateGoal(p))
}

func (h *Handler) updateGoal(id int, p financial.GoalParams) (goalResponse, error) {
	g, err := h.svc.UpdateGoal(id, p)
	if err != nil {
		return goalResponse{}, err
	}

	return h.toGoalResponse(g), nil
}

func (h *Handler) listInvestments() []investmentResponse {
	investments := h.svc.ListInvestments()

	resp := make([]investmentResponse, len(investments))
	for i, inv := range investments {
		resp[i] = toInvestmentResponse(inv)
	}

	return resp
}

func (h *Handler) getInvestment(id int) (investmentResponse, error) {
	i, err := h.svc.GetInvestment(id)
	if err != nil {
		return investmentResponse{}, err
	}

	return toInvestmentResponse(i), nil
}

func (h *Handler) createInvestment(p financial.InvestmentParams) investmentResponse {
	return toInvestmentResponse(h.svc.CreateInvestment(p))
}

func (h *Handler) updateInvestment(id int, p financial.InvestmentParams) (investmentResponse, error) {
	i, err := h.svc.UpdateInvestment(id, p)
	if err != nil {
		return investmentResponse{}, err
	}

	return toInvestmentResponse(i), nil
}
