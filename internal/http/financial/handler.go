package financial

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
	"github.com/MrJamesThe3rd/pillars/internal/http/rest"
)

type Handler struct {
	svc *financial.Service
}

func NewHandler(svc *financial.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", rest.List(h.svc.ListTransactions))
		r.Post("/", rest.Create(h.svc.CreateTransaction))
		r.Get("/{id}", rest.Get(h.svc.GetTransaction))
		r.Put("/{id}", rest.Update(h.svc.UpdateTransaction))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteTransaction))
	})

	r.Route("/budgets", func(r chi.Router) {
		r.Get("/", rest.List(h.listBudgets))
		r.Post("/", rest.Create(h.createBudget))
		r.Get("/{id}", rest.Get(h.getBudget))
		r.Put("/{id}", rest.Update(h.updateBudget))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteBudget))
	})

	r.Route("/goals", func(r chi.Router) {
		r.Get("/", rest.List(h.listGoals))
		r.Post("/", rest.Create(h.createGoal))
		r.Get("/{id}", rest.Get(h.getGoal))
		r.Put("/{id}", rest.Update(h.updateGoal))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteGoal))
	})

	r.Route("/investments", func(r chi.Router) {
		r.Get("/", rest.List(h.listInvestments))
		r.Post("/", rest.Create(h.createInvestment))
		r.Get("/{id}", rest.Get(h.getInvestment))
		r.Put("/{id}", rest.Update(h.updateInvestment))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteInvestment))
	})

	r.Get("/summary", h.summary)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	rest.JSON(w, http.StatusOK, h.svc.Summarize())
}
