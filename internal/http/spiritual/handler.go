package spiritual

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pillars/internal/http/rest"
	"github.com/MrJamesThe3rd/pillars/internal/spiritual"
)

type Handler struct {
	svc *spiritual.Service
}

func NewHandler(svc *spiritual.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/meditations", func(r chi.Router) {
		r.Get("/", rest.List(h.svc.ListMeditations))
		r.Post("/", rest.Create(h.svc.CreateMeditation))
		r.Get("/{id}", rest.Get(h.svc.GetMeditation))
		r.Put("/{id}", rest.Update(h.svc.UpdateMeditation))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteMeditation))
		r.Post("/{id}/complete", rest.Toggle(h.svc.ToggleMeditationCompleted))
	})

	r.Route("/goals", func(r chi.Router) {
		r.Get("/", rest.List(h.svc.ListGoals))
		r.Post("/", rest.Create(h.svc.CreateGoal))
		r.Get("/{id}", rest.Get(h.svc.GetGoal))
		r.Put("/{id}", rest.Update(h.svc.UpdateGoal))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteGoal))
		r.Post("/{id}/complete", rest.Toggle(h.svc.ToggleGoalCompleted))
	})

	r.Route("/quotes", func(r chi.Router) {
		r.Get("/", rest.List(h.svc.ListQuotes))
		r.Post("/", rest.Create(h.svc.CreateQuote))
		r.Get("/{id}", rest.Get(h.svc.GetQuote))
		r.Put("/{id}", rest.Update(h.svc.UpdateQuote))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteQuote))
		r.Post("/{id}/favorite", rest.Toggle(h.svc.ToggleQuoteFavorite))
	})

	r.Route("/gratitude", func(r chi.Router) {
		r.Get("/", rest.List(h.svc.ListGratitude))
		r.Post("/", rest.CreateErr(h.svc.CreateGratitude))
		r.Get("/{id}", rest.Get(h.svc.GetGratitude))
		r.Put("/{id}", rest.Update(h.svc.UpdateGratitude))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteGratitude))
	})

	r.Route("/habits", func(r chi.Router) {
		r.Get("/", rest.List(h.svc.ListHabits))
		r.Post("/", rest.Create(h.svc.CreateHabit))
		r.Get("/{id}", rest.Get(h.svc.GetHabit))
		r.Put("/{id}", rest.Update(h.svc.UpdateHabit))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteHabit))
		r.Post("/{id}/complete", rest.Toggle(h.completeHabit))
	})

	r.Get("/summary", h.summary)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	rest.JSON(w, http.StatusOK, h.svc.Summarize())
}

func (h *Handler) completeHabit(id int) (spiritual.Habit, error) {
	return h.svc.CompleteHabit(id, time.Now())
}
