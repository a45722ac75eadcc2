package physical

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pillars/internal/http/rest"
	"github.com/MrJamesThe3rd/pillars/internal/physical"
)

type Handler struct {
	svc *physical.Service
}

func NewHandler(svc *physical.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/workouts", func(r chi.Router) {
		r.Get("/", rest.List(h.svc.ListWorkouts))
		r.Post("/", rest.Create(h.svc.CreateWorkout))
		r.Get("/{id}", rest.Get(h.svc.GetWorkout))
		r.Put("/{id}", rest.Update(h.svc.UpdateWorkout))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteWorkout))
		r.Post("/{id}/complete", rest.Toggle(h.svc.ToggleWorkoutCompleted))
	})

	r.Route("/goals", func(r chi.Router) {
		r.Get("/", rest.List(h.listGoals))
		r.Post("/", rest.Create(h.createGoal))
		r.Get("/{id}", rest.Get(h.getGoal))
		r.Put("/{id}", rest.Update(h.updateGoal))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteGoal))
	})

	r.Route("/reminders", func(r chi.Router) {
		r.Get("/", rest.List(h.svc.ListReminders))
		r.Post("/", rest.Create(h.svc.CreateReminder))
		r.Get("/{id}", rest.Get(h.svc.GetReminder))
		r.Put("/{id}", rest.Update(h.svc.UpdateReminder))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteReminder))
		r.Post("/{id}/complete", rest.Toggle(h.svc.ToggleReminderCompleted))
	})

	r.Get("/summary", h.summary)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	rest.JSON(w, http.StatusOK, h.svc.Summarize())
}

// goalResponse adds the derived progress percentage to a goal.
type goalResponse struct {
	physical.Goal
	Progress int `json:"progress"`
}

func (h *Handler) toGoalResponse(g physical.Goal) goalResponse {
	return goalResponse{Goal: g, Progress: h.svc.GoalProgress(g)}
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

func (h *Handler) createGoal(p physical.GoalParams) goalResponse {
	return h.toGoalResponse(h.svc.CreateGoal(p))
}

func (h *Handler) updateGoal(id int, p physical.GoalParams) (goalResponse, error) {
	g, err := h.svc.UpdateGoal(id, p)
	if err != nil {
		return goalResponse{}, err
	}

	return h.toGoalResponse(g), nil
}
