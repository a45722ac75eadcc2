package intellectual

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pillars/internal/http/rest"
	"github.com/MrJamesThe3rd/pillars/internal/intellectual"
)

type Handler struct {
	svc *intellectual.Service
}

func NewHandler(svc *intellectual.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/readings", func(r chi.Router) {
		r.Get("/", rest.List(h.listReadings))
		r.Post("/", rest.Create(h.createReading))
		r.Get("/{id}", rest.Get(h.getReading))
		r.Put("/{id}", rest.Update(h.updateReading))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteReading))
		r.Post("/{id}/complete", rest.Toggle(h.toggleReadingCompleted))
	})

	r.Route("/courses", func(r chi.Router) {
		r.Get("/", rest.List(h.svc.ListCourses))
		r.Post("/", rest.Create(h.svc.CreateCourse))
		r.Get("/{id}", rest.Get(h.svc.GetCourse))
		r.Put("/{id}", rest.Update(h.svc.UpdateCourse))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteCourse))
		r.Post("/{id}/complete", rest.Toggle(h.svc.ToggleCourseCompleted))
	})

	r.Route("/flashcards", func(r chi.Router) {
		r.Get("/", rest.List(h.svc.ListFlashcards))
		r.Post("/", rest.Create(h.svc.CreateFlashcard))
		r.Get("/{id}", rest.Get(h.svc.GetFlashcard))
		r.Put("/{id}", rest.Update(h.svc.UpdateFlashcard))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteFlashcard))
		r.Post("/{id}/mastered", rest.Toggle(h.svc.ToggleFlashcardMastered))
	})

	r.Route("/mindmaps", func(r chi.Router) {
		r.Get("/", rest.List(h.svc.ListMindMaps))
		r.Post("/", rest.Create(h.svc.CreateMindMap))
		r.Get("/{id}", rest.Get(h.svc.GetMindMap))
		r.Put("/{id}", rest.Update(h.svc.UpdateMindMap))
		r.Delete("/{id}", rest.Delete(h.svc.DeleteMindMap))
	})

	r.Get("/summary", h.summary)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	rest.JSON(w, http.StatusOK, h.svc.Summarize())
}

// readingResponse adds the page-derived progress next to the stored one.
type readingResponse struct {
	intellectual.Reading
	PageProgress int `json:"page_progress"`
}

func (h *Handler) toReadingResponse(rd intellectual.Reading) readingResponse {
	return readingResponse{Reading: rd, PageProgress: h.svc.PageProgress(rd)}
}

func (h *Handler) listReadings() []readingResponse {
	readings := h.svc.ListReadings()

	resp := make([]readingResponse, len(readings))
	for i, rd := range readings {
		resp[i] = h.toReadingResponse(rd)
	}

	return resp
}

func (h *Handler) getReading(id int) (readingResponse, error) {
	rd, err := h.svc.GetReading(id)
	if err != nil {
		return readingResponse{}, err
	}

	return h.toReadingResponse(rd), nil
}

func (h *Handler) createReading(p intellectual.ReadingParams) readingResponse {
	return h.toReadingResponse(h.svc.CreateReading(p))
}

func (h *Handler) updateReading(id int, p intellectual.ReadingParams) (readingResponse, error) {
	rd, err := h.svc.UpdateReading(id, p)
	if err != nil {
		return readingResponse{}, err
	}

	return h.toReadingResponse(rd), nil
}

func (h *Handler) toggleReadingCompleted(id int) (readingResponse, error) {
	rd, err := h.svc.ToggleReadingCompleted(id)
	if err != nil {
		return readingResponse{}, err
	}

	return h.toReadingResponse(rd), nil
}
