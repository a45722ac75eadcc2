// Package rest holds shared JSON plumbing for the API handlers. All
// collections expose the same CRUD shape, so the per-verb handlers are
// generic over the record and params types.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pillars/internal/collection"
)

// ID extracts the integer {id} route parameter.
func ID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// List handles GET / for a collection.
func List[T any](list func() []T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := list()
		if items == nil {
			items = []T{}
		}

		JSON(w, http.StatusOK, items)
	}
}

// Get handles GET /{id} for a collection.
func Get[T any](get func(int) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		item, err := get(id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		JSON(w, http.StatusOK, item)
	}
}

// Create handles POST / for a collection whose create cannot fail.
func Create[P, T any](create func(P) T) http.HandlerFunc {
	return CreateErr(func(p P) (T, error) {
		return create(p), nil
	})
}

// CreateErr handles POST / for a collection whose create validates params.
func CreateErr[P, T any](create func(P) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params P
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		item, err := create(params)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		JSON(w, http.StatusCreated, item)
	}
}

// Update handles PUT /{id} for a collection.
func Update[P, T any](update func(int, P) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var params P
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		item, err := update(id, params)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		JSON(w, http.StatusOK, item)
	}
}

// Delete handles DELETE /{id} for a collection. Deleting an absent id is a
// no-op and still answers 204.
func Delete(del func(int)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		del(id)
		w.WriteHeader(http.StatusNoContent)
	}
}

// Toggle handles POST /{id}/<action> for boolean flips and similar
// single-record mutations.
func Toggle[T any](toggle func(int) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		item, err := toggle(id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		JSON(w, http.StatusOK, item)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, collection.ErrNotFound) {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	http.Error(w, err.Error(), http.StatusUnprocessableEntity)
}
