package http

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// pathID extracts the {id} route parameter and rejects values that are
// not UUIDs before they reach the database.
func pathID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		return "", validator.ValidationErrors{
			{Field: "id", Message: "must be a valid UUID"},
		}
	}
	return id, nil
}
