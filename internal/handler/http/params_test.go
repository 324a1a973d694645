package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithID(id string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathID(t *testing.T) {
	t.Parallel()

	id, err := pathID(requestWithID("0b8c9a4e-5af1-4f30-9a1d-2c3e4f5a6b7c"))
	require.NoError(t, err)
	assert.Equal(t, "0b8c9a4e-5af1-4f30-9a1d-2c3e4f5a6b7c", id)

	for _, bad := range []string{"", "not-a-uuid", "123", "'; DROP TABLE users;--"} {
		_, err := pathID(requestWithID(bad))
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, "id %q", bad)
	}
}
