package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nomina-hr/nomina-backend-go/internal/handler/http/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The id guard rejects malformed ids before the service runs, so a nil
// service is safe here.
func newPayrollTestRouter() *chi.Mux {
	h := NewPayrollHandler(nil)
	r := chi.NewRouter()
	r.Get("/payroll/records/{id}", h.GetPayrollRecord)
	r.Delete("/payroll/records/{id}", h.DeletePayrollRecord)
	return r
}

func TestPayrollRecordIDValidation(t *testing.T) {
	router := newPayrollTestRouter()

	tests := []struct {
		name   string
		method string
		target string
	}{
		{"get with malformed id", http.MethodGet, "/payroll/records/not-a-uuid"},
		{"get with truncated uuid", http.MethodGet, "/payroll/records/123e4567-e89b-12d3"},
		{"delete with malformed id", http.MethodDelete, "/payroll/records/not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp response.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
		})
	}
}
