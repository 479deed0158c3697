package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rt := New(
		WithRoutes(Route{Path: "/api/health", Method: http.MethodGet, Handler: ok}),
		WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})),
		WithMethodNotAllowed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusMethodNotAllowed)
		})),
	)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "GET registrado", method: http.MethodGet, path: "/api/health", want: http.StatusOK},
		{name: "HEAD derivado do GET", method: http.MethodHead, path: "/api/health", want: http.StatusOK},
		{name: "método não permitido", method: http.MethodPost, path: "/api/health", want: http.StatusMethodNotAllowed},
		{name: "rota inexistente", method: http.MethodGet, path: "/nada", want: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
