package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cobranca-dashboard/pkg/log"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Cors([]string{"https://painel.exemplo.com.br"})(next)

	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://painel.exemplo.com.br")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "https://painel.exemplo.com.br", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Content-Disposition", rec.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://outro.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/export-csv", nil)
		req.Header.Set("Origin", "https://painel.exemplo.com.br")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("curinga", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		Cors([]string{"*"})(next).ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoggingAndPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var seenCorrelationID string
	chain := alice.New(LogPanicMiddleware(), LoggingMiddleware())

	t.Run("propaga o ID de correlação", func(t *testing.T) {
		handler := chain.ThenFunc(func(w http.ResponseWriter, r *http.Request) {
			seenCorrelationID = log.GetCorrelationID(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(CorrelationIDHeader, "6F9619FF-8B86-D011-B42D-00C04FC964FF")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", seenCorrelationID)
		assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", rec.Header().Get(CorrelationIDHeader))
	})

	t.Run("descarta ID fora do formato UUID", func(t *testing.T) {
		handler := chain.ThenFunc(func(w http.ResponseWriter, r *http.Request) {
			seenCorrelationID = log.GetCorrelationID(r.Context())
		})

		for _, incoming := range []string{
			"abc-123",
			strings.Repeat("a", 4096),
			"6f9619ff-8b86-d011-b42d-00c04fc964ff\r\nX-Injetado: 1",
			"{6f9619ff-8b86-d011-b42d-00c04fc964ff}",
		} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(CorrelationIDHeader, incoming)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			echoed := rec.Header().Get(CorrelationIDHeader)
			assert.NotEqual(t, incoming, echoed)
			assert.Len(t, echoed, 36)
			assert.Equal(t, echoed, seenCorrelationID)
		}
	})

	t.Run("gera ID quando ausente", func(t *testing.T) {
		handler := chain.ThenFunc(func(w http.ResponseWriter, r *http.Request) {})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rec.Header().Get(CorrelationIDHeader), 36)
	})

	t.Run("panic vira 500", func(t *testing.T) {
		handler := chain.ThenFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("falha inesperada")
		})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
