package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cobranca-dashboard/internal/usecases/monitoring"
)

// HealthcheckHandler responde à verificação de liveness sem consultar o banco
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// DatabaseHealth executa a consulta de verificação no banco: 200 quando saudável, 503 caso contrário
func DatabaseHealth(service monitoring.HealthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := service.Check(r.Context())

		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}

		writeJSON(w, r, code, status)
	}
}
