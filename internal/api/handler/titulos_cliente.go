package handler

import (
	"net/http"

	"github.com/vfg2006/cobranca-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/cobranca-dashboard/pkg/apiErrors"
)

// TitulosCliente lista os títulos vencidos até ontem do cliente informado em ?codigo=
func TitulosCliente(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codigo := r.URL.Query().Get("codigo")

		titulos, err := service.ListTitulosVencidosCliente(r.Context(), codigo)
		if err != nil {
			code := dashboardErrorCode(err)
			message := "Erro ao buscar títulos do cliente"
			if code == apiErrors.ErrMissingRequiredData {
				message = "Código do cliente é obrigatório"
			}

			apiErrors.WriteError(w, code, message, nil)
			return
		}

		writeJSON(w, r, http.StatusOK, titulos)
	}
}
