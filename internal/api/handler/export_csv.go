package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/cobranca-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/cobranca-dashboard/pkg/apiErrors"
	"github.com/vfg2006/cobranca-dashboard/pkg/log"
	"github.com/vfg2006/cobranca-dashboard/pkg/utils"
)

// ExportCSV gera o arquivo com os envios de WhatsApp do dia informado em ?date=YYYY-MM-DD
func ExportCSV(service exporting.ExportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
		if dateStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data é obrigatória", nil)
			return
		}

		date, err := utils.ParseDate(dateStr)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warnf("export: data inválida: %q", dateStr)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		export, err := service.ExportEnvios(r.Context(), *date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar CSV", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName))
		w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(export.Content); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("export: erro ao enviar CSV")
		}
	}
}
