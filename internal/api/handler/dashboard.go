package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/cobranca-dashboard/internal/api/view"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
	"github.com/vfg2006/cobranca-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/cobranca-dashboard/pkg/apiErrors"
	"github.com/vfg2006/cobranca-dashboard/pkg/log"
	"github.com/vfg2006/cobranca-dashboard/pkg/utils"
)

// dashboardRequest são os parâmetros da query string já normalizados
type dashboardRequest struct {
	filter domain.ListFilter
	tab    string
	date   string
}

// parseDashboardRequest nunca falha: valores inválidos caem nos padrões e datas inválidas são ignoradas
func parseDashboardRequest(r *http.Request) dashboardRequest {
	q := r.URL.Query()

	var date *time.Time
	dateStr := strings.TrimSpace(q.Get("date"))
	if dateStr != "" {
		parsed, err := utils.ParseDate(dateStr)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warnf("dashboard: data inválida ignorada: %q", dateStr)
			dateStr = ""
		} else {
			date = parsed
		}
	}

	filter := domain.NewListFilter(
		utils.QueryInt(q, "page", domain.DefaultPage),
		utils.QueryInt(q, "limit", domain.DefaultPageSize),
		q.Get("sort"),
		q.Get("order"),
		q.Get("query"),
		date,
	)

	return dashboardRequest{
		filter: filter,
		tab:    domain.ParseTab(q.Get("tab")),
		date:   dateStr,
	}
}

func dashboardErrorCode(err error) string {
	var dashErr *dashboard.DashboardError
	if errors.As(err, &dashErr) {
		return dashErr.Code
	}
	return apiErrors.ErrInternalServer
}

// DashboardPage renderiza o dashboard em HTML
func DashboardPage(service dashboard.DashboardService, renderer *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := parseDashboardRequest(r)

		data, err := service.GetDashboard(r.Context(), req.filter, req.tab)
		if err != nil {
			http.Error(w, "Erro ao carregar o dashboard", apiErrors.StatusCode(dashboardErrorCode(err)))
			return
		}

		// Renderiza em buffer para não enviar HTML parcial em caso de erro no template
		var buf bytes.Buffer
		if err := renderer.Dashboard(&buf, view.NewPage(data, req.date)); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao renderizar template")
			http.Error(w, "Erro ao renderizar o dashboard", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("dashboard: erro ao enviar resposta")
		}
	}
}

// DashboardJSON devolve os mesmos dados do dashboard em JSON
func DashboardJSON(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := parseDashboardRequest(r)

		data, err := service.GetDashboard(r.Context(), req.filter, req.tab)
		if err != nil {
			apiErrors.WriteError(w, dashboardErrorCode(err), "Erro ao carregar o dashboard", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, data)
	}
}
