package handler

import (
	"net/http"

	"github.com/vfg2006/cobranca-dashboard/internal/api/handler/router"
	"github.com/vfg2006/cobranca-dashboard/internal/api/view"
	"github.com/vfg2006/cobranca-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/cobranca-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/cobranca-dashboard/internal/usecases/monitoring"
)

func Healthcheck(service monitoring.HealthService) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: DatabaseHealth(service),
		},
	}
}

func Dashboard(service dashboard.DashboardService, renderer *view.Renderer) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(service, renderer),
		},
		{
			Path:    "/api/dashboard",
			Method:  http.MethodGet,
			Handler: DashboardJSON(service),
		},
		{
			Path:    "/api/titulos-cliente",
			Method:  http.MethodGet,
			Handler: TitulosCliente(service),
		},
	}
}

func Export(service exporting.ExportService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/export-csv",
			Method:  http.MethodGet,
			Handler: ExportCSV(service),
		},
	}
}
