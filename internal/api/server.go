package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cobranca-dashboard/internal/api/handler"
	"github.com/vfg2006/cobranca-dashboard/internal/api/handler/router"
	"github.com/vfg2006/cobranca-dashboard/internal/api/view"
	"github.com/vfg2006/cobranca-dashboard/internal/config"
	"github.com/vfg2006/cobranca-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/cobranca-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/cobranca-dashboard/internal/usecases/monitoring"
	"github.com/vfg2006/cobranca-dashboard/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	dashboardService dashboard.DashboardService,
	exportService exporting.ExportService,
	healthService monitoring.HealthService,
	renderer *view.Renderer,
) (*Server, error) {
	if renderer == nil {
		return nil, fmt.Errorf("renderer do dashboard não informado")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, dashboardService, exportService, healthService, renderer),
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      60 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas da aplicação com os middlewares globais
func NewHandler(
	config *config.Config,
	dashboardService dashboard.DashboardService,
	exportService exporting.ExportService,
	healthService monitoring.HealthService,
	renderer *view.Renderer,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(healthService)...),
		router.WithRoutes(handler.Dashboard(dashboardService, renderer)...),
		router.WithRoutes(handler.Export(exportService)...),
		router.WithNotFound(handler.NotFound()),
		router.WithMethodNotAllowed(handler.MethodNotAllowed()),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serverErr:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
