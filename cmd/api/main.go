package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cobranca-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/cobranca-dashboard/infrastructure/repository"
	"github.com/vfg2006/cobranca-dashboard/internal/api"
	"github.com/vfg2006/cobranca-dashboard/internal/api/view"
	"github.com/vfg2006/cobranca-dashboard/internal/config"
	"github.com/vfg2006/cobranca-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/cobranca-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/cobranca-dashboard/internal/usecases/monitoring"
	"github.com/vfg2006/cobranca-dashboard/pkg/log"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	clienteRepo := repository.NewClienteRepository(pgConn)
	tituloRepo := repository.NewTituloRepository(pgConn)
	envioRepo := repository.NewEnvioRepository(pgConn)
	overdueRepo := repository.NewOverdueRepository(pgConn)
	healthRepo := repository.NewHealthRepository(pgConn)

	dashboardService := dashboard.NewService(clienteRepo, tituloRepo, envioRepo, overdueRepo, cfg.App.Location)
	exportService := exporting.NewService(envioRepo)
	healthService := monitoring.NewService(healthRepo)

	logrus.WithField("timezone", cfg.App.Timezone).
		Infof("Data de referência dos vencidos: %s", dashboardService.ReferenceDate().Format(time.DateOnly))

	renderer, err := view.New()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar templates do dashboard")
	}

	server, err := api.New(cfg, dashboardService, exportService, healthService, renderer)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn abre o pool do PostgreSQL. Falha no ping não impede a subida do servidor;
// o estado do banco fica visível em /api/health.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := conn.Ping(pingCtx); err != nil {
		logrus.WithError(err).Warn("PostgreSQL indisponível na inicialização")
		return conn
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
