package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/cobranca-dashboard/infrastructure/repository"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
	"github.com/vfg2006/cobranca-dashboard/pkg/apiErrors"
	"github.com/vfg2006/cobranca-dashboard/pkg/log"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, filter domain.ListFilter, tab string) (*domain.Dashboard, error)
	ListTitulosVencidosCliente(ctx context.Context, codigo string) ([]*domain.TituloVencido, error)
	// ReferenceDate é o dia anterior à data atual no fuso da aplicação
	ReferenceDate() time.Time
}

type Option func(*Service)

// WithClock substitui o relógio usado para calcular o dia de referência
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	clienteRepository repository.ClienteRepository
	tituloRepository  repository.TituloRepository
	envioRepository   repository.EnvioRepository
	overdueRepository repository.OverdueRepository
	location          *time.Location
	now               func() time.Time
}

func NewService(
	clienteRepository repository.ClienteRepository,
	tituloRepository repository.TituloRepository,
	envioRepository repository.EnvioRepository,
	overdueRepository repository.OverdueRepository,
	location *time.Location,
	opts ...Option,
) DashboardService {
	if location == nil {
		location = time.UTC
	}

	s := &Service{
		clienteRepository: clienteRepository,
		tituloRepository:  tituloRepository,
		envioRepository:   envioRepository,
		overdueRepository: overdueRepository,
		location:          location,
		now:               time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) ReferenceDate() time.Time {
	y, m, d := s.now().In(s.location).AddDate(0, 0, -1).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.location)
}

// GetDashboard executa em paralelo as contagens gerais, as três listagens com seus totais
// e a agregação de vencidos. O primeiro erro cancela as demais consultas.
func (s *Service) GetDashboard(ctx context.Context, filter domain.ListFilter, tab string) (*domain.Dashboard, error) {
	logger := log.ForContext(ctx)

	referenceDate := s.ReferenceDate()
	overdueFilter := domain.OverdueFilter{
		ReferenceDate: referenceDate,
		Sort:          filter.Sort,
		Order:         filter.Order,
		Search:        filter.Search,
	}
	// As contagens gerais ignoram busca e data; sem esses filtros os totais das listagens já servem
	reuseTotals := filter.Search == "" && filter.Date == nil
	unfiltered := domain.NewListFilter(domain.DefaultPage, domain.DefaultPageSize, "", "", "", nil)

	var (
		stats         domain.Stats
		clientes      []*domain.Cliente
		titulos       []*domain.Titulo
		envios        []*domain.Envio
		totalClientes int64
		totalTitulos  int64
		totalEnvios   int64
		overdue       []*domain.ClienteVencido
	)

	g, gctx := errgroup.WithContext(ctx)

	if !reuseTotals {
		g.Go(func() (err error) {
			stats.ClientesCount, err = s.clienteRepository.Count(gctx, unfiltered)
			return err
		})
		g.Go(func() (err error) {
			stats.TitulosCount, err = s.tituloRepository.Count(gctx, unfiltered)
			return err
		})
		g.Go(func() (err error) {
			stats.EnviosCount, err = s.envioRepository.Count(gctx, unfiltered)
			return err
		})
	}

	g.Go(func() (err error) {
		clientes, err = s.clienteRepository.List(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		totalClientes, err = s.clienteRepository.Count(gctx, filter)
		return err
	})

	g.Go(func() (err error) {
		titulos, err = s.tituloRepository.List(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		totalTitulos, err = s.tituloRepository.Count(gctx, filter)
		return err
	})

	g.Go(func() (err error) {
		envios, err = s.envioRepository.List(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		totalEnvios, err = s.envioRepository.Count(gctx, filter)
		return err
	})

	g.Go(func() (err error) {
		overdue, err = s.overdueRepository.ListOverdueClientes(gctx, overdueFilter)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("dashboard: falha ao consultar o banco de dados")
		return nil, NewDashboardError(ErrFetchDashboard, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if reuseTotals {
		stats = domain.Stats{
			ClientesCount: totalClientes,
			TitulosCount:  totalTitulos,
			EnviosCount:   totalEnvios,
		}
	}

	if overdue == nil {
		overdue = make([]*domain.ClienteVencido, 0)
	}

	return &domain.Dashboard{
		Tab:      domain.ParseTab(tab),
		Filter:   filter,
		Stats:    stats,
		Clientes: domain.NewPage(clientes, totalClientes, filter),
		Titulos:  domain.NewPage(titulos, totalTitulos, filter),
		Envios:   domain.NewPage(envios, totalEnvios, filter),
		Overdue: domain.Overdue{
			ReferenceDate: referenceDate,
			Items:         overdue,
			Summary:       domain.SummarizeOverdue(overdue),
		},
		GeneratedAt: s.now().In(s.location),
	}, nil
}

func (s *Service) ListTitulosVencidosCliente(ctx context.Context, codigo string) ([]*domain.TituloVencido, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, NewDashboardError(ErrCodigoRequired, apiErrors.ErrMissingRequiredData, "informe o parâmetro codigo")
	}

	titulos, err := s.tituloRepository.ListOverdueByCliente(ctx, codigo, s.ReferenceDate())
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("codigo", codigo).Error("dashboard: falha ao buscar títulos do cliente")
		return nil, NewDashboardError(ErrFetchTitulosCliente, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if titulos == nil {
		titulos = make([]*domain.TituloVencido, 0)
	}

	return titulos, nil
}
