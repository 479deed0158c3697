package monitoring

import (
	"context"
	"time"

	"github.com/vfg2006/cobranca-dashboard/infrastructure/repository"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
	"github.com/vfg2006/cobranca-dashboard/pkg/log"
)

const checkTimeout = 5 * time.Second

type HealthService interface {
	Check(ctx context.Context) domain.HealthStatus
}

type Service struct {
	healthRepository repository.HealthRepository
	now              func() time.Time
}

func NewService(healthRepository repository.HealthRepository) HealthService {
	return &Service{
		healthRepository: healthRepository,
		now:              time.Now,
	}
}

// Check nunca retorna erro: a falha do banco é reportada no próprio status
func (s *Service) Check(ctx context.Context) domain.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	info, err := s.healthRepository.Check(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("health: banco de dados indisponível")

		return domain.HealthStatus{
			Status:    domain.HealthStatusUnhealthy,
			Database:  domain.DatabaseDisconnected,
			Timestamp: s.now(),
			Error:     err.Error(),
		}
	}

	return domain.HealthStatus{
		Status:    domain.HealthStatusHealthy,
		Database:  domain.DatabaseConnected,
		Timestamp: info.CurrentTime,
		Version:   info.Version,
	}
}
