package repository

//go:generate mockgen -source=health.go -destination=mocks/health.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/vfg2006/cobranca-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
)

const healthQuery = "SELECT NOW() AS agora, version() AS versao"

type HealthRepository interface {
	Check(ctx context.Context) (*domain.DatabaseInfo, error)
}

type healthRepository struct {
	conn *postgres.Connection
}

func NewHealthRepository(conn *postgres.Connection) HealthRepository {
	return &healthRepository{
		conn: conn,
	}
}

func (r *healthRepository) Check(ctx context.Context) (*domain.DatabaseInfo, error) {
	info := &domain.DatabaseInfo{}

	err := r.conn.QueryRow(ctx, healthQuery).Scan(&info.CurrentTime, &info.Version)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao consultar o banco de dados: %w", err)
	}

	return info, nil
}
