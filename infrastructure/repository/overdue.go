package repository

//go:generate mockgen -source=overdue.go -destination=mocks/overdue.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cobranca-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
)

var overdueSort = sortColumns{
	columns: map[string]string{
		"nome_fantasia": "c.nome_fantasia",
		"whatsapp":      "c.whatsapp",
		"qtd_titulos":   "qtd_titulos",
		"valor":         "valor",
	},
	fallback: "qtd_titulos",
}

type OverdueRepository interface {
	// ListOverdueClientes agrupa por cliente os títulos com vencimento original na data de referência e saldo positivo
	ListOverdueClientes(ctx context.Context, filter domain.OverdueFilter) ([]*domain.ClienteVencido, error)
}

type overdueRepository struct {
	conn *postgres.Connection
}

func NewOverdueRepository(conn *postgres.Connection) OverdueRepository {
	return &overdueRepository{
		conn: conn,
	}
}

func buildOverdueQuery(filter domain.OverdueFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select(
			"c.id AS cliente_id",
			"c.codigo",
			"c.nome",
			"c.nome_fantasia",
			"c.whatsapp",
			"COUNT(t.id) AS qtd_titulos",
			"SUM(t.saldo) AS valor",
		).
		From("clientes c").
		Join("titulos t ON c.codigo = t.codigo").
		Where(squirrel.Expr("t.vencto_orig::date = ?::date", filter.ReferenceDate.Format(time.DateOnly))).
		Where("t.saldo > 0").
		GroupBy("c.id", "c.codigo", "c.nome", "c.nome_fantasia", "c.whatsapp").
		OrderBy(overdueSort.orderBy(filter.Sort, filter.Order)...).
		PlaceholderFormat(squirrel.Dollar)

	if filter.Search != "" {
		builder = builder.Where(ilikeAny(filter.SearchPattern(), "c.nome", "c.nome_fantasia", "c.whatsapp"))
	}

	return builder
}

func (r *overdueRepository) ListOverdueClientes(ctx context.Context, filter domain.OverdueFilter) ([]*domain.ClienteVencido, error) {
	query, args, err := buildOverdueQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar títulos vencidos: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ClienteVencido, 0)
	for rows.Next() {
		item := &domain.ClienteVencido{}
		if err := rows.Scan(
			&item.ClienteID,
			&item.Codigo,
			&item.Nome,
			&item.NomeFantasia,
			&item.Whatsapp,
			&item.QtdTitulos,
			&item.Valor,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente vencido: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}
