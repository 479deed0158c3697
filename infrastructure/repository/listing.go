// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cobranca-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
)

// sortColumns mapeia os nomes lógicos aceitos na ordenação para as expressões físicas.
// Valores fora do mapa caem na coluna padrão, sem erro.
type sortColumns struct {
	columns  map[string]string
	fallback string
	tiebreak string
}

func (s sortColumns) resolve(key string) string {
	if column, ok := s.columns[key]; ok {
		return column
	}
	return s.fallback
}

func (s sortColumns) orderBy(key string, order domain.SortOrder) []string {
	direction := domain.SortDesc
	if order == domain.SortAsc {
		direction = domain.SortAsc
	}

	clauses := []string{fmt.Sprintf("%s %s", s.resolve(key), direction)}
	if s.tiebreak != "" {
		clauses = append(clauses, fmt.Sprintf("%s %s", s.tiebreak, direction))
	}

	return clauses
}

// ilikeAny monta "(col1 ILIKE $n OR col2 ILIKE $n+1 ...)" com o mesmo padrão para todas as colunas
func ilikeAny(pattern string, columns ...string) squirrel.Or {
	or := make(squirrel.Or, 0, len(columns))
	for _, column := range columns {
		or = append(or, squirrel.ILike{column: pattern})
	}
	return or
}

// paginate adiciona LIMIT/OFFSET como parâmetros
func paginate(builder squirrel.SelectBuilder, filter domain.ListFilter) squirrel.SelectBuilder {
	return builder.Suffix("LIMIT ? OFFSET ?", filter.Limit, filter.Offset())
}

// sentOnDate restringe a coluna ao intervalo [data 00:00, data+1 00:00)
func sentOnDate(builder squirrel.SelectBuilder, column string, date string) squirrel.SelectBuilder {
	return builder.
		Where(squirrel.Expr(column+" >= ?::date", date)).
		Where(squirrel.Expr(column+" < ?::date + interval '1 day'", date))
}

func countRows(ctx context.Context, conn postgres.Queryer, builder squirrel.SelectBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	var total int64
	if err := conn.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao executar a query de contagem: %w", err)
	}

	return total, nil
}
