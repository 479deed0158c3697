package repository

//go:generate mockgen -source=titulo.go -destination=mocks/titulo.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cobranca-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
)

const (
	titulosTable = "titulos"
)

var titulosSort = sortColumns{
	columns: map[string]string{
		"numero_titulo": "numero_titulo",
		"valor_titulo":  "valor_titulo",
		"vencto_real":   "vencto_real",
		"saldo":         "saldo",
	},
	fallback: "criado_em",
	tiebreak: "id",
}

type TituloRepository interface {
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Titulo, error)
	Count(ctx context.Context, filter domain.ListFilter) (int64, error)
	// ListOverdueByCliente lista os títulos do cliente vencidos até a data de referência
	ListOverdueByCliente(ctx context.Context, codigo string, referenceDate time.Time) ([]*domain.TituloVencido, error)
}

type tituloRepository struct {
	conn *postgres.Connection
}

func NewTituloRepository(conn *postgres.Connection) TituloRepository {
	return &tituloRepository{
		conn: conn,
	}
}

func titulosWhere(builder squirrel.SelectBuilder, filter domain.ListFilter) squirrel.SelectBuilder {
	if filter.Search != "" {
		builder = builder.Where(squirrel.ILike{"numero_titulo": filter.SearchPattern()})
	}
	return builder
}

func buildTitulosListQuery(filter domain.ListFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select(
			"id",
			"codigo",
			"numero_titulo",
			"parcela",
			"dt_emissao",
			"vencto_orig",
			"vencto_real",
			"COALESCE(valor_titulo, 0)",
			"COALESCE(saldo, 0)",
			"filial_titulo",
			"prefixo",
			"tipo",
			"portador",
			"status",
			"criado_em",
		).
		From(titulosTable).
		OrderBy(titulosSort.orderBy(filter.Sort, filter.Order)...).
		PlaceholderFormat(squirrel.Dollar)

	return paginate(titulosWhere(builder, filter), filter)
}

func buildTitulosCountQuery(filter domain.ListFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select("COUNT(*)").
		From(titulosTable).
		PlaceholderFormat(squirrel.Dollar)

	return titulosWhere(builder, filter)
}

func buildTitulosVencidosClienteQuery(codigo string, referenceDate time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"t.codigo",
			"c.nome",
			"t.numero_titulo",
			"t.parcela",
			"t.dt_emissao",
			"t.vencto_real",
			"COALESCE(t.valor_titulo, 0)",
			"COALESCE(t.saldo, 0)",
			"t.filial_titulo",
			"t.prefixo",
			"t.tipo",
			"t.criado_em",
		).
		From("titulos t").
		Join("clientes c ON t.codigo = c.codigo").
		Where(squirrel.Eq{"t.codigo": codigo}).
		Where("t.vencto_real IS NOT NULL").
		Where(squirrel.Expr("t.vencto_real::date <= ?::date", referenceDate.Format(time.DateOnly))).
		OrderBy("t.vencto_real DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *tituloRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Titulo, error) {
	query, args, err := buildTitulosListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar títulos: %w", err)
	}
	defer rows.Close()

	titulos := make([]*domain.Titulo, 0, filter.Limit)
	for rows.Next() {
		titulo := &domain.Titulo{}
		if err := rows.Scan(
			&titulo.ID,
			&titulo.Codigo,
			&titulo.NumeroTitulo,
			&titulo.Parcela,
			&titulo.DtEmissao,
			&titulo.VenctoOrig,
			&titulo.VenctoReal,
			&titulo.ValorTitulo,
			&titulo.Saldo,
			&titulo.FilialTitulo,
			&titulo.Prefixo,
			&titulo.Tipo,
			&titulo.Portador,
			&titulo.Status,
			&titulo.CriadoEm,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear título: %w", err)
		}
		titulos = append(titulos, titulo)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return titulos, nil
}

func (r *tituloRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return countRows(ctx, r.conn, buildTitulosCountQuery(filter))
}

func (r *tituloRepository) ListOverdueByCliente(ctx context.Context, codigo string, referenceDate time.Time) ([]*domain.TituloVencido, error) {
	query, args, err := buildTitulosVencidosClienteQuery(codigo, referenceDate).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar títulos do cliente %s: %w", codigo, err)
	}
	defer rows.Close()

	titulos := make([]*domain.TituloVencido, 0)
	for rows.Next() {
		titulo, err := r.scanTituloVencido(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear título vencido: %w", err)
		}

		titulo.Status = domain.StatusVencimento(titulo.VenctoReal, referenceDate)
		titulos = append(titulos, titulo)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return titulos, nil
}

func (r *tituloRepository) scanTituloVencido(rows *sql.Rows) (*domain.TituloVencido, error) {
	titulo := &domain.TituloVencido{}

	err := rows.Scan(
		&titulo.Codigo,
		&titulo.Nome,
		&titulo.NumeroTitulo,
		&titulo.Parcela,
		&titulo.DtEmissao,
		&titulo.VenctoReal,
		&titulo.ValorTitulo,
		&titulo.Saldo,
		&titulo.FilialTitulo,
		&titulo.Prefixo,
		&titulo.Tipo,
		&titulo.CriadoEm,
	)
	if err != nil {
		return nil, err
	}

	return titulo, nil
}
