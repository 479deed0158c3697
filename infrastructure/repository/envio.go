package repository

//go:generate mockgen -source=envio.go -destination=mocks/envio.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cobranca-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
)

const (
	enviosTable = "envios_whatsapp e"
	// Chave canônica entre envios e clientes: código do cliente (chave de negócio)
	enviosClientesJoin = "clientes c ON c.codigo = e.cliente_id"
)

var enviosSort = sortColumns{
	columns: map[string]string{
		"nome_fantasia": "c.nome_fantasia",
		"titulo_numero": "e.titulo_numero",
		"enviado_em":    "e.enviado_em",
	},
	fallback: "e.enviado_em",
	tiebreak: "e.id",
}

type EnvioRepository interface {
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Envio, error)
	Count(ctx context.Context, filter domain.ListFilter) (int64, error)
	// ListByDate lista os envios do dia para exportação, do mais recente para o mais antigo
	ListByDate(ctx context.Context, date time.Time) ([]*domain.EnvioExport, error)
}

type envioRepository struct {
	conn *postgres.Connection
}

func NewEnvioRepository(conn *postgres.Connection) EnvioRepository {
	return &envioRepository{
		conn: conn,
	}
}

func enviosWhere(builder squirrel.SelectBuilder, filter domain.ListFilter) squirrel.SelectBuilder {
	if filter.Search != "" {
		builder = builder.Where(ilikeAny(filter.SearchPattern(), "c.nome", "c.nome_fantasia", "e.titulo_numero"))
	}

	if filter.Date != nil {
		builder = sentOnDate(builder, "e.enviado_em", filter.Date.Format(time.DateOnly))
	}

	return builder
}

func buildEnviosListQuery(filter domain.ListFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select(
			"e.id",
			"e.cliente_id",
			"c.nome_fantasia",
			"e.titulo_numero",
			"e.parcela",
			"e.vencto_orig",
			"COALESCE(e.valor_titulo, 0)",
			"e.enviado_em",
		).
		From(enviosTable).
		LeftJoin(enviosClientesJoin).
		OrderBy(enviosSort.orderBy(filter.Sort, filter.Order)...).
		PlaceholderFormat(squirrel.Dollar)

	return paginate(enviosWhere(builder, filter), filter)
}

func buildEnviosCountQuery(filter domain.ListFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select("COUNT(*)").
		From(enviosTable).
		LeftJoin(enviosClientesJoin).
		PlaceholderFormat(squirrel.Dollar)

	return enviosWhere(builder, filter)
}

func buildEnviosExportQuery(date time.Time) squirrel.SelectBuilder {
	builder := squirrel.
		Select(
			"e.cliente_id",
			"c.nome",
			"c.nome_fantasia",
			"e.titulo_numero",
			"e.parcela",
			"e.vencto_orig",
			"e.valor_titulo",
			"c.whatsapp",
			"e.enviado_em",
		).
		From(enviosTable).
		Join(enviosClientesJoin).
		OrderBy("e.enviado_em DESC").
		PlaceholderFormat(squirrel.Dollar)

	return sentOnDate(builder, "e.enviado_em", date.Format(time.DateOnly))
}

func (r *envioRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Envio, error) {
	query, args, err := buildEnviosListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar envios: %w", err)
	}
	defer rows.Close()

	envios := make([]*domain.Envio, 0, filter.Limit)
	for rows.Next() {
		envio := &domain.Envio{}
		if err := rows.Scan(
			&envio.ID,
			&envio.ClienteID,
			&envio.NomeFantasia,
			&envio.TituloNumero,
			&envio.Parcela,
			&envio.VenctoOrig,
			&envio.ValorTitulo,
			&envio.EnviadoEm,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear envio: %w", err)
		}
		envios = append(envios, envio)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return envios, nil
}

func (r *envioRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return countRows(ctx, r.conn, buildEnviosCountQuery(filter))
}

func (r *envioRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.EnvioExport, error) {
	query, args, err := buildEnviosExportQuery(date).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar envios do dia %s: %w", date.Format(time.DateOnly), err)
	}
	defer rows.Close()

	envios := make([]*domain.EnvioExport, 0)
	for rows.Next() {
		envio := &domain.EnvioExport{}
		if err := rows.Scan(
			&envio.ClienteID,
			&envio.Nome,
			&envio.NomeFantasia,
			&envio.TituloNumero,
			&envio.Parcela,
			&envio.VenctoOrig,
			&envio.ValorTitulo,
			&envio.Whatsapp,
			&envio.EnviadoEm,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear envio: %w", err)
		}
		envios = append(envios, envio)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return envios, nil
}
