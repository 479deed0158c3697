package repository

//go:generate mockgen -source=cliente.go -destination=mocks/cliente.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cobranca-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/cobranca-dashboard/internal/domain"
)

const (
	clientesTable = "clientes"
)

var clientesSort = sortColumns{
	columns: map[string]string{
		"nome":      "nome",
		"telefone":  "telefone",
		"criado_em": "criado_em",
	},
	fallback: "criado_em",
	tiebreak: "id",
}

type ClienteRepository interface {
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Cliente, error)
	Count(ctx context.Context, filter domain.ListFilter) (int64, error)
}

type clienteRepository struct {
	conn *postgres.Connection
}

func NewClienteRepository(conn *postgres.Connection) ClienteRepository {
	return &clienteRepository{
		conn: conn,
	}
}

func clientesWhere(builder squirrel.SelectBuilder, filter domain.ListFilter) squirrel.SelectBuilder {
	if filter.Search != "" {
		builder = builder.Where(ilikeAny(filter.SearchPattern(), "nome", "nome_fantasia", "telefone"))
	}
	return builder
}

func buildClientesListQuery(filter domain.ListFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select("id", "codigo", "nome", "nome_fantasia", "telefone", "whatsapp", "criado_em").
		From(clientesTable).
		OrderBy(clientesSort.orderBy(filter.Sort, filter.Order)...).
		PlaceholderFormat(squirrel.Dollar)

	return paginate(clientesWhere(builder, filter), filter)
}

func buildClientesCountQuery(filter domain.ListFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select("COUNT(*)").
		From(clientesTable).
		PlaceholderFormat(squirrel.Dollar)

	return clientesWhere(builder, filter)
}

func (r *clienteRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Cliente, error) {
	query, args, err := buildClientesListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	clientes := make([]*domain.Cliente, 0, filter.Limit)
	for rows.Next() {
		cliente, err := r.scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		clientes = append(clientes, cliente)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clientes, nil
}

func (r *clienteRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return countRows(ctx, r.conn, buildClientesCountQuery(filter))
}

func (r *clienteRepository) scanCliente(rows *sql.Rows) (*domain.Cliente, error) {
	cliente := &domain.Cliente{}

	err := rows.Scan(
		&cliente.ID,
		&cliente.Codigo,
		&cliente.Nome,
		&cliente.NomeFantasia,
		&cliente.Telefone,
		&cliente.Whatsapp,
		&cliente.CriadoEm,
	)
	if err != nil {
		return nil, err
	}

	return cliente, nil
}
