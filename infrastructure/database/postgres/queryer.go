package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto somente-leitura usado pelos repositórios
type Queryer interface {
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
