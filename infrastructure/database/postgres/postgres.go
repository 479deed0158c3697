package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/cobranca-dashboard/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	Stats() sql.DBStats
}

var _ Conn = (*Connection)(nil)

// Connection é o pool de conexões compartilhado pelos repositórios.
// Cada chamada a Query/QueryRow obtém uma conexão e a devolve ao pool ao final.
type Connection struct {
	*sql.DB
}

// NewConnection abre o pool sem exigir que o banco esteja acessível;
// a disponibilidade é verificada com Ping e pelo endpoint de health.
func NewConnection(cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir pool do PostgreSQL")
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.MaxIdleTime)
	}

	return &Connection{DB: db}, nil
}

// NewFromDB encapsula um *sql.DB já aberto
func NewFromDB(db *sql.DB) *Connection {
	return &Connection{DB: db}
}

func (c *Connection) Ping(ctx context.Context) error {
	if err := c.DB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "erro ao testar conexão com PostgreSQL")
	}
	return nil
}

func (c *Connection) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return c.DB.QueryContext(ctx, query, args...)
}

func (c *Connection) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return c.DB.QueryRowContext(ctx, query, args...)
}
