// Package postgres is the relational store of monitored wallets and recorded
// transactions.
package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	txpgx "github.com/Thiht/transactor/pgx"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type client struct {
	pool       *pgxpool.Pool
	transactor *txpgx.Transactor
	db         txpgx.DBGetter
}

func (c *client) Close() {
	c.pool.Close()
}

// Ping checks the connection to the database.
func (c *client) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// NewClient opens a connection pool to dsn. maxConns of zero keeps the pgx default.
func NewClient(ctx context.Context, dsn string, maxConns int32) (*client, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	transactor, db := txpgx.NewTransactorFromPool(pool)

	return &client{
		pool:       pool,
		transactor: transactor,
		db:         db,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
