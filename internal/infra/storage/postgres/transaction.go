package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/solwatch/internal/txingest"
	"github.com/gabapcia/solwatch/internal/walletregistry"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const transactionsTable = "transactions"

func insertTransactionQuery(rec txingest.TransactionRecord) sq.InsertBuilder {
	return psql.
		Insert(transactionsTable).
		Columns("signature", "wallet_address", "amount", "kind", "direction", "token_mint", "timestamp").
		Values(rec.Signature, rec.WalletAddress, rec.Amount, rec.Kind.String(), string(rec.Direction), rec.TokenMint, rec.Timestamp).
		Suffix("ON CONFLICT (signature) DO NOTHING RETURNING id")
}

// SaveTransaction inserts rec unless its signature was already recorded.
func (c *client) SaveTransaction(ctx context.Context, rec txingest.TransactionRecord) (bool, error) {
	query, args, err := insertTransactionQuery(rec).ToSql()
	if err != nil {
		return false, err
	}

	var id int64
	err = c.db(ctx).QueryRow(ctx, query, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error inserting transaction: %w", err)
	}

	return true, nil
}

func recentTransactionsQuery(address string, limit int) sq.SelectBuilder {
	return psql.
		Select("signature", "wallet_address", "amount", "timestamp").
		From(transactionsTable).
		Where(sq.Eq{"wallet_address": address}).
		OrderBy("timestamp DESC").
		Limit(uint64(limit))
}

func (c *client) RecentTransactions(ctx context.Context, address string, limit int) ([]walletregistry.Transaction, error) {
	query, args, err := recentTransactionsQuery(address, limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := c.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []walletregistry.Transaction
	for rows.Next() {
		var tx walletregistry.Transaction
		if err := rows.Scan(&tx.Signature, &tx.WalletAddress, &tx.Amount, &tx.Timestamp); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

var _ txingest.TransactionStorage = (*client)(nil)
