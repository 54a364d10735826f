package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/solwatch/internal/walletregistry"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const walletsTable = "monitored_wallets"

var walletColumns = []string{
	"id", "address", "chat_id", "label", "alert_threshold", "is_watched", "created_at", "updated_at",
}

func scanWallet(row pgx.Row) (walletregistry.Wallet, error) {
	var w walletregistry.Wallet
	err := row.Scan(
		&w.ID,
		&w.Address,
		&w.ChatID,
		&w.Label,
		&w.AlertThreshold,
		&w.IsWatched,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	return w, err
}

func (c *client) queryWallets(ctx context.Context, q sq.Sqlizer) ([]walletregistry.Wallet, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := c.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallets []walletregistry.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}

	return wallets, rows.Err()
}

// exec runs a mutation and maps "no row touched" to ErrWalletNotFound.
func (c *client) exec(ctx context.Context, q sq.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}

	tag, err := c.db(ctx).Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return walletregistry.ErrWalletNotFound
	}

	return nil
}

func walletKey(chatID int64, address string) sq.Eq {
	return sq.Eq{"chat_id": chatID, "address": address}
}

func (c *client) InsertWallet(ctx context.Context, w walletregistry.Wallet) (walletregistry.Wallet, error) {
	query, args, err := psql.
		Insert(walletsTable).
		Columns("address", "chat_id", "label", "alert_threshold", "is_watched").
		Values(w.Address, w.ChatID, w.Label, w.AlertThreshold, w.IsWatched).
		Suffix("RETURNING " + strings.Join(walletColumns, ", ")).
		ToSql()
	if err != nil {
		return walletregistry.Wallet{}, err
	}

	stored, err := scanWallet(c.db(ctx).QueryRow(ctx, query, args...))
	if isUniqueViolation(err) {
		return walletregistry.Wallet{}, walletregistry.ErrWalletAlreadyRegistered
	}
	if err != nil {
		return walletregistry.Wallet{}, fmt.Errorf("error inserting wallet: %w", err)
	}

	return stored, nil
}

func (c *client) DeleteWallet(ctx context.Context, chatID int64, address string) error {
	return c.exec(ctx, psql.Delete(walletsTable).Where(walletKey(chatID, address)))
}

func listWalletsQuery(chatID int64, limit, offset int) sq.SelectBuilder {
	q := psql.
		Select(walletColumns...).
		From(walletsTable).
		Where(sq.Eq{"chat_id": chatID}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		q = q.Limit(uint64(limit)).Offset(uint64(offset))
	}

	return q
}

func (c *client) ListWallets(ctx context.Context, chatID int64, limit, offset int) ([]walletregistry.Wallet, error) {
	return c.queryWallets(ctx, listWalletsQuery(chatID, limit, offset))
}

func (c *client) CountWallets(ctx context.Context, chatID int64) (int, error) {
	query, args, err := psql.Select("count(*)").From(walletsTable).Where(sq.Eq{"chat_id": chatID}).ToSql()
	if err != nil {
		return 0, err
	}

	var total int
	err = c.db(ctx).QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

// likePattern escapes LIKE wildcards in keyword and wraps it for a substring match.
func likePattern(keyword string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(keyword) + "%"
}

func searchWalletsQuery(chatID int64, keyword string, limit int) sq.SelectBuilder {
	pattern := likePattern(keyword)

	return psql.
		Select(walletColumns...).
		From(walletsTable).
		Where(sq.Eq{"chat_id": chatID}).
		Where(sq.Or{sq.ILike{"label": pattern}, sq.ILike{"address": pattern}}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))
}

func (c *client) SearchWallets(ctx context.Context, chatID int64, keyword string, limit int) ([]walletregistry.Wallet, error) {
	return c.queryWallets(ctx, searchWalletsQuery(chatID, keyword, limit))
}

func (c *client) ListWatchedWallets(ctx context.Context, chatID int64) ([]walletregistry.Wallet, error) {
	return c.queryWallets(ctx, psql.
		Select(walletColumns...).
		From(walletsTable).
		Where(sq.Eq{"chat_id": chatID, "is_watched": true}).
		OrderBy("created_at DESC"),
	)
}

func (c *client) UpdateWalletLabel(ctx context.Context, chatID int64, address, label string) error {
	return c.exec(ctx, psql.
		Update(walletsTable).
		Set("label", label).
		Set("updated_at", sq.Expr("now()")).
		Where(walletKey(chatID, address)),
	)
}

func (c *client) UpdateAlertThreshold(ctx context.Context, chatID int64, address string, threshold decimal.NullDecimal) error {
	return c.exec(ctx, psql.
		Update(walletsTable).
		Set("alert_threshold", threshold).
		Set("updated_at", sq.Expr("now()")).
		Where(walletKey(chatID, address)),
	)
}

// ToggleWatch flips the watch flag under a row lock.
func (c *client) ToggleWatch(ctx context.Context, chatID int64, address string) (bool, error) {
	var watched bool

	err := c.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		query, args, err := psql.
			Select("is_watched").
			From(walletsTable).
			Where(walletKey(chatID, address)).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return err
		}

		var current bool
		if err := c.db(ctx).QueryRow(ctx, query, args...).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return walletregistry.ErrWalletNotFound
			}
			return err
		}

		watched = !current
		return c.exec(ctx, psql.
			Update(walletsTable).
			Set("is_watched", watched).
			Set("updated_at", sq.Expr("now()")).
			Where(walletKey(chatID, address)),
		)
	})

	return watched, err
}

func (c *client) FindWalletsByAddresses(ctx context.Context, addresses []string) ([]walletregistry.Wallet, error) {
	return c.queryWallets(ctx, psql.
		Select(walletColumns...).
		From(walletsTable).
		Where(sq.Eq{"address": addresses}).
		OrderBy("id"),
	)
}

// walletStatsSQL counts the chat's wallets and the transactions recorded for
// them. $1 is the chat id, $2 the start of "today".
const walletStatsSQL = `
SELECT
	(SELECT count(*) FROM monitored_wallets WHERE chat_id = $1),
	(SELECT count(*) FROM monitored_wallets WHERE chat_id = $1 AND is_watched),
	count(t.id),
	count(t.id) FILTER (WHERE t.timestamp >= $2),
	max(t.timestamp)
FROM transactions t
WHERE t.wallet_address IN (SELECT address FROM monitored_wallets WHERE chat_id = $1)`

func (c *client) WalletStats(ctx context.Context, chatID int64, since time.Time) (walletregistry.Stats, error) {
	var s walletregistry.Stats
	err := c.db(ctx).QueryRow(ctx, walletStatsSQL, chatID, since).Scan(
		&s.TotalWallets,
		&s.WatchedWallets,
		&s.TotalTransactions,
		&s.TodayTransactions,
		&s.LastTransactionAt,
	)
	if err != nil {
		return walletregistry.Stats{}, fmt.Errorf("error computing wallet stats: %w", err)
	}

	return s, nil
}

func topWalletsQuery(chatID int64, limit int) sq.SelectBuilder {
	cols := make([]string, len(walletColumns))
	for i, col := range walletColumns {
		cols[i] = "w." + col
	}

	return psql.
		Select(cols...).
		Column("count(t.id) AS tx_count").
		Column("coalesce(sum(t.amount), 0) AS total_volume").
		From(walletsTable + " w").
		Join(transactionsTable + " t ON t.wallet_address = w.address").
		Where(sq.Eq{"w.chat_id": chatID}).
		GroupBy("w.id").
		OrderBy("tx_count DESC", "total_volume DESC").
		Limit(uint64(limit))
}

func (c *client) TopWallets(ctx context.Context, chatID int64, limit int) ([]walletregistry.WalletActivity, error) {
	query, args, err := topWalletsQuery(chatID, limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := c.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activity []walletregistry.WalletActivity
	for rows.Next() {
		var a walletregistry.WalletActivity
		w := &a.Wallet
		if err := rows.Scan(
			&w.ID, &w.Address, &w.ChatID, &w.Label, &w.AlertThreshold, &w.IsWatched, &w.CreatedAt, &w.UpdatedAt,
			&a.TransactionCount,
			&a.TotalVolume,
		); err != nil {
			return nil, err
		}
		activity = append(activity, a)
	}

	return activity, rows.Err()
}

var _ walletregistry.WalletStorage = (*client)(nil)
