package payout_repo

import (
	"context"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "payouts"
	colID        = "id"
	colPoolID    = "pool_id"
	colRecipient = "recipient"
	colKind      = "kind"
	colAmount    = "amount"
	colCreatedAt = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPayoutRepository(dbc *pgxpool.Pool) repository.PayoutRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) CreatePayout(ctx context.Context, payout *model.Payout) error {
	query := psql.Insert(table).
		Columns(colPoolID, colRecipient, colKind, colAmount).
		Values(payout.PoolID, payout.Recipient, string(payout.Kind), payout.Amount)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repo) ListPayouts(ctx context.Context, poolID int64) ([]model.Payout, error) {
	query := psql.Select(colID, colPoolID, colRecipient, colKind, colAmount, colCreatedAt).
		From(table).
		Where(sq.Eq{colPoolID: poolID}).
		OrderBy(colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Payout, error) {
		var (
			p    model.Payout
			kind string
		)
		err := row.Scan(&p.ID, &p.PoolID, &p.Recipient, &kind, &p.Amount, &p.CreatedAt)
		p.Kind = model.PayoutKind(kind)
		return p, err
	})
}
