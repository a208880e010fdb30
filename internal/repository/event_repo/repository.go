package event_repo

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
	table        = "pool_events"
	colID        = "id"
	colPoolID    = "pool_id"
	colKind      = "kind"
	colActor     = "actor"
	colAmount    = "amount"
	colData      = "data"
	colCreatedAt = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewEventRepository(dbc *pgxpool.Pool) repository.EventRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// AppendEvent - data пишется в jsonb
func (r *repo) AppendEvent(ctx context.Context, event *model.Event) error {
	data := event.Data
	if data == nil {
		data = map[string]any{}
	}

	query := psql.Insert(table).
		Columns(colPoolID, colKind, colActor, colAmount, colData).
		Values(event.PoolID, string(event.Kind), event.Actor, event.Amount, data)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repo) ListEvents(ctx context.Context, poolID int64) ([]model.Event, error) {
	query := psql.Select(colID, colPoolID, colKind, colActor, colAmount, colData, colCreatedAt).
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

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Event, error) {
		var (
			e    model.Event
			kind string
		)
		err := row.Scan(&e.ID, &e.PoolID, &kind, &e.Actor, &e.Amount, &e.Data, &e.CreatedAt)
		e.Kind = model.EventKind(kind)
		return e, err
	})
}
