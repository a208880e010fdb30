package pool_repo

import (
	"context"
	"errors"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "pools"
	colID          = "id"
	colCreator     = "creator"
	colTicketPrice = "ticket_price"
	colMaxPlayers  = "max_players"
	colState       = "state"
	colRevealPoint = "reveal_point"
	colWinner      = "winner"
	colHeldFunds   = "held_funds"
	colCreatedAt   = "created_at"
	colClosedAt    = "closed_at"

	entrantsTable = "pool_entrants"
	colPoolID     = "pool_id"
	colPosition   = "position"
	colAddress    = "address"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPoolRepository(dbc *pgxpool.Pool) repository.PoolRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreatePool - добавляет пул в реестр. Порядок id совпадает с порядком создания
func (r *repo) CreatePool(ctx context.Context, pool *model.Pool) (int64, error) {
	query := psql.Insert(table).
		Columns(colCreator, colTicketPrice, colMaxPlayers, colState, colHeldFunds).
		Values(pool.Creator, pool.TicketPrice, pool.MaxPlayers, int(pool.State), pool.HeldFunds).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repo) GetPool(ctx context.Context, id int64) (*model.Pool, error) {
	return r.getPool(ctx, id, false)
}

// GetPoolForUpdate - SELECT ... FOR UPDATE, работает только внутри транзакции
func (r *repo) GetPoolForUpdate(ctx context.Context, id int64) (*model.Pool, error) {
	return r.getPool(ctx, id, true)
}

func (r *repo) getPool(ctx context.Context, id int64, forUpdate bool) (*model.Pool, error) {
	query := psql.Select(colID, colCreator, colTicketPrice, colMaxPlayers, colState,
		colRevealPoint, colWinner, colHeldFunds, colCreatedAt, colClosedAt).
		From(table).
		Where(sq.Eq{colID: id})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		pool        model.Pool
		state       int
		revealPoint *int64
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&pool.ID, &pool.Creator, &pool.TicketPrice, &pool.MaxPlayers, &state,
		&revealPoint, &pool.Winner, &pool.HeldFunds, &pool.CreatedAt, &pool.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPoolNotFound
		}
		return nil, err
	}

	pool.State = model.PoolState(state)
	if revealPoint != nil {
		rp := uint64(*revealPoint)
		pool.RevealPoint = &rp
	}

	pool.Entrants, err = r.ListEntrants(ctx, id)
	if err != nil {
		return nil, err
	}

	return &pool, nil
}

// ListPoolIDs - весь реестр в порядке создания
func (r *repo) ListPoolIDs(ctx context.Context) ([]int64, error) {
	query := psql.Select(colID).
		From(table).
		OrderBy(colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// UpdatePool - изменяемые поля пула. Цена билета и вместимость не меняются никогда
func (r *repo) UpdatePool(ctx context.Context, pool *model.Pool) error {
	var revealPoint *int64
	if pool.RevealPoint != nil {
		rp := int64(*pool.RevealPoint)
		revealPoint = &rp
	}

	query := psql.Update(table).
		Set(colState, int(pool.State)).
		Set(colRevealPoint, revealPoint).
		Set(colWinner, pool.Winner).
		Set(colHeldFunds, pool.HeldFunds).
		Set(colClosedAt, pool.ClosedAt).
		Where(sq.Eq{colID: pool.ID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return model.ErrPoolNotFound
	}

	return nil
}

// AddEntrant - первичный ключ (pool_id, position) не даёт записать билет дважды
func (r *repo) AddEntrant(ctx context.Context, poolID int64, position int, address string) error {
	query := psql.Insert(entrantsTable).
		Columns(colPoolID, colPosition, colAddress).
		Values(poolID, position, address)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *repo) ListEntrants(ctx context.Context, poolID int64) ([]string, error) {
	query := psql.Select(colAddress).
		From(entrantsTable).
		Where(sq.Eq{colPoolID: poolID}).
		OrderBy(colPosition)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	entrants, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	return entrants, nil
}
