package block_repo

import (
	"context"
	"errors"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "entropy_blocks"
	colHeight    = "height"
	colHash      = "hash"
	colPrevHash  = "prev_hash"
	colNonce     = "nonce"
	colCreatedAt = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Блоки пишет только генератор энтропии, вне транзакций сервисов
type repo struct {
	dbc *pgxpool.Pool
}

func NewBlockRepository(dbc *pgxpool.Pool) repository.BlockRepository {
	return &repo{dbc: dbc}
}

func (r *repo) AppendBlock(ctx context.Context, block *model.Block) error {
	query := psql.Insert(table).
		Columns(colHeight, colHash, colPrevHash, colNonce, colCreatedAt).
		Values(int64(block.Height), block.Hash, block.PrevHash, block.Nonce, block.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	return err
}

func (r *repo) LastBlock(ctx context.Context) (*model.Block, error) {
	query := psql.Select(colHeight, colHash, colPrevHash, colNonce, colCreatedAt).
		From(table).
		OrderBy(colHeight + " DESC").
		Limit(1)

	return r.queryBlock(ctx, query)
}

func (r *repo) GetBlock(ctx context.Context, height uint64) (*model.Block, error) {
	query := psql.Select(colHeight, colHash, colPrevHash, colNonce, colCreatedAt).
		From(table).
		Where(sq.Eq{colHeight: int64(height)})

	return r.queryBlock(ctx, query)
}

func (r *repo) ListBlocks(ctx context.Context, from, to uint64) ([]model.Block, error) {
	query := psql.Select(colHeight, colHash, colPrevHash, colNonce, colCreatedAt).
		From(table).
		Where(sq.GtOrEq{colHeight: int64(from)}).
		Where(sq.LtOrEq{colHeight: int64(to)}).
		OrderBy(colHeight)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanBlock)
}

func (r *repo) queryBlock(ctx context.Context, query sq.SelectBuilder) (*model.Block, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	b, err := pgx.CollectOneRow(rows, scanBlock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBlockNotFound
		}
		return nil, err
	}

	return &b, nil
}

func scanBlock(row pgx.CollectableRow) (model.Block, error) {
	var (
		b      model.Block
		height int64
	)
	err := row.Scan(&height, &b.Hash, &b.PrevHash, &b.Nonce, &b.CreatedAt)
	b.Height = uint64(height)
	return b, err
}
