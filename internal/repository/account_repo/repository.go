package account_repo

import (
	"context"
	"errors"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "accounts"
	colID           = "id"
	colAddress      = "address"
	colName         = "name"
	colPasswordHash = "password_hash"
	colBalance      = "balance"

	uniqueViolation = "23505"
	numericOverflow = "22003"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAccountRepository(dbc *pgxpool.Pool) repository.AccountRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateAccount - создает новый счёт в БД.
// Возвращает ID созданного счёта
func (r *repo) CreateAccount(ctx context.Context, account *model.Account) (int64, error) {
	query := psql.Insert(table).
		Columns(colAddress, colName, colPasswordHash, colBalance).
		Values(account.Address, account.Name, account.Password, account.Balance).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, model.ErrAccountExists
		}
		return 0, err
	}

	return id, nil
}

// EnsureAccount - счёт без пароля (например, получатель комиссии)
func (r *repo) EnsureAccount(ctx context.Context, address string) error {
	query := psql.Insert(table).
		Columns(colAddress, colName).
		Values(address, address).
		Suffix("ON CONFLICT (" + colAddress + ") DO NOTHING")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repo) GetAccountByAddress(ctx context.Context, address string) (*model.Account, error) {
	return r.getAccount(ctx, sq.Eq{colAddress: address})
}

func (r *repo) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	return r.getAccount(ctx, sq.Eq{colID: id})
}

func (r *repo) getAccount(ctx context.Context, where sq.Eq) (*model.Account, error) {
	query := psql.Select(colID, colAddress, colName, colPasswordHash, colBalance).
		From(table).
		Where(where)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var account model.Account
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&account.ID, &account.Address, &account.Name, &account.Password, &account.Balance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

func (r *repo) GetBalance(ctx context.Context, address string) (int64, error) {
	query := psql.Select(colBalance).
		From(table).
		Where(sq.Eq{colAddress: address})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrAccountNotFound
		}
		return 0, err
	}

	return balance, nil
}

// AddBalance - атомарное изменение баланса, в минус уйти нельзя, переполнение bigint -> ErrBalanceOverflow
func (r *repo) AddBalance(ctx context.Context, address string, delta int64) error {
	query := psql.Update(table).
		Set(colBalance, sq.Expr(colBalance+" + ?", delta)).
		Where(sq.Eq{colAddress: address}).
		Where(sq.Expr(colBalance+" + ? >= 0", delta))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == numericOverflow {
			return model.ErrBalanceOverflow
		}
		return err
	}

	if res.RowsAffected() == 0 {
		// Либо счёта нет, либо не хватает средств
		if _, err = r.GetBalance(ctx, address); err != nil {
			return err
		}
		return model.ErrInsufficientFunds
	}

	return nil
}
