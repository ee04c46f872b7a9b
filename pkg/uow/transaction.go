package uow

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type Transaction struct {
	repositories map[RepositoryName]RepositoryFactory
	tx           pgx.Tx
}

func NewTransaction(tx pgx.Tx, repositories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		repositories: repositories,
		tx:           tx,
	}
}

// Get возвращает репозиторий или ошибку ErrRepositoryNotRegistered.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if repo, ok := t.repositories[name]; ok {
		return repo(t.tx), nil
	}
	return nil, repositoryErr(ErrRepositoryNotRegistered, name)
}

// Savepoint открывает вложенную транзакцию (SAVEPOINT в postgres) и выполняет в ней fn.
// При ошибке fn выполняется ROLLBACK TO SAVEPOINT, ошибка fn возвращается вызывающему.
func (t *Transaction) Savepoint(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	nested, beginErr := t.tx.Begin(ctx)
	if beginErr != nil {
		return beginErr //nolint:wrapcheck
	}
	defer func() {
		if rollbackErr := nested.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	if fnErr := fn(ctx, NewTransaction(nested, t.repositories)); fnErr != nil {
		return fnErr
	}
	return nested.Commit(ctx) //nolint:wrapcheck
}

// GetAs возвращает зарегистрированный репозиторий с именем name приведенный к типу T
// или ошибки ErrRepositoryNotRegistered в случае не найденного репозитория с указанным name, ErrInvalidRepositoryType.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	repo, err := t.Get(name)
	var res T
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	res, ok := repo.(T)
	if !ok {
		return res, repositoryErr(ErrInvalidRepositoryType, name)
	}
	return res, nil
}
