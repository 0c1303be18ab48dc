package domain

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// A sequência check-then-act do upsert de votos roda dentro de uma transação
// para não se intercalar com a de outra instância.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
