package mocks

import "context"

// Transactor runs fn inline and counts the transactions it was asked to open.
type Transactor struct {
	Calls int
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}
