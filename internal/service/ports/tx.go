package ports

import "context"

// TxRunner runs fn inside a single database transaction. Repository calls
// made with the ctx passed to fn join that transaction; nesting reuses the
// outer one. An error from fn rolls everything back.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
