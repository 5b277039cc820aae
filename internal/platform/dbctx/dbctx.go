package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a context with an optional GORM transaction.
// Repos fall back to their own handle when Tx is nil.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// Background is a Context with no transaction.
func Background() Context {
	return Context{Ctx: context.Background()}
}

// WithTx returns a copy of c bound to tx.
func (c Context) WithTx(tx *gorm.DB) Context {
	return Context{Ctx: c.Ctx, Tx: tx}
}

// Resolve picks the transaction when present, otherwise db, scoped to c.Ctx.
func (c Context) Resolve(db *gorm.DB) *gorm.DB {
	handle := c.Tx
	if handle == nil {
		handle = db
	}
	ctx := c.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return handle.WithContext(ctx)
}
