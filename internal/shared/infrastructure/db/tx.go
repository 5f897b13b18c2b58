package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TxRunner 把一次业务周期包进单个 gorm 事务。
// 事务句柄挂在 ctx 上；各 repo 通过 FromContext 取到同一个 *gorm.DB。
type TxRunner struct {
	db *gorm.DB
}

func NewTxRunner(gdb *gorm.DB) *TxRunner {
	return &TxRunner{db: gdb}
}

// Atomic 执行 fn；fn 返回非 nil 错误则整体回滚。
func (r *TxRunner) Atomic(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// FromContext 返回 ctx 上的事务句柄；不在事务里则回退 fallback。
func FromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback.WithContext(ctx)
}
