package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Dominion/internal/dominion/domain"
	"Dominion/internal/kit/errx"
	"Dominion/internal/shared/infrastructure/db"
)

type DominionRepo struct {
	db *gorm.DB
}

func NewDominionRepo(gdb *gorm.DB) *DominionRepo {
	return &DominionRepo{db: gdb}
}

// ForEachInRound 按主键分批遍历某 round 的全部国。FindInBatches 以主键游标翻页，
// 回调里对当前行的 Save 不会影响翻页顺序。
func (r *DominionRepo) ForEachInRound(ctx context.Context, roundID uint, batchSize int, fn func(d *domain.Dominion) error) error {
	tx := db.FromContext(ctx, r.db)

	var batch []domain.Dominion
	err := tx.Where("round_id = ?", roundID).
		FindInBatches(&batch, batchSize, func(_ *gorm.DB, _ int) error {
			for i := range batch {
				if err := fn(&batch[i]); err != nil {
					return err
				}
			}
			return nil
		}).Error
	if err != nil {
		// 回调抛出的语义错误原样上抛，只有 gorm 自身的错误才包装。
		var domainErr *errx.Error
		if errors.As(err, &domainErr) {
			return err
		}
		return domain.ErrSystemUnavailable.WithData("round_id", roundID).WithCause(err)
	}
	return nil
}

func (r *DominionRepo) Save(ctx context.Context, d *domain.Dominion) error {
	err := db.FromContext(ctx, r.db).Save(d).Error
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("dominion_id", d.ID).WithCause(err)
	}
	return nil
}

// ResetDailyBonuses 日结算：整 round 一条 UPDATE 清掉两个每日奖励标记。
func (r *DominionRepo) ResetDailyBonuses(ctx context.Context, roundID uint) error {
	err := db.FromContext(ctx, r.db).
		Model(&domain.Dominion{}).
		Where("round_id = ?", roundID).
		Updates(map[string]any{"daily_platinum": false, "daily_land": false}).Error
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("round_id", roundID).WithCause(err)
	}
	return nil
}
