package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"Dominion/internal/dominion/domain"
	"Dominion/internal/shared/infrastructure/db"
)

type RoundRepo struct {
	db *gorm.DB
}

func NewRoundRepo(gdb *gorm.DB) *RoundRepo {
	return &RoundRepo{db: gdb}
}

// Active 返回活跃窗口 [start_date, end_date) 覆盖 now 的全部赛季。
func (r *RoundRepo) Active(ctx context.Context, now time.Time) ([]domain.Round, error) {
	var rounds []domain.Round
	err := db.FromContext(ctx, r.db).
		Where("start_date <= ? AND end_date > ?", now, now).
		Order("number ASC").
		Find(&rounds).Error
	if err != nil {
		return nil, domain.ErrSystemUnavailable.WithCause(err)
	}
	return rounds, nil
}
