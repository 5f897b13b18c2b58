package repo

import (
	"context"

	"gorm.io/gorm"

	"Dominion/internal/dominion/domain"
	"Dominion/internal/shared/infrastructure/db"
)

type HistoryRepo struct {
	db *gorm.DB
}

func NewHistoryRepo(gdb *gorm.DB) *HistoryRepo {
	return &HistoryRepo{db: gdb}
}

func (r *HistoryRepo) Record(ctx context.Context, h domain.DominionHistory) error {
	err := db.FromContext(ctx, r.db).Create(&h).Error
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("dominion_id", h.DominionID).WithCause(err)
	}
	return nil
}
