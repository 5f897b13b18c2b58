package repo

import (
	"context"

	"gorm.io/gorm"

	"Dominion/internal/dominion/domain"
	"Dominion/internal/shared/infrastructure/db"
)

type SpellRepo struct {
	db *gorm.DB
}

func NewSpellRepo(gdb *gorm.DB) *SpellRepo {
	return &SpellRepo{db: gdb}
}

// ActiveForDominion 行存在即生效，无须按 duration 过滤（到期行已被推进删除）。
func (r *SpellRepo) ActiveForDominion(ctx context.Context, dominionID uint) (domain.SpellSet, error) {
	var spells domain.SpellSet
	err := db.FromContext(ctx, r.db).
		Where("dominion_id = ?", dominionID).
		Find(&spells).Error
	if err != nil {
		return nil, domain.ErrSystemUnavailable.WithData("dominion_id", dominionID).WithCause(err)
	}
	return spells, nil
}
