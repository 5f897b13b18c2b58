package calc

import (
	"context"

	"Dominion/internal/dominion/domain"
)

// SpellRepo 效果计算器的存储依赖，由 infra/repo 实现。
type SpellRepo interface {
	ActiveForDominion(ctx context.Context, dominionID uint) (domain.SpellSet, error)
}

// Effects 按国缓存生效法术集合。每轮 tick 开头对单国强刷一次，
// 同一事务内后续读取（产出、人口）直接命中缓存。
type Effects struct {
	spells SpellRepo
	cache  map[uint]domain.SpellSet
}

func NewEffects(spells SpellRepo) *Effects {
	return &Effects{
		spells: spells,
		cache:  make(map[uint]domain.SpellSet),
	}
}

func (e *Effects) ActiveSpells(ctx context.Context, dominionID uint, refresh bool) (domain.SpellSet, error) {
	if !refresh {
		if set, ok := e.cache[dominionID]; ok {
			return set, nil
		}
	}
	set, err := e.spells.ActiveForDominion(ctx, dominionID)
	if err != nil {
		return nil, err
	}
	e.cache[dominionID] = set
	return set, nil
}
