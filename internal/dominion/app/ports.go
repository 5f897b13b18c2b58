package app

import (
	"context"
	"time"

	"Dominion/internal/dominion/domain"
)

type RoundRepo interface {
	Active(ctx context.Context, now time.Time) ([]domain.Round, error)
}

type DominionRepo interface {
	// ForEachInRound 按主键分批遍历某 round 的全部国，控制内存。
	ForEachInRound(ctx context.Context, roundID uint, batchSize int, fn func(d *domain.Dominion) error) error
	Save(ctx context.Context, d *domain.Dominion) error
	// ResetDailyBonuses 整 round 批量清掉两个每日奖励标记。
	ResetDailyBonuses(ctx context.Context, roundID uint) error
}

type QueueRepo interface {
	// Advance 对单国单队列推进一小时（两阶段符号翻转），返回到期汇总。
	Advance(ctx context.Context, dominionID uint, kind domain.QueueKind) (domain.QueueResult, error)
	// AdvanceSpellDurations 法术时长变体：到期即删，无返回值。
	AdvanceSpellDurations(ctx context.Context, dominionID uint) error
}

type HistoryRepo interface {
	Record(ctx context.Context, h domain.DominionHistory) error
}

// TxManager 把一次调度周期（小时/日）整体包进一个事务：要么全部落库要么全部回滚。
type TxManager interface {
	Atomic(ctx context.Context, fn func(ctx context.Context) error) error
}

// 下面是计算器协作方的结果契约。除效果计算器外都是纯函数，不触存储。

type ProductionCalculator interface {
	// NetProduction 各资源的净产出（产出减消耗，可为负）。
	NetProduction(d *domain.Dominion, spells domain.SpellSet) domain.ResourceDelta
}

type PopulationCalculator interface {
	Growth(d *domain.Dominion, spells domain.SpellSet) (peasants, draftees int)
}

type CasualtiesCalculator interface {
	// StarvationCasualties 粮食为负时按兵种给出饥荒损失；钉 0 之前调用。
	StarvationCasualties(d *domain.Dominion) map[string]int
}

type EffectCalculator interface {
	// ActiveSpells 返回该国当前生效法术；refresh 为 true 时绕过缓存强制重读。
	ActiveSpells(ctx context.Context, dominionID uint, refresh bool) (domain.SpellSet, error)
}

// Calculators 聚合四个计算器，减少构造参数。
type Calculators struct {
	Production ProductionCalculator
	Population PopulationCalculator
	Casualties CasualtiesCalculator
	Effects    EffectCalculator
}

// RankingUpdater 日结算里排行榜重算的入口（ranking 上下文实现）。
type RankingUpdater interface {
	UpdateDailyRankings(ctx context.Context, rounds []domain.Round) error
}
