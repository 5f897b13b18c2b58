package app

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	"Dominion/internal/dominion/domain"
	"Dominion/internal/kit/logx"
	"Dominion/internal/kit/tracex"
)

// TickService 推进所有活跃国的状态：每小时一次完整 tick，每天一次日结算。
// 一个周期 = 一个事务；任何一步失败整体回滚，等下一次调度重试。
type TickService struct {
	tx        TxManager
	rounds    RoundRepo
	dominions DominionRepo
	queues    QueueRepo
	histories HistoryRepo
	calc      Calculators
	rankings  RankingUpdater
	batchSize int
	log       logx.Logger
	now       func() time.Time
}

func NewTickService(
	tx TxManager,
	rounds RoundRepo,
	dominions DominionRepo,
	queues QueueRepo,
	histories HistoryRepo,
	calc Calculators,
	rankings RankingUpdater,
	batchSize int,
	log logx.Logger,
) *TickService {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &TickService{
		tx:        tx,
		rounds:    rounds,
		dominions: dominions,
		queues:    queues,
		histories: histories,
		calc:      calc,
		rankings:  rankings,
		batchSize: batchSize,
		log:       log,
		now:       time.Now,
	}
}

// TickHourly 小时周期：对每个活跃 round 的每个国执行一次 tick。
func (s *TickService) TickHourly(ctx context.Context) error {
	ctx = tracex.WithTraceID(ctx, tracex.NewTraceID())
	log := s.log.WithContext(ctx)
	start := s.now()

	var ticked int
	err := s.tx.Atomic(ctx, func(ctx context.Context) error {
		rounds, err := s.rounds.Active(ctx, s.now())
		if err != nil {
			return err
		}
		for _, round := range rounds {
			err := s.dominions.ForEachInRound(ctx, round.ID, s.batchSize, func(d *domain.Dominion) error {
				if err := s.tickDominion(ctx, d); err != nil {
					return err
				}
				ticked++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("hourly tick aborted, nothing committed", zap.Error(err))
		return err
	}

	log.Info("hourly tick done",
		zap.Int("dominions", ticked),
		zap.Duration("elapsed", s.now().Sub(start)),
	)
	return nil
}

// TickDaily 日周期：清每日奖励标记 + 排行榜重算，同一个事务。
func (s *TickService) TickDaily(ctx context.Context) error {
	ctx = tracex.WithTraceID(ctx, tracex.NewTraceID())
	log := s.log.WithContext(ctx)
	start := s.now()

	err := s.tx.Atomic(ctx, func(ctx context.Context) error {
		rounds, err := s.rounds.Active(ctx, s.now())
		if err != nil {
			return err
		}
		for _, round := range rounds {
			if err := s.dominions.ResetDailyBonuses(ctx, round.ID); err != nil {
				return err
			}
		}
		return s.rankings.UpdateDailyRankings(ctx, rounds)
	})
	if err != nil {
		log.Error("daily tick aborted, nothing committed", zap.Error(err))
		return err
	}

	log.Info("daily tick done", zap.Duration("elapsed", s.now().Sub(start)))
	return nil
}

// tickDominion 单国的小时 tick，步骤顺序不可重排。
func (s *TickService) tickDominion(ctx context.Context, d *domain.Dominion) error {
	before := *d

	// 1. 三类倒计时队列：到期量直接加到对应字段
	exploration, err := s.queues.Advance(ctx, d.ID, domain.QueueExploration)
	if err != nil {
		return err
	}
	if err := applyFinished(exploration, d.AddLand); err != nil {
		return err
	}

	construction, err := s.queues.Advance(ctx, d.ID, domain.QueueConstruction)
	if err != nil {
		return err
	}
	if err := applyFinished(construction, d.AddBuilding); err != nil {
		return err
	}

	training, err := s.queues.Advance(ctx, d.ID, domain.QueueTraining)
	if err != nil {
		return err
	}
	if err := applyFinished(training, d.AddUnits); err != nil {
		return err
	}

	// 2. 强刷法术集合：后面的产出计算必须看到刚过期/刚生效的法术
	spells, err := s.calc.Effects.ActiveSpells(ctx, d.ID, true)
	if err != nil {
		return err
	}

	// 3. 资源净产出
	d.ApplyProduction(s.calc.Production.NetProduction(d, spells))

	// 4. 粮食为负 → 饥荒损失（按钉 0 前的缺口算一次），然后粮食钉回 0
	if d.ResourceFood < 0 {
		if err := d.ApplyStarvation(s.calc.Casualties.StarvationCasualties(d)); err != nil {
			return err
		}
	}

	// 5. 人口增长
	peasants, draftees := s.calc.Population.Growth(d, spells)
	d.ApplyGrowth(peasants, draftees)

	// 6/7. 士气与谍报/法师强度回复
	d.RegenerateMorale()
	d.RegenerateStrength()

	// 8. 法术时长推进：到期即消失，无到期量
	if err := s.queues.AdvanceSpellDurations(ctx, d.ID); err != nil {
		return err
	}

	// 9. 落库 + tick 审计流水
	if err := s.dominions.Save(ctx, d); err != nil {
		return err
	}
	return s.recordTick(ctx, before, *d)
}

func (s *TickService) recordTick(ctx context.Context, before, after domain.Dominion) error {
	delta, err := json.Marshal(domain.Delta(before, after))
	if err != nil {
		return err
	}
	return s.histories.Record(ctx, domain.DominionHistory{
		DominionID: after.ID,
		Event:      domain.HistoryEventTick,
		Delta:      string(delta),
	})
}

// applyFinished 按类型名排序后套用，保证同一输入的处理顺序稳定。
func applyFinished(finished domain.QueueResult, apply func(itemType string, amount int) error) error {
	types := make([]string, 0, len(finished))
	for itemType := range finished {
		types = append(types, itemType)
	}
	sort.Strings(types)

	for _, itemType := range types {
		if err := apply(itemType, finished[itemType]); err != nil {
			return err
		}
	}
	return nil
}
