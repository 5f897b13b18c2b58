package app

import (
	"context"

	"go.uber.org/zap"

	tick "Dominion/internal/dominion/domain"
	"Dominion/internal/kit/logx"
	"Dominion/internal/ranking/domain"
)

// RankingService 日排行重算，两遍走完：
// 第一遍刷新每国的快照值（名次列不动），第二遍按指标从存储重读、
// 排序、写回名次与变化。两遍之间不持有内存态，重算幂等。
type RankingService struct {
	rankings  RankingRepo
	dominions DominionSource
	realms    RealmSource
	land      LandCalculator
	networth  NetworthCalculator
	batchSize int
	log       logx.Logger
}

func NewRankingService(
	rankings RankingRepo,
	dominions DominionSource,
	realms RealmSource,
	land LandCalculator,
	networth NetworthCalculator,
	batchSize int,
	log logx.Logger,
) *RankingService {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &RankingService{
		rankings:  rankings,
		dominions: dominions,
		realms:    realms,
		land:      land,
		networth:  networth,
		batchSize: batchSize,
		log:       log,
	}
}

// UpdateDailyRankings 在调用方的事务里重算所有给定 round 的排行。
func (s *RankingService) UpdateDailyRankings(ctx context.Context, rounds []tick.Round) error {
	log := s.log.WithContext(ctx)

	for _, round := range rounds {
		if err := s.refreshSnapshots(ctx, round.ID); err != nil {
			return err
		}
		for _, metric := range []domain.Metric{domain.MetricLand, domain.MetricNetworth} {
			if err := s.rankMetric(ctx, round.ID, metric); err != nil {
				return err
			}
		}
		log.Info("daily rankings updated", zap.Uint("round_id", round.ID))
	}
	return nil
}

// refreshSnapshots 第一遍：逐批算出每国的快照值并 upsert。
func (s *RankingService) refreshSnapshots(ctx context.Context, roundID uint) error {
	realms, err := s.realms.Realms(ctx, roundID)
	if err != nil {
		return err
	}

	batch := make([]domain.DailyRanking, 0, s.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.rankings.UpsertSnapshots(ctx, batch); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	err = s.dominions.ForEachInRound(ctx, roundID, s.batchSize, func(d *tick.Dominion) error {
		realm := realms[d.RealmID]
		batch = append(batch, domain.DailyRanking{
			RoundID:           roundID,
			DominionID:        d.ID,
			DominionName:      d.Name,
			RealmNumber:       realm.Number,
			RealmName:         realm.Name,
			Land:              s.land.TotalLand(d),
			Networth:          s.networth.Networth(d),
			DominionCreatedAt: d.CreatedAt,
		})
		if len(batch) >= s.batchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return err
	}
	return flush()
}

// rankMetric 第二遍：从存储重读快照（带上期名次），排序后只写名次两列。
func (s *RankingService) rankMetric(ctx context.Context, roundID uint, metric domain.Metric) error {
	rows, err := s.rankings.ForRound(ctx, roundID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	domain.AssignRanks(rows, metric)
	return s.rankings.SaveRanks(ctx, rows, metric)
}
