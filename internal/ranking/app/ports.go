package app

import (
	"context"

	tick "Dominion/internal/dominion/domain"
	"Dominion/internal/ranking/domain"
)

type RankingRepo interface {
	// UpsertSnapshots 写入/刷新快照值列，名次列保持原值不动。
	UpsertSnapshots(ctx context.Context, rows []domain.DailyRanking) error
	// ForRound 读取某 round 的全部快照（含上期名次）。
	ForRound(ctx context.Context, roundID uint) ([]*domain.DailyRanking, error)
	// SaveRanks 只落指定指标的名次与变化两列。
	SaveRanks(ctx context.Context, rows []*domain.DailyRanking, metric domain.Metric) error
}

// DominionSource 由 dominion 上下文的仓储实现，避免双向依赖。
type DominionSource interface {
	ForEachInRound(ctx context.Context, roundID uint, batchSize int, fn func(d *tick.Dominion) error) error
}

type RealmSource interface {
	// Realms realm id → 阵营编号与名称（快照展示列）。
	Realms(ctx context.Context, roundID uint) (map[uint]domain.RealmInfo, error)
}

type LandCalculator interface {
	TotalLand(d *tick.Dominion) int
}

type NetworthCalculator interface {
	Networth(d *tick.Dominion) int
}
