package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	tick "Dominion/internal/dominion/domain"
	"Dominion/internal/ranking/domain"
	"Dominion/internal/shared/infrastructure/db"
)

type RankingRepo struct {
	db *gorm.DB
}

func NewRankingRepo(gdb *gorm.DB) *RankingRepo {
	return &RankingRepo{db: gdb}
}

// UpsertSnapshots 以 (round_id, dominion_id) 冲突键 upsert，
// 只覆盖快照值列——名次列留给第二遍写，避免把上期名次冲掉。
func (r *RankingRepo) UpsertSnapshots(ctx context.Context, rows []domain.DailyRanking) error {
	if len(rows) == 0 {
		return nil
	}
	err := db.FromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "round_id"}, {Name: "dominion_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"dominion_name", "realm_number", "realm_name", "land", "networth",
				"dominion_created_at", "updated_at",
			}),
		}).
		Create(&rows).Error
	if err != nil {
		return tick.ErrSystemUnavailable.WithCause(err)
	}
	return nil
}

func (r *RankingRepo) ForRound(ctx context.Context, roundID uint) ([]*domain.DailyRanking, error) {
	var rows []*domain.DailyRanking
	err := db.FromContext(ctx, r.db).
		Where("round_id = ?", roundID).
		Find(&rows).Error
	if err != nil {
		return nil, tick.ErrSystemUnavailable.WithData("round_id", roundID).WithCause(err)
	}
	return rows, nil
}

// SaveRanks 逐行只更新指标对应的名次两列。
func (r *RankingRepo) SaveRanks(ctx context.Context, rows []*domain.DailyRanking, metric domain.Metric) error {
	tx := db.FromContext(ctx, r.db)

	rankColumn, changeColumn := "land_rank", "land_rank_change"
	if metric == domain.MetricNetworth {
		rankColumn, changeColumn = "networth_rank", "networth_rank_change"
	}

	for _, row := range rows {
		rank, change := row.LandRank, row.LandRankChange
		if metric == domain.MetricNetworth {
			rank, change = row.NetworthRank, row.NetworthRankChange
		}
		err := tx.Model(&domain.DailyRanking{}).
			Where("id = ?", row.ID).
			Updates(map[string]any{rankColumn: rank, changeColumn: change}).Error
		if err != nil {
			return tick.ErrSystemUnavailable.WithData("ranking_id", row.ID).WithCause(err)
		}
	}
	return nil
}
