package domain

import "time"

// Metric 排行指标。
type Metric string

const (
	MetricLand     Metric = "land"
	MetricNetworth Metric = "networth"
)

// DailyRanking 每日排行快照：每 round 每国一行，日结算先刷新快照值，
// 再按指标重算名次。名次列可空——从未上过榜的国 rank 为 NULL。
type DailyRanking struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RoundID      uint   `gorm:"column:round_id;not null;uniqueIndex:ux_daily_rankings,priority:1" json:"round_id"`
	DominionID   uint   `gorm:"column:dominion_id;not null;uniqueIndex:ux_daily_rankings,priority:2" json:"dominion_id"`
	DominionName string `gorm:"column:dominion_name;type:varchar(64);not null" json:"dominion_name"`
	RealmNumber  int    `gorm:"column:realm_number;not null" json:"realm_number"`
	RealmName    string `gorm:"column:realm_name;type:varchar(64);not null" json:"realm_name"`

	Land     int `gorm:"column:land;not null" json:"land"`
	Networth int `gorm:"column:networth;not null" json:"networth"`

	LandRank           *int `gorm:"column:land_rank" json:"land_rank"`
	LandRankChange     int  `gorm:"column:land_rank_change;not null;default:0" json:"land_rank_change"`
	NetworthRank       *int `gorm:"column:networth_rank" json:"networth_rank"`
	NetworthRankChange int  `gorm:"column:networth_rank_change;not null;default:0" json:"networth_rank_change"`

	// 并列时最后的决胜因子：建国早的在前。
	DominionCreatedAt time.Time `gorm:"column:dominion_created_at;not null" json:"dominion_created_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DailyRanking) TableName() string {
	return "daily_rankings"
}

// RealmInfo 快照展示用的阵营信息。
type RealmInfo struct {
	Number int
	Name   string
}

// Models 本上下文的持久化模型。
func Models() []any {
	return []any{&DailyRanking{}}
}
