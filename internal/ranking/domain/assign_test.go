package domain

import (
	"testing"
	"time"
)

func intp(v int) *int { return &v }

func TestAssignRanks_值降序_并列看上期名次(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := &DailyRanking{DominionID: 1, Land: 100, LandRank: intp(4), DominionCreatedAt: base}
	b := &DailyRanking{DominionID: 2, Land: 100, LandRank: intp(2), DominionCreatedAt: base}
	c := &DailyRanking{DominionID: 3, Land: 50, LandRank: intp(1), DominionCreatedAt: base}
	rows := []*DailyRanking{a, b, c}

	AssignRanks(rows, MetricLand)

	// 并列 100：上期名次 2 的 b 排在上期名次 4 的 a 前面。
	if rows[0] != b || rows[1] != a || rows[2] != c {
		t.Fatalf("order = [%d %d %d], want [2 1 3]", rows[0].DominionID, rows[1].DominionID, rows[2].DominionID)
	}
	if *b.LandRank != 1 || *a.LandRank != 2 || *c.LandRank != 3 {
		t.Errorf("ranks = [%d %d %d]", *b.LandRank, *a.LandRank, *c.LandRank)
	}
	// 变化 = 上期 − 本期：c 从 1 跌到 3。
	if c.LandRankChange != -2 {
		t.Errorf("c change = %d, want -2", c.LandRankChange)
	}
	if b.LandRankChange != 1 {
		t.Errorf("b change = %d, want 1", b.LandRankChange)
	}
}

func TestAssignRanks_上榜过的并列排在新国前(t *testing.T) {
	early := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)
	veteran := &DailyRanking{DominionID: 1, Land: 80, LandRank: intp(9), DominionCreatedAt: late}
	newcomer := &DailyRanking{DominionID: 2, Land: 80, DominionCreatedAt: early}
	rows := []*DailyRanking{newcomer, veteran}

	AssignRanks(rows, MetricLand)

	if rows[0] != veteran {
		t.Fatal("上期上过榜的应排在首次上榜者前")
	}
	// 首次上榜变化记 0。
	if newcomer.LandRankChange != 0 {
		t.Errorf("newcomer change = %d, want 0", newcomer.LandRankChange)
	}
}

func TestAssignRanks_都没上过榜_按建国时间(t *testing.T) {
	early := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	old := &DailyRanking{DominionID: 1, Networth: 500, DominionCreatedAt: early}
	young := &DailyRanking{DominionID: 2, Networth: 500, DominionCreatedAt: early.Add(time.Minute)}
	rows := []*DailyRanking{young, old}

	AssignRanks(rows, MetricNetworth)

	if rows[0] != old || *old.NetworthRank != 1 || *young.NetworthRank != 2 {
		t.Fatalf("rows[0].DominionID = %d, want 1", rows[0].DominionID)
	}
}

func TestAssignRanks_升榜变化为正(t *testing.T) {
	r := &DailyRanking{DominionID: 1, Land: 100, LandRank: intp(5)}
	others := []*DailyRanking{
		r,
		{DominionID: 2, Land: 90, LandRank: intp(1)},
		{DominionID: 3, Land: 80, LandRank: intp(2)},
	}

	AssignRanks(others, MetricLand)

	if *r.LandRank != 1 || r.LandRankChange != 4 {
		t.Fatalf("rank = %d change = %d, want 1 / 4", *r.LandRank, r.LandRankChange)
	}
}

func TestAssignRanks_两个指标互不干扰(t *testing.T) {
	r := &DailyRanking{DominionID: 1, Land: 100, Networth: 900, NetworthRank: intp(7)}
	rows := []*DailyRanking{r}

	AssignRanks(rows, MetricLand)

	if r.LandRank == nil || *r.LandRank != 1 {
		t.Fatal("land rank 未写入")
	}
	if *r.NetworthRank != 7 || r.NetworthRankChange != 0 {
		t.Errorf("networth 列被误改: %+v", r)
	}
}
