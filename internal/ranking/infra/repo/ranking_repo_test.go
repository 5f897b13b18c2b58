package repo

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	tick "Dominion/internal/dominion/domain"
	"Dominion/internal/ranking/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	models := append(tick.Models(), domain.Models()...)
	if err := gdb.AutoMigrate(models...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return gdb
}

func TestRankingRepo_Upsert不冲掉名次列(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRankingRepo(gdb)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	rows := []domain.DailyRanking{
		{RoundID: 1, DominionID: 1, DominionName: "alpha", RealmNumber: 1, RealmName: "north", Land: 300, Networth: 900, DominionCreatedAt: base},
	}
	if err := repo.UpsertSnapshots(ctx, rows); err != nil {
		t.Fatal(err)
	}

	// 写入名次，模拟上一次日结算的第二遍。
	stored, err := repo.ForRound(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	rank := 3
	stored[0].LandRank = &rank
	stored[0].LandRankChange = 2
	if err := repo.SaveRanks(ctx, stored, domain.MetricLand); err != nil {
		t.Fatal(err)
	}

	// 第二天的快照刷新：值变了，名次列必须保持。
	rows[0].Land = 350
	rows[0].DominionName = "alpha-renamed"
	rows[0].RealmName = "north-renamed"
	if err := repo.UpsertSnapshots(ctx, rows); err != nil {
		t.Fatal(err)
	}

	stored, err = repo.ForRound(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 {
		t.Fatalf("rows = %d, want 1", len(stored))
	}
	got := stored[0]
	if got.Land != 350 || got.DominionName != "alpha-renamed" || got.RealmName != "north-renamed" {
		t.Errorf("快照值未刷新: %+v", got)
	}
	if got.LandRank == nil || *got.LandRank != 3 || got.LandRankChange != 2 {
		t.Errorf("名次列被冲掉: rank=%v change=%d", got.LandRank, got.LandRankChange)
	}
}

func TestRankingRepo_SaveRanks_只写对应指标(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRankingRepo(gdb)
	ctx := context.Background()

	if err := repo.UpsertSnapshots(ctx, []domain.DailyRanking{
		{RoundID: 1, DominionID: 1, DominionName: "alpha", Land: 100, Networth: 500},
	}); err != nil {
		t.Fatal(err)
	}

	stored, err := repo.ForRound(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	landRank, networthRank := 1, 4
	stored[0].LandRank = &landRank
	stored[0].NetworthRank = &networthRank
	if err := repo.SaveRanks(ctx, stored, domain.MetricLand); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ForRound(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].LandRank == nil || *got[0].LandRank != 1 {
		t.Errorf("land rank = %v, want 1", got[0].LandRank)
	}
	if got[0].NetworthRank != nil {
		t.Errorf("networth rank 不该被 land 指标的写入带上: %v", *got[0].NetworthRank)
	}
}

func TestRealmRepo_Realms_只取本round且带名称(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRealmRepo(gdb)

	if err := gdb.Create(&tick.Realm{RoundID: 1, Number: 7, Name: "north"}).Error; err != nil {
		t.Fatal(err)
	}
	if err := gdb.Create(&tick.Realm{RoundID: 2, Number: 9, Name: "other"}).Error; err != nil {
		t.Fatal(err)
	}

	realms, err := repo.Realms(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(realms) != 1 {
		t.Fatalf("realms = %v, want 1 entry", realms)
	}
	for _, info := range realms {
		if info.Number != 7 || info.Name != "north" {
			t.Errorf("info = %+v, want number=7 name=north", info)
		}
	}
}
