package repo

import (
	"context"
	"errors"
	"testing"

	"Dominion/internal/dominion/domain"
	"Dominion/internal/shared/infrastructure/db"
)

func TestAtomic_中途失败_国与队列整体回滚(t *testing.T) {
	gdb := newTestDB(t)
	dominions := NewDominionRepo(gdb)
	queues := NewQueueRepo(gdb)
	runner := db.NewTxRunner(gdb)

	d := &domain.Dominion{RoundID: 1, Name: "alpha", RulerName: "r", Morale: 50}
	mustCreate(t, gdb, d)
	mustCreate(t, gdb, &domain.ExplorationQueue{DominionID: d.ID, LandType: domain.LandPlain, Amount: 5, Hours: 3})
	mustCreate(t, gdb, &domain.ExplorationQueue{DominionID: d.ID, LandType: domain.LandPlain, Amount: 8, Hours: 1})

	boom := errors.New("boom")
	err := runner.Atomic(context.Background(), func(ctx context.Context) error {
		d.Morale = 90
		if err := dominions.Save(ctx, d); err != nil {
			return err
		}
		result, err := queues.Advance(ctx, d.ID, domain.QueueExploration)
		if err != nil {
			return err
		}
		// 事务内能看到自己的写入：到期量与推进后的状态
		if result[domain.LandPlain] != 8 {
			t.Errorf("事务内 result = %v, want plain:8", result)
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	// 事务失败后一切恢复原状
	var got domain.Dominion
	if err := gdb.First(&got, d.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.Morale != 50 {
		t.Errorf("morale = %d, want 50（Save 应被回滚）", got.Morale)
	}

	var rows []domain.ExplorationQueue
	if err := gdb.Order("hours ASC").Find(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("queue rows = %d, want 2（到期删除应被回滚）", len(rows))
	}
	if rows[0].Hours != 1 || rows[0].Amount != 8 {
		t.Errorf("row[0] = %+v, want hours=1 amount=8", rows[0])
	}
	if rows[1].Hours != 3 || rows[1].Amount != 5 {
		t.Errorf("row[1] = %+v, want hours=3 amount=5", rows[1])
	}
}

func TestAtomic_成功提交_事务内写入可见(t *testing.T) {
	gdb := newTestDB(t)
	dominions := NewDominionRepo(gdb)
	runner := db.NewTxRunner(gdb)

	d := &domain.Dominion{RoundID: 1, Name: "alpha", RulerName: "r", Morale: 50}
	mustCreate(t, gdb, d)

	err := runner.Atomic(context.Background(), func(ctx context.Context) error {
		d.Morale = 90
		return dominions.Save(ctx, d)
	})
	if err != nil {
		t.Fatal(err)
	}

	var got domain.Dominion
	if err := gdb.First(&got, d.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.Morale != 90 {
		t.Errorf("morale = %d, want 90", got.Morale)
	}
}
