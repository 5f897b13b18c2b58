package domain

import (
	"errors"
	"testing"
	"time"
)

func TestRegenerateMorale(t *testing.T) {
	cases := []struct {
		name   string
		before int
		after  int
	}{
		{"低于70回6", 50, 56},
		{"69还算低位", 69, 75},
		{"70走高位回3", 70, 73},
		{"99封顶100", 99, 100},
		{"100不回复", 100, 100},
		{"超过100不回复", 105, 105},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := Dominion{Morale: c.before}
			d.RegenerateMorale()
			if d.Morale != c.after {
				t.Fatalf("morale %d -> got %d, want %d", c.before, d.Morale, c.after)
			}
		})
	}
}

func TestRegenerateStrength_独立回复且封顶(t *testing.T) {
	d := Dominion{SpyStrength: 97, WizardStrength: 40}
	d.RegenerateStrength()
	if d.SpyStrength != 100 {
		t.Fatalf("spy strength got %d, want 100", d.SpyStrength)
	}
	if d.WizardStrength != 44 {
		t.Fatalf("wizard strength got %d, want 44", d.WizardStrength)
	}

	d.RegenerateStrength()
	if d.SpyStrength != 100 {
		t.Fatalf("spy strength 满值不应再变, got %d", d.SpyStrength)
	}
}

func TestApplyStarvation_扣兵并钉回零(t *testing.T) {
	d := Dominion{ResourceFood: -10, MilitaryUnit1: 20, Peasants: 100}
	err := d.ApplyStarvation(map[string]int{UnitType1: 3, UnitPeasants: 5})
	if err != nil {
		t.Fatalf("ApplyStarvation: %v", err)
	}
	if d.MilitaryUnit1 != 17 {
		t.Fatalf("unit1 got %d, want 17", d.MilitaryUnit1)
	}
	if d.Peasants != 95 {
		t.Fatalf("peasants got %d, want 95", d.Peasants)
	}
	if d.ResourceFood != 0 {
		t.Fatalf("food got %d, want 0", d.ResourceFood)
	}
}

func TestApplyStarvation_损失不把兵打成负数(t *testing.T) {
	d := Dominion{ResourceFood: -99, MilitaryUnit2: 2}
	if err := d.ApplyStarvation(map[string]int{UnitType2: 10}); err != nil {
		t.Fatalf("ApplyStarvation: %v", err)
	}
	if d.MilitaryUnit2 != 0 {
		t.Fatalf("unit2 got %d, want 0", d.MilitaryUnit2)
	}
}

func TestApplyGrowth_PeasantsLastHour覆盖不累计(t *testing.T) {
	d := Dominion{Peasants: 1000}
	d.ApplyGrowth(30, 5)
	d.ApplyGrowth(12, 0)
	if d.Peasants != 1042 {
		t.Fatalf("peasants got %d, want 1042", d.Peasants)
	}
	if d.PeasantsLastHour != 12 {
		t.Fatalf("peasants_last_hour got %d, want 12（覆盖语义）", d.PeasantsLastHour)
	}
	if d.MilitaryDraftees != 5 {
		t.Fatalf("draftees got %d, want 5", d.MilitaryDraftees)
	}
}

func TestAddLand_未知地形报错(t *testing.T) {
	d := Dominion{}
	err := d.AddLand("lava", 10)
	if !errors.Is(err, ErrUnknownItemType) {
		t.Fatalf("want ErrUnknownItemType, got %v", err)
	}
}

func TestRound_Active_左闭右开(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 50)
	r := Round{StartDate: start, EndDate: end}

	if r.Active(start.Add(-time.Second)) {
		t.Fatal("开始前不应活跃")
	}
	if !r.Active(start) {
		t.Fatal("开始时刻应活跃")
	}
	if r.Active(end) {
		t.Fatal("结束时刻不应活跃")
	}
}

func TestQueueResult_同类型累加(t *testing.T) {
	r := QueueResult{}
	r.Add(LandPlain, 5)
	r.Add(LandPlain, 7)
	if r[LandPlain] != 12 {
		t.Fatalf("got %d, want 12（同类型同 tick 到期必须求和）", r[LandPlain])
	}
}
