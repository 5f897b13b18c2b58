package calc

import "Dominion/internal/dominion/domain"

// 饥荒损失比例：缺粮时每类人口损失 4%（向上取整，有存量就至少损 1）。
const starvationRatePercent = 4

// Casualties 饥荒损失计算器：入参是粮食为负（钉 0 前）的国。
type Casualties struct{}

func NewCasualties() *Casualties {
	return &Casualties{}
}

func (Casualties) StarvationCasualties(d *domain.Dominion) map[string]int {
	out := make(map[string]int)
	add := func(unitType string, count int) {
		if count <= 0 {
			return
		}
		out[unitType] = ceilPercent(count, starvationRatePercent)
	}

	add(domain.UnitPeasants, d.Peasants)
	add(domain.UnitDraftees, d.MilitaryDraftees)
	add(domain.UnitType1, d.MilitaryUnit1)
	add(domain.UnitType2, d.MilitaryUnit2)
	add(domain.UnitType3, d.MilitaryUnit3)
	add(domain.UnitType4, d.MilitaryUnit4)
	add(domain.UnitSpies, d.MilitarySpies)
	add(domain.UnitWizards, d.MilitaryWizards)
	return out
}

func ceilPercent(count, percent int) int {
	return (count*percent + 99) / 100
}
