package calc

import "Dominion/internal/dominion/domain"

// 每小时基础产出/消耗系数（参考公式，整型十分位运算避免浮点漂移）。
const (
	platinumPerPeasantTenth = 27 // 每平民 2.7 白金
	platinumPerAlchemy      = 45
	foodPerFarm             = 80
	foodPerPersonQuarter    = 4 // 每 4 人消耗 1 粮
	lumberPerLumberyard     = 50
	manaPerTower            = 25
	orePerOreMine           = 60
	gemsPerDiamondMine      = 15
	docksPerBoat            = 20

	spellBonusPercent = 10 // 自助产出类法术统一 +10%
)

// Production 资源净产出计算器：无状态，法术集合由调用方传入。
type Production struct{}

func NewProduction() *Production {
	return &Production{}
}

func (Production) NetProduction(d *domain.Dominion, spells domain.SpellSet) domain.ResourceDelta {
	platinum := d.Peasants*platinumPerPeasantTenth/10 + d.BuildingAlchemy*platinumPerAlchemy
	if spells.Active(domain.SpellMidasTouch) {
		platinum += platinum * spellBonusPercent / 100
	}

	foodProduced := d.BuildingFarm * foodPerFarm
	if spells.Active(domain.SpellGaiasWatch) {
		foodProduced += foodProduced * spellBonusPercent / 100
	}
	food := foodProduced - d.TotalPopulation()/foodPerPersonQuarter

	ore := d.BuildingOreMine * orePerOreMine
	if spells.Active(domain.SpellMinersSight) {
		ore += ore * spellBonusPercent / 100
	}

	return domain.ResourceDelta{
		Platinum: platinum,
		Food:     food,
		Lumber:   d.BuildingLumberyard * lumberPerLumberyard,
		Mana:     d.BuildingTower * manaPerTower,
		Ore:      ore,
		Gems:     d.BuildingDiamondMine * gemsPerDiamondMine,
		Boats:    d.BuildingDock / docksPerBoat,
	}
}
