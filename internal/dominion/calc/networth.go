package calc

import "Dominion/internal/dominion/domain"

// 身价权重，参照经典 OpenDominion 口径取整。
const (
	networthPerLand     = 20
	networthPerBuilding = 5
	networthPerUnit     = 5
	networthPerSpyWiz   = 5
	networthPerPeasant  = 1 // 每 10 平民 1 点，见下
)

// Networth 身价计算器：排行榜第二指标。
type Networth struct {
	land *Land
}

func NewNetworth(land *Land) *Networth {
	return &Networth{land: land}
}

func (n *Networth) Networth(d *domain.Dominion) int {
	total := n.land.TotalLand(d) * networthPerLand
	total += totalBuildings(d) * networthPerBuilding
	total += (d.MilitaryUnit1 + d.MilitaryUnit2 + d.MilitaryUnit3 + d.MilitaryUnit4) * networthPerUnit
	total += (d.MilitarySpies + d.MilitaryWizards) * networthPerSpyWiz
	total += d.Peasants * networthPerPeasant / 10
	total += d.ResourcePlatinum / 1000
	return total
}

func totalBuildings(d *domain.Dominion) int {
	return d.BuildingHome +
		d.BuildingAlchemy +
		d.BuildingFarm +
		d.BuildingLumberyard +
		d.BuildingOreMine +
		d.BuildingDiamondMine +
		d.BuildingTower +
		d.BuildingDock +
		d.BuildingBarracks
}
