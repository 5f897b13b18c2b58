package calc

import "Dominion/internal/dominion/domain"

const (
	housingPerLand     = 15
	housingPerHome     = 30
	growthRatePercent  = 3 // 每小时向容量收敛 3%
	drafteeRatePercent = 1 // 每小时平民的 1% 转为新兵
)

// Population 人口增长计算器：平民向住房容量收敛，新兵按平民比例补充。
type Population struct {
	land *Land
}

func NewPopulation(land *Land) *Population {
	return &Population{land: land}
}

func (p Population) Growth(d *domain.Dominion, spells domain.SpellSet) (peasants, draftees int) {
	capacity := p.land.TotalLand(d)*housingPerLand + d.BuildingHome*housingPerHome

	room := capacity - d.TotalPopulation()
	if room > 0 {
		peasants = room * growthRatePercent / 100
		if spells.Active(domain.SpellHarmony) {
			// harmony：增长 +50%
			peasants = peasants * 3 / 2
		}
	}

	draftees = d.Peasants * drafteeRatePercent / 100
	return peasants, draftees
}
