package calc

import "Dominion/internal/dominion/domain"

// Land 土地计算器：排行榜与人口容量都用总地块数。
type Land struct{}

func NewLand() *Land {
	return &Land{}
}

func (Land) TotalLand(d *domain.Dominion) int {
	return d.LandPlain + d.LandMountain + d.LandSwamp + d.LandForest + d.LandHill + d.LandWater
}
