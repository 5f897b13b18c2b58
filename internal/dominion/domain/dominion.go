package domain

import "time"

// 队列/状态字段共用的类型标识（探索的地块、建造的建筑、训练的兵种）。
const (
	LandPlain    = "plain"
	LandMountain = "mountain"
	LandSwamp    = "swamp"
	LandForest   = "forest"
	LandHill     = "hill"
	LandWater    = "water"

	BuildingHome        = "home"
	BuildingAlchemy     = "alchemy"
	BuildingFarm        = "farm"
	BuildingLumberyard  = "lumberyard"
	BuildingOreMine     = "ore_mine"
	BuildingDiamondMine = "diamond_mine"
	BuildingTower       = "tower"
	BuildingDock        = "dock"
	BuildingBarracks    = "barracks"

	UnitDraftees = "draftees"
	UnitType1    = "unit1"
	UnitType2    = "unit2"
	UnitType3    = "unit3"
	UnitType4    = "unit4"
	UnitSpies    = "spies"
	UnitWizards  = "wizards"
	UnitPeasants = "peasants"
)

// 士气/谍报/法师强度的边界与每小时回复量。
const (
	StrengthMax        = 100
	MoraleHighWater    = 70
	MoraleRegenLow     = 6 // 士气 < 70
	MoraleRegenHigh    = 3 // 70 <= 士气 < 100
	StrengthRegenMount = 4
)

// Dominion 一个玩家在某个 round 内的全部持久状态，tick 的聚合根。
type Dominion struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RoundID   uint   `gorm:"column:round_id;not null;index" json:"round_id"`
	RealmID   uint   `gorm:"column:realm_id;not null;index" json:"realm_id"`
	Name      string `gorm:"column:name;type:varchar(64);not null" json:"name"`
	RulerName string `gorm:"column:ruler_name;type:varchar(64);not null" json:"ruler_name"`
	Prestige  int    `gorm:"column:prestige;not null;default:250" json:"prestige"`

	Peasants         int `gorm:"column:peasants;not null" json:"peasants"`
	PeasantsLastHour int `gorm:"column:peasants_last_hour;not null;default:0" json:"peasants_last_hour"`

	Morale         int `gorm:"column:morale;not null;default:100" json:"morale"`
	SpyStrength    int `gorm:"column:spy_strength;not null;default:100" json:"spy_strength"`
	WizardStrength int `gorm:"column:wizard_strength;not null;default:100" json:"wizard_strength"`

	ResourcePlatinum int `gorm:"column:resource_platinum;not null" json:"resource_platinum"`
	ResourceFood     int `gorm:"column:resource_food;not null" json:"resource_food"`
	ResourceLumber   int `gorm:"column:resource_lumber;not null" json:"resource_lumber"`
	ResourceMana     int `gorm:"column:resource_mana;not null" json:"resource_mana"`
	ResourceOre      int `gorm:"column:resource_ore;not null" json:"resource_ore"`
	ResourceGems     int `gorm:"column:resource_gems;not null" json:"resource_gems"`
	ResourceBoats    int `gorm:"column:resource_boats;not null" json:"resource_boats"`

	LandPlain    int `gorm:"column:land_plain;not null" json:"land_plain"`
	LandMountain int `gorm:"column:land_mountain;not null" json:"land_mountain"`
	LandSwamp    int `gorm:"column:land_swamp;not null" json:"land_swamp"`
	LandForest   int `gorm:"column:land_forest;not null" json:"land_forest"`
	LandHill     int `gorm:"column:land_hill;not null" json:"land_hill"`
	LandWater    int `gorm:"column:land_water;not null" json:"land_water"`

	BuildingHome        int `gorm:"column:building_home;not null" json:"building_home"`
	BuildingAlchemy     int `gorm:"column:building_alchemy;not null" json:"building_alchemy"`
	BuildingFarm        int `gorm:"column:building_farm;not null" json:"building_farm"`
	BuildingLumberyard  int `gorm:"column:building_lumberyard;not null" json:"building_lumberyard"`
	BuildingOreMine     int `gorm:"column:building_ore_mine;not null" json:"building_ore_mine"`
	BuildingDiamondMine int `gorm:"column:building_diamond_mine;not null" json:"building_diamond_mine"`
	BuildingTower       int `gorm:"column:building_tower;not null" json:"building_tower"`
	BuildingDock        int `gorm:"column:building_dock;not null" json:"building_dock"`
	BuildingBarracks    int `gorm:"column:building_barracks;not null" json:"building_barracks"`

	MilitaryDraftees int `gorm:"column:military_draftees;not null" json:"military_draftees"`
	MilitaryUnit1    int `gorm:"column:military_unit1;not null" json:"military_unit1"`
	MilitaryUnit2    int `gorm:"column:military_unit2;not null" json:"military_unit2"`
	MilitaryUnit3    int `gorm:"column:military_unit3;not null" json:"military_unit3"`
	MilitaryUnit4    int `gorm:"column:military_unit4;not null" json:"military_unit4"`
	MilitarySpies    int `gorm:"column:military_spies;not null" json:"military_spies"`
	MilitaryWizards  int `gorm:"column:military_wizards;not null" json:"military_wizards"`

	DailyPlatinum bool `gorm:"column:daily_platinum;not null;default:false" json:"daily_platinum"`
	DailyLand     bool `gorm:"column:daily_land;not null;default:false" json:"daily_land"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Dominion) TableName() string {
	return "dominions"
}

// AddLand 把探索完成的地块加到对应地形上。
func (d *Dominion) AddLand(landType string, amount int) error {
	switch landType {
	case LandPlain:
		d.LandPlain += amount
	case LandMountain:
		d.LandMountain += amount
	case LandSwamp:
		d.LandSwamp += amount
	case LandForest:
		d.LandForest += amount
	case LandHill:
		d.LandHill += amount
	case LandWater:
		d.LandWater += amount
	default:
		return ErrUnknownItemType.WithData("kind", "land").WithData("type", landType)
	}
	return nil
}

// AddBuilding 把建造完成的建筑计入。
func (d *Dominion) AddBuilding(building string, amount int) error {
	switch building {
	case BuildingHome:
		d.BuildingHome += amount
	case BuildingAlchemy:
		d.BuildingAlchemy += amount
	case BuildingFarm:
		d.BuildingFarm += amount
	case BuildingLumberyard:
		d.BuildingLumberyard += amount
	case BuildingOreMine:
		d.BuildingOreMine += amount
	case BuildingDiamondMine:
		d.BuildingDiamondMine += amount
	case BuildingTower:
		d.BuildingTower += amount
	case BuildingDock:
		d.BuildingDock += amount
	case BuildingBarracks:
		d.BuildingBarracks += amount
	default:
		return ErrUnknownItemType.WithData("kind", "building").WithData("type", building)
	}
	return nil
}

// AddUnits 把训练完成的兵力计入（amount 可为负，扣减时下限 0）。
func (d *Dominion) AddUnits(unitType string, amount int) error {
	switch unitType {
	case UnitDraftees:
		d.MilitaryDraftees = floorZero(d.MilitaryDraftees + amount)
	case UnitType1:
		d.MilitaryUnit1 = floorZero(d.MilitaryUnit1 + amount)
	case UnitType2:
		d.MilitaryUnit2 = floorZero(d.MilitaryUnit2 + amount)
	case UnitType3:
		d.MilitaryUnit3 = floorZero(d.MilitaryUnit3 + amount)
	case UnitType4:
		d.MilitaryUnit4 = floorZero(d.MilitaryUnit4 + amount)
	case UnitSpies:
		d.MilitarySpies = floorZero(d.MilitarySpies + amount)
	case UnitWizards:
		d.MilitaryWizards = floorZero(d.MilitaryWizards + amount)
	case UnitPeasants:
		d.Peasants = floorZero(d.Peasants + amount)
	default:
		return ErrUnknownItemType.WithData("kind", "unit").WithData("type", unitType)
	}
	return nil
}

// ApplyProduction 叠加一次 tick 的资源净产出。
func (d *Dominion) ApplyProduction(delta ResourceDelta) {
	d.ResourcePlatinum += delta.Platinum
	d.ResourceFood += delta.Food
	d.ResourceLumber += delta.Lumber
	d.ResourceMana += delta.Mana
	d.ResourceOre += delta.Ore
	d.ResourceGems += delta.Gems
	d.ResourceBoats += delta.Boats
}

// ApplyStarvation 按兵种扣减饥荒损失，然后把粮食钉回 0。
// 损失在钉 0 之前、按缺口一次性计算好传入。
func (d *Dominion) ApplyStarvation(casualties map[string]int) error {
	for unitType, losses := range casualties {
		if losses <= 0 {
			continue
		}
		if err := d.AddUnits(unitType, -losses); err != nil {
			return err
		}
	}
	d.ResourceFood = 0
	return nil
}

// ApplyGrowth 叠加人口增长；PeasantsLastHour 每次 tick 覆盖，不累计。
func (d *Dominion) ApplyGrowth(peasants, draftees int) {
	d.Peasants += peasants
	d.PeasantsLastHour = peasants
	d.MilitaryDraftees += draftees
}

// RegenerateMorale 每小时士气回复：<70 回 6，<100 回 3 封顶，>=100 不回。
func (d *Dominion) RegenerateMorale() {
	switch {
	case d.Morale < MoraleHighWater:
		d.Morale += MoraleRegenLow
	case d.Morale < StrengthMax:
		d.Morale = capAt(d.Morale+MoraleRegenHigh, StrengthMax)
	}
}

// RegenerateStrength 谍报/法师强度各自独立回 4，封顶 100。
func (d *Dominion) RegenerateStrength() {
	if d.SpyStrength < StrengthMax {
		d.SpyStrength = capAt(d.SpyStrength+StrengthRegenMount, StrengthMax)
	}
	if d.WizardStrength < StrengthMax {
		d.WizardStrength = capAt(d.WizardStrength+StrengthRegenMount, StrengthMax)
	}
}

// TotalPopulation 平民 + 全部兵力（含新兵），粮食消耗基数。
func (d *Dominion) TotalPopulation() int {
	return d.Peasants +
		d.MilitaryDraftees +
		d.MilitaryUnit1 + d.MilitaryUnit2 + d.MilitaryUnit3 + d.MilitaryUnit4 +
		d.MilitarySpies + d.MilitaryWizards
}

func floorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func capAt(v, cap int) int {
	if v > cap {
		return cap
	}
	return v
}
