package domain

// Delta 对比 tick 前后的聚合根，给出发生变化的数值字段增量（after - before）。
// 只覆盖 tick 会动到的字段；审计流水用。
func Delta(before, after Dominion) map[string]int {
	out := make(map[string]int)
	put := func(field string, b, a int) {
		if a != b {
			out[field] = a - b
		}
	}

	put("peasants", before.Peasants, after.Peasants)
	put("peasants_last_hour", before.PeasantsLastHour, after.PeasantsLastHour)
	put("morale", before.Morale, after.Morale)
	put("spy_strength", before.SpyStrength, after.SpyStrength)
	put("wizard_strength", before.WizardStrength, after.WizardStrength)

	put("resource_platinum", before.ResourcePlatinum, after.ResourcePlatinum)
	put("resource_food", before.ResourceFood, after.ResourceFood)
	put("resource_lumber", before.ResourceLumber, after.ResourceLumber)
	put("resource_mana", before.ResourceMana, after.ResourceMana)
	put("resource_ore", before.ResourceOre, after.ResourceOre)
	put("resource_gems", before.ResourceGems, after.ResourceGems)
	put("resource_boats", before.ResourceBoats, after.ResourceBoats)

	put("land_plain", before.LandPlain, after.LandPlain)
	put("land_mountain", before.LandMountain, after.LandMountain)
	put("land_swamp", before.LandSwamp, after.LandSwamp)
	put("land_forest", before.LandForest, after.LandForest)
	put("land_hill", before.LandHill, after.LandHill)
	put("land_water", before.LandWater, after.LandWater)

	put("building_home", before.BuildingHome, after.BuildingHome)
	put("building_alchemy", before.BuildingAlchemy, after.BuildingAlchemy)
	put("building_farm", before.BuildingFarm, after.BuildingFarm)
	put("building_lumberyard", before.BuildingLumberyard, after.BuildingLumberyard)
	put("building_ore_mine", before.BuildingOreMine, after.BuildingOreMine)
	put("building_diamond_mine", before.BuildingDiamondMine, after.BuildingDiamondMine)
	put("building_tower", before.BuildingTower, after.BuildingTower)
	put("building_dock", before.BuildingDock, after.BuildingDock)
	put("building_barracks", before.BuildingBarracks, after.BuildingBarracks)

	put("military_draftees", before.MilitaryDraftees, after.MilitaryDraftees)
	put("military_unit1", before.MilitaryUnit1, after.MilitaryUnit1)
	put("military_unit2", before.MilitaryUnit2, after.MilitaryUnit2)
	put("military_unit3", before.MilitaryUnit3, after.MilitaryUnit3)
	put("military_unit4", before.MilitaryUnit4, after.MilitaryUnit4)
	put("military_spies", before.MilitarySpies, after.MilitarySpies)
	put("military_wizards", before.MilitaryWizards, after.MilitaryWizards)

	return out
}
