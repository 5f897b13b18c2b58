package domain

// ResourceDelta 一次 tick 的资源净产出（产出减消耗，允许为负）。
type ResourceDelta struct {
	Platinum int `json:"platinum"`
	Food     int `json:"food"`
	Lumber   int `json:"lumber"`
	Mana     int `json:"mana"`
	Ore      int `json:"ore"`
	Gems     int `json:"gems"`
	Boats    int `json:"boats"`
}
