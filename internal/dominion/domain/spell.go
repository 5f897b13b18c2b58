package domain

import "time"

// 自助类法术（对产出有加成的那几个，参考效果计算器）。
const (
	SpellMidasTouch  = "midas_touch"  // 白金产出 +10%
	SpellGaiasWatch  = "gaias_watch"  // 粮食产出 +10%
	SpellMinersSight = "miners_sight" // 矿石产出 +10%
	SpellHarmony     = "harmony"      // 人口增长 +50%
)

// ActiveSpell 已生效的限时法术；行存在即生效，duration 归零整行删除。
// 唯一约束 (dominion_id, spell, duration) 与建造/训练队列同构，推进走同一套两阶段协议。
type ActiveSpell struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DominionID       uint      `gorm:"column:dominion_id;not null;uniqueIndex:ux_active_spells,priority:1" json:"dominion_id"`
	Spell            string    `gorm:"column:spell;type:varchar(32);not null;uniqueIndex:ux_active_spells,priority:2" json:"spell"`
	Duration         int       `gorm:"column:duration;not null;uniqueIndex:ux_active_spells,priority:3" json:"duration"`
	CastByDominionID uint      `gorm:"column:cast_by_dominion_id;not null" json:"cast_by_dominion_id"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ActiveSpell) TableName() string {
	return "active_spells"
}

// SpellSet 某个国当前生效的法术集合。
type SpellSet []ActiveSpell

func (s SpellSet) Active(spell string) bool {
	for _, as := range s {
		if as.Spell == spell {
			return true
		}
	}
	return false
}
