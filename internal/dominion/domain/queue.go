package domain

import "time"

// QueueKind 区分三类倒计时队列；激活法术的 duration 队列单独处理（见 ActiveSpell）。
type QueueKind string

const (
	QueueExploration  QueueKind = "exploration"
	QueueConstruction QueueKind = "construction"
	QueueTraining     QueueKind = "training"
)

// 队列行的唯一约束是 (dominion_id, 类型, hours)：
// 同一国同一类型同一剩余时长只允许一行，倒计时推进必须用两阶段符号翻转避免瞬时冲突。

type ExplorationQueue struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DominionID uint      `gorm:"column:dominion_id;not null;uniqueIndex:ux_queue_exploration,priority:1" json:"dominion_id"`
	LandType   string    `gorm:"column:land_type;type:varchar(32);not null;uniqueIndex:ux_queue_exploration,priority:2" json:"land_type"`
	Amount     int       `gorm:"column:amount;not null" json:"amount"`
	Hours      int       `gorm:"column:hours;not null;uniqueIndex:ux_queue_exploration,priority:3" json:"hours"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ExplorationQueue) TableName() string {
	return "queue_exploration"
}

type ConstructionQueue struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DominionID uint      `gorm:"column:dominion_id;not null;uniqueIndex:ux_queue_construction,priority:1" json:"dominion_id"`
	Building   string    `gorm:"column:building;type:varchar(32);not null;uniqueIndex:ux_queue_construction,priority:2" json:"building"`
	Amount     int       `gorm:"column:amount;not null" json:"amount"`
	Hours      int       `gorm:"column:hours;not null;uniqueIndex:ux_queue_construction,priority:3" json:"hours"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ConstructionQueue) TableName() string {
	return "queue_construction"
}

type TrainingQueue struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DominionID uint      `gorm:"column:dominion_id;not null;uniqueIndex:ux_queue_training,priority:1" json:"dominion_id"`
	UnitType   string    `gorm:"column:unit_type;type:varchar(32);not null;uniqueIndex:ux_queue_training,priority:2" json:"unit_type"`
	Amount     int       `gorm:"column:amount;not null" json:"amount"`
	Hours      int       `gorm:"column:hours;not null;uniqueIndex:ux_queue_training,priority:3" json:"hours"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TrainingQueue) TableName() string {
	return "queue_training"
}

// QueueResult 一次推进里到期的数量汇总：类型 → 总量。
// 同类型多行同 tick 到期必须累加（历史实现曾经覆盖，属已知缺陷，不复刻）。
type QueueResult map[string]int

func (r QueueResult) Add(itemType string, amount int) {
	r[itemType] += amount
}
