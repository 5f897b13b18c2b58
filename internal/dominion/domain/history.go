package domain

import "time"

// 历史事件类型。
const (
	HistoryEventTick = "tick"
)

// DominionHistory 审计流水：每次 tick 落库一条，Delta 记录本次变更的字段增量（JSON）。
type DominionHistory struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DominionID uint      `gorm:"column:dominion_id;not null;index" json:"dominion_id"`
	Event      string    `gorm:"column:event;type:varchar(32);not null" json:"event"`
	Delta      string    `gorm:"column:delta;type:text" json:"delta"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DominionHistory) TableName() string {
	return "dominion_history"
}
