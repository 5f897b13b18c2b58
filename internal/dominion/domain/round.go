package domain

import "time"

// Round 一局赛季：活跃窗口为 [StartDate, EndDate)。
type Round struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Number    int       `gorm:"column:number;not null;uniqueIndex" json:"number"`
	Name      string    `gorm:"column:name;type:varchar(64);not null" json:"name"`
	StartDate time.Time `gorm:"column:start_date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date;not null" json:"end_date"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Round) TableName() string {
	return "rounds"
}

func (r Round) Active(now time.Time) bool {
	return !now.Before(r.StartDate) && now.Before(r.EndDate)
}

// Realm 同一 round 内的阵营，只用于排行榜展示信息。
type Realm struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RoundID   uint      `gorm:"column:round_id;not null;index" json:"round_id"`
	Number    int       `gorm:"column:number;not null" json:"number"`
	Name      string    `gorm:"column:name;type:varchar(64);not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Realm) TableName() string {
	return "realms"
}
