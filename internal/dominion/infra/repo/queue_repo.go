package repo

import (
	"context"

	"gorm.io/gorm"

	"Dominion/internal/dominion/domain"
	"Dominion/internal/shared/infrastructure/db"
)

// queueTable 三类倒计时队列的表结构差异只有表名和类型列。
type queueTable struct {
	table      string
	typeColumn string
}

var queueTables = map[domain.QueueKind]queueTable{
	domain.QueueExploration:  {table: domain.ExplorationQueue{}.TableName(), typeColumn: "land_type"},
	domain.QueueConstruction: {table: domain.ConstructionQueue{}.TableName(), typeColumn: "building"},
	domain.QueueTraining:     {table: domain.TrainingQueue{}.TableName(), typeColumn: "unit_type"},
}

type QueueRepo struct {
	db *gorm.DB
}

func NewQueueRepo(gdb *gorm.DB) *QueueRepo {
	return &QueueRepo{db: gdb}
}

// Advance 推进单国单队列一小时并返回到期汇总。
//
// hours 列带唯一约束 (dominion_id, 类型, hours)，直接 hours-1 会让相邻两行
// 瞬时撞键。两阶段符号翻转绕开：先把正数行一步写成 -(hours-1)（负数区间
// 不和任何正数行冲突），再整体取反回正数区间，最后 0 行到期出队。
func (r *QueueRepo) Advance(ctx context.Context, dominionID uint, kind domain.QueueKind) (domain.QueueResult, error) {
	qt, ok := queueTables[kind]
	if !ok {
		return nil, domain.ErrUnknownQueueKind.WithData("kind", string(kind))
	}

	tx := db.FromContext(ctx, r.db)

	// 阶段一：倒计时并翻负。UpdateColumn 跳过 updated_at，留给阶段二统一刷新。
	err := tx.Table(qt.table).
		Where("dominion_id = ? AND hours > 0", dominionID).
		UpdateColumn("hours", gorm.Expr("-(hours - 1)")).Error
	if err != nil {
		return nil, domain.ErrSystemUnavailable.WithData("dominion_id", dominionID).WithCause(err)
	}

	// 阶段二：翻回正数并刷新 updated_at。
	err = tx.Table(qt.table).
		Where("dominion_id = ? AND hours < 0", dominionID).
		Updates(map[string]any{"hours": gorm.Expr("-hours"), "updated_at": tx.NowFunc()}).Error
	if err != nil {
		return nil, domain.ErrSystemUnavailable.WithData("dominion_id", dominionID).WithCause(err)
	}

	// 到期出队：同类型多行同 tick 到期要累加。
	var due []struct {
		ItemType string `gorm:"column:item_type"`
		Amount   int    `gorm:"column:amount"`
	}
	err = tx.Table(qt.table).
		Select(qt.typeColumn+" AS item_type, amount").
		Where("dominion_id = ? AND hours = 0", dominionID).
		Find(&due).Error
	if err != nil {
		return nil, domain.ErrSystemUnavailable.WithData("dominion_id", dominionID).WithCause(err)
	}

	result := make(domain.QueueResult, len(due))
	for _, row := range due {
		result.Add(row.ItemType, row.Amount)
	}

	if len(due) > 0 {
		err = tx.Exec("DELETE FROM "+qt.table+" WHERE dominion_id = ? AND hours = 0", dominionID).Error
		if err != nil {
			return nil, domain.ErrSystemUnavailable.WithData("dominion_id", dominionID).WithCause(err)
		}
	}
	return result, nil
}

// AdvanceSpellDurations 法术时长的同协议变体：到期行直接删除，效果即刻消失。
func (r *QueueRepo) AdvanceSpellDurations(ctx context.Context, dominionID uint) error {
	tx := db.FromContext(ctx, r.db)
	table := domain.ActiveSpell{}.TableName()

	err := tx.Table(table).
		Where("dominion_id = ? AND duration > 0", dominionID).
		UpdateColumn("duration", gorm.Expr("-(duration - 1)")).Error
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("dominion_id", dominionID).WithCause(err)
	}

	err = tx.Table(table).
		Where("dominion_id = ? AND duration < 0", dominionID).
		Updates(map[string]any{"duration": gorm.Expr("-duration"), "updated_at": tx.NowFunc()}).Error
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("dominion_id", dominionID).WithCause(err)
	}

	err = tx.Exec("DELETE FROM "+table+" WHERE dominion_id = ? AND duration = 0", dominionID).Error
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("dominion_id", dominionID).WithCause(err)
	}
	return nil
}
