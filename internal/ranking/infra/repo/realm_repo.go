package repo

import (
	"context"

	"gorm.io/gorm"

	tick "Dominion/internal/dominion/domain"
	"Dominion/internal/ranking/domain"
	"Dominion/internal/shared/infrastructure/db"
)

// RealmRepo 排行榜快照需要的阵营展示信息查询。
type RealmRepo struct {
	db *gorm.DB
}

func NewRealmRepo(gdb *gorm.DB) *RealmRepo {
	return &RealmRepo{db: gdb}
}

func (r *RealmRepo) Realms(ctx context.Context, roundID uint) (map[uint]domain.RealmInfo, error) {
	var realms []tick.Realm
	err := db.FromContext(ctx, r.db).
		Where("round_id = ?", roundID).
		Find(&realms).Error
	if err != nil {
		return nil, tick.ErrSystemUnavailable.WithData("round_id", roundID).WithCause(err)
	}

	infos := make(map[uint]domain.RealmInfo, len(realms))
	for _, realm := range realms {
		infos[realm.ID] = domain.RealmInfo{Number: realm.Number, Name: realm.Name}
	}
	return infos, nil
}
