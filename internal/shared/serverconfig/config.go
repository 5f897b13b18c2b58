package serverconfig

import (
	"time"

	"Dominion/internal/shared/config"
)

var Conf Config

// Load 从当前目录向上查找 configs/conf.yml 并加载（支持热更新）。
func Load() {
	config.Load("", &Conf)
	applyDefaults()
}

// applyDefaults 回填关键字段，避免配置缺省导致 0 值行为。
func applyDefaults() {
	if Conf.Tick.Interval <= 0 {
		Conf.Tick.Interval = time.Hour
	}
	if Conf.Tick.RankingBatchSize <= 0 {
		Conf.Tick.RankingBatchSize = 100
	}
	if Conf.Tick.DominionBatchSize <= 0 {
		Conf.Tick.DominionBatchSize = 100
	}
	if Conf.MySQL.MaxIdle <= 0 {
		Conf.MySQL.MaxIdle = 4
	}
	if Conf.MySQL.MaxConn <= 0 {
		Conf.MySQL.MaxConn = 16
	}
}
