package serverconfig

import "time"

type Config struct {
	MySQL MySQLConfig `yaml:"mysql" mapstructure:"mysql"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
	Tick  TickConfig  `yaml:"tick" mapstructure:"tick"`
}

type MySQLConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	MaxIdle  int    `yaml:"max_idle" mapstructure:"max_idle"`
	MaxConn  int    `yaml:"max_conn" mapstructure:"max_conn"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type TickConfig struct {
	// Interval 整点对齐的周期长度（生产固定 1h，联调可调小）。
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
	// DailyHour 每天触发日结算（排行榜 + 每日奖励重置）的小时，UTC。
	DailyHour int `yaml:"daily_hour" mapstructure:"daily_hour"`
	// RankingBatchSize 排行榜快照分批大小，控制内存。
	RankingBatchSize int `yaml:"ranking_batch_size" mapstructure:"ranking_batch_size"`
	// DominionBatchSize 逐国处理时的分批大小。
	DominionBatchSize int `yaml:"dominion_batch_size" mapstructure:"dominion_batch_size"`
}
