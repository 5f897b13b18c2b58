package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"Dominion/internal/kit/logx"
)

// TickRunner 调度驱动需要的两个入口；失败不重试，等下一个边界。
type TickRunner interface {
	TickHourly(ctx context.Context) error
	TickDaily(ctx context.Context) error
}

// Scheduler 对齐整点驱动 tick：每个 interval 边界跑一次小时周期；
// 边界落在 dailyHour（UTC）的那次额外跑日周期。
// 循环串行执行，天然保证上一个周期提交前不会开始下一个。
type Scheduler struct {
	runner    TickRunner
	interval  time.Duration
	dailyHour int
	log       logx.Logger
	now       func() time.Time

	lastDailyDay int  // 当天只触发一次日周期
	dailyPending bool // 日周期失败/被跳过后在后续边界补跑
}

func NewScheduler(runner TickRunner, interval time.Duration, dailyHour int, log logx.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	if dailyHour < 0 || dailyHour > 23 {
		dailyHour = 0
	}
	if log == nil {
		log = logx.NewZapLogger(nil)
	}
	return &Scheduler{
		runner:       runner,
		interval:     interval,
		dailyHour:    dailyHour,
		log:          log,
		now:          time.Now,
		lastDailyDay: -1,
	}
}

// Run 阻塞运行直到 ctx 取消。
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.Info("scheduler started",
		zap.Duration("interval", s.interval),
		zap.Int("daily_hour", s.dailyHour),
	)

	for {
		boundary := NextBoundary(s.now(), s.interval)

		timer := time.NewTimer(boundary.Sub(s.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("scheduler stopped")
			return ctx.Err()
		case <-timer.C:
		}

		if s.dailyDue(boundary) {
			s.dailyPending = true
		}

		// 失败只记日志：周期内没有任何部分提交，下一个边界从上次提交点整体重试
		if err := s.runner.TickHourly(ctx); err != nil {
			s.log.Error("hourly cycle failed, will retry at next boundary", zap.Error(err))
			continue
		}

		if s.dailyPending {
			if err := s.runner.TickDaily(ctx); err != nil {
				s.log.Error("daily cycle failed, will retry at next boundary", zap.Error(err))
				continue
			}
			s.dailyPending = false
			s.lastDailyDay = boundary.UTC().YearDay()
		}
	}
}

func (s *Scheduler) dailyDue(boundary time.Time) bool {
	b := boundary.UTC()
	return b.Hour() == s.dailyHour && b.YearDay() != s.lastDailyDay
}

// NextBoundary 当前时刻之后的下一个 interval 对齐点。
func NextBoundary(now time.Time, interval time.Duration) time.Time {
	return now.Truncate(interval).Add(interval)
}
