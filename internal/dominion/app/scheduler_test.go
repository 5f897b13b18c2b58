package app

import (
	"testing"
	"time"
)

func TestNextBoundary_整点对齐(t *testing.T) {
	now := time.Date(2026, 8, 30, 13, 42, 17, 0, time.UTC)
	got := NextBoundary(now, time.Hour)
	want := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextBoundary_恰在边界上取下一个(t *testing.T) {
	now := time.Date(2026, 8, 30, 13, 0, 0, 0, time.UTC)
	got := NextBoundary(now, time.Hour)
	want := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestScheduler_dailyDue_当天只触发一次(t *testing.T) {
	s := NewScheduler(nil, time.Hour, 0, nil)

	midnight := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !s.dailyDue(midnight) {
		t.Fatal("零点边界应触发日周期")
	}
	s.lastDailyDay = midnight.YearDay()

	if s.dailyDue(midnight) {
		t.Fatal("同一天不应再次触发")
	}
	if s.dailyDue(midnight.Add(time.Hour)) {
		t.Fatal("非 dailyHour 边界不应触发")
	}

	nextMidnight := midnight.AddDate(0, 0, 1)
	if !s.dailyDue(nextMidnight) {
		t.Fatal("第二天零点应再次触发")
	}
}
