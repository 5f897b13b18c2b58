package domain

import "sort"

// AssignRanks 按指标就地排序并写入名次与名次变化。
//
// 排序规则：指标值降序；并列时上榜过的在前（上期名次小者优先），
// 都没上过榜按建国时间升序。名次变化 = 上期名次 − 本期名次，
// 首次上榜记 0。
func AssignRanks(rows []*DailyRanking, metric Metric) {
	value, prevRank := accessors(metric)

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if value(a) != value(b) {
			return value(a) > value(b)
		}
		pa, pb := prevRank(a), prevRank(b)
		switch {
		case pa != nil && pb != nil:
			return *pa < *pb
		case pa != nil:
			return true
		case pb != nil:
			return false
		default:
			return a.DominionCreatedAt.Before(b.DominionCreatedAt)
		}
	})

	for i, row := range rows {
		newRank := i + 1
		change := 0
		if prev := prevRank(row); prev != nil {
			change = *prev - newRank
		}
		setRank(row, metric, newRank, change)
	}
}

func accessors(metric Metric) (value func(*DailyRanking) int, prevRank func(*DailyRanking) *int) {
	if metric == MetricNetworth {
		return func(r *DailyRanking) int { return r.Networth },
			func(r *DailyRanking) *int { return r.NetworthRank }
	}
	return func(r *DailyRanking) int { return r.Land },
		func(r *DailyRanking) *int { return r.LandRank }
}

func setRank(r *DailyRanking, metric Metric, rank, change int) {
	if metric == MetricNetworth {
		r.NetworthRank = &rank
		r.NetworthRankChange = change
		return
	}
	r.LandRank = &rank
	r.LandRankChange = change
}
