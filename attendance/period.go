package attendance

import "sort"

// Period is one bell-schedule slot. A scan at t belongs to the period when
// Start <= t < End.
type Period struct {
	No    int
	Start TimeOfDay
	End   TimeOfDay
	Note  string
}

// SortPeriods orders periods by slot number, the order every resolver and
// report walks them in.
func SortPeriods(periods []Period) {
	sort.Slice(periods, func(i, j int) bool { return periods[i].No < periods[j].No })
}

// ResolvePeriod finds the period a clock time belongs to, or the nearest
// one when it falls outside every window: before the first period the
// first is returned, after the last period the last, and inside a gap the
// next period. ok is false only when the table is empty; periods must be
// sorted by slot number.
func ResolvePeriod(periods []Period, t TimeOfDay) (Period, bool) {
	if len(periods) == 0 {
		return Period{}, false
	}
	for _, p := range periods {
		if p.Start <= t && t < p.End {
			return p, true
		}
	}
	first, last := periods[0], periods[len(periods)-1]
	if t < first.Start {
		return first, true
	}
	if t >= last.End {
		return last, true
	}
	for i := 0; i < len(periods)-1; i++ {
		if periods[i].End <= t && t < periods[i+1].Start {
			return periods[i+1], true
		}
	}
	return last, true
}
