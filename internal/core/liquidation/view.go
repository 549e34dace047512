package liquidation

import "time"

// ViewState is the immutable per-call input the UI layer owns: which week is
// selected, what criteria apply, and how the table is sorted. The core keeps
// no state between calls
type ViewState struct {
	// 1-based, 1 = most recent week; ignored while a date range is active
	WeekIndex int
	Criteria  Criteria
	SortKey   SortKey
}

// ViewResult is the complete render-ready output for one ViewState
type ViewResult struct {
	View
	// key of the week the view covers, "" in date-range mode
	WeekKey string
	// number of distinct week buckets over the full liquidable set
	WeekCount int
}

// ComputeView runs the whole pipeline: status pre-filter, week bucketing,
// criteria filtering, and aggregation
//
// A present date range switches the candidate set from the selected week's
// bucket to the entire record set; callers depend on this mode switch
func ComputeView(records []SaleRecord, st ViewState, loc *time.Location) ViewResult {
	liq := make([]SaleRecord, 0, len(records))
	for _, r := range records {
		if liquidable(r.Status) {
			liq = append(liq, r)
		}
	}

	buckets := BucketByWeek(liq, loc)

	var (
		candidates []SaleRecord
		weekKey    string
	)
	if st.Criteria.HasDateRange() {
		candidates = liq
	} else {
		idx := st.WeekIndex
		if idx < 1 {
			idx = 1
		}
		if n := buckets.WeekCount(); idx > n {
			idx = n
		}
		weekKey, candidates = buckets.Week(idx)
	}

	filtered := Filter(candidates, st.Criteria, loc)
	out := Aggregate(filtered, st.SortKey)

	return ViewResult{
		View:      out,
		WeekKey:   weekKey,
		WeekCount: buckets.WeekCount(),
	}
}
