package liquidation

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the table ordering of an aggregated view
type SortKey string

const (
	// SortByDate orders descending by the raw scheduled timestamp
	SortByDate SortKey = "date"
	// SortByAdvisor orders ascending by advisor name, locale aware
	SortByAdvisor SortKey = "advisor"
	// SortBySupervisor orders ascending by resolved supervisor name, locale aware
	SortBySupervisor SortKey = "supervisor"
)

// Count is one row of a grouped leaderboard
type Count struct {
	Name  string
	Count int
}

// View is the aggregated output the table and leaderboards render from
type View struct {
	Sorted []SaleRecord
	// supervisor leaderboard, QR hecho records only
	BySupervisor []Count
	// provider counts over the whole filtered set
	ByProvider []Count
}

// Aggregate sorts the filtered set and builds the grouped counts
// Unknown sort keys fall back to date so a stale stored preference never
// breaks the view. Empty input yields empty slices, never an error
func Aggregate(records []SaleRecord, key SortKey) View {
	sorted := make([]SaleRecord, len(records))
	copy(sorted, records)

	switch key {
	case SortByAdvisor:
		sortByName(sorted, func(r SaleRecord) string { return r.AdvisorName })
	case SortBySupervisor:
		sortByName(sorted, func(r SaleRecord) string { return r.SupervisorName() })
	default:
		// the table intentionally sorts by the raw scheduled timestamp even
		// though bucketing used the QR-aware effective date
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ScheduledAt.After(sorted[j].ScheduledAt)
		})
	}

	return View{
		Sorted: sorted,
		BySupervisor: countBy(records, SupervisorSentinel,
			func(r SaleRecord) (string, bool) { return r.SupervisorName(), r.Status == StatusQRHecho }),
		ByProvider: countBy(records, "-",
			func(r SaleRecord) (string, bool) { return r.Provider, true }),
	}
}

// sortByName is a stable locale-aware ascending sort; the business operates in
// Spanish so accented names collate the way the staff expects
func sortByName(records []SaleRecord, name func(SaleRecord) string) {
	c := collate.New(language.Spanish)
	sort.SliceStable(records, func(i, j int) bool {
		return c.CompareString(name(records[i]), name(records[j])) < 0
	})
}

// countBy groups records by key for those passing keep, descending by count
// Blank keys fold into sentinel so every record lands in a countable bucket
// Ties break ascending by name so the output is deterministic
func countBy(records []SaleRecord, sentinel string, keyOf func(SaleRecord) (string, bool)) []Count {
	tally := make(map[string]int)
	for _, r := range records {
		k, keep := keyOf(r)
		if !keep {
			continue
		}
		if strings.TrimSpace(k) == "" {
			k = sentinel
		}
		tally[k]++
	}
	out := make([]Count, 0, len(tally))
	for k, n := range tally {
		out = append(out, Count{Name: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
