package liquidation

import (
	"strings"
	"time"
)

// Criteria is the optional predicate set applied over a candidate record set
// Every field is optional; a zero field constrains nothing
type Criteria struct {
	// case-insensitive substring over the holder name
	Name string
	// case-insensitive substring over the holder CUIL
	CUIL string

	// empty selection passes everything; this is a UX convention, not a bug
	AdvisorNames    []string
	SupervisorNames []string

	AuditorID string
	AdminID   string
	Provider  string
	Status    Status

	// inclusive local calendar dates, YYYY-MM-DD
	DateFrom string
	DateTo   string
}

// HasDateRange reports whether the criteria carry a date range, which switches
// the view from per-week candidates to the full record set
func (c Criteria) HasDateRange() bool { return c.DateFrom != "" && c.DateTo != "" }

// Filter returns the records passing the conjunction of all present criteria,
// preserving input order. The liquidation status pre-filter is applied first
// and is not part of Criteria
func Filter(records []SaleRecord, c Criteria, loc *time.Location) []SaleRecord {
	out := make([]SaleRecord, 0, len(records))
	for _, r := range records {
		if !liquidable(r.Status) {
			continue
		}
		if !matches(r, c, loc) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r SaleRecord, c Criteria, loc *time.Location) bool {
	if c.Name != "" && !containsFold(r.HolderName, c.Name) {
		return false
	}
	if c.CUIL != "" && !containsFold(r.CUIL, c.CUIL) {
		return false
	}
	if len(c.AdvisorNames) > 0 && !inSet(c.AdvisorNames, r.AdvisorName) {
		return false
	}
	if len(c.SupervisorNames) > 0 && !inSet(c.SupervisorNames, r.SupervisorName()) {
		return false
	}
	if c.AuditorID != "" && r.AuditorID != c.AuditorID {
		return false
	}
	if c.AdminID != "" && r.AdminID != c.AdminID {
		return false
	}
	if c.Provider != "" && r.Provider != c.Provider {
		return false
	}
	if c.Status != "" && r.Status != c.Status {
		return false
	}
	if c.HasDateRange() {
		ed := r.EffectiveDate()
		if ed.IsZero() {
			// unknown date degrades to pass so the record is never silently lost
			return true
		}
		// compare local calendar dates lexicographically so the first and last
		// day of the range are never excluded by timezone offsets
		day := ed.In(loc).Format(dayKeyFormat)
		if day < c.DateFrom || day > c.DateTo {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func inSet(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
