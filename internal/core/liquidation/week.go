package liquidation

import (
	"sort"
	"time"
)

// dayKeyFormat is the bucket key layout, a local calendar date
const dayKeyFormat = "2006-01-02"

// graceMinute is minutes-past-midnight after which a Thursday rolls into the
// next business week (23:01 local). The payroll cutoff publishes at 23:00 and
// the hour after it is credited to the following week
const graceMinute = 23*60 + 1

// WeekStartOf returns the governing Friday of the business week containing t,
// truncated to local midnight in loc. Thursdays at or after 23:01 local time
// roll forward into the week starting the next day
func WeekStartOf(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	if lt.Weekday() == time.Thursday && lt.Hour()*60+lt.Minute() >= graceMinute {
		lt = lt.AddDate(0, 0, 1)
	}
	// days back to the most recent Friday: Fri 0, Sat 1, ... Thu 6
	back := (int(lt.Weekday()) + 7 - int(time.Friday)) % 7
	y, m, d := lt.AddDate(0, 0, -back).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// WeekKeyOf formats the business-week start of t as a local YYYY-MM-DD string
func WeekKeyOf(t time.Time, loc *time.Location) string {
	return WeekStartOf(t, loc).Format(dayKeyFormat)
}

// Buckets groups records by business-week key. The empty key holds records
// whose effective date is unknown; they are retained, never dropped
type Buckets map[string][]SaleRecord

// BucketByWeek assigns every record to its business week by effective date
// Records with no usable date land under the empty key
func BucketByWeek(records []SaleRecord, loc *time.Location) Buckets {
	b := make(Buckets)
	for _, r := range records {
		key := ""
		if ed := r.EffectiveDate(); !ed.IsZero() {
			key = WeekKeyOf(ed, loc)
		}
		b[key] = append(b[key], r)
	}
	return b
}

// Keys lists bucket keys most recent week first. The unknown-week key, when
// present, sorts last
func (b Buckets) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// WeekCount returns the number of distinct week buckets, unknown week included
func (b Buckets) WeekCount() int { return len(b) }

// Week returns the key and records of the index-th most recent week, 1-based
// Out-of-range indexes return an empty key and nil records
func (b Buckets) Week(index int) (string, []SaleRecord) {
	keys := b.Keys()
	if index < 1 || index > len(keys) {
		return "", nil
	}
	k := keys[index-1]
	return k, b[k]
}
