package analytics

import (
	"sort"
	"strings"
	"time"
)

// TagSeparator delimits individual tags inside a session's tag field
const TagSeparator = ";"

// Set is a set of selected values for one filter dimension
type Set map[string]struct{}

// NewSet builds a set from the given values
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is selected
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// HasAny reports whether at least one of values is selected
func (s Set) HasAny(values []string) bool {
	for _, v := range values {
		if s.Has(v) {
			return true
		}
	}
	return false
}

// Values returns the set members in sorted order
func (s Set) Values() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Criteria holds a complete selection. Every set is applied literally: an
// empty set matches nothing. Use DefaultCriteria or Query to start from
// "everything observed".
type Criteria struct {
	StartDate time.Time
	EndDate   time.Time
	Media     Set
	Titles    Set
	Teachers  Set
	Tags      Set
}

// DefaultCriteria selects the whole [minDate, today] range and every value
// observed in the table.
func DefaultCriteria(table Table, minDate, today time.Time) Criteria {
	opts := ListOptions(table)
	return Criteria{
		StartDate: DayOf(minDate),
		EndDate:   DayOf(today),
		Media:     NewSet(opts.Media...),
		Titles:    NewSet(opts.Titles...),
		Teachers:  NewSet(opts.Teachers...),
		Tags:      NewSet(opts.Tags...),
	}
}

// SplitTags splits a tag field into individual tags. An empty field is the
// single empty tag.
func SplitTags(tags string) []string {
	return strings.Split(tags, TagSeparator)
}

// InRange returns the rows whose date lies in [start, end]. A reversed range
// yields an empty table.
func InRange(table Table, start, end time.Time) Table {
	from, to := DayOf(start), DayOf(end)
	out := make(Table, 0, len(table))
	if from.After(to) {
		return out
	}
	for _, row := range table {
		if row.Date.Before(from) || row.Date.After(to) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Filter returns the rows matching every predicate of c. A row with several
// tags is kept when any one of them is selected.
func Filter(table Table, c Criteria) Table {
	ranged := InRange(table, c.StartDate, c.EndDate)
	out := ranged[:0]
	for _, row := range ranged {
		if !c.Media.Has(row.Medium) ||
			!c.Titles.Has(row.Title) ||
			!c.Teachers.Has(row.Teacher) ||
			!c.Tags.HasAny(SplitTags(row.Tags)) {
			continue
		}
		out = append(out, row)
	}
	return out
}
