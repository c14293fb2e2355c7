package collection

import (
	"slices"
	"strings"
	"time"

	"github.com/yigit/courseadmin/internal/pkg/helpers"
)

// Predicate selects records. A nil predicate selects everything.
type Predicate[T any] func(T) bool

// Filter returns the items accepted by every predicate, in source order.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, pred := range preds {
			if pred != nil && !pred(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// MatchText reports whether query is a case-insensitive substring of any field.
// A blank query matches everything.
func MatchText(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// MatchExact reports whether value equals want. A blank want matches everything.
func MatchExact(want, value string) bool {
	return want == "" || want == value
}

// DateRange is an inclusive calendar-day range. Either bound may be zero.
type DateRange struct {
	From time.Time
	To   time.Time
	Loc  *time.Location
}

// Active reports whether any bound is set.
func (r DateRange) Active() bool {
	return !r.From.IsZero() || !r.To.IsZero()
}

// Contains reports whether t falls in the range; the To day is included up to
// its last nanosecond.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Active() {
		return true
	}
	if t.IsZero() {
		return false
	}
	if !r.From.IsZero() && t.Before(helpers.StartOfDay(r.From, r.Loc)) {
		return false
	}
	if !r.To.IsZero() && t.After(helpers.EndOfDay(r.To, r.Loc)) {
		return false
	}
	return true
}

// SameDay compares the calendar date of a and b in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// SortNewest returns a copy of items ordered by descending timestamp. Ties keep
// their source order.
func SortNewest[T any](items []T, at func(T) time.Time) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return at(b).Compare(at(a))
	})
	return out
}
