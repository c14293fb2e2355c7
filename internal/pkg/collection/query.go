package collection

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/courseadmin/internal/pkg/helpers"
)

// Query is the search and filter input of a list view.
type Query struct {
	Search  string
	Filters map[string]string
	Range   DateRange
	Today   bool
	// Now is the reference time for the today predicate.
	Now time.Time
}

// Filter returns the named filter value, trimmed.
func (q Query) Filter(name string) string {
	return strings.TrimSpace(q.Filters[name])
}

// IsToday reports whether t is on the query's reference day.
func (q Query) IsToday(t time.Time) bool {
	ref := q.Now
	if ref.IsZero() {
		ref = time.Now()
	}
	return SameDay(t, ref, q.Range.Loc)
}

// Params renders the active filters for echoing back to the client.
func (q Query) Params() map[string]string {
	out := map[string]string{}
	if q.Search != "" {
		out["q"] = q.Search
	}
	for k, v := range q.Filters {
		if v != "" {
			out[k] = v
		}
	}
	if !q.Range.From.IsZero() {
		out["from"] = q.Range.From.Format(time.DateOnly)
	}
	if !q.Range.To.IsZero() {
		out["to"] = q.Range.To.Format(time.DateOnly)
	}
	if q.Today {
		out["today"] = "true"
	}
	return out
}

// ParseQuery reads q, from, to, today and the named filter keys from values.
func ParseQuery(values url.Values, loc *time.Location, filterKeys ...string) (Query, error) {
	q := Query{
		Search:  strings.TrimSpace(values.Get("q")),
		Filters: make(map[string]string, len(filterKeys)),
		Range:   DateRange{Loc: loc},
	}

	for _, key := range filterKeys {
		if v := strings.TrimSpace(values.Get(key)); v != "" {
			q.Filters[key] = v
		}
	}

	var err error
	if q.Range.From, err = helpers.ParseDay(values.Get("from"), loc); err != nil {
		return Query{}, fmt.Errorf("from: %w", err)
	}
	if q.Range.To, err = helpers.ParseDay(values.Get("to"), loc); err != nil {
		return Query{}, fmt.Errorf("to: %w", err)
	}

	if raw := values.Get("today"); raw != "" {
		if q.Today, err = strconv.ParseBool(raw); err != nil {
			return Query{}, fmt.Errorf("today: %w", err)
		}
	}

	return q, nil
}
