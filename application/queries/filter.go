package queries

import (
	"strconv"
	"strings"
	"time"
)

// Predicate evaluates one field condition against an item
type Predicate[T any] func(T) bool

type namedPredicate[T any] struct {
	field string
	pred  Predicate[T]
}

// FilterSpec is an ordered set of field predicates combined with
// logical AND. An empty spec filters nothing. Specs are declarative:
// building one performs no evaluation.
type FilterSpec[T any] struct {
	predicates []namedPredicate[T]
}

// Where appends a predicate for the named field. A nil predicate is
// skipped, which is how builders express "no filter on this field".
func (s FilterSpec[T]) Where(field string, pred Predicate[T]) FilterSpec[T] {
	if pred == nil {
		return s
	}
	s.predicates = append(s.predicates, namedPredicate[T]{field: field, pred: pred})
	return s
}

// IsEmpty reports whether the spec carries no predicates
func (s FilterSpec[T]) IsEmpty() bool {
	return len(s.predicates) == 0
}

// Apply returns the items satisfying every predicate, preserving
// original relative order. The input collection is never mutated.
func (s FilterSpec[T]) Apply(items []T) []T {
	if s.IsEmpty() {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if s.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func (s FilterSpec[T]) matches(item T) bool {
	for _, np := range s.predicates {
		if !np.pred(item) {
			return false
		}
	}
	return true
}

// Contains builds a case-insensitive substring predicate. An empty
// query means "do not filter on this field".
func Contains[T any](query string, get func(T) string) Predicate[T] {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	return func(item T) bool {
		return strings.Contains(strings.ToLower(get(item)), q)
	}
}

// ContainsAny builds a predicate matching when any of the getters'
// fields contains the query, case-insensitively
func ContainsAny[T any](query string, getters ...func(T) string) Predicate[T] {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	return func(item T) bool {
		for _, get := range getters {
			if strings.Contains(strings.ToLower(get(item)), q) {
				return true
			}
		}
		return false
	}
}

// AtLeast builds an inclusive lower-bound predicate on a numeric field
func AtLeast[T any](min *float64, get func(T) float64) Predicate[T] {
	if min == nil {
		return nil
	}
	bound := *min
	return func(item T) bool {
		return get(item) >= bound
	}
}

// AtMost builds an inclusive upper-bound predicate on a numeric field
func AtMost[T any](max *float64, get func(T) float64) Predicate[T] {
	if max == nil {
		return nil
	}
	bound := *max
	return func(item T) bool {
		return get(item) <= bound
	}
}

// Equals builds an exact-match predicate. An empty expected value means
// "do not filter on this field".
func Equals[T any](want string, get func(T) string) Predicate[T] {
	if want == "" {
		return nil
	}
	return func(item T) bool {
		return get(item) == want
	}
}

// IDContains builds a substring predicate over the decimal rendering of
// a numeric id. Id filters match on containment, not equality, so a
// partial id like "12" finds 120 and 512.
func IDContains[T any](query string, get func(T) int64) Predicate[T] {
	if query == "" {
		return nil
	}
	return func(item T) bool {
		return strings.Contains(strconv.FormatInt(get(item), 10), query)
	}
}

// OnOrAfter builds an inclusive lower bound on a parsed timestamp
// field. Items whose timestamp does not parse are excluded while the
// bound is active.
func OnOrAfter[T any](bound *time.Time, get func(T) (time.Time, bool)) Predicate[T] {
	if bound == nil {
		return nil
	}
	b := *bound
	return func(item T) bool {
		ts, ok := get(item)
		return ok && !ts.Before(b)
	}
}

// OnOrBefore builds an inclusive upper bound on a parsed timestamp field
func OnOrBefore[T any](bound *time.Time, get func(T) (time.Time, bool)) Predicate[T] {
	if bound == nil {
		return nil
	}
	b := *bound
	return func(item T) bool {
		ts, ok := get(item)
		return ok && !ts.After(b)
	}
}
