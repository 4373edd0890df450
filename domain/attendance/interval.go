// Package attendance computes how long a pupil and a tutor were connected
// to the same lesson at the same time.
// Every function only reads its inputs and returns freshly allocated results,
// so it is safe to call from concurrent goroutines.
package attendance

import "cmp"

// Role identifies a lesson participant.
type Role string

const (
	RolePupil Role = "pupil"
	RoleTutor Role = "tutor"
)

// Interval is a closed span of Unix seconds, Start <= End.
type Interval struct {
	Start int64
	End   int64
}

func (i Interval) Duration() int64 {
	return i.End - i.Start
}

// Contains reports whether ts lies within [Start, End].
func (i Interval) Contains(ts int64) bool {
	return i.Start <= ts && ts <= i.End
}

func (i Interval) compare(other Interval) int {
	return cmp.Or(cmp.Compare(i.Start, other.Start), cmp.Compare(i.End, other.End))
}

// disjoint is false for intervals sharing a single endpoint.
func (i Interval) disjoint(other Interval) bool {
	return i.End < other.Start || i.Start > other.End
}

func (i Interval) union(other Interval) Interval {
	return Interval{Start: min(i.Start, other.Start), End: max(i.End, other.End)}
}

// intersect returns the time shared with other. The second value is false
// when nothing or a single instant is shared.
func (i Interval) intersect(other Interval) (Interval, bool) {
	shared := Interval{Start: max(i.Start, other.Start), End: min(i.End, other.End)}
	return shared, shared.Start < shared.End
}
