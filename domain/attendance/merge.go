package attendance

import "slices"

// Merge collapses intervals that are not disjoint into their union.
// Touching intervals merge too: [0,10] and [10,20] give [0,20].
// The result is sorted by start, has no two intervals sharing a point,
// and is left unchanged by a second Merge.
func Merge(intervals []Interval) []Interval {
	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, Interval.compare)

	merged := make([]Interval, 0, len(sorted))
	for _, in := range sorted {
		// once sorted, only the last merged interval can reach the candidate
		last := len(merged) - 1
		if last >= 0 && !merged[last].disjoint(in) {
			merged[last] = merged[last].union(in)
			continue
		}
		merged = append(merged, in)
	}
	return merged
}
