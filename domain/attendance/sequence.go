package attendance

import (
	"attendance-lab/errors"
	"fmt"

	"github.com/samber/lo"
)

// Pairs reads a flat enter/exit sequence as intervals, keeping the original order.
func Pairs(seq []int64) ([]Interval, error) {
	if len(seq)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", errors.ErrOddSequence, len(seq))
	}
	return lo.Map(lo.Chunk(seq, 2), func(pair []int64, _ int) Interval {
		return Interval{Start: pair[0], End: pair[1]}
	}), nil
}

// Flatten is the inverse of Pairs.
func Flatten(intervals []Interval) []int64 {
	return lo.FlatMap(intervals, func(i Interval, _ int) []int64 {
		return []int64{i.Start, i.End}
	})
}

// Presence is the total time covered by merged intervals.
func Presence(merged []Interval) int64 {
	return lo.SumBy(merged, Interval.Duration)
}
