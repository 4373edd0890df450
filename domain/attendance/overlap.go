package attendance

// Overlap sums the seconds shared by every pair of intervals taken one from a
// and one from b. Both sets must come out of Merge, otherwise time shared by
// overlapping intervals of the same participant is counted twice.
func Overlap(a, b []Interval) int64 {
	var total int64
	for _, x := range a {
		for _, y := range b {
			if shared, ok := x.intersect(y); ok {
				total += shared.Duration()
			}
		}
	}
	return total
}
