package attendance

// Clip restricts intervals to the lesson window.
// An interval is kept when its entry or its exit falls inside the window,
// or when it spans the whole window. Kept intervals are cut to the window
// and returned in their original order; the others are dropped.
func Clip(intervals []Interval, lesson Interval) []Interval {
	clipped := make([]Interval, 0, len(intervals))
	for _, in := range intervals {
		entryInLesson := lesson.Contains(in.Start)
		exitInLesson := lesson.Contains(in.End)
		fullLesson := in.Start <= lesson.Start && in.End >= lesson.End
		if !entryInLesson && !exitInLesson && !fullLesson {
			continue
		}
		clipped = append(clipped, Interval{
			Start: max(in.Start, lesson.Start),
			End:   min(in.End, lesson.End),
		})
	}
	return clipped
}
