package attendance

// Summary is the breakdown behind an Appearance result.
type Summary struct {
	Lesson  Interval
	Pupil   []Interval // merged presence inside the lesson
	Tutor   []Interval // merged presence inside the lesson
	Overlap int64
}

// Presence returns the seconds role spent inside the lesson.
func (s Summary) Presence(role Role) int64 {
	switch role {
	case RolePupil:
		return Presence(s.Pupil)
	case RoleTutor:
		return Presence(s.Tutor)
	default:
		return 0
	}
}

// Appearance returns the seconds during which the pupil and the tutor
// were both connected to the lesson.
func Appearance(record Record) (int64, error) {
	summary, err := Summarize(record)
	if err != nil {
		return 0, err
	}
	return summary.Overlap, nil
}

// Summarize validates the record, then clips, merges and intersects the
// participants' sessions. Missing session data and a participant absent
// from the lesson both end with a zero overlap, not an error.
func Summarize(record Record) (Summary, error) {
	if err := Validate(record); err != nil {
		return Summary{}, err
	}
	lesson := Interval{Start: record.Lesson[0], End: record.Lesson[1]}
	summary := Summary{Lesson: lesson}

	if record.Pupil == nil || record.Tutor == nil {
		return summary, nil
	}

	pupil, err := Pairs(record.Pupil)
	if err != nil {
		return Summary{}, err
	}
	tutor, err := Pairs(record.Tutor)
	if err != nil {
		return Summary{}, err
	}

	pupil = Clip(pupil, lesson)
	tutor = Clip(tutor, lesson)
	summary.Pupil = Merge(pupil)
	summary.Tutor = Merge(tutor)
	if len(pupil) == 0 || len(tutor) == 0 {
		return summary, nil
	}

	summary.Overlap = Overlap(summary.Pupil, summary.Tutor)
	return summary, nil
}
