package errors

import "fmt"

var (
	ErrOddSequence      = fmt.Errorf("interval sequence has an odd number of timestamps")
	ErrReversedInterval = fmt.Errorf("interval exit precedes its entry")
	ErrInvalidLesson    = fmt.Errorf("lesson must be a single ordered [start, end] pair")
	ErrMissingLesson    = fmt.Errorf("lesson window is missing")
	ErrEmptyLessons     = fmt.Errorf("no lessons have been found")
)
