package attendance

import (
	"attendance-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairs(t *testing.T) {
	req := require.New(t)

	intervals, err := Pairs([]int64{30, 40, 10, 20})

	req.NoError(err)
	req.Equal([]Interval{{Start: 30, End: 40}, {Start: 10, End: 20}}, intervals)
	req.Equal([]int64{30, 40, 10, 20}, Flatten(intervals))
}

func TestPairs_Empty(t *testing.T) {
	req := require.New(t)

	intervals, err := Pairs(nil)

	req.NoError(err)
	req.Empty(intervals)
	req.Empty(Flatten(intervals))
}

func TestPairs_OddLength(t *testing.T) {
	_, err := Pairs([]int64{10, 20, 30})
	require.ErrorIs(t, err, errors.ErrOddSequence)
}

func TestPresence(t *testing.T) {
	require.Equal(t, int64(25), Presence([]Interval{{Start: 0, End: 10}, {Start: 20, End: 35}}))
	require.Zero(t, Presence(nil))
}

func TestValidate(t *testing.T) {
	req := require.New(t)

	req.NoError(Validate(Record{Lesson: []int64{100, 100}}))
	req.NoError(Validate(Record{Lesson: []int64{100, 200}, Pupil: []int64{}, Tutor: []int64{150, 150}}))
	req.ErrorIs(Validate(Record{Lesson: []int64{}}), errors.ErrInvalidLesson)
}
