package attendance

import (
	"attendance-lab/errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type lessonFixture struct {
	ID        string `yaml:"id"`
	Intervals Record `yaml:"intervals"`
	Answer    int64  `yaml:"answer"`
}

func loadFixtures(t *testing.T) []lessonFixture {
	t.Helper()
	data, err := os.ReadFile("testdata/lessons.yaml")
	require.NoError(t, err)
	var doc struct {
		Lessons []lessonFixture `yaml:"lessons"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.NotEmpty(t, doc.Lessons)
	return doc.Lessons
}

func TestAppearance_Fixtures(t *testing.T) {
	for _, fixture := range loadFixtures(t) {
		t.Run(fixture.ID, func(t *testing.T) {
			overlap, err := Appearance(fixture.Intervals)
			require.NoError(t, err)
			require.Equal(t, fixture.Answer, overlap)
		})
	}
}

func TestAppearance_StaysWithinLesson(t *testing.T) {
	for _, fixture := range loadFixtures(t) {
		t.Run(fixture.ID, func(t *testing.T) {
			req := require.New(t)
			summary, err := Summarize(fixture.Intervals)
			req.NoError(err)
			duration := summary.Lesson.Duration()
			req.GreaterOrEqual(summary.Overlap, int64(0))
			req.LessOrEqual(summary.Overlap, duration)
			req.LessOrEqual(summary.Overlap, summary.Presence(RolePupil))
			req.LessOrEqual(summary.Overlap, summary.Presence(RoleTutor))
			req.LessOrEqual(summary.Presence(RolePupil), duration)
			req.LessOrEqual(summary.Presence(RoleTutor), duration)
		})
	}
}

func TestAppearance_SwappingParticipantsKeepsOverlap(t *testing.T) {
	for _, fixture := range loadFixtures(t) {
		t.Run(fixture.ID, func(t *testing.T) {
			swapped := Record{
				Lesson: fixture.Intervals.Lesson,
				Pupil:  fixture.Intervals.Tutor,
				Tutor:  fixture.Intervals.Pupil,
			}
			overlap, err := Appearance(swapped)
			require.NoError(t, err)
			require.Equal(t, fixture.Answer, overlap)
		})
	}
}

func TestAppearance_DoesNotMutateRecord(t *testing.T) {
	req := require.New(t)
	record := Record{
		Lesson: []int64{100, 200},
		Pupil:  []int64{150, 250, 90, 120},
		Tutor:  []int64{110, 190},
	}
	pupil := append([]int64(nil), record.Pupil...)
	tutor := append([]int64(nil), record.Tutor...)

	overlap, err := Appearance(record)

	req.NoError(err)
	req.Equal(int64(50), overlap)
	req.Equal(pupil, record.Pupil)
	req.Equal(tutor, record.Tutor)
}

func TestAppearance_MissingParticipant(t *testing.T) {
	tests := []struct {
		description string
		record      Record
	}{
		{
			"Should return 0 when pupil has no session data",
			Record{Lesson: []int64{100, 200}, Tutor: []int64{100, 200}},
		},
		{
			"Should return 0 when tutor has no session data",
			Record{Lesson: []int64{100, 200}, Pupil: []int64{100, 200}},
		},
		{
			"Should return 0 when nobody has session data",
			Record{Lesson: []int64{100, 200}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			overlap, err := Appearance(tt.record)
			require.NoError(t, err)
			require.Zero(t, overlap)
		})
	}
}

func TestAppearance_RejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		description string
		record      Record
		wantErr     error
	}{
		{
			"Should fail if lesson is missing",
			Record{Pupil: []int64{100, 200}, Tutor: []int64{100, 200}},
			errors.ErrMissingLesson,
		},
		{
			"Should fail if lesson has a single timestamp",
			Record{Lesson: []int64{100}, Pupil: []int64{100, 200}, Tutor: []int64{100, 200}},
			errors.ErrInvalidLesson,
		},
		{
			"Should fail if lesson has more than one pair",
			Record{Lesson: []int64{100, 200, 300, 400}, Pupil: []int64{}, Tutor: []int64{}},
			errors.ErrInvalidLesson,
		},
		{
			"Should fail if lesson ends before it starts",
			Record{Lesson: []int64{200, 100}, Pupil: []int64{}, Tutor: []int64{}},
			errors.ErrInvalidLesson,
		},
		{
			"Should fail if pupil has a dangling timestamp",
			Record{Lesson: []int64{100, 200}, Pupil: []int64{100, 150, 160}, Tutor: []int64{100, 200}},
			errors.ErrOddSequence,
		},
		{
			"Should fail if tutor has a dangling timestamp",
			Record{Lesson: []int64{100, 200}, Pupil: []int64{100, 200}, Tutor: []int64{100}},
			errors.ErrOddSequence,
		},
		{
			"Should fail if a pupil exit precedes its entry",
			Record{Lesson: []int64{100, 200}, Pupil: []int64{150, 120}, Tutor: []int64{100, 200}},
			errors.ErrReversedInterval,
		},
		{
			"Should fail if a tutor exit precedes its entry",
			Record{Lesson: []int64{100, 200}, Pupil: []int64{100, 200}, Tutor: []int64{110, 120, 190, 180}},
			errors.ErrReversedInterval,
		},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			overlap, err := Appearance(tt.record)
			require.ErrorIs(t, err, tt.wantErr)
			require.Zero(t, overlap)
		})
	}
}

func TestSummarize_ReportsMergedPresence(t *testing.T) {
	req := require.New(t)
	record := Record{
		Lesson: []int64{1594663200, 1594666800},
		Pupil:  []int64{1594663340, 1594663389, 1594663390, 1594663395, 1594663396, 1594666472},
		Tutor:  []int64{1594663290, 1594663430, 1594663443, 1594666473},
	}

	summary, err := Summarize(record)

	req.NoError(err)
	req.Equal(Interval{Start: 1594663200, End: 1594666800}, summary.Lesson)
	req.Equal([]Interval{
		{Start: 1594663340, End: 1594663389},
		{Start: 1594663390, End: 1594663395},
		{Start: 1594663396, End: 1594666472},
	}, summary.Pupil)
	req.Equal([]Interval{
		{Start: 1594663290, End: 1594663430},
		{Start: 1594663443, End: 1594666473},
	}, summary.Tutor)
	req.Equal(int64(3117), summary.Overlap)
	req.Equal(int64(49+5+3076), summary.Presence(RolePupil))
	req.Equal(int64(140+3030), summary.Presence(RoleTutor))
}

func TestSummarize_KeepsPresenceWhenOtherIsAbsent(t *testing.T) {
	req := require.New(t)
	record := Record{
		Lesson: []int64{100, 200},
		Pupil:  []int64{120, 180},
		Tutor:  []int64{10, 20},
	}

	summary, err := Summarize(record)

	req.NoError(err)
	req.Zero(summary.Overlap)
	req.Equal(int64(60), summary.Presence(RolePupil))
	req.Zero(summary.Presence(RoleTutor))
}
