package projection

import (
	"attendance-lab/domain"
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRenderReports(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	reports := []domain.Report{
		{
			ID:            uuid.New(),
			LessonID:      "morning",
			LessonStart:   time.Unix(1594663200, 0).UTC(),
			LessonEnd:     time.Unix(1594666800, 0).UTC(),
			Overlap:       3117,
			PupilPresence: 3130,
			TutorPresence: 3170,
		},
		{
			ID:          uuid.New(),
			LessonID:    "absent-tutor",
			LessonStart: time.Unix(1594663200, 0).UTC(),
			LessonEnd:   time.Unix(1594666800, 0).UTC(),
		},
	}

	RenderReports(&out, reports, false)

	rendered := out.String()
	req.Contains(rendered, "morning")
	req.Contains(rendered, "2020-07-13T18:00:00Z")
	req.Contains(rendered, "51m57s")
	req.Contains(rendered, "3117")
	req.Contains(rendered, "absent-tutor")
	req.Contains(rendered, "2 lesson(s)")
}

func TestToRow_HighlightsLessonsWithoutOverlap(t *testing.T) {
	req := require.New(t)
	report := domain.Report{LessonID: "absent-tutor"}

	plain := toRow(report, false)
	coloured := toRow(report, true)

	req.Equal("absent-tutor", plain[0])
	req.Contains(coloured[0], "absent-tutor")
	req.Equal("0s", plain[5])
}
