// Package projection renders attendance reports for terminals.
// Does not compute or store anything.
package projection

import (
	"attendance-lab/domain"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

var header = []string{"Lesson", "Start", "End", "Pupil", "Tutor", "Overlap", "Seconds"}

// RenderReports writes one row per report. With colours enabled, lessons where
// pupil and tutor never met are shown in red.
func RenderReports(w io.Writer, reports []domain.Report, colours bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, report := range reports {
		table.Append(toRow(report, colours))
	}
	table.Render()
	fmt.Fprintf(w, "%d lesson(s)\n", len(reports))
}

func toRow(report domain.Report, colours bool) []string {
	lessonID := report.LessonID
	if colours && report.Overlap == 0 {
		lessonID = color.New(color.FgRed).Render(lessonID)
	}
	return []string{
		lessonID,
		report.LessonStart.Format(time.RFC3339),
		report.LessonEnd.Format(time.RFC3339),
		seconds(report.PupilPresence).String(),
		seconds(report.TutorPresence).String(),
		seconds(report.Overlap).String(),
		strconv.FormatInt(report.Overlap, 10),
	}
}

func seconds(s int64) time.Duration {
	return time.Duration(s) * time.Second
}
