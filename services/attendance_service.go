package services

import (
	"attendance-lab/domain"
	"attendance-lab/domain/attendance"
	"attendance-lab/repositories"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type IAttendanceService interface {
	Compute(ctx context.Context, lesson domain.Lesson) (domain.Report, error)
	ComputeAll(ctx context.Context, lessons []domain.Lesson) ([]domain.Report, error)
	Reports() ([]domain.Report, error)
}

type AttendanceService struct {
	log             *slog.Logger
	repository      repositories.IReportRepository
	numberOfWorkers int
	now             func() time.Time
}

func NewAttendanceService(log *slog.Logger, repository repositories.IReportRepository, numberOfWorkers int) *AttendanceService {
	return &AttendanceService{
		log:             log,
		repository:      repository,
		numberOfWorkers: max(numberOfWorkers, 1),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Compute validates the lesson, computes its attendance and stores the report.
func (s *AttendanceService) Compute(ctx context.Context, lesson domain.Lesson) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}
	summary, err := attendance.Summarize(lesson.Intervals)
	if err != nil {
		s.log.Warn("Lesson rejected", "lesson", lesson.ID, "error", err)
		return domain.Report{}, fmt.Errorf("lesson %q: %w", lesson.ID, err)
	}

	report := toReport(lesson.ID, summary, s.now())
	if err = s.repository.StoreReport(toDiskReport(report)); err != nil {
		return domain.Report{}, fmt.Errorf("storing report of lesson %q: %w", lesson.ID, err)
	}
	s.log.Debug("Lesson computed", "lesson", lesson.ID, "overlap", report.Overlap)
	return report, nil
}

// ComputeAll computes every lesson with at most numberOfWorkers goroutines.
// Reports keep the order of lessons. The first failure cancels the remaining lessons.
func (s *AttendanceService) ComputeAll(ctx context.Context, lessons []domain.Lesson) ([]domain.Report, error) {
	reports := make([]domain.Report, len(lessons))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.numberOfWorkers)
	for i, lesson := range lessons {
		g.Go(func() error {
			report, err := s.Compute(ctx, lesson)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Reports returns the stored reports, oldest lesson first.
func (s *AttendanceService) Reports() ([]domain.Report, error) {
	diskReports, err := s.repository.GetReports()
	if err != nil {
		return nil, err
	}
	return lo.Map(diskReports, func(item repositories.DiskReport, _ int) domain.Report {
		return fromDiskReport(item)
	}), nil
}

func toReport(lessonID string, summary attendance.Summary, at time.Time) domain.Report {
	return domain.Report{
		ID:            uuid.New(),
		LessonID:      lessonID,
		LessonStart:   time.Unix(summary.Lesson.Start, 0).UTC(),
		LessonEnd:     time.Unix(summary.Lesson.End, 0).UTC(),
		Overlap:       summary.Overlap,
		PupilPresence: summary.Presence(attendance.RolePupil),
		TutorPresence: summary.Presence(attendance.RoleTutor),
		ComputedAt:    at,
	}
}

func toDiskReport(report domain.Report) repositories.DiskReport {
	return repositories.DiskReport{
		ID:            report.ID,
		LessonID:      report.LessonID,
		LessonStart:   report.LessonStart.Unix(),
		LessonEnd:     report.LessonEnd.Unix(),
		Overlap:       report.Overlap,
		PupilPresence: report.PupilPresence,
		TutorPresence: report.TutorPresence,
		ComputedAt:    report.ComputedAt,
	}
}

func fromDiskReport(report repositories.DiskReport) domain.Report {
	return domain.Report{
		ID:            report.ID,
		LessonID:      report.LessonID,
		LessonStart:   time.Unix(report.LessonStart, 0).UTC(),
		LessonEnd:     time.Unix(report.LessonEnd, 0).UTC(),
		Overlap:       report.Overlap,
		PupilPresence: report.PupilPresence,
		TutorPresence: report.TutorPresence,
		ComputedAt:    report.ComputedAt,
	}
}
