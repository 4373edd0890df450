//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=../mocks/mock_report_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const reportPrefix = "report:"

type IReportRepository interface {
	StoreReport(report DiskReport) error
	GetReports() ([]DiskReport, error)
}

type ReportRepository struct {
	db           *badger.DB
	log          *slog.Logger
	limitReports *int
}

func NewReportRepository(db *badger.DB, log *slog.Logger, limitReports *int) ReportRepository {
	return ReportRepository{db: db, log: log, limitReports: limitReports}
}

// DiskReport is the stored form of a report. Timestamps and durations are in seconds.
type DiskReport struct {
	ID            uuid.UUID `json:"id"`
	LessonID      string    `json:"lesson_id"`
	LessonStart   int64     `json:"lesson_start"`
	LessonEnd     int64     `json:"lesson_end"`
	Overlap       int64     `json:"overlap"`
	PupilPresence int64     `json:"pupil_presence"`
	TutorPresence int64     `json:"tutor_presence"`
	ComputedAt    time.Time `json:"computed_at"`
}

// StoreReport persists a report in BadgerDB.
// The key is formatted as "report:{lesson_start_padded}:{uuid}" so that a prefix
// scan returns reports ordered by lesson start, and two reports of lessons
// starting at the same second never collide.
func (r ReportRepository) StoreReport(report DiskReport) error {
	key := reportKey(report)
	bytes, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetReports returns stored reports, oldest lesson first.
// It stops collecting once the configured limitReports is reached.
func (r ReportRepository) GetReports() ([]DiskReport, error) {
	var reports []DiskReport
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(reportPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if r.limitReports != nil && len(reports) == *r.limitReports {
				r.log.Debug(fmt.Sprintf("Maximum of %d reports reached", *r.limitReports))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var report DiskReport
				if err := json.Unmarshal(value, &report); err != nil {
					return err
				}
				reports = append(reports, report)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func reportKey(report DiskReport) string {
	return fmt.Sprintf("%s%019d:%s", reportPrefix, report.LessonStart, report.ID)
}
