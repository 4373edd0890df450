// Package domain contains core concepts of the attendance system.
// This file defines the Report produced for a lesson.
// Reports are immutable once computed.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is the computed attendance of a lesson. Durations are in seconds.
type Report struct {
	ID            uuid.UUID
	LessonID      string
	LessonStart   time.Time
	LessonEnd     time.Time
	Overlap       int64
	PupilPresence int64
	TutorPresence int64
	ComputedAt    time.Time
}
