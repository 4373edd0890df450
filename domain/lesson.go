// Package domain contains core concepts of the attendance system.
// This file defines the Lesson submitted for computation.
package domain

import "attendance-lab/domain/attendance"

// Lesson is one lesson to compute, as read from a lesson document.
type Lesson struct {
	ID        string            `yaml:"id" json:"id"`
	Intervals attendance.Record `yaml:"intervals" json:"intervals"`
}
