package attendance

import (
	"attendance-lab/errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Record is the raw attendance of one lesson, in the flat enter/exit form.
// A nil participant sequence means no session data was recorded,
// an empty one means the participant never connected.
type Record struct {
	Lesson []int64 `yaml:"lesson" json:"lesson" validate:"required,len=2,ordered"`
	Pupil  []int64 `yaml:"pupil" json:"pupil" validate:"pairs,ordered"`
	Tutor  []int64 `yaml:"tutor" json:"tutor" validate:"pairs,ordered"`
}

// Sessions returns the raw sequence recorded for role.
func (r Record) Sessions(role Role) []int64 {
	switch role {
	case RolePupil:
		return r.Pupil
	case RoleTutor:
		return r.Tutor
	default:
		return nil
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	lo.Must0(v.RegisterValidation("pairs", isPaired))
	lo.Must0(v.RegisterValidation("ordered", isOrdered))
	return v
}

func isPaired(fl validator.FieldLevel) bool {
	return fl.Field().Len()%2 == 0
}

// isOrdered checks that no complete pair has its exit before its entry.
func isOrdered(fl validator.FieldLevel) bool {
	seq, ok := fl.Field().Interface().([]int64)
	if !ok {
		return false
	}
	for i := 0; i+1 < len(seq); i += 2 {
		if seq[i] > seq[i+1] {
			return false
		}
	}
	return true
}

// Validate rejects records the calculator cannot interpret.
// Odd-length sequences are refused instead of silently dropping the dangling timestamp.
func Validate(record Record) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrors) == 0 {
		return err
	}
	fe := fieldErrors[0]
	field := strings.ToLower(fe.Field())
	switch {
	case fe.Field() == "Lesson" && fe.Tag() == "required":
		return errors.ErrMissingLesson
	case fe.Field() == "Lesson":
		return fmt.Errorf("%w: got %v", errors.ErrInvalidLesson, fe.Value())
	case fe.Tag() == "pairs":
		return fmt.Errorf("%w: %s has %d timestamps", errors.ErrOddSequence, field, fieldLen(fe))
	default:
		return fmt.Errorf("%w: %s", errors.ErrReversedInterval, field)
	}
}

func fieldLen(fe validator.FieldError) int {
	seq, _ := fe.Value().([]int64)
	return len(seq)
}
