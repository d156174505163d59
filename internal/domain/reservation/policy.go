package reservation

import (
	"fmt"
	"time"

	"classroom-reservations/internal/pkg/errs"
)

var (
	ErrDurationTooShort = errs.Kind(errs.ErrValidation, "reservation is shorter than the minimum duration")
	ErrDurationTooLong  = errs.Kind(errs.ErrValidation, "reservation is longer than the maximum duration")
)

// Policy holds the per-kind rules applied on create and edit.
type Policy struct {
	MinDuration time.Duration
	MaxDuration time.Duration
	// CheckOverlapOnCreate rejects new or edited slots that overlap an approved one.
	// Exam requests skip it and are only checked at approval time.
	CheckOverlapOnCreate bool
}

func DefaultPolicy(kind Kind) Policy {
	if kind == KindExam {
		return Policy{MinDuration: 30 * time.Minute, MaxDuration: 6 * time.Hour}
	}
	return Policy{MinDuration: 30 * time.Minute, MaxDuration: 8 * time.Hour, CheckOverlapOnCreate: true}
}

func (p Policy) ValidateDuration(slot TimeSlot) error {
	d := slot.Duration()
	if p.MinDuration > 0 && d < p.MinDuration {
		return errs.Wrap(ErrDurationTooShort, fmt.Sprintf("minimum is %s", p.MinDuration))
	}
	if p.MaxDuration > 0 && d > p.MaxDuration {
		return errs.Wrap(ErrDurationTooLong, fmt.Sprintf("maximum is %s", p.MaxDuration))
	}
	return nil
}
