package wizard

import (
	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
)

// The candidate slots are fixed display labels, matching the reference
// behavior rather than the live calendar.
var (
	scheduleDates = []string{"Today", "Tomorrow", "Wed 31", "Thu 1", "Fri 2"}
	scheduleTimes = []string{"09:00 AM", "11:00 AM", "01:00 PM", "03:00 PM", "05:00 PM", "07:00 PM"}
)

// ScheduleDates lists the selectable date labels.
func ScheduleDates() []string {
	out := make([]string, len(scheduleDates))
	copy(out, scheduleDates)
	return out
}

// ScheduleTimes lists the selectable time labels.
func ScheduleTimes() []string {
	out := make([]string, len(scheduleTimes))
	copy(out, scheduleTimes)
	return out
}

func isScheduleDate(label string) bool {
	for _, d := range scheduleDates {
		if d == label {
			return true
		}
	}
	return false
}

func isScheduleTime(label string) bool {
	for _, t := range scheduleTimes {
		if t == label {
			return true
		}
	}
	return false
}

// SetScheduleDate records a date label from the candidate set.
func (s *Session) SetScheduleDate(label string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if !isScheduleDate(label) {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown schedule date")
	}
	s.Schedule.Date = label
	return nil
}

// SetScheduleTime records a time label from the candidate set.
func (s *Session) SetScheduleTime(label string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if !isScheduleTime(label) {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown schedule time")
	}
	s.Schedule.Time = label
	return nil
}
