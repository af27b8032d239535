// Package attendance holds the pure attendance logic: resolving which
// period a wall-clock time belongs to, classifying check-in/check-out
// scans, materializing the calendar plan into concrete sessions, and
// folding check-in logs into per-subject attendance summaries. Nothing in
// this package touches the database.
package attendance

// Status is the derived attendance state stored on a check event or
// produced by the aggregator.
type Status string

const (
	StatusPresent  Status = "present"
	StatusLate     Status = "late"
	StatusAbsent   Status = "absent"
	StatusUnmarked Status = "unmarked"

	// Check-in with an unparseable timestamp keeps the raw row but marks
	// it so reports can ignore it.
	StatusInvalidTime Status = "invalid_time"

	// Check-out states: leaving before the period ends is a temporary
	// exit, after is a final exit.
	StatusTemporaryExit Status = "temporary_exit"
	StatusExit          Status = "exit"
)

// Scan directions. A student's scans alternate: each scan flips the
// direction of the previous one, and the first scan is a check-in.
const (
	DirectionIn  = "check_in"
	DirectionOut = "check_out"
)

// NextDirection returns the direction for a new scan given the student's
// most recent recorded direction ("" when there is none).
func NextDirection(last string) string {
	if last == DirectionIn {
		return DirectionOut
	}
	return DirectionIn
}
