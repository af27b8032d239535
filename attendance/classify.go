package attendance

// Cutoffs are the fallback check-in thresholds applied when no periods are
// configured: at or before OnTime is present, at or before Absent is late,
// later is absent.
type Cutoffs struct {
	OnTime TimeOfDay
	Absent TimeOfDay
}

// Classifier derives attendance statuses against a bell schedule, falling
// back to fixed cutoffs when the schedule is empty.
type Classifier struct {
	Periods  []Period
	Fallback Cutoffs
}

// CheckInAt classifies a check-in clock time. A scan at or before the
// resolved period's start is present, at or before its end is late, and
// past the end (only possible after the last period) is absent.
func (c Classifier) CheckInAt(t TimeOfDay) Status {
	if p, ok := ResolvePeriod(c.Periods, t); ok {
		switch {
		case t <= p.Start:
			return StatusPresent
		case t <= p.End:
			return StatusLate
		default:
			return StatusAbsent
		}
	}
	switch {
	case t <= c.Fallback.OnTime:
		return StatusPresent
	case t <= c.Fallback.Absent:
		return StatusLate
	default:
		return StatusAbsent
	}
}

// CheckIn classifies a stored check-in timestamp. An unparseable value
// yields StatusInvalidTime; the row is kept but reports skip it.
func (c Classifier) CheckIn(ts string) Status {
	t, err := ParseTimestamp(ts)
	if err != nil {
		return StatusInvalidTime
	}
	return c.CheckInAt(ClockOf(t))
}

// CheckOutAt classifies a check-out clock time: before the resolved
// period's end it is a temporary exit, otherwise a final exit.
func (c Classifier) CheckOutAt(t TimeOfDay) Status {
	if p, ok := ResolvePeriod(c.Periods, t); ok {
		if t < p.End {
			return StatusTemporaryExit
		}
		return StatusExit
	}
	if t < c.Fallback.Absent {
		return StatusTemporaryExit
	}
	return StatusExit
}

// CheckOut classifies a stored check-out timestamp. An unparseable value
// defaults to a final exit.
func (c Classifier) CheckOut(ts string) Status {
	t, err := ParseTimestamp(ts)
	if err != nil {
		return StatusExit
	}
	return c.CheckOutAt(ClockOf(t))
}
