package natal

import (
	"fmt"
	"time"
)

//Hard failures of the chart pipeline. Degraded states (unresolved location,
//polar latitude) are not errors and never appear here.
var (
	ErrNoBirthDate  = fmt.Errorf("birth date is missing")
	ErrNoBirthTime  = fmt.Errorf("birth time is missing")
	ErrNoTimePolicy = fmt.Errorf("missing-time policy not set")
	ErrNoEphemeris  = fmt.Errorf("no ephemeris configured")
	ErrMissingBody  = fmt.Errorf("ephemeris did not return a required body")
)

//MissingTimePolicy decides what a chart computation does when the birth record
//has a date but no clock time. There is deliberately no default: the zero
//value fails, the caller has to state a choice.
type MissingTimePolicy int

const (
	//MissingTimeReject fails the chart with ErrNoBirthTime.
	MissingTimeReject MissingTimePolicy = iota + 1
	//MissingTimeOmit computes planetary signs at local noon but leaves the
	//ascendant and all houses out. The slower bodies move well under a degree
	//per day so their signs are safe; the Moon (about 13 degrees a day) can be
	//off near a sign boundary, which is the price of an unknown time.
	MissingTimeOmit
	//MissingTimeAssumeNoon computes the full chart, ascendant included, as if
	//born at 12:00 local time.
	MissingTimeAssumeNoon
)

func (p MissingTimePolicy) valid() bool {
	return p >= MissingTimeReject && p <= MissingTimeAssumeNoon
}

//parseBirthDate reads the "2006-01-02" calendar date of a record.
func parseBirthDate(rec BirthRecord) (year int, month time.Month, day int, err error) {
	if rec.Date == "" {
		return 0, 0, 0, ErrNoBirthDate
	}
	t, err := time.Parse("2006-01-02", rec.Date)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("birth date %q: %w", rec.Date, err)
	}
	return t.Year(), t.Month(), t.Day(), nil
}

//parseBirthTime reads the 24h "15:04" clock time of a record.
func parseBirthTime(rec BirthRecord) (hour, minute int, err error) {
	t, err := time.Parse("15:04", rec.LocalTime)
	if err != nil {
		return 0, 0, fmt.Errorf("birth time %q: %w", rec.LocalTime, err)
	}
	return t.Hour(), t.Minute(), nil
}

//localToUTC converts a local birth date and clock time to the single absolute
//UTC instant, using the UTC offset that was in force in the place's timezone
//on that very date. DST and other historical offset changes are honored, and
//the calendar day rolls forward or backward when the offset crosses midnight.
//An unresolved location (ok false) or an unknown zone name degrades to offset
//zero: the clock time is read as UTC directly.
func localToUTC(year int, month time.Month, day, hour, minute int, place Place, ok bool) time.Time {
	loc := time.UTC
	if ok {
		if l, err := time.LoadLocation(place.TZ); err == nil {
			loc = l
		}
	}
	return time.Date(year, month, day, hour, minute, 0, 0, loc).UTC()
}
