//Package astro provides the time-scale and spherical astronomy primitives
//behind a natal chart: Julian Day arithmetic, sidereal time, obliquity of
//the ecliptic and the ascendant. All angles are degrees unless noted.
package astro

import (
	"time"

	"github.com/carlosjhr64/jd"
)

//J2000 is the Julian Day of the standard epoch J2000.0 (2000-01-01 12:00 UT).
const J2000 = 2451545.0

//Days per Julian century
const centuryDays = 36525.0

//JulianDay converts an absolute instant to a Julian Day.
//The instant is read in UTC; the integer day number comes from the standard
//proleptic Gregorian formula and the fraction from the UTC time of day,
//offset by 12h because a Julian Day starts at noon.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	n := jd.YMD2J(t.Year(), int(t.Month()), t.Day())
	sec := float64(t.Hour())*3600 + float64(t.Minute())*60 + float64(t.Second()) + float64(t.Nanosecond())/1e9
	return float64(n) + (sec-43200)/86400
}

//JulianCentury returns T, the number of Julian centuries between jday and J2000.0.
//Negative for instants before the epoch.
func JulianCentury(jday float64) float64 {
	return (jday - J2000) / centuryDays
}
