package astro

import "math"

//Longitude is a signed geographic longitude in degrees, east-positive and
//west-negative. It is a distinct type so a plain float64 with the wrong sign
//convention cannot slip into the sidereal time formula unnoticed; a sign flip
//here shifts every ascendant by hours of sidereal time.
type Longitude float64

//Normalize reduces an angle in degrees to [0,360).
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

//GMST returns the Greenwich Mean Sidereal Time for a Julian Day as an angle
//in [0,360). Polynomial from Meeus, Astronomical Algorithms, eq. 12.4.
func GMST(jday float64) float64 {
	d := jday - J2000
	t := d / centuryDays
	g := 280.46061837 + 360.98564736629*d + 0.000387933*t*t - t*t*t/38710000.0
	return Normalize(g)
}

//LST returns the Local Mean Sidereal Time in [0,360) for a Greenwich sidereal
//time and a signed geographic longitude. East longitudes increase LST.
func LST(gmstDeg float64, lon Longitude) float64 {
	return Normalize(gmstDeg + float64(lon))
}

//Obliquity returns the mean obliquity of the ecliptic in degrees for T Julian
//centuries since J2000.0 (Meeus eq. 22.2). Around 23.44 and slowly falling;
//no normalization needed.
func Obliquity(t float64) float64 {
	return 23.43929111 - 0.01300416667*t - 1.638889e-7*t*t + 5.036111e-7*t*t*t
}
