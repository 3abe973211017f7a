package astro

import (
	"fmt"
	"math"
)

//ErrPolarLatitude is returned when the latitude is too close to a pole for the
//ascendant to be stable; tan(latitude) diverges there and the result would be
//numerically meaningless.
var ErrPolarLatitude = fmt.Errorf("latitude too close to a pole for a stable ascendant")

//Latitudes at or beyond this are rejected
const maxAscendantLatitude = 89.9

//Ascendant returns the ecliptic longitude in [0,360) rising on the eastern
//horizon for a local sidereal time, a geographic latitude and an obliquity of
//the ecliptic, all in degrees.
//
//The quadrant matters: with y = cos(LST) and
//x = -(sin(LST)*cos(eps) + tan(lat)*sin(eps)) the result must come from
//atan2(y, x). Plain atan(y/x) is ambiguous by 180 degrees and places the
//ascendant in the opposite sign for half of all charts.
func Ascendant(lstDeg, latDeg, epsDeg float64) (float64, error) {
	if math.Abs(latDeg) >= maxAscendantLatitude {
		return 0, ErrPolarLatitude
	}
	lst := lstDeg * math.Pi / 180
	lat := latDeg * math.Pi / 180
	eps := epsDeg * math.Pi / 180

	y := math.Cos(lst)
	x := -(math.Sin(lst)*math.Cos(eps) + math.Tan(lat)*math.Sin(eps))
	return Normalize(math.Atan2(y, x) * 180 / math.Pi), nil
}
