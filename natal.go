//Package natal computes tropical natal charts: a zodiac sign, degree and
//whole-sign house for every tracked celestial body plus the ascendant, from a
//birth date, local clock time and free-text birth location.
//
//The whole pipeline is pure and stateless: free text resolves against a fixed
//gazetteer, the local time converts to UTC using the historical offset in
//force on that date, Julian Day and sidereal time come from the astro
//subpackage, and planetary longitudes come from an external Ephemeris the
//caller supplies. The package owns no persistence, caching or retry policy.
package natal

//BirthRecord is the immutable chart input. Date is "2006-01-02", LocalTime is
//24h "15:04"; either may be empty when unknown. LocationText is free-form and
//may be empty or unresolvable, which degrades the chart rather than failing it.
type BirthRecord struct {
	Date         string `json:"date"`
	LocalTime    string `json:"localTime"`
	LocationText string `json:"locationText,omitempty"`
}

//PlanetPosition is one tracked body placed on the ecliptic. Sign, DegreeInSign
//and FormattedDegree are always derived from Longitude; House is the
//whole-sign house relative to the ascendant, or 0 when the ascendant is
//unavailable.
type PlanetPosition struct {
	Name            Body    `json:"name"`
	Longitude       float64 `json:"longitude"`
	Sign            Sign    `json:"sign"`
	DegreeInSign    float64 `json:"degreeInSign"`
	IsRetrograde    bool    `json:"isRetrograde"`
	FormattedDegree string  `json:"formattedDegree"`
	House           int     `json:"house,omitempty"`
}

//Ascendant is the rising point of a chart.
type Ascendant struct {
	Degree          float64 `json:"ascendantDegree"`
	Sign            Sign    `json:"ascendantSign"`
	DegreeInSign    float64 `json:"degreeInSign"`
	FormattedDegree string  `json:"formattedDegree"`
}

//BirthChart is the assembled result: one position per tracked body in chart
//order, plus the ascendant. Ascendant is nil when the birth time is unknown
//and the caller chose MissingTimeOmit, or when the latitude is too close to a
//pole for a stable result. Downstream consumers should depend on the sign and
//house fields only; intermediates like Julian Day and sidereal time are not
//part of this structure on purpose.
type BirthChart struct {
	Positions []PlanetPosition `json:"positions"`
	Ascendant *Ascendant       `json:"ascendant,omitempty"`
}

//Position returns the position for a body, or false if the chart does not
//track it.
func (c *BirthChart) Position(b Body) (PlanetPosition, bool) {
	for _, p := range c.Positions {
		if p.Name == b {
			return p, true
		}
	}
	return PlanetPosition{}, false
}
