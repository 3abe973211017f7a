package natal

import (
	"context"
	"time"

	"github.com/juliexu77/aster-original-starry-theme-sub000/astro"
)

//Body is a tracked celestial body.
type Body string

const (
	BodySun     Body = "Sun"
	BodyMoon    Body = "Moon"
	BodyMercury Body = "Mercury"
	BodyVenus   Body = "Venus"
	BodyMars    Body = "Mars"
	BodyJupiter Body = "Jupiter"
	BodySaturn  Body = "Saturn"
	BodyUranus  Body = "Uranus"
	BodyNeptune Body = "Neptune"
	BodyPluto   Body = "Pluto"
	BodyChiron  Body = "Chiron" //optional, charted only when the ephemeris has it
)

//RequiredBodies are the bodies every chart must carry, in chart order.
//A chart is all-or-nothing over this set.
var RequiredBodies = []Body{
	BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars,
	BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
}

//BodyPosition is the raw answer of an ephemeris for one body: apparent
//geocentric ecliptic longitude in degrees and whether the body currently
//appears to move backwards along the ecliptic.
type BodyPosition struct {
	Longitude  float64
	Retrograde bool
}

//Ephemeris is the external planetary position oracle. Implementations do the
//orbital mechanics (or delegate to a service that does); this package only
//marshals their answers into chart placements.
//
//Positions reports each requested body it knows at the given UTC instant and
//observer coordinates (elevation is taken as 0). Returning fewer bodies than
//requested is allowed for optional ones; Assemble rejects a chart missing any
//of RequiredBodies. Timeout and retry policy belong to the implementation and
//the caller's context, not to this package.
type Ephemeris interface {
	Positions(ctx context.Context, at time.Time, lat float64, lon astro.Longitude, bodies []Body) (map[Body]BodyPosition, error)
}
