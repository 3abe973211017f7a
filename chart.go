package natal

import (
	"context"
	"fmt"
	"time"

	"github.com/juliexu77/aster-original-starry-theme-sub000/astro"
)

//Options configures a chart computation. Ephemeris and MissingTime are
//mandatory; Gazetteer defaults to the packaged table when nil.
type Options struct {
	Ephemeris   Ephemeris
	MissingTime MissingTimePolicy
	Gazetteer   *Gazetteer
}

//Assemble computes a complete birth chart from one record.
//
//The pipeline is a single synchronous pass: resolve the location text,
//convert the local clock time to UTC with the historical offset of that date,
//derive Julian Day, sidereal time and obliquity, ask the ephemeris for the
//planetary longitudes, and map everything to signs and whole-sign houses.
//
//A missing date always fails. A missing clock time is handled per
//opts.MissingTime. An unresolvable location is not an error; the chart
//degrades to coordinates (0,0) with zero UTC offset. A latitude too close to
//a pole leaves chart.Ascendant nil instead of producing a silently wrong
//sign. An ephemeris failure fails the whole chart; there are no partial
//results.
func Assemble(ctx context.Context, rec BirthRecord, opts Options) (*BirthChart, error) {
	if opts.Ephemeris == nil {
		return nil, ErrNoEphemeris
	}
	if !opts.MissingTime.valid() {
		return nil, ErrNoTimePolicy
	}
	gaz := opts.Gazetteer
	if gaz == nil {
		gaz = DefaultGazetteer()
	}

	year, month, day, err := parseBirthDate(rec)
	if err != nil {
		return nil, err
	}

	timeKnown := rec.LocalTime != ""
	hour, minute := 12, 0
	if timeKnown {
		if hour, minute, err = parseBirthTime(rec); err != nil {
			return nil, err
		}
	} else if opts.MissingTime == MissingTimeReject {
		return nil, ErrNoBirthTime
	}

	place, resolved := gaz.Resolve(rec.LocationText)
	utc := localToUTC(year, month, day, hour, minute, place, resolved)

	jday := astro.JulianDay(utc)
	t := astro.JulianCentury(jday)

	var asc *Ascendant
	if timeKnown || opts.MissingTime == MissingTimeAssumeNoon {
		lst := astro.LST(astro.GMST(jday), place.Longitude)
		deg, err := astro.Ascendant(lst, place.Latitude, astro.Obliquity(t))
		if err == nil {
			asc = &Ascendant{
				Degree:          deg,
				Sign:            SignOf(deg),
				DegreeInSign:    DegreeInSign(deg),
				FormattedDegree: FormatDegree(DegreeInSign(deg)),
			}
		}
		//ErrPolarLatitude is the only failure here and it means "ascendant
		//unavailable", not "chart failed"
	}

	positions, err := chartPositions(ctx, opts.Ephemeris, utc, place, asc)
	if err != nil {
		return nil, err
	}

	return &BirthChart{Positions: positions, Ascendant: asc}, nil
}

//chartPositions asks the ephemeris for every tracked body and maps the
//answers into chart placements. All of RequiredBodies must be present;
//Chiron is charted only when the ephemeris knows it.
func chartPositions(ctx context.Context, eph Ephemeris, utc time.Time, place Place, asc *Ascendant) ([]PlanetPosition, error) {
	want := append(append([]Body{}, RequiredBodies...), BodyChiron)
	found, err := eph.Positions(ctx, utc, place.Latitude, place.Longitude, want)
	if err != nil {
		return nil, fmt.Errorf("ephemeris: %w", err)
	}

	positions := make([]PlanetPosition, 0, len(want))
	for _, body := range want {
		bp, ok := found[body]
		if !ok {
			if body == BodyChiron {
				continue
			}
			return nil, fmt.Errorf("%w: %s", ErrMissingBody, body)
		}
		p := PlanetPosition{
			Name:            body,
			Longitude:       astro.Normalize(bp.Longitude),
			Sign:            SignOf(bp.Longitude),
			DegreeInSign:    DegreeInSign(bp.Longitude),
			IsRetrograde:    bp.Retrograde,
			FormattedDegree: FormatDegree(DegreeInSign(bp.Longitude)),
		}
		if asc != nil {
			p.House = WholeSignHouse(p.Sign, asc.Sign)
		}
		positions = append(positions, p)
	}
	return positions, nil
}
