package natal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/juliexu77/aster-original-starry-theme-sub000/astro"
)

//DefaultHorizonsURL is the public JPL Horizons API endpoint.
const DefaultHorizonsURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

//Horizons target IDs per body. Chiron is the small body 2060 (the trailing
//semicolon selects small-body lookup).
var horizonsIDs = map[Body]string{
	BodySun:     "10",
	BodyMoon:    "301",
	BodyMercury: "199",
	BodyVenus:   "299",
	BodyMars:    "499",
	BodyJupiter: "599",
	BodySaturn:  "699",
	BodyUranus:  "799",
	BodyNeptune: "899",
	BodyPluto:   "999",
	BodyChiron:  "2060;",
}

//HorizonsClient is an Ephemeris backed by the JPL Horizons service. It asks
//for the apparent geocentric ecliptic longitude (observer quantity 31) seen
//from the birth coordinates and derives the retrograde flag from the
//longitude change over the following day. No orbital mechanics happen here;
//Horizons is the validated oracle, this client only marshals.
//
//The zero value is not usable; construct with NewHorizonsClient. Timeouts and
//cancellation are the caller's context plus the HTTP client's own settings.
type HorizonsClient struct {
	BaseURL string
	HTTP    *http.Client
}

//NewHorizonsClient returns a client for the public Horizons endpoint.
func NewHorizonsClient() *HorizonsClient {
	return &HorizonsClient{
		BaseURL: DefaultHorizonsURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

//Positions implements Ephemeris. Bodies Horizons has no ID for, or optional
//bodies the service cannot serve, are left out of the result; transport and
//parse failures fail the whole call.
func (c *HorizonsClient) Positions(ctx context.Context, at time.Time, lat float64, lon astro.Longitude, bodies []Body) (map[Body]BodyPosition, error) {
	out := make(map[Body]BodyPosition, len(bodies))
	for _, body := range bodies {
		id, ok := horizonsIDs[body]
		if !ok {
			continue
		}
		lons, err := c.eclipticLongitudes(ctx, id, at, lat, lon)
		if err != nil {
			if body == BodyChiron {
				continue //optional body, chart goes on without it
			}
			return nil, fmt.Errorf("horizons %s: %w", body, err)
		}
		out[body] = BodyPosition{
			Longitude:  lons[0],
			Retrograde: retrograde(lons[0], lons[1]),
		}
	}
	return out, nil
}

//retrograde reports whether the shortest arc from the longitude now to the
//longitude a day later runs backwards.
func retrograde(now, later float64) bool {
	d := astro.Normalize(later-now+180) - 180
	return d < 0
}

//eclipticLongitudes fetches the observer ecliptic longitude for a target at
//the instant and 24h after it, in that order.
func (c *HorizonsClient) eclipticLongitudes(ctx context.Context, id string, at time.Time, lat float64, lon astro.Longitude) ([2]float64, error) {
	var lons [2]float64

	at = at.UTC()
	q := url.Values{}
	q.Set("format", "text")
	q.Set("COMMAND", quote(id))
	q.Set("OBJ_DATA", "NO")
	q.Set("MAKE_EPHEM", "YES")
	q.Set("EPHEM_TYPE", "OBSERVER")
	q.Set("CENTER", quote("coord@399"))
	q.Set("COORD_TYPE", "GEODETIC")
	q.Set("SITE_COORD", quote(fmt.Sprintf("%f,%f,0", float64(lon), lat)))
	q.Set("START_TIME", quote(at.Format("2006-Jan-02 15:04")))
	q.Set("STOP_TIME", quote(at.Add(24*time.Hour).Format("2006-Jan-02 15:04")))
	q.Set("STEP_SIZE", quote("1 d"))
	q.Set("QUANTITIES", quote("31"))
	q.Set("CSV_FORMAT", "YES")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return lons, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return lons, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return lons, fmt.Errorf("status %s", resp.Status)
	}

	rows, err := parseHorizonsTable(resp.Body)
	if err != nil {
		return lons, err
	}
	if len(rows) < 2 {
		return lons, fmt.Errorf("expected 2 ephemeris rows, have %d", len(rows))
	}
	lons[0], lons[1] = rows[0], rows[1]
	return lons, nil
}

//parseHorizonsTable reads the ObsEcLon column of the CSV rows between the
//$$SOE and $$EOE markers of a Horizons text response. Row layout with
//QUANTITIES=31 is: date, two presence markers, ObsEcLon, ObsEcLat.
func parseHorizonsTable(r io.Reader) ([]float64, error) {
	var lons []float64
	in := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "$$SOE":
			in = true
			continue
		case line == "$$EOE":
			return lons, scanner.Err()
		case !in || line == "":
			continue
		}
		cols := strings.Split(line, ",")
		if len(cols) < 5 {
			return nil, fmt.Errorf("unexpected ephemeris row %q", line)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(cols[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad ObsEcLon in row %q: %w", line, err)
		}
		lons = append(lons, lon)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !in {
		return nil, fmt.Errorf("no $$SOE marker in response")
	}
	return lons, fmt.Errorf("no $$EOE marker in response")
}

//Horizons wants its string parameters single quoted
func quote(s string) string {
	return "'" + s + "'"
}
