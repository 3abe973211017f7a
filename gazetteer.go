package natal

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/juliexu77/aster-original-starry-theme-sub000/astro"
)

//ErrEmptyGazetteer is returned when loaded gazetteer data contains no usable
//entries.
var ErrEmptyGazetteer = fmt.Errorf("gazetteer has no places")

//Place is one gazetteer entry: a city (or an alias for one) with its
//coordinates and IANA timezone identifier. Longitude is signed east-positive.
type Place struct {
	Name      string          `yaml:"name" json:"name"`
	Latitude  float64         `yaml:"lat" json:"latitude"`
	Longitude astro.Longitude `yaml:"lon" json:"longitude"`
	TZ        string          `yaml:"tz" json:"tz"`
}

//Gazetteer is an immutable city lookup table, loaded once and safe to share
//by reference between any number of concurrent chart computations.
type Gazetteer struct {
	places []Place
	folded []string //folded names, same order as places
}

//go:embed cities.yaml
var citiesYAML []byte

var (
	defaultGazetteer     *Gazetteer
	defaultGazetteerOnce sync.Once
)

//DefaultGazetteer returns the gazetteer packaged with this module. The same
//instance is returned on every call; treat it as read-only.
func DefaultGazetteer() *Gazetteer {
	defaultGazetteerOnce.Do(func() {
		g, err := parseGazetteer(citiesYAML)
		if err != nil {
			panic("natal: embedded gazetteer: " + err.Error())
		}
		defaultGazetteer = g
	})
	return defaultGazetteer
}

//LoadGazetteer reads a custom gazetteer from YAML data: a list of entries
//with name, lat, lon (signed, east-positive) and tz fields.
func LoadGazetteer(r io.Reader) (*Gazetteer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseGazetteer(data)
}

func parseGazetteer(data []byte) (*Gazetteer, error) {
	var places []Place
	if err := yaml.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("parsing gazetteer: %w", err)
	}

	g := &Gazetteer{}
	for _, p := range places {
		folded := foldPlace(p.Name)
		if folded == "" {
			continue
		}
		g.places = append(g.places, p)
		g.folded = append(g.folded, folded)
	}
	if len(g.places) == 0 {
		return nil, ErrEmptyGazetteer
	}
	return g, nil
}

//NumPlaces returns the number of entries
func (g *Gazetteer) NumPlaces() int {
	return len(g.places)
}

//Places returns a copy of all entries
func (g *Gazetteer) Places() []Place {
	out := make([]Place, len(g.places))
	copy(out, g.places)
	return out
}

//Resolve matches free-form location text against the gazetteer. A place
//matches when its folded name contains the folded input or vice versa; among
//all matches the longest place name wins, so "Smithtown NY" resolves to
//Smithtown and not to a shorter "NY" alias it also overlaps. The second
//return is false when nothing matches or the input is empty; that is not an
//error, downstream the chart degrades to zero coordinates and zero offset.
func (g *Gazetteer) Resolve(text string) (Place, bool) {
	q := foldPlace(text)
	if q == "" {
		return Place{}, false
	}
	best := -1
	for i, name := range g.folded {
		if !strings.Contains(q, name) && !strings.Contains(name, q) {
			continue
		}
		if best == -1 || len(name) > len(g.folded[best]) {
			best = i
		}
	}
	if best == -1 {
		return Place{}, false
	}
	return g.places[best], true
}
