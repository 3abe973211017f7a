package natal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGazetteer(t *testing.T) {
	g := DefaultGazetteer()
	require.NotNil(t, g)
	assert.Greater(t, g.NumPlaces(), 50)
	//Loaded once, shared by reference
	assert.Same(t, g, DefaultGazetteer())
}

func TestResolve(t *testing.T) {
	g := DefaultGazetteer()
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"London", "London", true},
		{"london", "London", true},
		{"  LONDON  ", "London", true},
		{"born in London, England", "London", true},
		{"Smithtown", "Smithtown", true},
		{"São Paulo", "São Paulo", true},
		{"sao paulo", "São Paulo", true},
		{"Atlantis", "", false},
		{"", "", false},
		{"   ", "", false},
	}
	for _, c := range cases {
		place, ok := g.Resolve(c.in)
		if assert.Equal(t, c.ok, ok, "Resolve(%q)", c.in) && ok {
			assert.Equal(t, c.want, place.Name, "Resolve(%q)", c.in)
		}
	}
}

//"Smithtown NY" overlaps both the Smithtown entry and the NY alias; the
//longest name must win so the chart gets Smithtown's coordinates, not
//Manhattan's.
func TestResolveLongestMatch(t *testing.T) {
	g := DefaultGazetteer()

	place, ok := g.Resolve("Smithtown NY")
	require.True(t, ok)
	assert.Equal(t, "Smithtown", place.Name)
	assert.InDelta(t, 40.8557, place.Latitude, 1e-6)
	assert.InDelta(t, -73.2004, float64(place.Longitude), 1e-6)
	assert.Equal(t, "America/New_York", place.TZ)

	//The alias alone still resolves to New York's coordinates
	place, ok = g.Resolve("NY")
	require.True(t, ok)
	assert.InDelta(t, 40.7128, place.Latitude, 1e-6)
	assert.InDelta(t, -74.0060, float64(place.Longitude), 1e-6)
}

func TestLoadGazetteer(t *testing.T) {
	yml := `
- {name: "Testville", lat: 10.5, lon: 20.25, tz: "Europe/Paris"}
- {name: "Casa Grande", lat: 32.8795, lon: -111.7574, tz: "America/Phoenix"}
- {name: "", lat: 0, lon: 0, tz: "UTC"}
`
	g, err := LoadGazetteer(strings.NewReader(yml))
	require.NoError(t, err)
	//The unnamed entry is dropped
	assert.Equal(t, 2, g.NumPlaces())

	place, ok := g.Resolve("casa grande az")
	require.True(t, ok)
	assert.Equal(t, "Casa Grande", place.Name)

	_, ok = g.Resolve("London")
	assert.False(t, ok, "custom gazetteer should not know London")
}

func TestLoadGazetteerErrors(t *testing.T) {
	_, err := LoadGazetteer(strings.NewReader("{ not: [valid"))
	assert.Error(t, err)

	_, err = LoadGazetteer(strings.NewReader(`[{name: "", lat: 0, lon: 0, tz: "UTC"}]`))
	assert.ErrorIs(t, err, ErrEmptyGazetteer)
}

func TestPlacesIsACopy(t *testing.T) {
	g := DefaultGazetteer()
	places := g.Places()
	require.NotEmpty(t, places)
	places[0].Name = "Mutated"
	assert.NotEqual(t, "Mutated", g.Places()[0].Name)
}
