package natal

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestSignOf(t *testing.T) {
	cases := []struct {
		longitude float64
		want      Sign
	}{
		{0, Aries},
		{29.999, Aries},
		{30, Taurus},
		{182.24, Libra},
		{359.999, Pisces},
		{360, Aries},
		{-5, Pisces},
	}
	for _, c := range cases {
		if have := SignOf(c.longitude); have != c.want {
			t.Errorf("SignOf(%f): want %s, have %s", c.longitude, c.want, have)
		}
	}
}

//SignOf must be periodic in full turns
func TestSignOfPeriodicity(t *testing.T) {
	for _, l := range []float64{0, 1.5, 29.999, 45, 182.24, 271, 359.9} {
		want := SignOf(l)
		for k := -2; k <= 2; k++ {
			if have := SignOf(l + float64(k)*360); have != want {
				t.Errorf("SignOf(%f + %d*360): want %s, have %s", l, k, want, have)
			}
		}
	}
}

func TestDegreeInSign(t *testing.T) {
	for _, l := range []float64{0, 15.25, 30, 182.24, 359.999, -5, 725} {
		d := DegreeInSign(l)
		if d < 0 || d >= 30 {
			t.Errorf("DegreeInSign(%f) = %f, outside [0,30)", l, d)
		}
	}
	if have := DegreeInSign(182.241857); math.Abs(have-2.241857) > 1e-9 {
		t.Errorf("Want 2.241857, have %f", have)
	}
}

func TestFormatDegree(t *testing.T) {
	cases := []struct {
		deg  float64
		want string
	}{
		{0, "0°00'"},
		{2.241857, "2°14'"},
		{15.5, "15°30'"},
		{29.9999, "29°59'"},
		{4.05, "4°02'"},
	}
	for _, c := range cases {
		if have := FormatDegree(c.deg); have != c.want {
			t.Errorf("FormatDegree(%f): want %s, have %s", c.deg, c.want, have)
		}
	}
}

//Parsing D°MM' back must land within one arcminute of the input
func TestFormatDegreeRoundTrip(t *testing.T) {
	for _, l := range []float64{0, 0.01, 2.241857, 7.77, 14.983, 22.5, 29.9999} {
		var d, m int
		s := strings.Replace(FormatDegree(l), "°", " ", 1)
		s = strings.TrimSuffix(s, "'")
		if _, err := fmt.Sscanf(s, "%d %d", &d, &m); err != nil {
			t.Fatalf("cannot parse %q back: %s", FormatDegree(l), err)
		}
		back := float64(d) + float64(m)/60
		if math.Abs(back-l) > 1.0/60 {
			t.Errorf("Round trip of %f through %q gives %f", l, FormatDegree(l), back)
		}
	}
}

func TestWholeSignHouse(t *testing.T) {
	//The ascendant's own sign is always house 1
	for s := Aries; s <= Pisces; s++ {
		if have := WholeSignHouse(s, s); have != 1 {
			t.Errorf("WholeSignHouse(%s, %s): want 1, have %d", s, s, have)
		}
	}
	//For a fixed ascendant the mapping is a bijection onto 1..12
	for asc := Aries; asc <= Pisces; asc++ {
		seen := map[int]bool{}
		for s := Aries; s <= Pisces; s++ {
			h := WholeSignHouse(s, asc)
			if h < 1 || h > 12 {
				t.Fatalf("WholeSignHouse(%s, %s) = %d, outside 1..12", s, asc, h)
			}
			if seen[h] {
				t.Fatalf("ascendant %s: house %d assigned twice", asc, h)
			}
			seen[h] = true
		}
	}
	//Spot checks
	if have := WholeSignHouse(Libra, Libra); have != 1 {
		t.Errorf("Libra rising, Libra: want house 1, have %d", have)
	}
	if have := WholeSignHouse(Cancer, Libra); have != 10 {
		t.Errorf("Libra rising, Cancer: want house 10, have %d", have)
	}
	if have := WholeSignHouse(Virgo, Libra); have != 12 {
		t.Errorf("Libra rising, Virgo: want house 12, have %d", have)
	}
}

func TestSignJSON(t *testing.T) {
	data, err := Libra.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"Libra"` {
		t.Errorf(`Want "Libra", have %s`, data)
	}
	var s Sign
	if err := s.UnmarshalJSON([]byte(`"Pisces"`)); err != nil {
		t.Fatal(err)
	}
	if s != Pisces {
		t.Errorf("Want Pisces, have %s", s)
	}
	if err := s.UnmarshalJSON([]byte(`"Ophiuchus"`)); err == nil {
		t.Error("Want error for unknown sign")
	}
}
