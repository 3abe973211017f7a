package natal

import (
	"fmt"
	"math"

	"github.com/juliexu77/aster-original-starry-theme-sub000/astro"
)

//Sign is one of the twelve tropical zodiac signs. Each sign owns an exact 30
//degree slice of the ecliptic in fixed rotational order starting at 0 = Aries.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return "unknown"
	}
	return signNames[s]
}

//MarshalJSON writes the sign name, not the index
func (s Sign) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *Sign) UnmarshalJSON(data []byte) error {
	name := string(data)
	if len(name) < 2 || name[0] != '"' || name[len(name)-1] != '"' {
		return fmt.Errorf("invalid sign %s", name)
	}
	name = name[1 : len(name)-1]
	for i, n := range signNames {
		if n == name {
			*s = Sign(i)
			return nil
		}
	}
	return fmt.Errorf("unknown sign %q", name)
}

//SignOf maps any ecliptic longitude in degrees to its sign. Periodic in 360,
//so SignOf(L) == SignOf(L+360k) for any integer k.
func SignOf(longitude float64) Sign {
	return Sign(int(astro.Normalize(longitude) / 30))
}

//DegreeInSign returns the position within the sign, in [0,30).
func DegreeInSign(longitude float64) float64 {
	return math.Mod(astro.Normalize(longitude), 30)
}

//FormatDegree renders a degree-in-sign as D°MM', with the minutes taken from
//the fractional remainder and zero-padded.
func FormatDegree(degreeInSign float64) string {
	d := int(degreeInSign)
	m := int((degreeInSign - float64(d)) * 60)
	return fmt.Sprintf("%d°%02d'", d, m)
}

//WholeSignHouse returns the whole-sign house (1-12) of a sign relative to the
//ascendant's sign. The ascendant's own sign is always house 1 and for a fixed
//ascendant the mapping is a bijection onto 1..12. The exact degree within the
//sign never matters; that is the whole-sign system, not a shortcut.
func WholeSignHouse(s, ascendant Sign) int {
	return (int(s)-int(ascendant)+12)%12 + 1
}
