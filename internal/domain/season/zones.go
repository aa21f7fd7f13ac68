package season

import "fmt"

// Zone is a named, inclusive range of final league positions.
type Zone struct {
	Start int
	End   int
	Name  string
}

func (z Zone) Validate() error {
	if z.Start < 1 {
		return fmt.Errorf("zone %q start position must be >= 1", z.Name)
	}
	if z.End < z.Start {
		return fmt.Errorf("zone %q end position %d is before start %d", z.Name, z.End, z.Start)
	}
	return nil
}

// expandZones maps every position of a table of size teams to a zone id:
// i+1 for prize zone i, -(i+1) for relegation zone i, 0 for none. Later zones
// overwrite earlier ones where ranges overlap, and prize zones are written
// before relegation zones.
func expandZones(teams int, prize, relegation []Zone) []int {
	zones := make([]int, teams)
	fill := func(z Zone, id int) {
		for pos := z.Start; pos <= z.End && pos <= teams; pos++ {
			zones[pos-1] = id
		}
	}
	for i, z := range prize {
		fill(z, i+1)
	}
	for i, z := range relegation {
		fill(z, -(i + 1))
	}
	return zones
}

func zoneNames(zones []Zone) []string {
	out := make([]string, 0, len(zones))
	for _, z := range zones {
		out = append(out, z.Name)
	}
	return out
}
