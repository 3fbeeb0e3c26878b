package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Catalog is an immutable, ordered snapshot of places loaded once per process.
type Catalog struct {
	places  []Place
	byName  map[string]int
	byCity  map[string][]int
	cities  []string
	stateOf map[string]string
}

// NewCatalog validates the rows and indexes them by name and city.
// Catalog order is preserved and used as the deterministic tie-breaker.
func NewCatalog(places []Place) (*Catalog, error) {
	if len(places) == 0 {
		return nil, errors.New("new catalog: no places")
	}

	c := &Catalog{
		places:  make([]Place, 0, len(places)),
		byName:  make(map[string]int, len(places)),
		byCity:  make(map[string][]int),
		stateOf: make(map[string]string),
	}

	for i, p := range places {
		p.Name = strings.TrimSpace(p.Name)
		p.City = strings.TrimSpace(p.City)
		if p.Name == "" {
			return nil, fmt.Errorf("new catalog: row %d has empty place name", i+1)
		}
		if p.City == "" {
			return nil, fmt.Errorf("new catalog: place %q has empty city", p.Name)
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("new catalog: duplicate place name %q", p.Name)
		}

		p.CatalogIdx = len(c.places)
		c.byName[p.Name] = p.CatalogIdx
		if _, ok := c.byCity[p.City]; !ok {
			c.cities = append(c.cities, p.City)
			c.stateOf[p.City] = p.State
		}
		c.byCity[p.City] = append(c.byCity[p.City], p.CatalogIdx)
		c.places = append(c.places, p)
	}

	return c, nil
}

// Places returns every row in catalog order.
func (c *Catalog) Places() []Place {
	out := make([]Place, len(c.places))
	copy(out, c.places)
	return out
}

// InCity returns the rows of a city in catalog order.
func (c *Catalog) InCity(city string) []Place {
	idx := c.byCity[city]
	out := make([]Place, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.places[i])
	}
	return out
}

func (c *Catalog) HasCity(city string) bool {
	_, ok := c.byCity[city]
	return ok
}

// CityCenter returns the coordinates of the first catalog row of the city,
// used as the representative point for inter-city distances.
func (c *Catalog) CityCenter(city string) (Coordinates, bool) {
	idx, ok := c.byCity[city]
	if !ok || len(idx) == 0 {
		return Coordinates{}, false
	}
	return c.places[idx[0]].Location, true
}

func (c *Catalog) Lookup(name string) (Place, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Place{}, false
	}
	return c.places[i], true
}

// Cities returns city names in order of first appearance.
func (c *Catalog) Cities() []string {
	out := make([]string, len(c.cities))
	copy(out, c.cities)
	return out
}

// CityInfo summarizes one city for browsing.
type CityInfo struct {
	State  string
	City   string
	Places int
}

// CitiesByState lists cities sorted by state then city name.
func (c *Catalog) CitiesByState() []CityInfo {
	out := make([]CityInfo, 0, len(c.cities))
	for _, city := range c.cities {
		out = append(out, CityInfo{State: c.stateOf[city], City: city, Places: len(c.byCity[city])})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		return out[i].City < out[j].City
	})
	return out
}

func (c *Catalog) Len() int { return len(c.places) }
