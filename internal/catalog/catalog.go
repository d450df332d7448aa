package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/example/reserva-rapida/internal/domain/reservation"
	"github.com/example/reserva-rapida/internal/domain/restaurant"
	"github.com/example/reserva-rapida/internal/internaltypes"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultYAML []byte

// Catalog is the static, read-only dataset behind every screen.
type Catalog struct {
	restaurants  []restaurant.Restaurant
	reservations []reservation.Reservation
}

type document struct {
	Restaurants  []restaurant.Restaurant `yaml:"restaurants"`
	Reservations []reservationRecord     `yaml:"reservations"`
}

type reservationRecord struct {
	ID           string `yaml:"id"`
	Protocol     string `yaml:"protocol"`
	Date         string `yaml:"date"`
	Time         string `yaml:"time"`
	PartySize    int    `yaml:"party_size"`
	Status       string `yaml:"status"`
	RestaurantID string `yaml:"restaurant_id"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultYAML))
}

// Open loads the catalog from path, or the built-in one when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	c := &Catalog{restaurants: doc.Restaurants}
	seen := make(map[string]bool, len(doc.Restaurants))
	for _, rest := range doc.Restaurants {
		if rest.ID == "" {
			return nil, fmt.Errorf("catalog: restaurant %q has no id", rest.Name)
		}
		if seen[rest.ID] {
			return nil, fmt.Errorf("catalog: duplicate restaurant id %q", rest.ID)
		}
		seen[rest.ID] = true
	}

	for _, rec := range doc.Reservations {
		st, err := reservation.ParseStatus(rec.Status)
		if err != nil {
			return nil, fmt.Errorf("catalog: reservation %s: %w", rec.ID, err)
		}
		rest, err := c.Restaurant(rec.RestaurantID)
		if err != nil {
			return nil, fmt.Errorf("catalog: reservation %s: restaurant %q: %w", rec.ID, rec.RestaurantID, err)
		}
		c.reservations = append(c.reservations, reservation.Reservation{
			ID:         rec.ID,
			Protocol:   rec.Protocol,
			Date:       rec.Date,
			Time:       rec.Time,
			PartySize:  rec.PartySize,
			Status:     st,
			Restaurant: rest,
		})
	}
	return c, nil
}

func (c *Catalog) Restaurants() []restaurant.Restaurant {
	out := make([]restaurant.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out
}

func (c *Catalog) Reservations() []reservation.Reservation {
	out := make([]reservation.Reservation, len(c.reservations))
	copy(out, c.reservations)
	return out
}

// Restaurant looks a restaurant up by id.
func (c *Catalog) Restaurant(id string) (restaurant.Restaurant, error) {
	for _, r := range c.restaurants {
		if r.ID == id {
			return r, nil
		}
	}
	return restaurant.Restaurant{}, internaltypes.ErrNotFound
}

func (c *Catalog) Reservation(id string) (reservation.Reservation, error) {
	for _, r := range c.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return reservation.Reservation{}, internaltypes.ErrNotFound
}

// Search filters restaurants by name or cuisine, keeping catalog order.
func (c *Catalog) Search(query string) []restaurant.Restaurant {
	out := []restaurant.Restaurant{}
	for _, r := range c.restaurants {
		if r.Matches(query) {
			out = append(out, r)
		}
	}
	return out
}
