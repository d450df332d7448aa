package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/reserva-rapida/internal/domain/reservation"
	"github.com/example/reserva-rapida/internal/internaltypes"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if n := len(c.Restaurants()); n != 4 {
		t.Errorf("restaurants = %d, want 4", n)
	}
	res := c.Reservations()
	if len(res) != 2 {
		t.Fatalf("reservations = %d, want 2", len(res))
	}
	if res[0].Status != reservation.StatusConfirmed || res[0].Restaurant.ID != "r1" {
		t.Errorf("res1 = %+v", res[0])
	}
	if res[1].Status != reservation.StatusCompleted || res[1].Restaurant.Name != "La Pasta Bella" {
		t.Errorf("res2 = %+v", res[1])
	}
}

func TestLookups(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	r, err := c.Restaurant("r3")
	if err != nil || r.Name != "Steak House Black" {
		t.Errorf("Restaurant(r3) = %+v, %v", r, err)
	}
	if _, err := c.Restaurant("r99"); !errors.Is(err, internaltypes.ErrNotFound) {
		t.Errorf("Restaurant(r99) error = %v, want ErrNotFound", err)
	}
	if _, err := c.Reservation("nope"); !errors.Is(err, internaltypes.ErrNotFound) {
		t.Errorf("Reservation(nope) error = %v, want ErrNotFound", err)
	}

	list := c.Restaurants()
	list[0].Name = "changed"
	if again, _ := c.Restaurant(list[0].ID); again.Name == "changed" {
		t.Error("Restaurants() exposed internal storage")
	}
}

func TestSearch(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"r1", "r2", "r3", "r4"}},
		{"italian", []string{"r2"}},
		{"steak", []string{"r3"}},
		{"sushi", nil},
	}
	for _, tt := range tests {
		got := c.Search(tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q) = %d results, want %d", tt.query, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i].ID != tt.want[i] {
				t.Errorf("Search(%q)[%d] = %s, want %s", tt.query, i, got[i].ID, tt.want[i])
			}
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "danglingRestaurant",
			doc: `restaurants:
  - id: r1
    name: A
reservations:
  - id: x
    status: confirmed
    restaurant_id: r9
`,
		},
		{
			name: "unknownStatus",
			doc: `restaurants:
  - id: r1
    name: A
reservations:
  - id: x
    status: lost
    restaurant_id: r1
`,
		},
		{
			name: "duplicateID",
			doc: `restaurants:
  - id: r1
    name: A
  - id: r1
    name: B
`,
		},
		{
			name: "notYAML",
			doc:  "restaurants: [",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.doc)); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `restaurants:
  - id: only
    name: Solo
    cuisine: Bistro
reservations: []
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := c.Restaurants(); len(got) != 1 || got[0].Name != "Solo" {
		t.Errorf("Restaurants() = %+v", got)
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Open(missing) expected error")
	}
}
