package database

import (
	"strings"
	"testing"

	"homefinder/internal/search"
)

func TestBuildPropertyWhereDefaults(t *testing.T) {
	where, args := buildPropertyWhere(search.Filters{})
	if where != "WHERE status = 'active'" {
		t.Errorf("where = %q", where)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildPropertyWhereQueryReusesPlaceholder(t *testing.T) {
	where, args := buildPropertyWhere(search.Filters{Query: "victorian"})
	if strings.Count(where, "$1") != 4 {
		t.Errorf("expected $1 used for all four columns, got %q", where)
	}
	if len(args) != 1 || args[0] != "%victorian%" {
		t.Errorf("args = %v", args)
	}
}

func TestBuildPropertyWherePlaceholdersAreSequential(t *testing.T) {
	minPrice := 100000.0
	maxPrice := 500000.0
	beds := 3
	where, args := buildPropertyWhere(search.Filters{
		Query:       "lake",
		ListingType: "sale",
		MinPrice:    &minPrice,
		MaxPrice:    &maxPrice,
		Bedrooms:    &beds,
		City:        "Ottawa",
	})

	for _, want := range []string{
		"$1", "listing_type = $2", "price >= $3", "price <= $4",
		"bedrooms >= $5", "city ILIKE $6",
	} {
		if !strings.Contains(where, want) {
			t.Errorf("where %q missing %q", where, want)
		}
	}
	if len(args) != 6 {
		t.Fatalf("len(args) = %d, want 6", len(args))
	}
	if args[1] != "sale" || args[2] != minPrice || args[5] != "%Ottawa%" {
		t.Errorf("args out of order: %v", args)
	}
}

func TestBuildPropertyWhereCityStateSubstring(t *testing.T) {
	where, args := buildPropertyWhere(search.Filters{City: "Ott", State: "Ont"})

	if !strings.Contains(where, "city ILIKE $1") || !strings.Contains(where, "state ILIKE $2") {
		t.Errorf("where = %q, want ILIKE clauses", where)
	}
	if len(args) != 2 || args[0] != "%Ott%" || args[1] != "%Ont%" {
		t.Errorf("args = %v, want wrapped patterns", args)
	}
}

func TestBuildPropertyWhereAmenities(t *testing.T) {
	where, args := buildPropertyWhere(search.Filters{Amenities: []string{"Pool", "Garage"}})

	if !strings.Contains(where, "amenity IN ($1, $2)") {
		t.Errorf("where = %q", where)
	}
	if !strings.Contains(where, "HAVING COUNT(DISTINCT amenity) = $3") {
		t.Errorf("where = %q", where)
	}
	if len(args) != 3 || args[0] != "Pool" || args[1] != "Garage" || args[2] != 2 {
		t.Errorf("args = %v", args)
	}
}

func TestBuildOwnerWhereSkipsStatusConstraint(t *testing.T) {
	minPrice := 250000.0
	where, args := buildOwnerWhere("owner-1", search.Filters{MinPrice: &minPrice})

	if strings.Contains(where, "status") {
		t.Errorf("where = %q, owner views must include every status", where)
	}
	if !strings.Contains(where, "owner_id = $1") || !strings.Contains(where, "price >= $2") {
		t.Errorf("where = %q", where)
	}
	if len(args) != 2 || args[0] != "owner-1" || args[1] != minPrice {
		t.Errorf("args = %v", args)
	}
}

func TestBuildPropertyWhereBounds(t *testing.T) {
	where, args := buildPropertyWhere(search.Filters{
		Bounds: &search.Bounds{North: 46, South: 45, East: -75, West: -76},
	})

	if !strings.Contains(where, "latitude IS NOT NULL AND longitude IS NOT NULL") {
		t.Errorf("where = %q, want null guard", where)
	}
	wantArgs := []interface{}{45.0, 46.0, -76.0, -75.0}
	if len(args) != len(wantArgs) {
		t.Fatalf("len(args) = %d, want %d", len(args), len(wantArgs))
	}
	for i, w := range wantArgs {
		if args[i] != w {
			t.Errorf("args[%d] = %v, want %v", i, args[i], w)
		}
	}
}
