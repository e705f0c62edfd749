package seed

import (
	"math"
	"strings"
	"testing"

	"homefinder/internal/models"
)

func TestGenerateIsDeterministic(t *testing.T) {
	first := GenerateAll()
	second := GenerateAll()

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Title != b.Title || a.Address != b.Address || a.Price != b.Price {
			t.Fatalf("listing %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestGenerateCount(t *testing.T) {
	got := GenerateAll()
	want := 25 * SlotsPerCity
	if len(got) != want {
		t.Fatalf("len(GenerateAll()) = %d, want %d", len(got), want)
	}
}

func TestGenerateIndexMatchesBatch(t *testing.T) {
	all := GenerateAll()

	for _, i := range []int{0, 1, 19, 20, 47, 250, len(all) - 1} {
		got := Generate(i)
		want := all[i]
		if got.Title != want.Title || got.Address != want.Address ||
			got.City != want.City || got.Price != want.Price ||
			*got.Latitude != *want.Latitude || *got.Longitude != *want.Longitude {
			t.Errorf("Generate(%d) = %+v, want batch element %+v", i, got, want)
		}
		if len(got.Amenities) != len(want.Amenities) {
			t.Errorf("Generate(%d): %d amenities, batch has %d", i, len(got.Amenities), len(want.Amenities))
		}
	}
}

func TestGenerateTypeDistributionPerCity(t *testing.T) {
	all := GenerateAll()

	byCity := make(map[string]map[string]int)
	for _, p := range all {
		if byCity[p.City] == nil {
			byCity[p.City] = make(map[string]int)
		}
		byCity[p.City][string(p.PropertyType)]++
	}

	want := map[string]int{
		"house": 6, "apartment": 4, "condo": 4, "townhouse": 3, "commercial": 2, "land": 1,
	}
	for city, counts := range byCity {
		for typ, n := range want {
			if counts[typ] != n {
				t.Errorf("%s: %s count = %d, want %d", city, typ, counts[typ], n)
			}
		}
	}
	if len(byCity) != 25 {
		t.Errorf("city count = %d, want 25", len(byCity))
	}
}

func TestGeneratePriceRounding(t *testing.T) {
	for _, p := range GenerateAll() {
		switch p.ListingType {
		case models.ListingTypeSale:
			if math.Mod(p.Price, 1000) != 0 {
				t.Errorf("%q: sale price %.0f not a multiple of 1000", p.Title, p.Price)
			}
		case models.ListingTypeRent:
			if math.Mod(p.Price, 50) != 0 {
				t.Errorf("%q: rent price %.0f not a multiple of 50", p.Title, p.Price)
			}
		}
		if p.Price <= 0 {
			t.Errorf("%q: non-positive price %.0f", p.Title, p.Price)
		}
	}
}

func TestGenerateCoordinatesNearCityCenter(t *testing.T) {
	centers := make(map[string][2]float64)
	for _, c := range cities {
		centers[c.Name] = [2]float64{c.Lat, c.Lng}
	}

	for _, p := range GenerateAll() {
		if p.Latitude == nil || p.Longitude == nil {
			t.Fatalf("%q: missing coordinates", p.Title)
		}
		center := centers[p.City]
		if math.Abs(*p.Latitude-center[0]) > 1.2 || math.Abs(*p.Longitude-center[1]) > 1.2 {
			t.Errorf("%q: coordinates (%f, %f) too far from %s center", p.Title, *p.Latitude, *p.Longitude, p.City)
		}
	}
}

func TestGenerateFieldRules(t *testing.T) {
	for _, p := range GenerateAll() {
		if p.Status != models.PropertyStatusActive {
			t.Errorf("%q: status = %s, want active", p.Title, p.Status)
		}
		if !models.ValidPropertyType(string(p.PropertyType)) {
			t.Errorf("%q: invalid property type %s", p.Title, p.PropertyType)
		}
		switch p.PropertyType {
		case models.PropertyTypeLand:
			if p.Bedrooms != nil || p.Bathrooms != nil || p.YearBuilt != nil {
				t.Errorf("%q: land parcel carries dwelling fields", p.Title)
			}
		case models.PropertyTypeCommercial:
			if p.Bedrooms != nil {
				t.Errorf("%q: commercial listing has bedrooms", p.Title)
			}
		case models.PropertyTypeApartment, models.PropertyTypeCondo:
			if !strings.Contains(p.Address, "Unit ") {
				t.Errorf("%q: address %q has no unit number", p.Title, p.Address)
			}
		}
	}
}

func TestGenerateZipFormats(t *testing.T) {
	for _, p := range GenerateAll() {
		if p.Country == "CA" {
			// e.g. "M53 4G1": prefix, digit, space, digit, letter, digit
			if len(p.ZipCode) != 7 || p.ZipCode[3] != ' ' {
				t.Errorf("%q: malformed Canadian postal code %q", p.Title, p.ZipCode)
			}
		} else {
			if len(p.ZipCode) != 5 {
				t.Errorf("%q: malformed US ZIP %q", p.Title, p.ZipCode)
			}
		}
	}
}

func TestGenerateAmenityWindows(t *testing.T) {
	limits := map[models.PropertyType][2]int{
		models.PropertyTypeHouse:      {4, 6},
		models.PropertyTypeApartment:  {3, 5},
		models.PropertyTypeCondo:      {4, 6},
		models.PropertyTypeTownhouse:  {3, 5},
		models.PropertyTypeCommercial: {2, 4},
	}
	for _, p := range GenerateAll() {
		if p.PropertyType == models.PropertyTypeLand {
			if len(p.Amenities) > 1 {
				t.Errorf("%q: land with %d amenities", p.Title, len(p.Amenities))
			}
			continue
		}
		lim := limits[p.PropertyType]
		if len(p.Amenities) < lim[0] || len(p.Amenities) > lim[1] {
			t.Errorf("%q: %d amenities, want %d..%d", p.Title, len(p.Amenities), lim[0], lim[1])
		}
		seen := make(map[string]bool)
		for _, a := range p.Amenities {
			if seen[a] {
				t.Errorf("%q: duplicate amenity %s", p.Title, a)
			}
			seen[a] = true
		}
	}
}

func TestOttawaCurated(t *testing.T) {
	props := Ottawa()
	if len(props) == 0 {
		t.Fatal("empty curated set")
	}
	for _, p := range props {
		if p.City != "Ottawa" || p.Country != "CA" {
			t.Errorf("%q: located in %s, %s", p.Title, p.City, p.Country)
		}
		if p.Status != models.PropertyStatusActive {
			t.Errorf("%q: status = %s", p.Title, p.Status)
		}
		if p.Latitude == nil || p.Longitude == nil {
			t.Errorf("%q: missing coordinates", p.Title)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		45000:   "45,000",
		1234567: "1,234,567",
	}
	for in, want := range cases {
		if got := groupThousands(in); got != want {
			t.Errorf("groupThousands(%d) = %q, want %q", in, got, want)
		}
	}
}
