package search

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"homefinder/internal/models"
)

const (
	// DefaultLimit is the page size when the request does not specify one.
	DefaultLimit = 12
	// MaxLimit caps the page size for list search.
	MaxLimit = 100
	// MapResultLimit caps results for map-bounds queries, which render
	// markers instead of paginated cards.
	MapResultLimit = 100
)

// Bounds is a map-viewport bounding box. Latitude must fall within
// [South, North] and longitude within [West, East].
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Filters is the typed representation of all search criteria. A nil/zero
// field imposes no constraint. All dimensions combine conjunctively except
// Query, which matches if the text appears in any of title, description,
// address or city.
type Filters struct {
	Query        string
	ListingType  string
	PropertyType string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	Bathrooms    *int
	MinSqft      *int
	MaxSqft      *int
	City         string
	State        string
	Amenities    []string
	Bounds       *Bounds
	Sort         string
	Page         int
	Limit        int
	// Featured, when > 0, ignores every other filter and returns the N
	// most recently created active properties with no page metadata.
	Featured int
}

// ValidationError reports a malformed request parameter. Malformed input is
// rejected, never silently coerced or dropped.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ParseFilters builds Filters from request query parameters with strict
// validation. Unknown enum values and non-numeric numerics are errors; a
// bounding box must supply all four of north/south/east/west.
func ParseFilters(values url.Values) (Filters, error) {
	f := Filters{
		Sort:  "newest",
		Page:  1,
		Limit: DefaultLimit,
	}

	f.Query = strings.TrimSpace(values.Get("query"))
	f.City = strings.TrimSpace(values.Get("city"))
	f.State = strings.TrimSpace(values.Get("state"))

	if v := values.Get("listing_type"); v != "" {
		if !models.ValidListingType(v) {
			return f, invalid("listing_type", fmt.Sprintf("unknown value %q", v))
		}
		f.ListingType = v
	}
	if v := values.Get("property_type"); v != "" {
		if !models.ValidPropertyType(v) {
			return f, invalid("property_type", fmt.Sprintf("unknown value %q", v))
		}
		f.PropertyType = v
	}

	var err error
	if f.MinPrice, err = parseFloatParam(values, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parseFloatParam(values, "max_price"); err != nil {
		return f, err
	}
	if f.Bedrooms, err = parseIntParam(values, "bedrooms"); err != nil {
		return f, err
	}
	if f.Bathrooms, err = parseIntParam(values, "bathrooms"); err != nil {
		return f, err
	}
	if f.MinSqft, err = parseIntParam(values, "min_sqft"); err != nil {
		return f, err
	}
	if f.MaxSqft, err = parseIntParam(values, "max_sqft"); err != nil {
		return f, err
	}

	f.Amenities = parseAmenities(values["amenities"])

	if f.Bounds, err = parseBounds(values); err != nil {
		return f, err
	}

	if v := values.Get("sort"); v != "" {
		switch v {
		case "newest", "oldest", "price_asc", "price_desc":
			f.Sort = v
		default:
			return f, invalid("sort", fmt.Sprintf("unknown value %q", v))
		}
	}

	if v := values.Get("page"); v != "" {
		page, convErr := strconv.Atoi(v)
		if convErr != nil {
			return f, invalid("page", "must be an integer")
		}
		// Clamp rather than reject: page 0 and negatives mean page 1.
		if page < 1 {
			page = 1
		}
		f.Page = page
	}

	if v := values.Get("limit"); v != "" {
		limit, convErr := strconv.Atoi(v)
		if convErr != nil {
			return f, invalid("limit", "must be an integer")
		}
		if limit < 1 {
			limit = DefaultLimit
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
		f.Limit = limit
	}

	if v := values.Get("featured"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 1 {
			return f, invalid("featured", "must be a positive integer")
		}
		f.Featured = n
	}

	return f, nil
}

// Offset converts the 1-indexed page into a row offset.
func (f *Filters) Offset() int {
	return (f.Page - 1) * f.Limit
}

// HasBounds reports whether a complete bounding box was supplied.
func (f *Filters) HasBounds() bool {
	return f.Bounds != nil
}

// TotalPages computes the page count for a result total.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// Page is one window of search results plus pagination metadata.
type Page struct {
	Data       []models.Property `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// FeaturedResult is the reduced response shape for featured mode: a flat
// list with no page metadata.
type FeaturedResult struct {
	Data  []models.Property `json:"data"`
	Total int64             `json:"total"`
}

func parseFloatParam(values url.Values, key string) (*float64, error) {
	v := values.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, invalid(key, "must be a number")
	}
	return &n, nil
}

func parseIntParam(values url.Values, key string) (*int, error) {
	v := values.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, invalid(key, "must be an integer")
	}
	if n < 0 {
		return nil, invalid(key, "must not be negative")
	}
	return &n, nil
}

// parseAmenities accepts repeated amenities params and comma-separated
// values, deduplicating while preserving order.
func parseAmenities(raw []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, entry := range raw {
		for _, a := range strings.Split(entry, ",") {
			a = strings.TrimSpace(a)
			if a == "" || seen[a] {
				continue
			}
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}

func parseBounds(values url.Values) (*Bounds, error) {
	keys := []string{"north", "south", "east", "west"}
	present := 0
	for _, k := range keys {
		if values.Get(k) != "" {
			present++
		}
	}
	if present == 0 {
		return nil, nil
	}
	if present < len(keys) {
		return nil, invalid("bounds", "north, south, east and west must all be provided")
	}

	b := &Bounds{}
	for k, dst := range map[string]*float64{
		"north": &b.North, "south": &b.South, "east": &b.East, "west": &b.West,
	} {
		n, err := strconv.ParseFloat(values.Get(k), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, invalid(k, "must be a number")
		}
		*dst = n
	}
	return b, nil
}
