package database

import (
	"fmt"
	"strings"

	"homefinder/internal/models"
	"homefinder/internal/search"
)

// queryBuilder assembles a parameterized WHERE clause with sequential $n
// placeholders for the PostgreSQL store.
type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{argID: 1}
}

func (qb *queryBuilder) add(format string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(format, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

func (qb *queryBuilder) addRaw(condition string) {
	qb.conditions = append(qb.conditions, condition)
}

func (qb *queryBuilder) next() int {
	id := qb.argID
	qb.argID++
	return id
}

func (qb *queryBuilder) build() (string, []interface{}) {
	if len(qb.conditions) == 0 {
		return "", qb.args
	}
	return "WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

// buildPropertyWhere translates the filter model into SQL for the public
// search surface, which only ever sees active listings. Text search is a
// case-insensitive substring match over title, description, address and
// city; the amenity filter requires every requested tag.
func buildPropertyWhere(f search.Filters) (string, []interface{}) {
	qb := newQueryBuilder()
	qb.addRaw(fmt.Sprintf("status = '%s'", models.PropertyStatusActive))
	applyFilterDimensions(qb, f)
	return qb.build()
}

// buildOwnerWhere scopes to one owner's listings in any status, sharing the
// filter dimensions with the public search.
func buildOwnerWhere(ownerID string, f search.Filters) (string, []interface{}) {
	qb := newQueryBuilder()
	qb.add("owner_id = $%d", ownerID)
	applyFilterDimensions(qb, f)
	return qb.build()
}

func applyFilterDimensions(qb *queryBuilder, f search.Filters) {
	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		id := qb.next()
		qb.addRaw(fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR address ILIKE $%d OR city ILIKE $%d)",
			id, id, id, id))
		qb.args = append(qb.args, pattern)
	}
	if f.ListingType != "" {
		qb.add("listing_type = $%d", f.ListingType)
	}
	if f.PropertyType != "" {
		qb.add("property_type = $%d", f.PropertyType)
	}
	if f.MinPrice != nil {
		qb.add("price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		qb.add("price <= $%d", *f.MaxPrice)
	}
	if f.Bedrooms != nil {
		qb.add("bedrooms >= $%d", *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		qb.add("bathrooms >= $%d", *f.Bathrooms)
	}
	if f.MinSqft != nil {
		qb.add("sqft >= $%d", *f.MinSqft)
	}
	if f.MaxSqft != nil {
		qb.add("sqft <= $%d", *f.MaxSqft)
	}
	if f.City != "" {
		qb.add("city ILIKE $%d", "%"+f.City+"%")
	}
	if f.State != "" {
		qb.add("state ILIKE $%d", "%"+f.State+"%")
	}
	if len(f.Amenities) > 0 {
		placeholders := make([]string, len(f.Amenities))
		for i, a := range f.Amenities {
			placeholders[i] = fmt.Sprintf("$%d", qb.next())
			qb.args = append(qb.args, a)
		}
		countID := qb.next()
		qb.addRaw(fmt.Sprintf(
			"id IN (SELECT property_id FROM property_amenities WHERE amenity IN (%s) GROUP BY property_id HAVING COUNT(DISTINCT amenity) = $%d)",
			strings.Join(placeholders, ", "), countID))
		qb.args = append(qb.args, len(f.Amenities))
	}
	if f.Bounds != nil {
		qb.addRaw("latitude IS NOT NULL AND longitude IS NOT NULL")
		qb.add("latitude >= $%d", f.Bounds.South)
		qb.add("latitude <= $%d", f.Bounds.North)
		qb.add("longitude >= $%d", f.Bounds.West)
		qb.add("longitude <= $%d", f.Bounds.East)
	}
}
