// Package seed produces listing fixtures: a deterministic generator that
// covers 25 North American metro areas, plus a hand-curated Ottawa set.
package seed

import (
	"fmt"
	"math"

	"homefinder/internal/models"
)

// pick derives a value in [min, max] from an index. Same index, same value.
func pick(index, min, max int) int {
	return min + index%(max-min+1)
}

func pickFrom[T any](arr []T, index int) T {
	return arr[index%len(arr)]
}

func roundHalf(n float64) float64 {
	return math.Round(n*2) / 2
}

// coordOffsets spreads listings around a city center in a fixed pattern so
// that no two slots in a city land on the same point.
var coordOffsets = []float64{
	-0.035, 0.028, -0.015, 0.032, -0.008, 0.022, -0.030, 0.012,
	-0.025, 0.018, -0.003, 0.037, -0.020, 0.005, -0.012, 0.029,
	-0.038, 0.015, -0.006, 0.025,
}

func coordOffset(index int, spread float64) float64 {
	return coordOffsets[index%len(coordOffsets)] * (spread / 0.035)
}

// listingPrice walks a 20-step ladder between the type's price band, scales
// by the city multiplier, then rounds sales to the nearest 1000 and rents to
// the nearest 50.
func listingPrice(propertyType, listingType string, multiplier float64, index int) float64 {
	var min, max float64
	switch {
	case propertyType == "house" && listingType == "sale":
		min, max = 350000, 1200000
	case propertyType == "house" && listingType == "rent":
		min, max = 2000, 5000
	case propertyType == "apartment" && listingType == "rent":
		min, max = 1200, 3500
	case propertyType == "apartment" && listingType == "sale":
		min, max = 200000, 500000
	case propertyType == "condo" && listingType == "sale":
		min, max = 250000, 700000
	case propertyType == "condo" && listingType == "rent":
		min, max = 1500, 3500
	case propertyType == "townhouse" && listingType == "sale":
		min, max = 300000, 800000
	case propertyType == "townhouse" && listingType == "rent":
		min, max = 1800, 4000
	case propertyType == "commercial" && listingType == "sale":
		min, max = 500000, 3000000
	case propertyType == "commercial" && listingType == "rent":
		min, max = 3000, 12000
	case propertyType == "land" && listingType == "sale":
		min, max = 80000, 500000
	default:
		min, max = 100000, 500000
	}

	step := (max - min) / 19
	raw := min + step*float64(index%20)
	price := math.Round(raw * multiplier)

	if listingType == "sale" {
		return math.Round(price/1000) * 1000
	}
	return math.Round(price/50) * 50
}

type propertyDetails struct {
	Bedrooms      *int
	Bathrooms     *float64
	Sqft          int
	LotSize       *int
	YearBuilt     *int
	ParkingSpaces int
}

func detailsFor(propertyType string, index int) propertyDetails {
	switch propertyType {
	case "house":
		bed := pick(index, 2, 6)
		bath := roundHalf(float64(pick(index+3, 2, 8)) / 2)
		sqft := pick(index+1, 0, 10)*330 + 1200
		lot := pick(index+2, 0, 12)*1000 + 2000
		year := pick(index+4, 1920, 2025)
		park := pick(index+5, 1, 3)
		return propertyDetails{Bedrooms: &bed, Bathrooms: &bath, Sqft: sqft, LotSize: &lot, YearBuilt: &year, ParkingSpaces: park}
	case "apartment":
		bed := pick(index, 0, 3)
		bath := float64(pick(index+1, 1, 2))
		sqft := pick(index+2, 0, 10)*110 + 400
		year := pick(index+3, 1960, 2024)
		park := pick(index+4, 0, 1)
		return propertyDetails{Bedrooms: &bed, Bathrooms: &bath, Sqft: sqft, YearBuilt: &year, ParkingSpaces: park}
	case "condo":
		bed := pick(index, 1, 3)
		bath := roundHalf(float64(pick(index+1, 2, 5)) / 2)
		sqft := pick(index+2, 0, 13)*100 + 600
		year := pick(index+3, 2000, 2025)
		return propertyDetails{Bedrooms: &bed, Bathrooms: &bath, Sqft: sqft, YearBuilt: &year, ParkingSpaces: 1}
	case "townhouse":
		bed := pick(index, 2, 4)
		bath := roundHalf(float64(pick(index+1, 3, 7)) / 2)
		sqft := pick(index+2, 0, 14)*100 + 1000
		lot := pick(index+3, 0, 10)*200 + 1000
		year := pick(index+4, 1980, 2024)
		park := pick(index+5, 1, 2)
		return propertyDetails{Bedrooms: &bed, Bathrooms: &bath, Sqft: sqft, LotSize: &lot, YearBuilt: &year, ParkingSpaces: park}
	case "commercial":
		bath := float64(pick(index, 1, 4))
		sqft := pick(index+1, 0, 7)*500 + 1000
		year := pick(index+2, 1990, 2023)
		park := pick(index+3, 3, 10)
		return propertyDetails{Bathrooms: &bath, Sqft: sqft, YearBuilt: &year, ParkingSpaces: park}
	case "land":
		lot := pick(index, 0, 8)*5000 + 5000
		return propertyDetails{Sqft: lot, LotSize: &lot}
	default:
		return propertyDetails{}
	}
}

// canadianPostalLetters excludes letters that never appear in a Canadian
// postal code.
const canadianPostalLetters = "ABCEGHJKLMNPRSTVWXYZ"

func zipCode(city cityData, index int) string {
	if city.Country == "CA" {
		d1 := index % 10
		l1 := canadianPostalLetters[(index*3+7)%len(canadianPostalLetters)]
		d2 := (index*2 + 3) % 10
		return fmt.Sprintf("%s%d %d%c%d", city.ZipPrefix, d1, d2, l1, (index+1)%10)
	}
	return fmt.Sprintf("%s%02d", city.ZipPrefix, (index*7+13)%100)
}

func streetAddress(propertyType string, streets []string, index, globalIndex int) string {
	street := pickFrom(streets, index+globalIndex)
	number := (globalIndex*137+index*41+23)%9900 + 100
	base := fmt.Sprintf("%d %s", number, street)

	if propertyType == "apartment" || propertyType == "condo" {
		floor := (index*3+globalIndex)%20 + 1
		unit := (index+globalIndex*2)%12 + 1
		if floor > 5 {
			return fmt.Sprintf("%s Unit %d%c", base, floor, byte('A'+unit%6))
		}
		return fmt.Sprintf("%s Unit %d", base, unit)
	}
	return base
}

func listingTitle(propertyType string, bedrooms *int, hood string, index int) string {
	bedOr := func(fallback int) int {
		if bedrooms != nil {
			return *bedrooms
		}
		return fallback
	}
	switch propertyType {
	case "house":
		return pickFrom(houseTitles, index)(bedOr(3), hood)
	case "apartment":
		return pickFrom(apartmentTitles, index)(bedOr(1), hood)
	case "condo":
		return pickFrom(condoTitles, index)(bedOr(2), hood)
	case "townhouse":
		return pickFrom(townhouseTitles, index)(bedOr(3), hood)
	case "commercial":
		return pickFrom(commercialTitles, index)(hood)
	case "land":
		return pickFrom(landTitles, index)(hood)
	default:
		return fmt.Sprintf("Property in %s", hood)
	}
}

func listingDescription(propertyType string, details propertyDetails, hood, city string, index int) string {
	bedOr := func(fallback int) int {
		if details.Bedrooms != nil {
			return *details.Bedrooms
		}
		return fallback
	}
	switch propertyType {
	case "house":
		return pickFrom(houseDescs, index)(bedOr(3), hood, city)
	case "apartment":
		return pickFrom(apartmentDescs, index)(bedOr(1), hood, city)
	case "condo":
		return pickFrom(condoDescs, index)(bedOr(2), hood, city)
	case "townhouse":
		return pickFrom(townhouseDescs, index)(bedOr(3), hood, city)
	case "commercial":
		return pickFrom(commercialDescs, index)(details.Sqft, hood, city)
	case "land":
		lot := details.Sqft
		if details.LotSize != nil {
			lot = *details.LotSize
		}
		return pickFrom(landDescs, index)(lot, hood, city)
	default:
		return fmt.Sprintf("A wonderful property in %s, %s.", hood, city)
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// Generate derives one listing from its position in the continental fixture
// set. Every field is a function of the index alone, so listing i is
// byte-identical whether produced here or inside a GenerateAll batch.
func Generate(globalIndex int) models.Property {
	cityIdx := globalIndex / SlotsPerCity
	slotIdx := globalIndex % SlotsPerCity
	city := cities[cityIdx]
	slot := propertySlots[slotIdx]

	hood := pickFrom(city.Neighborhoods, slotIdx+cityIdx*3)
	details := detailsFor(slot.Type, globalIndex)

	lat := round4(city.Lat + coordOffset(slotIdx, 1.0))
	lng := round4(city.Lng + coordOffset((slotIdx+7)%20, 1.0))

	price := listingPrice(slot.Type, slot.ListingType, city.PriceMultiplier, globalIndex)
	sqft := details.Sqft

	return models.Property{
		Title:         listingTitle(slot.Type, details.Bedrooms, hood, globalIndex),
		Description:   listingDescription(slot.Type, details, hood, city.Name, globalIndex),
		PropertyType:  models.PropertyType(slot.Type),
		ListingType:   models.ListingType(slot.ListingType),
		Status:        models.PropertyStatusActive,
		Price:         price,
		Address:       streetAddress(slot.Type, city.Streets, slotIdx, globalIndex),
		City:          city.Name,
		State:         city.State,
		ZipCode:       zipCode(city, slotIdx),
		Country:       city.Country,
		Latitude:      &lat,
		Longitude:     &lng,
		Bedrooms:      details.Bedrooms,
		Bathrooms:     details.Bathrooms,
		Sqft:          &sqft,
		LotSize:       details.LotSize,
		YearBuilt:     details.YearBuilt,
		ParkingSpaces: &details.ParkingSpaces,
		Amenities:     amenitiesFor(slot.Type, globalIndex),
	}
}

// CityCount is the number of metro areas in the fixture tables.
func CityCount() int { return len(cities) }

// GenerateCities returns listings for the first n cities in table order,
// 20 per city. n is clamped to the table size.
func GenerateCities(n int) []models.Property {
	if n < 1 {
		n = 1
	}
	if n > len(cities) {
		n = len(cities)
	}
	properties := make([]models.Property, 0, n*SlotsPerCity)
	for i := 0; i < n*SlotsPerCity; i++ {
		properties = append(properties, Generate(i))
	}
	return properties
}

// GenerateAll returns the full continental fixture set, 20 listings for each
// of the 25 cities in a fixed order.
func GenerateAll() []models.Property {
	return GenerateCities(len(cities))
}
