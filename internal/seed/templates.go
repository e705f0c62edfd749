package seed

import (
	"fmt"
	"strconv"
)

// bedLabel renders a bedroom count for apartment copy, where zero bedrooms
// reads as a studio.
func bedLabel(bed int, suffix string) string {
	if bed == 0 {
		return "Studio"
	}
	return strconv.Itoa(bed) + suffix
}

func bedLabelLower(bed int, suffix string) string {
	if bed == 0 {
		return "studio"
	}
	return strconv.Itoa(bed) + suffix
}

// groupThousands formats an integer with comma separators for listing copy.
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

type titleFunc func(bed int, hood string) string

var houseTitles = []titleFunc{
	func(bed int, hood string) string { return fmt.Sprintf("Charming %d-Bedroom Home in %s", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Spacious Family Home in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Renovated Gem in %s", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("Beautiful %d-Bed Residence near %s", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Modern Home with Character in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Stunning %s Property with Garden", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("Classic %d-Bedroom in %s", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Sun-Drenched Home in %s", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("Updated %d-Bed Home in Prime %s", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Move-In Ready Home in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Elegant Residence in %s", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("Lovely %d-Bedroom near %s Park", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Bright and Airy Home in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("%s Colonial with Modern Updates", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("%d-Bed %s Home with Garage", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Turnkey Home in %s", hood) },
}

var apartmentTitles = []titleFunc{
	func(bed int, hood string) string { return fmt.Sprintf("Modern %s in %s", bedLabel(bed, "-Bedroom"), hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Bright Apartment in %s", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("%s Rental Steps from %s", bedLabel(bed, "-Bed"), hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Renovated Unit in the Heart of %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Sunny %s Apartment with Views", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("Spacious %s near %s", bedLabel(bed, "-Bedroom"), hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Updated %s Apartment with Balcony", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Cozy Apartment in %s", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("%s in Prime %s Location", bedLabel(bed, "-Bed"), hood) },
	func(_ int, hood string) string { return fmt.Sprintf("High-Rise Living in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Pet-Friendly Apartment in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("%s Walk-Up with Character", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("Affordable %s in %s", bedLabel(bed, "-Bed"), hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Newly Finished Apartment in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("%s Flat with Modern Finishes", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Contemporary %s Apartment", hood) },
}

var condoTitles = []titleFunc{
	func(bed int, hood string) string { return fmt.Sprintf("Luxury %d-Bed Condo in %s", bed, hood) },
	func(_ int, _ string) string { return "Modern Downtown Condo with City Views" },
	func(_ int, hood string) string { return fmt.Sprintf("Sleek %s Condo with Amenities", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("%d-Bedroom Condo in %s", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Penthouse-Style Living in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Open-Concept Condo in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Corner Unit Condo in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Boutique Condo in %s", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("%d-Bed %s Condo with Parking", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Bright %s Condo Near Transit", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("New Construction Condo in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("%s Loft-Style Condo", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Waterfront Condo in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Top-Floor %s Condo", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("Stunning %d-Bed Condo near %s", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Designer Condo in %s", hood) },
}

var townhouseTitles = []titleFunc{
	func(bed int, hood string) string { return fmt.Sprintf("%d-Bedroom Townhouse in %s", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Modern Townhome in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("End-Unit Townhouse in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Townhome with Garage in %s", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("Spacious %d-Bed Townhouse near %s", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Bright Townhome in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Family Townhouse in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Updated Townhome Steps from %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("%s Row Home with Patio", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("%d-Bed Townhouse near %s Park", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Turnkey Townhome in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Freehold Townhouse in %s", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("%s Townhome with Private Yard", hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Recently Renovated Townhouse in %s", hood) },
	func(bed int, hood string) string { return fmt.Sprintf("Charming %d-Bed Townhome in %s", bed, hood) },
	func(_ int, hood string) string { return fmt.Sprintf("Multi-Level Townhouse in %s", hood) },
}

var commercialTitles = []func(hood string) string{
	func(hood string) string { return fmt.Sprintf("Prime Retail Space in %s", hood) },
	func(hood string) string { return fmt.Sprintf("%s Office Suite with Parking", hood) },
	func(hood string) string { return fmt.Sprintf("Commercial Space in %s", hood) },
	func(hood string) string { return fmt.Sprintf("Versatile %s Commercial Unit", hood) },
	func(hood string) string { return fmt.Sprintf("%s Storefront Opportunity", hood) },
	func(hood string) string { return fmt.Sprintf("Modern Office Space in %s", hood) },
	func(hood string) string { return fmt.Sprintf("Open-Plan Commercial Space in %s", hood) },
	func(hood string) string { return fmt.Sprintf("%s Mixed-Use Commercial", hood) },
	func(hood string) string { return fmt.Sprintf("Professional Office in %s", hood) },
	func(hood string) string { return fmt.Sprintf("High-Visibility %s Space", hood) },
	func(hood string) string { return fmt.Sprintf("%s Business Space for Lease", hood) },
	func(hood string) string { return fmt.Sprintf("%s Commercial Loft", hood) },
	func(hood string) string { return fmt.Sprintf("Turnkey Commercial Unit in %s", hood) },
	func(hood string) string { return fmt.Sprintf("%s Ground-Floor Retail", hood) },
	func(hood string) string { return fmt.Sprintf("Flexible %s Commercial Space", hood) },
	func(hood string) string { return fmt.Sprintf("%s Office with Street Access", hood) },
}

var landTitles = []func(hood string) string{
	func(hood string) string { return fmt.Sprintf("Buildable Lot in %s", hood) },
	func(hood string) string { return fmt.Sprintf("Prime Development Land in %s", hood) },
	func(hood string) string { return fmt.Sprintf("Vacant Lot near %s", hood) },
	func(hood string) string { return fmt.Sprintf("%s Land Opportunity", hood) },
	func(hood string) string { return fmt.Sprintf("Residential Lot in %s", hood) },
	func(hood string) string { return fmt.Sprintf("%s Corner Lot", hood) },
	func(hood string) string { return fmt.Sprintf("Cleared Land in %s", hood) },
	func(hood string) string { return fmt.Sprintf("%s Building Site", hood) },
	func(hood string) string { return fmt.Sprintf("Investment Land near %s", hood) },
	func(hood string) string { return fmt.Sprintf("Flat Lot in %s", hood) },
	func(hood string) string { return fmt.Sprintf("%s Infill Lot", hood) },
	func(hood string) string { return fmt.Sprintf("Scenic Land Parcel in %s", hood) },
	func(hood string) string { return fmt.Sprintf("%s Residential Plot", hood) },
	func(hood string) string { return fmt.Sprintf("Opportunity Lot in %s", hood) },
	func(hood string) string { return fmt.Sprintf("%s Development Parcel", hood) },
	func(hood string) string { return fmt.Sprintf("Rare %s Vacant Land", hood) },
}

type descFunc func(bed int, hood, city string) string

var houseDescs = []descFunc{
	func(bed int, hood, city string) string {
		return fmt.Sprintf("Welcome to this beautifully maintained %d-bedroom home in %s. Featuring hardwood floors, a renovated kitchen, and a spacious backyard perfect for entertaining. A true gem in %s.", bed, hood, city)
	},
	func(bed int, hood, _ string) string {
		return fmt.Sprintf("This charming %d-bedroom residence in %s offers an open-concept layout with modern finishes throughout. Enjoy the private garden and quiet tree-lined street.", bed, hood)
	},
	func(bed int, hood, city string) string {
		return fmt.Sprintf("Set on a generous lot in %s, this %d-bedroom home combines classic architecture with contemporary upgrades. Close to parks, schools, and the best of %s.", hood, bed, city)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Nestled in the heart of %s, this family home features updated bathrooms, a chef's kitchen, and a finished basement. One of %s's most sought-after neighborhoods.", hood, city)
	},
	func(bed int, hood, _ string) string {
		return fmt.Sprintf("Don't miss this stunning %d-bedroom property in %s. Original character blends seamlessly with modern amenities including central air and a two-car garage.", bed, hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("This inviting home in %s has been lovingly updated while preserving its original charm. Enjoy the fireplace, sunroom, and lush garden. Walk to everything %s has to offer.", hood, city)
	},
	func(bed int, hood, _ string) string {
		return fmt.Sprintf("A rare find in %s: this %d-bedroom home features soaring ceilings, abundant natural light, and a wraparound porch. Perfect for families or professionals.", hood, bed)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Located in desirable %s, this home offers move-in-ready living with updated systems, a modern kitchen, and a private backyard oasis. Convenient to all that %s provides.", hood, city)
	},
	func(bed int, hood, _ string) string {
		return fmt.Sprintf("This well-appointed %d-bedroom home in %s features an eat-in kitchen, formal dining room, and a master suite with walk-in closet. Freshly painted throughout.", bed, hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Situated on a quiet street in %s, this turnkey home offers hardwood floors, stainless steel appliances, and a large deck. Minutes from downtown %s.", hood, city)
	},
	func(bed int, hood, _ string) string {
		return fmt.Sprintf("Bright and spacious %d-bedroom home in %s with an updated interior, energy-efficient windows, and a fully fenced yard. Move right in.", bed, hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("This classic %s home has been thoughtfully renovated with a new roof, updated electrical, and a gourmet kitchen. Walking distance to shops and restaurants in %s.", hood, city)
	},
}

var apartmentDescs = []descFunc{
	func(bed int, hood, city string) string {
		return fmt.Sprintf("This %s apartment in %s offers modern living with easy access to transit. Updated kitchen, in-building laundry, and great natural light. Experience the best of %s.", bedLabelLower(bed, "-bedroom"), hood, city)
	},
	func(_ int, hood, _ string) string {
		return fmt.Sprintf("Bright and airy apartment in the heart of %s. Features hardwood floors, a renovated bathroom, and a spacious layout. Steps from shops and restaurants.", hood)
	},
	func(bed int, hood, city string) string {
		return fmt.Sprintf("Enjoy city living in this well-maintained %s in %s. Central air, dedicated parking, and proximity to %s's top attractions make this a standout.", bedLabelLower(bed, "-bedroom"), hood, city)
	},
	func(_ int, hood, _ string) string {
		return fmt.Sprintf("Located in sought-after %s, this apartment features large windows, updated finishes, and plenty of closet space. Pet-friendly building with on-site management.", hood)
	},
	func(bed int, hood, city string) string {
		return fmt.Sprintf("This %s unit in %s combines comfort and convenience. Modern kitchen, balcony with views, and easy access to public transit in %s.", bedLabelLower(bed, "-bedroom"), hood, city)
	},
	func(_ int, hood, _ string) string {
		return fmt.Sprintf("Move into this freshly renovated apartment in %s. New flooring, stainless appliances, and in-unit laundry. A wonderful place to call home.", hood)
	},
	func(bed int, hood, city string) string {
		return fmt.Sprintf("Spacious %s apartment with an open floor plan in %s. Building amenities include a gym and rooftop deck. Central to everything in %s.", bedLabelLower(bed, "-bedroom"), hood, city)
	},
	func(_ int, hood, _ string) string {
		return fmt.Sprintf("This %s apartment is perfect for professionals seeking a quiet retreat. Features include a modern kitchen, ample storage, and a private balcony.", hood)
	},
	func(bed int, hood, _ string) string {
		return fmt.Sprintf("Cozy %s in a well-managed building in %s. Laundry on-site, secure entry, and close to parks and dining.", bedLabelLower(bed, "-bedroom"), hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Enjoy the vibrant energy of %s from this comfortable apartment. Updated interior, great closet space, and walk score that makes %s living a breeze.", hood, city)
	},
	func(bed int, hood, _ string) string {
		return fmt.Sprintf("Affordable %s apartment in %s with modern amenities. Central air, elevator access, and friendly neighbors make this a great find.", bedLabelLower(bed, "-bedroom"), hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("This sunlit apartment in %s features an open kitchen, hardwood floors, and a balcony overlooking the neighborhood. Minutes from downtown %s.", hood, city)
	},
}

var condoDescs = []descFunc{
	func(bed int, hood, city string) string {
		return fmt.Sprintf("This stunning %d-bedroom condo in %s features floor-to-ceiling windows, an open-concept layout, and premium finishes. Building amenities include a gym, pool, and concierge. Live the %s lifestyle.", bed, hood, city)
	},
	func(_ int, hood, _ string) string {
		return fmt.Sprintf("Modern condo living at its finest in %s. Enjoy quartz countertops, hardwood floors, and a private balcony with breathtaking views. Underground parking included.", hood)
	},
	func(bed int, hood, city string) string {
		return fmt.Sprintf("Sleek %d-bedroom condo in the heart of %s. In-suite laundry, smart home features, and top-tier building amenities. Walking distance to the best of %s.", bed, hood, city)
	},
	func(_ int, hood, _ string) string {
		return fmt.Sprintf("Corner unit condo in %s with abundant natural light and panoramic views. Spacious layout, modern kitchen, and a large master bedroom with ensuite.", hood)
	},
	func(bed int, hood, city string) string {
		return fmt.Sprintf("This %d-bedroom condo in %s is perfect for urban living. Open floor plan, gourmet kitchen, and full-service building with gym and rooftop terrace. %s at your doorstep.", bed, hood, city)
	},
	func(_ int, hood, _ string) string {
		return fmt.Sprintf("Immaculate condo in a boutique building in %s. Features include in-unit laundry, central air, and a private storage locker. Move-in ready.", hood)
	},
	func(bed int, hood, city string) string {
		return fmt.Sprintf("Bright and airy %d-bedroom condo in %s. High ceilings, engineered hardwood, and a chef's kitchen with island. One of the best values in %s.", bed, hood, city)
	},
	func(_ int, hood, _ string) string {
		return fmt.Sprintf("Enjoy the best of %s in this beautifully appointed condo. Open living space, spa-like bathroom, and floor-to-ceiling windows. Parking and locker included.", hood)
	},
	func(bed int, hood, _ string) string {
		return fmt.Sprintf("This %d-bedroom condo in %s offers sophisticated urban living. Modern finishes, balcony with views, and access to premium building amenities.", bed, hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Tastefully designed condo in %s with an efficient layout and high-end finishes. Concierge, gym, and excellent transit access in %s.", hood, city)
	},
	func(bed int, hood, _ string) string {
		return fmt.Sprintf("Elegant %d-bedroom condo in a sought-after %s building. Spacious rooms, updated fixtures, and a private terrace for outdoor enjoyment.", bed, hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Loft-style condo in %s with exposed details and industrial charm. Open-concept living, great light, and steps from the energy of %s.", hood, city)
	},
}

var townhouseDescs = []descFunc{
	func(bed int, hood, city string) string {
		return fmt.Sprintf("This %d-bedroom townhouse in %s offers multi-level living with a modern kitchen, private patio, and attached garage. Perfect for families looking for space in %s.", bed, hood, city)
	},
	func(_ int, hood, _ string) string {
		return fmt.Sprintf("Move into this beautifully updated townhome in %s. Open-concept main floor, in-unit laundry, and a fenced backyard. Close to schools and parks.", hood)
	},
	func(bed int, hood, city string) string {
		return fmt.Sprintf("Spacious %d-bedroom end-unit townhouse in %s. Extra windows mean extra light. Modern finishes throughout. Walk to shops and dining in %s.", bed, hood, city)
	},
	func(_ int, hood, _ string) string {
		return fmt.Sprintf("Well-maintained townhome in %s featuring hardwood floors, an updated kitchen, and a private courtyard garden. Garage parking included.", hood)
	},
	func(bed int, hood, city string) string {
		return fmt.Sprintf("This %d-bedroom townhouse in %s combines convenience and comfort. Three levels of living space, a rooftop terrace, and proximity to %s's best neighborhoods.", bed, hood, city)
	},
	func(_ int, hood, _ string) string {
		return fmt.Sprintf("Bright and contemporary townhome in %s with an open layout, quartz counters, and stainless appliances. Private yard and direct-access garage.", hood)
	},
	func(bed int, hood, city string) string {
		return fmt.Sprintf("Family-friendly %d-bedroom townhouse in %s. Features include a finished basement, master ensuite, and a backyard deck. Minutes from downtown %s.", bed, hood, city)
	},
	func(_ int, hood, _ string) string {
		return fmt.Sprintf("Charming townhome on a tree-lined street in %s. Updated systems, cozy fireplace, and a welcoming front porch. A wonderful community.", hood)
	},
	func(bed int, hood, _ string) string {
		return fmt.Sprintf("This %d-bedroom townhome in %s is move-in ready with fresh paint, new flooring, and modern fixtures. Garage and private patio included.", bed, hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Enjoy low-maintenance living in this %s townhouse. Open floor plan, in-suite laundry, and great access to %s transit.", hood, city)
	},
	func(bed int, hood, _ string) string {
		return fmt.Sprintf("Renovated %d-bedroom townhome in %s featuring a chef's kitchen, spa bathroom, and private rooftop deck. A rare find.", bed, hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("This freehold townhouse in %s offers the space of a house with the convenience of condo living. Steps from parks and restaurants in %s.", hood, city)
	},
}

// Commercial and land descriptions take square footage or lot size instead
// of a bedroom count.
var commercialDescs = []func(sqft int, hood, city string) string{
	func(sqft int, hood, city string) string {
		return fmt.Sprintf("Prime %s sqft commercial space in %s. Open floor plan suitable for office, retail, or creative use. High foot traffic location in %s.", groupThousands(sqft), hood, city)
	},
	func(sqft int, hood, _ string) string {
		return fmt.Sprintf("Versatile %s sqft commercial unit in %s. Features include high ceilings, loading access, and ample parking. Ready for tenant improvements.", groupThousands(sqft), hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Professional office space in the heart of %s. Modern build-out with private offices, open workspace, and conference room. One of %s's most desirable business addresses.", hood, city)
	},
	func(sqft int, hood, _ string) string {
		return fmt.Sprintf("Ground-floor retail opportunity in bustling %s. %s sqft with large storefront windows and excellent visibility. Ideal for restaurant or boutique.", hood, groupThousands(sqft))
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("This %s commercial space offers a blank canvas for your business. High ceilings, open layout, and proximity to major transit routes in %s. Parking included.", hood, city)
	},
	func(sqft int, hood, _ string) string {
		return fmt.Sprintf("Move your business to %s with this turnkey %s sqft space. Modern HVAC, security system, and flexible layout for any use.", hood, groupThousands(sqft))
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Established commercial location in %s with excellent street-level access and signage opportunities. A prime %s business address.", hood, city)
	},
	func(sqft int, hood, _ string) string {
		return fmt.Sprintf("Bright and open %s sqft commercial unit in %s. Perfect for co-working, medical office, or professional services. All utilities included.", groupThousands(sqft), hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Invest in this %s commercial property with strong rental potential. Modern systems, elevator access, and central %s location.", hood, city)
	},
	func(sqft int, hood, _ string) string {
		return fmt.Sprintf("Flexible commercial space in %s offering %s sqft of functional workspace. Suitable for tech startup, gallery, or consulting firm.", hood, groupThousands(sqft))
	},
}

var landDescs = []func(lotSize int, hood, city string) string{
	func(lot int, hood, city string) string {
		return fmt.Sprintf("%s sqft buildable lot in %s. Flat, cleared, and ready for construction. Utilities available at the street. An excellent opportunity in %s.", groupThousands(lot), hood, city)
	},
	func(lot int, hood, _ string) string {
		return fmt.Sprintf("Prime %s sqft parcel in desirable %s. Zoned residential with potential for a custom home or small development. Survey available.", groupThousands(lot), hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Rare vacant lot in %s surrounded by established homes. Build your dream residence on this tree-lined street in one of %s's best neighborhoods.", hood, city)
	},
	func(lot int, hood, _ string) string {
		return fmt.Sprintf("Development-ready land in %s. %s sqft with road frontage and all services nearby. Ideal for builders or investors.", hood, groupThousands(lot))
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("This corner lot in %s offers excellent visibility and flexible zoning options. A rare land opportunity in the heart of %s.", hood, city)
	},
	func(lot int, hood, _ string) string {
		return fmt.Sprintf("Invest in the future with this %s sqft lot in up-and-coming %s. Surrounded by new construction and growing demand.", groupThousands(lot), hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Scenic lot in %s with mature trees and gentle topography. Perfect setting for a custom home. Close to parks and amenities in %s.", hood, city)
	},
	func(lot int, hood, _ string) string {
		return fmt.Sprintf("%s sqft of undeveloped land in %s. Excellent drainage, clear title, and ready for permits. Don't miss this opportunity.", groupThousands(lot), hood)
	},
	func(_ int, hood, city string) string {
		return fmt.Sprintf("Spacious lot in %s offering privacy and room to build. Established neighborhood with easy access to highways and downtown %s.", hood, city)
	},
	func(lot int, hood, _ string) string {
		return fmt.Sprintf("Build-ready %s sqft lot in %s. All municipal services available. Architectural plans available upon request.", groupThousands(lot), hood)
	},
}

var houseAmenities = []string{"Garden", "Garage", "Central Air", "Fireplace", "Hardwood Floors", "Pool", "Finished Basement", "Smart Home", "EV Charging", "Security System"}
var apartmentAmenities = []string{"Laundry", "Central Air", "Elevator", "Gym", "Balcony", "Hardwood Floors", "Storage", "Dog Park", "In-Unit Laundry", "Security System"}
var condoAmenities = []string{"Gym", "Pool", "Concierge", "In-Unit Laundry", "Central Air", "Balcony", "Rooftop Terrace", "Smart Home", "EV Charging", "Storage"}
var townhouseAmenities = []string{"Garage", "Garden", "Central Air", "In-Unit Laundry", "Hardwood Floors", "Fireplace", "Finished Basement", "Smart Home", "Storage", "Balcony"}
var commercialAmenities = []string{"Central Air", "Security System", "Elevator", "Storage", "EV Charging", "Smart Home"}

// amenitiesFor selects a contiguous window from the type's pool, wrapping
// around the end. Land parcels carry no amenities except an occasional
// waterfront flag.
func amenitiesFor(propertyType string, index int) []string {
	var pool []string
	var count int
	switch propertyType {
	case "house":
		pool, count = houseAmenities, 4+index%3
	case "apartment":
		pool, count = apartmentAmenities, 3+index%3
	case "condo":
		pool, count = condoAmenities, 4+index%3
	case "townhouse":
		pool, count = townhouseAmenities, 3+index%3
	case "commercial":
		pool, count = commercialAmenities, 2+index%3
	case "land":
		if index%5 == 0 {
			return []string{"Waterfront"}
		}
		return nil
	default:
		return nil
	}
	start := index % len(pool)
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, pool[(start+i)%len(pool)])
	}
	return out
}
