package seed

import "homefinder/internal/models"

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

type curatedEntry struct {
	Title         string
	Description   string
	PropertyType  models.PropertyType
	ListingType   models.ListingType
	Price         float64
	Address       string
	ZipCode       string
	Lat           float64
	Lng           float64
	Bedrooms      *int
	Bathrooms     *float64
	Sqft          int
	LotSize       *int
	YearBuilt     *int
	ParkingSpaces int
	Amenities     []string
}

// ottawaEntries is a hand-picked demo set spanning Ottawa's neighbourhoods
// and every property type.
var ottawaEntries = []curatedEntry{
	{
		Title:        "Charming Victorian in The Glebe",
		Description:  "Beautifully restored 3-storey Victorian home on a tree-lined street in the heart of The Glebe. Original hardwood floors, modern kitchen with quartz countertops, and a private backyard garden. Steps from Lansdowne Park and the Rideau Canal.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 1250000,
		Address: "142 Fifth Avenue", ZipCode: "K1S 2M8", Lat: 45.3965, Lng: -75.6910,
		Bedrooms: ip(4), Bathrooms: fp(2.5), Sqft: 2400, LotSize: ip(3200), YearBuilt: ip(1912), ParkingSpaces: 1,
		Amenities: []string{"Garden", "Hardwood Floors", "Fireplace", "Central Air"},
	},
	{
		Title:        "Modern Glebe Townhome",
		Description:  "Sleek 3-bedroom townhome with rooftop terrace and attached garage. Open-concept main floor, chef's kitchen with island, and floor-to-ceiling windows. Walk to Bank Street shops and restaurants.",
		PropertyType: models.PropertyTypeTownhouse, ListingType: models.ListingTypeSale, Price: 875000,
		Address: "38 Holmwood Avenue", ZipCode: "K1S 2P5", Lat: 45.3980, Lng: -75.6880,
		Bedrooms: ip(3), Bathrooms: fp(2), Sqft: 1800, LotSize: ip(1500), YearBuilt: ip(2019), ParkingSpaces: 1,
		Amenities: []string{"Garage", "Central Air", "Rooftop Terrace", "In-Unit Laundry"},
	},
	{
		Title:        "Westboro Waterfront Condo",
		Description:  "Stunning 2-bedroom condo overlooking the Ottawa River. Floor-to-ceiling windows, open-concept living, in-suite laundry, and underground parking. Walk to Westboro Beach and the vibrant village shops.",
		PropertyType: models.PropertyTypeCondo, ListingType: models.ListingTypeSale, Price: 625000,
		Address: "500 Richmond Road Unit 1204", ZipCode: "K2A 0E8", Lat: 45.3876, Lng: -75.7540,
		Bedrooms: ip(2), Bathrooms: fp(2), Sqft: 1100, YearBuilt: ip(2021), ParkingSpaces: 1,
		Amenities: []string{"Gym", "Pool", "Concierge", "In-Unit Laundry", "Central Air"},
	},
	{
		Title:        "Cozy Westboro Bungalow",
		Description:  "Completely renovated bungalow on a quiet crescent. New kitchen, updated bathrooms, finished basement with rec room. Large fenced yard perfect for families. Minutes from Westboro Village.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 785000,
		Address: "27 Dorian Crescent", ZipCode: "K2A 1B5", Lat: 45.3850, Lng: -75.7610,
		Bedrooms: ip(3), Bathrooms: fp(2), Sqft: 1600, LotSize: ip(5500), YearBuilt: ip(1958), ParkingSpaces: 2,
		Amenities: []string{"Garden", "Central Air", "Fireplace", "Finished Basement"},
	},
	{
		Title:        "Westboro Village Rental",
		Description:  "Bright 1-bedroom apartment in the heart of Westboro Village. Hardwood floors, updated kitchen, in-building laundry. Steps from shops, restaurants, and the Transitway.",
		PropertyType: models.PropertyTypeApartment, ListingType: models.ListingTypeRent, Price: 1850,
		Address: "352 Richmond Road Unit 3", ZipCode: "K2A 0E7", Lat: 45.3870, Lng: -75.7500,
		Bedrooms: ip(1), Bathrooms: fp(1), Sqft: 650, YearBuilt: ip(2005), ParkingSpaces: 0,
		Amenities: []string{"Hardwood Floors", "Laundry", "Central Air"},
	},
	{
		Title:        "Luxury Penthouse in Centretown",
		Description:  "Expansive 2-level penthouse with panoramic views of Parliament Hill and the Ottawa skyline. Private elevator, chef's kitchen, 3 bedrooms, home office, and wraparound terrace. Full concierge building.",
		PropertyType: models.PropertyTypeCondo, ListingType: models.ListingTypeSale, Price: 1850000,
		Address: "234 Laurier Avenue West PH1", ZipCode: "K1P 5J6", Lat: 45.4200, Lng: -75.6950,
		Bedrooms: ip(3), Bathrooms: fp(3), Sqft: 2800, YearBuilt: ip(2020), ParkingSpaces: 2,
		Amenities: []string{"Concierge", "Gym", "Pool", "Rooftop Terrace", "Central Air", "In-Unit Laundry"},
	},
	{
		Title:        "Centretown Brownstone Apartment",
		Description:  "Charming 2-bedroom in a classic Centretown brownstone. High ceilings, crown moulding, exposed brick accent wall. Walk to Elgin Street and the canal.",
		PropertyType: models.PropertyTypeApartment, ListingType: models.ListingTypeRent, Price: 2200,
		Address: "185 MacLaren Street Unit 2", ZipCode: "K2P 0L5", Lat: 45.4175, Lng: -75.6920,
		Bedrooms: ip(2), Bathrooms: fp(1), Sqft: 900, YearBuilt: ip(1920), ParkingSpaces: 0,
		Amenities: []string{"Hardwood Floors", "Fireplace", "In-Unit Laundry"},
	},
	{
		Title:        "Modern Studio near Parliament",
		Description:  "Sleek studio apartment in a modern high-rise. Murphy bed, built-in storage, floor-to-ceiling windows with city views. Perfect for professionals. All utilities included.",
		PropertyType: models.PropertyTypeApartment, ListingType: models.ListingTypeRent, Price: 1650,
		Address: "150 Metcalfe Street Unit 808", ZipCode: "K2P 1P1", Lat: 45.4190, Lng: -75.6935,
		Bedrooms: ip(0), Bathrooms: fp(1), Sqft: 480, YearBuilt: ip(2022), ParkingSpaces: 0,
		Amenities: []string{"Gym", "Concierge", "Central Air", "In-Unit Laundry"},
	},
	{
		Title:        "Loft-Style Condo in ByWard Market",
		Description:  "Industrial-chic loft with 14-foot ceilings, exposed ductwork, polished concrete floors, and oversized windows. Open-concept living in Ottawa's most vibrant neighbourhood.",
		PropertyType: models.PropertyTypeCondo, ListingType: models.ListingTypeSale, Price: 545000,
		Address: "55 By Ward Market Square Unit 402", ZipCode: "K1N 9C3", Lat: 45.4275, Lng: -75.6925,
		Bedrooms: ip(1), Bathrooms: fp(1), Sqft: 850, YearBuilt: ip(2018), ParkingSpaces: 1,
		Amenities: []string{"Gym", "Rooftop Terrace", "In-Unit Laundry", "Central Air"},
	},
	{
		Title:        "Heritage Lowertown Row House",
		Description:  "Lovingly restored heritage row house in Lowertown. 3 bedrooms, original wood detailing, updated systems, private courtyard garden. Walk to ByWard Market and the Rideau Centre.",
		PropertyType: models.PropertyTypeTownhouse, ListingType: models.ListingTypeSale, Price: 695000,
		Address: "280 St. Patrick Street", ZipCode: "K1N 5K5", Lat: 45.4310, Lng: -75.6870,
		Bedrooms: ip(3), Bathrooms: fp(1.5), Sqft: 1400, LotSize: ip(1200), YearBuilt: ip(1890), ParkingSpaces: 0,
		Amenities: []string{"Garden", "Hardwood Floors", "Fireplace"},
	},
	{
		Title:        "Spacious Sandy Hill Family Home",
		Description:  "Grand 5-bedroom home near the University of Ottawa. Original character with modern updates. Large living and dining rooms, finished basement, and mature trees on a generous lot.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 1100000,
		Address: "85 Blackburn Avenue", ZipCode: "K1N 8A5", Lat: 45.4220, Lng: -75.6780,
		Bedrooms: ip(5), Bathrooms: fp(3), Sqft: 3200, LotSize: ip(4800), YearBuilt: ip(1905), ParkingSpaces: 2,
		Amenities: []string{"Garden", "Hardwood Floors", "Fireplace", "Finished Basement", "Central Air"},
	},
	{
		Title:        "Sandy Hill Student-Friendly Rental",
		Description:  "Clean and bright 3-bedroom upper unit near uOttawa campus. Includes heat and water. Laundry in building. Perfect for students or young professionals.",
		PropertyType: models.PropertyTypeApartment, ListingType: models.ListingTypeRent, Price: 2400,
		Address: "210 Henderson Avenue Unit B", ZipCode: "K1N 7P2", Lat: 45.4235, Lng: -75.6760,
		Bedrooms: ip(3), Bathrooms: fp(1), Sqft: 1050, YearBuilt: ip(1965), ParkingSpaces: 0,
		Amenities: []string{"Laundry", "Hardwood Floors"},
	},
	{
		Title:        "Elegant New Edinburgh Estate",
		Description:  "Stately 4-bedroom home overlooking the Rideau River. Chef's kitchen, formal dining, library, and landscaped grounds with river access. One of Ottawa's most prestigious addresses.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 2400000,
		Address: "10 Alexander Street", ZipCode: "K1N 9H4", Lat: 45.4380, Lng: -75.6800,
		Bedrooms: ip(4), Bathrooms: fp(3.5), Sqft: 4200, LotSize: ip(8500), YearBuilt: ip(1935), ParkingSpaces: 2,
		Amenities: []string{"Garden", "Pool", "Fireplace", "Garage", "Central Air", "Hardwood Floors"},
	},
	{
		Title:        "New Edinburgh Village Condo",
		Description:  "Bright corner unit in a boutique building on Beechwood Avenue. 2 bedrooms, open kitchen, in-suite laundry, balcony with treetop views. Walk to cafes and the river pathways.",
		PropertyType: models.PropertyTypeCondo, ListingType: models.ListingTypeSale, Price: 489000,
		Address: "222 Beechwood Avenue Unit 305", ZipCode: "K1L 8A7", Lat: 45.4400, Lng: -75.6700,
		Bedrooms: ip(2), Bathrooms: fp(1), Sqft: 950, YearBuilt: ip(2016), ParkingSpaces: 1,
		Amenities: []string{"Central Air", "In-Unit Laundry", "Balcony"},
	},
	{
		Title:        "Trendy Hintonburg Semi-Detached",
		Description:  "Fully renovated semi in the hottest neighbourhood in Ottawa. Open-concept main floor, quartz kitchen, 3 bedrooms upstairs, and a huge deck overlooking a private backyard. Steps from Wellington West shops.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 820000,
		Address: "78 Fairmont Avenue", ZipCode: "K1Y 1X3", Lat: 45.4010, Lng: -75.7250,
		Bedrooms: ip(3), Bathrooms: fp(2), Sqft: 1500, LotSize: ip(2000), YearBuilt: ip(1920), ParkingSpaces: 1,
		Amenities: []string{"Garden", "Hardwood Floors", "Central Air", "In-Unit Laundry"},
	},
	{
		Title:        "Hintonburg Artist Loft",
		Description:  "Unique loft-style 1-bedroom in a converted warehouse. Soaring ceilings, exposed brick, massive windows flooding the space with natural light. Includes heated underground parking.",
		PropertyType: models.PropertyTypeCondo, ListingType: models.ListingTypeRent, Price: 2100,
		Address: "1140 Wellington Street West Unit 210", ZipCode: "K1Y 2Z7", Lat: 45.3990, Lng: -75.7310,
		Bedrooms: ip(1), Bathrooms: fp(1), Sqft: 780, YearBuilt: ip(2017), ParkingSpaces: 1,
		Amenities: []string{"Gym", "In-Unit Laundry", "Central Air", "Hardwood Floors"},
	},
	{
		Title:        "Classic Home in Old Ottawa South",
		Description:  "Beautiful 3-bedroom home on a quiet street near Brewer Park. Updated kitchen, main-floor family room, finished basement, and a large lot with mature trees. Walk to Bank Street and the canal.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 950000,
		Address: "60 Aylmer Avenue", ZipCode: "K1S 5R3", Lat: 45.3890, Lng: -75.6860,
		Bedrooms: ip(3), Bathrooms: fp(2), Sqft: 2000, LotSize: ip(4000), YearBuilt: ip(1945), ParkingSpaces: 1,
		Amenities: []string{"Garden", "Fireplace", "Finished Basement", "Central Air", "Hardwood Floors"},
	},
	{
		Title:        "Old Ottawa South Rental Duplex",
		Description:  "Spacious 2-bedroom lower unit in a well-maintained duplex. Separate entrance, in-unit laundry, updated kitchen. Includes parking pad. Close to Carleton University.",
		PropertyType: models.PropertyTypeApartment, ListingType: models.ListingTypeRent, Price: 1950,
		Address: "15 Sunnyside Avenue Unit 1", ZipCode: "K1S 0R3", Lat: 45.3870, Lng: -75.6890,
		Bedrooms: ip(2), Bathrooms: fp(1), Sqft: 900, YearBuilt: ip(1955), ParkingSpaces: 1,
		Amenities: []string{"In-Unit Laundry", "Garden"},
	},
	{
		Title:        "Rockcliffe Park Luxury Estate",
		Description:  "Magnificent 6-bedroom estate on over an acre of manicured grounds. Grand foyer, gourmet kitchen, wine cellar, home theatre, and heated indoor pool. The pinnacle of Ottawa luxury living.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 4500000,
		Address: "650 Acacia Avenue", ZipCode: "K1M 0M1", Lat: 45.4480, Lng: -75.6720,
		Bedrooms: ip(6), Bathrooms: fp(5), Sqft: 7500, LotSize: ip(45000), YearBuilt: ip(1948), ParkingSpaces: 4,
		Amenities: []string{"Pool", "Gym", "Garden", "Fireplace", "Garage", "Central Air", "Hardwood Floors", "Security System"},
	},
	{
		Title:        "Alta Vista Split-Level Home",
		Description:  "Spacious split-level with 4 bedrooms on a quiet crescent. Updated eat-in kitchen, family room with fireplace, large rec room, double garage, and a landscaped backyard with patio.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 725000,
		Address: "1245 Featherston Drive", ZipCode: "K1H 6N5", Lat: 45.3840, Lng: -75.6490,
		Bedrooms: ip(4), Bathrooms: fp(2), Sqft: 2200, LotSize: ip(6000), YearBuilt: ip(1970), ParkingSpaces: 2,
		Amenities: []string{"Garage", "Garden", "Fireplace", "Finished Basement", "Central Air"},
	},
	{
		Title:        "Alta Vista Bungalow for Rent",
		Description:  "Well-maintained 3-bedroom bungalow near CHEO and the Ottawa Hospital. Fenced yard, updated kitchen, and finished basement. Ideal for medical professionals or families.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeRent, Price: 2800,
		Address: "988 Smyth Road", ZipCode: "K1H 8L3", Lat: 45.3810, Lng: -75.6530,
		Bedrooms: ip(3), Bathrooms: fp(2), Sqft: 1400, LotSize: ip(4500), YearBuilt: ip(1962), ParkingSpaces: 2,
		Amenities: []string{"Garden", "Garage", "Finished Basement", "Central Air"},
	},
	{
		Title:        "Modern Kanata Family Home",
		Description:  "Stunning 4-bedroom home in Kanata Lakes. Open-concept main floor, gourmet kitchen with island, master with ensuite and walk-in closet. Backing onto greenspace with walking trails.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 895000,
		Address: "35 Knudson Drive", ZipCode: "K2T 0C5", Lat: 45.3130, Lng: -75.9080,
		Bedrooms: ip(4), Bathrooms: fp(3.5), Sqft: 2800, LotSize: ip(4500), YearBuilt: ip(2018), ParkingSpaces: 2,
		Amenities: []string{"Garage", "Garden", "Central Air", "In-Unit Laundry", "Finished Basement"},
	},
	{
		Title:        "Kanata Centrum Condo",
		Description:  "Bright 2-bedroom condo near Kanata Centrum. Open layout, 9-foot ceilings, balcony, underground parking, and locker. Close to tech park, shopping, and the Queensway.",
		PropertyType: models.PropertyTypeCondo, ListingType: models.ListingTypeSale, Price: 415000,
		Address: "4100 Strandherd Drive Unit 506", ZipCode: "K2J 6B1", Lat: 45.2780, Lng: -75.7420,
		Bedrooms: ip(2), Bathrooms: fp(2), Sqft: 950, YearBuilt: ip(2020), ParkingSpaces: 1,
		Amenities: []string{"Gym", "Central Air", "In-Unit Laundry", "Balcony"},
	},
	{
		Title:        "Kanata Tech Park Office Space",
		Description:  "Professional office space in Kanata's tech corridor. 2,500 sqft of open-plan workspace with private offices, kitchenette, and boardroom. Ample parking included.",
		PropertyType: models.PropertyTypeCommercial, ListingType: models.ListingTypeRent, Price: 4500,
		Address: "390 March Road Unit 200", ZipCode: "K2K 0G7", Lat: 45.3340, Lng: -75.9190,
		Bathrooms: fp(2), Sqft: 2500, YearBuilt: ip(2010), ParkingSpaces: 8,
		Amenities: []string{"Central Air", "Security System"},
	},
	{
		Title:        "Orleans Lakeside Family Home",
		Description:  "Beautiful 4-bedroom home in Fallingbrook with views of Petrie Island. Hardwood throughout, gourmet kitchen, finished walkout basement, and a huge deck overlooking the yard.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 780000,
		Address: "1590 Meadowlands Drive East", ZipCode: "K1E 3R5", Lat: 45.4720, Lng: -75.5080,
		Bedrooms: ip(4), Bathrooms: fp(3), Sqft: 2600, LotSize: ip(5200), YearBuilt: ip(2005), ParkingSpaces: 2,
		Amenities: []string{"Garage", "Garden", "Finished Basement", "Central Air", "Hardwood Floors", "Fireplace"},
	},
	{
		Title:        "Orleans Townhome Rental",
		Description:  "End-unit townhome with 3 bedrooms and 2.5 baths. Fenced backyard, attached garage, close to Place d'Orleans shopping centre and LRT station.",
		PropertyType: models.PropertyTypeTownhouse, ListingType: models.ListingTypeRent, Price: 2400,
		Address: "820 Trim Road Unit 44", ZipCode: "K4A 0G7", Lat: 45.4650, Lng: -75.5210,
		Bedrooms: ip(3), Bathrooms: fp(2.5), Sqft: 1500, LotSize: ip(1800), YearBuilt: ip(2012), ParkingSpaces: 1,
		Amenities: []string{"Garage", "Garden", "Central Air", "In-Unit Laundry"},
	},
	{
		Title:        "Brand New Barrhaven Detached",
		Description:  "Never-lived-in 4-bedroom detached home in Barrhaven's newest community. 9-foot ceilings, quartz counters, engineered hardwood, and a walk-in pantry. Smart home wiring throughout.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 835000,
		Address: "105 Capstone Crescent", ZipCode: "K2J 5W7", Lat: 45.2730, Lng: -75.7380,
		Bedrooms: ip(4), Bathrooms: fp(2.5), Sqft: 2400, LotSize: ip(3500), YearBuilt: ip(2024), ParkingSpaces: 2,
		Amenities: []string{"Garage", "Central Air", "In-Unit Laundry", "Hardwood Floors", "Smart Home"},
	},
	{
		Title:        "Barrhaven Starter Townhome",
		Description:  "Affordable 3-bedroom freehold townhome in Half Moon Bay. Open-concept living, ensuite master, finished basement. Steps to schools, parks, and splash pad.",
		PropertyType: models.PropertyTypeTownhouse, ListingType: models.ListingTypeSale, Price: 525000,
		Address: "288 Sweetflag Street", ZipCode: "K2J 0V5", Lat: 45.2700, Lng: -75.7510,
		Bedrooms: ip(3), Bathrooms: fp(1.5), Sqft: 1350, LotSize: ip(1600), YearBuilt: ip(2016), ParkingSpaces: 1,
		Amenities: []string{"Garage", "Central Air", "Finished Basement", "In-Unit Laundry"},
	},
	{
		Title:        "Golden Triangle Heritage Home",
		Description:  "Impeccably maintained 3-storey heritage home in the Golden Triangle. 4 bedrooms, gourmet kitchen, landscaped garden, and original architectural details throughout. Steps from Elgin Street.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 1450000,
		Address: "50 Gilmour Street", ZipCode: "K2P 0N5", Lat: 45.4160, Lng: -75.6880,
		Bedrooms: ip(4), Bathrooms: fp(2.5), Sqft: 2800, LotSize: ip(2500), YearBuilt: ip(1898), ParkingSpaces: 1,
		Amenities: []string{"Garden", "Fireplace", "Hardwood Floors", "Central Air"},
	},
	{
		Title:        "Nepean Raised Ranch with Pool",
		Description:  "Spacious raised ranch on a premium lot with in-ground pool. 4 bedrooms, open kitchen with breakfast bar, large rec room, and a 2-car garage. Great for entertaining.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 810000,
		Address: "1680 Merivale Road", ZipCode: "K2G 5X1", Lat: 45.3470, Lng: -75.7270,
		Bedrooms: ip(4), Bathrooms: fp(2), Sqft: 2100, LotSize: ip(7500), YearBuilt: ip(1975), ParkingSpaces: 2,
		Amenities: []string{"Pool", "Garage", "Garden", "Fireplace", "Central Air", "Finished Basement"},
	},
	{
		Title:        "Nepean Condo near College Square",
		Description:  "Move-in ready 2-bedroom condo with updated finishes. Open kitchen, large balcony, underground parking. Close to Algonquin College, transit, and shopping.",
		PropertyType: models.PropertyTypeCondo, ListingType: models.ListingTypeSale, Price: 365000,
		Address: "1480 Baseline Road Unit 712", ZipCode: "K2C 3L8", Lat: 45.3500, Lng: -75.7420,
		Bedrooms: ip(2), Bathrooms: fp(1), Sqft: 880, YearBuilt: ip(2008), ParkingSpaces: 1,
		Amenities: []string{"Gym", "Central Air", "In-Unit Laundry", "Balcony"},
	},
	{
		Title:        "Manor Park Mid-Century Gem",
		Description:  "Beautifully updated mid-century home on a mature, treed lot. 3 bedrooms, sunken living room, renovated kitchen, and a stunning sunroom addition overlooking the garden.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 920000,
		Address: "475 Brittany Drive", ZipCode: "K1K 0R5", Lat: 45.4480, Lng: -75.6540,
		Bedrooms: ip(3), Bathrooms: fp(2), Sqft: 1900, LotSize: ip(5000), YearBuilt: ip(1960), ParkingSpaces: 1,
		Amenities: []string{"Garden", "Hardwood Floors", "Fireplace", "Central Air"},
	},
	{
		Title:        "Renovated Vanier Duplex",
		Description:  "Investor opportunity or live-in-one-rent-the-other. Fully renovated duplex with 2 bedrooms per unit. New kitchens, bathrooms, electrical, and plumbing. Strong rental income potential.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 680000,
		Address: "340 Montreal Road", ZipCode: "K1L 6B3", Lat: 45.4370, Lng: -75.6590,
		Bedrooms: ip(4), Bathrooms: fp(2), Sqft: 2000, LotSize: ip(3000), YearBuilt: ip(1950), ParkingSpaces: 2,
		Amenities: []string{"In-Unit Laundry", "Central Air"},
	},
	{
		Title:        "Riverside South Executive Home",
		Description:  "Gorgeous 5-bedroom executive home in a family-friendly community. Chef's kitchen, main-floor office, 3-car garage, and a professionally landscaped yard backing onto a pond.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 1150000,
		Address: "4401 River Mist Crescent", ZipCode: "K1V 2M8", Lat: 45.3120, Lng: -75.6710,
		Bedrooms: ip(5), Bathrooms: fp(3.5), Sqft: 3500, LotSize: ip(6000), YearBuilt: ip(2017), ParkingSpaces: 3,
		Amenities: []string{"Garage", "Garden", "Central Air", "Hardwood Floors", "Finished Basement", "Smart Home"},
	},
	{
		Title:        "Beacon Hill North Townhome",
		Description:  "Well-maintained 3-bedroom townhome near Gloucester Centre. Updated kitchen, hardwood on main, fenced yard with shed. Close to the Blair LRT station.",
		PropertyType: models.PropertyTypeTownhouse, ListingType: models.ListingTypeSale, Price: 485000,
		Address: "2100 Ogilvie Road Unit 18", ZipCode: "K1J 7N8", Lat: 45.4320, Lng: -75.6100,
		Bedrooms: ip(3), Bathrooms: fp(1.5), Sqft: 1300, LotSize: ip(1400), YearBuilt: ip(1985), ParkingSpaces: 1,
		Amenities: []string{"Garden", "Hardwood Floors", "Central Air"},
	},
	{
		Title:        "Little Italy Character Home",
		Description:  "Stunning 3-bedroom home on a coveted Little Italy street. Chef's kitchen, exposed brick, private patio, and a finished basement with separate entrance. Walk to Preston Street restaurants.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 975000,
		Address: "84 Larch Street", ZipCode: "K1R 6V2", Lat: 45.4060, Lng: -75.7140,
		Bedrooms: ip(3), Bathrooms: fp(2), Sqft: 1700, LotSize: ip(2200), YearBuilt: ip(1910), ParkingSpaces: 1,
		Amenities: []string{"Garden", "Fireplace", "Hardwood Floors", "Finished Basement", "Central Air"},
	},
	{
		Title:        "Little Italy 2BR Rental",
		Description:  "Modern 2-bedroom apartment above a Preston Street cafe. Exposed brick, stainless appliances, in-suite laundry, and a private rooftop patio. Utilities included.",
		PropertyType: models.PropertyTypeApartment, ListingType: models.ListingTypeRent, Price: 2300,
		Address: "370 Preston Street Unit 3", ZipCode: "K1R 7S1", Lat: 45.4050, Lng: -75.7120,
		Bedrooms: ip(2), Bathrooms: fp(1), Sqft: 850, YearBuilt: ip(2019), ParkingSpaces: 0,
		Amenities: []string{"In-Unit Laundry", "Rooftop Terrace", "Central Air", "Hardwood Floors"},
	},
	{
		Title:        "Stittsville New Build Detached",
		Description:  "Brand new 4-bedroom detached in Fernbank. Modern farmhouse design with wrap-around porch, open-concept living, quartz throughout, and a walk-out basement. Backing onto conservation land.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 870000,
		Address: "22 Bankfield Road", ZipCode: "K2S 1V5", Lat: 45.2600, Lng: -75.9210,
		Bedrooms: ip(4), Bathrooms: fp(2.5), Sqft: 2600, LotSize: ip(4200), YearBuilt: ip(2025), ParkingSpaces: 2,
		Amenities: []string{"Garage", "Garden", "Central Air", "In-Unit Laundry", "Hardwood Floors"},
	},
	{
		Title:        "Hunt Club Bi-Level Home",
		Description:  "Affordable 3-bedroom bi-level in South Keys area. Eat-in kitchen, large living room, fenced yard, and a single garage. Close to South Keys shopping centre and Transitway.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 520000,
		Address: "3040 Caravelle Drive", ZipCode: "K1T 3N3", Lat: 45.3530, Lng: -75.6370,
		Bedrooms: ip(3), Bathrooms: fp(2), Sqft: 1200, LotSize: ip(3500), YearBuilt: ip(1980), ParkingSpaces: 1,
		Amenities: []string{"Garage", "Garden", "Central Air"},
	},
	{
		Title:        "Manotick Riverside Retreat",
		Description:  "Stunning waterfront property on the Rideau River. 4 bedrooms, vaulted ceilings, wall of windows facing the river, private dock, and 2 acres of land. A rare find.",
		PropertyType: models.PropertyTypeHouse, ListingType: models.ListingTypeSale, Price: 1680000,
		Address: "5580 River Road", ZipCode: "K4M 1B1", Lat: 45.2260, Lng: -75.6840,
		Bedrooms: ip(4), Bathrooms: fp(3), Sqft: 3200, LotSize: ip(87120), YearBuilt: ip(2002), ParkingSpaces: 3,
		Amenities: []string{"Garden", "Garage", "Fireplace", "Central Air", "Hardwood Floors", "Waterfront"},
	},
}

// Ottawa returns the curated demo listings, all active and located in
// Ottawa, Ontario.
func Ottawa() []models.Property {
	out := make([]models.Property, 0, len(ottawaEntries))
	for _, e := range ottawaEntries {
		lat, lng := e.Lat, e.Lng
		sqft := e.Sqft
		parking := e.ParkingSpaces
		out = append(out, models.Property{
			Title:         e.Title,
			Description:   e.Description,
			PropertyType:  e.PropertyType,
			ListingType:   e.ListingType,
			Status:        models.PropertyStatusActive,
			Price:         e.Price,
			Address:       e.Address,
			City:          "Ottawa",
			State:         "Ontario",
			ZipCode:       e.ZipCode,
			Country:       "CA",
			Latitude:      &lat,
			Longitude:     &lng,
			Bedrooms:      e.Bedrooms,
			Bathrooms:     e.Bathrooms,
			Sqft:          &sqft,
			LotSize:       e.LotSize,
			YearBuilt:     e.YearBuilt,
			ParkingSpaces: &parking,
			Amenities:     e.Amenities,
		})
	}
	return out
}
