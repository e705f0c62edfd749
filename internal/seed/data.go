package seed

// cityData anchors generated listings on a real metro area. Coordinates are
// the downtown center; the generator spreads listings around it.
type cityData struct {
	Name            string
	State           string
	Country         string
	Lat             float64
	Lng             float64
	PriceMultiplier float64
	ZipPrefix       string
	Neighborhoods   []string
	Streets         []string
}

var cities = []cityData{
	{
		Name: "New York", State: "NY", Country: "US",
		Lat: 40.758, Lng: -73.986, PriceMultiplier: 2.5, ZipPrefix: "100",
		Neighborhoods: []string{"Upper West Side", "Chelsea", "Tribeca", "SoHo", "Greenwich Village", "Brooklyn Heights", "Park Slope", "Harlem"},
		Streets:       []string{"Broadway", "Fifth Avenue", "Madison Avenue", "Park Avenue", "Lexington Avenue", "West End Avenue", "Amsterdam Avenue", "Columbus Avenue", "Riverside Drive", "Central Park West", "Bleecker Street", "Hudson Street", "Spring Street", "Prince Street", "Waverly Place"},
	},
	{
		Name: "Los Angeles", State: "CA", Country: "US",
		Lat: 34.052, Lng: -118.244, PriceMultiplier: 2.0, ZipPrefix: "900",
		Neighborhoods: []string{"Beverly Hills", "Silver Lake", "Venice", "Santa Monica", "Echo Park", "Los Feliz", "Downtown", "Culver City"},
		Streets:       []string{"Sunset Boulevard", "Wilshire Boulevard", "Melrose Avenue", "Hollywood Boulevard", "La Brea Avenue", "Fairfax Avenue", "Venice Boulevard", "Santa Monica Boulevard", "Fountain Avenue", "Robertson Boulevard", "Beverly Drive", "Canon Drive", "Abbot Kinney Boulevard", "Main Street", "Ocean Avenue"},
	},
	{
		Name: "San Francisco", State: "CA", Country: "US",
		Lat: 37.775, Lng: -122.419, PriceMultiplier: 2.5, ZipPrefix: "941",
		Neighborhoods: []string{"Pacific Heights", "Mission District", "Castro", "Noe Valley", "Marina District", "Russian Hill", "North Beach", "Hayes Valley"},
		Streets:       []string{"Market Street", "Valencia Street", "Mission Street", "Divisadero Street", "Fillmore Street", "Haight Street", "Lombard Street", "Columbus Avenue", "Grant Avenue", "Union Street", "Chestnut Street", "Sacramento Street", "Folsom Street", "Howard Street", "Guerrero Street"},
	},
	{
		Name: "Chicago", State: "IL", Country: "US",
		Lat: 41.878, Lng: -87.630, PriceMultiplier: 1.3, ZipPrefix: "606",
		Neighborhoods: []string{"Lincoln Park", "Wicker Park", "River North", "Logan Square", "Hyde Park", "Lakeview", "Old Town", "Pilsen"},
		Streets:       []string{"Michigan Avenue", "Lake Shore Drive", "Clark Street", "Halsted Street", "Damen Avenue", "Milwaukee Avenue", "Armitage Avenue", "Division Street", "Fullerton Avenue", "Belmont Avenue", "Ashland Avenue", "Western Avenue", "North Avenue", "Clybourn Avenue", "Wells Street"},
	},
	{
		Name: "Miami", State: "FL", Country: "US",
		Lat: 25.762, Lng: -80.192, PriceMultiplier: 1.7, ZipPrefix: "331",
		Neighborhoods: []string{"South Beach", "Brickell", "Wynwood", "Coconut Grove", "Coral Gables", "Little Havana", "Design District", "Edgewater"},
		Streets:       []string{"Collins Avenue", "Ocean Drive", "Biscayne Boulevard", "Coral Way", "Brickell Avenue", "Flagler Street", "Calle Ocho", "Alton Road", "Washington Avenue", "Lincoln Road", "NW 2nd Avenue", "Grand Avenue", "Main Highway", "Ponce de Leon Boulevard", "Miracle Mile"},
	},
	{
		Name: "Seattle", State: "WA", Country: "US",
		Lat: 47.606, Lng: -122.332, PriceMultiplier: 1.8, ZipPrefix: "981",
		Neighborhoods: []string{"Capitol Hill", "Ballard", "Fremont", "Queen Anne", "Wallingford", "Green Lake", "University District", "Beacon Hill"},
		Streets:       []string{"Pike Street", "Pine Street", "Broadway", "15th Avenue", "Market Street", "Leary Way", "Aurora Avenue", "Rainier Avenue", "Denny Way", "Mercer Street", "Eastlake Avenue", "Westlake Avenue", "Stone Way", "NW 65th Street", "NE 45th Street"},
	},
	{
		Name: "Austin", State: "TX", Country: "US",
		Lat: 30.267, Lng: -97.743, PriceMultiplier: 1.4, ZipPrefix: "787",
		Neighborhoods: []string{"Downtown", "South Congress", "East Austin", "Zilker", "Travis Heights", "Mueller", "Hyde Park", "Clarksville"},
		Streets:       []string{"Congress Avenue", "South Lamar Boulevard", "Guadalupe Street", "Barton Springs Road", "Cesar Chavez Street", "Manor Road", "East 6th Street", "South 1st Street", "Red River Street", "Rainey Street", "Duval Street", "Speedway", "Burnet Road", "Anderson Lane", "Oltorf Street"},
	},
	{
		Name: "Denver", State: "CO", Country: "US",
		Lat: 39.739, Lng: -104.990, PriceMultiplier: 1.5, ZipPrefix: "802",
		Neighborhoods: []string{"LoDo", "RiNo", "Capitol Hill", "Cherry Creek", "Highlands", "Washington Park", "Baker", "Congress Park"},
		Streets:       []string{"16th Street", "Colfax Avenue", "Broadway", "Larimer Street", "Blake Street", "Market Street", "Tennyson Street", "Platte Street", "Wazee Street", "Wynkoop Street", "Champa Street", "Welton Street", "South Pearl Street", "East 17th Avenue", "Downing Street"},
	},
	{
		Name: "Boston", State: "MA", Country: "US",
		Lat: 42.360, Lng: -71.058, PriceMultiplier: 2.0, ZipPrefix: "021",
		Neighborhoods: []string{"Back Bay", "Beacon Hill", "South End", "North End", "Charlestown", "Jamaica Plain", "Cambridge", "Brookline"},
		Streets:       []string{"Boylston Street", "Newbury Street", "Commonwealth Avenue", "Beacon Street", "Charles Street", "Tremont Street", "Hanover Street", "Atlantic Avenue", "Cambridge Street", "Marlborough Street", "Dartmouth Street", "Clarendon Street", "Centre Street", "Harvard Street", "Massachusetts Avenue"},
	},
	{
		Name: "Dallas", State: "TX", Country: "US",
		Lat: 32.777, Lng: -96.797, PriceMultiplier: 1.1, ZipPrefix: "752",
		Neighborhoods: []string{"Uptown", "Deep Ellum", "Oak Lawn", "Bishop Arts", "Knox-Henderson", "Lakewood", "Highland Park", "Preston Hollow"},
		Streets:       []string{"McKinney Avenue", "Elm Street", "Commerce Street", "Main Street", "Ross Avenue", "Cedar Springs Road", "Greenville Avenue", "Fitzhugh Avenue", "Gaston Avenue", "Mockingbird Lane", "Preston Road", "Northwest Highway", "Lovers Lane", "Oak Lawn Avenue", "Harry Hines Boulevard"},
	},
	{
		Name: "Houston", State: "TX", Country: "US",
		Lat: 29.760, Lng: -95.370, PriceMultiplier: 1.0, ZipPrefix: "770",
		Neighborhoods: []string{"Montrose", "Heights", "Midtown", "River Oaks", "Museum District", "EaDo", "West University", "Rice Village"},
		Streets:       []string{"Westheimer Road", "Montrose Boulevard", "Kirby Drive", "Main Street", "Washington Avenue", "Richmond Avenue", "Shepherd Drive", "Heights Boulevard", "Bagby Street", "Allen Parkway", "San Felipe Street", "Memorial Drive", "Bissonnet Street", "University Boulevard", "Rice Boulevard"},
	},
	{
		Name: "Phoenix", State: "AZ", Country: "US",
		Lat: 33.449, Lng: -112.074, PriceMultiplier: 1.1, ZipPrefix: "850",
		Neighborhoods: []string{"Downtown", "Arcadia", "Biltmore", "Roosevelt Row", "Encanto", "Camelback East", "North Central", "Ahwatukee"},
		Streets:       []string{"Central Avenue", "Camelback Road", "Indian School Road", "Thomas Road", "McDowell Road", "7th Street", "7th Avenue", "Roosevelt Street", "Van Buren Street", "Washington Street", "Cave Creek Road", "Tatum Boulevard", "Scottsdale Road", "44th Street", "24th Street"},
	},
	{
		Name: "Philadelphia", State: "PA", Country: "US",
		Lat: 39.953, Lng: -75.164, PriceMultiplier: 1.2, ZipPrefix: "191",
		Neighborhoods: []string{"Rittenhouse Square", "Old City", "Fishtown", "Northern Liberties", "Society Hill", "Graduate Hospital", "Fairmount", "Manayunk"},
		Streets:       []string{"Broad Street", "Market Street", "Walnut Street", "Chestnut Street", "South Street", "Pine Street", "Spruce Street", "Girard Avenue", "Frankford Avenue", "Front Street", "2nd Street", "5th Street", "Main Street", "Ridge Avenue", "Lancaster Avenue"},
	},
	{
		Name: "Nashville", State: "TN", Country: "US",
		Lat: 36.163, Lng: -86.781, PriceMultiplier: 1.3, ZipPrefix: "372",
		Neighborhoods: []string{"The Gulch", "East Nashville", "Germantown", "12 South", "Sylvan Park", "Green Hills", "Berry Hill", "Salemtown"},
		Streets:       []string{"Broadway", "Church Street", "West End Avenue", "Gallatin Pike", "Nolensville Pike", "8th Avenue South", "12th Avenue South", "Woodland Street", "5th Avenue North", "Charlotte Pike", "Belmont Boulevard", "Wedgewood Avenue", "Dickerson Pike", "Lebanon Pike", "Division Street"},
	},
	{
		Name: "Portland", State: "OR", Country: "US",
		Lat: 45.523, Lng: -122.677, PriceMultiplier: 1.4, ZipPrefix: "972",
		Neighborhoods: []string{"Pearl District", "Alberta Arts", "Hawthorne", "Division", "Sellwood", "Nob Hill", "St. Johns", "Mississippi"},
		Streets:       []string{"Burnside Street", "Hawthorne Boulevard", "Division Street", "Alberta Street", "Mississippi Avenue", "NW 23rd Avenue", "Belmont Street", "Sandy Boulevard", "MLK Jr Boulevard", "Lombard Street", "Fremont Street", "Glisan Street", "Powell Boulevard", "Killingsworth Street", "Foster Road"},
	},
	{
		Name: "San Diego", State: "CA", Country: "US",
		Lat: 32.716, Lng: -117.161, PriceMultiplier: 1.8, ZipPrefix: "921",
		Neighborhoods: []string{"Gaslamp Quarter", "North Park", "Hillcrest", "La Jolla", "Pacific Beach", "Little Italy", "Mission Hills", "Bankers Hill"},
		Streets:       []string{"5th Avenue", "India Street", "University Avenue", "El Cajon Boulevard", "30th Street", "Adams Avenue", "Garnet Avenue", "Grand Avenue", "Kettner Boulevard", "Harbor Drive", "Broadway", "Market Street", "Island Avenue", "Prospect Street", "Coast Boulevard"},
	},
	{
		Name: "Atlanta", State: "GA", Country: "US",
		Lat: 33.749, Lng: -84.388, PriceMultiplier: 1.1, ZipPrefix: "303",
		Neighborhoods: []string{"Midtown", "Virginia-Highland", "Buckhead", "Inman Park", "Old Fourth Ward", "Decatur", "Grant Park", "East Atlanta"},
		Streets:       []string{"Peachtree Street", "Ponce de Leon Avenue", "North Highland Avenue", "Monroe Drive", "10th Street", "Piedmont Avenue", "Moreland Avenue", "Euclid Avenue", "DeKalb Avenue", "Memorial Drive", "Spring Street", "Juniper Street", "Edgewood Avenue", "Boulevard", "Ralph McGill Boulevard"},
	},
	{
		Name: "Washington", State: "DC", Country: "US",
		Lat: 38.907, Lng: -77.037, PriceMultiplier: 2.0, ZipPrefix: "200",
		Neighborhoods: []string{"Georgetown", "Dupont Circle", "Capitol Hill", "Adams Morgan", "Logan Circle", "Shaw", "U Street Corridor", "Navy Yard"},
		Streets:       []string{"M Street", "Connecticut Avenue", "Pennsylvania Avenue", "Wisconsin Avenue", "14th Street", "H Street", "U Street", "Massachusetts Avenue", "K Street", "Rhode Island Avenue", "New Hampshire Avenue", "P Street", "Q Street", "16th Street", "Columbia Road"},
	},
	{
		Name: "Minneapolis", State: "MN", Country: "US",
		Lat: 44.978, Lng: -93.265, PriceMultiplier: 1.1, ZipPrefix: "554",
		Neighborhoods: []string{"North Loop", "Uptown", "Northeast", "Linden Hills", "Whittier", "Lowry Hill", "Seward", "Longfellow"},
		Streets:       []string{"Hennepin Avenue", "Nicollet Avenue", "Lake Street", "Washington Avenue", "Lyndale Avenue", "1st Avenue", "2nd Street", "3rd Avenue", "Portland Avenue", "Central Avenue", "University Avenue", "Franklin Avenue", "Excelsior Boulevard", "Bryant Avenue", "Calhoun Boulevard"},
	},
	{
		Name: "Las Vegas", State: "NV", Country: "US",
		Lat: 36.169, Lng: -115.140, PriceMultiplier: 1.0, ZipPrefix: "891",
		Neighborhoods: []string{"Summerlin", "Henderson", "Arts District", "Downtown", "Spring Valley", "Green Valley", "Centennial Hills", "Rhodes Ranch"},
		Streets:       []string{"Las Vegas Boulevard", "Sahara Avenue", "Flamingo Road", "Tropicana Avenue", "Charleston Boulevard", "Fremont Street", "Desert Inn Road", "Rainbow Boulevard", "Durango Drive", "Eastern Avenue", "Maryland Parkway", "Paradise Road", "Decatur Boulevard", "Jones Boulevard", "Rampart Boulevard"},
	},
	{
		Name: "Toronto", State: "ON", Country: "CA",
		Lat: 43.653, Lng: -79.383, PriceMultiplier: 2.0, ZipPrefix: "M5",
		Neighborhoods: []string{"Yorkville", "Queen West", "Liberty Village", "Distillery District", "The Annex", "Leslieville", "Roncesvalles", "King West"},
		Streets:       []string{"Queen Street West", "King Street West", "Bloor Street", "Dundas Street", "College Street", "Yonge Street", "Bay Street", "Spadina Avenue", "Ossington Avenue", "Bathurst Street", "Parliament Street", "Broadview Avenue", "Danforth Avenue", "St. Clair Avenue", "Eglinton Avenue"},
	},
	{
		Name: "Vancouver", State: "BC", Country: "CA",
		Lat: 49.283, Lng: -123.121, PriceMultiplier: 2.2, ZipPrefix: "V6",
		Neighborhoods: []string{"Kitsilano", "Yaletown", "Gastown", "Mount Pleasant", "West End", "Kerrisdale", "Commercial Drive", "South Granville"},
		Streets:       []string{"Robson Street", "Granville Street", "Main Street", "Broadway", "Davie Street", "Hastings Street", "Cambie Street", "Commercial Drive", "4th Avenue", "Denman Street", "Burrard Street", "West Boulevard", "Kingsway", "Oak Street", "Fraser Street"},
	},
	{
		Name: "Montreal", State: "QC", Country: "CA",
		Lat: 45.502, Lng: -73.567, PriceMultiplier: 1.3, ZipPrefix: "H2",
		Neighborhoods: []string{"Plateau Mont-Royal", "Mile End", "Old Montreal", "Griffintown", "Outremont", "Westmount", "Verdun", "Villeray"},
		Streets:       []string{"Saint-Laurent Boulevard", "Saint-Denis Street", "Sainte-Catherine Street", "Sherbrooke Street", "Mont-Royal Avenue", "Rachel Street", "Laurier Avenue", "Bernard Avenue", "Duluth Avenue", "Fairmount Avenue", "Notre-Dame Street", "Wellington Street", "de la Commune Street", "McGill Street", "Peel Street"},
	},
	{
		Name: "Calgary", State: "AB", Country: "CA",
		Lat: 51.048, Lng: -114.072, PriceMultiplier: 1.1, ZipPrefix: "T2",
		Neighborhoods: []string{"Kensington", "Inglewood", "Beltline", "Mission", "Bridgeland", "Marda Loop", "Altadore", "Hillhurst"},
		Streets:       []string{"17th Avenue SW", "4th Street SW", "Centre Street", "Edmonton Trail", "Macleod Trail", "Crowchild Trail", "9th Avenue SE", "1st Street SW", "Stephen Avenue", "10th Street NW", "14th Street SW", "Kensington Road", "Memorial Drive", "Bow Trail", "Elbow Drive"},
	},
	{
		Name: "Edmonton", State: "AB", Country: "CA",
		Lat: 53.546, Lng: -113.491, PriceMultiplier: 0.9, ZipPrefix: "T5",
		Neighborhoods: []string{"Old Strathcona", "Oliver", "Downtown", "Garneau", "Glenora", "Ritchie", "Highlands", "Bonnie Doon"},
		Streets:       []string{"Whyte Avenue", "Jasper Avenue", "104th Street", "124th Street", "Stony Plain Road", "109th Street", "82nd Avenue", "97th Street", "Gateway Boulevard", "Calgary Trail", "75th Street", "118th Avenue", "St. Albert Trail", "Groat Road", "Saskatchewan Drive"},
	},
}

// propertySlot fixes the type mix per city. Every city yields the same 20
// slots so the distribution is stable: 6 houses (5 sale, 1 rent), 4
// apartments (1 sale, 3 rent), 4 condos (3 sale, 1 rent), 3 townhouses
// (2 sale, 1 rent), 2 commercial (1 sale, 1 rent), 1 land (sale).
type propertySlot struct {
	Type        string
	ListingType string
}

var propertySlots = []propertySlot{
	{"house", "sale"},
	{"house", "sale"},
	{"house", "sale"},
	{"house", "sale"},
	{"house", "sale"},
	{"house", "rent"},
	{"apartment", "sale"},
	{"apartment", "rent"},
	{"apartment", "rent"},
	{"apartment", "rent"},
	{"condo", "sale"},
	{"condo", "sale"},
	{"condo", "sale"},
	{"condo", "rent"},
	{"townhouse", "sale"},
	{"townhouse", "sale"},
	{"townhouse", "rent"},
	{"commercial", "sale"},
	{"commercial", "rent"},
	{"land", "sale"},
}

// SlotsPerCity is the number of generated listings per city.
const SlotsPerCity = 20
