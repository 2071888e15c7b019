package usecase

import "github.com/trippulse/trippulse-api/internal/domain"

// airportTable is the static table searched by the intake autocomplete.
// Search results keep this order.
var airportTable = []domain.Airport{
	{IATA: "FCO", City: "Rome", Country: "Italy", Name: "Leonardo da Vinci–Fiumicino"},
	{IATA: "MXP", City: "Milan", Country: "Italy", Name: "Milan Malpensa"},
	{IATA: "LIN", City: "Milan", Country: "Italy", Name: "Milan Linate"},
	{IATA: "NAP", City: "Naples", Country: "Italy", Name: "Naples International"},
	{IATA: "VCE", City: "Venice", Country: "Italy", Name: "Venice Marco Polo"},
	{IATA: "BLQ", City: "Bologna", Country: "Italy", Name: "Bologna Guglielmo Marconi"},
	{IATA: "CTA", City: "Catania", Country: "Italy", Name: "Catania-Fontanarossa"},
	{IATA: "PMO", City: "Palermo", Country: "Italy", Name: "Palermo Falcone-Borsellino"},
	{IATA: "FLR", City: "Florence", Country: "Italy", Name: "Florence Peretola"},
	{IATA: "TRN", City: "Turin", Country: "Italy", Name: "Turin Caselle"},
	{IATA: "LHR", City: "London", Country: "UK", Name: "London Heathrow"},
	{IATA: "LGW", City: "London", Country: "UK", Name: "London Gatwick"},
	{IATA: "STN", City: "London", Country: "UK", Name: "London Stansted"},
	{IATA: "CDG", City: "Paris", Country: "France", Name: "Paris Charles de Gaulle"},
	{IATA: "ORY", City: "Paris", Country: "France", Name: "Paris Orly"},
	{IATA: "BCN", City: "Barcelona", Country: "Spain", Name: "Barcelona El Prat"},
	{IATA: "MAD", City: "Madrid", Country: "Spain", Name: "Madrid Barajas"},
	{IATA: "AMS", City: "Amsterdam", Country: "Netherlands", Name: "Amsterdam Schiphol"},
	{IATA: "FRA", City: "Frankfurt", Country: "Germany", Name: "Frankfurt am Main"},
	{IATA: "MUC", City: "Munich", Country: "Germany", Name: "Munich"},
	{IATA: "BER", City: "Berlin", Country: "Germany", Name: "Berlin Brandenburg"},
	{IATA: "ZRH", City: "Zurich", Country: "Switzerland", Name: "Zurich"},
	{IATA: "VIE", City: "Vienna", Country: "Austria", Name: "Vienna International"},
	{IATA: "IST", City: "Istanbul", Country: "Turkey", Name: "Istanbul"},
	{IATA: "ATH", City: "Athens", Country: "Greece", Name: "Athens International"},
	{IATA: "LIS", City: "Lisbon", Country: "Portugal", Name: "Lisbon Humberto Delgado"},
	{IATA: "DUB", City: "Dublin", Country: "Ireland", Name: "Dublin"},
	{IATA: "CPH", City: "Copenhagen", Country: "Denmark", Name: "Copenhagen"},
	{IATA: "ARN", City: "Stockholm", Country: "Sweden", Name: "Stockholm Arlanda"},
	{IATA: "OSL", City: "Oslo", Country: "Norway", Name: "Oslo Gardermoen"},
	{IATA: "HEL", City: "Helsinki", Country: "Finland", Name: "Helsinki-Vantaa"},
	{IATA: "WAW", City: "Warsaw", Country: "Poland", Name: "Warsaw Chopin"},
	{IATA: "PRG", City: "Prague", Country: "Czech Republic", Name: "Vaclav Havel Prague"},
	{IATA: "BUD", City: "Budapest", Country: "Hungary", Name: "Budapest Ferenc Liszt"},
	{IATA: "OTP", City: "Bucharest", Country: "Romania", Name: "Bucharest Henri Coanda"},
	{IATA: "JFK", City: "New York", Country: "USA", Name: "John F. Kennedy"},
	{IATA: "LAX", City: "Los Angeles", Country: "USA", Name: "Los Angeles International"},
	{IATA: "ORD", City: "Chicago", Country: "USA", Name: "Chicago O'Hare"},
	{IATA: "MIA", City: "Miami", Country: "USA", Name: "Miami International"},
	{IATA: "SFO", City: "San Francisco", Country: "USA", Name: "San Francisco International"},
	{IATA: "DXB", City: "Dubai", Country: "UAE", Name: "Dubai International"},
	{IATA: "SIN", City: "Singapore", Country: "Singapore", Name: "Singapore Changi"},
	{IATA: "HND", City: "Tokyo", Country: "Japan", Name: "Tokyo Haneda"},
	{IATA: "NRT", City: "Tokyo", Country: "Japan", Name: "Tokyo Narita"},
	{IATA: "BKK", City: "Bangkok", Country: "Thailand", Name: "Suvarnabhumi"},
	{IATA: "HKG", City: "Hong Kong", Country: "China", Name: "Hong Kong International"},
	{IATA: "ICN", City: "Seoul", Country: "South Korea", Name: "Incheon International"},
	{IATA: "SYD", City: "Sydney", Country: "Australia", Name: "Sydney Kingsford Smith"},
	{IATA: "GRU", City: "São Paulo", Country: "Brazil", Name: "São Paulo Guarulhos"},
	{IATA: "MEX", City: "Mexico City", Country: "Mexico", Name: "Mexico City International"},
	{IATA: "CUN", City: "Cancún", Country: "Mexico", Name: "Cancún International"},
	{IATA: "CAI", City: "Cairo", Country: "Egypt", Name: "Cairo International"},
	{IATA: "JNB", City: "Johannesburg", Country: "South Africa", Name: "O.R. Tambo"},
	{IATA: "DEL", City: "New Delhi", Country: "India", Name: "Indira Gandhi International"},
	{IATA: "BOM", City: "Mumbai", Country: "India", Name: "Chhatrapati Shivaji Maharaj"},
	{IATA: "PEK", City: "Beijing", Country: "China", Name: "Beijing Capital"},
	{IATA: "PVG", City: "Shanghai", Country: "China", Name: "Shanghai Pudong"},
	{IATA: "DOH", City: "Doha", Country: "Qatar", Name: "Hamad International"},
	{IATA: "AUH", City: "Abu Dhabi", Country: "UAE", Name: "Abu Dhabi International"},
	{IATA: "CMB", City: "Colombo", Country: "Sri Lanka", Name: "Bandaranaike International"},
	{IATA: "MLE", City: "Malé", Country: "Maldives", Name: "Velana International"},
	{IATA: "PMI", City: "Palma de Mallorca", Country: "Spain", Name: "Palma de Mallorca"},
	{IATA: "IBZ", City: "Ibiza", Country: "Spain", Name: "Ibiza"},
	{IATA: "TFS", City: "Tenerife", Country: "Spain", Name: "Tenerife South"},
	{IATA: "SKG", City: "Thessaloniki", Country: "Greece", Name: "Thessaloniki Macedonia"},
	{IATA: "HER", City: "Heraklion", Country: "Greece", Name: "Heraklion Nikos Kazantzakis"},
	{IATA: "SPU", City: "Split", Country: "Croatia", Name: "Split"},
	{IATA: "DBV", City: "Dubrovnik", Country: "Croatia", Name: "Dubrovnik"},
	{IATA: "TLV", City: "Tel Aviv", Country: "Israel", Name: "Ben Gurion"},
	{IATA: "CMN", City: "Casablanca", Country: "Morocco", Name: "Mohammed V"},
	{IATA: "RAK", City: "Marrakech", Country: "Morocco", Name: "Marrakech Menara"},
	{IATA: "AGP", City: "Malaga", Country: "Spain", Name: "Malaga-Costa del Sol"},
	{IATA: "NCE", City: "Nice", Country: "France", Name: "Nice Côte d'Azur"},
	{IATA: "BRU", City: "Brussels", Country: "Belgium", Name: "Brussels"},
	{IATA: "EDI", City: "Edinburgh", Country: "UK", Name: "Edinburgh"},
	{IATA: "MAN", City: "Manchester", Country: "UK", Name: "Manchester"},
}

// destinationSuggestions are the curated picks per trip style.
var destinationSuggestions = map[domain.TripStyle][]domain.Destination{
	domain.TripStyleSea: {
		{City: "Barcelona", IATA: "BCN", Reason: "Beautiful beaches and vibrant culture"},
		{City: "Heraklion (Crete)", IATA: "HER", Reason: "Crystal clear waters and ancient history"},
		{City: "Palma de Mallorca", IATA: "PMI", Reason: "Stunning Mediterranean coastline"},
		{City: "Malé (Maldives)", IATA: "MLE", Reason: "Paradise islands and luxury resorts"},
	},
	domain.TripStyleCity: {
		{City: "London", IATA: "LHR", Reason: "World-class museums and culture"},
		{City: "Paris", IATA: "CDG", Reason: "Art, cuisine and romance"},
		{City: "Istanbul", IATA: "IST", Reason: "Where East meets West"},
		{City: "Tokyo", IATA: "HND", Reason: "Tradition meets futurism"},
	},
	domain.TripStyleNature: {
		{City: "Reykjavik", IATA: "KEF", Reason: "Northern lights and geysers"},
		{City: "Marrakech", IATA: "RAK", Reason: "Atlas Mountains and desert"},
		{City: "Colombo", IATA: "CMB", Reason: "Tropical forests and wildlife"},
		{City: "Oslo", IATA: "OSL", Reason: "Fjords and Nordic wilderness"},
	},
	domain.TripStyleMixed: {
		{City: "Lisbon", IATA: "LIS", Reason: "City charm with nearby beaches"},
		{City: "Dubrovnik", IATA: "DBV", Reason: "Historic city on the Adriatic"},
		{City: "Nice", IATA: "NCE", Reason: "Riviera glamour and mountain hikes"},
		{City: "Bangkok", IATA: "BKK", Reason: "Temples, food and island escapes"},
	},
}
