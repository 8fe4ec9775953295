package catalog

// Bundled returns the built-in catalog rows. Offsets are standard time.
func Bundled() []Entry {
	return []Entry{
		// Americas
		{Timezone: "America/New_York", City: "New York", Country: "United States", CountryCode: "US", UTCOffset: -5},
		{Timezone: "America/Chicago", City: "Chicago", Country: "United States", CountryCode: "US", UTCOffset: -6},
		{Timezone: "America/Denver", City: "Denver", Country: "United States", CountryCode: "US", UTCOffset: -7},
		{Timezone: "America/Los_Angeles", City: "Los Angeles", Country: "United States", CountryCode: "US", UTCOffset: -8},
		{Timezone: "America/Anchorage", City: "Anchorage", Country: "United States", CountryCode: "US", UTCOffset: -9},
		{Timezone: "Pacific/Honolulu", City: "Honolulu", Country: "United States", CountryCode: "US", UTCOffset: -10},
		{Timezone: "America/Toronto", City: "Toronto", Country: "Canada", CountryCode: "CA", UTCOffset: -5},
		{Timezone: "America/Vancouver", City: "Vancouver", Country: "Canada", CountryCode: "CA", UTCOffset: -8},
		{Timezone: "America/Mexico_City", City: "Mexico City", Country: "Mexico", CountryCode: "MX", UTCOffset: -6},
		{Timezone: "America/Sao_Paulo", City: "São Paulo", Country: "Brazil", CountryCode: "BR", UTCOffset: -3},
		{Timezone: "America/Argentina/Buenos_Aires", City: "Buenos Aires", Country: "Argentina", CountryCode: "AR", UTCOffset: -3},
		{Timezone: "America/Santiago", City: "Santiago", Country: "Chile", CountryCode: "CL", UTCOffset: -4},
		{Timezone: "America/Lima", City: "Lima", Country: "Peru", CountryCode: "PE", UTCOffset: -5},
		{Timezone: "America/Bogota", City: "Bogotá", Country: "Colombia", CountryCode: "CO", UTCOffset: -5},
		// Europe
		{Timezone: "Europe/London", City: "London", Country: "United Kingdom", CountryCode: "GB", UTCOffset: 0},
		{Timezone: "Europe/Dublin", City: "Dublin", Country: "Ireland", CountryCode: "IE", UTCOffset: 0},
		{Timezone: "Europe/Lisbon", City: "Lisbon", Country: "Portugal", CountryCode: "PT", UTCOffset: 0},
		{Timezone: "Europe/Paris", City: "Paris", Country: "France", CountryCode: "FR", UTCOffset: 1},
		{Timezone: "Europe/Berlin", City: "Berlin", Country: "Germany", CountryCode: "DE", UTCOffset: 1},
		{Timezone: "Europe/Madrid", City: "Madrid", Country: "Spain", CountryCode: "ES", UTCOffset: 1},
		{Timezone: "Europe/Rome", City: "Rome", Country: "Italy", CountryCode: "IT", UTCOffset: 1},
		{Timezone: "Europe/Amsterdam", City: "Amsterdam", Country: "Netherlands", CountryCode: "NL", UTCOffset: 1},
		{Timezone: "Europe/Brussels", City: "Brussels", Country: "Belgium", CountryCode: "BE", UTCOffset: 1},
		{Timezone: "Europe/Vienna", City: "Vienna", Country: "Austria", CountryCode: "AT", UTCOffset: 1},
		{Timezone: "Europe/Zurich", City: "Zurich", Country: "Switzerland", CountryCode: "CH", UTCOffset: 1},
		{Timezone: "Europe/Stockholm", City: "Stockholm", Country: "Sweden", CountryCode: "SE", UTCOffset: 1},
		{Timezone: "Europe/Oslo", City: "Oslo", Country: "Norway", CountryCode: "NO", UTCOffset: 1},
		{Timezone: "Europe/Copenhagen", City: "Copenhagen", Country: "Denmark", CountryCode: "DK", UTCOffset: 1},
		{Timezone: "Europe/Warsaw", City: "Warsaw", Country: "Poland", CountryCode: "PL", UTCOffset: 1},
		{Timezone: "Europe/Prague", City: "Prague", Country: "Czechia", CountryCode: "CZ", UTCOffset: 1},
		{Timezone: "Europe/Budapest", City: "Budapest", Country: "Hungary", CountryCode: "HU", UTCOffset: 1},
		{Timezone: "Europe/Helsinki", City: "Helsinki", Country: "Finland", CountryCode: "FI", UTCOffset: 2},
		{Timezone: "Europe/Athens", City: "Athens", Country: "Greece", CountryCode: "GR", UTCOffset: 2},
		{Timezone: "Europe/Istanbul", City: "Istanbul", Country: "Turkey", CountryCode: "TR", UTCOffset: 3},
		{Timezone: "Europe/Moscow", City: "Moscow", Country: "Russia", CountryCode: "RU", UTCOffset: 3},
		// Middle East
		{Timezone: "Asia/Jerusalem", City: "Jerusalem", Country: "Israel", CountryCode: "IL", UTCOffset: 2},
		{Timezone: "Asia/Riyadh", City: "Riyadh", Country: "Saudi Arabia", CountryCode: "SA", UTCOffset: 3},
		{Timezone: "Asia/Qatar", City: "Doha", Country: "Qatar", CountryCode: "QA", UTCOffset: 3},
		{Timezone: "Asia/Dubai", City: "Dubai", Country: "United Arab Emirates", CountryCode: "AE", UTCOffset: 4},
		// Asia
		{Timezone: "Asia/Karachi", City: "Karachi", Country: "Pakistan", CountryCode: "PK", UTCOffset: 5},
		{Timezone: "Asia/Kolkata", City: "Mumbai", Country: "India", CountryCode: "IN", UTCOffset: 5.5},
		{Timezone: "Asia/Kathmandu", City: "Kathmandu", Country: "Nepal", CountryCode: "NP", UTCOffset: 5.75},
		{Timezone: "Asia/Dhaka", City: "Dhaka", Country: "Bangladesh", CountryCode: "BD", UTCOffset: 6},
		{Timezone: "Asia/Bangkok", City: "Bangkok", Country: "Thailand", CountryCode: "TH", UTCOffset: 7},
		{Timezone: "Asia/Jakarta", City: "Jakarta", Country: "Indonesia", CountryCode: "ID", UTCOffset: 7},
		{Timezone: "Asia/Ho_Chi_Minh", City: "Ho Chi Minh City", Country: "Vietnam", CountryCode: "VN", UTCOffset: 7},
		{Timezone: "Asia/Shanghai", City: "Shanghai", Country: "China", CountryCode: "CN", UTCOffset: 8},
		{Timezone: "Asia/Hong_Kong", City: "Hong Kong", Country: "Hong Kong", CountryCode: "HK", UTCOffset: 8},
		{Timezone: "Asia/Taipei", City: "Taipei", Country: "Taiwan", CountryCode: "TW", UTCOffset: 8},
		{Timezone: "Asia/Singapore", City: "Singapore", Country: "Singapore", CountryCode: "SG", UTCOffset: 8},
		{Timezone: "Asia/Kuala_Lumpur", City: "Kuala Lumpur", Country: "Malaysia", CountryCode: "MY", UTCOffset: 8},
		{Timezone: "Asia/Manila", City: "Manila", Country: "Philippines", CountryCode: "PH", UTCOffset: 8},
		{Timezone: "Asia/Seoul", City: "Seoul", Country: "South Korea", CountryCode: "KR", UTCOffset: 9},
		{Timezone: "Asia/Tokyo", City: "Tokyo", Country: "Japan", CountryCode: "JP", UTCOffset: 9},
		// Oceania
		{Timezone: "Australia/Perth", City: "Perth", Country: "Australia", CountryCode: "AU", UTCOffset: 8},
		{Timezone: "Australia/Brisbane", City: "Brisbane", Country: "Australia", CountryCode: "AU", UTCOffset: 10},
		{Timezone: "Australia/Sydney", City: "Sydney", Country: "Australia", CountryCode: "AU", UTCOffset: 10},
		{Timezone: "Australia/Melbourne", City: "Melbourne", Country: "Australia", CountryCode: "AU", UTCOffset: 10},
		{Timezone: "Pacific/Auckland", City: "Auckland", Country: "New Zealand", CountryCode: "NZ", UTCOffset: 12},
		// Africa
		{Timezone: "Africa/Casablanca", City: "Casablanca", Country: "Morocco", CountryCode: "MA", UTCOffset: 1},
		{Timezone: "Africa/Lagos", City: "Lagos", Country: "Nigeria", CountryCode: "NG", UTCOffset: 1},
		{Timezone: "Africa/Cairo", City: "Cairo", Country: "Egypt", CountryCode: "EG", UTCOffset: 2},
		{Timezone: "Africa/Johannesburg", City: "Johannesburg", Country: "South Africa", CountryCode: "ZA", UTCOffset: 2},
		{Timezone: "Africa/Nairobi", City: "Nairobi", Country: "Kenya", CountryCode: "KE", UTCOffset: 3},
		// Reference
		{Timezone: "UTC", City: "UTC", Country: "Coordinated Universal Time", CountryCode: UnknownCountry, UTCOffset: 0},
	}
}
