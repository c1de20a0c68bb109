package regions

// GCPRegions lists GCP regions with the coordinates of their primary datacenter metro.
// Order is preserved in reports.
var GCPRegions = []RegionRecord{
	// North America
	{Provider: ProviderGCP, ID: "us-west1", DisplayName: "Oregon", City: "The Dalles", Country: "United States", CountryCode: "US", Latitude: 45.5946, Longitude: -121.1787},
	{Provider: ProviderGCP, ID: "us-west2", DisplayName: "Los Angeles", City: "Los Angeles", Country: "United States", CountryCode: "US", Latitude: 34.0522, Longitude: -118.2437},
	{Provider: ProviderGCP, ID: "us-west3", DisplayName: "Salt Lake City", City: "Salt Lake City", Country: "United States", CountryCode: "US", Latitude: 40.7608, Longitude: -111.891},
	{Provider: ProviderGCP, ID: "us-west4", DisplayName: "Las Vegas", City: "Las Vegas", Country: "United States", CountryCode: "US", Latitude: 36.1699, Longitude: -115.1398},
	{Provider: ProviderGCP, ID: "us-central1", DisplayName: "Iowa", City: "Council Bluffs", Country: "United States", CountryCode: "US", Latitude: 41.2619, Longitude: -95.8608},
	{Provider: ProviderGCP, ID: "us-east1", DisplayName: "South Carolina", City: "Moncks Corner", Country: "United States", CountryCode: "US", Latitude: 33.1954, Longitude: -80.0131},
	{Provider: ProviderGCP, ID: "us-east4", DisplayName: "Northern Virginia", City: "Ashburn", Country: "United States", CountryCode: "US", Latitude: 39.0438, Longitude: -77.4874},
	{Provider: ProviderGCP, ID: "us-east5", DisplayName: "Columbus", City: "Columbus", Country: "United States", CountryCode: "US", Latitude: 39.9612, Longitude: -82.9988},
	{Provider: ProviderGCP, ID: "us-south1", DisplayName: "Dallas", City: "Dallas", Country: "United States", CountryCode: "US", Latitude: 32.7767, Longitude: -96.797},
	{Provider: ProviderGCP, ID: "northamerica-northeast1", DisplayName: "Montréal", City: "Montréal", Country: "Canada", CountryCode: "CA", Latitude: 45.5017, Longitude: -73.5673},
	{Provider: ProviderGCP, ID: "northamerica-northeast2", DisplayName: "Toronto", City: "Toronto", Country: "Canada", CountryCode: "CA", Latitude: 43.6532, Longitude: -79.3832},
	{Provider: ProviderGCP, ID: "northamerica-south1", DisplayName: "Querétaro", City: "Querétaro", Country: "Mexico", CountryCode: "MX", Latitude: 20.5888, Longitude: -100.3899},

	// South America
	{Provider: ProviderGCP, ID: "southamerica-east1", DisplayName: "São Paulo (Osasco)", City: "São Paulo", Country: "Brazil", CountryCode: "BR", Latitude: -23.5505, Longitude: -46.6333},
	{Provider: ProviderGCP, ID: "southamerica-west1", DisplayName: "Santiago", City: "Santiago", Country: "Chile", CountryCode: "CL", Latitude: -33.4489, Longitude: -70.6693},

	// Europe
	{Provider: ProviderGCP, ID: "europe-west1", DisplayName: "St. Ghislain", City: "St. Ghislain", Country: "Belgium", CountryCode: "BE", Latitude: 50.453, Longitude: 3.806},
	{Provider: ProviderGCP, ID: "europe-west2", DisplayName: "London", City: "London", Country: "United Kingdom", CountryCode: "GB", Latitude: 51.5074, Longitude: -0.1278},
	{Provider: ProviderGCP, ID: "europe-west3", DisplayName: "Frankfurt", City: "Frankfurt", Country: "Germany", CountryCode: "DE", Latitude: 50.1109, Longitude: 8.6821},
	{Provider: ProviderGCP, ID: "europe-west4", DisplayName: "Eemshaven", City: "Eemshaven", Country: "Netherlands", CountryCode: "NL", Latitude: 53.449, Longitude: 6.831},
	{Provider: ProviderGCP, ID: "europe-west6", DisplayName: "Zürich", City: "Zürich", Country: "Switzerland", CountryCode: "CH", Latitude: 47.3769, Longitude: 8.5417},
	{Provider: ProviderGCP, ID: "europe-west8", DisplayName: "Milan", City: "Milan", Country: "Italy", CountryCode: "IT", Latitude: 45.4642, Longitude: 9.19},
	{Provider: ProviderGCP, ID: "europe-west9", DisplayName: "Paris", City: "Paris", Country: "France", CountryCode: "FR", Latitude: 48.8566, Longitude: 2.3522},
	{Provider: ProviderGCP, ID: "europe-west10", DisplayName: "Berlin", City: "Berlin", Country: "Germany", CountryCode: "DE", Latitude: 52.52, Longitude: 13.405},
	{Provider: ProviderGCP, ID: "europe-west12", DisplayName: "Turin", City: "Turin", Country: "Italy", CountryCode: "IT", Latitude: 45.0703, Longitude: 7.6869},
	{Provider: ProviderGCP, ID: "europe-central2", DisplayName: "Warsaw", City: "Warsaw", Country: "Poland", CountryCode: "PL", Latitude: 52.2297, Longitude: 21.0122},
	{Provider: ProviderGCP, ID: "europe-north1", DisplayName: "Hamina", City: "Hamina", Country: "Finland", CountryCode: "FI", Latitude: 60.5697, Longitude: 27.1977},
	{Provider: ProviderGCP, ID: "europe-north2", DisplayName: "Stockholm", City: "Stockholm", Country: "Sweden", CountryCode: "SE", Latitude: 59.3293, Longitude: 18.0686},
	{Provider: ProviderGCP, ID: "europe-southwest1", DisplayName: "Madrid", City: "Madrid", Country: "Spain", CountryCode: "ES", Latitude: 40.4168, Longitude: -3.7038},

	// Middle East
	{Provider: ProviderGCP, ID: "me-west1", DisplayName: "Tel Aviv", City: "Tel Aviv", Country: "Israel", CountryCode: "IL", Latitude: 32.0853, Longitude: 34.7818},
	{Provider: ProviderGCP, ID: "me-central1", DisplayName: "Doha", City: "Doha", Country: "Qatar", CountryCode: "QA", Latitude: 25.2854, Longitude: 51.531},
	{Provider: ProviderGCP, ID: "me-central2", DisplayName: "Dammam", City: "Dammam", Country: "Saudi Arabia", CountryCode: "SA", Latitude: 26.4207, Longitude: 50.0888},

	// Africa
	{Provider: ProviderGCP, ID: "africa-south1", DisplayName: "Johannesburg", City: "Johannesburg", Country: "South Africa", CountryCode: "ZA", Latitude: -26.2041, Longitude: 28.0473},

	// Asia
	{Provider: ProviderGCP, ID: "asia-south1", DisplayName: "Mumbai", City: "Mumbai", Country: "India", CountryCode: "IN", Latitude: 19.076, Longitude: 72.8777},
	{Provider: ProviderGCP, ID: "asia-south2", DisplayName: "Delhi", City: "Delhi", Country: "India", CountryCode: "IN", Latitude: 28.6139, Longitude: 77.209},
	{Provider: ProviderGCP, ID: "asia-southeast1", DisplayName: "Singapore", City: "Singapore", Country: "Singapore", CountryCode: "SG", Latitude: 1.3521, Longitude: 103.8198},
	{Provider: ProviderGCP, ID: "asia-southeast2", DisplayName: "Jakarta", City: "Jakarta", Country: "Indonesia", CountryCode: "ID", Latitude: -6.2088, Longitude: 106.8456},
	{Provider: ProviderGCP, ID: "asia-east1", DisplayName: "Changhua County", City: "Changhua County", Country: "Taiwan", CountryCode: "TW", Latitude: 24.0518, Longitude: 120.516},
	{Provider: ProviderGCP, ID: "asia-east2", DisplayName: "Hong Kong", City: "Hong Kong", Country: "Hong Kong", CountryCode: "HK", Latitude: 22.3193, Longitude: 114.1694},
	{Provider: ProviderGCP, ID: "asia-northeast1", DisplayName: "Tokyo", City: "Tokyo", Country: "Japan", CountryCode: "JP", Latitude: 35.6762, Longitude: 139.6503},
	{Provider: ProviderGCP, ID: "asia-northeast2", DisplayName: "Osaka", City: "Osaka", Country: "Japan", CountryCode: "JP", Latitude: 34.6937, Longitude: 135.5023},
	{Provider: ProviderGCP, ID: "asia-northeast3", DisplayName: "Seoul", City: "Seoul", Country: "South Korea", CountryCode: "KR", Latitude: 37.5665, Longitude: 126.978},

	// Australia
	{Provider: ProviderGCP, ID: "australia-southeast1", DisplayName: "Sydney", City: "Sydney", Country: "Australia", CountryCode: "AU", Latitude: -33.8688, Longitude: 151.2093},
	{Provider: ProviderGCP, ID: "australia-southeast2", DisplayName: "Melbourne", City: "Melbourne", Country: "Australia", CountryCode: "AU", Latitude: -37.8136, Longitude: 144.9631},
}
