package regions

// AWSRegions lists AWS regions with the coordinates of their primary datacenter metro.
// Order is preserved in reports.
var AWSRegions = []RegionRecord{
	// United States (North America)
	{Provider: ProviderAWS, ID: "us-east-1", DisplayName: "US East (N. Virginia)", City: "Ashburn", Country: "United States", CountryCode: "US", Latitude: 39.0438, Longitude: -77.4874},
	{Provider: ProviderAWS, ID: "us-east-2", DisplayName: "US East (Ohio)", City: "Columbus", Country: "United States", CountryCode: "US", Latitude: 39.9612, Longitude: -82.9988},
	{Provider: ProviderAWS, ID: "us-west-1", DisplayName: "US West (N. California)", City: "San Jose", Country: "United States", CountryCode: "US", Latitude: 37.3382, Longitude: -121.8863},
	{Provider: ProviderAWS, ID: "us-west-2", DisplayName: "US West (Oregon)", City: "Boardman/The Dalles", Country: "United States", CountryCode: "US", Latitude: 45.838, Longitude: -119.7006},
	{Provider: ProviderAWS, ID: "us-gov-east-1", DisplayName: "AWS GovCloud East", City: "Ashburn", Country: "United States", CountryCode: "US", Latitude: 39.0438, Longitude: -77.4874},
	{Provider: ProviderAWS, ID: "us-gov-west-1", DisplayName: "AWS GovCloud West", City: "Seattle Metro", Country: "United States", CountryCode: "US", Latitude: 47.6062, Longitude: -122.3321},

	// Canada (North America)
	{Provider: ProviderAWS, ID: "ca-central-1", DisplayName: "Canada Central", City: "Montreal", Country: "Canada", CountryCode: "CA", Latitude: 45.5017, Longitude: -73.5673},
	{Provider: ProviderAWS, ID: "ca-west-1", DisplayName: "Canada West", City: "Calgary", Country: "Canada", CountryCode: "CA", Latitude: 51.0447, Longitude: -114.0719},

	// Mexico Placeholder (announced)
	{Provider: ProviderAWS, ID: "mx-central-1", DisplayName: "Mexico (planned)", City: "Querétaro", Country: "Mexico", CountryCode: "MX", Latitude: 20.5888, Longitude: -100.3899},

	// South America
	{Provider: ProviderAWS, ID: "sa-east-1", DisplayName: "South America East", City: "São Paulo", Country: "Brazil", CountryCode: "BR", Latitude: -23.5505, Longitude: -46.6333},

	// Europe
	{Provider: ProviderAWS, ID: "eu-west-1", DisplayName: "EU West (Ireland)", City: "Dublin", Country: "Ireland", CountryCode: "IE", Latitude: 53.3498, Longitude: -6.2603},
	{Provider: ProviderAWS, ID: "eu-west-2", DisplayName: "EU West (London)", City: "London", Country: "United Kingdom", CountryCode: "GB", Latitude: 51.5074, Longitude: -0.1278},
	{Provider: ProviderAWS, ID: "eu-west-3", DisplayName: "EU West (Paris)", City: "Paris", Country: "France", CountryCode: "FR", Latitude: 48.8566, Longitude: 2.3522},
	{Provider: ProviderAWS, ID: "eu-central-1", DisplayName: "EU Central (Frankfurt)", City: "Frankfurt", Country: "Germany", CountryCode: "DE", Latitude: 50.1109, Longitude: 8.6821},
	{Provider: ProviderAWS, ID: "eu-central-2", DisplayName: "EU Central 2 (Zurich)", City: "Zurich", Country: "Switzerland", CountryCode: "CH", Latitude: 47.3769, Longitude: 8.5417},
	{Provider: ProviderAWS, ID: "eu-north-1", DisplayName: "EU North (Stockholm)", City: "Stockholm", Country: "Sweden", CountryCode: "SE", Latitude: 59.3293, Longitude: 18.0686},
	{Provider: ProviderAWS, ID: "eu-south-1", DisplayName: "EU South (Milan)", City: "Milan", Country: "Italy", CountryCode: "IT", Latitude: 45.4642, Longitude: 9.19},
	{Provider: ProviderAWS, ID: "eu-south-2", DisplayName: "EU South 2 (Madrid)", City: "Madrid", Country: "Spain", CountryCode: "ES", Latitude: 40.4168, Longitude: -3.7038},
	{Provider: ProviderAWS, ID: "eu-west-4", DisplayName: "EU West 4 (Brussels)", City: "Brussels", Country: "Belgium", CountryCode: "BE", Latitude: 50.8503, Longitude: 4.3517},
	{Provider: ProviderAWS, ID: "eu-east-1", DisplayName: "EU East (Warsaw)", City: "Warsaw", Country: "Poland", CountryCode: "PL", Latitude: 52.2297, Longitude: 21.0122},
	{Provider: ProviderAWS, ID: "eu-east-2", DisplayName: "EU East 2 (Helsinki)", City: "Helsinki", Country: "Finland", CountryCode: "FI", Latitude: 60.1699, Longitude: 24.9384},

	// Middle East
	{Provider: ProviderAWS, ID: "il-central-1", DisplayName: "Middle East Central", City: "Tel Aviv", Country: "Israel", CountryCode: "IL", Latitude: 32.0853, Longitude: 34.7818},
	{Provider: ProviderAWS, ID: "me-south-1", DisplayName: "Middle East South", City: "Bahrain/Manama", Country: "Bahrain", CountryCode: "BH", Latitude: 26.2074, Longitude: 50.5832},
	{Provider: ProviderAWS, ID: "me-central-1", DisplayName: "Middle East Central 2", City: "Dubai", Country: "UAE", CountryCode: "AE", Latitude: 25.2048, Longitude: 55.2708},

	// Africa
	{Provider: ProviderAWS, ID: "af-south-1", DisplayName: "Africa South", City: "Cape Town", Country: "South Africa", CountryCode: "ZA", Latitude: -33.9249, Longitude: 18.4241},

	// Asia
	{Provider: ProviderAWS, ID: "ap-east-1", DisplayName: "Asia Pacific East", City: "Hong Kong", Country: "Hong Kong", CountryCode: "HK", Latitude: 22.3193, Longitude: 114.1694},
	{Provider: ProviderAWS, ID: "ap-east-2", DisplayName: "Asia Pacific East", City: "Taipei", Country: "Taiwan", CountryCode: "TW", Latitude: 25.03364, Longitude: 121.55811},
	{Provider: ProviderAWS, ID: "ap-southeast-1", DisplayName: "AP Southeast 1", City: "Singapore", Country: "Singapore", CountryCode: "SG", Latitude: 1.3521, Longitude: 103.8198},
	{Provider: ProviderAWS, ID: "ap-southeast-2", DisplayName: "AP Southeast 2", City: "Sydney", Country: "Australia", CountryCode: "AU", Latitude: -33.8688, Longitude: 151.2093},
	{Provider: ProviderAWS, ID: "ap-southeast-3", DisplayName: "AP Southeast 3", City: "Jakarta", Country: "Indonesia", CountryCode: "ID", Latitude: -6.2088, Longitude: 106.8456},
	{Provider: ProviderAWS, ID: "ap-southeast-4", DisplayName: "AP Southeast 4", City: "Melbourne", Country: "Australia", CountryCode: "AU", Latitude: -37.8136, Longitude: 144.9631},
	{Provider: ProviderAWS, ID: "ap-southeast-5", DisplayName: "AP Southeast 5", City: "Kuala Lumpur", Country: "Malaysia", CountryCode: "MY", Latitude: 3.1497, Longitude: 101.7047},
	{Provider: ProviderAWS, ID: "ap-southeast-6", DisplayName: "AP Southeast 6", City: "Auckland", Country: "New Zealand", CountryCode: "NZ", Latitude: -36.8509, Longitude: 174.7645},
	{Provider: ProviderAWS, ID: "ap-southeast-7", DisplayName: "AP Southeast 7", City: "Bangkok", Country: "Thailand", CountryCode: "TH", Latitude: 13.758, Longitude: 100.5033},
	{Provider: ProviderAWS, ID: "ap-south-1", DisplayName: "AP South 1", City: "Mumbai", Country: "India", CountryCode: "IN", Latitude: 19.076, Longitude: 72.8777},
	{Provider: ProviderAWS, ID: "ap-south-2", DisplayName: "AP South 2", City: "Hyderabad", Country: "India", CountryCode: "IN", Latitude: 17.385, Longitude: 78.4867},
	{Provider: ProviderAWS, ID: "ap-northeast-1", DisplayName: "AP Northeast 1", City: "Tokyo", Country: "Japan", CountryCode: "JP", Latitude: 35.6762, Longitude: 139.6503},
	{Provider: ProviderAWS, ID: "ap-northeast-2", DisplayName: "AP Northeast 2", City: "Seoul", Country: "South Korea", CountryCode: "KR", Latitude: 37.5665, Longitude: 126.978},
	{Provider: ProviderAWS, ID: "ap-northeast-3", DisplayName: "AP Northeast 3", City: "Osaka", Country: "Japan", CountryCode: "JP", Latitude: 34.6937, Longitude: 135.5023},
}
