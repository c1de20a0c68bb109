package regions

// AzureRegions lists Azure regions with the coordinates of their primary datacenter metro.
// Order is preserved in reports.
var AzureRegions = []RegionRecord{
	// United States (North America)
	{Provider: ProviderAzure, ID: "eastus", DisplayName: "East US", City: "Boydton (Virginia)", Country: "United States", CountryCode: "US", Latitude: 36.667, Longitude: -78.3875},
	{Provider: ProviderAzure, ID: "eastus2", DisplayName: "East US 2", City: "Boydton (Virginia)", Country: "United States", CountryCode: "US", Latitude: 36.667, Longitude: -78.3875},
	{Provider: ProviderAzure, ID: "centralus", DisplayName: "Central US", City: "Des Moines (Iowa)", Country: "United States", CountryCode: "US", Latitude: 41.5868, Longitude: -93.625},
	{Provider: ProviderAzure, ID: "northcentralus", DisplayName: "North Central US", City: "Chicago (Illinois)", Country: "United States", CountryCode: "US", Latitude: 41.8781, Longitude: -87.6298},
	{Provider: ProviderAzure, ID: "southcentralus", DisplayName: "South Central US", City: "San Antonio (Texas)", Country: "United States", CountryCode: "US", Latitude: 29.4241, Longitude: -98.4936},
	{Provider: ProviderAzure, ID: "westus", DisplayName: "West US", City: "San Jose (California)", Country: "United States", CountryCode: "US", Latitude: 37.3382, Longitude: -121.8863},
	{Provider: ProviderAzure, ID: "westus2", DisplayName: "West US 2", City: "Quincy (Washington)", Country: "United States", CountryCode: "US", Latitude: 47.2343, Longitude: -119.8524},
	{Provider: ProviderAzure, ID: "westus3", DisplayName: "West US 3", City: "Phoenix (Arizona)", Country: "United States", CountryCode: "US", Latitude: 33.4484, Longitude: -112.074},
	{Provider: ProviderAzure, ID: "westcentralus", DisplayName: "West Central US", City: "Cheyenne (Wyoming)", Country: "United States", CountryCode: "US", Latitude: 41.14, Longitude: -104.8202},
	{Provider: ProviderAzure, ID: "eastus3", DisplayName: "East US 3", City: "Atlanta (Georgia)", Country: "United States", CountryCode: "US", Latitude: 33.749, Longitude: -84.388},
	{Provider: ProviderAzure, ID: "westcentralus2", DisplayName: "West Central US 2", City: "Denver Metro (Colorado)", Country: "United States", CountryCode: "US", Latitude: 39.7392, Longitude: -104.9903},

	// Canada (North America)
	{Provider: ProviderAzure, ID: "canadacentral", DisplayName: "Canada Central", City: "Toronto (Ontario)", Country: "Canada", CountryCode: "CA", Latitude: 43.6532, Longitude: -79.3832},
	{Provider: ProviderAzure, ID: "canadaeast", DisplayName: "Canada East", City: "Québec City (Québec)", Country: "Canada", CountryCode: "CA", Latitude: 46.8139, Longitude: -71.208},

	// Mexico (North America)
	{Provider: ProviderAzure, ID: "mexicocentral", DisplayName: "Mexico Central", City: "Querétaro", Country: "Mexico", CountryCode: "MX", Latitude: 20.5888, Longitude: -100.3899},

	// South America
	{Provider: ProviderAzure, ID: "brazilsouth", DisplayName: "Brazil South", City: "São Paulo State", Country: "Brazil", CountryCode: "BR", Latitude: -23.5505, Longitude: -46.6333},
	{Provider: ProviderAzure, ID: "brazilsoutheast", DisplayName: "Brazil Southeast", City: "Rio de Janeiro", Country: "Brazil", CountryCode: "BR", Latitude: -22.9068, Longitude: -43.1729},
	{Provider: ProviderAzure, ID: "chilecentral", DisplayName: "Chile Central", City: "Santiago", Country: "Chile", CountryCode: "CL", Latitude: -33.4489, Longitude: -70.6693},

	// Europe
	{Provider: ProviderAzure, ID: "northeurope", DisplayName: "North Europe", City: "Dublin", Country: "Ireland", CountryCode: "IE", Latitude: 53.3498, Longitude: -6.2603},
	{Provider: ProviderAzure, ID: "westeurope", DisplayName: "West Europe", City: "Amsterdam / NL", Country: "Netherlands", CountryCode: "NL", Latitude: 52.3676, Longitude: 4.9041},
	{Provider: ProviderAzure, ID: "uksouth", DisplayName: "UK South", City: "London", Country: "United Kingdom", CountryCode: "GB", Latitude: 51.5074, Longitude: -0.1278},
	{Provider: ProviderAzure, ID: "ukwest", DisplayName: "UK West", City: "Cardiff", Country: "United Kingdom", CountryCode: "GB", Latitude: 51.4816, Longitude: -3.1791},
	{Provider: ProviderAzure, ID: "francecentral", DisplayName: "France Central", City: "Paris", Country: "France", CountryCode: "FR", Latitude: 48.8566, Longitude: 2.3522},
	{Provider: ProviderAzure, ID: "francesouth", DisplayName: "France South", City: "Marseille", Country: "France", CountryCode: "FR", Latitude: 43.2965, Longitude: 5.3698},
	{Provider: ProviderAzure, ID: "switzerlandnorth", DisplayName: "Switzerland North", City: "Zürich", Country: "Switzerland", CountryCode: "CH", Latitude: 47.3769, Longitude: 8.5417},
	{Provider: ProviderAzure, ID: "switzerlandwest", DisplayName: "Switzerland West", City: "Geneva", Country: "Switzerland", CountryCode: "CH", Latitude: 46.2044, Longitude: 6.1432},
	{Provider: ProviderAzure, ID: "germanywestcentral", DisplayName: "Germany West Central", City: "Frankfurt am Main", Country: "Germany", CountryCode: "DE", Latitude: 50.1109, Longitude: 8.6821},
	{Provider: ProviderAzure, ID: "germanynorth", DisplayName: "Germany North", City: "Berlin", Country: "Germany", CountryCode: "DE", Latitude: 52.52, Longitude: 13.405},
	{Provider: ProviderAzure, ID: "norwayeast", DisplayName: "Norway East", City: "Oslo", Country: "Norway", CountryCode: "NO", Latitude: 59.9139, Longitude: 10.7522},
	{Provider: ProviderAzure, ID: "norwaywest", DisplayName: "Norway West", City: "Stavanger", Country: "Norway", CountryCode: "NO", Latitude: 58.969, Longitude: 5.7331},
	{Provider: ProviderAzure, ID: "swedencentral", DisplayName: "Sweden Central", City: "Gävle/Sandviken", Country: "Sweden", CountryCode: "SE", Latitude: 60.6749, Longitude: 17.1413},
	{Provider: ProviderAzure, ID: "swedensouth", DisplayName: "Sweden South", City: "Malmö region", Country: "Sweden", CountryCode: "SE", Latitude: 55.6049, Longitude: 13.0038},
	{Provider: ProviderAzure, ID: "polandcentral", DisplayName: "Poland Central", City: "Warsaw", Country: "Poland", CountryCode: "PL", Latitude: 52.2297, Longitude: 21.0122},
	{Provider: ProviderAzure, ID: "italynorth", DisplayName: "Italy North", City: "Milan", Country: "Italy", CountryCode: "IT", Latitude: 45.4642, Longitude: 9.19},
	{Provider: ProviderAzure, ID: "spaincentral", DisplayName: "Spain Central", City: "Madrid", Country: "Spain", CountryCode: "ES", Latitude: 40.4168, Longitude: -3.7038},
	{Provider: ProviderAzure, ID: "austriacenter", DisplayName: "Austria East", City: "Vienna (metro)", Country: "Austria", CountryCode: "AT", Latitude: 48.2082, Longitude: 16.3738},

	// Middle East
	{Provider: ProviderAzure, ID: "uaenorth", DisplayName: "UAE North", City: "Dubai", Country: "United Arab Emirates", CountryCode: "AE", Latitude: 25.2048, Longitude: 55.2708},
	{Provider: ProviderAzure, ID: "uaecentral", DisplayName: "UAE Central", City: "Abu Dhabi", Country: "United Arab Emirates", CountryCode: "AE", Latitude: 24.4539, Longitude: 54.3773},
	{Provider: ProviderAzure, ID: "qatarcentral", DisplayName: "Qatar Central", City: "Doha", Country: "Qatar", CountryCode: "QA", Latitude: 25.2854, Longitude: 51.531},
	{Provider: ProviderAzure, ID: "israelcentral", DisplayName: "Israel Central", City: "Tel Aviv (metro)", Country: "Israel", CountryCode: "IL", Latitude: 32.0853, Longitude: 34.7818},
	{Provider: ProviderAzure, ID: "saudiarabiaeast", DisplayName: "Saudi Arabia East", City: "Dammam (metro)", Country: "Saudi Arabia", CountryCode: "SA", Latitude: 26.4207, Longitude: 50.0888},
	{Provider: ProviderAzure, ID: "saudiarabiacentral", DisplayName: "Saudi Arabia Central", City: "Jeddah (metro)", Country: "Saudi Arabia", CountryCode: "SA", Latitude: 21.4858, Longitude: 39.1925},

	// Africa
	{Provider: ProviderAzure, ID: "southafricanorth", DisplayName: "South Africa North", City: "Johannesburg", Country: "South Africa", CountryCode: "ZA", Latitude: -26.2041, Longitude: 28.0473},
	{Provider: ProviderAzure, ID: "southafricawest", DisplayName: "South Africa West", City: "Cape Town", Country: "South Africa", CountryCode: "ZA", Latitude: -33.9249, Longitude: 18.4241},

	// Asia
	{Provider: ProviderAzure, ID: "eastasia", DisplayName: "East Asia", City: "Hong Kong", Country: "Hong Kong", CountryCode: "HK", Latitude: 22.3193, Longitude: 114.1694},
	{Provider: ProviderAzure, ID: "southeastasia", DisplayName: "Southeast Asia", City: "Singapore", Country: "Singapore", CountryCode: "SG", Latitude: 1.3521, Longitude: 103.8198},
	{Provider: ProviderAzure, ID: "japaneast", DisplayName: "Japan East", City: "Tokyo/Saitama", Country: "Japan", CountryCode: "JP", Latitude: 35.6762, Longitude: 139.6503},
	{Provider: ProviderAzure, ID: "japanwest", DisplayName: "Japan West", City: "Osaka", Country: "Japan", CountryCode: "JP", Latitude: 34.6937, Longitude: 135.5023},
	{Provider: ProviderAzure, ID: "koreacentral", DisplayName: "Korea Central", City: "Seoul", Country: "South Korea", CountryCode: "KR", Latitude: 37.5665, Longitude: 126.978},
	{Provider: ProviderAzure, ID: "koreasouth", DisplayName: "Korea South", City: "Busan", Country: "South Korea", CountryCode: "KR", Latitude: 35.1796, Longitude: 129.0756},
	{Provider: ProviderAzure, ID: "centralindia", DisplayName: "Central India", City: "Pune", Country: "India", CountryCode: "IN", Latitude: 18.5204, Longitude: 73.8567},
	{Provider: ProviderAzure, ID: "southindia", DisplayName: "South India", City: "Chennai", Country: "India", CountryCode: "IN", Latitude: 13.0827, Longitude: 80.2707},
	{Provider: ProviderAzure, ID: "westindia", DisplayName: "West India", City: "Mumbai", Country: "India", CountryCode: "IN", Latitude: 19.076, Longitude: 72.8777},
	{Provider: ProviderAzure, ID: "indonesiacentral", DisplayName: "Indonesia Central", City: "Jakarta", Country: "Indonesia", CountryCode: "ID", Latitude: -6.2088, Longitude: 106.8456},
	{Provider: ProviderAzure, ID: "malaysiawest", DisplayName: "Malaysia West", City: "Kuala Lumpur (metro)", Country: "Malaysia", CountryCode: "MY", Latitude: 3.139, Longitude: 101.6869},
	{Provider: ProviderAzure, ID: "taiwannorth", DisplayName: "Taiwan North", City: "Taipei (metro)", Country: "Taiwan", CountryCode: "TW", Latitude: 25.033, Longitude: 121.5654},

	// Oceania
	{Provider: ProviderAzure, ID: "australiaeast", DisplayName: "Australia East", City: "Sydney", Country: "Australia", CountryCode: "AU", Latitude: -33.8688, Longitude: 151.2093},
	{Provider: ProviderAzure, ID: "australiasoutheast", DisplayName: "Australia Southeast", City: "Melbourne", Country: "Australia", CountryCode: "AU", Latitude: -37.8136, Longitude: 144.9631},
	{Provider: ProviderAzure, ID: "australiacentral", DisplayName: "Australia Central", City: "Canberra (restricted)", Country: "Australia", CountryCode: "AU", Latitude: -35.2809, Longitude: 149.13},
	{Provider: ProviderAzure, ID: "newzealandnorth", DisplayName: "New Zealand North", City: "Auckland", Country: "New Zealand", CountryCode: "NZ", Latitude: -36.8509, Longitude: 174.7645},
}
