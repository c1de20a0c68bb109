// Package regions holds the cloud region tables fed to the WattTime lookup:
// one record per provider region with the coordinates used to resolve its
// grid region.
package regions

// Known cloud providers
const (
	ProviderAWS   = "aws"
	ProviderGCP   = "gcp"
	ProviderAzure = "azure"
)

// RegionRecord describes a cloud region and the grid region it resolved to
type RegionRecord struct {
	// Provider is the cloud provider (aws, gcp, azure)
	Provider string `yaml:"provider" json:"provider"`

	// ID is the region identifier in the cloud provider (e.g. us-east-1, westeurope)
	ID string `yaml:"id" json:"id"`

	// DisplayName is the provider's human readable region name
	DisplayName string `yaml:"displayName" json:"displayName"`

	City        string `yaml:"city" json:"city"`
	Country     string `yaml:"country" json:"country"`
	CountryCode string `yaml:"countryCode" json:"countryCode"`

	// Latitude and Longitude locate the datacenter metro used for the lookup
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`

	// ResolvedCode is the WattTime region abbreviation. The table value is the
	// seed kept when resolution fails.
	ResolvedCode string `yaml:"resolvedCode" json:"resolvedCode"`
}
