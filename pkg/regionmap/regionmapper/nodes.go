package regionmapper

import (
	"strings"

	v1 "k8s.io/api/core/v1"
	"k8s.io/klog/v2"

	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/regions"
)

const (
	labelRegion     = "topology.kubernetes.io/region"
	labelZone       = "topology.kubernetes.io/zone"
	labelBetaRegion = "failure-domain.beta.kubernetes.io/region"
	labelAKSRegion  = "kubernetes.azure.com/location"
)

// CloudProviderInfo contains information used to recognize a cloud provider
type CloudProviderInfo struct {
	// Name is the standardized name of the provider (aws, gcp, azure)
	Name string

	// ProviderIDPrefix is the prefix used in node.spec.providerID (e.g., "aws://")
	ProviderIDPrefix string

	// LabelSelectors are label keys that identify this provider
	LabelSelectors []string
}

var cloudProviders = []CloudProviderInfo{
	{
		Name:             regions.ProviderAWS,
		ProviderIDPrefix: "aws://",
		LabelSelectors:   []string{"eks.amazonaws.com/nodegroup", "node.kubernetes.io/instance-type"},
	},
	{
		Name:             regions.ProviderGCP,
		ProviderIDPrefix: "gce://",
		LabelSelectors:   []string{"cloud.google.com/gke-nodepool"},
	},
	{
		Name:             regions.ProviderAzure,
		ProviderIDPrefix: "azure://",
		LabelSelectors:   []string{"kubernetes.azure.com/cluster"},
	},
}

// DetectCloudProviderAndRegion determines the cloud provider and region from node metadata
func DetectCloudProviderAndRegion(node *v1.Node) (provider string, region string, ok bool) {
	if node == nil {
		return "", "", false
	}

	provider = DetectCloudProvider(node)
	if provider == "" {
		return "", "", false
	}

	// Standard topology label is the most reliable
	if region := node.Labels[labelRegion]; region != "" {
		klog.V(3).InfoS("Detected region from standard topology label",
			"node", node.Name,
			"provider", provider,
			"region", region)
		return provider, region, true
	}

	var found bool
	switch provider {
	case regions.ProviderAWS:
		region, found = detectAWSRegion(node)
	case regions.ProviderGCP:
		region, found = detectGCPRegion(node)
	case regions.ProviderAzure:
		region, found = detectAzureRegion(node)
	}

	if found && region != "" {
		klog.V(3).InfoS("Detected region from provider-specific metadata",
			"node", node.Name,
			"provider", provider,
			"region", region)
		return provider, region, true
	}

	klog.V(3).InfoS("Could not detect cloud region", "node", node.Name, "provider", provider)
	return provider, "", false
}

// DetectCloudProvider determines the cloud provider from the provider ID, then labels
func DetectCloudProvider(node *v1.Node) string {
	if node == nil {
		return ""
	}

	if node.Spec.ProviderID != "" {
		for _, provider := range cloudProviders {
			if strings.HasPrefix(node.Spec.ProviderID, provider.ProviderIDPrefix) {
				return provider.Name
			}
		}
	}

	for _, provider := range cloudProviders {
		for _, labelKey := range provider.LabelSelectors {
			if _, exists := node.Labels[labelKey]; exists {
				return provider.Name
			}
		}
	}

	return ""
}

// detectAWSRegion handles providerIDs of the form aws://region/id and
// aws:///zone/id, then falls back to labels.
func detectAWSRegion(node *v1.Node) (string, bool) {
	if strings.HasPrefix(node.Spec.ProviderID, "aws://") {
		parts := strings.Split(strings.TrimLeft(strings.TrimPrefix(node.Spec.ProviderID, "aws://"), "/"), "/")
		if len(parts) >= 2 && parts[0] != "" {
			return awsZoneToRegion(parts[0]), true
		}
	}

	if region := node.Labels[labelBetaRegion]; region != "" {
		return region, true
	}

	if zone := node.Labels[labelZone]; zone != "" && strings.Count(zone, "-") >= 2 {
		return awsZoneToRegion(zone), true
	}

	return "", false
}

// awsZoneToRegion strips the zone letter: us-west-2a -> us-west-2
func awsZoneToRegion(zone string) string {
	if len(zone) < 2 {
		return zone
	}
	last, prev := zone[len(zone)-1], zone[len(zone)-2]
	if last >= 'a' && last <= 'z' && prev >= '0' && prev <= '9' {
		return zone[:len(zone)-1]
	}
	return zone
}

// detectGCPRegion handles providerIDs of the form gce://project/zone/instance
func detectGCPRegion(node *v1.Node) (string, bool) {
	if strings.HasPrefix(node.Spec.ProviderID, "gce://") {
		parts := strings.Split(strings.TrimPrefix(node.Spec.ProviderID, "gce://"), "/")
		if len(parts) >= 3 && parts[1] != "" {
			return gcpZoneToRegion(parts[1]), true
		}
	}

	if zone := node.Labels[labelZone]; zone != "" {
		return gcpZoneToRegion(zone), true
	}

	return "", false
}

// gcpZoneToRegion strips the zone suffix: us-central1-a -> us-central1
func gcpZoneToRegion(zone string) string {
	if lastDash := strings.LastIndex(zone, "-"); lastDash > 0 {
		return zone[:lastDash]
	}
	return zone
}

// detectAzureRegion reads the region labels set by AKS. The Azure providerID
// does not carry the location.
func detectAzureRegion(node *v1.Node) (string, bool) {
	if region := node.Labels[labelBetaRegion]; region != "" {
		return region, true
	}

	if location := node.Labels[labelAKSRegion]; location != "" {
		return location, true
	}

	return "", false
}
