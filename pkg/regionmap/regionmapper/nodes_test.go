package regionmapper

import (
	"testing"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestDetectCloudProvider(t *testing.T) {
	testCases := []struct {
		providerID     string
		labels         map[string]string
		expectProvider string
	}{
		{"aws://us-east-1/instance-id", nil, "aws"},
		{"gce://project-id/us-central1-a/instance-id", nil, "gcp"},
		{"azure:///subscriptions/sub/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm", nil, "azure"},
		{"", map[string]string{"node.kubernetes.io/instance-type": "m5.large"}, "aws"},
		{"", map[string]string{"cloud.google.com/gke-nodepool": "pool-1"}, "gcp"},
		{"", map[string]string{"kubernetes.azure.com/cluster": "cluster-1"}, "azure"},
		{"", map[string]string{"unrelated": "label"}, ""},
		{"kind://docker/kind/kind-control-plane", nil, ""},
	}

	for _, tc := range testCases {
		node := &v1.Node{
			Spec: v1.NodeSpec{
				ProviderID: tc.providerID,
			},
			ObjectMeta: metav1.ObjectMeta{
				Labels: tc.labels,
			},
		}

		provider := DetectCloudProvider(node)
		if provider != tc.expectProvider {
			t.Errorf("DetectCloudProvider returned %q, expected %q for providerID=%q, labels=%v", provider, tc.expectProvider, tc.providerID, tc.labels)
		}
	}

	if DetectCloudProvider(nil) != "" {
		t.Error("Expected empty provider for nil node")
	}
}

func TestDetectCloudProviderAndRegion(t *testing.T) {
	testCases := []struct {
		name           string
		node           *v1.Node
		expectOk       bool
		expectProvider string
		expectRegion   string
	}{
		{
			name: "standard topology label wins",
			node: &v1.Node{
				ObjectMeta: metav1.ObjectMeta{
					Labels: map[string]string{
						"topology.kubernetes.io/region": "eu-west-1",
						"topology.kubernetes.io/zone":   "us-east-1a",
					},
				},
				Spec: v1.NodeSpec{ProviderID: "aws://us-east-1/i-1"},
			},
			expectOk:       true,
			expectProvider: "aws",
			expectRegion:   "eu-west-1",
		},
		{
			name: "aws region from providerID",
			node: &v1.Node{
				Spec: v1.NodeSpec{ProviderID: "aws://us-east-1/i-12345"},
			},
			expectOk:       true,
			expectProvider: "aws",
			expectRegion:   "us-east-1",
		},
		{
			name: "aws zone from EKS providerID",
			node: &v1.Node{
				Spec: v1.NodeSpec{ProviderID: "aws:///us-west-2b/i-0abc"},
			},
			expectOk:       true,
			expectProvider: "aws",
			expectRegion:   "us-west-2",
		},
		{
			name: "aws zone label",
			node: &v1.Node{
				ObjectMeta: metav1.ObjectMeta{
					Labels: map[string]string{
						"node.kubernetes.io/instance-type": "m5.large",
						"topology.kubernetes.io/zone":      "ap-southeast-2c",
					},
				},
			},
			expectOk:       true,
			expectProvider: "aws",
			expectRegion:   "ap-southeast-2",
		},
		{
			name: "aws without region metadata",
			node: &v1.Node{
				Spec: v1.NodeSpec{ProviderID: "aws://invalid-format"},
			},
			expectOk:       false,
			expectProvider: "aws",
		},
		{
			name: "gcp zone from providerID",
			node: &v1.Node{
				Spec: v1.NodeSpec{ProviderID: "gce://my-project/europe-west4-a/gke-node-1"},
			},
			expectOk:       true,
			expectProvider: "gcp",
			expectRegion:   "europe-west4",
		},
		{
			name: "gcp zone label",
			node: &v1.Node{
				ObjectMeta: metav1.ObjectMeta{
					Labels: map[string]string{
						"cloud.google.com/gke-nodepool": "pool",
						"topology.kubernetes.io/zone":   "us-central1-f",
					},
				},
			},
			expectOk:       true,
			expectProvider: "gcp",
			expectRegion:   "us-central1",
		},
		{
			name: "azure location label",
			node: &v1.Node{
				ObjectMeta: metav1.ObjectMeta{
					Labels: map[string]string{
						"kubernetes.azure.com/cluster":  "mc_rg",
						"kubernetes.azure.com/location": "westeurope",
					},
				},
			},
			expectOk:       true,
			expectProvider: "azure",
			expectRegion:   "westeurope",
		},
		{
			name: "azure without labels",
			node: &v1.Node{
				Spec: v1.NodeSpec{ProviderID: "azure:///subscriptions/sub/vm"},
			},
			expectOk:       false,
			expectProvider: "azure",
		},
		{
			name:     "unknown provider",
			node:     &v1.Node{},
			expectOk: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider, region, ok := DetectCloudProviderAndRegion(tc.node)
			if ok != tc.expectOk {
				t.Errorf("Expected ok=%v, got %v", tc.expectOk, ok)
			}
			if provider != tc.expectProvider {
				t.Errorf("Expected provider %q, got %q", tc.expectProvider, provider)
			}
			if region != tc.expectRegion {
				t.Errorf("Expected region %q, got %q", tc.expectRegion, region)
			}
		})
	}
}

func TestZoneToRegion(t *testing.T) {
	awsCases := map[string]string{
		"us-east-1a":   "us-east-1",
		"us-east-1":    "us-east-1",
		"eu-central-2": "eu-central-2",
	}
	for zone, expected := range awsCases {
		if got := awsZoneToRegion(zone); got != expected {
			t.Errorf("awsZoneToRegion(%q) = %q, want %q", zone, got, expected)
		}
	}

	gcpCases := map[string]string{
		"us-central1-a": "us-central1",
		"zone":          "zone",
	}
	for zone, expected := range gcpCases {
		if got := gcpZoneToRegion(zone); got != expected {
			t.Errorf("gcpZoneToRegion(%q) = %q, want %q", zone, got, expected)
		}
	}
}
