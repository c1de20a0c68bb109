// Package regionmapper finds the cloud provider and region a Kubernetes
// cluster runs in, so a run can be limited to the cluster's own region.
//
// CloudInfo is the primary detection method; node metadata parsing in
// nodes.go is the fallback.
package regionmapper

import (
	"context"
	"fmt"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/klog/v2"

	"github.com/carbon-aware/cloudinfo/pkg/cloudinfo"

	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/regions"
)

// Detector detects the provider and region of a cluster
type Detector struct {
	client kubernetes.Interface
}

// NewDetector creates a detector backed by a Kubernetes client
func NewDetector(client kubernetes.Interface) *Detector {
	return &Detector{client: client}
}

// DetectClusterRegion returns the cluster's provider (aws, gcp, azure) and
// region. CloudInfo is tried first, then the node metadata of every node.
func (d *Detector) DetectClusterRegion(ctx context.Context) (string, string, error) {
	if d.client == nil {
		return "", "", fmt.Errorf("no Kubernetes client available")
	}

	opts := cloudinfo.Options{
		UseNodeLabels: true,
		UseIMDS:       false,
	}

	info, err := cloudinfo.DetectCloudInfo(ctx, d.client, opts)
	if err == nil && info.Region != "" {
		if provider := NormalizeProvider(info.Provider); provider != "" {
			klog.V(2).InfoS("CloudInfo detected provider and region",
				"provider", provider,
				"region", info.Region,
				"source", info.Source)
			return provider, info.Region, nil
		}
	}
	klog.V(2).InfoS("CloudInfo detection failed, falling back to node metadata", "error", err)

	return d.detectFromNodes(ctx)
}

func (d *Detector) detectFromNodes(ctx context.Context) (string, string, error) {
	nodes, err := d.client.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return "", "", fmt.Errorf("failed to list nodes: %w", err)
	}

	for i := range nodes.Items {
		if provider, region, ok := DetectCloudProviderAndRegion(&nodes.Items[i]); ok {
			return provider, region, nil
		}
	}
	return "", "", fmt.Errorf("could not detect cloud provider and region from %d nodes", len(nodes.Items))
}

// NormalizeProvider maps provider spellings to the names used by the region
// tables. Unknown providers yield "".
func NormalizeProvider(provider string) string {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "aws", "amazon", "eks":
		return regions.ProviderAWS
	case "gcp", "gce", "google", "gke":
		return regions.ProviderGCP
	case "azure", "aks":
		return regions.ProviderAzure
	}
	return ""
}

// SelectRegion returns the records of the given region. An exact id match
// wins; otherwise the longest table id that prefixes region is used, which
// covers AWS local zones such as us-east-1-bos-1.
func SelectRegion(records []regions.RegionRecord, provider, region string) []regions.RegionRecord {
	var best *regions.RegionRecord
	for i := range records {
		rec := &records[i]
		if rec.Provider != "" && rec.Provider != provider {
			continue
		}
		if rec.ID == region {
			return []regions.RegionRecord{*rec}
		}
		if strings.HasPrefix(region, rec.ID) && (best == nil || len(rec.ID) > len(best.ID)) {
			best = rec
		}
	}

	if best == nil {
		return nil
	}
	return []regions.RegionRecord{*best}
}
