package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/klog/v2"

	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/api"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/audit"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/cache"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/config"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/metrics"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/regionmapper"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/regions"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/report"
)

// options holds the command line flags
type options struct {
	configPath  string
	provider    string
	regionsFile string
	regions     stringSlice
	signalType  string
	sleep       float64
	retries     int
	timeout     float64
	backoff     float64
	cluster     bool
	kubeconfig  string
	auditDB     string
	metricsFile string
}

func main() {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "Path to YAML configuration file")
	flag.StringVar(&opts.provider, "provider", "aws", "Built-in region table: aws, gcp or azure")
	flag.StringVar(&opts.regionsFile, "regions-file", "", "YAML region table replacing the built-in one")
	flag.Var(&opts.regions, "region", "Region id to map (can be specified multiple times)")
	flag.StringVar(&opts.signalType, "signal", "co2_moer", "WattTime signal_type")
	flag.Float64Var(&opts.sleep, "sleep", 0.25, "Seconds to sleep between lookups")
	flag.IntVar(&opts.retries, "retries", 3, "Attempts per lookup")
	flag.Float64Var(&opts.timeout, "timeout", 20.0, "HTTP timeout in seconds")
	flag.Float64Var(&opts.backoff, "backoff", 0.6, "Linear backoff base in seconds")
	flag.BoolVar(&opts.cluster, "cluster", false, "Only map the region of the current Kubernetes cluster")
	flag.StringVar(&opts.kubeconfig, "kubeconfig", "", "Path to kubeconfig for --cluster (empty uses in-cluster config)")
	flag.StringVar(&opts.auditDB, "audit-db", "", "SQLite file recording every WattTime call")
	flag.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")

	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		exitWithError(err, "Failed to load configuration")
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	applyFlags(cfg, &opts, set)
	if err := cfg.Validate(); err != nil {
		exitWithError(err, "Invalid configuration")
	}

	// Setup context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		klog.InfoS("Received signal, stopping region mapping", "signal", sig)
		cancel()
	}()

	records, err := loadRecords(cfg)
	if err != nil {
		exitWithError(err, "Failed to load region table")
	}

	if opts.cluster {
		records, err = clusterRecords(ctx, opts.kubeconfig, cfg, records)
		if err != nil {
			exitWithError(err, "Failed to detect cluster region")
		}
	}

	runID := uuid.NewString()
	klog.InfoS("Starting WattTime region mapping",
		"runID", runID,
		"provider", cfg.Run.Provider,
		"records", len(records),
		"signalType", cfg.Run.SignalType,
		"maxRetries", cfg.API.MaxRetries,
		"retryDelay", cfg.API.RetryDelay)

	clientOpts := []api.ClientOption{}
	var lookupCache *cache.Cache
	if cfg.Cache.Enabled {
		lookupCache = cache.New(cfg.Cache.TTL, nil)
		clientOpts = append(clientOpts, api.WithCache(lookupCache))
	}
	if cfg.Audit.DBPath != "" {
		sink, err := audit.NewSQLiteSink(cfg.Audit.DBPath)
		if err != nil {
			exitWithError(err, "Failed to open audit database", "path", cfg.Audit.DBPath)
		}
		defer sink.Close()
		clientOpts = append(clientOpts, api.WithAuditor(sink, runID))
	}

	client := api.NewClient(cfg.API, clientOpts...)
	if _, err := client.Login(ctx); err != nil {
		exitWithError(err, "Failed to acquire WattTime token")
	}

	reporter := report.New(client, cfg.Run.SignalType, cfg.Run.Sleep, report.WithOutput(os.Stdout))
	result := reporter.Run(ctx, records)
	if err := result.Print(os.Stdout); err != nil {
		klog.ErrorS(err, "Failed to write mapping")
	}

	if lookupCache != nil {
		hits, misses := lookupCache.GetMetrics()
		klog.V(2).InfoS("Lookup cache statistics", "hits", hits, "misses", misses, "entries", lookupCache.Size())
	}

	if cfg.Observability.MetricsFile != "" {
		if err := metrics.WriteFile(cfg.Observability.MetricsFile); err != nil {
			klog.ErrorS(err, "Failed to write metrics file", "path", cfg.Observability.MetricsFile)
		}
	}
}

// applyFlags copies explicitly set flags over the loaded configuration
func applyFlags(cfg *config.Config, opts *options, set map[string]bool) {
	if set["provider"] {
		cfg.Run.Provider = strings.ToLower(opts.provider)
	}
	if set["regions-file"] {
		cfg.Run.RegionsFile = opts.regionsFile
	}
	if len(opts.regions) > 0 {
		cfg.Run.Regions = opts.regions
	}
	if set["signal"] {
		cfg.Run.SignalType = opts.signalType
	}
	if set["sleep"] {
		cfg.Run.Sleep = seconds(opts.sleep)
	}
	if set["retries"] {
		cfg.API.MaxRetries = opts.retries
	}
	if set["timeout"] {
		cfg.API.Timeout = seconds(opts.timeout)
	}
	if set["backoff"] {
		cfg.API.RetryDelay = seconds(opts.backoff)
	}
	if set["audit-db"] {
		cfg.Audit.DBPath = opts.auditDB
	}
	if set["metrics-file"] {
		cfg.Observability.MetricsFile = opts.metricsFile
	}
}

// loadRecords returns the region table for the run, restricted to the
// configured region ids when any are given
func loadRecords(cfg *config.Config) ([]regions.RegionRecord, error) {
	var (
		records []regions.RegionRecord
		err     error
	)
	if cfg.Run.RegionsFile != "" {
		records, err = regions.LoadFile(cfg.Run.RegionsFile)
	} else {
		records, err = regions.ForProvider(cfg.Run.Provider)
	}
	if err != nil {
		return nil, err
	}

	if len(cfg.Run.Regions) == 0 {
		return records, nil
	}

	selected, missing := regions.Filter(records, cfg.Run.Regions)
	if len(missing) > 0 {
		return nil, fmt.Errorf("unknown region ids: %s", strings.Join(missing, ", "))
	}
	return selected, nil
}

// clusterRecords narrows records to the region the current cluster runs in.
// The detected provider replaces the built-in table when no file is used.
func clusterRecords(ctx context.Context, kubeconfig string, cfg *config.Config, records []regions.RegionRecord) ([]regions.RegionRecord, error) {
	var (
		restConfig *rest.Config
		err        error
	)
	if kubeconfig != "" {
		restConfig, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	} else {
		restConfig, err = rest.InClusterConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build kubernetes config: %w", err)
	}

	kubeClient, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	provider, region, err := regionmapper.NewDetector(kubeClient).DetectClusterRegion(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.Run.RegionsFile == "" && provider != cfg.Run.Provider {
		klog.InfoS("Using region table of detected provider", "configured", cfg.Run.Provider, "detected", provider)
		cfg.Run.Provider = provider
		records, err = regions.ForProvider(provider)
		if err != nil {
			return nil, err
		}
	}

	selected := regionmapper.SelectRegion(records, provider, region)
	if len(selected) == 0 {
		return nil, fmt.Errorf("cluster region %s/%s is not in the region table", provider, region)
	}
	return selected, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func exitWithError(err error, msg string, keysAndValues ...any) {
	klog.ErrorS(err, msg, keysAndValues...)
	klog.Flush()
	os.Exit(1)
}

// stringSlice implements flag.Value for repeated string flags
type stringSlice []string

func (s *stringSlice) String() string {
	return fmt.Sprintf("%v", *s)
}

func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}
