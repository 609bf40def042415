package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/semschema/config"
	"github.com/c360studio/semschema/export"
	"github.com/c360studio/semschema/graph"
	"github.com/c360studio/semschema/metric"
	"github.com/c360studio/semschema/schema"
	"github.com/c360studio/semschema/watch"
)

// artifactBase is the base filename of both artifacts (schema.nt, schema.ttl).
const artifactBase = "schema"

// runFlags collects the flag values shared by generate and watch.
type runFlags struct {
	schemas     []string
	configPath  string
	namespace   string
	prefix      string
	language    string
	output      string
	natsURL     string
	natsSubject string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.schemas, "schema", "s", nil,
		"GraphQL schema file, directory, or URL (repeatable)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&f.namespace, "namespace", "",
		"Namespace IRI for concept URIs (e.g. https://covesa.org/s2dm/mydomain#)")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "Prefix for concept URIs in Turtle output (default ns)")
	cmd.Flags().StringVar(&f.language, "language", "", "BCP 47 language tag for prefLabels (default en)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output directory for schema.nt and schema.ttl (default out)")
	cmd.Flags().StringVar(&f.natsURL, "nats-url", "", "Publish the concept set to this NATS server after writing artifacts")
	cmd.Flags().StringVar(&f.natsSubject, "nats-subject", "", "NATS subject for graph ingestion (default "+graph.DefaultIngestSubject+")")
	_ = cmd.MarkFlagRequired("schema")
}

// buildConfig layers defaults, the optional config file, and flag overrides.
func (f *runFlags) buildConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if f.configPath != "" {
		fileCfg, err := config.LoadFromFile(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	cfg.Merge(&config.Config{
		Namespace: f.namespace,
		Prefix:    f.prefix,
		Language:  f.language,
		Output:    f.output,
		NATS:      config.NATSConfig{URL: f.natsURL, Subject: f.natsSubject},
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func generateCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Materialize GraphQL schemas as RDF triples",
		Long: `Materialize one or more GraphQL schemas as RDF triples with SKOS and
s2dm ontology annotations. Produces sorted N-Triples (schema.nt) and
grouped Turtle (schema.ttl) in the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.buildConfig()
			if err != nil {
				return err
			}

			paths, err := schema.ResolveSources(flags.schemas)
			if err != nil {
				return err
			}

			return materializeOnce(cmd.Context(), cfg, paths)
		},
	}

	flags.register(cmd)
	return cmd
}

func watchCmd() *cobra.Command {
	flags := &runFlags{}
	var (
		debounce    time.Duration
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-materialize whenever schema files change",
		Long: `Watch the resolved schema files and re-run materialization after each
change. URL sources are not supported in watch mode. A failing run leaves
the previous artifacts untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.buildConfig()
			if err != nil {
				return err
			}
			if debounce > 0 {
				cfg.Watch.Debounce = debounce
			}
			if metricsAddr != "" {
				cfg.Watch.MetricsAddr = metricsAddr
			}

			for _, src := range flags.schemas {
				if schema.IsURL(src) {
					return fmt.Errorf("cannot watch URL source %s", src)
				}
			}

			paths, err := schema.ResolveSources(flags.schemas)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if cfg.Watch.MetricsAddr != "" {
				serveMetrics(ctx, cfg.Watch.MetricsAddr)
			}

			slog.Info("Watching schema files", "files", len(paths), "debounce", cfg.Watch.Debounce)
			return watch.Run(ctx, paths, cfg.Watch.Debounce, slog.Default(), func(runCtx context.Context) {
				// Sources may have appeared or vanished since the last run.
				current, err := schema.ResolveSources(flags.schemas)
				if err != nil {
					metric.RunFailuresTotal.Inc()
					slog.Error("Resolve schema sources", "error", err)
					return
				}
				if err := materializeOnce(runCtx, cfg, current); err != nil {
					metric.RunFailuresTotal.Inc()
					slog.Error("Materialization run failed", "error", err)
					return
				}
				metric.RunsTotal.Inc()
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "Quiet period before re-running (default 500ms)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	return cmd
}

// materializeOnce runs the full pipeline for one schema snapshot: parse,
// extract, materialize, serialize, write, and optionally publish. Nothing is
// written unless materialization succeeded for the whole schema.
func materializeOnce(ctx context.Context, cfg *config.Config, paths []string) error {
	start := time.Now()

	parsed, err := schema.Load(paths)
	if err != nil {
		return err
	}
	model := schema.Extract(parsed)

	if model.Empty() {
		slog.Warn("Empty schema: no type definitions retained after exclusions; writing empty artifacts",
			"namespace", cfg.Namespace)
	}

	set, err := graph.Materialize(model, graph.Options{
		Namespace: cfg.Namespace,
		Language:  cfg.Language,
	})
	if err != nil {
		return err
	}

	prefixes := export.DefaultPrefixes(cfg.Prefix, cfg.Namespace)
	ntPath, ttlPath, err := export.WriteArtifacts(cfg.Output, artifactBase, set, prefixes)
	if err != nil {
		return err
	}
	metric.TriplesEmitted.Set(float64(set.Len()))

	slog.Info("RDF artifacts written",
		"nt", ntPath,
		"ttl", ttlPath,
		"types", len(model.Definitions),
		"triples", set.Len(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	if cfg.NATS.URL != "" {
		if err := publishConcepts(ctx, cfg, set); err != nil {
			return err
		}
	}
	return nil
}

func publishConcepts(ctx context.Context, cfg *config.Config, set *graph.Set) error {
	nc, err := nats.Connect(cfg.NATS.URL, nats.Name(appName))
	if err != nil {
		return fmt.Errorf("connect to NATS at %s: %w", cfg.NATS.URL, err)
	}
	defer nc.Close()

	if err := graph.PublishConcepts(ctx, nc, cfg.NATS.Subject, cfg.Namespace, set); err != nil {
		return err
	}
	slog.Info("Concept set published", "subject", subjectOrDefault(cfg.NATS.Subject), "triples", set.Len())
	return nil
}

func subjectOrDefault(subject string) string {
	if subject == "" {
		return graph.DefaultIngestSubject
	}
	return subject
}

func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		slog.Info("Serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}
