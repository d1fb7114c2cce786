package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"github.com/saanvi-kanodia/internship-chatbot/internal/ingest"
	"github.com/saanvi-kanodia/internship-chatbot/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Collect internships from configured sources into the catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		runIngest(cmd)
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().Bool("dry-run", false, "collect and deduplicate without writing the catalog")
	ingestCmd.Flags().String("every", "", "keep running and re-ingest at this interval (e.g. 6h)")
}

func runIngest(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config.Ingest == nil || len(config.Ingest.Sources) == 0 {
		logger.Fatal("no ingestion sources configured",
			zap.String("hint", "add an ingest.sources section to the configuration file"),
		)
	}

	sources, err := buildSources(config.Ingest.Sources)
	if err != nil {
		logger.Fatal("building sources", zap.Error(err))
	}

	output := config.Ingest.Output
	if output == "" {
		output = config.Catalog
	}

	merger := ingest.NewMerger(sources, logger, ingest.WithProgress(!viper.GetBool("json")))

	every := cmd.Flag("every").Value.String()
	if every == "" && config.Ingest.Every != "" {
		every = config.Ingest.Every
	}

	if every != "" {
		interval, err := time.ParseDuration(every)
		if err != nil {
			logger.Fatal("parsing ingestion interval", zap.Error(err))
		}

		store := catalog.NewStore(output, logger)

		scheduler := ingest.NewScheduler(merger, store, output, interval, logger)
		if err := scheduler.Start(ctx); err != nil {
			logger.Fatal("starting scheduler", zap.Error(err))
		}

		waitForShutdown(logger)
		scheduler.Stop()
		return
	}

	items, err := merger.Run(ctx)
	if err != nil {
		logger.Fatal("running ingestion", zap.Error(err))
	}

	if cmd.Flag("dry-run").Value.String() == "true" {
		fmt.Printf("Dry run: %d unique internship(s) collected, catalog not written\n", len(items))
		return
	}

	if err := ingest.Save(output, items, logger); err != nil {
		logger.Fatal("saving catalog", zap.Error(err))
	}

	fmt.Printf("Saved %d internship(s) to %s\n", len(items), output)
}

func buildSources(configs []*SourceConfig) ([]ingest.Source, error) {
	sources := make([]ingest.Source, 0, len(configs))

	for _, cfg := range configs {
		switch cfg.Kind {
		case "csv":
			sources = append(sources, &ingest.CSVSource{
				SourceName: cfg.Name,
				Path:       cfg.Path,
			})
		case "html":
			sources = append(sources, &ingest.HTMLSource{
				SourceName:       cfg.Name,
				URL:              cfg.URL,
				ItemSelector:     cfg.ItemSelector,
				TitleSelector:    cfg.TitleSelector,
				OrgSelector:      cfg.OrgSelector,
				LocationSelector: cfg.LocationSelector,
				LinkSelector:     cfg.LinkSelector,
			})
		default:
			return nil, fmt.Errorf("unknown source kind %q for source %q", cfg.Kind, cfg.Name)
		}
	}

	return sources, nil
}

func waitForShutdown(logger *zap.Logger) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	sig := <-signals
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
