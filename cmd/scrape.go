package cmd

import (
	"time"

	"catalog-browser/core/storage"
	"catalog-browser/feature/scraper"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scrapeFlags struct {
	out       string
	chunk     int
	prefix    string
	dry       bool
	debug     bool
	toStorage bool
	urls      []string
	timeout   int
}

// scrapeCmd rebuilds the catalog chunk files from the game site.
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape the item pages into catalog chunks",
	Long: `Fetches the item listing pages, merges duplicate items by name and writes chunk files plus a
manifest, either to a local directory or to the configured storage bucket.`,
	Example: `  catalog-browser scrape --out ./data --chunk 80 --prefix otk-items-chunk-
  catalog-browser scrape --storage --dry --debug`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := setup()
		defer logg.Sync()
		if !scrapeFlags.debug {
			logg = logg.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
		}

		s := scraper.New(scraper.Options{
			URLs:    scrapeFlags.urls,
			Timeout: time.Duration(scrapeFlags.timeout) * time.Second,
		}, logg)

		res, err := s.Run(cmd.Context())
		if err != nil {
			logg.Fatal("Scrape aborted", zap.Error(err))
		}

		chunks := scraper.Chunks(res.Records, scrapeFlags.chunk, scrapeFlags.prefix)
		for _, c := range chunks {
			logg.Info("Chunk", zap.String("file", c.Name), zap.Int("items", len(c.Items)))
		}
		if scrapeFlags.dry {
			logg.Info("Dry run, nothing written", zap.Int("chunks", len(chunks)))
			return
		}

		var w scraper.Writer = scraper.NewDirWriter(scrapeFlags.out)
		if scrapeFlags.toStorage {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			w = scraper.NewStorageWriter(client, cfg.Storage.Bucket, cfg.Catalog.Prefix)
		}

		manifest, err := scraper.WriteCatalog(cmd.Context(), w, chunks)
		if err != nil {
			logg.Fatal("Failed to write catalog", zap.Error(err))
		}
		logg.Info("Catalog written", zap.String("target", w.Describe()), zap.Int("files", len(manifest.Files)))
	},
}

func init() {
	f := scrapeCmd.Flags()
	f.StringVar(&scrapeFlags.out, "out", "./data", "output directory")
	f.IntVar(&scrapeFlags.chunk, "chunk", 80, "items per chunk file")
	f.StringVar(&scrapeFlags.prefix, "prefix", "otk-items-chunk-", "chunk file name prefix")
	f.BoolVar(&scrapeFlags.dry, "dry", false, "parse and report without writing")
	f.BoolVar(&scrapeFlags.debug, "debug", false, "log which extractor handled each page")
	f.BoolVar(&scrapeFlags.toStorage, "storage", false, "upload to the storage bucket instead of --out")
	f.StringSliceVar(&scrapeFlags.urls, "url", nil, "page to scrape (repeatable, default the built-in list)")
	f.IntVar(&scrapeFlags.timeout, "timeout", 35, "per-page timeout in seconds")

	RootCmd.AddCommand(scrapeCmd)
}
