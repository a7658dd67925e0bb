package scraper

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultURLs are the item listing pages of the game site.
var DefaultURLs = []string{
	"https://originaltk.com/items/drops.php",
	"https://originaltk.com/items/crafts.php",
	"https://originaltk.com/items/events.php",
	"https://originaltk.com/items/bombs.php",
	"https://originaltk.com/items/keys.php",
	"https://originaltk.com/items/mana.php",
	"https://originaltk.com/items/potions.php",
	"https://originaltk.com/items/quests.php",
	"https://originaltk.com/items/rocks.php",
	"https://originaltk.com/items/shop.php",
	"https://originaltk.com/items/vita.php",
	"https://originaltk.com/items/other.php",
}

// DefaultTimeout is the per-page fetch timeout.
const DefaultTimeout = 35 * time.Second

// Options configures a Scraper.
type Options struct {
	URLs    []string
	Timeout time.Duration
}

// Result is the outcome of a scrape run.
type Result struct {
	// Raw counts the records extracted before consolidation.
	Raw     int
	Records []Record
	Failed  []string
}

// Scraper fetches the item pages and turns them into consolidated records.
type Scraper struct {
	client *resty.Client
	urls   []string
	logger *zap.Logger
}

// New creates a scraper. Zero options fall back to DefaultURLs and DefaultTimeout.
func New(opts Options, logger *zap.Logger) *Scraper {
	if len(opts.URLs) == 0 {
		opts.URLs = DefaultURLs
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeaders(map[string]string{
			"Accept":     "text/html,*/*",
			"User-Agent": "catalog-browser-scraper/1.0",
		})

	return &Scraper{client: client, urls: opts.URLs, logger: logger}
}

// Run scrapes every page in order. A page that fails is logged and skipped.
func (s *Scraper) Run(ctx context.Context) (Result, error) {
	var res Result
	var all []Record

	for _, url := range s.urls {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		records, err := s.Fetch(ctx, url)
		if err != nil {
			s.logger.Warn("Failed to scrape page", zap.String("url", url), zap.Error(err))
			res.Failed = append(res.Failed, url)
			continue
		}

		s.logger.Info("Page parsed", zap.String("url", url), zap.Int("items", len(records)))
		all = append(all, records...)
	}

	res.Raw = len(all)
	res.Records = Consolidate(all)
	s.logger.Info("Scrape finished", zap.Int("raw", res.Raw), zap.Int("unique", len(res.Records)),
		zap.Int("failed_pages", len(res.Failed)))
	return res, nil
}

// Fetch downloads one page and extracts its records.
func (s *Scraper) Fetch(ctx context.Context, url string) ([]Record, error) {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	records, extractor := Extract(doc)
	s.logger.Debug("Extractor used", zap.String("url", url), zap.String("extractor", extractor),
		zap.Int("items", len(records)))
	return records, nil
}
