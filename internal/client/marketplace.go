package client

import (
	"context"
	"fmt"
	"time"

	"marketplace/storefront/internal/config"
	"marketplace/storefront/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// MarketplaceClient fetches the product table from a remote endpoint at
// startup, either as a JSON dataset or by scraping paginated listing pages.
// The core never touches the network once the table is loaded.
type MarketplaceClient interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchListing(ctx context.Context) ([]domain.Product, error)
}

type marketplaceClient struct {
	rl         ratelimit.Limiter
	baseURL    string
	httpClient *resty.Client
	parser     *listingParser
}

func NewMarketplaceClient(cfg config.CatalogConfig) MarketplaceClient {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("Accept", "application/json, text/html;q=0.9")

	rps := cfg.MaxRequestsPerSecond
	if rps < 1 {
		rps = 1
	}

	return &marketplaceClient{
		rl:         ratelimit.New(rps),
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		parser:     newListingParser(),
	}
}

// FetchProducts downloads the JSON product dataset.
func (c *marketplaceClient) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	c.rl.Take()

	var products []domain.Product
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&products).
		Get("/produk.json")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product dataset: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("product dataset request failed with status %d", resp.StatusCode())
	}

	log.Infof("Fetched %d products from %s", len(products), c.baseURL)
	return products, nil
}

// FetchListing walks the paginated HTML listing until an empty page and
// collects every product card.
func (c *marketplaceClient) FetchListing(ctx context.Context) ([]domain.Product, error) {
	var all []domain.Product
	for page := 1; ; page++ {
		c.rl.Take()

		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetQueryParam("hal", fmt.Sprintf("%d", page)).
			Get("/katalog")
		if err != nil {
			return nil, fmt.Errorf("failed to fetch listing page %d: %w", page, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("listing page %d request failed with status %d", page, resp.StatusCode())
		}

		products, err := c.parser.ParseListingPage(resp.String())
		if err != nil {
			return nil, fmt.Errorf("failed to parse listing page %d: %w", page, err)
		}
		if len(products) == 0 {
			break
		}
		all = append(all, products...)
		log.Debugf("Parsed listing page %d with %d products", page, len(products))
	}

	log.Infof("Fetched %d products from listing pages at %s", len(all), c.baseURL)
	return all, nil
}
