package client

import (
	"fmt"
	"strconv"
	"strings"

	"marketplace/storefront/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

type listingParser struct{}

func newListingParser() *listingParser {
	return &listingParser{}
}

// ParseListingPage extracts product cards from a rendered listing page. Cards
// carry numeric fields as data attributes; name and category are text nodes.
// Malformed cards are skipped with a warning.
func (p *listingParser) ParseListingPage(html string) ([]domain.Product, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var products []domain.Product
	doc.Find(".product-card").Each(func(i int, s *goquery.Selection) {
		product, err := p.extractCard(s)
		if err != nil {
			log.Warnf("Skipping malformed product card %d: %v", i, err)
			return
		}
		products = append(products, product)
	})
	return products, nil
}

func (p *listingParser) extractCard(s *goquery.Selection) (domain.Product, error) {
	var product domain.Product

	id, err := intAttr(s, "data-id")
	if err != nil {
		return product, err
	}
	price, err := intAttr(s, "data-price")
	if err != nil {
		return product, err
	}
	stock, err := intAttr(s, "data-stock")
	if err != nil {
		return product, err
	}

	product.ID = id
	product.Price = price
	product.Stock = stock
	product.Name = strings.TrimSpace(s.Find(".product-card-name").First().Text())
	product.Category = strings.TrimSpace(s.Find(".product-card-category").First().Text())
	if product.Name == "" {
		return product, fmt.Errorf("product card id=%d has no name", id)
	}

	if v, ok := s.Attr("data-discount"); ok {
		d, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return product, fmt.Errorf("invalid data-discount %q: %w", v, err)
		}
		product.Discount = d
	}
	if v, ok := s.Attr("data-rating"); ok {
		r, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return product, fmt.Errorf("invalid data-rating %q: %w", v, err)
		}
		product.Rating = &r
	}
	if src, ok := s.Find("img").First().Attr("src"); ok {
		product.ImageURL = src
	}

	return product, nil
}

func intAttr(s *goquery.Selection, name string) (int, error) {
	v, ok := s.Attr(name)
	if !ok {
		return 0, fmt.Errorf("missing %s attribute", name)
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return n, nil
}
