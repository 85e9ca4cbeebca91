// Package fixtures loads restaurant and product catalogs from YAML files.
// A source is either a local path or an http(s) URL; sources ending in .gz
// are gunzipped first.
package fixtures

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dev-mike-s/foodmart/internal/models"
)

var ErrNoSources = errors.New("no fixture sources provided")

// Catalog is the content of one or more fixture files
type Catalog struct {
	Restaurants []models.Restaurant `yaml:"restaurants"`
	Products    []models.Product    `yaml:"products"`
}

// sourceResult holds the result of loading a single source
type sourceResult struct {
	index   int
	catalog *Catalog
	err     error
}

// Loader fetches fixture sources
type Loader struct {
	client *http.Client
}

// NewLoader creates a loader with a bounded HTTP timeout
func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// SplitSources turns a comma separated source list into its entries
func SplitSources(list string) []string {
	var sources []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sources = append(sources, s)
		}
	}
	return sources
}

// LoadAll loads every source concurrently and merges them in source order.
// Any failing source fails the whole load.
func (l *Loader) LoadAll(ctx context.Context, sources []string) (*Catalog, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	resultChan := make(chan sourceResult, len(sources))

	var wg sync.WaitGroup
	for i, source := range sources {
		wg.Add(1)
		go func(index int, src string) {
			defer wg.Done()

			catalog, err := l.Load(ctx, src)
			resultChan <- sourceResult{index: index, catalog: catalog, err: err}
		}(i, source)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]sourceResult, len(sources))
	for result := range resultChan {
		results[result.index] = result
	}

	merged := &Catalog{}
	for i, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("failed to load fixture %d (%s): %w", i+1, sources[i], result.err)
		}
		merged.Restaurants = append(merged.Restaurants, result.catalog.Restaurants...)
		merged.Products = append(merged.Products, result.catalog.Products...)
	}

	return merged, nil
}

// Load reads a single source
func (l *Loader) Load(ctx context.Context, source string) (*Catalog, error) {
	rc, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var r io.Reader = rc
	if strings.HasSuffix(source, ".gz") {
		gzReader, err := gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		r = gzReader
	}

	return Parse(r)
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// Parse decodes every YAML document of a fixture stream, merging the
// documents in order, and checks the records
func Parse(r io.Reader) (*Catalog, error) {
	c := &Catalog{}
	dec := yaml.NewDecoder(r)
	for n := 1; ; n++ {
		var doc Catalog
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode fixture document %d: %w", n, err)
		}
		c.Restaurants = append(c.Restaurants, doc.Restaurants...)
		c.Products = append(c.Products, doc.Products...)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects records that the filters or the checkout cannot price
func (c *Catalog) Validate() error {
	for i, r := range c.Restaurants {
		if r.Name == "" {
			return fmt.Errorf("restaurant %d: name is required", i+1)
		}
		if r.OpenHour < 0 || r.CloseHour > 24 || r.OpenHour > r.CloseHour {
			return fmt.Errorf("restaurant %q: invalid opening hours %d-%d", r.Name, r.OpenHour, r.CloseHour)
		}
	}
	for i, p := range c.Products {
		if p.Name == "" {
			return fmt.Errorf("product %d: name is required", i+1)
		}
		if p.Price < 0 {
			return fmt.Errorf("product %q: price must not be negative", p.Name)
		}
	}
	return nil
}
