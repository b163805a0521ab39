// Package catalog holds the read-only recommendations feed. The feed is
// fetched once at startup from a URL or file; any failure degrades to the
// built-in embedded feed rather than blocking anything else.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"tripplan/internal/domain"
)

//go:embed recommended.json
var embedded []byte

// Catalog is a filterable, concurrency-safe snapshot of the feed.
type Catalog struct {
	mu    sync.RWMutex
	items []domain.Recommendation
}

// New returns a catalog pre-loaded with the embedded default feed.
func New() *Catalog {
	c := &Catalog{}
	// The embedded feed is validated by the package tests; a decode failure
	// here just means an empty catalog.
	_ = c.setJSON(embedded)
	return c
}

// LoadURL replaces the feed with the JSON array fetched from url.
// On any error the current items are kept; the caller logs and moves on.
func (c *Catalog) LoadURL(ctx context.Context, client *http.Client, url string) error {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("catalog.LoadURL: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog.LoadURL: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog.LoadURL: unexpected status %d", resp.StatusCode)
	}

	var items []domain.Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return fmt.Errorf("catalog.LoadURL: decode: %w", err)
	}
	c.set(items)
	return nil
}

// LoadFile replaces the feed from a local JSON file.
func (c *Catalog) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog.LoadFile: %w", err)
	}
	if err := c.setJSON(raw); err != nil {
		return fmt.Errorf("catalog.LoadFile: %w", err)
	}
	return nil
}

func (c *Catalog) setJSON(raw []byte) error {
	var items []domain.Recommendation
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}
	c.set(items)
	return nil
}

func (c *Catalog) set(items []domain.Recommendation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}

// Items returns the full feed.
func (c *Catalog) Items() []domain.Recommendation {
	return c.Filter("", "")
}

// Filter returns the records matching the optional city and category
// filters. Matching is case-insensitive; an empty filter matches all.
// The result is always a fresh non-nil slice.
func (c *Catalog) Filter(city, category string) []domain.Recommendation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []domain.Recommendation{}
	for _, r := range c.items {
		if city != "" && !strings.EqualFold(r.City, city) {
			continue
		}
		if category != "" && !strings.EqualFold(r.Category, category) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Cities returns the distinct city names in the feed, sorted. Used to
// populate the city filter.
func (c *Catalog) Cities() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := map[string]bool{}
	var out []string
	for _, r := range c.items {
		if !seen[r.City] {
			seen[r.City] = true
			out = append(out, r.City)
		}
	}
	sort.Strings(out)
	return out
}
