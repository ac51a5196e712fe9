package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	domain "github.com/aromahub/perfumeshop/internal/domain/order"
)

// CatalogClient fetches perfumes from the catalog service. The bounded client
// timeout is a deliberate hardening over the original unbounded calls; the
// request context is propagated so caller cancellation reaches the wire.
type CatalogClient struct {
	baseURL string
	http    *http.Client
}

// NewCatalogClient takes the catalog perfume endpoint base, e.g.
// "http://localhost:3000/perfumes".
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *CatalogClient) PerfumeByID(ctx context.Context, id string) (*domain.Perfume, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var perfume domain.Perfume
	if err := json.NewDecoder(resp.Body).Decode(&perfume); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return &perfume, nil
}
