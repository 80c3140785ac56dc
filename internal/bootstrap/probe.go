package bootstrap

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog-gateway/internal/backend"
)

// probeResource is the resource read by [ProbeClient].
const probeResource = "products"

// ProbeClient performs one minimal read of the products resource and
// discards the payload. It does not retry.
func ProbeClient(ctx context.Context, c *backend.Client) error {
	if err := c.From(probeResource).Select("id").Limit(1).Execute(ctx, nil); err != nil {
		return fmt.Errorf("probe %s at %s: %w", probeResource, c.BaseURL(), err)
	}
	return nil
}
