// Package geosrv implements the geo client port over gRPC.
package geosrv

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/ports"
	"delivery/internal/generated/geo"
	"delivery/internal/pkg/errs"
)

// retryServiceConfig makes transient geo outages invisible to callers:
// UNAVAILABLE responses are retried with exponential backoff before the
// error surfaces.
const retryServiceConfig = `{
	"methodConfig": [{
		"name": [{"service": "geo.Geo"}],
		"retryPolicy": {
			"maxAttempts": 5,
			"initialBackoff": "1s",
			"maxBackoff": "5s",
			"backoffMultiplier": 1.5,
			"retryableStatusCodes": ["UNAVAILABLE"]
		}
	}]
}`

var _ ports.GeoClient = &Client{}

// Client resolves street addresses through the external Geo service.
type Client struct {
	conn      *grpc.ClientConn
	geoClient geo.GeoClient
}

// NewClient dials the Geo service at host. The connection is established
// lazily, so a down geo service does not fail startup.
func NewClient(host string) (*Client, error) {
	if host == "" {
		return nil, errs.NewValueIsRequiredError("host")
	}

	conn, err := grpc.NewClient(host,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultServiceConfig(retryServiceConfig),
	)
	if err != nil {
		return nil, fmt.Errorf("create geo client for %s: %w", host, err)
	}

	return &Client{
		conn:      conn,
		geoClient: geo.NewGeoClient(conn),
	}, nil
}

// GetLocation resolves street to a delivery grid location.
func (c *Client) GetLocation(ctx context.Context, street string) (kernel.Location, error) {
	if street == "" {
		return kernel.Location{}, errs.NewValueIsRequiredError("street")
	}

	reply, err := c.geoClient.GetGeolocation(ctx, &geo.GetGeolocationRequest{Street: street})
	if err != nil {
		return kernel.Location{}, fmt.Errorf("get geolocation for street %q: %w", street, err)
	}

	location, err := kernel.NewLocation(
		kernel.Coordinate(reply.GetLocation().GetX()),
		kernel.Coordinate(reply.GetLocation().GetY()),
	)
	if err != nil {
		return kernel.Location{}, fmt.Errorf("geo service returned invalid coordinates for street %q: %w", street, err)
	}

	return location, nil
}

// Close terminates the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
