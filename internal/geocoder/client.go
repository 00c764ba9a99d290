package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodcart-api/internal/config"
	"foodcart-api/internal/models"

	"github.com/rs/zerolog/log"
)

var (
	// ErrProviderStatus means the provider was reachable but answered with a
	// non-2xx status. Not retryable; the enclosing request fails.
	ErrProviderStatus = errors.New("geocoder: provider returned error status")

	// ErrMalformedResponse means the provider answered 2xx but the body did
	// not match the documented response shape.
	ErrMalformedResponse = errors.New("geocoder: malformed provider response")
)

// providerResponse mirrors the relevant part of the provider's JSON contract:
// response.GeoObjectCollection.featureMember[].GeoObject.Point.pos, where pos
// is "<lon> <lat>". An empty featureMember list means no match.
type providerResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Client resolves free-text addresses to coordinates via the external
// geocoding provider, retrying transport-level failures with backoff.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	retry   Policy
}

// NewClient builds a provider client from configuration.
func NewClient(cfg config.GeocoderConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSec) * time.Second},
		retry: Policy{
			MaxAttempts: cfg.MaxRetries,
			Retryable:   isConnectionError,
		},
	}
}

// isConnectionError reports whether err is a transport-level failure worth
// retrying. Context cancellation is never retried.
func isConnectionError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// Geocode resolves an address to coordinates. It returns (nil, nil) when the
// provider has no match for the address and when transport retries are
// exhausted; callers treat both as "no coordinates". Provider status errors
// and malformed responses are returned as errors.
func (c *Client) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	var coords *models.Coordinates

	err := c.retry.Do("geocode "+address, func() error {
		var fetchErr error
		coords, fetchErr = c.fetch(ctx, address)
		return fetchErr
	})
	if err != nil {
		if errors.Is(err, ErrRetriesExhausted) {
			log.Warn().Str("address", address).Msg("geocoding unavailable, leaving coordinates unresolved")
			return nil, nil
		}
		return nil, err
	}
	return coords, nil
}

func (c *Client) fetch(ctx context.Context, address string) (*models.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder: build request: %w", err)
	}
	q := req.URL.Query()
	q.Set("geocode", address)
	q.Set("apikey", c.apiKey)
	q.Set("format", "json")
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrProviderStatus, resp.Status)
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	found := payload.Response.GeoObjectCollection.FeatureMember
	if len(found) == 0 {
		return nil, nil
	}

	return parsePos(found[0].GeoObject.Point.Pos)
}

// parsePos parses the provider's "<lon> <lat>" point encoding.
func parsePos(pos string) (*models.Coordinates, error) {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: unexpected pos %q", ErrMalformedResponse, pos)
	}
	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: longitude in pos %q", ErrMalformedResponse, pos)
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: latitude in pos %q", ErrMalformedResponse, pos)
	}
	return &models.Coordinates{Lon: lon, Lat: lat}, nil
}
