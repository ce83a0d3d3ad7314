package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DioGolang/GeoCourier/internal/application/port/outbound"
	"github.com/DioGolang/GeoCourier/internal/domain/entity"
	"github.com/DioGolang/GeoCourier/pkg/logger"
	"github.com/DioGolang/GeoCourier/pkg/metrics"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Provider usage policy: one request per second, identified client.
const defaultMinInterval = time.Second

const defaultHTTPTimeout = 10 * time.Second

// nominatimPlace is the provider's wire schema for both /search and /reverse.
type nominatimPlace struct {
	PlaceID     int64    `json:"place_id"`
	Licence     string   `json:"licence"`
	OSMType     string   `json:"osm_type"`
	OSMID       int64    `json:"osm_id"`
	BoundingBox []string `json:"boundingbox"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	DisplayName string   `json:"display_name"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
	Importance  float64  `json:"importance"`
	Icon        string   `json:"icon,omitempty"`
}

type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	language  string
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker
	logger    logger.Logger
	metrics   metrics.Metrics
}

type Option func(*Client)

// WithMinInterval overrides the pacing between outbound requests.
func WithMinInterval(d time.Duration) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(baseURL, userAgent, language string, log logger.Logger, m metrics.Metrics, opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:   baseURL,
		userAgent: userAgent,
		language:  language,
		limiter:   rate.NewLimiter(rate.Every(defaultMinInterval), 1),
		logger:    log,
		metrics:   m,
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "nominatim",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search performs a text place search. Provider failures degrade to an empty
// slice; they are logged and counted but never returned to the caller.
func (c *Client) Search(ctx context.Context, query string, opts outbound.SearchOptions) []entity.ExternalPlace {
	if query == "" {
		return nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("accept-language", c.language)
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.CountryCodes != "" {
		params.Set("countrycodes", opts.CountryCodes)
	}
	if opts.Viewbox != nil {
		vb := opts.Viewbox.ViewboxParam()
		params.Set("viewbox", fmt.Sprintf("%g,%g,%g,%g", vb[0], vb[1], vb[2], vb[3]))
	}
	if opts.Bounded {
		params.Set("bounded", "1")
	}
	if opts.AddressDetails {
		params.Set("addressdetails", "1")
	}

	var places []nominatimPlace
	if err := c.get(ctx, "/search", params, &places); err != nil {
		c.logger.Warn(ctx, "geocoder search failed",
			logger.String("query", query),
			logger.WithError(err),
		)
		c.metrics.RecordGeocodeRequest("search", "failure")
		return nil
	}
	c.metrics.RecordGeocodeRequest("search", "success")

	results := make([]entity.ExternalPlace, 0, len(places))
	for _, p := range places {
		if r, ok := ConvertResult(p); ok {
			results = append(results, r)
		}
	}
	return results
}

// Reverse resolves coordinates to the best-matching place, nil when nothing
// was found or the provider failed.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) *entity.ExternalPlace {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("accept-language", c.language)
	params.Set("addressdetails", "1")

	var place nominatimPlace
	if err := c.get(ctx, "/reverse", params, &place); err != nil {
		c.logger.Warn(ctx, "geocoder reverse failed",
			logger.Float64("lat", lat),
			logger.Float64("lon", lon),
			logger.WithError(err),
		)
		c.metrics.RecordGeocodeRequest("reverse", "failure")
		return nil
	}
	c.metrics.RecordGeocodeRequest("reverse", "success")

	if place.DisplayName == "" {
		return nil
	}
	r, ok := ConvertResult(place)
	if !ok {
		return nil
	}
	return &r
}

// get paces, breaks and executes one provider call. The limiter reserves a
// slot at call time, so concurrent callers proceed in arrival order spaced
// by the minimum interval.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return nil, nil
	})
	return err
}
