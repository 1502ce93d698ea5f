package upstream

import (
	"context"
	"strings"
	"sync"

	"github.com/hotelops/dashboard-service/internal/models"
	"github.com/hotelops/dashboard-service/pkg/httpclient"
)

// SiteClient covers the singleton resources: dashboard metrics and hotel
// settings.
type SiteClient interface {
	Metrics(ctx context.Context) (*models.DashboardMetrics, error)
	Settings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, s *models.Settings) (*models.Settings, error)
}

type siteClient struct {
	http *httpclient.Client
}

func NewSiteClient(c *httpclient.Client) SiteClient {
	return &siteClient{http: c}
}

func (c *siteClient) Metrics(ctx context.Context) (*models.DashboardMetrics, error) {
	var m models.DashboardMetrics
	if err := c.http.Get(ctx, "/dashboard", nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *siteClient) Settings(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	if err := c.http.Get(ctx, "/settings", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *siteClient) UpdateSettings(ctx context.Context, s *models.Settings) (*models.Settings, error) {
	var updated models.Settings
	if err := c.http.Put(ctx, "/settings", s, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CountryClient resolves guest nationalities to flag references. The
// country list never changes within a session, so the first successful
// fetch is memoized — the one cache this service keeps.
type CountryClient struct {
	http *httpclient.Client

	mu   sync.Mutex
	memo []models.Country
}

func NewCountryClient(c *httpclient.Client) *CountryClient {
	return &CountryClient{http: c}
}

func (c *CountryClient) All(ctx context.Context) ([]models.Country, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.memo != nil {
		return c.memo, nil
	}

	var countries []models.Country
	if err := c.http.Get(ctx, "/countries", nil, &countries); err != nil {
		return nil, err
	}
	c.memo = countries
	return countries, nil
}

// FlagFor matches a free-text nationality against the country list,
// case-insensitively. A miss returns ok=false, not an error.
func (c *CountryClient) FlagFor(ctx context.Context, nationality string) (string, bool, error) {
	countries, err := c.All(ctx)
	if err != nil {
		return "", false, err
	}
	for _, country := range countries {
		if strings.EqualFold(country.Name, nationality) {
			return country.FlagURL, true, nil
		}
	}
	return "", false, nil
}
