package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hotelops/dashboard-service/internal/models"
	"github.com/hotelops/dashboard-service/pkg/httpclient"
)

// CatalogClient covers the plain CRUD pages (users, assets, promotions):
// same envelope, same verbs, no lifecycle logic of their own.
type CatalogClient interface {
	ListUsers(ctx context.Context, page, size int) (*models.Page[models.User], error)
	CreateUser(ctx context.Context, u *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	ListAssets(ctx context.Context, page, size int) (*models.Page[models.Asset], error)
	CreateAsset(ctx context.Context, a *models.Asset) (*models.Asset, error)
	UpdateAsset(ctx context.Context, a *models.Asset) (*models.Asset, error)
	DeleteAsset(ctx context.Context, id int64) error

	ListPromotions(ctx context.Context, page, size int) (*models.Page[models.Promotion], error)
	CreatePromotion(ctx context.Context, p *models.Promotion) (*models.Promotion, error)
	UpdatePromotion(ctx context.Context, p *models.Promotion) (*models.Promotion, error)
	DeletePromotion(ctx context.Context, id int64) error
}

type catalogClient struct {
	http *httpclient.Client
}

func NewCatalogClient(c *httpclient.Client) CatalogClient {
	return &catalogClient{http: c}
}

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	return q
}

func (c *catalogClient) ListUsers(ctx context.Context, page, size int) (*models.Page[models.User], error) {
	var out models.Page[models.User]
	if err := c.http.Get(ctx, "/users", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *catalogClient) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	var created models.User
	if err := c.http.Post(ctx, "/users", u, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *catalogClient) UpdateUser(ctx context.Context, u *models.User) (*models.User, error) {
	var updated models.User
	if err := c.http.Put(ctx, fmt.Sprintf("/users/%d", u.ID), u, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *catalogClient) DeleteUser(ctx context.Context, id int64) error {
	return c.http.Delete(ctx, fmt.Sprintf("/users/%d", id))
}

func (c *catalogClient) ListAssets(ctx context.Context, page, size int) (*models.Page[models.Asset], error) {
	var out models.Page[models.Asset]
	if err := c.http.Get(ctx, "/assets", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *catalogClient) CreateAsset(ctx context.Context, a *models.Asset) (*models.Asset, error) {
	var created models.Asset
	if err := c.http.Post(ctx, "/assets", a, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *catalogClient) UpdateAsset(ctx context.Context, a *models.Asset) (*models.Asset, error) {
	var updated models.Asset
	if err := c.http.Put(ctx, fmt.Sprintf("/assets/%d", a.ID), a, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *catalogClient) DeleteAsset(ctx context.Context, id int64) error {
	return c.http.Delete(ctx, fmt.Sprintf("/assets/%d", id))
}

func (c *catalogClient) ListPromotions(ctx context.Context, page, size int) (*models.Page[models.Promotion], error) {
	var out models.Page[models.Promotion]
	if err := c.http.Get(ctx, "/promotions", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *catalogClient) CreatePromotion(ctx context.Context, p *models.Promotion) (*models.Promotion, error) {
	var created models.Promotion
	if err := c.http.Post(ctx, "/promotions", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *catalogClient) UpdatePromotion(ctx context.Context, p *models.Promotion) (*models.Promotion, error) {
	var updated models.Promotion
	if err := c.http.Put(ctx, fmt.Sprintf("/promotions/%d", p.ID), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *catalogClient) DeletePromotion(ctx context.Context, id int64) error {
	return c.http.Delete(ctx, fmt.Sprintf("/promotions/%d", id))
}
