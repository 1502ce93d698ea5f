package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hotelops/dashboard-service/internal/models"
	"github.com/hotelops/dashboard-service/pkg/httpclient"
)

type InvoiceClient interface {
	Get(ctx context.Context, id int64) (*models.Invoice, error)
	Create(ctx context.Context, inv *models.Invoice) (*models.Invoice, error)
	Update(ctx context.Context, inv *models.Invoice) (*models.Invoice, error)
	List(ctx context.Context, page, size int) (*models.Page[models.Invoice], error)
}

type invoiceClient struct {
	http *httpclient.Client
}

func NewInvoiceClient(c *httpclient.Client) InvoiceClient {
	return &invoiceClient{http: c}
}

func (c *invoiceClient) Get(ctx context.Context, id int64) (*models.Invoice, error) {
	var inv models.Invoice
	if err := c.http.Get(ctx, fmt.Sprintf("/invoices/%d", id), nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *invoiceClient) Create(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	var created models.Invoice
	if err := c.http.Post(ctx, "/invoices", inv, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *invoiceClient) Update(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	var updated models.Invoice
	if err := c.http.Put(ctx, fmt.Sprintf("/invoices/%d", inv.ID), inv, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *invoiceClient) List(ctx context.Context, page, size int) (*models.Page[models.Invoice], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}

	var out models.Page[models.Invoice]
	if err := c.http.Get(ctx, "/invoices", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
