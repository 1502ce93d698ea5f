package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hotelops/dashboard-service/internal/models"
	"github.com/hotelops/dashboard-service/pkg/httpclient"
)

type RoomClient interface {
	Get(ctx context.Context, id int64) (*models.Room, error)
	List(ctx context.Context, page, size int) (*models.Page[models.Room], error)
	// SetStatus reads the room, replaces its status and writes the full
	// body back; the upstream PUT wants every field present.
	SetStatus(ctx context.Context, id int64, status string) (*models.Room, error)
}

type roomClient struct {
	http *httpclient.Client
}

func NewRoomClient(c *httpclient.Client) RoomClient {
	return &roomClient{http: c}
}

func (c *roomClient) Get(ctx context.Context, id int64) (*models.Room, error) {
	var r models.Room
	if err := c.http.Get(ctx, fmt.Sprintf("/rooms/%d", id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *roomClient) List(ctx context.Context, page, size int) (*models.Page[models.Room], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}

	var out models.Page[models.Room]
	if err := c.http.Get(ctx, "/rooms", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *roomClient) SetStatus(ctx context.Context, id int64, status string) (*models.Room, error) {
	room, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	room.Status = status

	var updated models.Room
	if err := c.http.Put(ctx, fmt.Sprintf("/rooms/%d", id), room, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
