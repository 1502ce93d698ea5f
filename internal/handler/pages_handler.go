package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hotelops/dashboard-service/internal/models"
	"github.com/hotelops/dashboard-service/internal/upstream"
	"github.com/hotelops/dashboard-service/pkg/httpclient"
)

// PagesHandler serves the dashboard's remaining pages. These are thin
// proxies over the upstream API; the booking lifecycle is the only part
// of the dashboard with logic of its own.
type PagesHandler struct {
	rooms     upstream.RoomClient
	invoices  upstream.InvoiceClient
	catalog   upstream.CatalogClient
	site      upstream.SiteClient
	countries *upstream.CountryClient
}

func NewPagesHandler(rooms upstream.RoomClient, invoices upstream.InvoiceClient, catalog upstream.CatalogClient, site upstream.SiteClient, countries *upstream.CountryClient) *PagesHandler {
	return &PagesHandler{
		rooms:     rooms,
		invoices:  invoices,
		catalog:   catalog,
		site:      site,
		countries: countries,
	}
}

func (h *PagesHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/rooms", h.ListRooms)
	api.GET("/rooms/:id", h.GetRoom)

	api.GET("/invoices", h.ListInvoices)
	api.PUT("/invoices/:id", h.UpdateInvoice)

	api.GET("/users", h.ListUsers)
	api.POST("/users", h.CreateUser)
	api.PUT("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.DeleteUser)

	api.GET("/assets", h.ListAssets)
	api.POST("/assets", h.CreateAsset)
	api.PUT("/assets/:id", h.UpdateAsset)
	api.DELETE("/assets/:id", h.DeleteAsset)

	api.GET("/promotions", h.ListPromotions)
	api.POST("/promotions", h.CreatePromotion)
	api.PUT("/promotions/:id", h.UpdatePromotion)
	api.DELETE("/promotions/:id", h.DeletePromotion)

	api.GET("/dashboard", h.Dashboard)
	api.GET("/settings", h.GetSettings)
	api.PUT("/settings", h.UpdateSettings)
	api.GET("/countries", h.ListCountries)
}

func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	return page, size
}

func pathID(c echo.Context, what string) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+what+" id")
	}
	return id, nil
}

func (h *PagesHandler) ListRooms(c echo.Context) error {
	page, size := pageParams(c)
	out, err := h.rooms.List(c.Request().Context(), page, size)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PagesHandler) GetRoom(c echo.Context) error {
	id, err := pathID(c, "room")
	if err != nil {
		return err
	}
	room, err := h.rooms.Get(c.Request().Context(), id)
	if err != nil {
		if httpclient.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "room not found")
		}
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, room)
}

func (h *PagesHandler) ListInvoices(c echo.Context) error {
	page, size := pageParams(c)
	out, err := h.invoices.List(c.Request().Context(), page, size)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PagesHandler) UpdateInvoice(c echo.Context) error {
	id, err := pathID(c, "invoice")
	if err != nil {
		return err
	}

	var inv models.Invoice
	if err := c.Bind(&inv); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	inv.ID = id

	updated, err := h.invoices.Update(c.Request().Context(), &inv)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *PagesHandler) ListUsers(c echo.Context) error {
	page, size := pageParams(c)
	out, err := h.catalog.ListUsers(c.Request().Context(), page, size)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PagesHandler) CreateUser(c echo.Context) error {
	var u models.User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	created, err := h.catalog.CreateUser(c.Request().Context(), &u)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *PagesHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}
	var u models.User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	u.ID = id
	updated, err := h.catalog.UpdateUser(c.Request().Context(), &u)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *PagesHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteUser(c.Request().Context(), id); err != nil {
		return upstreamError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PagesHandler) ListAssets(c echo.Context) error {
	page, size := pageParams(c)
	out, err := h.catalog.ListAssets(c.Request().Context(), page, size)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PagesHandler) CreateAsset(c echo.Context) error {
	var a models.Asset
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	created, err := h.catalog.CreateAsset(c.Request().Context(), &a)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *PagesHandler) UpdateAsset(c echo.Context) error {
	id, err := pathID(c, "asset")
	if err != nil {
		return err
	}
	var a models.Asset
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a.ID = id
	updated, err := h.catalog.UpdateAsset(c.Request().Context(), &a)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *PagesHandler) DeleteAsset(c echo.Context) error {
	id, err := pathID(c, "asset")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteAsset(c.Request().Context(), id); err != nil {
		return upstreamError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PagesHandler) ListPromotions(c echo.Context) error {
	page, size := pageParams(c)
	out, err := h.catalog.ListPromotions(c.Request().Context(), page, size)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PagesHandler) CreatePromotion(c echo.Context) error {
	var p models.Promotion
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	created, err := h.catalog.CreatePromotion(c.Request().Context(), &p)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *PagesHandler) UpdatePromotion(c echo.Context) error {
	id, err := pathID(c, "promotion")
	if err != nil {
		return err
	}
	var p models.Promotion
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	p.ID = id
	updated, err := h.catalog.UpdatePromotion(c.Request().Context(), &p)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *PagesHandler) DeletePromotion(c echo.Context) error {
	id, err := pathID(c, "promotion")
	if err != nil {
		return err
	}
	if err := h.catalog.DeletePromotion(c.Request().Context(), id); err != nil {
		return upstreamError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PagesHandler) Dashboard(c echo.Context) error {
	m, err := h.site.Metrics(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *PagesHandler) GetSettings(c echo.Context) error {
	s, err := h.site.Settings(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *PagesHandler) UpdateSettings(c echo.Context) error {
	var s models.Settings
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	updated, err := h.site.UpdateSettings(c.Request().Context(), &s)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *PagesHandler) ListCountries(c echo.Context) error {
	countries, err := h.countries.All(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, countries)
}
