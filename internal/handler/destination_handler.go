package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Santy01/gestion-viajes-api/internal/dto"
	"github.com/Santy01/gestion-viajes-api/internal/service"
)

type DestinationHandler struct {
	svc service.DestinationService
}

func NewDestinationHandler(svc service.DestinationService) *DestinationHandler {
	return &DestinationHandler{svc: svc}
}

func (h *DestinationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/search", h.Search)
	g.GET("/country/:country", h.ListByCountry)
	g.GET("/cost-range", h.ListByCostRange)
	g.GET("/:id", h.Get)
	g.HEAD("/:id", h.Exists)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func toDestinationInput(req *dto.DestinationRequest) service.DestinationInput {
	return service.DestinationInput{
		Name:        req.Name,
		Country:     req.Country,
		Description: req.Description,
		Cost:        decimal.NewFromFloat(*req.Cost).Round(2),
	}
}

func (h *DestinationHandler) Create(c echo.Context) error {
	var req dto.DestinationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	d, err := h.svc.Create(c.Request().Context(), toDestinationInput(&req))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToDestinationResponse(d))
}

func (h *DestinationHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id", "destination")
	if err != nil {
		return err
	}

	var req dto.DestinationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	d, err := h.svc.Update(c.Request().Context(), id, toDestinationInput(&req))
	if err != nil {
		return toHTTPError(err)
	}
	if d == nil {
		return echo.NewHTTPError(http.StatusNotFound, "destination not found")
	}
	return c.JSON(http.StatusOK, dto.ToDestinationResponse(d))
}

func (h *DestinationHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id", "destination")
	if err != nil {
		return err
	}

	d, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if d == nil {
		return echo.NewHTTPError(http.StatusNotFound, "destination not found")
	}
	return c.JSON(http.StatusOK, dto.ToDestinationResponse(d))
}

func (h *DestinationHandler) Exists(c echo.Context) error {
	id, err := parseID(c, "id", "destination")
	if err != nil {
		return err
	}

	ok, err := h.svc.Exists(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DestinationHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id", "destination")
	if err != nil {
		return err
	}

	deleted, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "destination not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DestinationHandler) List(c echo.Context) error {
	ds, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToDestinationResponses(ds))
}

func (h *DestinationHandler) Search(c echo.Context) error {
	ds, err := h.svc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToDestinationResponses(ds))
}

func (h *DestinationHandler) ListByCountry(c echo.Context) error {
	ds, err := h.svc.ListByCountry(c.Request().Context(), c.Param("country"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToDestinationResponses(ds))
}

func (h *DestinationHandler) ListByCostRange(c echo.Context) error {
	min, err := decimal.NewFromString(c.QueryParam("min"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid min cost")
	}
	max, err := decimal.NewFromString(c.QueryParam("max"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid max cost")
	}

	ds, err := h.svc.ListByCostRange(c.Request().Context(), min, max)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToDestinationResponses(ds))
}
