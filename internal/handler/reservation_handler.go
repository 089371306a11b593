package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Santy01/gestion-viajes-api/internal/dto"
	"github.com/Santy01/gestion-viajes-api/internal/service"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/date-range", h.ListByDateRange)
	g.GET("/tourist/:touristId", h.ListByTourist)
	g.GET("/destination/:destinationId", h.ListByDestination)
	g.GET("/:id", h.Get)
	g.HEAD("/:id", h.Exists)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *ReservationHandler) Create(c echo.Context) error {
	var req dto.CreateReservationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.svc.Create(c.Request().Context(), service.NewReservation{
		TouristID:     req.TouristID,
		DestinationID: req.DestinationID,
		StartDate:     req.StartDate.Time,
		EndDate:       req.EndDate.Time,
		PartySize:     dto.PartySizeOrDefault(req.PartySize),
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToReservationResponse(r))
}

func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id", "reservation")
	if err != nil {
		return err
	}

	var req dto.UpdateReservationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.svc.Update(c.Request().Context(), id, service.ReservationChange{
		StartDate: req.StartDate.Time,
		EndDate:   req.EndDate.Time,
		PartySize: dto.PartySizeOrDefault(req.PartySize),
	})
	if err != nil {
		return toHTTPError(err)
	}
	if r == nil {
		return echo.NewHTTPError(http.StatusNotFound, "reservation not found")
	}

	return c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id", "reservation")
	if err != nil {
		return err
	}

	r, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if r == nil {
		return echo.NewHTTPError(http.StatusNotFound, "reservation not found")
	}

	return c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *ReservationHandler) Exists(c echo.Context) error {
	id, err := parseID(c, "id", "reservation")
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

func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id", "reservation")
	if err != nil {
		return err
	}

	deleted, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "reservation not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ReservationHandler) List(c echo.Context) error {
	rs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponses(rs))
}

func (h *ReservationHandler) ListByTourist(c echo.Context) error {
	id, err := parseID(c, "touristId", "tourist")
	if err != nil {
		return err
	}

	rs, err := h.svc.ListByTourist(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponses(rs))
}

func (h *ReservationHandler) ListByDestination(c echo.Context) error {
	id, err := parseID(c, "destinationId", "destination")
	if err != nil {
		return err
	}

	rs, err := h.svc.ListByDestination(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponses(rs))
}

func (h *ReservationHandler) ListByDateRange(c echo.Context) error {
	from, err := dto.ParseDate(c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "from: "+err.Error())
	}
	to, err := dto.ParseDate(c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "to: "+err.Error())
	}

	rs, err := h.svc.ListByDateRange(c.Request().Context(), from.Time, to.Time)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponses(rs))
}
