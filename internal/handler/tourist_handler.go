package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Santy01/gestion-viajes-api/internal/dto"
	"github.com/Santy01/gestion-viajes-api/internal/service"
)

type TouristHandler struct {
	svc service.TouristService
}

func NewTouristHandler(svc service.TouristService) *TouristHandler {
	return &TouristHandler{svc: svc}
}

func (h *TouristHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/search", h.Search)
	g.GET("/email/:email", h.GetByEmail)
	g.HEAD("/email/:email", h.ExistsByEmail)
	g.GET("/:id", h.Get)
	g.HEAD("/:id", h.Exists)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func toTouristInput(req *dto.TouristRequest) service.TouristInput {
	return service.TouristInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}

func (h *TouristHandler) Create(c echo.Context) error {
	var req dto.TouristRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	t, err := h.svc.Create(c.Request().Context(), toTouristInput(&req))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToTouristResponse(t))
}

func (h *TouristHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id", "tourist")
	if err != nil {
		return err
	}

	var req dto.TouristRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	t, err := h.svc.Update(c.Request().Context(), id, toTouristInput(&req))
	if err != nil {
		return toHTTPError(err)
	}
	if t == nil {
		return echo.NewHTTPError(http.StatusNotFound, "tourist not found")
	}
	return c.JSON(http.StatusOK, dto.ToTouristResponse(t))
}

func (h *TouristHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id", "tourist")
	if err != nil {
		return err
	}

	t, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if t == nil {
		return echo.NewHTTPError(http.StatusNotFound, "tourist not found")
	}
	return c.JSON(http.StatusOK, dto.ToTouristResponse(t))
}

func (h *TouristHandler) GetByEmail(c echo.Context) error {
	t, err := h.svc.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	if t == nil {
		return echo.NewHTTPError(http.StatusNotFound, "tourist not found")
	}
	return c.JSON(http.StatusOK, dto.ToTouristResponse(t))
}

func (h *TouristHandler) Exists(c echo.Context) error {
	id, err := parseID(c, "id", "tourist")
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

func (h *TouristHandler) ExistsByEmail(c echo.Context) error {
	ok, err := h.svc.ExistsByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	return c.NoContent(http.StatusOK)
}

func (h *TouristHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id", "tourist")
	if err != nil {
		return err
	}

	deleted, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "tourist not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TouristHandler) List(c echo.Context) error {
	ts, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToTouristResponses(ts))
}

func (h *TouristHandler) Search(c echo.Context) error {
	ts, err := h.svc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToTouristResponses(ts))
}
