package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/villastay/property-reservation/internal/repository"
)

// PropertyHandler exposes read access to the property catalog.
type PropertyHandler struct {
	Props *repository.PropertyRepo
}

func NewPropertyHandler(props *repository.PropertyRepo) *PropertyHandler {
	if props == nil {
		panic("nil repository passed to NewPropertyHandler")
	}
	return &PropertyHandler{Props: props}
}

// List handles GET /v1/properties.
func (h *PropertyHandler) List(c echo.Context) error {
	props, err := h.Props.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list properties: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load properties"})
	}
	return c.JSON(http.StatusOK, echo.Map{"properties": props})
}

// Get handles GET /v1/properties/:id.
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}
	p, err := h.Props.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		c.Logger().Errorf("get property: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load property"})
	}
	return c.JSON(http.StatusOK, p)
}
