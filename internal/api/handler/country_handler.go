package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travelist/vacations-system/internal/core/ports"
)

// CountryHandler serves the country reference list.
type CountryHandler struct {
	countries ports.CountryRepository
}

func NewCountryHandler(countries ports.CountryRepository) *CountryHandler {
	return &CountryHandler{countries: countries}
}

type countryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// List handles GET /api/countries.
//
// @Summary      List all countries
// @Tags         countries
// @Produce      json
// @Success      200  {array}  countryResponse
// @Router       /api/countries [get]
func (h *CountryHandler) List(c echo.Context) error {
	countries, err := h.countries.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]countryResponse, len(countries))
	for i, country := range countries {
		out[i] = countryResponse{ID: country.ID, Name: country.Name}
	}
	return c.JSON(http.StatusOK, out)
}
