package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/global_finance_path/internal/apperrors"
	portssvc "github.com/SscSPs/global_finance_path/internal/core/ports/services"
	"github.com/SscSPs/global_finance_path/internal/dto"
	"github.com/SscSPs/global_finance_path/internal/middleware"
	"github.com/gin-gonic/gin"
)

// countryHandler handles HTTP requests related to countries.
type countryHandler struct {
	countryService portssvc.CountrySvcFacade
}

func newCountryHandler(cs portssvc.CountrySvcFacade) *countryHandler {
	return &countryHandler{countryService: cs}
}

// registerCountryRoutes registers routes related to countries and returns the
// /countries group so per-country content routes can hang off it.
func registerCountryRoutes(rg *gin.RouterGroup, countryService portssvc.CountrySvcFacade, writeEnabled bool) *gin.RouterGroup {
	h := newCountryHandler(countryService)

	countries := rg.Group("/countries")
	{
		countries.GET("", h.listCountries)
		countries.GET("/:code", h.getCountryByCode)
		if writeEnabled {
			countries.POST("", h.createCountry)
		}
	}
	return countries
}

// listCountries godoc
// @Summary List all countries
// @Description Retrieves every country in display order
// @Tags countries
// @Produce  json
// @Success 200 {array} dto.CountryResponse
// @Failure 500 {object} map[string]string "Failed to fetch countries"
// @Router /countries [get]
func (h *countryHandler) listCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	countries, err := h.countryService.ListCountries(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to fetch countries")
		return
	}

	logger.Info("Countries listed successfully", slog.Int("count", len(countries)))
	c.JSON(http.StatusOK, dto.ToListCountryResponse(countries))
}

// getCountryByCode godoc
// @Summary Get a country by code
// @Description Retrieves a country by its two-letter code
// @Tags countries
// @Produce  json
// @Param   code path string true "Country code" example(IN)
// @Success 200 {object} dto.CountryResponse
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 500 {object} map[string]string "Failed to fetch country"
// @Router /countries/{code} [get]
func (h *countryHandler) getCountryByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")
	logger = logger.With(slog.String("country_code", code))

	country, err := h.countryService.GetCountryByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Country not found")
			c.JSON(http.StatusNotFound, gin.H{"message": "Country not found"})
			return
		}
		respondError(c, logger, err, "Failed to fetch country")
		return
	}

	c.JSON(http.StatusOK, dto.ToCountryResponse(country))
}

// createCountry godoc
// @Summary Create a country
// @Description Adds a country, replacing any country with the same code. Only served when the write API is enabled.
// @Tags countries
// @Accept  json
// @Produce  json
// @Param   country body dto.CreateCountryRequest true "Country details"
// @Success 201 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create country"
// @Router /countries [post]
func (h *countryHandler) createCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	country, err := h.countryService.CreateCountry(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create country")
		return
	}

	logger.Info("Country created", slog.String("country_code", country.Code))
	c.JSON(http.StatusCreated, dto.ToCountryResponse(country))
}
