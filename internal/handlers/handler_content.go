package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/global_finance_path/internal/core/ports/services"
	"github.com/SscSPs/global_finance_path/internal/dto"
	"github.com/SscSPs/global_finance_path/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contentHandler serves the per-country content collections.
type contentHandler struct {
	instrumentService     portssvc.InstrumentSvcFacade
	schemeService         portssvc.SchemeSvcFacade
	taxService            portssvc.TaxSvcFacade
	recommendationService portssvc.RecommendationSvcFacade
}

func newContentHandler(services *portssvc.ServiceContainer) *contentHandler {
	return &contentHandler{
		instrumentService:     services.Instrument,
		schemeService:         services.Scheme,
		taxService:            services.Tax,
		recommendationService: services.Recommendation,
	}
}

// registerContentRoutes registers the content routes under /countries/:code.
func registerContentRoutes(countries *gin.RouterGroup, services *portssvc.ServiceContainer, writeEnabled bool) {
	h := newContentHandler(services)

	country := countries.Group("/:code")
	{
		country.GET("/instruments", h.listInstruments)
		country.GET("/schemes", h.listSchemes)
		country.GET("/tax", h.listRegulations)
		country.GET("/recommendations", h.listRecommendations)

		if writeEnabled {
			country.POST("/instruments", h.createInstrument)
			country.POST("/schemes", h.createScheme)
			country.POST("/tax", h.createRegulation)
			country.POST("/recommendations", h.createRecommendation)
		}
	}
}

// listInstruments godoc
// @Summary List financial instruments
// @Description Retrieves the financial instruments of a country. Unknown countries yield an empty list.
// @Tags content
// @Produce  json
// @Param   code path string true "Country code" example(IN)
// @Success 200 {array} dto.InstrumentResponse
// @Failure 500 {object} map[string]string "Failed to fetch financial instruments"
// @Router /countries/{code}/instruments [get]
func (h *contentHandler) listInstruments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("country_code", c.Param("code")))

	instruments, err := h.instrumentService.ListInstrumentsByCountry(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "Failed to fetch financial instruments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInstrumentResponse(instruments))
}

// listSchemes godoc
// @Summary List savings schemes
// @Description Retrieves the savings schemes of a country. Unknown countries yield an empty list.
// @Tags content
// @Produce  json
// @Param   code path string true "Country code" example(IN)
// @Success 200 {array} dto.SchemeResponse
// @Failure 500 {object} map[string]string "Failed to fetch savings schemes"
// @Router /countries/{code}/schemes [get]
func (h *contentHandler) listSchemes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("country_code", c.Param("code")))

	schemes, err := h.schemeService.ListSchemesByCountry(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "Failed to fetch savings schemes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSchemeResponse(schemes))
}

// listRegulations godoc
// @Summary List tax regulations
// @Description Retrieves the tax regulations of a country in regime order.
// @Tags content
// @Produce  json
// @Param   code path string true "Country code" example(IN)
// @Success 200 {array} dto.TaxRegulationResponse
// @Failure 500 {object} map[string]string "Failed to fetch tax regulations"
// @Router /countries/{code}/tax [get]
func (h *contentHandler) listRegulations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("country_code", c.Param("code")))

	regulations, err := h.taxService.ListRegulationsByCountry(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "Failed to fetch tax regulations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTaxRegulationResponse(regulations))
}

// listRecommendations godoc
// @Summary List recommendations
// @Description Retrieves the demographic recommendations of a country.
// @Tags content
// @Produce  json
// @Param   code path string true "Country code" example(IN)
// @Success 200 {array} dto.RecommendationResponse
// @Failure 500 {object} map[string]string "Failed to fetch recommendations"
// @Router /countries/{code}/recommendations [get]
func (h *contentHandler) listRecommendations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("country_code", c.Param("code")))

	recommendations, err := h.recommendationService.ListRecommendationsByCountry(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "Failed to fetch recommendations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecommendationResponse(recommendations))
}

// writeCountryCode returns the path country code for create routes, answering 400
// itself when the code is malformed.
func writeCountryCode(c *gin.Context, logger *slog.Logger) (string, bool) {
	code := c.Param("code")
	if !dto.IsCountryCode(code) {
		logger.Warn("Rejected write for malformed country code", slog.String("country_code", code))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Country code must be two upper-case letters"})
		return "", false
	}
	return code, true
}

// createInstrument godoc
// @Summary Add a financial instrument
// @Tags content
// @Accept  json
// @Produce  json
// @Param   code path string true "Country code" example(IN)
// @Param   instrument body dto.CreateInstrumentRequest true "Instrument details"
// @Success 201 {object} dto.InstrumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create financial instrument"
// @Router /countries/{code}/instruments [post]
func (h *contentHandler) createInstrument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := writeCountryCode(c, logger)
	if !ok {
		return
	}
	var req dto.CreateInstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	instrument, err := h.instrumentService.CreateInstrument(c.Request.Context(), code, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create financial instrument")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInstrumentResponse(instrument))
}

// createScheme godoc
// @Summary Add a savings scheme
// @Tags content
// @Accept  json
// @Produce  json
// @Param   code path string true "Country code" example(IN)
// @Param   scheme body dto.CreateSchemeRequest true "Scheme details"
// @Success 201 {object} dto.SchemeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create savings scheme"
// @Router /countries/{code}/schemes [post]
func (h *contentHandler) createScheme(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := writeCountryCode(c, logger)
	if !ok {
		return
	}
	var req dto.CreateSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	scheme, err := h.schemeService.CreateScheme(c.Request.Context(), code, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create savings scheme")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSchemeResponse(scheme))
}

// createRegulation godoc
// @Summary Add a tax regulation
// @Tags content
// @Accept  json
// @Produce  json
// @Param   code path string true "Country code" example(IN)
// @Param   regulation body dto.CreateTaxRegulationRequest true "Regulation details"
// @Success 201 {object} dto.TaxRegulationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create tax regulation"
// @Router /countries/{code}/tax [post]
func (h *contentHandler) createRegulation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := writeCountryCode(c, logger)
	if !ok {
		return
	}
	var req dto.CreateTaxRegulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	regulation, err := h.taxService.CreateRegulation(c.Request.Context(), code, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create tax regulation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaxRegulationResponse(regulation))
}

// createRecommendation godoc
// @Summary Add a recommendation
// @Tags content
// @Accept  json
// @Produce  json
// @Param   code path string true "Country code" example(IN)
// @Param   recommendation body dto.CreateRecommendationRequest true "Recommendation details"
// @Success 201 {object} dto.RecommendationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create recommendation"
// @Router /countries/{code}/recommendations [post]
func (h *contentHandler) createRecommendation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := writeCountryCode(c, logger)
	if !ok {
		return
	}
	var req dto.CreateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	recommendation, err := h.recommendationService.CreateRecommendation(c.Request.Context(), code, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create recommendation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRecommendationResponse(recommendation))
}
