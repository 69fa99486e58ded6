package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/global_finance_path/internal/core/ports/services"
	"github.com/SscSPs/global_finance_path/internal/dto"
	"github.com/SscSPs/global_finance_path/internal/middleware"
	"github.com/gin-gonic/gin"
)

type searchHandler struct {
	searchService portssvc.SearchSvc
}

func registerSearchRoutes(countries *gin.RouterGroup, searchService portssvc.SearchSvc) {
	h := &searchHandler{searchService: searchService}
	countries.GET("/:code/search", h.searchContent)
}

// searchContent godoc
// @Summary Search country content
// @Description Case-insensitive substring search over a country's instruments, savings schemes and tax regulations
// @Tags search
// @Produce  json
// @Param   code path string true "Country code" example(IN)
// @Param   q query string true "Search text" example(PPF)
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} map[string]string "Search query is required"
// @Failure 500 {object} map[string]string "Failed to search content"
// @Router /countries/{code}/search [get]
func (h *searchHandler) searchContent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	var params dto.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Search query missing", slog.String("country_code", code), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Search query is required"})
		return
	}

	logger = logger.With(slog.String("country_code", code), slog.String("query", params.Q))

	result, err := h.searchService.SearchContent(c.Request.Context(), code, params.Q)
	if err != nil {
		respondError(c, logger, err, "Failed to search content")
		return
	}

	logger.Info("Content search served", slog.Int("matches", result.Total()))
	c.JSON(http.StatusOK, dto.ToSearchResponse(result))
}
