package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/global_finance_path/internal/core/domain"
	portssvc "github.com/SscSPs/global_finance_path/internal/core/ports/services"
	"github.com/SscSPs/global_finance_path/internal/dto"
	"github.com/SscSPs/global_finance_path/internal/middleware"
	"github.com/SscSPs/global_finance_path/internal/platform/config"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page sections selectable through ?section=.
const (
	SectionInstruments = "instruments"
	SectionSavings     = "savings"
	SectionTax         = "tax"
)

type pageSection struct {
	Key   string
	Label string
}

var pageSections = []pageSection{
	{Key: SectionInstruments, Label: "Financial Instruments"},
	{Key: SectionSavings, Label: "Savings Schemes"},
	{Key: SectionTax, Label: "Tax Regulations"},
}

// pageData is the view model of the index page.
type pageData struct {
	Countries       []dto.CountryResponse
	Country         dto.CountryResponse
	Sections        []pageSection
	Section         string
	SearchQuery     string
	Instruments     []dto.InstrumentResponse
	Schemes         []dto.SchemeResponse
	Regulations     []dto.TaxRegulationResponse
	Recommendations []dto.RecommendationResponse
}

func newPageTemplate() *template.Template {
	funcs := template.FuncMap{"join": strings.Join}
	return template.Must(template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// homeHandler renders the server-side index page.
type homeHandler struct {
	defaultCountry string
	services       *portssvc.ServiceContainer
}

func registerHomeRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, limit gin.HandlerFunc) {
	h := &homeHandler{defaultCountry: cfg.DefaultCountry, services: services}
	r.SetHTMLTemplate(newPageTemplate())
	r.GET("/", limit, h.getHome)
}

// getHome godoc
// @Summary Render the content page
// @Description Server-rendered page for one country and section. Unknown countries fall back to the default country.
// @Tags pages
// @Produce  html
// @Param   country query string false "Country code" default(IN)
// @Param   section query string false "instruments, savings or tax" default(instruments)
// @Param   search query string false "Search text applied to the section"
// @Success 200 {string} string "HTML page"
// @Failure 500 {string} string "Internal Server Error"
// @Router / [get]
func (h *homeHandler) getHome(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	countries, err := h.services.Country.ListCountries(ctx)
	if err != nil {
		h.fail(c, logger, err)
		return
	}

	data := pageData{
		Countries:   dto.ToListCountryResponse(countries),
		Sections:    pageSections,
		Section:     normalizeSection(c.Query("section")),
		SearchQuery: c.Query("search"),
	}

	country, ok := pickCountry(countries, c.Query("country"), h.defaultCountry)
	if !ok {
		logger.Warn("No countries available to render")
		c.HTML(http.StatusOK, "index.html", data)
		return
	}
	data.Country = dto.ToCountryResponse(&country)
	logger = logger.With(slog.String("country_code", country.Code), slog.String("section", data.Section))

	if err := h.loadSection(c, country.Code, &data); err != nil {
		h.fail(c, logger, err)
		return
	}

	recommendations, err := h.services.Recommendation.ListRecommendationsByCountry(ctx, country.Code)
	if err != nil {
		h.fail(c, logger, err)
		return
	}
	data.Recommendations = dto.ToListRecommendationResponse(recommendations)

	c.HTML(http.StatusOK, "index.html", data)
}

// loadSection fills the list for the selected section. A non-empty search replaces
// the full list with that section's matches.
func (h *homeHandler) loadSection(c *gin.Context, code string, data *pageData) error {
	ctx := c.Request.Context()

	if data.SearchQuery != "" {
		result, err := h.services.Search.SearchContent(ctx, code, data.SearchQuery)
		if err != nil {
			return err
		}
		applySearch(data, result)
		return nil
	}

	switch data.Section {
	case SectionSavings:
		schemes, err := h.services.Scheme.ListSchemesByCountry(ctx, code)
		if err != nil {
			return err
		}
		data.Schemes = dto.ToListSchemeResponse(schemes)
	case SectionTax:
		regulations, err := h.services.Tax.ListRegulationsByCountry(ctx, code)
		if err != nil {
			return err
		}
		data.Regulations = dto.ToListTaxRegulationResponse(regulations)
	default:
		instruments, err := h.services.Instrument.ListInstrumentsByCountry(ctx, code)
		if err != nil {
			return err
		}
		data.Instruments = dto.ToListInstrumentResponse(instruments)
	}
	return nil
}

func applySearch(data *pageData, result *domain.SearchResult) {
	switch data.Section {
	case SectionSavings:
		data.Schemes = dto.ToListSchemeResponse(result.Schemes)
	case SectionTax:
		data.Regulations = dto.ToListTaxRegulationResponse(result.Regulations)
	default:
		data.Instruments = dto.ToListInstrumentResponse(result.Instruments)
	}
}

func (h *homeHandler) fail(c *gin.Context, logger *slog.Logger, err error) {
	logger.Error("Error rendering page", slog.String("error", err.Error()))
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

func normalizeSection(section string) string {
	switch section {
	case SectionSavings, SectionTax:
		return section
	default:
		return SectionInstruments
	}
}

// pickCountry resolves the requested code, then the default code, then the first
// country. ok is false only when there are no countries at all.
func pickCountry(countries []domain.Country, requested, fallback string) (domain.Country, bool) {
	for _, code := range []string{requested, fallback} {
		if code == "" {
			continue
		}
		for _, c := range countries {
			if c.Code == code {
				return c, true
			}
		}
	}
	if len(countries) == 0 {
		return domain.Country{}, false
	}
	return countries[0], true
}
