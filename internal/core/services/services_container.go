package services

import (
	portsrepo "github.com/SscSPs/global_finance_path/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/global_finance_path/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, searchOpts ...SearchServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Country:        NewCountryService(repos.CountryRepo),
		Instrument:     NewInstrumentService(repos.InstrumentRepo),
		Scheme:         NewSchemeService(repos.SchemeRepo),
		Tax:            NewTaxService(repos.RegulationRepo),
		Recommendation: NewRecommendationService(repos.RecommendationRepo),
		Search:         NewSearchService(repos.Searcher, searchOpts...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CountrySvcFacade        = (*countryService)(nil)
	_ portssvc.InstrumentSvcFacade     = (*instrumentService)(nil)
	_ portssvc.SchemeSvcFacade         = (*schemeService)(nil)
	_ portssvc.TaxSvcFacade            = (*taxService)(nil)
	_ portssvc.RecommendationSvcFacade = (*recommendationService)(nil)
	_ portssvc.SearchSvc               = (*searchService)(nil)
)
