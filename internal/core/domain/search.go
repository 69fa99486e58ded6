package domain

// SearchResult groups the records of one country that matched a free-text query.
// Each slice keeps store insertion order.
type SearchResult struct {
	Instruments []FinancialInstrument `json:"instruments"`
	Schemes     []SavingsScheme       `json:"schemes"`
	Regulations []TaxRegulation       `json:"regulations"`
}

// Total returns the number of matched records across all collections.
func (r SearchResult) Total() int {
	return len(r.Instruments) + len(r.Schemes) + len(r.Regulations)
}
