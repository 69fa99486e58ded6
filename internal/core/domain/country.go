package domain

// Country is the partitioning key for all content. Code is the primary key (e.g. "IN").
type Country struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Currency       string `json:"currency"`       // ISO code, e.g. "INR"
	CurrencySymbol string `json:"currencySymbol"` // e.g. "₹"
}
