package domain

// StringPtr returns a pointer to s, for filling optional fields.
func StringPtr(s string) *string {
	return &s
}
