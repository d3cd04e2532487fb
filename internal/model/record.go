package model

// Record is one childcare service from the source table. The fields under
// "Derived" are computed once by internal/derive and read-only afterwards.
// Records only exist for rows with two numeric coordinates; everything
// else is dropped at derivation time.
type Record struct {
	ServiceName    string
	ApprovalNumber string
	ProviderID     string
	ProviderName   string
	ManagementType string
	ServiceType    string
	ServiceSubType string
	Phone          string

	AddressLine1 string
	AddressLine2 string
	Suburb       string
	State        string
	Postcode     string

	MaxPlaces string
	SEIFA     string
	ARIA      string

	// QualityAreas holds values for quality-area columns present in the
	// source, keyed by column name. Columns absent from the source have
	// no entry.
	QualityAreas map[string]string

	Lat float64
	Lng float64

	// Derived
	Rating        string
	Color         string
	Address       string
	ReportDateISO string
	ProviderCount int
	StableID      string
}

// ProviderKey is the identifier provider counts are keyed on: the provider
// approval number when present, otherwise the provider name.
func (r *Record) ProviderKey() string {
	if r.ProviderID != "" {
		return r.ProviderID
	}
	return r.ProviderName
}
