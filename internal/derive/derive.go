// Package derive turns the loaded text table into annotated records. All
// typed interpretation happens here, one pass, no side effects beyond the
// derived fields; a malformed cell degrades that field only and never
// aborts the run.
package derive

import (
	"strings"

	"nqsmap/internal/config"
	"nqsmap/internal/model"
	"nqsmap/internal/normalize"
	"nqsmap/internal/table"
)

// Result carries the derived record set plus drop accounting.
type Result struct {
	Records []model.Record
	// RowsDropped counts rows missing a numeric coordinate on either
	// axis. Dropped rows never reach rendering, provider totals or the
	// viewport computation.
	RowsDropped int
}

// Records converts the table (post-filter) into records with all derived
// fields populated, preserving input order.
func Records(t *table.Table, cols config.ColumnMap) *Result {
	res := &Result{Records: make([]model.Record, 0, len(t.Rows))}

	qaPresent := presentQualityAreas(t)

	for i := range t.Rows {
		cell := func(logical string) string {
			return strings.TrimSpace(t.Cell(i, cols.Header(logical)))
		}

		lat, okLat := normalize.Coordinate(cell(config.ColLatitude))
		lng, okLng := normalize.Coordinate(cell(config.ColLongitude))
		if !okLat || !okLng {
			res.RowsDropped++
			continue
		}

		rec := model.Record{
			ServiceName:    cell(config.ColServiceName),
			ApprovalNumber: cell(config.ColApprovalNumber),
			ProviderID:     cell(config.ColProviderID),
			ProviderName:   cell(config.ColProviderName),
			ManagementType: cell(config.ColManagementType),
			ServiceType:    cell(config.ColServiceType),
			ServiceSubType: cell(config.ColServiceSubType),
			Phone:          cell(config.ColPhone),
			AddressLine1:   cell(config.ColAddressLine1),
			AddressLine2:   cell(config.ColAddressLine2),
			Suburb:         cell(config.ColSuburb),
			State:          cell(config.ColState),
			Postcode:       cell(config.ColPostcode),
			MaxPlaces:      cell(config.ColMaxPlaces),
			SEIFA:          cell(config.ColSEIFA),
			ARIA:           cell(config.ColARIA),
			Lat:            lat,
			Lng:            lng,
		}

		rec.Rating = normalize.Rating(cell(config.ColRating))
		rec.Color = model.RatingColor(rec.Rating)
		rec.Address = normalize.Address(
			rec.AddressLine1, rec.AddressLine2, rec.Suburb, rec.State, rec.Postcode)
		rec.ReportDateISO = normalize.ReportDate(cell(config.ColReportDate))
		rec.StableID = normalize.Identifier(rec.ProviderID, rec.ApprovalNumber)

		if len(qaPresent) > 0 {
			rec.QualityAreas = make(map[string]string, len(qaPresent))
			for _, col := range qaPresent {
				rec.QualityAreas[col] = strings.TrimSpace(t.Cell(i, col))
			}
		}

		res.Records = append(res.Records, rec)
	}

	broadcastProviderCounts(res.Records)
	return res
}

// broadcastProviderCounts counts each provider across the surviving
// record set and writes the total back onto every record of that
// provider. Counts therefore reflect the post-filter, pre-facet
// population.
func broadcastProviderCounts(records []model.Record) {
	counts := make(map[string]int)
	for i := range records {
		if k := records[i].ProviderKey(); k != "" {
			counts[k]++
		}
	}
	for i := range records {
		if k := records[i].ProviderKey(); k != "" {
			records[i].ProviderCount = counts[k]
		}
	}
}

func presentQualityAreas(t *table.Table) []string {
	var present []string
	for _, col := range model.QualityAreaColumns() {
		if t.HasColumn(col) {
			present = append(present, col)
		}
	}
	return present
}
