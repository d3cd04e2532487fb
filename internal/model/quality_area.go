package model

// QualityArea describes one of the seven NQS assessment sub-dimensions.
// Column is the header carried by ACECQA exports; Label is the popup text.
type QualityArea struct {
	Column string
	Label  string
}

// AllQualityAreas lists the quality areas in canonical order. Columns not
// present in a given export are simply omitted from the popups.
var AllQualityAreas = []QualityArea{
	{Column: "Quality Area 1", Label: "QA1 Educational program and practice"},
	{Column: "Quality Area 2", Label: "QA2 Children's health and safety"},
	{Column: "Quality Area 3", Label: "QA3 Physical environment"},
	{Column: "Quality Area 4", Label: "QA4 Staffing arrangements"},
	{Column: "Quality Area 5", Label: "QA5 Relationships with children"},
	{Column: "Quality Area 6", Label: "QA6 Collaborative partnerships"},
	{Column: "Quality Area 7", Label: "QA7 Governance and leadership"},
}

// QualityAreaColumns returns just the column names for all quality areas.
func QualityAreaColumns() []string {
	cols := make([]string, len(AllQualityAreas))
	for i, qa := range AllQualityAreas {
		cols[i] = qa.Column
	}
	return cols
}
