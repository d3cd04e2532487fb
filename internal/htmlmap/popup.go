package htmlmap

import (
	"html/template"
	"strings"

	"nqsmap/internal/model"
)

// emDash is the placeholder for empty values; popups never render blank
// fields or "None"/"NaN" literals.
const emDash = "—"

type qaRow struct {
	Label string
	Value string
}

type popupContext struct {
	R  *model.Record
	QA []qaRow
}

var popupFuncs = template.FuncMap{
	"dash": func(s string) string {
		if s == "" {
			return emDash
		}
		return s
	},
}

// Field order is fixed: header, rating, type, provider, management,
// phone, address, capacity, indices, quality areas. Values are escaped
// by the template engine.
var popupTmpl = template.Must(template.New("popup").Funcs(popupFuncs).Parse(strings.TrimSpace(`
<div style="min-width:300px;max-width:420px;font-family:system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial;">
  <div style="margin-bottom:6px;">
    <div style="font-size:16px;font-weight:600;line-height:1.2;">{{dash .R.ServiceName}}</div>
    <div style="font-size:12px;color:#555;">Approval: {{dash .R.ApprovalNumber}}</div>
  </div>
  <div style="font-size:13px;line-height:1.35;">
    <b>Overall rating</b>: {{.R.Rating}}<br>
    <b>Rating date</b>: {{dash .R.ReportDateISO}}<br>
    <b>Service type</b>: {{dash .R.ServiceType}}{{if .R.ServiceSubType}} / {{.R.ServiceSubType}}{{end}}<br>
    <b>Provider</b>: {{dash .R.ProviderName}}{{if .R.ProviderCount}} (services: {{.R.ProviderCount}}){{end}}<br>
    <b>Management type</b>: {{dash .R.ManagementType}}<br>
    <b>Phone</b>: {{dash .R.Phone}}<br>
    <b>Address</b>: {{dash .R.Address}}<br>
    <b>Maximum places</b>: {{dash .R.MaxPlaces}}<br>
    <b>SEIFA</b>: {{dash .R.SEIFA}} &middot; <b>ARIA+</b>: {{dash .R.ARIA}}
  </div>
{{- if .QA}}
  <div style="margin-top:6px;">
    <b>Quality Areas</b>
    <table style="font-size:12px;border-collapse:collapse;">
{{- range .QA}}
      <tr><td style="padding:2px 6px;white-space:nowrap;">{{.Label}}</td><td style="padding:2px 6px;">{{dash .Value}}</td></tr>
{{- end}}
    </table>
  </div>
{{- end}}
</div>
`)))

// Popup renders the rich popup body for one record. Quality-area rows
// appear only for columns present in the source, in catalog order.
func Popup(r *model.Record) (string, error) {
	ctx := popupContext{R: r}
	for _, qa := range model.AllQualityAreas {
		if v, ok := r.QualityAreas[qa.Column]; ok {
			ctx.QA = append(ctx.QA, qaRow{Label: qa.Label, Value: v})
		}
	}

	var b strings.Builder
	if err := popupTmpl.Execute(&b, ctx); err != nil {
		return "", err
	}
	return b.String(), nil
}
