package domain

// DriftStatus is the drift detector verdict.
type DriftStatus string

const (
	DriftOK       DriftStatus = "ok"
	DriftDetected DriftStatus = "drift"
)

// DriftReport describes which API/SDK changes lack corresponding
// reference-doc changes in the same change set.
type DriftReport struct {
	Status              DriftStatus `json:"status"`
	Summary             string      `json:"summary"`
	OpenAPIChanges      []string    `json:"openapi_changed"`
	SDKChanges          []string    `json:"sdk_changed"`
	ReferenceDocChanges []string    `json:"reference_docs_changed"`
}

// EvaluateDrift applies the drift rule: DRIFT when OpenAPI or SDK surface
// changed and no reference doc changed. Pure: the classification is its only
// input.
func EvaluateDrift(classified []ClassifiedFile) DriftReport {
	report := DriftReport{
		OpenAPIChanges:      PathsIn(classified, GroupOpenAPI),
		SDKChanges:          PathsIn(classified, GroupSDK),
		ReferenceDocChanges: PathsIn(classified, GroupReferenceDoc),
	}

	switch {
	case len(report.OpenAPIChanges) == 0 && len(report.SDKChanges) == 0:
		report.Status = DriftOK
		report.Summary = "No API/SDK signature changes detected."
	case len(report.ReferenceDocChanges) > 0:
		report.Status = DriftOK
		report.Summary = "API/SDK changes are accompanied by reference docs updates."
	default:
		report.Status = DriftDetected
		report.Summary = "API/SDK changes detected without reference documentation updates."
	}

	return report
}
