package domain

type ReportType string

const (
	ReportTypeAudit    ReportType = "audit"
	ReportTypeTest     ReportType = "test"
	ReportTypeScenario ReportType = "scenario"
)

// Row holds one record's values, aligned positionally to the resolved
// fields of the same request.
type Row struct {
	Values []any
}

// Envelope pairs the resolved schema with the mapped rows. It is the sole
// output of a data request.
type Envelope struct {
	Schema ResolvedFields
	Rows   []Row
}
