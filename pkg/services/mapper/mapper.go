package mapper

import (
	"strings"

	"github.com/de-tools/columbo-connector/pkg/models/domain"
	"github.com/de-tools/columbo-connector/pkg/models/store"
)

// placeholder is emitted whenever a field's value cannot be produced:
// catalog fields with no live extraction rule and fields whose source data
// is absent on the record.
const placeholder = ""

type extractor func(m *Mapper, audit store.Audit) any

// extractors is the per-field rule set, keyed by catalog field id.
var extractors = map[string]extractor{
	"audit_name": func(_ *Mapper, a store.Audit) any {
		return strings.ReplaceAll(a.Name, "-", "")
	},
	"last_sweep_at": func(_ *Mapper, a store.Audit) any {
		// Passed through verbatim; the host parses DATE-typed values.
		return a.LastSweepAt
	},
	// "active" is part of the catalog but the audits endpoint does not
	// expose it yet.
	"active": func(_ *Mapper, _ store.Audit) any {
		return placeholder
	},
	"screenshot": func(m *Mapper, a store.Audit) any {
		s := a.Screenshot
		if s == nil || s.Directory == "" || s.Filename == "" {
			return placeholder
		}
		return m.staticBaseURL + "/" + s.Directory + "/" + s.Filename
	},
	"pages_scanned": func(_ *Mapper, a store.Audit) any {
		if a.Summary == nil {
			return placeholder
		}
		return a.Summary.Pages.Scanned
	},
	"pages_found": func(_ *Mapper, a store.Audit) any {
		if a.Summary == nil {
			return placeholder
		}
		return a.Summary.Pages.Found
	},
}

// Mapper projects raw audit records into rows aligned to a resolved field
// list.
type Mapper struct {
	staticBaseURL string
}

func New(staticBaseURL string) *Mapper {
	return &Mapper{staticBaseURL: strings.TrimRight(staticBaseURL, "/")}
}

// MapRecords produces one row per audit. Rows follow the input record
// order; values follow the resolved field order, so every row has exactly
// len(resolved) values. A field whose source data is missing emits the
// placeholder rather than failing the record.
func (m *Mapper) MapRecords(resolved domain.ResolvedFields, audits []store.Audit) []domain.Row {
	rows := make([]domain.Row, 0, len(audits))
	for _, a := range audits {
		values := make([]any, 0, len(resolved))
		for _, f := range resolved {
			extract, ok := extractors[f.ID]
			if !ok {
				values = append(values, placeholder)
				continue
			}
			values = append(values, extract(m, a))
		}
		rows = append(rows, domain.Row{Values: values})
	}
	return rows
}
