package catalog

import (
	"github.com/de-tools/columbo-connector/pkg/errs"
	"github.com/de-tools/columbo-connector/pkg/models/domain"
)

// Fields returns the connector's field catalog. Construction is cheap and
// deterministic, so the catalog is rebuilt on every call instead of being
// held as shared state.
func Fields() domain.FieldCatalog {
	return domain.FieldCatalog{
		{
			ID:          "audit_name",
			DisplayName: "Audit Name",
			Type:        domain.FieldTypeText,
			Role:        domain.FieldRoleDimension,
		},
		{
			ID:          "last_sweep_at",
			DisplayName: "Last Sweep At",
			Type:        domain.FieldTypeDate,
			Role:        domain.FieldRoleDimension,
			Group:       "Date",
		},
		{
			ID:          "active",
			DisplayName: "Active",
			Type:        domain.FieldTypeText,
			Role:        domain.FieldRoleDimension,
		},
		{
			ID:          "screenshot",
			DisplayName: "Screenshot",
			Type:        domain.FieldTypeText,
			Role:        domain.FieldRoleDimension,
		},
		{
			ID:          "pages_scanned",
			DisplayName: "Pages Scanned",
			Type:        domain.FieldTypeNumber,
			Role:        domain.FieldRoleMetric,
		},
		{
			ID:          "pages_found",
			DisplayName: "Pages Found",
			Type:        domain.FieldTypeNumber,
			Role:        domain.FieldRoleMetric,
		},
	}
}

// Resolve selects the requested subset of the catalog in the caller's
// order. Repeated ids produce repeated entries, each its own column. An id
// the catalog does not know is a contract violation and fails the whole
// request before any remote call is spent.
func Resolve(catalog domain.FieldCatalog, requestedIDs []string) (domain.ResolvedFields, error) {
	byID := make(map[string]domain.FieldDefinition, len(catalog))
	for _, f := range catalog {
		byID[f.ID] = f
	}

	resolved := make(domain.ResolvedFields, 0, len(requestedIDs))
	for _, id := range requestedIDs {
		f, ok := byID[id]
		if !ok {
			return nil, &errs.UnresolvedFieldError{ID: id}
		}
		resolved = append(resolved, f)
	}
	return resolved, nil
}
