package domain

type FieldType string

const (
	FieldTypeText   FieldType = "TEXT"
	FieldTypeNumber FieldType = "NUMBER"
	FieldTypeDate   FieldType = "DATE"
)

type FieldRole string

const (
	FieldRoleDimension FieldRole = "DIMENSION"
	FieldRoleMetric    FieldRole = "METRIC"
)

type FieldDefinition struct {
	ID          string
	DisplayName string
	Type        FieldType
	Role        FieldRole
	Group       string
	Description string
}

// FieldCatalog is the ordered set of fields the connector knows how to
// produce. Declaration order is the catalog order.
type FieldCatalog []FieldDefinition

// ResolvedFields is the caller-chosen subset of the catalog for one
// request, in the caller's order.
type ResolvedFields []FieldDefinition
