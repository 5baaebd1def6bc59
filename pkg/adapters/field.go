package adapters

import (
	"github.com/de-tools/columbo-connector/pkg/models/api"
	"github.com/de-tools/columbo-connector/pkg/models/domain"
)

func MapFieldDomainToApi(f domain.FieldDefinition) api.Field {
	return api.Field{
		ID:          f.ID,
		DisplayName: f.DisplayName,
		Type:        string(f.Type),
		Role:        string(f.Role),
		Group:       f.Group,
		Description: f.Description,
	}
}

func MapFieldsDomainToApi(fields []domain.FieldDefinition) []api.Field {
	res := make([]api.Field, 0, len(fields))
	for _, f := range fields {
		res = append(res, MapFieldDomainToApi(f))
	}
	return res
}

func MapEnvelopeDomainToApi(e domain.Envelope) api.GetDataResponse {
	res := api.GetDataResponse{
		Schema: MapFieldsDomainToApi(e.Schema),
		Rows:   make([]api.Row, 0, len(e.Rows)),
	}
	for _, r := range e.Rows {
		res.Rows = append(res.Rows, api.Row{Values: r.Values})
	}
	return res
}
