package api

type RequestedField struct {
	Name string `json:"name"`
}

type ConfigParams struct {
	Account    string `json:"account"`
	ReportType string `json:"reportType"`
}

type GetDataRequest struct {
	Fields       []RequestedField `json:"fields"`
	ConfigParams ConfigParams     `json:"configParams"`
}

type Field struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Type        string `json:"type"`
	Role        string `json:"role"`
	Group       string `json:"group,omitempty"`
	Description string `json:"description,omitempty"`
}

type Row struct {
	Values []any `json:"values"`
}

type GetDataResponse struct {
	Schema []Field `json:"schema"`
	Rows   []Row   `json:"rows"`
}

type GetSchemaResponse struct {
	Schema []Field `json:"schema"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
