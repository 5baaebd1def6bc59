package api

const (
	ConfigEntryTypeTextInput    = "TEXTINPUT"
	ConfigEntryTypeSelectSingle = "SELECT_SINGLE"
)

type ConfigOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ConfigEntry struct {
	Name        string         `json:"name"`
	DisplayName string         `json:"displayName"`
	Type        string         `json:"type"`
	HelpText    string         `json:"helpText,omitempty"`
	Options     []ConfigOption `json:"options,omitempty"`
}

// ConfigResponse describes the form the host renders to the operator.
type ConfigResponse struct {
	Params []ConfigEntry `json:"params"`
}
