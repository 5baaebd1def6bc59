package domain

type Credentials struct {
	Username string
	Token    string
}

// Valid reports whether both parts are present. It does not contact the
// remote service; a stored-but-rejected token still counts as valid here.
func (c Credentials) Valid() bool {
	return c.Username != "" && c.Token != ""
}
