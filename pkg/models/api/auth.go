package api

const (
	ErrorCodeNone               = "NONE"
	ErrorCodeInvalidCredentials = "INVALID_CREDENTIALS"
)

type UserToken struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

type SetCredentialsRequest struct {
	UserToken UserToken `json:"userToken"`
}

type SetCredentialsResponse struct {
	ErrorCode string `json:"errorCode"`
}

type AuthStatusResponse struct {
	Authorized bool `json:"authorized"`
}
