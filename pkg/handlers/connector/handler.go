package connector

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/de-tools/columbo-connector/pkg/adapters"
	"github.com/de-tools/columbo-connector/pkg/errs"
	"github.com/de-tools/columbo-connector/pkg/models/api"
	"github.com/de-tools/columbo-connector/pkg/models/domain"
	"github.com/de-tools/columbo-connector/pkg/services/auth"
	"github.com/de-tools/columbo-connector/pkg/services/connector"
)

type Handler struct {
	connector connector.Connector
	gate      *auth.Gate
}

func NewHandler(c connector.Connector, gate *auth.Gate) *Handler {
	return &Handler{
		connector: c,
		gate:      gate,
	}
}

// GetConfig describes the form the operator fills in: the account id and
// the report type. Only the audit report type is wired to live data; the
// other two are collected but not mapped.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	response := api.ConfigResponse{
		Params: []api.ConfigEntry{
			{
				Name:        "account",
				DisplayName: "Account ID",
				Type:        api.ConfigEntryTypeTextInput,
				HelpText:    "The Columbo account to fetch reports for.",
			},
			{
				Name:        "reportType",
				DisplayName: "Report Type",
				Type:        api.ConfigEntryTypeSelectSingle,
				Options: []api.ConfigOption{
					{Label: "Audit Summary", Value: string(domain.ReportTypeAudit)},
					{Label: "Test Summary", Value: string(domain.ReportTypeTest)},
					{Label: "Scenario Summary", Value: string(domain.ReportTypeScenario)},
				},
			},
		},
	}

	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetSchema(w http.ResponseWriter, r *http.Request) {
	fields := h.connector.Fields(r.Context())
	writeJSON(w, r, http.StatusOK, api.GetSchemaResponse{
		Schema: adapters.MapFieldsDomainToApi(fields),
	})
}

func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if !h.gate.IsAuthorized(ctx) {
		writeError(w, r, http.StatusUnauthorized, "credentials are missing or incomplete")
		return
	}

	var request api.GetDataRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	requestedIDs := make([]string, 0, len(request.Fields))
	for _, f := range request.Fields {
		requestedIDs = append(requestedIDs, f.Name)
	}

	envelope, err := h.connector.GetData(ctx, request.ConfigParams.Account, requestedIDs)
	if err != nil {
		switch {
		case errs.IsUnresolvedField(err):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errs.IsServiceCommunication(err):
			// The debug detail stays in the logs; the host only sees the
			// safe message.
			writeError(w, r, http.StatusBadGateway, err.Error())
		default:
			logger.Error().Err(err).Msg("unexpected data request failure")
			writeError(w, r, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapEnvelopeDomainToApi(envelope))
}

func (h *Handler) GetAuthStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, api.AuthStatusResponse{
		Authorized: h.gate.IsAuthorized(r.Context()),
	})
}

func (h *Handler) SetCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var request api.SetCredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	accepted, err := h.gate.SetCredentials(ctx, domain.Credentials{
		Username: request.UserToken.Username,
		Token:    request.UserToken.Token,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to persist credentials")
		writeError(w, r, http.StatusInternalServerError, "failed to persist credentials")
		return
	}

	code := api.ErrorCodeNone
	if !accepted {
		code = api.ErrorCodeInvalidCredentials
	}
	writeJSON(w, r, http.StatusOK, api.SetCredentialsResponse{ErrorCode: code})
}

func (h *Handler) ResetAuth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := h.gate.Reset(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to reset credentials")
		writeError(w, r, http.StatusInternalServerError, "failed to reset credentials")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, api.ErrorResponse{Error: message})
}
