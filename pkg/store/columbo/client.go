package columbo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/de-tools/columbo-connector/pkg/models/domain"
	"github.com/de-tools/columbo-connector/pkg/models/store"
)

// Client lists report records from the Columbo API.
type Client interface {
	ListAudits(ctx context.Context, accountID string) ([]store.Audit, error)
}

// CredentialsProvider supplies the stored credentials for the auth header.
type CredentialsProvider interface {
	Get(ctx context.Context) (domain.Credentials, error)
}

type httpClient struct {
	baseURL string
	creds   CredentialsProvider
	client  *http.Client
}

func NewClient(baseURL string, creds CredentialsProvider, client *http.Client) Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		client:  client,
	}
}

// ListAudits performs a single GET against <baseURL>/<accountID>/audits.
// The account id goes into the path as-is: the upstream API expects the
// raw value and escaping it would change the URLs it sees. One attempt,
// no retries.
func (c *httpClient) ListAudits(ctx context.Context, accountID string) ([]store.Audit, error) {
	url := c.baseURL + "/" + accountID + "/audits"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build audits request: %w", err)
	}

	creds, err := c.creds.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	req.SetBasicAuth(creds.Username, creds.Token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("audits request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("audits request returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var audits []store.Audit
	if err := json.NewDecoder(resp.Body).Decode(&audits); err != nil {
		return nil, fmt.Errorf("failed to decode audits response: %w", err)
	}
	return audits, nil
}
