package connector

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/columbo-connector/pkg/errs"
	"github.com/de-tools/columbo-connector/pkg/models/domain"
	"github.com/de-tools/columbo-connector/pkg/services/catalog"
	"github.com/de-tools/columbo-connector/pkg/services/mapper"
	"github.com/de-tools/columbo-connector/pkg/store/columbo"
)

// Connector fetches audit records for an account and projects them into
// rows matching the requested fields.
type Connector interface {
	Fields(ctx context.Context) domain.FieldCatalog
	GetData(ctx context.Context, accountID string, requestedIDs []string) (domain.Envelope, error)
}

type connector struct {
	client columbo.Client
	mapper *mapper.Mapper
}

func New(client columbo.Client, m *mapper.Mapper) Connector {
	return &connector{client: client, mapper: m}
}

func (c *connector) Fields(_ context.Context) domain.FieldCatalog {
	return catalog.Fields()
}

// GetData resolves the requested fields before spending the remote call,
// so a malformed field list fails without a round-trip. Any failure
// talking to the service aborts the whole response; partial rows are never
// returned.
func (c *connector) GetData(
	ctx context.Context,
	accountID string,
	requestedIDs []string,
) (domain.Envelope, error) {
	logger := zerolog.Ctx(ctx)

	resolved, err := catalog.Resolve(catalog.Fields(), requestedIDs)
	if err != nil {
		return domain.Envelope{}, err
	}

	audits, err := c.client.ListAudits(ctx, accountID)
	if err != nil {
		svcErr := errs.NewServiceCommunication(err)
		logger.Error().
			Str("account", accountID).
			Msg(svcErr.Debug)
		return domain.Envelope{}, svcErr
	}

	rows := c.mapper.MapRecords(resolved, audits)
	return domain.Envelope{Schema: resolved, Rows: rows}, nil
}
