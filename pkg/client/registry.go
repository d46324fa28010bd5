package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("crib-monitoring/client")

// Registry lookups sit on the query hot path, so a stalled collaborator must
// fail the call rather than hang the caller's request.
const requestTimeout = 10 * time.Second

// CribRegistryClient resolves which cribs a member of staff is assigned to.
type CribRegistryClient interface {
	AuthorizedCribs(ctx context.Context, callerID string) ([]string, error)
}

type registryClient struct {
	url        string
	httpClient http.Client
}

func NewCribRegistryClient(registryURL string) CribRegistryClient {
	return &registryClient{
		url: registryURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   requestTimeout,
		},
	}
}

func (c *registryClient) AuthorizedCribs(ctx context.Context, callerID string) ([]string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "authorized-cribs")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	reqURL := c.url + "/api/v0/personal/" + url.PathEscape(callerID) + "/cunas"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to retrieve crib assignments: %w", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Unknown staff member means no assignments, not a transport failure.
		return []string{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("crib registry request failed with status code %d", resp.StatusCode)
		return nil, err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return nil, err
	}

	result := struct {
		Cribs []string `json:"cunas"`
	}{}

	err = json.Unmarshal(respBody, &result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return result.Cribs, nil
}
