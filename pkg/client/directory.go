package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// CaregiverDirectoryClient looks up display names for staff ids so that
// resolved alerts carry a human readable attribution.
type CaregiverDirectoryClient interface {
	DisplayName(ctx context.Context, callerID string) (string, error)
}

type directoryClient struct {
	url        string
	httpClient http.Client
}

func NewCaregiverDirectoryClient(directoryURL string) CaregiverDirectoryClient {
	return &directoryClient{
		url: directoryURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   requestTimeout,
		},
	}
}

func (c *directoryClient) DisplayName(ctx context.Context, callerID string) (string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "display-name")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	reqURL := c.url + "/api/v0/personal/" + url.PathEscape(callerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to retrieve caregiver details: %w", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("caregiver directory request failed with status code %d", resp.StatusCode)
		return "", err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return "", err
	}

	result := struct {
		Name string `json:"nombre"`
	}{}

	err = json.Unmarshal(respBody, &result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return "", err
	}

	if result.Name == "" {
		err = fmt.Errorf("caregiver directory returned an empty name")
		return "", err
	}

	return result.Name, nil
}
