package summary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jonwraymond/policyops/secret"
)

// PolicyStore fetches a tenant's full raw policy text.
//
// Contract: an existing but empty policy returns ("", nil); "no policy
// for this tenant" is not an error. Errors are reserved for transport
// and upstream failures. tenantID may be empty when the caller has no
// resolved identity.
type PolicyStore interface {
	FetchRawPolicy(ctx context.Context, tenantID string) (string, error)
}

const (
	defaultStoreTimeout = 10 * time.Second

	// maxPolicyBytes bounds the response body read. Policies past this
	// size would be truncated by the pipeline anyway.
	maxPolicyBytes = 4 << 20
)

// HTTPStoreConfig configures the HTTP policy store.
type HTTPStoreConfig struct {
	// BaseURL is the upstream policy service root, e.g.
	// "https://policies.internal". Required.
	BaseURL string

	// BearerToken authenticates against the policy service. Accepts a
	// literal token or a secret reference ("${VAR}" or
	// "secretref:env:VAR"). Optional.
	BearerToken string

	// HTTPClient is the client to use. Default: a client with a 10s
	// timeout.
	HTTPClient *http.Client
}

// HTTPPolicyStore fetches raw policy documents over HTTP.
//
// Tenant-scoped documents are served from /policies/{tenantID}; the
// tenant-less default document from /policies/default.
type HTTPPolicyStore struct {
	baseURL string
	token   string
	client  *http.Client
}

var _ PolicyStore = (*HTTPPolicyStore)(nil)

// NewHTTPPolicyStore creates the store with defaults applied.
func NewHTTPPolicyStore(config HTTPStoreConfig) (*HTTPPolicyStore, error) {
	if config.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{Timeout: defaultStoreTimeout}
	}
	token, err := secret.Resolve(context.Background(), config.BearerToken)
	if err != nil {
		return nil, fmt.Errorf("summary: resolve policy store token: %w", err)
	}
	return &HTTPPolicyStore{
		baseURL: config.BaseURL,
		token:   token,
		client:  config.HTTPClient,
	}, nil
}

// FetchRawPolicy retrieves the policy document. A 404 means the tenant
// has no policy and returns ("", nil).
func (s *HTTPPolicyStore) FetchRawPolicy(ctx context.Context, tenantID string) (string, error) {
	doc := "default"
	if tenantID != "" {
		doc = url.PathEscape(tenantID)
	}
	endpoint := s.baseURL + "/policies/" + doc

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("summary: build policy request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("summary: fetch policy: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", nil
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("summary: policy store returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPolicyBytes))
	if err != nil {
		return "", fmt.Errorf("summary: read policy body: %w", err)
	}
	return string(body), nil
}
