package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"ppf-service/internal/config"
)

var (
	// ErrTokenRejected means the identity service examined the token and
	// refused it.
	ErrTokenRejected = errors.New("token rejected by identity service")
	// ErrIdentityUnavailable means the token could not be checked at all:
	// the service is unreachable, misbehaving or not configured.
	ErrIdentityUnavailable = errors.New("identity service unavailable")
)

// Identity is the normalized identity the provider returns for a valid
// bearer token.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

type IdentityClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewIdentityClient(cfg *config.Config) *IdentityClient {
	return &IdentityClient{
		baseURL: cfg.Identity.ServiceURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Verify sends the bearer token to the identity service. Every call is one
// round trip; callers that need to avoid the per-request cost wrap this in
// auth.NewCachedVerifier.
func (c *IdentityClient) Verify(ctx context.Context, token string) (*Identity, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: IDENTITY_SERVICE_URL is not configured", ErrIdentityUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/verify", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrIdentityUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrTokenRejected
	default:
		return nil, fmt.Errorf("%w: status %d", ErrIdentityUnavailable, resp.StatusCode)
	}

	var identity Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrIdentityUnavailable, err)
	}
	if identity.ID == "" {
		return nil, fmt.Errorf("%w: response missing identity id", ErrIdentityUnavailable)
	}
	return &identity, nil
}
