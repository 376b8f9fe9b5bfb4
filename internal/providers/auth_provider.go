package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"havahills/backoffice/internal/constants"
)

// AuthProvider validates credentials against the hosted auth service and
// returns the subject identifier it assigns.
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	SignUp(ctx context.Context, email, password, fullName string) (string, error)
}

// RestAuthProvider talks to the hosted auth endpoints.
type RestAuthProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRestAuthProvider(baseURL, apiKey string) *RestAuthProvider {
	return &RestAuthProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

var _ AuthProvider = (*RestAuthProvider)(nil)

type authTokenResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// SignIn exchanges email+password for the auth subject id
func (p *RestAuthProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := p.post(ctx, "/auth/v1/token?grant_type=password", body)
	if err != nil {
		return "", err
	}
	if resp.User.ID == "" {
		return "", &ProviderError{
			Code:    constants.ErrCodeAuthenticationFailed,
			Message: constants.MsgLoginFailed,
		}
	}
	return resp.User.ID, nil
}

// SignUp registers a new auth user and returns the subject id
func (p *RestAuthProvider) SignUp(ctx context.Context, email, password, fullName string) (string, error) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
		"data": map[string]string{
			"full_name": fullName,
		},
	}
	resp, err := p.post(ctx, "/auth/v1/signup", body)
	if err != nil {
		return "", err
	}
	if resp.User.ID == "" {
		return "", &ProviderError{
			Code:    constants.ErrCodeAuthenticationFailed,
			Message: "sign-up did not return a user id",
		}
	}
	return resp.User.ID, nil
}

func (p *RestAuthProvider) post(ctx context.Context, path string, body interface{}) (*authTokenResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal auth payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{
			Code:    constants.ErrCodeAuthenticationFailed,
			Message: constants.MsgLoginFailed,
			Details: fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}

	var tokenResp authTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}
	return &tokenResp, nil
}
