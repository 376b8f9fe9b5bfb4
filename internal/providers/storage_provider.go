package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"havahills/backoffice/internal/constants"
)

// StorageObject is one file listed from a bucket.
type StorageObject struct {
	Name      string `json:"name"`
	UpdatedAt string `json:"updated_at"`
}

// StorageProvider is the hosted object-storage interface: binary documents
// under hierarchical keys, with time-limited signed URLs for download.
type StorageProvider interface {
	Upload(ctx context.Context, bucket, path string, data []byte, overwrite bool) error
	List(ctx context.Context, bucket, prefix string) ([]StorageObject, error)
	CreateSignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)
}

// RestStorageProvider talks to the hosted storage REST API.
type RestStorageProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRestStorageProvider(baseURL, apiKey string) *RestStorageProvider {
	return &RestStorageProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 60 * time.Second, // uploads can be slow
		},
	}
}

var _ StorageProvider = (*RestStorageProvider)(nil)

// Upload stores a binary object under bucket/path
func (p *RestStorageProvider) Upload(ctx context.Context, bucket, path string, data []byte, overwrite bool) error {
	reqURL := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		p.baseURL, url.PathEscape(bucket), escapePath(path))

	method := http.MethodPost
	if overwrite {
		method = http.MethodPut
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := p.client.Do(req)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{
			Code:    constants.ErrCodeUploadFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeUploadFailed),
			Details: fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}
	return nil
}

// List returns the objects under a prefix
func (p *RestStorageProvider) List(ctx context.Context, bucket, prefix string) ([]StorageObject, error) {
	body, err := json.Marshal(map[string]string{"prefix": prefix})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal list payload: %w", err)
	}

	reqURL := fmt.Sprintf("%s/storage/v1/object/list/%s", p.baseURL, url.PathEscape(bucket))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
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
			Code:    constants.ErrCodeObjectNotFound,
			Message: constants.GetErrorMessage(constants.ErrCodeObjectNotFound),
			Details: fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}

	var objects []StorageObject
	if err := json.NewDecoder(resp.Body).Decode(&objects); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	return objects, nil
}

// CreateSignedURL issues a time-limited download URL for an object
func (p *RestStorageProvider) CreateSignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error) {
	body, err := json.Marshal(map[string]int{"expiresIn": int(ttl.Seconds())})
	if err != nil {
		return "", fmt.Errorf("failed to marshal sign payload: %w", err)
	}

	reqURL := fmt.Sprintf("%s/storage/v1/object/sign/%s/%s",
		p.baseURL, url.PathEscape(bucket), escapePath(path))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{
			Code:    constants.ErrCodeSignURLFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeSignURLFailed),
			Details: fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}

	var signed struct {
		SignedURL string `json:"signedURL"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&signed); err != nil {
		return "", fmt.Errorf("failed to decode sign response: %w", err)
	}

	// The service returns a relative path
	return p.baseURL + "/storage/v1" + signed.SignedURL, nil
}

// escapePath escapes each path segment but keeps the separators
func escapePath(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
