package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"havahills/backoffice/internal/constants"
)

// RestProvider implements DataProvider against the hosted service's
// PostgREST-style API.
type RestProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRestProvider creates a provider for the hosted data service.
func NewRestProvider(baseURL, apiKey string) *RestProvider {
	return &RestProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

var _ DataProvider = (*RestProvider)(nil)

// FetchRecords fetches all records matching the query
func (p *RestProvider) FetchRecords(ctx context.Context, q Query) ([]RawRecord, error) {
	reqURL := fmt.Sprintf("%s/rest/v1/%s?%s",
		p.baseURL,
		url.PathEscape(q.Collection),
		p.encodeQuery(q),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if err := p.handleHTTPError(resp); err != nil {
		return nil, err
	}

	var records []RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return records, nil
}

// InsertRecord creates a new record and returns the assigned id
func (p *RestProvider) InsertRecord(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}

	reqURL := fmt.Sprintf("%s/rest/v1/%s", p.baseURL, url.PathEscape(collection))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	p.setHeaders(req)
	req.Header.Set("Prefer", "return=representation")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if err := p.handleHTTPError(resp); err != nil {
		return "", err
	}

	// The service echoes the inserted rows back
	var inserted []RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&inserted); err != nil {
		return "", fmt.Errorf("failed to decode insert response: %w", err)
	}
	if len(inserted) == 0 {
		return "", &ProviderError{
			Code:    constants.ErrCodeWriteRejected,
			Message: constants.GetErrorMessage(constants.ErrCodeWriteRejected),
		}
	}

	return fmt.Sprintf("%v", inserted[0]["id"]), nil
}

// UpdateRecord patches an existing record by id
func (p *RestProvider) UpdateRecord(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	reqURL := fmt.Sprintf("%s/rest/v1/%s?id=eq.%s",
		p.baseURL, url.PathEscape(collection), url.QueryEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	return p.handleHTTPError(resp)
}

// DeleteRecord removes a record by id
func (p *RestProvider) DeleteRecord(ctx context.Context, collection, id string) error {
	reqURL := fmt.Sprintf("%s/rest/v1/%s?id=eq.%s",
		p.baseURL, url.PathEscape(collection), url.QueryEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	return p.handleHTTPError(resp)
}

func (p *RestProvider) setHeaders(req *http.Request) {
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

// encodeQuery builds the PostgREST query string for a Query
func (p *RestProvider) encodeQuery(q Query) string {
	vals := url.Values{}

	if len(q.Columns) > 0 {
		vals.Set("select", strings.Join(q.Columns, ","))
	} else {
		vals.Set("select", "*")
	}

	for col, val := range q.Equals {
		vals.Set(col, "eq."+val)
	}

	if q.SearchAny != "" && len(q.SearchColumns) > 0 {
		clauses := make([]string, 0, len(q.SearchColumns))
		for _, col := range q.SearchColumns {
			clauses = append(clauses, fmt.Sprintf("%s.ilike.*%s*", col, q.SearchAny))
		}
		vals.Set("or", "("+strings.Join(clauses, ",")+")")
	}

	if len(q.OrderBy) > 0 {
		parts := make([]string, 0, len(q.OrderBy))
		for _, o := range q.OrderBy {
			dir := "asc"
			if o.Descending {
				dir = "desc"
			}
			parts = append(parts, o.Column+"."+dir)
		}
		vals.Set("order", strings.Join(parts, ","))
	}

	return vals.Encode()
}

// handleHTTPError maps HTTP error responses to ProviderError
func (p *RestProvider) handleHTTPError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ProviderError{
			Code:    constants.ErrCodeAuthenticationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeAuthenticationFailed),
			Details: string(body),
		}
	case http.StatusNotFound:
		return &ProviderError{
			Code:    constants.ErrCodeCollectionNotFound,
			Message: constants.GetErrorMessage(constants.ErrCodeCollectionNotFound),
			Details: string(body),
		}
	case http.StatusTooManyRequests:
		return &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Details: string(body),
		}
	default:
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body)),
			Details: string(body),
		}
	}
}
