package dtos

// APIResponse is the standard envelope returned by every endpoint.
type APIResponse struct {
	Status       string      `json:"status"`
	Message      string      `json:"message"`
	ResponseTime string      `json:"response_time"`
	Data         interface{} `json:"data,omitempty"`
}

// TableResponse wraps one page of a table view plus the counts the
// pagination controls need. TotalPages is 0 for an empty result set and the
// UI renders that as "0 of 0".
type TableResponse struct {
	Rows       interface{} `json:"rows"`
	TotalCount int         `json:"total_count"`
	TotalPages int         `json:"total_pages"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
}

// LoginResponse carries the session token and the role the UI routes on.
type LoginResponse struct {
	SessionID  string `json:"session_id"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	ClientID   string `json:"client_id,omitempty"`
	ClientName string `json:"client_name,omitempty"`
}

// ShareLinkResponse is a single-use document share link.
type ShareLinkResponse struct {
	Token     string `json:"token"`
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

// ImportResult reports a bulk property import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}
