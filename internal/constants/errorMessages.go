package constants

// Remote data service error codes

// Credential-related errors
const (
	ErrCodeInvalidAPIKey        = "INVALID_API_KEY"
	ErrCodeRateLimited          = "RATE_LIMITED"
	ErrCodeNetworkError         = "NETWORK_ERROR"
	ErrCodeAuthenticationFailed = "AUTHENTICATION_FAILED"
)

// Collection-related errors
const (
	ErrCodeCollectionNotFound     = "COLLECTION_NOT_FOUND"
	ErrCodeCollectionAccessDenied = "COLLECTION_ACCESS_DENIED"
)

// Record-related errors
const (
	ErrCodeRecordNotFound = "RECORD_NOT_FOUND"
	ErrCodeWriteRejected  = "WRITE_REJECTED"
)

// Storage errors
const (
	ErrCodeUploadFailed   = "UPLOAD_FAILED"
	ErrCodeObjectNotFound = "OBJECT_NOT_FOUND"
	ErrCodeSignURLFailed  = "SIGN_URL_FAILED"
)

// Error Messages
// Human-readable messages corresponding to error codes

var DataServiceErrorMessages = map[string]string{
	ErrCodeInvalidAPIKey:        "The data service API key is invalid or has been revoked",
	ErrCodeRateLimited:          "Rate limit exceeded. Please try again later",
	ErrCodeNetworkError:         "Unable to reach the data service. Please check your connection",
	ErrCodeAuthenticationFailed: "Authentication with the data service failed",

	ErrCodeCollectionNotFound:     "The specified collection was not found",
	ErrCodeCollectionAccessDenied: "You don't have permission to access this collection",

	ErrCodeRecordNotFound: "The requested record was not found",
	ErrCodeWriteRejected:  "The data service rejected the write",

	ErrCodeUploadFailed:   "The file could not be uploaded to storage",
	ErrCodeObjectNotFound: "The requested file was not found in storage",
	ErrCodeSignURLFailed:  "A signed URL could not be issued for the file",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := DataServiceErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}

// User-facing messages
const (
	MsgLoginFailed        = "Invalid email or password"
	MsgNoClientAccount    = "No client account found for this email"
	MsgSessionExpired     = "Your session has expired. Please sign in again"
	MsgFetchFailed        = "Failed to fetch data. Previous results are still shown"
	MsgUploadInFlight     = "An upload for this client is already in progress"
	MsgImportPartialFail  = "Some rows could not be imported"
)
