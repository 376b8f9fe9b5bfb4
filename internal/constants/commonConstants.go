package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixDashboardStats CachePrefix = "DASH_STATS"
	CachePrefixInventory      CachePrefix = "INV_"
	CachePrefixSignedURL      CachePrefix = "SIGNED_URL_"
)
