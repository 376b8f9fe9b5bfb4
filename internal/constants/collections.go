package constants

// Remote collection names. These match the hosted tables verbatim, spaces
// included, so they must never be interpolated into a URL without escaping.
const (
	CollectionLivingWater = "Living Water Subdivision"
	CollectionHavahills   = "Havahills Estate"
	CollectionClients     = "Clients"
	CollectionPayments    = "Payments"
	CollectionDocuments   = "Documents"
)

// PropertyCollections lists every collection that holds lot inventory.
// Both feed the same normalized Property shape despite different columns.
var PropertyCollections = []string{
	CollectionLivingWater,
	CollectionHavahills,
}

// Storage bucket for client document uploads
const BucketClientDocuments = "Clients Document"

// Remote column used to join clients to their lots. The hosted schema has no
// foreign key; ownership is matched on the client's name.
const OwnerColumn = "Owner"

// Page sizes per table view
const (
	PageSizeInventory = 12
	PageSizeClients   = 10
	PageSizePayments  = 10
	PageSizeDocuments = 5
	PageSizeTickets   = 10
)
