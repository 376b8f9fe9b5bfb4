package entities

// DocumentRecord mirrors one row of the remote Documents collection: client
// contact details captured alongside their uploaded paperwork.
type DocumentRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	TinID         string `json:"tinId"`
	Email         string `json:"email"`
	ContactNo     string `json:"contactNo"`
	MaritalStatus string `json:"maritalStatus"`
	Defaulted     bool   `json:"defaulted"`
}

// ClientDocuments is a client joined with their lot and document records,
// the unit rendered by the documents view.
type ClientDocuments struct {
	Client    Client           `json:"client"`
	Project   string           `json:"project"`
	Block     string           `json:"block"`
	Lot       string           `json:"lot"`
	Documents []DocumentRecord `json:"documents"`
}

// StoredFile is one object listed from the document bucket with a
// time-limited download URL.
type StoredFile struct {
	Name      string `json:"name"`
	SignedURL string `json:"signedUrl"`
}
