package entities

// OwnedLot is one property a client owns, located by project + block + lot.
type OwnedLot struct {
	Project string `json:"project"`
	Block   string `json:"block"`
	Lot     string `json:"lot"`
}

// PlaceholderLot is what a client with no matched lots carries, so table
// rendering never branches on an empty list.
func PlaceholderLot() OwnedLot {
	return OwnedLot{Project: "-", Block: "-", Lot: "-"}
}

// Client is a normalized client record joined with the lots owned across
// every property collection.
type Client struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	AuthID     string     `json:"authId,omitempty"`
	Properties []OwnedLot `json:"properties"`
	Defaulted  bool       `json:"defaulted"`
}
