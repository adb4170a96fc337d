package entities

// Relationship names carried by the collaborator API. Any name is
// accepted verbatim; these constants cover the ones with directional
// semantics of their own.
const (
	RelationshipSent       = "SENT"
	RelationshipReceivedBy = "RECEIVED_BY"
)

// RelatedUser pairs a connected user with the relationship name
type RelatedUser struct {
	Node         User   `json:"node"`
	Relationship string `json:"relationship"`
}

// RelatedTransaction pairs a connected transaction with the relationship name
type RelatedTransaction struct {
	Node         Transaction `json:"node"`
	Relationship string      `json:"relationship"`
}

// UserConnections groups a user's neighborhood by connected kind
type UserConnections struct {
	Users        []RelatedUser        `json:"users"`
	Transactions []RelatedTransaction `json:"transactions"`
}

// TransactionConnections groups the users involved in a transaction
type TransactionConnections struct {
	Users []RelatedUser `json:"users"`
}

// UserNeighborhood is the relationship payload centered on one user
type UserNeighborhood struct {
	User        User            `json:"user"`
	Connections UserConnections `json:"connections"`
}

// TransactionNeighborhood is the relationship payload centered on one
// transaction
type TransactionNeighborhood struct {
	Transaction Transaction            `json:"transaction"`
	Connections TransactionConnections `json:"connections"`
}
