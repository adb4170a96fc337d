package entities

import "github.com/ravjot07/TxGraph/domain/core/valueobjects"

// User is a person-like node of the collaborator graph. Entities are
// immutable snapshots fetched from the API; identity is (kind, ID).
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Key derives the user's stable cross-kind entity key
func (u User) Key() valueobjects.EntityKey {
	return valueobjects.MustEntityKey(valueobjects.KindUser, u.ID)
}

// DisplayLabel returns the label rendered for the user's graph node
func (u User) DisplayLabel() string {
	return u.Name
}
